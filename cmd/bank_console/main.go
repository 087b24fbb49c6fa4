package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	portssvc "github.com/awesomegic/bank_account_system/internal/core/ports/services"
	"github.com/awesomegic/bank_account_system/internal/core/services"
	"github.com/awesomegic/bank_account_system/internal/dto"
	"github.com/awesomegic/bank_account_system/internal/events"
	"github.com/awesomegic/bank_account_system/internal/repositories/memory"
	"github.com/awesomegic/bank_account_system/internal/validation"
	"github.com/shopspring/decimal"
)

// console drives the interactive menu loop over one in-memory session.
type console struct {
	services *portssvc.ServiceContainer
	scanner  *bufio.Scanner
	out      *os.File
}

func main() {
	// Keep structured logs on stderr at warn level so the menu output on
	// stdout stays clean.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	repos := memory.NewRepositoryProvider()
	container := services.NewServiceContainer(
		repos,
		validation.NewDefaultTransactionValidator(),
		validation.NewDefaultInterestRuleValidator(),
		events.NewNoopPublisher(),
	)

	c := &console{
		services: container,
		scanner:  bufio.NewScanner(os.Stdin),
		out:      os.Stdout,
	}
	c.run()
}

func (c *console) run() {
	for {
		c.printMenu()
		input, ok := c.readLine()
		if !ok {
			return
		}

		switch strings.ToUpper(input) {
		case "A":
			c.handleAddAccount()
		case "I":
			c.handleInputTransaction()
		case "D":
			c.handleDefineInterestRule()
		case "P":
			c.handlePrintStatement()
		case "C":
			c.handleCalculateInterest()
		case "Q":
			fmt.Fprintln(c.out, "Thank you for banking with AwesomeGIC Bank.")
			fmt.Fprintln(c.out, "Have a nice day!")
			return
		default:
			fmt.Fprintln(c.out, "Invalid input. Please enter a valid option.")
		}
	}
}

func (c *console) printMenu() {
	fmt.Fprintln(c.out, "Welcome to AwesomeGIC Bank! What would you like to do?")
	fmt.Fprintln(c.out, "[A]dd account")
	fmt.Fprintln(c.out, "[I]nput transactions")
	fmt.Fprintln(c.out, "[D]efine interest rules")
	fmt.Fprintln(c.out, "[P]rint statement")
	fmt.Fprintln(c.out, "[C]alculate interest")
	fmt.Fprintln(c.out, "[Q]uit")
}

// readLine returns the next trimmed input line; ok is false on EOF.
func (c *console) readLine() (string, bool) {
	if !c.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.scanner.Text()), true
}

func (c *console) handleAddAccount() {
	fmt.Fprintln(c.out, "Please enter account details in <Account>|<Opening balance> format")
	fmt.Fprintln(c.out, "(or enter blank to go back to main menu):")

	input, ok := c.readLine()
	if !ok || input == "" {
		return
	}

	parts := strings.Split(input, "|")
	if len(parts) != 2 {
		fmt.Fprintln(c.out, "Invalid account data. Please check the input values.")
		return
	}
	balance, err := decimal.NewFromString(strings.TrimSpace(parts[1]))
	if err != nil {
		fmt.Fprintln(c.out, "Invalid account data. Please check the input values.")
		return
	}

	_, err = c.services.Account.RegisterAccount(context.Background(), dto.RegisterAccountRequest{
		AccountID: strings.TrimSpace(parts[0]),
		Balance:   balance,
	})
	if err != nil {
		fmt.Fprintln(c.out, "An error occurred:", err)
		return
	}
	fmt.Fprintln(c.out, "Account added successfully!")
}

func (c *console) handleInputTransaction() {
	fmt.Fprintln(c.out, "Please enter transaction details in <Date>|<Account>|<Type>|<Amount> format")
	fmt.Fprintln(c.out, "(or enter blank to go back to main menu):")

	input, ok := c.readLine()
	if !ok || input == "" {
		return
	}

	parts := strings.Split(input, "|")
	if len(parts) != 4 {
		fmt.Fprintln(c.out, "Invalid transaction data. Please check the input values.")
		return
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(parts[3]))
	if err != nil {
		fmt.Fprintln(c.out, "Invalid transaction data. Please check the input values.")
		return
	}

	_, err = c.services.Transaction.RecordTransaction(context.Background(), dto.RecordTransactionRequest{
		Date:      strings.TrimSpace(parts[0]),
		AccountID: strings.TrimSpace(parts[1]),
		Kind:      strings.ToUpper(strings.TrimSpace(parts[2])),
		Amount:    amount,
	})
	if err != nil {
		fmt.Fprintln(c.out, "An error occurred:", err)
		return
	}
	fmt.Fprintln(c.out, "Transaction added successfully!")
}

func (c *console) handleDefineInterestRule() {
	fmt.Fprintln(c.out, "Please enter interest rule details in <Date>|<RuleId>|<Rate in %> format")
	fmt.Fprintln(c.out, "(or enter blank to go back to main menu):")

	input, ok := c.readLine()
	if !ok || input == "" {
		return
	}

	parts := strings.Split(input, "|")
	if len(parts) != 3 {
		fmt.Fprintln(c.out, "Invalid interest rule data. Please check the input values.")
		return
	}
	rate, err := decimal.NewFromString(strings.TrimSpace(parts[2]))
	if err != nil {
		fmt.Fprintln(c.out, "Invalid interest rule data. Please check the input values.")
		return
	}

	_, err = c.services.Interest.DefineRule(context.Background(), dto.DefineInterestRuleRequest{
		EffectiveDate:     strings.TrimSpace(parts[0]),
		RuleID:            strings.TrimSpace(parts[1]),
		AnnualRatePercent: rate,
	})
	if err != nil {
		fmt.Fprintln(c.out, "An error occurred:", err)
		return
	}
	fmt.Fprintln(c.out, "Interest rule added successfully!")
}

func (c *console) handlePrintStatement() {
	fmt.Fprintln(c.out, "Please enter account and month to generate the statement <Account>|<Month>")
	fmt.Fprintln(c.out, "(or enter blank to go back to main menu):")

	input, ok := c.readLine()
	if !ok || input == "" {
		return
	}

	parts := strings.Split(input, "|")
	if len(parts) != 2 {
		fmt.Fprintln(c.out, "Invalid statement request. Please check the input values.")
		return
	}
	month, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		fmt.Fprintln(c.out, "Invalid month. Month should be between 01 and 12.")
		return
	}

	statement, err := c.services.Statement.GenerateStatement(context.Background(), strings.TrimSpace(parts[0]), month)
	if err != nil {
		fmt.Fprintln(c.out, "An error occurred:", err)
		return
	}
	fmt.Fprintln(c.out, statement)
}

func (c *console) handleCalculateInterest() {
	processed, err := c.services.Interest.RunAccrual(context.Background())
	if err != nil {
		fmt.Fprintln(c.out, "An error occurred:", err)
		return
	}
	fmt.Fprintf(c.out, "Interest calculated for %d account(s).\n", processed)
}
