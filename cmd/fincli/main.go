package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"finance-front/internal/api"
	"finance-front/internal/config"
	"finance-front/internal/domain"
)

func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	client := api.NewClient(cfg.APIBaseURL, time.Duration(cfg.APITimeoutSeconds)*time.Second, logger)

	token, user, err := loginFlow(ctx, reader, client)
	if err != nil {
		log.Fatalf("login: %v", err)
	}
	fmt.Printf("Signed in as %s\n", user.FullName())

	for {
		fmt.Println("\n===== Finance CLI =====")
		fmt.Println("[1] List accounts")
		fmt.Println("[2] List transactions")
		fmt.Println("[3] Record transaction")
		fmt.Println("[4] Quit")
		fmt.Print("Select an option: ")

		line, _ := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		switch line {
		case "1":
			if err := listAccounts(ctx, client, token); err != nil {
				fmt.Printf("Error listing accounts: %v\n", err)
			}
		case "2":
			if err := listTransactions(ctx, reader, client, token); err != nil {
				fmt.Printf("Error listing transactions: %v\n", err)
			}
		case "3":
			if err := recordTransaction(ctx, reader, client, token); err != nil {
				fmt.Printf("Error recording transaction: %v\n", err)
			} else {
				fmt.Println("Transaction recorded.")
			}
		case "4":
			os.Exit(0)
		default:
			fmt.Println("Invalid option.")
		}
	}
}

func loginFlow(ctx context.Context, reader *bufio.Reader, client *api.Client) (string, domain.User, error) {
	for {
		fmt.Print("Email: ")
		email, _ := reader.ReadString('\n')
		email = strings.TrimSpace(email)
		fmt.Print("Password: ")
		password, _ := reader.ReadString('\n')
		password = strings.TrimSpace(password)

		token, err := client.Auth.Login(ctx, api.LoginRequest{Email: email, Password: password})
		if err != nil {
			if errors.Is(err, api.ErrUnauthorized) {
				fmt.Println("Invalid email or password. Try again.")
				continue
			}
			return "", domain.User{}, err
		}

		user, err := client.Auth.CurrentUser(ctx, token)
		if err != nil {
			return "", domain.User{}, err
		}
		return token, user, nil
	}
}

func listAccounts(ctx context.Context, client *api.Client, token string) error {
	accounts, err := client.Accounts.List(ctx, token)
	if err != nil {
		return err
	}
	if len(accounts) == 0 {
		fmt.Println("No accounts.")
		return nil
	}
	for _, a := range accounts {
		status := "active"
		if !a.Active {
			status = "inactive"
		}
		fmt.Printf("[%d] %-20s %-12s %10s %s (%s)\n", a.ID, a.Name, a.Type.Label(), a.Balance, a.Currency, status)
	}
	return nil
}

func listTransactions(ctx context.Context, reader *bufio.Reader, client *api.Client, token string) error {
	fmt.Print("Account ID (empty for all): ")
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)

	var transactions []domain.Transaction
	var err error
	if line == "" {
		transactions, err = client.Transactions.List(ctx, token)
	} else {
		accountID, convErr := strconv.ParseInt(line, 10, 64)
		if convErr != nil {
			return fmt.Errorf("invalid account id %q", line)
		}
		transactions, err = client.Transactions.ListByAccount(ctx, token, accountID)
	}
	if err != nil {
		return err
	}
	if len(transactions) == 0 {
		fmt.Println("No transactions.")
		return nil
	}
	for _, tx := range transactions {
		fmt.Printf("[%d] %s %-8s %10s  %s\n", tx.ID, tx.Date, tx.Type, tx.Amount, tx.Description)
	}
	return nil
}

func recordTransaction(ctx context.Context, reader *bufio.Reader, client *api.Client, token string) error {
	fmt.Print("Account ID: ")
	idLine, _ := reader.ReadString('\n')
	accountID, err := strconv.ParseInt(strings.TrimSpace(idLine), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid account id")
	}

	fmt.Print("Amount: ")
	amountLine, _ := reader.ReadString('\n')
	amount, err := decimal.NewFromString(strings.TrimSpace(amountLine))
	if err != nil || !amount.IsPositive() {
		return errors.New("amount must be a positive number")
	}

	fmt.Printf("Type %v: ", domain.TransactionTypes())
	typeLine, _ := reader.ReadString('\n')
	txType := domain.TransactionType(strings.ToUpper(strings.TrimSpace(typeLine)))
	if !txType.Valid() {
		return fmt.Errorf("invalid transaction type %q", typeLine)
	}

	fmt.Print("Date (yyyy-mm-dd, empty for today): ")
	dateLine, _ := reader.ReadString('\n')
	date := strings.TrimSpace(dateLine)
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid date %q", date)
	}

	fmt.Print("Description: ")
	descLine, _ := reader.ReadString('\n')
	description := strings.TrimSpace(descLine)
	if description == "" {
		return errors.New("description is required")
	}

	fmt.Print("Category: ")
	catLine, _ := reader.ReadString('\n')

	_, err = client.Transactions.Create(ctx, token, api.TransactionRequest{
		Amount:      amount,
		Type:        txType,
		Date:        date,
		Description: description,
		Category:    strings.TrimSpace(catLine),
		AccountID:   accountID,
	})
	return err
}
