package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := newRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bank-cli",
		Short: "Bank system CLI tool",
		Long:  `A command line interface for interacting with the bank system API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the bank system API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(
		depositCmd(),
		withdrawCmd(),
		balanceCmd(),
		transactionsCmd(),
		verifyCmd(),
	)

	return rootCmd
}

func depositCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "deposit <account-id> <amount>",
		Short: "Deposit an amount into an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]any{
				"account_id": args[0],
				"amount":     args[1],
			}
			if date != "" {
				payload["transaction_date"] = date
			}
			return postJSON("/api/v1/transactions/deposit", payload)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Transaction date (RFC 3339), defaults to now")

	return cmd
}

func withdrawCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "withdraw <account-id> <amount>",
		Short: "Withdraw an amount, crediting accrued interest first",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]any{
				"account_id": args[0],
				"amount":     args[1],
			}
			if date != "" {
				payload["transaction_date"] = date
			}
			return postJSON("/api/v1/transactions/withdraw", payload)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Transaction date (RFC 3339), defaults to now")

	return cmd
}

func balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance <account-id>",
		Short: "Show an account's balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/accounts/" + args[0])
		},
	}
}

func transactionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transactions <account-id>",
		Short: "List an account's transactions, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/accounts/" + args[0] + "/transactions")
		},
	}
}

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <account-id>",
		Short: "Replay an account's transaction log and check the stored balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/accounts/" + args[0] + "/verify")
		},
	}
}

func getJSON(path string) error {
	client := &http.Client{Timeout: timeout}

	resp, err := client.Get(baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func postJSON(path string, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	client := &http.Client{Timeout: timeout}

	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		fmt.Println(string(body))
	} else {
		fmt.Println(pretty.String())
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}
	return nil
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to encode: %v\n", err)
		return
	}
	fmt.Println(string(data))
}
