package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fieldops/cashflow/internal/infrastructure/config"
	"github.com/fieldops/cashflow/internal/infrastructure/logger"
	"github.com/fieldops/cashflow/internal/infrastructure/postgres"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cashflow-cli",
		Short: "Cashflow CLI tool",
		Long:  `A command line interface for interacting with the cashflow API and database.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the cashflow API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(accountsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database schema migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := logger.New(logger.Config{Level: cfg.LogLevel, Format: "console", Service: "cashflow-cli"})
			return postgres.RunMigrations(log, cfg.DatabaseURL, cfg.MigrationsPath)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back all migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := logger.New(logger.Config{Level: cfg.LogLevel, Format: "console", Service: "cashflow-cli"})
			return postgres.RunMigrationsDown(log, cfg.DatabaseURL, cfg.MigrationsPath)
		},
	})

	return cmd
}

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Fetch reports from the API",
	}

	var from, to, accounts string
	var months int

	cashflowCmd := &cobra.Command{
		Use:   "cashflow",
		Short: "Daily cash-flow report for a period",
		RunE: func(cmd *cobra.Command, args []string) error {
			return fetchReport("cashflow", reportQuery(from, to, accounts, 0))
		},
	}
	cashflowCmd.Flags().StringVar(&from, "from", "", "Period start (YYYY-MM-DD)")
	cashflowCmd.Flags().StringVar(&to, "to", "", "Period end (YYYY-MM-DD)")
	cashflowCmd.Flags().StringVar(&accounts, "accounts", "", "Comma-separated account IDs")

	reconciliationCmd := &cobra.Command{
		Use:   "reconciliation",
		Short: "Reconciliation report for a period",
		RunE: func(cmd *cobra.Command, args []string) error {
			return fetchReport("reconciliation", reportQuery(from, to, accounts, 0))
		},
	}
	reconciliationCmd.Flags().StringVar(&from, "from", "", "Period start (YYYY-MM-DD)")
	reconciliationCmd.Flags().StringVar(&to, "to", "", "Period end (YYYY-MM-DD)")
	reconciliationCmd.Flags().StringVar(&accounts, "accounts", "", "Comma-separated account IDs")

	projectionCmd := &cobra.Command{
		Use:   "projection",
		Short: "Recurring-rule projection report",
		RunE: func(cmd *cobra.Command, args []string) error {
			return fetchReport("projection", reportQuery("", "", "", months))
		},
	}
	projectionCmd.Flags().IntVar(&months, "months", 0, "Projection horizon in months")

	cmd.AddCommand(cashflowCmd, reconciliationCmd, projectionCmd)
	return cmd
}

func accountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return fetchJSON("/api/v1/accounts/", "")
		},
	}
}

// reportQuery builds the query string shared by the report endpoints.
// Empty values are omitted so the server applies its defaults.
func reportQuery(from, to, accounts string, months int) string {
	q := url.Values{}
	if from != "" {
		q.Set("from", from)
	}
	if to != "" {
		q.Set("to", to)
	}
	if accounts != "" {
		q.Set("accounts", accounts)
	}
	if months > 0 {
		q.Set("months", fmt.Sprintf("%d", months))
	}
	return q.Encode()
}

func fetchReport(name, query string) error {
	return fetchJSON("/api/v1/reports/"+name, query)
}

func fetchJSON(path, query string) error {
	target := baseURL + path
	if query != "" {
		target += "?" + query
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(target)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request failed (status %d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var result any
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}

	printJSON(result)
	return nil
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to render json: %v\n", err)
		return
	}
	fmt.Println(string(out))
}
