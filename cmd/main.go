package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"clinic-admin/cmd/bootstrap"
	"clinic-admin/internal/delivery/dto"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clinic-admin",
		Short: "Occupational health clinic administration API",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(reportCmd())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Initialize application with all dependencies
			app, err := bootstrap.New(cmd.Context())
			if err != nil {
				logrus.Errorf("Failed to initialize application: %v", err)
				return err
			}

			// Run the application
			app.Run()
			return nil
		},
	}
}

func migrateCmd() *cobra.Command {
	var (
		down      int
		seedAdmin bool
	)

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the schema of the configured store",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := bootstrap.Open(ctx)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Migrate(ctx, down); err != nil {
				return err
			}

			if !seedAdmin {
				return nil
			}
			created, err := app.SeedAdmin(ctx)
			if err != nil {
				return fmt.Errorf("failed to seed admin: %w", err)
			}
			if created {
				logrus.Info("Administrator account created")
			} else {
				logrus.Info("An administrator already exists, nothing seeded")
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&down, "down", 0, "roll back this many migrations instead of applying them")
	cmd.Flags().BoolVar(&seedAdmin, "seed-admin", false, "create the ADMIN_EMAIL administrator when no admin exists")
	return cmd
}

func reportCmd() *cobra.Command {
	var (
		req                     dto.InvoiceRequest
		invoice                 bool
		honoraires, medicaments string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the activity report or the invoice of a period as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if err := parseAmount(honoraires, &req.Honoraires); err != nil {
				return fmt.Errorf("invalid --honoraires: %w", err)
			}
			if err := parseAmount(medicaments, &req.Medicaments); err != nil {
				return fmt.Errorf("invalid --medicaments: %w", err)
			}

			app, err := bootstrap.Open(ctx)
			if err != nil {
				return err
			}
			defer app.Close()
			// Keep stdout for the JSON document.
			logrus.SetOutput(os.Stderr)

			reports, err := app.Reports(ctx)
			if err != nil {
				return err
			}

			var out interface{}
			if invoice {
				out, err = reports.GenerateInvoice(ctx, &req)
			} else {
				out, err = reports.GenerateActivityReport(ctx, &req.ReportRequest)
			}
			if err != nil {
				return err
			}
			return printJSON(out)
		},
	}

	cmd.Flags().StringVar(&req.From, "from", "", "first day of the period (YYYY-MM-DD)")
	cmd.Flags().StringVar(&req.To, "to", "", "last day of the period (YYYY-MM-DD)")
	cmd.Flags().StringVar(&req.Lieu, "lieu", "", "restrict to Cabinet or Port")
	cmd.Flags().BoolVar(&invoice, "invoice", false, "print the invoice instead of the activity report")
	cmd.Flags().StringVar(&req.Numero, "numero", "", "invoice number (defaults to FACT-YYYY-MM)")
	cmd.Flags().StringVar(&honoraires, "honoraires", "", "manual fees amount")
	cmd.Flags().StringVar(&medicaments, "medicaments", "", "manual medication amount")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func parseAmount(value string, dst **decimal.Decimal) error {
	if value == "" {
		return nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return err
	}
	*dst = &d
	return nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
