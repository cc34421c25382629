package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/medrota/rotagap/app"
	"github.com/medrota/rotagap/config"
	"github.com/medrota/rotagap/pkg/export"
)

var (
	checkMonth  string
	checkFormat string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report master rotations without coverage in a month",
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkMonth, "month", "", "month to check, format YYYY-MM")
	checkCmd.Flags().StringVar(&checkFormat, "format", "text", "output format: text, csv or json")
	if err := checkCmd.MarkFlagRequired("month"); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	if _, err := svc.Load(ctx, nil); err != nil {
		return fmt.Errorf("load: %w", err)
	}
	ev, err := svc.Check(checkMonth)
	if err != nil {
		return err
	}

	switch checkFormat {
	case "csv":
		return export.WriteUnfilledCSV(cmd.OutOrStdout(), ev.Month, ev.Unfilled)
	case "json":
		return export.WriteJSON(cmd.OutOrStdout(), ev.Unfilled)
	default:
		if len(ev.Unfilled) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "all master rotations covered in %s\n", ev.Month)
			return nil
		}
		for _, r := range ev.Unfilled {
			fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", r)
		}
		return nil
	}
}
