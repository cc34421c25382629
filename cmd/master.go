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
	masterStats  bool
	masterFormat string
)

var masterCmd = &cobra.Command{
	Use:   "master",
	Short: "Load schedule data and print the master rotation list",
	RunE:  runMaster,
}

func init() {
	masterCmd.Flags().BoolVar(&masterStats, "stats", false, "print occurrence statistics instead of the plain list")
	masterCmd.Flags().StringVar(&masterFormat, "format", "text", "output format: text, csv or json")
	rootCmd.AddCommand(masterCmd)
}

func runMaster(cmd *cobra.Command, args []string) error {
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

	if masterStats {
		stats := svc.Stats()
		switch masterFormat {
		case "csv":
			return export.WriteStatsCSV(cmd.OutOrStdout(), stats)
		case "json":
			return export.WriteJSON(cmd.OutOrStdout(), stats)
		default:
			for _, s := range stats {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\toccurrences=%d people=%d mean_gap=%.1fd\n",
					s.Rotation, s.Occurrences, s.People, s.MeanGapDays)
			}
			return nil
		}
	}

	master := svc.Master()
	switch masterFormat {
	case "json":
		return export.WriteJSON(cmd.OutOrStdout(), master)
	default:
		for _, r := range master {
			fmt.Fprintln(cmd.OutOrStdout(), r)
		}
		return nil
	}
}
