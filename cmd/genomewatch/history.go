package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"genomewatch/internal/history"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded analysis runs",
		Long:  "List recent runs from the history database. Recording is off by\ndefault; enable it with: genomewatch config set history.enabled true",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of runs to list (0 = all)")

	return cmd
}

func runHistory(limit int) error {
	path := viper.GetString("history.path")
	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Runs(limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		fmt.Println("Hint: enable recording with: genomewatch config set history.enabled true")
		return nil
	}

	fmt.Printf("%-36s  %-19s  %8s  %s\n", "RUN", "GENERATED", "VARIANTS", "VCF")
	for _, r := range runs {
		fmt.Printf("%-36s  %-19s  %8d  %s\n",
			r.ID, r.Generated.Format("2006-01-02 15:04:05"), r.TotalVariants, r.VCFPath)
	}
	return nil
}
