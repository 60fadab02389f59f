package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"genomewatch/internal/manifest"
)

func newDiffCmd() *cobra.Command {
	var (
		dir  string
		base string
	)

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Compare the latest run against the previous one",
		Long:  "Compare the manifest of the latest analysis against the most recent\nbacked-up manifest and report which findings appeared or disappeared.",
		Example: `  genomewatch diff
  genomewatch diff --dir reports`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd.OutOrStdout(), dir, base)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Report directory (default: output)")
	cmd.Flags().StringVarP(&base, "output-name", "n", "", "Output base name (default: genome_report)")

	return cmd
}

func runDiff(out io.Writer, dir, base string) error {
	if dir == "" {
		dir = viper.GetString("output.dir")
	}
	if base == "" {
		base = viper.GetString("output.name")
	}

	current, curPath, err := manifest.LoadCurrent(dir, base)
	if err != nil {
		return err
	}

	previous, prevPath, err := manifest.FindPrevious(dir, base)
	if err != nil {
		return err
	}
	if previous == nil {
		printBaseline(out, dir, curPath, current)
		return nil
	}

	fmt.Fprintf(os.Stderr, "Comparing %s\n  against %s\n", curPath, prevPath)

	d := manifest.Compare(previous, current)
	if d.Empty() {
		fmt.Fprintln(out, "No changes since the previous analysis.")
		return nil
	}

	if len(d.Added) > 0 {
		fmt.Fprintf(out, "New findings (%d):\n", len(d.Added))
		printChanges(out, "+", d.Added)
	}
	if len(d.Removed) > 0 {
		fmt.Fprintf(out, "No longer present (%d):\n", len(d.Removed))
		printChanges(out, "-", d.Removed)
	}
	return nil
}

// printBaseline summarizes the first recorded run, when there is nothing
// to compare against yet.
func printBaseline(out io.Writer, dir, curPath string, current *manifest.Manifest) {
	fmt.Fprintf(out, "No previous analysis found in %s; current run is the baseline.\n", dir)
	fmt.Fprintf(out, "Current: %s (generated %s)\n", curPath, current.Generated)
	fmt.Fprintf(out, "  %d variants: %d pharmacogenomic, %d clinical, %d traits\n",
		current.TotalVariants,
		len(current.Variants.Pharmacogenomic),
		len(current.Variants.Clinical),
		len(current.Variants.Traits))
	fmt.Fprintln(out, "Next step: review the full report, then run 'genomewatch diff' again after your next analysis.")
}

func printChanges(out io.Writer, sign string, changes []manifest.Change) {
	for _, c := range changes {
		fmt.Fprintf(out, "  %s %s  %-16s %s  %s\n", sign, c.ID, c.Category, c.Gene, c.Genotype)
	}
}
