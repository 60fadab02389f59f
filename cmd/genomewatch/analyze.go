package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"genomewatch/internal/catalog"
	"genomewatch/internal/history"
	"genomewatch/internal/manifest"
	"genomewatch/internal/output"
	"genomewatch/internal/report"
	"genomewatch/internal/scan"
	"genomewatch/internal/vcf"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		vcfPath    string
		outputDir  string
		outputName string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Scan a VCF file and write the report",
		Long:  "Scan a genotyped VCF for cataloged variants, write the HTML report\nwith its embedded manifest, and back up any previous run's files.",
		Example: `  genomewatch analyze                      # auto-detect data/*.vcf.gz
  genomewatch analyze --vcf genome.vcf.gz
  genomewatch analyze -v genome.vcf.gz -o reports -n mygenome`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(vcfPath, outputDir, outputName)
		},
	}

	cmd.Flags().StringVarP(&vcfPath, "vcf", "v", "", "Input VCF file (default: newest data/*.vcf.gz)")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Output directory (default: output)")
	cmd.Flags().StringVarP(&outputName, "output-name", "n", "", "Output base name (default: genome_report)")

	return cmd
}

func runAnalyze(vcfPath, outputDir, outputName string) error {
	if vcfPath == "" {
		vcfPath = viper.GetString("input.vcf")
	}
	if vcfPath == "" {
		detected, err := detectVCF("data")
		if err != nil {
			return err
		}
		vcfPath = detected
	}
	if outputDir == "" {
		outputDir = viper.GetString("output.dir")
	}
	if outputName == "" {
		outputName = viper.GetString("output.name")
	}

	parser, err := vcf.NewParser(vcfPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w\nHint: Check that the file path is correct", err)
		}
		return err
	}
	defer parser.Close()

	fmt.Fprintf(os.Stderr, "Scanning %s\n", vcfPath)

	cat := catalog.Builtin()
	if cat.Size() == 0 {
		return fmt.Errorf("annotation catalog is empty; nothing to match against")
	}
	scanner := scan.New(cat)
	scanner.SetLogger(logger)

	observed, err := scanner.Scan(parser)
	if err != nil {
		return err
	}
	if parser.SkippedLines() > 0 {
		fmt.Fprintf(os.Stderr, "Skipped %d malformed lines\n", parser.SkippedLines())
	}

	synth := report.New(cat)
	synth.SetLogger(logger)

	doc, m, err := synth.Synthesize(observed)
	if err != nil {
		return err
	}

	saved, err := output.SaveReport(outputDir, outputName, doc, m)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Found %d variants: %d pharmacogenomic, %d clinical, %d traits\n",
		m.TotalVariants,
		len(m.Variants.Pharmacogenomic), len(m.Variants.Clinical), len(m.Variants.Traits))
	if saved.DocumentBackup != "" {
		fmt.Fprintf(os.Stderr, "Previous report backed up to %s\n", saved.DocumentBackup)
	}
	if saved.ManifestBackup != "" {
		fmt.Fprintf(os.Stderr, "Previous manifest backed up to %s\n", saved.ManifestBackup)
	}
	fmt.Fprintf(os.Stderr, "Report:   %s\n", saved.DocumentPath)
	fmt.Fprintf(os.Stderr, "Manifest: %s\n", saved.ManifestPath)

	if viper.GetBool("history.enabled") {
		if err := recordHistory(m, vcfPath); err != nil {
			// History is supplemental; the run itself succeeded.
			fmt.Fprintf(os.Stderr, "Warning: could not record run history: %v\n", err)
		}
	}
	return nil
}

// detectVCF picks the newest *.vcf.gz under dir.
func detectVCF(dir string) (string, error) {
	matches, _ := filepath.Glob(filepath.Join(dir, "*.vcf.gz"))
	if len(matches) == 0 {
		return "", fmt.Errorf(
			"no VCF file specified and no *.vcf.gz found in %s/\nHint: Pass one with --vcf, or place your genome export under %s/", dir, dir)
	}

	sort.Slice(matches, func(i, j int) bool {
		fi, erri := os.Stat(matches[i])
		fj, errj := os.Stat(matches[j])
		if erri != nil || errj != nil {
			return matches[i] < matches[j]
		}
		return fi.ModTime().After(fj.ModTime())
	})

	if len(matches) > 1 {
		fmt.Fprintf(os.Stderr, "Multiple VCF files in %s/, using newest: %s\n", dir, matches[0])
		for _, m := range matches[1:] {
			fmt.Fprintf(os.Stderr, "  ignoring %s\n", m)
		}
	}
	return matches[0], nil
}

func recordHistory(m *manifest.Manifest, vcfPath string) error {
	store, err := history.Open(viper.GetString("history.path"))
	if err != nil {
		return err
	}
	defer store.Close()

	runID, err := store.RecordRun(m, vcfPath)
	if err != nil {
		return err
	}
	logger.Info("run recorded", zap.String("run_id", runID))
	return nil
}
