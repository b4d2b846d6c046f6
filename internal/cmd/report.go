package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pthm/seoproof/internal/classifier"
	"github.com/pthm/seoproof/internal/engine"
	"github.com/pthm/seoproof/internal/profile"
	"github.com/pthm/seoproof/internal/reporter"
)

var (
	reportKeywordsPath string
	reportOutput       string
)

var reportCmd = &cobra.Command{
	Use:   "report <document>",
	Short: "Write a full Markdown report for a page document",
	Long: `Evaluate a page document and write the complete report as Markdown.

This includes:
  - Overall score and verdict
  - Content preview and target keywords
  - Per-criterion scores with a bar chart breakdown
  - Detailed pass/partial/fail annotations
  - Top improvement suggestions

Examples:
  seoproof report page.html --keywords keywords.csv
  seoproof report page.md -k keywords.csv -o review.md`,
	Args:         cobra.ExactArgs(1),
	RunE:         runReport,
	SilenceUsage: true,
}

func init() {
	reportCmd.Flags().StringVarP(&reportKeywordsPath, "keywords", "k", "", "Path to keywords file (CSV or one per line)")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "Output file (default report_<document>.md)")
	RootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument(args[0], reportKeywordsPath)
	if err != nil {
		return err
	}

	prof, err := profile.Load(profileName)
	if err != nil {
		return err
	}

	opts := engine.Options{Profile: prof}
	if pageType != "" {
		forced, err := classifier.ParsePageType(pageType)
		if err != nil {
			return err
		}
		opts.ForcedType = &forced
	}

	spin := GetUI().StartSpinner(fmt.Sprintf("Evaluating %s...", filepath.Base(args[0])))
	eval := engine.Evaluate(cmd.Context(), doc, opts)
	spin.Stop()

	outPath := reportOutput
	if outPath == "" {
		base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
		outPath = fmt.Sprintf("report_%s.md", base)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	rep := reporter.NewMarkdownReporter(f, prof.VerdictThreshold)
	if err := rep.Report(doc, eval); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	summary := reporter.ComputeSummary(eval, prof.VerdictThreshold)

	color.Cyan("SEO Proofreader Report\n")
	color.Cyan("======================\n\n")
	fmt.Printf("Document:  %s\n", args[0])
	fmt.Printf("Page type: %s\n", summary.PageType)
	fmt.Printf("Score:     %d/%d (%.1f%%)\n", summary.TotalScore, summary.MaxScore, summary.Percentage)
	if summary.Verdict == "PASS" {
		color.Green("Verdict:   PASS\n")
	} else {
		color.Red("Verdict:   FAIL\n")
	}
	fmt.Printf("\nReport written to %s\n", outPath)

	return nil
}
