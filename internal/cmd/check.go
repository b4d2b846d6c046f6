package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pthm/seoproof/internal/classifier"
	"github.com/pthm/seoproof/internal/deep"
	"github.com/pthm/seoproof/internal/document"
	"github.com/pthm/seoproof/internal/engine"
	"github.com/pthm/seoproof/internal/profile"
	"github.com/pthm/seoproof/internal/reporter"
	"github.com/pthm/seoproof/internal/rules"
	"github.com/pthm/seoproof/internal/ui"
)

var (
	keywordsPath string
	deepMode     bool
)

var checkCmd = &cobra.Command{
	Use:   "check <document>",
	Short: "Evaluate a page document against the SEO checklist",
	Long: `Evaluate page content against the SEO checklist for its page type.

The document may be plain text, HTML, or Markdown; the format is detected
automatically. Keywords come from a CSV or plain text file, one per line.

Examples:
  seoproof check page.html --keywords keywords.csv
  seoproof check page.md --keywords keywords.csv --deep
  seoproof check page.txt --page-type city --format json > result.json`,
	Args:         cobra.ExactArgs(1),
	RunE:         runCheck,
	SilenceUsage: true,
}

func init() {
	checkCmd.Flags().StringVarP(&keywordsPath, "keywords", "k", "", "Path to keywords file (CSV or one per line)")
	checkCmd.Flags().BoolVar(&deepMode, "deep", false, "Enable deep analysis using the Anthropic API")
	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	u := GetUI()

	// Nil outside interactive mode; every method is a no-op then.
	progress := u.StartProgress()
	defer func() { progress.Stop(nil) }()

	progress.Stage(ui.StageLoad)

	doc, err := loadDocument(args[0], keywordsPath)
	if err != nil {
		return err
	}

	prof, err := profile.Load(profileName)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Printf("Document: %s (%d keywords)\n\n", args[0], len(doc.Keywords))
	}

	progress.Stage(ui.StageClassify)

	opts := engine.Options{Profile: prof}
	if pageType != "" {
		forced, err := classifier.ParsePageType(pageType)
		if err != nil {
			return err
		}
		opts.ForcedType = &forced
		progress.Note(fmt.Sprintf("forced %s", forced))
		if verbose {
			fmt.Printf("Page type forced: %s\n", forced)
		}
	}

	if deepMode {
		if analyzer := deep.New(); analyzer != nil {
			opts.Deep = analyzer
		} else {
			fmt.Fprintln(os.Stderr, u.Styles.Partial.Render(
				u.Styles.IconPartial+" ANTHROPIC_API_KEY not set, falling back to heuristic scoring"))
		}
	}

	progress.Stage(ui.StageChecks)
	// Scale the bar before the first check fires.
	progress.Total(ruleCountFor(doc, opts.ForcedType))
	opts.OnRuleStart = progress.CheckStart
	opts.OnRuleDone = progress.CheckDone

	eval := engine.Evaluate(cmd.Context(), doc, opts)

	// Restore the terminal before the report prints.
	progress.Stop(nil)
	progress = nil

	var rep reporter.Reporter
	if u.IsJSON() {
		rep = reporter.NewJSONReporter(os.Stdout, prof.VerdictThreshold)
	} else {
		rep = reporter.NewTerminalReporter(os.Stdout, u, prof.VerdictThreshold, verbose)
	}

	return rep.Report(doc, eval)
}

// loadDocument reads the page content and optional keywords file.
func loadDocument(docPath, kwPath string) (*document.Document, error) {
	text, err := document.ReadText(docPath)
	if err != nil {
		return nil, err
	}

	var keywords []string
	if kwPath != "" {
		keywords, err = document.ReadKeywords(kwPath)
		if err != nil {
			return nil, err
		}
	}

	return document.New(text, keywords), nil
}

// ruleCountFor resolves the checklist size without running it, so the
// progress bar can be scaled before evaluation starts.
func ruleCountFor(doc *document.Document, forced *classifier.PageType) int {
	pt := classifier.Classify(doc.Text, doc.Keywords)
	if forced != nil {
		pt = *forced
	}
	return len(rules.ForType(pt).Rules())
}
