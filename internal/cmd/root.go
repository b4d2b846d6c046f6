package cmd

import (
	"os"

	"github.com/pthm/seoproof/internal/ui"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose     bool
	format      string
	pageType    string
	profileName string
)

// RootCmd is the base command for seoproof
var RootCmd = &cobra.Command{
	Use:   "seoproof",
	Short: "An SEO checklist proofreader for service pages",
	Long: `seoproof evaluates page content against an SEO checklist tuned for
cost pages and city (local landing) pages.

It detects the page type from the content and keywords, scores each
checklist criterion from 0 to 10, and produces targeted improvement
suggestions for the weakest criteria.`,
}

func Execute() error {
	return RootCmd.Execute()
}

var globalUI *ui.UI

// GetUI returns the process-wide UI, creating it from the format flag on
// first use.
func GetUI() *ui.UI {
	if globalUI == nil {
		globalUI = ui.New(os.Stdout, os.Stderr, format)
	}
	return globalUI
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	RootCmd.PersistentFlags().StringVarP(&format, "format", "f", "terminal", "Output format (terminal, json)")
	RootCmd.PersistentFlags().StringVarP(&pageType, "page-type", "t", "", "Force page type (cost, city) instead of auto-detecting")
	RootCmd.PersistentFlags().StringVar(&profileName, "profile", "default", "Scoring profile to use")
}
