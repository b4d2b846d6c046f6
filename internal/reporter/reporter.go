package reporter

import (
	"github.com/pthm/seoproof/internal/document"
	"github.com/pthm/seoproof/internal/engine"
)

// Reporter defines the interface for outputting evaluation results
type Reporter interface {
	// Report outputs one document's evaluation
	Report(doc *document.Document, eval *engine.Evaluation) error
}

// Summary holds the aggregate outcome of an evaluation. It is reproducible
// from the checklist report alone: percentage = 100 x total / (10 x rules),
// PASS at or above the threshold.
type Summary struct {
	PageType   string
	RuleCount  int
	TotalScore int
	MaxScore   int
	Percentage float64
	Verdict    string
}

// ComputeSummary computes the aggregate summary for an evaluation.
func ComputeSummary(eval *engine.Evaluation, threshold float64) Summary {
	s := Summary{
		PageType:   eval.PageType.String(),
		RuleCount:  eval.Report.Len(),
		TotalScore: eval.Report.TotalScore(),
		MaxScore:   eval.Report.MaxScore(),
		Percentage: eval.Report.Percentage(),
	}
	if s.Percentage >= threshold {
		s.Verdict = "PASS"
	} else {
		s.Verdict = "FAIL"
	}
	return s
}

// scoreBand buckets a rule score for display: good at 8+, needs improvement
// at 5-7, poor below.
func scoreBand(score int) string {
	switch {
	case score >= 8:
		return "good"
	case score >= 5:
		return "needs improvement"
	default:
		return "poor"
	}
}
