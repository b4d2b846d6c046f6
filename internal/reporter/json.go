package reporter

import (
	"encoding/json"
	"io"

	"github.com/pthm/seoproof/internal/document"
	"github.com/pthm/seoproof/internal/engine"
)

// JSONReporter outputs results as JSON
type JSONReporter struct {
	w         io.Writer
	threshold float64
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(w io.Writer, threshold float64) *JSONReporter {
	return &JSONReporter{w: w, threshold: threshold}
}

// JSONOutput represents the JSON output format. Results are an array so the
// checklist order survives serialization.
type JSONOutput struct {
	PageType    string       `json:"pageType"`
	Keywords    []string     `json:"keywords"`
	Results     []JSONResult `json:"results"`
	Suggestions []string     `json:"suggestions"`
	Summary     Summary      `json:"summary"`
}

// JSONResult represents one rule result in JSON format
type JSONResult struct {
	Rule    string       `json:"rule"`
	Score   int          `json:"score"`
	Details []JSONDetail `json:"details"`
}

// JSONDetail represents one detail annotation in JSON format
type JSONDetail struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Report outputs the evaluation as JSON
func (r *JSONReporter) Report(doc *document.Document, eval *engine.Evaluation) error {
	output := JSONOutput{
		PageType:    eval.PageType.String(),
		Keywords:    doc.Keywords,
		Results:     make([]JSONResult, 0, eval.Report.Len()),
		Suggestions: eval.Suggestions,
		Summary:     ComputeSummary(eval, r.threshold),
	}

	for _, name := range eval.Report.Names() {
		res, _ := eval.Report.Get(name)
		jr := JSONResult{Rule: name, Score: res.Score}
		for _, d := range res.Details {
			jr.Details = append(jr.Details, JSONDetail{
				Status:  d.Status.String(),
				Message: d.Message,
			})
		}
		output.Results = append(output.Results, jr)
	}

	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
