package rules

import (
	"fmt"
	"strings"

	"github.com/pthm/seoproof/internal/analyzer"
	"github.com/pthm/seoproof/internal/document"
	"github.com/pthm/seoproof/internal/parser"
)

// Status tags a detail annotation as a passed, partially passed, or failed
// check.
type Status int

const (
	StatusFail Status = iota
	StatusPartial
	StatusPass
)

func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusPartial:
		return "partial"
	default:
		return "fail"
	}
}

// Annotation is one human-readable explanation of why a rule granted or
// withheld points. Annotations appear in the fixed order the rule checks them,
// which is what makes a score auditable.
type Annotation struct {
	Status  Status
	Message string
}

func (a Annotation) String() string {
	return fmt.Sprintf("[%s] %s", strings.ToUpper(a.Status.String()), a.Message)
}

// Result is the outcome of one rule: a score clamped to [0,10] and the
// ordered detail annotations behind it.
type Result struct {
	Score   int
	Details []Annotation
}

// DetailText joins the annotations into a single display string.
func (r Result) DetailText() string {
	parts := make([]string, len(r.Details))
	for i, d := range r.Details {
		parts[i] = d.String()
	}
	return strings.Join(parts, " ")
}

// Scorecard accumulates additive point grants with their annotations. Points
// may exceed 10 mid-accumulation; Result clamps only at the end so cumulative
// semantics stay intact.
type Scorecard struct {
	score   int
	details []Annotation
}

// NewScorecard creates a scorecard starting from a base score.
func NewScorecard(base int) *Scorecard {
	return &Scorecard{score: base}
}

// Pass grants points for a fully satisfied check.
func (s *Scorecard) Pass(points int, format string, args ...any) {
	s.add(points, StatusPass, format, args...)
}

// Partial grants reduced points for a partially satisfied check.
func (s *Scorecard) Partial(points int, format string, args ...any) {
	s.add(points, StatusPartial, format, args...)
}

// Fail records a failed check. No points are granted.
func (s *Scorecard) Fail(format string, args ...any) {
	s.add(0, StatusFail, format, args...)
}

func (s *Scorecard) add(points int, status Status, format string, args ...any) {
	s.score += points
	s.details = append(s.details, Annotation{
		Status:  status,
		Message: fmt.Sprintf(format, args...),
	})
}

// Result finalizes the scorecard, clamping the accumulated score to [0,10].
func (s *Scorecard) Result() Result {
	score := s.score
	if score < 0 {
		score = 0
	}
	if score > 10 {
		score = 10
	}
	return Result{Score: score, Details: s.details}
}

// EvalContext provides everything a rule inspects: the document, its
// extracted markup features, computed text metrics, and the extracted city
// name (sentinel "Unknown City" when none was found).
type EvalContext struct {
	Doc      *document.Document
	Features *parser.Features
	Metrics  *analyzer.Metrics
	CityName string
}

// NewEvalContext extracts features and metrics for a document once, so every
// rule works from the same signals.
func NewEvalContext(doc *document.Document) *EvalContext {
	return &EvalContext{
		Doc:      doc,
		Features: parser.Extract(doc.Text),
		Metrics:  analyzer.ComputeMetrics(doc.Text, doc.Keywords),
		CityName: ExtractCityName(doc.Text, doc.Keywords),
	}
}

// Rule is one independently-scored checklist criterion. Evaluate never fails:
// absent features degrade the score toward the fail branch with an
// explanatory annotation.
type Rule interface {
	// Name returns the stable identifier for this rule
	Name() string

	// Description returns a human-readable description
	Description() string

	// Evaluate scores the document against this criterion
	Evaluate(ctx *EvalContext) Result
}

// Threshold bands shared across rules. These values are part of the scoring
// contract and are reused verbatim by multiple rules.
const (
	DensityHealthyMin = 1.0
	DensityHealthyMax = 3.0

	SentenceGoodMax       = 15.0
	SentenceAcceptableMax = 20.0

	ParagraphGoodMax       = 50.0
	ParagraphAcceptableMax = 80.0

	PriceRealisticMin = 10
	PriceRealisticMax = 10000

	CityDensityHealthyMin = 0.5
	CityDensityHealthyMax = 2.0
)

// containsFold reports whether s contains substr, case-insensitively.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// anyContainsFold reports whether any of the strings contains substr.
func anyContainsFold(list []string, substr string) bool {
	for _, s := range list {
		if containsFold(s, substr) {
			return true
		}
	}
	return false
}
