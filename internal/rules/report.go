package rules

// Report is the ordered mapping from rule name to result. Iteration order is
// the registry's registration order, which keeps suggestion tie-breaking and
// display deterministic.
type Report struct {
	names   []string
	results map[string]Result
}

// NewReport creates an empty checklist report
func NewReport() *Report {
	return &Report{results: make(map[string]Result)}
}

// Add appends a rule result. Re-adding a name replaces the result but keeps
// its original position.
func (r *Report) Add(name string, res Result) {
	if _, exists := r.results[name]; !exists {
		r.names = append(r.names, name)
	}
	r.results[name] = res
}

// Get returns the result for a rule name.
func (r *Report) Get(name string) (Result, bool) {
	res, ok := r.results[name]
	return res, ok
}

// Names returns the rule names in evaluation order.
func (r *Report) Names() []string {
	return r.names
}

// Len returns the number of rules in the report.
func (r *Report) Len() int {
	return len(r.names)
}

// TotalScore sums all rule scores.
func (r *Report) TotalScore() int {
	total := 0
	for _, res := range r.results {
		total += res.Score
	}
	return total
}

// MaxScore is the highest possible total (10 per rule).
func (r *Report) MaxScore() int {
	return 10 * len(r.names)
}

// Percentage is the aggregate score: 100 x total / max. An empty report
// yields 0.
func (r *Report) Percentage() float64 {
	max := r.MaxScore()
	if max == 0 {
		return 0
	}
	return float64(r.TotalScore()) / float64(max) * 100
}
