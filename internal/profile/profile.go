package profile

import (
	"embed"
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pthm/seoproof/internal/classifier"
)

//go:embed configs/*.yaml
var configFS embed.FS

// builtinProfiles maps profile names to their configurations
var builtinProfiles = map[string]*Profile{}

// Remediation is the canned improvement sentence for one rule, with a
// page-type branch for rules whose advice differs.
type Remediation struct {
	Cost string `yaml:"cost"`
	City string `yaml:"city"`
}

// For returns the remediation text for a page type, falling back to the
// other branch when only one is defined.
func (r Remediation) For(pt classifier.PageType) string {
	if pt == classifier.PageTypeCity && r.City != "" {
		return r.City
	}
	if r.Cost != "" {
		return r.Cost
	}
	return r.City
}

// Profile carries the scoring configuration: the pass/fail verdict
// threshold, the needs-improvement cutoff, and the canned suggestion text.
type Profile struct {
	Name                 string                 `yaml:"name"`
	VerdictThreshold     float64                `yaml:"verdict_threshold"`
	ImprovementThreshold int                    `yaml:"improvement_threshold"`
	MaxSuggestions       int                    `yaml:"max_suggestions"`
	Remediation          map[string]Remediation `yaml:"remediation"`
	GenericSuggestions   []string               `yaml:"generic_suggestions"`
}

func init() {
	entries, err := configFS.ReadDir("configs")
	if err != nil {
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		data, err := configFS.ReadFile(filepath.Join("configs", entry.Name()))
		if err != nil {
			continue
		}

		var p Profile
		if err := yaml.Unmarshal(data, &p); err != nil {
			continue
		}

		builtinProfiles[p.Name] = &p
	}
}

// Load loads a scoring profile by name.
func Load(name string) (*Profile, error) {
	if p, ok := builtinProfiles[name]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("unknown profile: %s", name)
}

// Default returns the default scoring profile. It is embedded in the binary,
// so failure to load it is a programmer error.
func Default() *Profile {
	p, err := Load("default")
	if err != nil {
		panic(err)
	}
	return p
}
