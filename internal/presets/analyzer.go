package presets

import "fmt"

// QuestionMeta is the catalog side channel for one questionnaire item.
type QuestionMeta struct {
	Domain string
	Binary bool
}

// Input is everything one classification run sees. Analyzers must treat it
// as read-only.
type Input struct {
	Categories CategoryScores
	Trials     []Trial
	// Responses maps question id to the raw answer as submitted.
	Responses  map[string]any
	Questions  map[string]QuestionMeta
	AgeBracket string
}

// Contribution is one analyzer's additive effect on the score vector plus the
// evidence it based that effect on.
type Contribution struct {
	Analyzer string             `json:"analyzer"`
	Delta    ScoreVector        `json:"delta"`
	Evidence map[string]float64 `json:"evidence,omitempty"`
	Warnings []string           `json:"warnings,omitempty"`
}

func newContribution(name string) Contribution {
	return Contribution{Analyzer: name, Evidence: map[string]float64{}}
}

func (c *Contribution) warnf(format string, args ...any) {
	c.Warnings = append(c.Warnings, fmt.Sprintf(format, args...))
}

// Analyzer turns an Input into a non-negative delta. Implementations never
// see each other's output.
type Analyzer interface {
	Name() string
	Analyze(in *Input) Contribution
}

// DefaultAnalyzers returns the five evidence sources.
func DefaultAnalyzers(r Rules) []Analyzer {
	return []Analyzer{
		&FontTestAnalyzer{Rules: r.FontTest},
		&QuestionnaireAnalyzer{Rules: r.Questionnaire},
		&ClusterAnalyzer{Rules: r.Cluster},
		&BehavioralAnalyzer{Rules: r.Behavioral},
		&DemographicAdjuster{Rules: r.Demographic},
	}
}
