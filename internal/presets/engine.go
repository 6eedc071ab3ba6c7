package presets

import (
	"math"
	"time"

	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
)

// Decision is the outcome of one classification run. Scores always carry the
// full final vector so the choice can be explained later.
type Decision struct {
	Preset        Preset         `json:"preset"`
	Scores        ScoreVector    `json:"scores"`
	Contributions []Contribution `json:"contributions"`
	Warnings      []string       `json:"warnings,omitempty"`
	AgeBracket    string         `json:"age_bracket"`
	DecidedAt     time.Time      `json:"decided_at"`
}

// Margin is how far the chosen preset leads the runner-up.
func (d Decision) Margin() float64 {
	runnerUp := math.Inf(-1)
	for _, p := range All() {
		if p != d.Preset && d.Scores.Get(p) > runnerUp {
			runnerUp = d.Scores.Get(p)
		}
	}
	return d.Scores.Get(d.Preset) - runnerUp
}

type Option func(*Engine)

// WithClock overrides the decision timestamp source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithAnalyzers replaces the default analyzer set.
func WithAnalyzers(analyzers ...Analyzer) Option {
	return func(e *Engine) {
		e.analyzers = analyzers
	}
}

// Engine is stateless between calls and safe for concurrent use.
type Engine struct {
	log       *logger.Logger
	rules     Rules
	analyzers []Analyzer
	now       func() time.Time
}

func NewEngine(log *logger.Logger, rules Rules, opts ...Option) *Engine {
	if log == nil {
		log = logger.Nop()
	}
	e := &Engine{
		log:       log.With("service", "PresetEngine"),
		rules:     rules,
		analyzers: DefaultAnalyzers(rules),
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Rules() Rules { return e.rules }

// Classify runs every analyzer against in, sums their deltas onto the
// baseline and selects the arg-max preset. It never fails: malformed pieces
// of input surface as warnings on the decision.
func (e *Engine) Classify(in Input) Decision {
	in.AgeBracket = NormalizeAgeBracket(in.AgeBracket)

	scores := Baseline(e.rules.Baseline)
	contributions := make([]Contribution, 0, len(e.analyzers))
	var warnings []string
	for _, a := range e.analyzers {
		c := a.Analyze(&in)
		scores = scores.Plus(c.Delta)
		for _, w := range c.Warnings {
			e.log.Warn("preset evidence skipped", "analyzer", c.Analyzer, "reason", w)
			warnings = append(warnings, c.Analyzer+": "+w)
		}
		contributions = append(contributions, c)
	}

	d := Decision{
		Preset:        scores.ArgMax(),
		Scores:        scores,
		Contributions: contributions,
		Warnings:      warnings,
		AgeBracket:    in.AgeBracket,
		DecidedAt:     e.now(),
	}
	e.log.Info("preset decision",
		"preset", d.Preset.String(),
		"scores", d.Scores.Map(),
		"margin", d.Margin(),
		"trials", len(in.Trials),
		"responses", len(in.Responses),
	)
	return d
}
