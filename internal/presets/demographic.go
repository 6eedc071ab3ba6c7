package presets

import "strings"

// Age brackets accepted from the assessment form.
const (
	AgeChild   = "child"
	AgeTeen    = "teen"
	AgeAdult   = "adult"
	AgeUnknown = "unknown"
)

// NormalizeAgeBracket maps free-form input onto a known bracket.
func NormalizeAgeBracket(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case AgeChild, "kid", "elementary", "primary":
		return AgeChild
	case AgeTeen, "teenager", "secondary", "middle", "high":
		return AgeTeen
	case AgeAdult, "college", "university":
		return AgeAdult
	default:
		return AgeUnknown
	}
}

// DemographicAdjuster gives the balanced preset a fixed nudge so that, with
// no other evidence, the decision lands on standard rather than a tie.
type DemographicAdjuster struct {
	Rules DemographicRules
}

func (a *DemographicAdjuster) Name() string { return "demographic" }

func (a *DemographicAdjuster) Analyze(in *Input) Contribution {
	c := newContribution(a.Name())
	c.Delta.Add(Standard, a.Rules.StandardBonus)
	return c
}
