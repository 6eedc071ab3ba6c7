package presets

import "strings"

// Domain is a trait cluster a questionnaire item is tagged with.
type Domain int

const (
	Attention Domain = iota
	Reading
	Social
	Sensory
	Motor

	numDomains
)

var domainNames = [numDomains]string{
	Attention: "attention",
	Reading:   "reading",
	Social:    "social",
	Sensory:   "sensory",
	Motor:     "motor",
}

func (d Domain) String() string {
	if d < Attention || d >= numDomains {
		return "unknown"
	}
	return domainNames[d]
}

var domainAliases = map[string]Domain{
	"attention":            Attention,
	"reading":              Reading,
	"reading_difficulty":   Reading,
	"readingdifficulty":    Reading,
	"social":               Social,
	"social_communication": Social,
	"socialcommunication":  Social,
	"sensory":              Sensory,
	"sensory_processing":   Sensory,
	"sensoryprocessing":    Sensory,
	"motor":                Motor,
	"motor_skills":         Motor,
	"motorskills":          Motor,
}

// ParseDomain resolves a catalog tag. Unknown tags report ok=false so callers
// can drop the item instead of guessing.
func ParseDomain(tag string) (Domain, bool) {
	d, ok := domainAliases[strings.ToLower(strings.TrimSpace(tag))]
	return d, ok
}

// CategoryScores is the per-user aggregate persisted with each assessment.
// Values are non-negative with no fixed upper bound.
type CategoryScores struct {
	Attention           int `json:"attention"`
	SocialCommunication int `json:"social_communication"`
	SensoryProcessing   int `json:"sensory_processing"`
	ReadingDifficulty   int `json:"reading_difficulty"`
	MotorSkills         int `json:"motor_skills"`
}

func (c CategoryScores) Get(d Domain) int {
	switch d {
	case Attention:
		return c.Attention
	case Reading:
		return c.ReadingDifficulty
	case Social:
		return c.SocialCommunication
	case Sensory:
		return c.SensoryProcessing
	case Motor:
		return c.MotorSkills
	default:
		return 0
	}
}

// Add accumulates a non-negative contribution into the domain total.
func (c *CategoryScores) Add(d Domain, v int) {
	if v <= 0 {
		return
	}
	switch d {
	case Attention:
		c.Attention += v
	case Reading:
		c.ReadingDifficulty += v
	case Social:
		c.SocialCommunication += v
	case Sensory:
		c.SensoryProcessing += v
	case Motor:
		c.MotorSkills += v
	}
}
