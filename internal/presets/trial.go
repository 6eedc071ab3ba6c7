package presets

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Difficulty is the tier a learner reports after reading a font sample.
type Difficulty int

const (
	DifficultyNeutral Difficulty = iota
	DifficultyEasy
	DifficultyHard
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyHard:
		return "hard"
	default:
		return "neutral"
	}
}

func ParseDifficulty(s string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, true
	case "hard", "difficult":
		return DifficultyHard, true
	case "neutral", "medium", "ok", "":
		return DifficultyNeutral, true
	default:
		return DifficultyNeutral, false
	}
}

// SymptomSet is the fixed set of reading symptoms a learner can flag on a
// font trial.
type SymptomSet struct {
	LettersMove bool `json:"letters_move"`
	WordsBlur   bool `json:"words_blur"`
	LosesFocus  bool `json:"loses_focus"`
	EyeStrain   bool `json:"eye_strain"`
	Headache    bool `json:"headache"`
	LosesPlace  bool `json:"loses_place"`
}

// Count is the number of flags set.
func (s SymptomSet) Count() int {
	n := 0
	for _, f := range []bool{s.LettersMove, s.WordsBlur, s.LosesFocus, s.EyeStrain, s.Headache, s.LosesPlace} {
		if f {
			n++
		}
	}
	return n
}

// ParseSymptoms decodes stored symptom JSON. Empty input and JSON null are an
// empty set; unknown keys are ignored; anything that does not fit the schema
// (non-object, non-boolean flag) is an error.
func ParseSymptoms(raw []byte) (SymptomSet, error) {
	var s SymptomSet
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return s, nil
	}
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return SymptomSet{}, fmt.Errorf("decode symptoms: %w", err)
	}
	return s, nil
}

// Trial is one learner reaction to one font sample.
type Trial struct {
	FontID     string
	Rating     int
	Difficulty Difficulty
	// Latency is zero when the client did not record a response time.
	Latency  time.Duration
	Symptoms SymptomSet
	// SymptomsMalformed marks a trial whose stored symptom data could not be
	// decoded; its symptom contribution is skipped.
	SymptomsMalformed bool
}

func (t Trial) hasLatency() bool { return t.Latency > 0 }

// NormalizeFontID lower-cases and joins words with underscores so that
// "Open-Dyslexic" style variants from different clients compare equal.
func NormalizeFontID(id string) string {
	s := strings.ToLower(strings.TrimSpace(id))
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	return strings.Join(strings.Fields(s), "_")
}
