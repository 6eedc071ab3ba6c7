// Package presets selects an accessibility UI preset for a learner by fusing
// independent evidence sources into one score vector.
//
// Each analyzer reads the same immutable Input and returns a non-negative
// delta over the fixed preset set; the Engine sums baseline and deltas and
// picks the highest-scoring preset, breaking ties by enumeration order.
package presets

import (
	"fmt"
	"strings"
)

// Preset is one of the fixed UI accessibility configurations.
type Preset int

// Enumeration order is also the tie-break order.
const (
	Standard Preset = iota
	ReadingSupport
	FocusEnhanced
	FocusCalm
	SocialSimple
	SensoryCalm

	numPresets
)

var presetNames = [numPresets]string{
	Standard:       "standard",
	ReadingSupport: "reading_support",
	FocusEnhanced:  "focus_enhanced",
	FocusCalm:      "focus_calm",
	SocialSimple:   "social_simple",
	SensoryCalm:    "sensory_calm",
}

// All returns every preset in enumeration order.
func All() []Preset {
	out := make([]Preset, 0, numPresets)
	for p := Standard; p < numPresets; p++ {
		out = append(out, p)
	}
	return out
}

func (p Preset) Valid() bool { return p >= Standard && p < numPresets }

func (p Preset) String() string {
	if !p.Valid() {
		return fmt.Sprintf("preset(%d)", int(p))
	}
	return presetNames[p]
}

// ParsePreset accepts wire identifiers case-insensitively, including the
// upper-case constants older clients send ("READING_SUPPORT").
func ParsePreset(s string) (Preset, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, "-", "_")
	for p, name := range presetNames {
		if name == key {
			return Preset(p), true
		}
	}
	return Standard, false
}

func (p Preset) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("invalid preset %d", int(p))
	}
	return []byte(p.String()), nil
}

func (p *Preset) UnmarshalText(b []byte) error {
	v, ok := ParsePreset(string(b))
	if !ok {
		return fmt.Errorf("unknown preset %q", string(b))
	}
	*p = v
	return nil
}
