package presets

import (
	"encoding/json"
	"fmt"
)

// ScoreVector holds one score per preset. It is used both for the running
// total of a classification run and for each analyzer's delta.
type ScoreVector [numPresets]float64

// Baseline is the starting vector: non-zero everywhere, standard slightly ahead.
func Baseline(r BaselineRules) ScoreVector {
	var v ScoreVector
	for _, p := range All() {
		v[p] = r.Other
	}
	v[Standard] = r.Standard
	return v
}

func (v *ScoreVector) Add(p Preset, delta float64) {
	if !p.Valid() {
		return
	}
	v[p] += delta
}

func (v ScoreVector) Get(p Preset) float64 {
	if !p.Valid() {
		return 0
	}
	return v[p]
}

// Plus returns the element-wise sum.
func (v ScoreVector) Plus(o ScoreVector) ScoreVector {
	for i := range v {
		v[i] += o[i]
	}
	return v
}

func (v ScoreVector) IsZero() bool {
	for _, s := range v {
		if s != 0 {
			return false
		}
	}
	return true
}

// ArgMax returns the highest-scoring preset; equal scores resolve to the
// preset that comes first in enumeration order.
func (v ScoreVector) ArgMax() Preset {
	best := Standard
	for _, p := range All() {
		if v[p] > v[best] {
			best = p
		}
	}
	return best
}

// Map renders the vector keyed by wire identifier.
func (v ScoreVector) Map() map[string]float64 {
	out := make(map[string]float64, numPresets)
	for _, p := range All() {
		out[p.String()] = v[p]
	}
	return out
}

func (v ScoreVector) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Map())
}

func (v *ScoreVector) UnmarshalJSON(b []byte) error {
	var m map[string]float64
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	var out ScoreVector
	for k, s := range m {
		p, ok := ParsePreset(k)
		if !ok {
			return fmt.Errorf("unknown preset %q", k)
		}
		out[p] = s
	}
	*v = out
	return nil
}
