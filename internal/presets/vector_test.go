package presets

import (
	"encoding/json"
	"testing"
)

func TestArgMaxTieBreaksByEnumerationOrder(t *testing.T) {
	var v ScoreVector
	if got := v.ArgMax(); got != Standard {
		t.Fatalf("all-zero ArgMax=%v, want standard", got)
	}

	v[SensoryCalm] = 10
	v[ReadingSupport] = 10
	if got := v.ArgMax(); got != ReadingSupport {
		t.Fatalf("tie ArgMax=%v, want reading_support", got)
	}

	v[SensoryCalm] = 10.5
	if got := v.ArgMax(); got != SensoryCalm {
		t.Fatalf("ArgMax=%v, want sensory_calm", got)
	}
}

func TestScoreVectorJSON(t *testing.T) {
	v := Baseline(DefaultRules().Baseline)
	v.Add(FocusCalm, 20)

	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var m map[string]float64
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("Unmarshal map: %v", err)
	}
	if m["focus_calm"] != 20.5 || m["standard"] != 1.0 || len(m) != 6 {
		t.Fatalf("unexpected wire map: %v", m)
	}

	var back ScoreVector
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal vector: %v", err)
	}
	if back != v {
		t.Fatalf("round trip mismatch: %v vs %v", back, v)
	}

	if err := json.Unmarshal([]byte(`{"calm_ish":1}`), &back); err == nil {
		t.Fatalf("expected error for unknown preset key")
	}
}

func TestParsePreset(t *testing.T) {
	for _, p := range All() {
		got, ok := ParsePreset(p.String())
		if !ok || got != p {
			t.Fatalf("ParsePreset(%q)=(%v,%v)", p.String(), got, ok)
		}
	}
	if got, ok := ParsePreset("READING_SUPPORT"); !ok || got != ReadingSupport {
		t.Fatalf("upper-case constant not accepted: %v %v", got, ok)
	}
	if _, ok := ParsePreset("dark_mode"); ok {
		t.Fatalf("unknown preset accepted")
	}
}
