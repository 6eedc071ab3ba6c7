package presets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeRules(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write rules: %v", err)
	}
	return path
}

func TestLoadRulesOverlaysDefaults(t *testing.T) {
	path := writeRules(t, `
questionnaire:
  reading_min: 10
behavioral:
  slow_mean_response: 10s
`)
	r, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules: %v", err)
	}
	def := DefaultRules()
	if r.Questionnaire.ReadingMin != 10 {
		t.Fatalf("reading_min=%d, want 10", r.Questionnaire.ReadingMin)
	}
	if r.Questionnaire.ReadingBonus != def.Questionnaire.ReadingBonus {
		t.Fatalf("reading_bonus lost default: %v", r.Questionnaire.ReadingBonus)
	}
	if r.Behavioral.SlowMeanResponse != 10*time.Second {
		t.Fatalf("slow_mean_response=%v, want 10s", r.Behavioral.SlowMeanResponse)
	}
	if len(r.FontTest.DyslexiaFriendlyFonts) != len(def.FontTest.DyslexiaFriendlyFonts) {
		t.Fatalf("font list changed without override")
	}
}

func TestLoadRulesEmptyPathIsDefault(t *testing.T) {
	r, err := LoadRules("")
	if err != nil {
		t.Fatalf("LoadRules: %v", err)
	}
	if r.Cluster != DefaultRules().Cluster {
		t.Fatalf("unexpected cluster rules %+v", r.Cluster)
	}
}

func TestLoadRulesExampleFile(t *testing.T) {
	r, err := LoadRules(filepath.Join("..", "..", "config", "preset_rules.example.yaml"))
	if err != nil {
		t.Fatalf("LoadRules: %v", err)
	}
	if r.Behavioral.FastResponse != 2*time.Second {
		t.Fatalf("fast_response=%v", r.Behavioral.FastResponse)
	}
	if r.Cluster != DefaultRules().Cluster {
		t.Fatalf("example file should leave cluster rules alone")
	}
}

func TestLoadRulesRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"negative_weight":   "cluster:\n  adhd_bonus: -3\n",
		"zero_baseline":     "baseline:\n  other: 0\n",
		"not_yaml":          "questionnaire: [",
		"negative_duration": "behavioral:\n  fast_response: -2s\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadRules(writeRules(t, body)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}

	_, err := LoadRules(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "read preset rules") {
		t.Fatalf("missing file err=%v", err)
	}
}

func TestSettingsFor(t *testing.T) {
	for _, p := range All() {
		s := SettingsFor(p)
		if s.FontFamily == "" || s.FontSizePx <= 0 {
			t.Fatalf("%s: incomplete settings %+v", p, s)
		}
	}
	if SettingsFor(ReadingSupport).LetterSpacingEm <= SettingsFor(Standard).LetterSpacingEm {
		t.Fatalf("reading_support should widen letter spacing")
	}
	if !SettingsFor(FocusCalm).ReduceMotion {
		t.Fatalf("focus_calm should reduce motion")
	}
	if SettingsFor(Preset(42)) != SettingsFor(Standard) {
		t.Fatalf("unknown preset should fall back to standard")
	}
}
