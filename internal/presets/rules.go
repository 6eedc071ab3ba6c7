package presets

import (
	"fmt"
	"os"
	"reflect"
	"time"

	"gopkg.in/yaml.v3"
)

// Rules holds every threshold and weight the analyzers use. The defaults are
// the research-derived constants; a YAML file may override any subset.
type Rules struct {
	Baseline      BaselineRules      `yaml:"baseline" json:"baseline"`
	FontTest      FontTestRules      `yaml:"font_test" json:"font_test"`
	Questionnaire QuestionnaireRules `yaml:"questionnaire" json:"questionnaire"`
	Cluster       ClusterRules       `yaml:"cluster" json:"cluster"`
	Demographic   DemographicRules   `yaml:"demographic" json:"demographic"`
	Behavioral    BehavioralRules    `yaml:"behavioral" json:"behavioral"`
}

type BaselineRules struct {
	Standard float64 `yaml:"standard" json:"standard"`
	Other    float64 `yaml:"other" json:"other"`
}

type FontTestRules struct {
	DyslexiaFriendlyFonts []string `yaml:"dyslexia_friendly_fonts" json:"dyslexia_friendly_fonts"`
	ConventionalFonts     []string `yaml:"conventional_fonts" json:"conventional_fonts"`

	HighRating int `yaml:"high_rating" json:"high_rating"`
	LowRating  int `yaml:"low_rating" json:"low_rating"`

	FriendlyHighRating float64 `yaml:"friendly_high_rating" json:"friendly_high_rating"`
	FriendlyEasy       float64 `yaml:"friendly_easy" json:"friendly_easy"`
	ConventionalLow    float64 `yaml:"conventional_low" json:"conventional_low"`
	ConventionalHard   float64 `yaml:"conventional_hard" json:"conventional_hard"`

	LettersMove float64 `yaml:"letters_move" json:"letters_move"`
	WordsBlur   float64 `yaml:"words_blur" json:"words_blur"`
	LosesFocus  float64 `yaml:"loses_focus" json:"loses_focus"`
	EyeStrain   float64 `yaml:"eye_strain" json:"eye_strain"`

	StrongEvidence   float64 `yaml:"strong_evidence" json:"strong_evidence"`
	StrongBonus      float64 `yaml:"strong_bonus" json:"strong_bonus"`
	ModerateEvidence float64 `yaml:"moderate_evidence" json:"moderate_evidence"`
	ModerateBonus    float64 `yaml:"moderate_bonus" json:"moderate_bonus"`
	MildEvidence     float64 `yaml:"mild_evidence" json:"mild_evidence"`
	MildReadingBonus float64 `yaml:"mild_reading_bonus" json:"mild_reading_bonus"`
	MildSensoryBonus float64 `yaml:"mild_sensory_bonus" json:"mild_sensory_bonus"`
	NoneEvidence     float64 `yaml:"none_evidence" json:"none_evidence"`
	NoneBonus        float64 `yaml:"none_bonus" json:"none_bonus"`

	SensoryOnlyPreferenceBelow float64 `yaml:"sensory_only_preference_below" json:"sensory_only_preference_below"`
	SensoryOnlySymptomMin      float64 `yaml:"sensory_only_symptom_min" json:"sensory_only_symptom_min"`
	SensoryOnlyBonus           float64 `yaml:"sensory_only_bonus" json:"sensory_only_bonus"`
}

type QuestionnaireRules struct {
	AttentionMin   int     `yaml:"attention_min" json:"attention_min"`
	AttentionBonus float64 `yaml:"attention_bonus" json:"attention_bonus"`
	CalmSensoryMin int     `yaml:"calm_sensory_min" json:"calm_sensory_min"`
	CalmBonus      float64 `yaml:"calm_bonus" json:"calm_bonus"`
	ReadingMin     int     `yaml:"reading_min" json:"reading_min"`
	ReadingBonus   float64 `yaml:"reading_bonus" json:"reading_bonus"`
	SocialMin      int     `yaml:"social_min" json:"social_min"`
	SocialBonus    float64 `yaml:"social_bonus" json:"social_bonus"`
	SensoryMin     int     `yaml:"sensory_min" json:"sensory_min"`
	SensoryBonus   float64 `yaml:"sensory_bonus" json:"sensory_bonus"`
}

type ClusterRules struct {
	ADHDAttentionMin    int     `yaml:"adhd_attention_min" json:"adhd_attention_min"`
	ADHDSensoryMin      int     `yaml:"adhd_sensory_min" json:"adhd_sensory_min"`
	ADHDBonus           float64 `yaml:"adhd_bonus" json:"adhd_bonus"`
	DyslexiaReadingMin  int     `yaml:"dyslexia_reading_min" json:"dyslexia_reading_min"`
	DyslexiaBonus       float64 `yaml:"dyslexia_bonus" json:"dyslexia_bonus"`
	AutismSocialMin     int     `yaml:"autism_social_min" json:"autism_social_min"`
	AutismSensoryMin    int     `yaml:"autism_sensory_min" json:"autism_sensory_min"`
	AutismBonus         float64 `yaml:"autism_bonus" json:"autism_bonus"`
	SensoryExtremeMin   int     `yaml:"sensory_extreme_min" json:"sensory_extreme_min"`
	SensoryExtremeBonus float64 `yaml:"sensory_extreme_bonus" json:"sensory_extreme_bonus"`
}

type DemographicRules struct {
	StandardBonus float64 `yaml:"standard_bonus" json:"standard_bonus"`
}

type BehavioralRules struct {
	MinTrials int `yaml:"min_trials" json:"min_trials"`

	HighRating      int     `yaml:"high_rating" json:"high_rating"`
	HighRatingShare float64 `yaml:"high_rating_share" json:"high_rating_share"`
	HighRatingFocus float64 `yaml:"high_rating_focus" json:"high_rating_focus"`
	HighRatingCalm  float64 `yaml:"high_rating_calm" json:"high_rating_calm"`

	FastResponse     time.Duration `yaml:"fast_response" json:"fast_response"`
	FastShare        float64       `yaml:"fast_share" json:"fast_share"`
	FastBonus        float64       `yaml:"fast_bonus" json:"fast_bonus"`
	SlowMeanResponse time.Duration `yaml:"slow_mean_response" json:"slow_mean_response"`
	SlowBonus        float64       `yaml:"slow_bonus" json:"slow_bonus"`

	SymptomsPerTrial float64 `yaml:"symptoms_per_trial" json:"symptoms_per_trial"`
	SymptomBonus     float64 `yaml:"symptom_bonus" json:"symptom_bonus"`
}

// DefaultRules returns the stock thresholds and weights.
func DefaultRules() Rules {
	return Rules{
		Baseline: BaselineRules{Standard: 1.0, Other: 0.5},
		FontTest: FontTestRules{
			DyslexiaFriendlyFonts: []string{
				"opendyslexic",
				"opendyslexic_mono",
				"lexend",
				"atkinson_hyperlegible",
				"comic_sans_ms",
				"comic_neue",
				"dyslexie",
				"arial_rounded",
				"roboto_mono",
			},
			ConventionalFonts: []string{
				"times_new_roman",
				"georgia",
				"garamond",
				"arial",
				"helvetica",
				"calibri",
			},
			HighRating:                 4,
			LowRating:                  2,
			FriendlyHighRating:         2.0,
			FriendlyEasy:               1.5,
			ConventionalLow:            1.0,
			ConventionalHard:           1.5,
			LettersMove:                2.0,
			WordsBlur:                  1.5,
			LosesFocus:                 1.5,
			EyeStrain:                  2.0,
			StrongEvidence:             3.0,
			StrongBonus:                30,
			ModerateEvidence:           2.0,
			ModerateBonus:              20,
			MildEvidence:               1.0,
			MildReadingBonus:           10,
			MildSensoryBonus:           8,
			NoneEvidence:               0.5,
			NoneBonus:                  5,
			SensoryOnlyPreferenceBelow: 1.0,
			SensoryOnlySymptomMin:      2.0,
			SensoryOnlyBonus:           15,
		},
		Questionnaire: QuestionnaireRules{
			AttentionMin:   15,
			AttentionBonus: 25,
			CalmSensoryMin: 12,
			CalmBonus:      20,
			ReadingMin:     12,
			ReadingBonus:   30,
			SocialMin:      14,
			SocialBonus:    25,
			SensoryMin:     12,
			SensoryBonus:   20,
		},
		Cluster: ClusterRules{
			ADHDAttentionMin:    16,
			ADHDSensoryMin:      10,
			ADHDBonus:           20,
			DyslexiaReadingMin:  14,
			DyslexiaBonus:       25,
			AutismSocialMin:     15,
			AutismSensoryMin:    13,
			AutismBonus:         22,
			SensoryExtremeMin:   16,
			SensoryExtremeBonus: 25,
		},
		Demographic: DemographicRules{StandardBonus: 5},
		Behavioral: BehavioralRules{
			MinTrials:        3,
			HighRating:       4,
			HighRatingShare:  0.8,
			HighRatingFocus:  8,
			HighRatingCalm:   6,
			FastResponse:     2 * time.Second,
			FastShare:        0.6,
			FastBonus:        12,
			SlowMeanResponse: 15 * time.Second,
			SlowBonus:        10,
			SymptomsPerTrial: 2,
			SymptomBonus:     15,
		},
	}
}

// LoadRules overlays the YAML file at path onto DefaultRules. An empty path
// returns the defaults.
func LoadRules(path string) (Rules, error) {
	rules := DefaultRules()
	if path == "" {
		return rules, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("read preset rules: %w", err)
	}
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return Rules{}, fmt.Errorf("parse preset rules: %w", err)
	}
	if err := rules.Validate(); err != nil {
		return Rules{}, err
	}
	return rules, nil
}

// Validate rejects negative weights: analyzers only ever add to a preset.
func (r Rules) Validate() error {
	if r.Baseline.Standard <= 0 || r.Baseline.Other <= 0 {
		return fmt.Errorf("preset rules: baseline scores must be positive")
	}
	for _, section := range []any{r.FontTest, r.Questionnaire, r.Cluster, r.Demographic, r.Behavioral} {
		if field, ok := firstNegative(section); ok {
			return fmt.Errorf("preset rules: %s must not be negative", field)
		}
	}
	return nil
}

func firstNegative(section any) (string, bool) {
	v := reflect.ValueOf(section)
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		name := t.Field(i).Tag.Get("yaml")
		switch f.Kind() {
		case reflect.Float64:
			if f.Float() < 0 {
				return name, true
			}
		case reflect.Int, reflect.Int64:
			if f.Int() < 0 {
				return name, true
			}
		}
	}
	return "", false
}
