package presets

// UISettings are the concrete interface defaults a preset expands to.
type UISettings struct {
	FontFamily       string  `json:"font_family"`
	FontSizePx       int     `json:"font_size_px"`
	LineSpacing      float64 `json:"line_spacing"`
	LetterSpacingEm  float64 `json:"letter_spacing_em"`
	Contrast         string  `json:"contrast"`
	ReduceMotion     bool    `json:"reduce_motion"`
	SessionMinutes   int     `json:"session_minutes"`
	BreakReminders   bool    `json:"break_reminders"`
	SimplifiedLayout bool    `json:"simplified_layout"`
	LiteralLanguage  bool    `json:"literal_language"`
}

var settingsByPreset = [numPresets]UISettings{
	Standard: {
		FontFamily:     "Inter",
		FontSizePx:     16,
		LineSpacing:    1.5,
		Contrast:       "standard",
		SessionMinutes: 30,
	},
	ReadingSupport: {
		FontFamily:      "OpenDyslexic",
		FontSizePx:      18,
		LineSpacing:     2.0,
		LetterSpacingEm: 0.12,
		Contrast:        "soft",
		SessionMinutes:  25,
		BreakReminders:  true,
	},
	FocusEnhanced: {
		FontFamily:       "Lexend",
		FontSizePx:       17,
		LineSpacing:      1.6,
		Contrast:         "high",
		SessionMinutes:   15,
		BreakReminders:   true,
		SimplifiedLayout: true,
	},
	FocusCalm: {
		FontFamily:       "Lexend",
		FontSizePx:       17,
		LineSpacing:      1.7,
		Contrast:         "soft",
		ReduceMotion:     true,
		SessionMinutes:   15,
		BreakReminders:   true,
		SimplifiedLayout: true,
	},
	SocialSimple: {
		FontFamily:       "Atkinson Hyperlegible",
		FontSizePx:       16,
		LineSpacing:      1.6,
		Contrast:         "standard",
		ReduceMotion:     true,
		SessionMinutes:   30,
		SimplifiedLayout: true,
		LiteralLanguage:  true,
	},
	SensoryCalm: {
		FontFamily:       "Atkinson Hyperlegible",
		FontSizePx:       17,
		LineSpacing:      1.8,
		Contrast:         "soft",
		ReduceMotion:     true,
		SessionMinutes:   20,
		BreakReminders:   true,
		SimplifiedLayout: true,
	},
}

// SettingsFor is a static lookup; unknown presets fall back to standard.
func SettingsFor(p Preset) UISettings {
	if !p.Valid() {
		return settingsByPreset[Standard]
	}
	return settingsByPreset[p]
}
