package presets

// FontTestAnalyzer scores font-readability trials for dyslexia-style
// preference evidence and reported reading symptoms. Font-test data is the
// strongest single signal, so its bands carry the largest weights.
type FontTestAnalyzer struct {
	Rules FontTestRules
}

func (a *FontTestAnalyzer) Name() string { return "font_test" }

func (a *FontTestAnalyzer) Analyze(in *Input) Contribution {
	c := newContribution(a.Name())
	n := len(in.Trials)
	if n == 0 {
		return c
	}
	r := a.Rules
	friendly := fontSet(r.DyslexiaFriendlyFonts)
	conventional := fontSet(r.ConventionalFonts)

	var pref, sym float64
	for i, t := range in.Trials {
		pref += a.preferenceEvidence(t, friendly, conventional)
		if t.SymptomsMalformed {
			c.warnf("font trial %d (%s): malformed symptom data skipped", i, t.FontID)
			continue
		}
		sym += a.symptomEvidence(t.Symptoms)
	}
	combined := (pref + sym) / float64(n)

	switch {
	case combined >= r.StrongEvidence:
		c.Delta.Add(ReadingSupport, r.StrongBonus)
	case combined >= r.ModerateEvidence:
		c.Delta.Add(ReadingSupport, r.ModerateBonus)
	case combined >= r.MildEvidence:
		c.Delta.Add(ReadingSupport, r.MildReadingBonus)
		c.Delta.Add(SensoryCalm, r.MildSensoryBonus)
	case combined < r.NoneEvidence:
		// No reading problem in the font data: nudge the non-reading presets.
		c.Delta.Add(FocusEnhanced, r.NoneBonus)
		c.Delta.Add(FocusCalm, r.NoneBonus)
		c.Delta.Add(SocialSimple, r.NoneBonus)
	}
	if pref < r.SensoryOnlyPreferenceBelow && sym >= r.SensoryOnlySymptomMin {
		c.Delta.Add(SensoryCalm, r.SensoryOnlyBonus)
	}

	c.Evidence["trials"] = float64(n)
	c.Evidence["preference"] = pref
	c.Evidence["symptom"] = sym
	c.Evidence["combined"] = combined
	return c
}

func (a *FontTestAnalyzer) preferenceEvidence(t Trial, friendly, conventional map[string]struct{}) float64 {
	r := a.Rules
	id := NormalizeFontID(t.FontID)
	rated := t.Rating >= 1
	var e float64
	if _, ok := friendly[id]; ok {
		if rated && t.Rating >= r.HighRating {
			e += r.FriendlyHighRating
		}
		if t.Difficulty == DifficultyEasy {
			e += r.FriendlyEasy
		}
	}
	if _, ok := conventional[id]; ok {
		if rated && t.Rating <= r.LowRating {
			e += r.ConventionalLow
		}
		if t.Difficulty == DifficultyHard {
			e += r.ConventionalHard
		}
	}
	return e
}

func (a *FontTestAnalyzer) symptomEvidence(s SymptomSet) float64 {
	r := a.Rules
	var e float64
	if s.LettersMove {
		e += r.LettersMove
	}
	if s.WordsBlur {
		e += r.WordsBlur
	}
	if s.LosesFocus {
		e += r.LosesFocus
	}
	if s.EyeStrain {
		e += r.EyeStrain
	}
	return e
}

func fontSet(ids []string) map[string]struct{} {
	out := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		out[NormalizeFontID(id)] = struct{}{}
	}
	return out
}
