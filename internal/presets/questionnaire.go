package presets

import "sort"

// QuestionnaireAnalyzer sums normalized answers per domain and converts the
// totals into medium-confidence preset evidence.
type QuestionnaireAnalyzer struct {
	Rules QuestionnaireRules
}

func (a *QuestionnaireAnalyzer) Name() string { return "questionnaire" }

func (a *QuestionnaireAnalyzer) Analyze(in *Input) Contribution {
	c := newContribution(a.Name())
	if len(in.Responses) == 0 {
		return c
	}
	totals := DomainTotals(in.Responses, in.Questions, &c)
	r := a.Rules

	attention := totals.Get(Attention)
	reading := totals.Get(Reading)
	social := totals.Get(Social)
	sensory := totals.Get(Sensory)

	if attention >= r.AttentionMin {
		c.Delta.Add(FocusEnhanced, r.AttentionBonus)
		if sensory >= r.CalmSensoryMin {
			c.Delta.Add(FocusCalm, r.CalmBonus)
		}
	}
	if reading >= r.ReadingMin {
		c.Delta.Add(ReadingSupport, r.ReadingBonus)
	}
	if social >= r.SocialMin {
		c.Delta.Add(SocialSimple, r.SocialBonus)
	}
	if sensory >= r.SensoryMin {
		c.Delta.Add(SensoryCalm, r.SensoryBonus)
	}

	c.Evidence["attention"] = float64(attention)
	c.Evidence["reading"] = float64(reading)
	c.Evidence["social"] = float64(social)
	c.Evidence["sensory"] = float64(sensory)
	return c
}

// DomainTotals normalizes every response and sums it into its domain. Items
// without a known domain tag are dropped; when c is non-nil a warning is
// recorded for each.
func DomainTotals(responses map[string]any, questions map[string]QuestionMeta, c *Contribution) CategoryScores {
	var totals CategoryScores
	ids := make([]string, 0, len(responses))
	for id := range responses {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		meta, ok := questions[id]
		if !ok {
			if c != nil {
				c.warnf("question %q has no domain tag; dropped", id)
			}
			continue
		}
		d, ok := ParseDomain(meta.Domain)
		if !ok {
			if c != nil {
				c.warnf("question %q has unknown domain %q; dropped", id, meta.Domain)
			}
			continue
		}
		raw := responses[id]
		if meta.Binary {
			totals.Add(d, NormalizeBinary(raw))
		} else {
			totals.Add(d, NormalizeResponse(raw))
		}
	}
	return totals
}
