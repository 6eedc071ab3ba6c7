package presets

import "time"

// BehavioralAnalyzer looks for low-confidence response patterns in font-trial
// metadata. Its weights stay below the primary signals; it exists to break
// ties when those are weak or disagree.
type BehavioralAnalyzer struct {
	Rules BehavioralRules
}

func (a *BehavioralAnalyzer) Name() string { return "behavioral_pattern" }

func (a *BehavioralAnalyzer) Analyze(in *Input) Contribution {
	c := newContribution(a.Name())
	r := a.Rules
	n := len(in.Trials)
	if n == 0 || n < r.MinTrials {
		return c
	}

	var highRated, symptomTrials, symptomFlags int
	var latencies []time.Duration
	for _, t := range in.Trials {
		if t.Rating >= r.HighRating {
			highRated++
		}
		if t.hasLatency() {
			latencies = append(latencies, t.Latency)
		}
		if !t.SymptomsMalformed {
			symptomTrials++
			symptomFlags += t.Symptoms.Count()
		}
	}

	// Uniformly high ratings without discrimination.
	highShare := float64(highRated) / float64(n)
	if highShare >= r.HighRatingShare {
		c.Delta.Add(FocusEnhanced, r.HighRatingFocus)
		c.Delta.Add(FocusCalm, r.HighRatingCalm)
	}
	c.Evidence["high_rating_share"] = highShare

	if len(latencies) > 0 && len(latencies) >= r.MinTrials {
		var fast int
		var total time.Duration
		for _, l := range latencies {
			if l < r.FastResponse {
				fast++
			}
			total += l
		}
		fastShare := float64(fast) / float64(len(latencies))
		mean := total / time.Duration(len(latencies))
		if fastShare >= r.FastShare {
			c.Delta.Add(FocusEnhanced, r.FastBonus)
		}
		if mean > r.SlowMeanResponse {
			c.Delta.Add(SocialSimple, r.SlowBonus)
		}
		c.Evidence["fast_share"] = fastShare
		c.Evidence["mean_latency_ms"] = float64(mean.Milliseconds())
	}

	if symptomTrials > 0 {
		perTrial := float64(symptomFlags) / float64(symptomTrials)
		if perTrial >= r.SymptomsPerTrial {
			c.Delta.Add(SensoryCalm, r.SymptomBonus)
		}
		c.Evidence["symptoms_per_trial"] = perTrial
	}
	return c
}
