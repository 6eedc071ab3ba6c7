package presets

// ClusterAnalyzer applies fixed symptom-cluster rules to the stored category
// scores. Rules look at score combinations because comorbid presentation is
// common; an extreme sensory score triggers on its own.
type ClusterAnalyzer struct {
	Rules ClusterRules
}

func (a *ClusterAnalyzer) Name() string { return "symptom_cluster" }

func (a *ClusterAnalyzer) Analyze(in *Input) Contribution {
	c := newContribution(a.Name())
	r := a.Rules
	s := in.Categories

	if s.Attention >= r.ADHDAttentionMin && s.SensoryProcessing >= r.ADHDSensoryMin {
		c.Delta.Add(FocusEnhanced, r.ADHDBonus)
		c.Evidence["adhd_cluster"] = 1
	}
	if s.ReadingDifficulty >= r.DyslexiaReadingMin {
		c.Delta.Add(ReadingSupport, r.DyslexiaBonus)
		c.Evidence["dyslexia_cluster"] = 1
	}
	if s.SocialCommunication >= r.AutismSocialMin && s.SensoryProcessing >= r.AutismSensoryMin {
		c.Delta.Add(SocialSimple, r.AutismBonus)
		c.Evidence["autism_cluster"] = 1
	}
	if s.SensoryProcessing >= r.SensoryExtremeMin {
		c.Delta.Add(SensoryCalm, r.SensoryExtremeBonus)
		c.Evidence["sensory_cluster"] = 1
	}
	return c
}
