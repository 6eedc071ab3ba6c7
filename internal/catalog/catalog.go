// Package catalog holds the screening questionnaire: which domain each
// question feeds and how strongly.
package catalog

import (
	_ "embed"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/neuroadapt-backend/internal/presets"
)

//go:embed questions.yaml
var defaultCatalog []byte

type Question struct {
	ID     string  `yaml:"id" json:"id"`
	Domain string  `yaml:"domain" json:"domain"`
	Weight float64 `yaml:"weight,omitempty" json:"weight"`
	Binary bool    `yaml:"binary,omitempty" json:"binary"`
	Text   string  `yaml:"text" json:"text"`
}

type Catalog struct {
	Questions []Question `yaml:"questions" json:"questions"`

	byID map[string]Question
}

// Default returns the embedded questionnaire.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog file; an empty path yields the embedded default.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read question catalog: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal question catalog: %w", err)
	}
	c.byID = make(map[string]Question, len(c.Questions))
	for i := range c.Questions {
		q := &c.Questions[i]
		q.ID = strings.TrimSpace(q.ID)
		if q.ID == "" {
			return nil, fmt.Errorf("question catalog: entry %d has no id", i)
		}
		if _, dup := c.byID[q.ID]; dup {
			return nil, fmt.Errorf("question catalog: duplicate id %q", q.ID)
		}
		if q.Weight < 0 {
			return nil, fmt.Errorf("question catalog: %q has negative weight", q.ID)
		}
		if q.Weight == 0 {
			q.Weight = 1
		}
		c.byID[q.ID] = *q
	}
	return &c, nil
}

func (c *Catalog) Lookup(id string) (Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// Meta is the question id to domain side channel the questionnaire analyzer
// consumes.
func (c *Catalog) Meta() map[string]presets.QuestionMeta {
	out := make(map[string]presets.QuestionMeta, len(c.Questions))
	for _, q := range c.Questions {
		out[q.ID] = presets.QuestionMeta{Domain: q.Domain, Binary: q.Binary}
	}
	return out
}

// CategoryScores turns raw answers into the persisted per-domain aggregate:
// a weighted sum of normalized answers, rounded per domain. Answers to ids
// not in the catalog, or to questions with an unknown domain, are reported
// back and otherwise ignored.
func (c *Catalog) CategoryScores(responses map[string]any) (presets.CategoryScores, []string) {
	ids := make([]string, 0, len(responses))
	for id := range responses {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	sums := map[presets.Domain]float64{}
	var skipped []string
	for _, id := range ids {
		q, ok := c.byID[id]
		if !ok {
			skipped = append(skipped, id)
			continue
		}
		d, ok := presets.ParseDomain(q.Domain)
		if !ok {
			skipped = append(skipped, id)
			continue
		}
		var v int
		if q.Binary {
			v = presets.NormalizeBinary(responses[id])
		} else {
			v = presets.NormalizeResponse(responses[id])
		}
		sums[d] += float64(v) * q.Weight
	}

	var out presets.CategoryScores
	for d, s := range sums {
		out.Add(d, int(math.Round(s)))
	}
	return out, skipped
}
