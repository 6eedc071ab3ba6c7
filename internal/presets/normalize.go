package presets

import (
	"math"
	"strconv"
	"strings"
)

const (
	ResponseMin       = 0
	ResponseMax       = 5
	ResponseNeutral   = 3
	BinaryResponseNo  = 0
	BinaryResponseYes = 1
)

var likertLabels = map[string]int{
	"not at all": 0,
	"none":       0,
	"never":      1,
	"rarely":     2,
	"seldom":     2,
	"sometimes":  3,
	"neutral":    3,
	"often":      4,
	"usually":    4,
	"very often": 5,
	"always":     5,
	"yes":        5,
	"no":         0,
	"true":       5,
	"false":      0,
}

// NormalizeResponse maps a raw questionnaire answer onto [0,5]. Numbers are
// rounded and clamped, Likert labels use the fixed vocabulary above, and
// anything unrecognized lands on the neutral midpoint.
func NormalizeResponse(raw any) int {
	switch v := raw.(type) {
	case nil:
		return ResponseNeutral
	case bool:
		if v {
			return ResponseMax
		}
		return ResponseMin
	case int:
		return clampResponse(float64(v))
	case int32:
		return clampResponse(float64(v))
	case int64:
		return clampResponse(float64(v))
	case float32:
		return clampResponse(float64(v))
	case float64:
		return clampResponse(v)
	case string:
		s := strings.ToLower(strings.Join(strings.Fields(v), " "))
		if n, ok := likertLabels[s]; ok {
			return n
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return clampResponse(f)
		}
		return ResponseNeutral
	default:
		return ResponseNeutral
	}
}

// NormalizeBinary maps a yes/no answer onto {0,1}. Only affirmative values
// count as yes.
func NormalizeBinary(raw any) int {
	switch v := raw.(type) {
	case bool:
		if v {
			return BinaryResponseYes
		}
	case int:
		if v > 0 {
			return BinaryResponseYes
		}
	case int64:
		if v > 0 {
			return BinaryResponseYes
		}
	case float64:
		if v > 0 && !math.IsNaN(v) {
			return BinaryResponseYes
		}
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "yes", "y", "true", "1", "always", "often":
			return BinaryResponseYes
		}
	}
	return BinaryResponseNo
}

func clampResponse(f float64) int {
	if math.IsNaN(f) {
		return ResponseNeutral
	}
	// clamp before converting; out-of-range floats do not survive int()
	if f <= ResponseMin {
		return ResponseMin
	}
	if f >= ResponseMax {
		return ResponseMax
	}
	return int(math.Round(f))
}
