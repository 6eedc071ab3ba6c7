package presets

import (
	"math"
	"testing"
)

func TestNormalizeResponse(t *testing.T) {
	cases := []struct {
		name string
		raw  any
		want int
	}{
		{name: "int_in_range", raw: 3, want: 3},
		{name: "int_above_range", raw: 7, want: 5},
		{name: "int_below_range", raw: -2, want: 0},
		{name: "float_rounds", raw: 2.6, want: 3},
		{name: "float_nan", raw: math.NaN(), want: 3},
		{name: "float_huge", raw: 1e300, want: 5},
		{name: "float_past_int64", raw: 1e19, want: 5},
		{name: "float_pos_inf", raw: math.Inf(1), want: 5},
		{name: "float_neg_inf", raw: math.Inf(-1), want: 0},
		{name: "int64_max", raw: int64(math.MaxInt64), want: 5},
		{name: "int64_min", raw: int64(math.MinInt64), want: 0},
		{name: "string_inf", raw: "inf", want: 5},
		{name: "string_huge", raw: "1e300", want: 5},
		{name: "numeric_string", raw: "4", want: 4},
		{name: "likert_often", raw: "Often", want: 4},
		{name: "likert_padded", raw: "  never ", want: 1},
		{name: "likert_always", raw: "ALWAYS", want: 5},
		{name: "likert_multiword", raw: "Very   often", want: 5},
		{name: "not_at_all", raw: "not at all", want: 0},
		{name: "unknown_text", raw: "banana", want: 3},
		{name: "nil", raw: nil, want: 3},
		{name: "bool_true", raw: true, want: 5},
		{name: "bool_false", raw: false, want: 0},
		{name: "unsupported_type", raw: []int{1}, want: 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeResponse(tc.raw); got != tc.want {
				t.Fatalf("NormalizeResponse(%v)=%d, want %d", tc.raw, got, tc.want)
			}
		})
	}
}

func TestNormalizeBinary(t *testing.T) {
	cases := []struct {
		raw  any
		want int
	}{
		{raw: "Yes", want: 1},
		{raw: "no", want: 0},
		{raw: true, want: 1},
		{raw: false, want: 0},
		{raw: 1, want: 1},
		{raw: 0, want: 0},
		{raw: 2.0, want: 1},
		{raw: "maybe", want: 0},
		{raw: nil, want: 0},
	}
	for _, tc := range cases {
		if got := NormalizeBinary(tc.raw); got != tc.want {
			t.Errorf("NormalizeBinary(%v)=%d, want %d", tc.raw, got, tc.want)
		}
	}
}
