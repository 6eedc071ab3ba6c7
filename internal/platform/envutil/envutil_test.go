package envutil

import "testing"

func TestTypedLookups(t *testing.T) {
	t.Setenv("ENVUTIL_INT", " 42 ")
	t.Setenv("ENVUTIL_BAD_INT", "forty")
	t.Setenv("ENVUTIL_FLOAT", "0.25")
	t.Setenv("ENVUTIL_BOOL", "off")
	t.Setenv("ENVUTIL_STR", "  redis:6379 ")

	if got := Int("ENVUTIL_INT", 1); got != 42 {
		t.Fatalf("Int=%d, want 42", got)
	}
	if got := Int("ENVUTIL_BAD_INT", 7); got != 7 {
		t.Fatalf("Int(bad)=%d, want default 7", got)
	}
	if got := Float("ENVUTIL_FLOAT", 1); got != 0.25 {
		t.Fatalf("Float=%v, want 0.25", got)
	}
	if got := Bool("ENVUTIL_BOOL", true); got {
		t.Fatalf("Bool=%v, want false", got)
	}
	if got := Bool("ENVUTIL_UNSET_BOOL", true); !got {
		t.Fatalf("Bool(unset)=%v, want default true", got)
	}
	if got := String("ENVUTIL_STR", ""); got != "redis:6379" {
		t.Fatalf("String=%q", got)
	}
	if got := String("ENVUTIL_UNSET_STR", "fallback"); got != "fallback" {
		t.Fatalf("String(unset)=%q", got)
	}
}
