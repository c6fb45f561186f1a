package config

import (
	"testing"
	"time"

	"watchdog/internal/platform/testkit"
)

func TestPrefixComposition(t *testing.T) {
	t.Setenv("WATCHDOG_DETECT_WINDOW_DAYS", "14")

	det := New().Prefix("WATCHDOG_").Prefix("DETECT_")
	if got := det.MayInt("WINDOW_DAYS", 30); got != 14 {
		t.Fatalf("MayInt = %d, want 14", got)
	}
}

func TestMustStringPanicsWhenMissing(t *testing.T) {
	c := New().Prefix("WATCHDOG_TEST_")
	testkit.MustPanic(t, func() { c.MustString("NOPE") })
}

func TestMayAccessorsFallBack(t *testing.T) {
	t.Setenv("WD_THRESHOLD", "2.5")
	t.Setenv("WD_BAD_FLOAT", "many")
	t.Setenv("WD_DRY_RUN", "true")
	t.Setenv("WD_TIMEOUT", "250ms")

	c := New().Prefix("WD_")

	if got := c.MayFloat64("THRESHOLD", 3.0); got != 2.5 {
		t.Fatalf("MayFloat64 = %v, want 2.5", got)
	}
	if got := c.MayFloat64("BAD_FLOAT", 3.0); got != 3.0 {
		t.Fatalf("MayFloat64 invalid should default, got %v", got)
	}
	if !c.MayBool("DRY_RUN", false) {
		t.Fatalf("MayBool should read true")
	}
	if got := c.MayDuration("TIMEOUT", time.Second); got != 250*time.Millisecond {
		t.Fatalf("MayDuration = %v, want 250ms", got)
	}
	if got := c.MayString("MISSING", "def"); got != "def" {
		t.Fatalf("MayString = %q, want def", got)
	}
}

func TestMayEnum(t *testing.T) {
	t.Setenv("WD_FORMAT", "YAML")
	c := New().Prefix("WD_")

	if got := c.MayEnum("FORMAT", "json", "json", "yaml", "csv", "text"); got != "YAML" {
		t.Fatalf("MayEnum = %q, want YAML (case-insensitive match keeps input)", got)
	}
	if got := c.MayEnum("MISSING_FORMAT", "json", "json", "yaml"); got != "json" {
		t.Fatalf("MayEnum default = %q, want json", got)
	}
	testkit.MustPanic(t, func() {
		t.Setenv("WD_FORMAT", "xml")
		c.MayEnum("FORMAT", "json", "json", "yaml")
	})
}
