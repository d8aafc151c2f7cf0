package config

import (
	"testing"
	"time"

	kit "lingualog/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	root := New()
	api := root.Prefix("API_")
	if got := api.key("PORT"); got != "API_PORT" {
		t.Fatalf("key() = %q, want %q", got, "API_PORT")
	}
	// nested prefix
	apiPG := api.Prefix("PG_")
	if got := apiPG.key("DBURL"); got != "API_PG_DBURL" {
		t.Fatalf("nested key() = %q, want %q", got, "API_PG_DBURL")
	}
}

func TestMustString(t *testing.T) {
	c := New().Prefix("APP_")
	t.Setenv("APP_NAME", "  lingualog ")
	if got := c.MustString("NAME"); got != "lingualog" {
		t.Fatalf("MustString = %q, want %q", got, "lingualog")
	}

	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
}

func TestMayString(t *testing.T) {
	c := New().Prefix("APP_")
	if got := c.MayString("PORT", ":5000"); got != ":5000" {
		t.Fatalf("MayString default = %q", got)
	}
	t.Setenv("APP_PORT", ":8080")
	if got := c.MayString("PORT", ":5000"); got != ":8080" {
		t.Fatalf("MayString = %q", got)
	}
}

func TestMayInt(t *testing.T) {
	c := New().Prefix("SVC_")
	if got := c.MayInt("TOP_N", 5); got != 5 {
		t.Fatalf("MayInt default = %d", got)
	}
	t.Setenv("SVC_TOP_N", " 7 ")
	if got := c.MayInt("TOP_N", 5); got != 7 {
		t.Fatalf("MayInt = %d", got)
	}
	// invalid values fall back instead of panicking
	t.Setenv("SVC_TOP_N", "nope")
	kit.MustNotPanic(t, func() {
		if got := c.MayInt("TOP_N", 5); got != 5 {
			t.Fatalf("MayInt invalid = %d, want default", got)
		}
	})
}

func TestMayBoolAndDuration(t *testing.T) {
	c := New().Prefix("F_")
	t.Setenv("F_SWAGGER", " true ")
	if !c.MayBool("SWAGGER", false) {
		t.Fatal("MayBool = false, want true")
	}
	t.Setenv("F_TIMEOUT", "250ms")
	if got := c.MayDuration("TIMEOUT", time.Second); got != 250*time.Millisecond {
		t.Fatalf("MayDuration = %v", got)
	}
	if got := c.MayDuration("ABSENT", time.Second); got != time.Second {
		t.Fatalf("MayDuration default = %v", got)
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("CORS_")
	t.Setenv("CORS_ORIGINS", " a.example , ,b.example ")
	got := c.MayCSV("ORIGINS", []string{"*"})
	if len(got) != 2 || got[0] != "a.example" || got[1] != "b.example" {
		t.Fatalf("MayCSV = %#v", got)
	}
	if got := c.MayCSV("ABSENT", []string{"*"}); len(got) != 1 || got[0] != "*" {
		t.Fatalf("MayCSV default = %#v", got)
	}
}
