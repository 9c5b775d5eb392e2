package filter

import (
	"strings"
	"testing"
)

func TestParseProjectFilterEmpty(t *testing.T) {
	cond, err := ParseProjectFilter("   ")
	if err != nil {
		t.Fatalf("parse empty filter: %v", err)
	}
	if cond.Clause != "" || len(cond.Params) != 0 {
		t.Fatalf("expected empty condition, got %+v", cond)
	}
}

func TestParseProjectFilterEquality(t *testing.T) {
	cond, err := ParseProjectFilter(`name = "atlas"`)
	if err != nil {
		t.Fatalf("parse filter: %v", err)
	}
	if cond.Clause != "name = ?" {
		t.Fatalf("clause = %q", cond.Clause)
	}
	if len(cond.Params) != 1 || cond.Params[0] != "atlas" {
		t.Fatalf("params = %v", cond.Params)
	}
}

func TestParseProjectFilterBoolAndCombination(t *testing.T) {
	cond, err := ParseProjectFilter(`highlight = true AND name != "scratch"`)
	if err != nil {
		t.Fatalf("parse filter: %v", err)
	}
	if cond.Clause != "(highlight = ? AND name != ?)" {
		t.Fatalf("clause = %q", cond.Clause)
	}
	if len(cond.Params) != 2 {
		t.Fatalf("params = %v", cond.Params)
	}
	if cond.Params[0] != true || cond.Params[1] != "scratch" {
		t.Fatalf("params = %v", cond.Params)
	}
}

func TestParseProjectFilterBoolLiterals(t *testing.T) {
	for literal, want := range map[string]any{"true": true, "false": false} {
		cond, err := ParseProjectFilter("highlight = " + literal)
		if err != nil {
			t.Fatalf("parse highlight = %s: %v", literal, err)
		}
		if cond.Clause != "highlight = ?" {
			t.Fatalf("clause = %q", cond.Clause)
		}
		if len(cond.Params) != 1 || cond.Params[0] != want {
			t.Fatalf("params = %v, want [%v]", cond.Params, want)
		}
	}
}

func TestParseProjectFilterUnknownField(t *testing.T) {
	_, err := ParseProjectFilter(`owner = "u1"`)
	if err == nil {
		t.Fatal("expected error for undeclared field")
	}
}

func TestParseProjectFilterUnsupportedFunction(t *testing.T) {
	_, err := ParseProjectFilter(`name:*`)
	if err == nil {
		t.Fatal("expected error for unsupported expression")
	}
	if !strings.Contains(err.Error(), "filter") && !strings.Contains(err.Error(), "unsupported") {
		t.Fatalf("unexpected error: %v", err)
	}
}
