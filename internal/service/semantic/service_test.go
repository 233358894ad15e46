package semantic

import (
	"context"
	"errors"
	"testing"

	"github.com/kestrelbay/wildscope/backend/internal/analysis/intent"
)

func TestParseInputTypeOutput(t *testing.T) {
	cases := map[string]intent.Verdict{
		"ANIMAL":                        intent.VerdictAnimal,
		"location":                      intent.VerdictLocation,
		"LOCATION.":                     intent.VerdictLocation,
		"Verdict: ANIMAL (a mammal)":    intent.VerdictAnimal,
		"That is a LOCATION, not fauna": intent.VerdictLocation,
	}
	for content, expected := range cases {
		verdict, err := parseInputTypeOutput(content)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", content, err)
		}
		if verdict != expected {
			t.Fatalf("parse %q = %s, want %s", content, verdict, expected)
		}
	}

	if _, err := parseInputTypeOutput("no idea"); err == nil {
		t.Fatalf("expected error for verdictless output")
	}
}

func TestParseAmbiguityOutputWithOptions(t *testing.T) {
	content := "AMBIGUOUS\n" +
		"1. Greenville - City in the upstate - United States - South Carolina\n" +
		"2. Greenville - City on the Tar River - United States - North Carolina\n" +
		"3. Greenville - Port city - Liberia"
	report := parseAmbiguityOutput(content)
	if !report.Ambiguous {
		t.Fatalf("expected ambiguous report")
	}
	if len(report.Options) != 3 {
		t.Fatalf("expected three options, got %d", len(report.Options))
	}
	first := report.Options[0]
	if first.DisplayName != "Greenville, South Carolina" {
		t.Fatalf("unexpected display name %q", first.DisplayName)
	}
	if first.SearchQuery != "Greenville, South Carolina, United States" {
		t.Fatalf("unexpected search query %q", first.SearchQuery)
	}
	third := report.Options[2]
	if third.Region != "" || third.SearchQuery != "Greenville, Liberia" {
		t.Fatalf("region must be optional, got %+v", third)
	}
}

func TestParseAmbiguityOutputUnambiguous(t *testing.T) {
	if report := parseAmbiguityOutput("UNAMBIGUOUS"); report.Ambiguous {
		t.Fatalf("expected unambiguous report")
	}
}

func TestParseAmbiguityOutputSkipsMalformedLines(t *testing.T) {
	content := "AMBIGUOUS\n" +
		"1. Springfield - State capital - United States - Illinois\n" +
		"this line is noise\n" +
		"2. Springfield\n" +
		"3. Springfield - Queen City of the Ozarks - United States - Missouri"
	report := parseAmbiguityOutput(content)
	if !report.Ambiguous || len(report.Options) != 2 {
		t.Fatalf("expected two well-formed options, got %+v", report)
	}
}

func TestParseAmbiguityOutputRequiresTwoOptions(t *testing.T) {
	content := "AMBIGUOUS\n1. Lagos - Largest city - Nigeria"
	if report := parseAmbiguityOutput(content); report.Ambiguous {
		t.Fatalf("a single option must degrade to unambiguous, got %+v", report)
	}
}

func TestParseAmbiguityOutputRejectsChatter(t *testing.T) {
	if report := parseAmbiguityOutput("I think that depends"); report.Ambiguous {
		t.Fatalf("non-protocol output must degrade to unambiguous")
	}
}

func TestDisabledServiceReturnsErrDisabled(t *testing.T) {
	svc, err := NewService(context.Background(), nil, Config{Enabled: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.Enabled() {
		t.Fatalf("service without a model must be disabled")
	}
	if _, err := svc.InputType(context.Background(), "wolverine"); !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
	if _, err := svc.ClassifyAmbiguity(context.Background(), "Paris"); !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
}
