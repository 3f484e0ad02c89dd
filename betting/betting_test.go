package betting

import (
	"strings"
	"testing"
)

func validOptions() []Option {
	return []Option{
		{Order: 1, Amount: 10, Threshold: 100, Multiplier: 1.5},
		{Order: 2, Amount: 50, Threshold: 500, Multiplier: 2},
		{Order: 3, Amount: 100, Threshold: 1000, Multiplier: 3},
	}
}

func TestValidate_OK(t *testing.T) {
	if v := Validate(validOptions()); len(v) != 0 {
		t.Fatalf("expected no violations, got %v", v)
	}
}

func TestValidate_WrongCount(t *testing.T) {
	v := Validate(validOptions()[:2])
	if len(v) == 0 {
		t.Fatal("two options must violate")
	}
	joined := violationText(v)
	if !strings.Contains(joined, "exactly 3") {
		t.Errorf("missing count violation: %v", v)
	}
	if !strings.Contains(joined, "order 3 missing") {
		t.Errorf("missing order violation: %v", v)
	}
}

func TestValidate_DuplicateOrder(t *testing.T) {
	opts := validOptions()
	opts[2].Order = 1
	v := Validate(opts)
	joined := violationText(v)
	if !strings.Contains(joined, "order 1 present 2 times") {
		t.Errorf("missing duplicate violation: %v", v)
	}
	if !strings.Contains(joined, "order 3 missing") {
		t.Errorf("missing missing-order violation: %v", v)
	}
}

// The list is exhaustive: one bad option can carry several violations at once.
func TestValidate_ExhaustiveList(t *testing.T) {
	opts := validOptions()
	opts[0].Amount = 0
	opts[0].Threshold = -5
	opts[1].Multiplier = 0
	opts[2].Order = 7
	v := Validate(opts)
	joined := violationText(v)
	for _, want := range []string{
		"bet amount 0",
		"threshold -5",
		"multiplier 0",
		"order 7 outside 1..3",
		"order 3 missing",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("expected violation containing %q, got %v", want, v)
		}
	}
}

func violationText(v []error) string {
	parts := make([]string, len(v))
	for i, err := range v {
		parts[i] = err.Error()
	}
	return strings.Join(parts, "; ")
}
