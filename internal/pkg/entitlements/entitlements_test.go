package entitlements

import "testing"

func TestNormalizePlan(t *testing.T) {
	tests := []struct {
		in   string
		want Plan
	}{
		{in: "basic", want: PlanBasic},
		{in: "professional", want: PlanProfessional},
		{in: "PROFESSIONAL", want: PlanProfessional},
		{in: "invalid", want: PlanBasic},
		{in: "", want: PlanBasic},
	}

	for _, tt := range tests {
		if got := NormalizePlan(tt.in); got != tt.want {
			t.Fatalf("NormalizePlan(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPlanRank(t *testing.T) {
	if PlanRank(PlanNone) >= PlanRank(PlanBasic) {
		t.Fatalf("expected basic to outrank none")
	}
	if PlanRank(PlanBasic) >= PlanRank(PlanProfessional) {
		t.Fatalf("expected professional to outrank basic")
	}
}

func TestIsEntitling(t *testing.T) {
	for _, status := range []string{"active", "trialing"} {
		if !IsEntitling(status) {
			t.Fatalf("expected status %q to be entitling", status)
		}
	}
	for _, status := range []string{"none", "pending", "expired", "cancelled"} {
		if IsEntitling(status) {
			t.Fatalf("expected status %q to be non-entitling", status)
		}
	}
}

func TestIsNonTerminal(t *testing.T) {
	for _, status := range []string{"pending", "active"} {
		if !IsNonTerminal(status) {
			t.Fatalf("expected status %q to be non-terminal", status)
		}
	}
	for _, status := range []string{"cancelled", "expired"} {
		if IsNonTerminal(status) {
			t.Fatalf("expected status %q to be terminal", status)
		}
	}
}
