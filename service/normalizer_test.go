package service

import (
	"testing"

	"loan-eligibility-webhook/domain"
)

func TestMergeParameters_ContextThenCurrentTurn(t *testing.T) {

	qr := domain.QueryResult{
		Parameters: map[string]any{
			"age":    float64(25),
			"income": float64(35000),
		},
		OutputContexts: []domain.Context{
			{
				Name:       "projects/x/agent/sessions/1/contexts/awaiting-loan-details-followup",
				Parameters: map[string]any{"loan-type": "home"},
			},
		},
	}

	merged := MergeParameters(qr)

	if merged["loan-type"] != "home" {
		t.Errorf("expected loan-type home, got %v", merged["loan-type"])
	}
	if merged["age"] != float64(25) {
		t.Errorf("expected age 25, got %v", merged["age"])
	}
	if merged["income"] != float64(35000) {
		t.Errorf("expected income 35000, got %v", merged["income"])
	}
}

func TestMergeParameters_CurrentTurnWins(t *testing.T) {

	qr := domain.QueryResult{
		Parameters: map[string]any{"income": float64(50000)},
		OutputContexts: []domain.Context{
			{
				Name:       "awaiting-loan-details",
				Parameters: map[string]any{"income": float64(10000)},
			},
		},
	}

	merged := MergeParameters(qr)

	if merged["income"] != float64(50000) {
		t.Errorf("expected current-turn income 50000, got %v", merged["income"])
	}
}

func TestMergeParameters_LaterContextWins(t *testing.T) {

	qr := domain.QueryResult{
		OutputContexts: []domain.Context{
			{
				Name:       "awaiting-loan-details",
				Parameters: map[string]any{"loan-type": "car"},
			},
			{
				Name:       "awaiting-loan-details-followup",
				Parameters: map[string]any{"loan-type": "home"},
			},
		},
	}

	merged := MergeParameters(qr)

	if merged["loan-type"] != "home" {
		t.Errorf("expected later context to win, got %v", merged["loan-type"])
	}
}

func TestMergeParameters_IgnoresUnrelatedContexts(t *testing.T) {

	qr := domain.QueryResult{
		OutputContexts: []domain.Context{
			{
				Name:       "projects/x/agent/sessions/1/contexts/small-talk",
				Parameters: map[string]any{"loan-type": "car"},
			},
		},
	}

	merged := MergeParameters(qr)

	if _, ok := merged["loan-type"]; ok {
		t.Errorf("parameters from unrelated contexts must not be merged")
	}
}

func TestDetermineLoanType_ExplicitBeatsFlags(t *testing.T) {

	params := map[string]any{
		"loan-type":        "car",
		"Home_eligibility": "yes",
	}

	if got := DetermineLoanType(params); got != domain.LoanTypeCar {
		t.Errorf("expected car, got %q", got)
	}
}

func TestDetermineLoanType_FlagOrder(t *testing.T) {

	params := map[string]any{
		"Car_eligibility":  "yes",
		"Home_eligibility": "yes",
	}

	// Home is checked before car.
	if got := DetermineLoanType(params); got != domain.LoanTypeHome {
		t.Errorf("expected home, got %q", got)
	}
}

func TestDetermineLoanType_EduAlias(t *testing.T) {

	params := map[string]any{"edu_eligibility": true}

	if got := DetermineLoanType(params); got != domain.LoanTypeEducation {
		t.Errorf("expected education, got %q", got)
	}
}

func TestDetermineLoanType_EmptyExplicitFallsThrough(t *testing.T) {

	params := map[string]any{
		"loan-type":            "",
		"Business_eligibility": "yes",
	}

	if got := DetermineLoanType(params); got != domain.LoanTypeBusiness {
		t.Errorf("expected business, got %q", got)
	}
}

func TestDetermineLoanType_Undetermined(t *testing.T) {

	if got := DetermineLoanType(map[string]any{}); got != domain.LoanTypeUnknown {
		t.Errorf("expected undetermined, got %q", got)
	}
}

func TestExtractParameter_AmountObject(t *testing.T) {

	params := map[string]any{
		"income": map[string]any{"amount": float64(45000), "currency": "INR"},
	}

	if got := ExtractParameter(params, "income", "number"); got != float64(45000) {
		t.Errorf("expected 45000, got %v", got)
	}
}

func TestExtractParameter_ListFirstElement(t *testing.T) {

	params := map[string]any{"qualification": []any{"graduate"}}

	if got := ExtractParameter(params, "qualification", ""); got != "graduate" {
		t.Errorf("expected graduate, got %v", got)
	}
}

func TestExtractParameter_EmptyStringIsAbsent(t *testing.T) {

	params := map[string]any{"age": ""}

	if got := ExtractParameter(params, "age", "number"); got != nil {
		t.Errorf("expected nil for empty string, got %v", got)
	}
}

func TestExtractParameter_FallbackKey(t *testing.T) {

	params := map[string]any{"number": float64(26)}

	if got := ExtractParameter(params, "age", "number"); got != float64(26) {
		t.Errorf("expected fallback value 26, got %v", got)
	}
}

func TestExtractParameter_NullPrimaryUsesFallback(t *testing.T) {

	params := map[string]any{
		"age":    nil,
		"number": float64(30),
	}

	if got := ExtractParameter(params, "age", "number"); got != float64(30) {
		t.Errorf("expected 30 from fallback, got %v", got)
	}
}
