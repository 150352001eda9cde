package service

import (
	"strings"

	"loan-eligibility-webhook/domain"
)

// Contexts whose name contains this marker carry loan details collected in
// earlier turns.
const loanDetailsContextMarker = "awaiting-loan-details"

// MergeParameters flattens the conversation into a single parameter map.
// Parameters captured by matching contexts are applied in list order, later
// contexts overwriting earlier ones, and the current turn's parameters are
// applied last. The current turn always wins for a key present in both.
func MergeParameters(qr domain.QueryResult) map[string]any {
	merged := make(map[string]any)

	for _, ctx := range qr.OutputContexts {
		if !strings.Contains(ctx.Name, loanDetailsContextMarker) || len(ctx.Parameters) == 0 {
			continue
		}
		for k, v := range ctx.Parameters {
			merged[k] = v
		}
	}

	for k, v := range qr.Parameters {
		merged[k] = v
	}

	return merged
}

// DetermineLoanType derives the loan product from the merged parameters.
// An explicit loan-type value is returned verbatim; otherwise the
// per-product eligibility flags are checked in a fixed order, first match
// wins, because a request can carry more than one flag.
func DetermineLoanType(params map[string]any) domain.LoanType {
	if v := domain.ClassifyParam(params["loan-type"]).Unwrap(); v != nil {
		if s, ok := v.(string); ok && s != "" {
			return domain.LoanType(s)
		}
	}

	switch {
	case truthy(params["Home_eligibility"]):
		return domain.LoanTypeHome
	case truthy(params["Car_eligibility"]):
		return domain.LoanTypeCar
	case truthy(params["education_eligibility"]) || truthy(params["edu_eligibility"]):
		return domain.LoanTypeEducation
	case truthy(params["personal_eligibility"]):
		return domain.LoanTypePersonal
	case truthy(params["Business_eligibility"]):
		return domain.LoanTypeBusiness
	}

	return domain.LoanTypeUnknown
}

// ExtractParameter resolves one attribute from the merged map, trying
// fallbackKey when the primary key is missing or null. Returns the
// unwrapped scalar, or nil when the attribute was not provided.
func ExtractParameter(params map[string]any, key, fallbackKey string) any {
	raw, ok := params[key]
	if (!ok || raw == nil) && fallbackKey != "" {
		raw = params[fallbackKey]
	}
	return domain.ClassifyParam(raw).Unwrap()
}

// truthy mirrors the platform's loose flag semantics: a flag counts as set
// unless it is nil, false, zero, an empty string, or an empty collection.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}
