package domain

// ParamKind identifies which shape the platform used to encode a parameter.
type ParamKind int

const (
	ParamAbsent ParamKind = iota
	ParamScalar
	ParamList
	ParamAmount
)

// ParamValue is the decoded form of a single parameter. The platform sends
// the same logical value in three shapes: a bare scalar, a list from a
// multi-select entity, or an amount object such as
// {"amount": 50000, "currency": "INR"}.
type ParamValue struct {
	Kind   ParamKind
	Scalar any
	List   []any
	Amount any
}

// ClassifyParam sorts a raw decoded JSON value into one of the ParamValue
// variants. An empty list carries no value and classifies as absent.
func ClassifyParam(raw any) ParamValue {
	switch v := raw.(type) {
	case nil:
		return ParamValue{Kind: ParamAbsent}
	case map[string]any:
		if amount, ok := v["amount"]; ok {
			return ParamValue{Kind: ParamAmount, Amount: amount}
		}
		return ParamValue{Kind: ParamScalar, Scalar: v}
	case []any:
		if len(v) == 0 {
			return ParamValue{Kind: ParamAbsent}
		}
		return ParamValue{Kind: ParamList, List: v}
	default:
		return ParamValue{Kind: ParamScalar, Scalar: v}
	}
}

// Unwrap returns the effective scalar behind the variant, or nil when the
// value is absent. An empty string counts as absent: the platform sends ""
// for entities it recognized but could not fill.
func (p ParamValue) Unwrap() any {
	switch p.Kind {
	case ParamAmount:
		return p.Amount
	case ParamList:
		return p.List[0]
	case ParamScalar:
		if s, ok := p.Scalar.(string); ok && s == "" {
			return nil
		}
		return p.Scalar
	default:
		return nil
	}
}
