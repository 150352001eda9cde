package domain

// LoanType identifies one of the supported loan products. The zero value
// means the product could not be determined from the conversation.
type LoanType string

const (
	LoanTypeUnknown   LoanType = ""
	LoanTypeHome      LoanType = "home"
	LoanTypeCar       LoanType = "car"
	LoanTypePersonal  LoanType = "personal"
	LoanTypeEducation LoanType = "education"
	LoanTypeBusiness  LoanType = "business"
)

// EligibilityCheck records one evaluated request: the derived product, the
// extracted attributes as the user supplied them, and the response sent back.
type EligibilityCheck struct {
	LoanType      LoanType
	Age           any
	Income        any
	Qualification any
	Response      string
}
