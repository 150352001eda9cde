package service

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"loan-eligibility-webhook/domain"
	"loan-eligibility-webhook/repository"
)

type EligibilityService struct {
	repo  repository.CheckRepository
	cache repository.CacheRepository
}

// NewEligibilityService creates a new EligibilityService with the given
// check repository and verdict cache.
func NewEligibilityService(repo repository.CheckRepository,
	cache repository.CacheRepository,
) *EligibilityService {
	return &EligibilityService{repo: repo, cache: cache}
}

// CheckEligibility runs one conversational turn through the parameter
// normalizer and the per-product decision table and returns the fulfillment
// text. It never fails: incomplete or unreadable input routes to a
// clarifying prompt, not an error.
func (s *EligibilityService) CheckEligibility(
	req domain.WebhookRequest,
) domain.WebhookResponse {

	params := MergeParameters(req.QueryResult)
	loanType := DetermineLoanType(params)
	log.Printf("merged parameters: %v (loan type %q)", params, loanType)

	// The platform sometimes files numbers under the generic @sys.number
	// entity, hence the fallback key for age and income.
	age := ExtractParameter(params, "age", "number")
	income := ExtractParameter(params, "income", "number")
	qualification := ExtractParameter(params, "qualification", "")

	key := verdictCacheKey(loanType, age, income, qualification)
	text, cached := s.cache.Get(key)
	complete := cached

	if !cached {
		text, complete = s.evaluate(loanType, age, income, qualification)
		// Only complete verdicts are cached. A missing-info prompt must
		// never be replayed once the user has supplied the details.
		if complete {
			if err := s.cache.Set(key, text); err != nil {
				log.Printf("Warning: failed to cache verdict: %v", err)
			}
		}
	}

	check := domain.EligibilityCheck{
		LoanType:      loanType,
		Age:           age,
		Income:        income,
		Qualification: qualification,
		Response:      text,
	}

	// Recording the check is not critical to the response.
	if err := s.repo.Save(check); err != nil {
		log.Printf("Warning: failed to save eligibility check: %v", err)
	}

	return domain.WebhookResponse{FulfillmentText: text}
}

// evaluate applies the per-product decision table. The second return value
// reports whether the outcome is a complete verdict (eligible or
// ineligible) as opposed to a prompt for more information.
func (s *EligibilityService) evaluate(
	loanType domain.LoanType,
	age, income, qualification any,
) (string, bool) {

	switch loanType {
	case domain.LoanTypeHome:
		ageN, ageOK := toInt(age)
		incomeN, incomeOK := toInt(income)
		if !ageOK || !incomeOK {
			return MsgHomeMissingInfo, false
		}
		if ageN >= MinHomeLoanAge && incomeN >= MinHomeLoanIncome {
			return MsgHomeEligible, true
		}
		return MsgHomeIneligible, true

	case domain.LoanTypeCar:
		ageN, ageOK := toInt(age)
		incomeN, incomeOK := toInt(income)
		if !ageOK || !incomeOK {
			return MsgCarMissingInfo, false
		}
		if ageN >= MinCarLoanAge && incomeN >= MinCarLoanIncome {
			return MsgCarEligible, true
		}
		return MsgCarIneligible, true

	case domain.LoanTypePersonal:
		ageN, ageOK := toInt(age)
		incomeN, incomeOK := toInt(income)
		if !ageOK || !incomeOK {
			return MsgPersonalMissingInfo, false
		}
		if ageN >= MinPersonalLoanAge && incomeN >= MinPersonalLoanIncome {
			return MsgPersonalEligible, true
		}
		return MsgPersonalIneligible, true

	case domain.LoanTypeEducation:
		ageN, ageOK := toInt(age)
		qual, qualOK := toText(qualification)
		if !ageOK || !qualOK {
			return MsgEducationMissingInfo, false
		}
		if strings.Contains(strings.ToLower(qual), GraduateToken) &&
			ageN <= MaxEducationLoanAge {
			return MsgEducationEligible, true
		}
		return MsgEducationIneligible, true

	case domain.LoanTypeBusiness:
		incomeN, incomeOK := toInt(income)
		if !incomeOK {
			return MsgBusinessMissingInfo, false
		}
		if incomeN >= MinBusinessLoanIncome {
			return MsgBusinessEligible, true
		}
		return MsgBusinessIneligible, true
	}

	return MsgUnknownLoanType, false
}

func verdictCacheKey(loanType domain.LoanType, age, income, qualification any) string {
	return fmt.Sprintf("verdict:%s|%v|%v|%v", loanType, age, income, qualification)
}

// toInt coerces a platform value to an integer. JSON numbers arrive as
// float64; numeric strings are accepted too. Anything else counts as not
// provided, which routes the request to the missing-info prompt instead of
// an error.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return int(f), true
	default:
		return 0, false
	}
}

// toText renders a provided value as text for the qualification match.
func toText(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	if s, ok := v.(string); ok {
		return s, true
	}
	return fmt.Sprintf("%v", v), true
}
