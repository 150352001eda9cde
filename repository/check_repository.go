package repository

import "loan-eligibility-webhook/domain"

type CheckRepository interface {
	Save(check domain.EligibilityCheck) error
}
