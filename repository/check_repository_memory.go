package repository

import (
	"sync"

	"loan-eligibility-webhook/domain"
)

// CheckRepositoryMemory is an in-memory implementation of CheckRepository.
// Requests are served concurrently, so access is guarded by a mutex.
type CheckRepositoryMemory struct {
	mu   sync.Mutex
	data []domain.EligibilityCheck
}

// NewCheckRepositoryMemory creates a new in-memory check repository.
func NewCheckRepositoryMemory() *CheckRepositoryMemory {
	return &CheckRepositoryMemory{
		data: []domain.EligibilityCheck{},
	}
}

// Save stores the eligibility check in memory.
func (r *CheckRepositoryMemory) Save(check domain.EligibilityCheck) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, check)
	return nil
}

// Count returns how many checks have been recorded.
func (r *CheckRepositoryMemory) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.data)
}
