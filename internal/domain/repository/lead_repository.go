package repository

import "github.com/oksasatya/procrm-api/internal/domain/entity"

// LeadRepository defines the interface for lead persistence operations.
// Every call performs a full load (and, for mutations, save) against the
// backing store so each request observes the latest persisted state.
//
// Update runs mutate against the freshly loaded record inside the store
// lock, so concurrent patches to the same lead merge instead of clobbering
// each other. A mutate error aborts the cycle without persisting.
type LeadRepository interface {
	List() ([]entity.Lead, error)
	Get(id string) (*entity.Lead, error)
	Create(l *entity.Lead) error
	Update(id string, mutate func(*entity.Lead) error) (*entity.Lead, error)
	Delete(id string) error
}
