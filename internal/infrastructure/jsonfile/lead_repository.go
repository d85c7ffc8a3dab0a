package jsonfile

import (
	"time"

	"github.com/oksasatya/procrm-api/internal/domain/entity"
	"github.com/oksasatya/procrm-api/internal/domain/repository"
)

// LeadRepository stores the lead collection as a JSON array on disk.
// There is no cross-request cache: every operation re-reads the file, so it
// always observes the latest persisted state.
type LeadRepository struct {
	store *Store
}

func NewLeadRepository(store *Store) *LeadRepository {
	return &LeadRepository{store: store}
}

func (r *LeadRepository) load() ([]entity.Lead, error) {
	var leads []entity.Lead
	if err := r.store.Load(&leads); err != nil {
		return nil, err
	}
	return leads, nil
}

func (r *LeadRepository) List() ([]entity.Lead, error) {
	return r.load()
}

func (r *LeadRepository) Get(id string) (*entity.Lead, error) {
	leads, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range leads {
		if leads[i].ID == id {
			return &leads[i], nil
		}
	}
	return nil, repository.ErrLeadNotFound
}

// Create appends l to the collection and persists it. The caller is expected
// to have assigned ID and timestamps already (the service owns that policy).
func (r *LeadRepository) Create(l *entity.Lead) error {
	return r.store.Update(func() error {
		leads, err := r.load()
		if err != nil {
			return err
		}
		leads = append(leads, *l)
		return r.store.Save(leads)
	})
}

// Update applies mutate to the stored record matching id and refreshes
// updatedAt, all inside the store lock. The record is re-read under the
// lock so a concurrent writer's fields are never overwritten with a stale
// baseline. Returns a copy of the persisted record.
func (r *LeadRepository) Update(id string, mutate func(*entity.Lead) error) (*entity.Lead, error) {
	var out entity.Lead
	err := r.store.Update(func() error {
		leads, err := r.load()
		if err != nil {
			return err
		}
		for i := range leads {
			if leads[i].ID == id {
				if err := mutate(&leads[i]); err != nil {
					return err
				}
				leads[i].UpdatedAt = time.Now().UTC()
				if err := r.store.Save(leads); err != nil {
					return err
				}
				out = leads[i]
				return nil
			}
		}
		return repository.ErrLeadNotFound
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *LeadRepository) Delete(id string) error {
	return r.store.Update(func() error {
		leads, err := r.load()
		if err != nil {
			return err
		}
		for i := range leads {
			if leads[i].ID == id {
				leads = append(leads[:i], leads[i+1:]...)
				return r.store.Save(leads)
			}
		}
		return repository.ErrLeadNotFound
	})
}

var _ repository.LeadRepository = (*LeadRepository)(nil)
