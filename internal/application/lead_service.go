package application

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/procrm-api/internal/domain/entity"
	repo "github.com/oksasatya/procrm-api/internal/domain/repository"
)

var (
	ErrInvalidStage  = errors.New("invalid stage")
	ErrNegativeValue = errors.New("deal value must not be negative")
)

// LeadService owns lead use-cases: CRUD with id/timestamp assignment,
// partial-update merge semantics, and filter/search over the collection.
type LeadService struct {
	Repo   repo.LeadRepository
	Logger *logrus.Logger
}

func NewLeadService(r repo.LeadRepository, logger *logrus.Logger) *LeadService {
	return &LeadService{Repo: r, Logger: logger}
}

// LeadFilter narrows a listing. Stage is an exact match and must be a valid
// pipeline stage when present; Search is a case-insensitive substring match
// over first name, last name, company and email.
type LeadFilter struct {
	Stage  string
	Search string
}

type CreateLeadInput struct {
	FirstName string
	LastName  string
	Company   string
	Position  string
	Email     string
	Phone     string
	DealValue float64
	Stage     string
	Notes     string
}

// UpdateLeadInput is a shallow patch: nil fields keep their stored value.
type UpdateLeadInput struct {
	FirstName *string
	LastName  *string
	Company   *string
	Position  *string
	Email     *string
	Phone     *string
	DealValue *float64
	Stage     *string
	Notes     *string
}

func (s *LeadService) List(f LeadFilter) ([]entity.Lead, error) {
	leads, err := s.Repo.List()
	if err != nil {
		return nil, err
	}
	return FilterLeads(leads, f)
}

func (s *LeadService) Get(id string) (*entity.Lead, error) {
	return s.Repo.Get(id)
}

func (s *LeadService) Create(in CreateLeadInput) (*entity.Lead, error) {
	stage := in.Stage
	if stage == "" {
		stage = entity.StageProspect
	}
	if !entity.ValidStage(stage) {
		return nil, ErrInvalidStage
	}
	if in.DealValue < 0 {
		return nil, ErrNegativeValue
	}

	now := time.Now().UTC()
	l := &entity.Lead{
		ID:        uuid.NewString(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Company:   in.Company,
		Position:  in.Position,
		Email:     in.Email,
		Phone:     in.Phone,
		DealValue: in.DealValue,
		Stage:     stage,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(l); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"lead_id": l.ID, "company": l.Company}).Info("lead created")
	}
	return l, nil
}

// Update merges the patch into the stored record. The merge runs inside
// the repository's locked load-modify-save cycle, so two concurrent
// patches to the same lead both land instead of the later one clobbering
// the earlier one.
func (s *LeadService) Update(id string, in UpdateLeadInput) (*entity.Lead, error) {
	l, err := s.Repo.Update(id, func(l *entity.Lead) error {
		if in.FirstName != nil {
			l.FirstName = *in.FirstName
		}
		if in.LastName != nil {
			l.LastName = *in.LastName
		}
		if in.Company != nil {
			l.Company = *in.Company
		}
		if in.Position != nil {
			l.Position = *in.Position
		}
		if in.Email != nil {
			l.Email = *in.Email
		}
		if in.Phone != nil {
			l.Phone = *in.Phone
		}
		if in.DealValue != nil {
			if *in.DealValue < 0 {
				return ErrNegativeValue
			}
			l.DealValue = *in.DealValue
		}
		if in.Stage != nil {
			if !entity.ValidStage(*in.Stage) {
				return ErrInvalidStage
			}
			l.Stage = *in.Stage
		}
		if in.Notes != nil {
			l.Notes = *in.Notes
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithField("lead_id", l.ID).Info("lead updated")
	}
	return l, nil
}

func (s *LeadService) Delete(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.WithField("lead_id", id).Info("lead deleted")
	}
	return nil
}

// FilterLeads applies the stage filter, then the text search, preserving the
// original relative order. A blank (post-trim) search query skips the search
// filter entirely.
func FilterLeads(leads []entity.Lead, f LeadFilter) ([]entity.Lead, error) {
	out := make([]entity.Lead, 0, len(leads))

	if f.Stage != "" && !entity.ValidStage(f.Stage) {
		return nil, ErrInvalidStage
	}
	q := strings.ToLower(strings.TrimSpace(f.Search))

	for _, l := range leads {
		if f.Stage != "" && l.Stage != f.Stage {
			continue
		}
		if q != "" && !matchesQuery(&l, q) {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func matchesQuery(l *entity.Lead, q string) bool {
	return strings.Contains(strings.ToLower(l.FirstName), q) ||
		strings.Contains(strings.ToLower(l.LastName), q) ||
		strings.Contains(strings.ToLower(l.Company), q) ||
		strings.Contains(strings.ToLower(l.Email), q)
}
