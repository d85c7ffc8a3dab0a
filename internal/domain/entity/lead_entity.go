package entity

import "time"

// Stage values a lead moves through, from first contact to a won deal.
const (
	StageProspect    = "prospect"
	StageQualified   = "qualified"
	StageNegotiation = "negotiation"
	StageClosed      = "closed"
)

// Stages returns the pipeline stages in canonical funnel order.
func Stages() []string {
	return []string{StageProspect, StageQualified, StageNegotiation, StageClosed}
}

// ValidStage reports whether s is one of the pipeline stages.
func ValidStage(s string) bool {
	switch s {
	case StageProspect, StageQualified, StageNegotiation, StageClosed:
		return true
	}
	return false
}

// Lead is the aggregate root for the sales pipeline domain.
// JSON tags double as the wire format and the on-disk document format.
type Lead struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Company   string    `json:"company"`
	Position  string    `json:"position"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	DealValue float64   `json:"dealValue"`
	Stage     string    `json:"stage"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Open reports whether the lead is still in the pipeline (not closed).
func (l *Lead) Open() bool {
	return l.Stage != StageClosed
}
