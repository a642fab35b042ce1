package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindCareers  Kind = "careers"
	KindSkillGap Kind = "skill_gap"
)

// Analysis is one successful result kept for history.
type Analysis struct {
	ID          uuid.UUID `json:"id"`
	Kind        Kind      `json:"kind"`
	CareerTitle string    `json:"careerTitle,omitempty"`
	Titles      []string  `json:"titles"` // career titles, or missing skills for a skill gap
	Payload     []byte    `json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Store defines the history contract; Postgres is the production implementation.
type Store interface {
	SaveAnalysis(ctx context.Context, a Analysis) (Analysis, error)
	// ListAnalyses returns the newest entries first. An empty kind matches all kinds.
	ListAnalyses(ctx context.Context, kind Kind, limit int) ([]Analysis, error)
	Close() error
}
