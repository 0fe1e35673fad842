package domain

import (
	"strings"
	"time"
)

const (
	MaxNameLength = 200
	DefaultDepth  = 3
	MaxDepth      = 10
)

type RunStatus string

const (
	RunPending   RunStatus = "pending"
	RunRunning   RunStatus = "running"
	RunCompleted RunStatus = "completed"
	RunFailed    RunStatus = "failed"
)

func (s RunStatus) IsTerminal() bool {
	return s == RunCompleted || s == RunFailed
}

// ScreeningRequest starts an adverse-media lookup for a name.
type ScreeningRequest struct {
	Name      string
	Depth     int      // result pages per language
	Languages []string // empty means all configured languages
}

func (r *ScreeningRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrEmptyName
	}
	if len(r.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	if r.Depth < 0 || r.Depth > MaxDepth {
		return ErrInvalidDepth
	}
	return nil
}

func (r *ScreeningRequest) Sanitize() {
	r.Name = strings.TrimSpace(r.Name)
	if r.Depth == 0 {
		r.Depth = DefaultDepth
	}
}

// Run is one screening execution. Results are all scored items across all
// languages, ordered by score descending. LanguageErrors records languages
// whose search branch failed; their items are missing from Results but the
// run itself still completes unless every branch failed.
type Run struct {
	ID             string
	Name           string
	Depth          int
	Languages      []string
	Status         RunStatus
	Results        []ScoredItem
	LanguageErrors map[string]string
	Error          string
	CreatedAt      time.Time
	CompletedAt    *time.Time
}
