package applicant

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Application status values. The only transition is pending -> completed,
// performed by the finalize step or by a full /submit run.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

var ErrNotFound = errors.New("applicant not found")

// Applicant is the identity record, unique per email.
type Applicant struct {
	ID        uuid.UUID
	FullName  string
	Email     string
	Phone     string
	City      string
	State     string
	Country   string
	Age       *int
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Preferences holds the job-search preferences, one row per applicant.
type Preferences struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	JobTitle   string
	JobType    string
	Location   string
	Salary     string
	Industry   string
	Experience string
	Relocation bool
	Skills     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Resume is the stored-blob metadata, one row per applicant; re-uploads
// overwrite the path and URL in place.
type Resume struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	FileName    string
	StoragePath string
	PublicURL   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
