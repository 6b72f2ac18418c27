package leads

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrIncomplete   = errors.New("first name, last name and email are required")
	ErrInvalidEmail = errors.New("email address is not valid")
)

// Submission carries the visitor-entered values of the lead-capture form.
type Submission struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

// Complete reports whether the submission satisfies the submit gating rule:
// first name, last name and email all non-empty after trimming. Phone is
// always optional.
func (s Submission) Complete() bool {
	return strings.TrimSpace(s.FirstName) != "" &&
		strings.TrimSpace(s.LastName) != "" &&
		strings.TrimSpace(s.Email) != ""
}

// Validate checks the gating rule plus a minimal email shape check.
func (s Submission) Validate() error {
	if !s.Complete() {
		return ErrIncomplete
	}
	email := strings.TrimSpace(s.Email)
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return ErrInvalidEmail
	}
	return nil
}

// Lead is a captured contact record tied to the page it came from.
type Lead struct {
	ID     string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	PageID string `gorm:"type:uuid;not null;index" json:"page_id"`

	FirstName string `gorm:"not null" json:"first_name"`
	LastName  string `gorm:"not null" json:"last_name"`
	Email     string `gorm:"not null;index" json:"email"`
	Phone     string `json:"phone,omitempty"`

	Source string `gorm:"not null;default:'landing'" json:"source"`

	CreatedAt time.Time `json:"created_at"`
}

// FromSubmission builds a Lead for pageID with trimmed fields.
func FromSubmission(pageID string, s Submission) Lead {
	return Lead{
		PageID:    pageID,
		FirstName: strings.TrimSpace(s.FirstName),
		LastName:  strings.TrimSpace(s.LastName),
		Email:     strings.TrimSpace(s.Email),
		Phone:     strings.TrimSpace(s.Phone),
		Source:    "landing",
	}
}
