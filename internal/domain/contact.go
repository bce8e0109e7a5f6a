package domain

import (
	"context"
	"strings"

	"grow-therapy-backend/pkg/email"
	"grow-therapy-backend/pkg/validation"
)

// Submission represents a contact form submission. It lives for one
// request/response cycle and is never persisted.
type Submission struct {
	Name    string `json:"name" validate:"required,min=2,max=100,person_name"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=10,max=2000"`
}

// Sanitize trims the fields and normalizes the email address. Runs before
// validation so length limits apply to the meaningful content.
func (s *Submission) Sanitize() {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = validation.NormalizeEmail(s.Email)
	s.Message = strings.TrimSpace(s.Message)
}

// CombinedResult aggregates the two email sends for one submission.
// Succeeded is true only when both the company notification and the
// auto-reply went out.
type CombinedResult struct {
	Succeeded    bool
	Message      string
	Notification email.DispatchOutcome
	AutoReply    email.DispatchOutcome
}

// ContactUsecase coordinates template rendering and dual email dispatch
// for a validated submission.
type ContactUsecase interface {
	Dispatch(ctx context.Context, sub *Submission) CombinedResult
}
