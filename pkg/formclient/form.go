// Package formclient is the Go client for the contact API. It mirrors the
// website form's submission lifecycle: a draft the user edits, per-field
// errors, and an idle/submitting/succeeded/failed status driven by local
// validation and the HTTP response.
package formclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"
)

// Status is the form submission lifecycle state.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSucceeded  Status = "succeeded"
	StatusFailed     Status = "failed"
)

var (
	// ErrSubmitInFlight is returned when Submit is called while a previous
	// submission is still running. The caller should disable its submit
	// control instead of retrying.
	ErrSubmitInFlight = errors.New("formclient: submission already in flight")

	// ErrInvalidInput is returned when local validation fails. FieldErrors
	// holds the per-field messages; no request was issued.
	ErrInvalidInput = errors.New("formclient: draft failed validation")

	// ErrSubmitFailed is returned when the server rejected the submission or
	// the request could not be completed. ServerError holds the detail.
	ErrSubmitFailed = errors.New("formclient: submission failed")
)

// Validation mirrors the server-side rules so obviously bad drafts never
// hit the network. The server remains the authority.
var (
	nameRegex  = regexp.MustCompile(`^[a-zA-Z\s.'-]+$`)
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Draft is the user's in-progress submission.
type Draft struct {
	Name    string
	Email   string
	Message string
}

// Form owns one contact form submission lifecycle. Safe for use from
// multiple goroutines.
type Form struct {
	apiURL     string
	httpClient *http.Client
	resetDelay time.Duration
	afterFunc  func(time.Duration, func()) *time.Timer

	mu          sync.Mutex
	status      Status
	draft       Draft
	fieldErrors map[string]string
	serverError string
}

// Option configures a Form.
type Option func(*Form)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(f *Form) { f.httpClient = client }
}

// WithResetDelay changes how long a successful submission is displayed
// before the form returns to idle.
func WithResetDelay(d time.Duration) Option {
	return func(f *Form) { f.resetDelay = d }
}

// New creates a Form posting to {apiURL}/api/contact.
func New(apiURL string, opts ...Option) *Form {
	f := &Form{
		apiURL:      strings.TrimRight(apiURL, "/"),
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		resetDelay:  5 * time.Second,
		afterFunc:   time.AfterFunc,
		status:      StatusIdle,
		fieldErrors: make(map[string]string),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Status returns the current lifecycle state.
func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Draft returns a copy of the in-progress submission.
func (f *Form) Draft() Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// FieldErrors returns a copy of the current per-field validation messages.
func (f *Form) FieldErrors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(f.fieldErrors))
	for k, v := range f.fieldErrors {
		out[k] = v
	}
	return out
}

// ServerError returns the message from the last failed submission.
func (f *Form) ServerError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.serverError
}

// SetName updates the draft and clears the field's error. Edits are ignored
// while a submission is in flight.
func (f *Form) SetName(name string) { f.setField("name", name) }

// SetEmail updates the draft and clears the field's error.
func (f *Form) SetEmail(email string) { f.setField("email", email) }

// SetMessage updates the draft and clears the field's error.
func (f *Form) SetMessage(message string) { f.setField("message", message) }

func (f *Form) setField(field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.status == StatusSubmitting {
		return
	}
	switch field {
	case "name":
		f.draft.Name = value
	case "email":
		f.draft.Email = value
	case "message":
		f.draft.Message = value
	}
	delete(f.fieldErrors, field)
}

type submissionBody struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Submit validates the draft locally and, when clean, posts it to the API.
// Invalid drafts populate FieldErrors and never issue a request. A success
// clears the draft and auto-resets the form to idle after the reset delay;
// a failure keeps the draft so the user can correct and resubmit.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.status == StatusSubmitting {
		f.mu.Unlock()
		return ErrSubmitInFlight
	}

	f.serverError = ""
	f.fieldErrors = validateDraft(f.draft)
	if len(f.fieldErrors) > 0 {
		// State stays idle/failed so the user can fix the fields.
		f.mu.Unlock()
		return ErrInvalidInput
	}

	f.status = StatusSubmitting
	body := submissionBody{
		Name:    strings.TrimSpace(f.draft.Name),
		Email:   strings.TrimSpace(f.draft.Email),
		Message: strings.TrimSpace(f.draft.Message),
	}
	f.mu.Unlock()

	result, err := f.post(ctx, body)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.status = StatusFailed
		f.serverError = err.Error()
		return ErrSubmitFailed
	}
	if !result.Success {
		f.status = StatusFailed
		f.serverError = result.Message
		if f.serverError == "" {
			f.serverError = "Something went wrong. Please try again."
		}
		return ErrSubmitFailed
	}

	f.status = StatusSucceeded
	f.draft = Draft{}
	f.afterFunc(f.resetDelay, f.resetToIdle)
	return nil
}

func (f *Form) post(ctx context.Context, body submissionBody) (*apiResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.apiURL+"/api/contact", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (f *Form) resetToIdle() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.status == StatusSucceeded {
		f.status = StatusIdle
	}
}

// validateDraft applies the server's field rules locally.
func validateDraft(d Draft) map[string]string {
	errs := make(map[string]string)

	name := strings.TrimSpace(d.Name)
	switch {
	case name == "":
		errs["name"] = "Name is required"
	case len(name) < 2 || len(name) > 100:
		errs["name"] = "Name must be between 2 and 100 characters"
	case !nameRegex.MatchString(name):
		errs["name"] = "Name contains invalid characters"
	}

	emailAddr := strings.TrimSpace(d.Email)
	switch {
	case emailAddr == "":
		errs["email"] = "Email is required"
	case !emailRegex.MatchString(emailAddr):
		errs["email"] = "Please enter a valid email"
	}

	message := strings.TrimSpace(d.Message)
	switch {
	case message == "":
		errs["message"] = "Message is required"
	case len(message) < 10 || len(message) > 2000:
		errs["message"] = "Message must be between 10 and 2000 characters"
	}

	return errs
}
