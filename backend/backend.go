// Package backend is the portfolio's persistence collaborator: contact
// messages, a visitor counter and a keyword FAQ.
//
// SQLStore implements Backend on sqlite. Register exposes any Backend over
// HTTP with gin, and Client consumes that HTTP surface, so the desktop app
// and the server share one contract.
package backend

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	// ErrInvalidMessage is returned when a contact message is missing a
	// name, email or body.
	ErrInvalidMessage = errors.New("backend: name, email and message are required")
	// ErrUnavailable is returned by Client when the server cannot be reached
	// or answers with a server error.
	ErrUnavailable = errors.New("backend: unavailable")
)

// FAQEntry is one question/answer pair.
type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Message is a stored contact-form submission.
type Message struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Backend is the contract the portfolio front end talks to.
type Backend interface {
	SubmitMessage(ctx context.Context, name, email, message string) error
	GetMessages(ctx context.Context) ([]Message, error)

	// GetFAQAnswer returns the answer of the first entry whose question
	// contains keyword, ignoring case. ok is false when nothing matches.
	GetFAQAnswer(ctx context.Context, keyword string) (answer string, ok bool, err error)
	GetAllFAQEntries(ctx context.Context) ([]FAQEntry, error)
	AddFAQEntry(ctx context.Context, question, answer string) error
	// AddInitialFAQEntries seeds the built-in entries. Entries whose
	// question already exists are skipped, so repeated calls are harmless.
	AddInitialFAQEntries(ctx context.Context) error

	GetVisitorCount(ctx context.Context) (uint64, error)
	IncrementVisitorCount(ctx context.Context) (uint64, error)
}

// ValidateMessage checks a contact-form submission. Fields are trimmed
// before the emptiness check.
func ValidateMessage(name, email, message string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || strings.TrimSpace(message) == "" {
		return ErrInvalidMessage
	}
	return nil
}

// normalizeKeyword lower-cases and trims a lookup keyword.
func normalizeKeyword(keyword string) string {
	return strings.ToLower(strings.TrimSpace(keyword))
}
