package output

import (
	"context"
	"fmt"

	"krushi/internal/domain/contact"
)

// SubmissionResult is the payload of an accepted contact submission.
type SubmissionResult struct {
	Message string
}

// SubmissionError is returned by a ContactSubmitter when the receiving side
// rejected the submission. Message is the server's explanation and may be
// empty. Fields holds per-field errors reported by the server.
type SubmissionError struct {
	Status  int
	Message string
	Fields  map[string]string
}

func (e *SubmissionError) Error() string {
	msg := "submission rejected"
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// ContactSubmitter delivers a contact form to the backend.
type ContactSubmitter interface {
	SubmitContact(ctx context.Context, fields contact.Fields) (SubmissionResult, error)
}
