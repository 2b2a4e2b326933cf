package application

import (
	"context"
	"log/slog"

	"krushi/internal/domain"
	"krushi/internal/domain/contact"
	"krushi/internal/domain/entities"
	"krushi/internal/ports/input"
	"krushi/internal/ports/output"
)

var _ input.ContactUseCase = (*ContactService)(nil)

// ContactRecorder observes submissions for metrics.
type ContactRecorder interface {
	ContactSubmitted(outcome string)
	ContactNotified(outcome string)
}

type ContactService struct {
	contactRepo output.ContactRepository
	notifier    output.ContactNotifier
	dispatcher  output.Dispatcher
	catalog     output.T
	rules       contact.Rules
	recorder    ContactRecorder
	logger      *slog.Logger
}

// NewContactService wires the contact use case. catalog renders validation
// messages from the site catalog; notifier and dispatcher may be nil, in which
// case submissions are only stored.
func NewContactService(
	contactRepo output.ContactRepository,
	notifier output.ContactNotifier,
	dispatcher output.Dispatcher,
	catalog output.T,
	rules contact.Rules,
	recorder ContactRecorder,
	logger *slog.Logger,
) *ContactService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContactService{
		contactRepo: contactRepo,
		notifier:    notifier,
		dispatcher:  dispatcher,
		catalog:     catalog,
		rules:       rules,
		recorder:    recorder,
		logger:      logger,
	}
}

func (s *ContactService) SubmitContact(ctx context.Context, cmd input.SubmitContact) (*entities.Contact, error) {
	if violations := s.rules.Check(cmd.Fields); len(violations) > 0 {
		s.record("invalid")
		return nil, &domain.ValidationError{
			Fields: contact.Messages(violations, func(key string, params map[string]any) string {
				return s.catalog.T(cmd.Language, key, params)
			}),
		}
	}

	f := cmd.Fields.Normalized()
	c := &entities.Contact{
		Name:      f.Name,
		Email:     f.Email,
		Phone:     f.Phone,
		Subject:   f.Subject,
		Message:   f.Message,
		Status:    domain.ContactStatusNew,
		Source:    domain.ContactSourceWebsite,
		Language:  cmd.Language,
		IPAddress: cmd.IPAddress,
		UserAgent: cmd.UserAgent,
	}
	if err := s.contactRepo.Create(ctx, c); err != nil {
		s.record("error")
		return nil, err
	}
	s.record("stored")
	s.notify(ctx, c)
	return c, nil
}

// notify hands the submission to the notifier off the request path. Failures
// are logged; the submission is already stored.
func (s *ContactService) notify(ctx context.Context, c *entities.Contact) {
	if s.notifier == nil {
		return
	}
	job := func(ctx context.Context) {
		if err := s.notifier.NotifyContact(ctx, c); err != nil {
			s.logger.Warn("contact notification failed", "contact_id", c.ID, "error", err)
			s.recordNotified("error")
			return
		}
		s.recordNotified("sent")
	}
	if s.dispatcher == nil {
		job(ctx)
		return
	}
	if err := s.dispatcher.Dispatch(ctx, job); err != nil {
		s.logger.Warn("contact notification dropped", "contact_id", c.ID, "error", err)
		s.recordNotified("dropped")
	}
}

func (s *ContactService) ListContacts(ctx context.Context) ([]entities.Contact, error) {
	return s.contactRepo.List(ctx)
}

func (s *ContactService) record(outcome string) {
	if s.recorder != nil {
		s.recorder.ContactSubmitted(outcome)
	}
}

func (s *ContactService) recordNotified(outcome string) {
	if s.recorder != nil {
		s.recorder.ContactNotified(outcome)
	}
}
