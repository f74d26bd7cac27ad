package contact

import (
	"context"
	"errors"
	"strings"
	"time"

	"agency-backend/internal/contactform"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrInvalidForm = errors.New("contact form is invalid")

// ValidationError carries per-field messages from the contact form rules.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return ErrInvalidForm.Error()
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidForm
}

type Notifier interface {
	SendContactNotification(ctx context.Context, msg Message) (string, error)
}

type Service struct {
	repo     Repository
	location *time.Location
	notifier Notifier
	now      func() time.Time
}

func NewService(repo Repository, location *time.Location, notifier Notifier) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		repo:     repo,
		location: location,
		notifier: notifier,
		now:      time.Now,
	}
}

// Create runs the submission through the same validation a browser applies
// before sending, then stores it.
func (s *Service) Create(ctx context.Context, req CreateRequest) (Message, error) {
	form := contactform.FromValues(map[contactform.Field]string{
		contactform.FieldName:        req.Name,
		contactform.FieldEmail:       req.Email,
		contactform.FieldCompany:     req.Company,
		contactform.FieldProjectType: req.ProjectType,
		contactform.FieldMessage:     req.Message,
	})
	if !form.Submit() {
		return Message{}, &ValidationError{Fields: form.ErrorDetails()}
	}

	msg := Message{
		ID:          primitive.NewObjectID().Hex(),
		Name:        strings.TrimSpace(form.FormData[contactform.FieldName]),
		Email:       strings.ToLower(strings.TrimSpace(form.FormData[contactform.FieldEmail])),
		Company:     strings.TrimSpace(form.FormData[contactform.FieldCompany]),
		ProjectType: strings.TrimSpace(form.FormData[contactform.FieldProjectType]),
		Message:     strings.TrimSpace(form.FormData[contactform.FieldMessage]),
		CreatedAt:   s.now().In(s.location),
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return Message{}, err
	}
	return msg, nil
}

func (s *Service) ListRecent(ctx context.Context, limit, offset int64) ([]Message, int64, error) {
	items, err := s.repo.ListRecent(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *Service) Notify(ctx context.Context, msg Message) error {
	if s.notifier == nil {
		return nil
	}
	_, err := s.notifier.SendContactNotification(ctx, msg)
	return err
}
