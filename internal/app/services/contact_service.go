package services

import (
	"context"

	"github.com/ankitr/coachdesk/internal/app/models"
	"github.com/ankitr/coachdesk/internal/app/models/dto"
	"github.com/ankitr/coachdesk/internal/app/repositories"
	"github.com/ankitr/coachdesk/internal/pkg/email"
	"github.com/ankitr/coachdesk/internal/pkg/logger"
)

// ContactService defines operations on public enquiries
type ContactService interface {
	CreateContact(ctx context.Context, req *dto.CreateContactRequest) (*models.Contact, error)
	ListContacts(ctx context.Context, filter dto.ContactListFilter) ([]*models.Contact, error)
	GetContact(ctx context.Context, id int64) (*models.Contact, error)
	UpdateContact(ctx context.Context, id int64, req *dto.UpdateContactRequest) (*models.Contact, error)
	DeleteContact(ctx context.Context, id int64) error
	GetStats(ctx context.Context) (*dto.ContactStatsResponse, error)
}

type contactService struct {
	contactRepo *repositories.ContactRepository
	notifier    email.EnquiryNotifier
}

// NewContactService creates a new contact service
func NewContactService(contactRepo *repositories.ContactRepository, notifier email.EnquiryNotifier) ContactService {
	return &contactService{
		contactRepo: contactRepo,
		notifier:    notifier,
	}
}

// CreateContact stores a new enquiry and notifies the admin address.
// Notification failures are logged but never fail the submission.
func (s *contactService) CreateContact(ctx context.Context, req *dto.CreateContactRequest) (*models.Contact, error) {
	contact := &models.Contact{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		CourseInterest: req.CourseInterest,
		Message:        req.Message,
	}

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}

	go func() {
		err := s.notifier.SendEnquiryNotification(
			contact.FirstName, contact.LastName, contact.Email,
			contact.PhoneNumber, contact.CourseInterest, contact.Message)
		if err != nil {
			logger.Error().Err(err).Int64("contactId", contact.ID).Msg("Failed to send enquiry notification")
		}
	}()

	return contact, nil
}

func (s *contactService) ListContacts(ctx context.Context, filter dto.ContactListFilter) ([]*models.Contact, error) {
	return s.contactRepo.List(ctx, filter)
}

func (s *contactService) GetContact(ctx context.Context, id int64) (*models.Contact, error) {
	return s.contactRepo.GetByID(ctx, id)
}

// UpdateContact applies a partial update and returns the updated row
func (s *contactService) UpdateContact(ctx context.Context, id int64, req *dto.UpdateContactRequest) (*models.Contact, error) {
	if err := s.contactRepo.Update(ctx, id, req); err != nil {
		return nil, err
	}
	return s.contactRepo.GetByID(ctx, id)
}

func (s *contactService) DeleteContact(ctx context.Context, id int64) error {
	return s.contactRepo.Delete(ctx, id)
}

// GetStats aggregates enquiry counts per status
func (s *contactService) GetStats(ctx context.Context) (*dto.ContactStatsResponse, error) {
	counts, err := s.contactRepo.StatusCounts(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.ContactStatsResponse{
		New:       counts[models.ContactStatusNew],
		Contacted: counts[models.ContactStatusContacted],
		Enrolled:  counts[models.ContactStatusEnrolled],
		Rejected:  counts[models.ContactStatusRejected],
	}
	stats.Total = stats.New + stats.Contacted + stats.Enrolled + stats.Rejected

	return stats, nil
}
