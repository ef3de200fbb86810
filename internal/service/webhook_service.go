package service

import (
	"encoding/json"
	"fmt"
	"log"

	"extremefit-api/internal/model"
	"extremefit-api/internal/repository"
)

// Clerk event types handled by the user sync
const (
	EventUserCreated = "user.created"
	EventUserUpdated = "user.updated"
	EventUserDeleted = "user.deleted"
)

// ClerkEvent mirrors the relevant portion of the provider's event payload.
type ClerkEvent struct {
	Type string         `json:"type"`
	Data ClerkEventData `json:"data"`
}

type ClerkEventData struct {
	ID             string `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	EmailAddresses []struct {
		EmailAddress string `json:"email_address"`
	} `json:"email_addresses"`
	PhoneNumbers []struct {
		PhoneNumber string `json:"phone_number"`
	} `json:"phone_numbers"`
}

func (d *ClerkEventData) primaryEmail() string {
	if len(d.EmailAddresses) == 0 {
		return ""
	}
	return d.EmailAddresses[0].EmailAddress
}

func (d *ClerkEventData) primaryPhone() string {
	if len(d.PhoneNumbers) == 0 {
		return ""
	}
	return d.PhoneNumbers[0].PhoneNumber
}

// WebhookService keeps the local users table in sync with the identity
// provider. Deliveries are deduplicated by message id so replays are no-ops.
type WebhookService interface {
	ProcessClerkEvent(messageID string, payload []byte) error
}

type webhookService struct {
	userRepo  repository.UserRepository
	eventRepo repository.WebhookEventRepository
}

func NewWebhookService(userRepo repository.UserRepository, eventRepo repository.WebhookEventRepository) WebhookService {
	return &webhookService{
		userRepo:  userRepo,
		eventRepo: eventRepo,
	}
}

func (s *webhookService) ProcessClerkEvent(messageID string, payload []byte) error {
	if messageID != "" {
		seen, err := s.eventRepo.Exists(messageID)
		if err != nil {
			return err
		}
		if seen {
			log.Printf("Skipping already-processed webhook %s", messageID)
			return nil
		}
	}

	var evt ClerkEvent
	if err := json.Unmarshal(payload, &evt); err != nil {
		return fmt.Errorf("decode webhook payload: %w", err)
	}

	switch evt.Type {
	case EventUserCreated:
		user := &model.User{
			ClerkID:   evt.Data.ID,
			Email:     evt.Data.primaryEmail(),
			FirstName: evt.Data.FirstName,
			LastName:  evt.Data.LastName,
			Phone:     evt.Data.primaryPhone(),
		}
		if err := s.userRepo.UpsertByEmail(user); err != nil {
			return err
		}

	case EventUserUpdated:
		user, err := s.userRepo.FindByClerkID(evt.Data.ID)
		if err != nil {
			return ErrUserNotFound
		}
		user.Email = evt.Data.primaryEmail()
		user.FirstName = evt.Data.FirstName
		user.LastName = evt.Data.LastName
		user.Phone = evt.Data.primaryPhone()
		if err := s.userRepo.Update(user); err != nil {
			return err
		}

	case EventUserDeleted:
		if err := s.userRepo.DeleteByClerkID(evt.Data.ID); err != nil {
			return err
		}

	default:
		log.Printf("Unhandled webhook type: %s", evt.Type)
	}

	if messageID != "" {
		return s.eventRepo.MarkProcessed(messageID, evt.Type, "clerk")
	}
	return nil
}
