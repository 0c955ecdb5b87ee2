// Copyright (C) 2025 Phoenix Security Collective
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phxsec/phoenixportal/database"
	"github.com/phxsec/phoenixportal/database/models"
	"github.com/phxsec/phoenixportal/dtos"
	"github.com/phxsec/phoenixportal/shared"
	"github.com/phxsec/phoenixportal/statemachine"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type RegistrationService struct {
	eventRepository        shared.CommunityEventRepository
	registrationRepository shared.EventRegistrationRepository
	hunterRepository       shared.HunterRepository
	broker                 shared.Broker
}

func NewRegistrationService(eventRepository shared.CommunityEventRepository, registrationRepository shared.EventRegistrationRepository, hunterRepository shared.HunterRepository, broker shared.Broker) *RegistrationService {
	return &RegistrationService{
		eventRepository:        eventRepository,
		registrationRepository: registrationRepository,
		hunterRepository:       hunterRepository,
		broker:                 broker,
	}
}

// Register creates a pending registration. The unique index on
// (event_id, hunter_id) makes the second attempt fail, there is no
// read-then-insert window.
func (s *RegistrationService) Register(ctx context.Context, eventID uuid.UUID, hunterID uuid.UUID) (models.EventRegistration, error) {
	if _, err := s.eventRepository.Read(eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.EventRegistration{}, ErrEventNotFound
		}
		return models.EventRegistration{}, errors.Wrap(err, "could not read event")
	}
	if _, err := s.hunterRepository.Read(hunterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.EventRegistration{}, ErrHunterNotFound
		}
		return models.EventRegistration{}, errors.Wrap(err, "could not read hunter")
	}

	registration := models.EventRegistration{
		EventID:  eventID,
		HunterID: hunterID,
		Status:   dtos.StatePending,
	}
	if err := s.registrationRepository.Create(nil, &registration); err != nil {
		if database.IsDuplicateKeyError(err) {
			return models.EventRegistration{}, ErrAlreadyRegistered
		}
		return models.EventRegistration{}, errors.Wrap(err, "could not create registration")
	}
	return registration, nil
}

// ModerateRegistration applies a terminal decision to a pending registration.
// An approval only succeeds while the event still has a free seat. The event
// row is locked during the capacity check, so concurrent approvals cannot
// oversell an event.
func (s *RegistrationService) ModerateRegistration(ctx context.Context, registrationID uuid.UUID, decision dtos.ModerationDecision, actorID uuid.UUID) (models.EventRegistration, error) {
	registration, err := s.registrationRepository.Read(registrationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.EventRegistration{}, ErrRegistrationNotFound
		}
		return models.EventRegistration{}, errors.Wrap(err, "could not read registration")
	}

	decided, err := statemachine.DecideRegistration(registration, decision, actorID, time.Now())
	if err != nil {
		return models.EventRegistration{}, err
	}

	err = s.registrationRepository.Transaction(func(tx shared.DB) error {
		if decided.Status == dtos.StateApproved {
			event, err := s.eventRepository.ReadForUpdate(tx, decided.EventID)
			if err != nil {
				return errors.Wrap(err, "could not read event")
			}
			approved, err := s.registrationRepository.CountApproved(tx, decided.EventID)
			if err != nil {
				return errors.Wrap(err, "could not count registrations")
			}
			if approved >= int64(event.Capacity) {
				return ErrEventFull
			}
		}

		transitioned, err := s.registrationRepository.UpdateIfPending(tx, &decided)
		if err != nil {
			return errors.Wrap(err, "could not update registration")
		}
		if !transitioned {
			return statemachine.ErrAlreadyModerated
		}
		return nil
	})
	if err != nil {
		return models.EventRegistration{}, err
	}

	if err := s.broker.Publish(ctx, shared.NewSimpleMessage(shared.ChannelRegistrationModerated, map[string]any{
		"registrationId": decided.ID.String(),
		"eventId":        decided.EventID.String(),
		"hunterId":       decided.HunterID.String(),
		"status":         string(decided.Status),
	})); err != nil {
		slog.Error("could not publish registration message", "err", err, "registrationId", decided.ID)
	}

	return decided, nil
}

func (s *RegistrationService) CreateEvent(ctx context.Context, dto dtos.EventCreateDTO) (models.CommunityEvent, error) {
	event := models.CommunityEvent{
		Title:       dto.Title,
		Description: dto.Description,
		Location:    dto.Location,
		DiscordURL:  dto.DiscordURL,
		Capacity:    dto.Capacity,
		EventDate:   dto.EventDate,
	}
	if err := s.eventRepository.Create(nil, &event); err != nil {
		return models.CommunityEvent{}, errors.Wrap(err, "could not create event")
	}
	return event, nil
}

func (s *RegistrationService) DeleteEvent(ctx context.Context, eventID uuid.UUID) error {
	if _, err := s.eventRepository.Read(eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		return errors.Wrap(err, "could not read event")
	}
	return s.eventRepository.Delete(nil, eventID)
}

func (s *RegistrationService) UpcomingEvents(ctx context.Context) ([]models.CommunityEvent, error) {
	return s.eventRepository.Upcoming()
}

func (s *RegistrationService) PendingRegistrations(ctx context.Context) ([]models.EventRegistration, error) {
	return s.registrationRepository.ListPending()
}
