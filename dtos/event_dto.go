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

package dtos

import (
	"time"

	"github.com/google/uuid"
)

type EventCreateDTO struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Location    string    `json:"location" validate:"required"`
	DiscordURL  string    `json:"discordUrl" validate:"omitempty,url"`
	Capacity    int       `json:"capacity" validate:"required,gt=0"`
	EventDate   time.Time `json:"eventDate" validate:"required"`
}

type EventDTO struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	DiscordURL  string    `json:"discordUrl"`
	Capacity    int       `json:"capacity"`
	EventDate   time.Time `json:"eventDate"`
	CreatedAt   time.Time `json:"createdAt"`
}

type RegistrationCreateDTO struct {
	HunterID uuid.UUID `json:"hunterId" validate:"required"`
}

type RegistrationDTO struct {
	ID        uuid.UUID       `json:"id"`
	EventID   uuid.UUID       `json:"eventId"`
	HunterID  uuid.UUID       `json:"hunterId"`
	Status    ModerationState `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
	DecidedAt *time.Time      `json:"decidedAt"`
}
