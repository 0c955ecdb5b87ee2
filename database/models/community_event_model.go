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

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/phxsec/phoenixportal/dtos"
)

type CommunityEvent struct {
	Model
	Title       string    `json:"title" gorm:"type:text;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Location    string    `json:"location" gorm:"type:text"`
	DiscordURL  string    `json:"discordUrl" gorm:"type:text"`
	Capacity    int       `json:"capacity" gorm:"not null"`
	EventDate   time.Time `json:"eventDate" gorm:"not null;index"`
}

func (e CommunityEvent) TableName() string {
	return "community_events"
}

// EventRegistration goes through the same pending/approved/rejected lifecycle
// as a report, without any points side effect. A hunter can register for an
// event at most once.
type EventRegistration struct {
	Model
	EventID   uuid.UUID            `json:"eventId" gorm:"type:uuid;not null;uniqueIndex:idx_event_hunter"`
	HunterID  uuid.UUID            `json:"hunterId" gorm:"type:uuid;not null;uniqueIndex:idx_event_hunter"`
	Status    dtos.ModerationState `json:"status" gorm:"type:text;not null;default:'pending';index"`
	DecidedAt *time.Time           `json:"decidedAt" gorm:"default:null"`
	DecidedBy *uuid.UUID           `json:"decidedBy" gorm:"type:uuid;default:null"`
}

func (r EventRegistration) TableName() string {
	return "event_registrations"
}
