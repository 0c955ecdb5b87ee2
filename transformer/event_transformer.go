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

package transformer

import (
	"github.com/phxsec/phoenixportal/database/models"
	"github.com/phxsec/phoenixportal/dtos"
	"github.com/phxsec/phoenixportal/utils"
)

func EventToDTO(event models.CommunityEvent) dtos.EventDTO {
	return dtos.EventDTO{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		Location:    event.Location,
		DiscordURL:  event.DiscordURL,
		Capacity:    event.Capacity,
		EventDate:   event.EventDate,
		CreatedAt:   event.CreatedAt,
	}
}

func EventsToDTOs(events []models.CommunityEvent) []dtos.EventDTO {
	return utils.Map(events, EventToDTO)
}

func RegistrationToDTO(registration models.EventRegistration) dtos.RegistrationDTO {
	return dtos.RegistrationDTO{
		ID:        registration.ID,
		EventID:   registration.EventID,
		HunterID:  registration.HunterID,
		Status:    registration.Status,
		CreatedAt: registration.CreatedAt,
		DecidedAt: registration.DecidedAt,
	}
}

func RegistrationsToDTOs(registrations []models.EventRegistration) []dtos.RegistrationDTO {
	return utils.Map(registrations, RegistrationToDTO)
}
