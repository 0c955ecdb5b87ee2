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

package controllers

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/phxsec/phoenixportal/dtos"
	"github.com/phxsec/phoenixportal/services"
	"github.com/phxsec/phoenixportal/shared"
	"github.com/phxsec/phoenixportal/statemachine"
	"github.com/phxsec/phoenixportal/transformer"
	"github.com/pkg/errors"
)

type EventController struct {
	registrationService shared.RegistrationService
}

func NewEventController(registrationService shared.RegistrationService) *EventController {
	return &EventController{registrationService: registrationService}
}

func (controller *EventController) Create(ctx shared.Context) error {
	var req dtos.EventCreateDTO
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	event, err := controller.registrationService.CreateEvent(ctx.Request().Context(), req)
	if err != nil {
		return echo.NewHTTPError(500, "could not create event").WithInternal(err)
	}
	return ctx.JSON(201, transformer.EventToDTO(event))
}

func (controller *EventController) Delete(ctx shared.Context) error {
	eventID, err := shared.GetEventID(ctx)
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	if err := controller.registrationService.DeleteEvent(ctx.Request().Context(), eventID); err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			return echo.NewHTTPError(404, "event does not exist").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not delete event").WithInternal(err)
	}
	return ctx.NoContent(200)
}

func (controller *EventController) Upcoming(ctx shared.Context) error {
	events, err := controller.registrationService.UpcomingEvents(ctx.Request().Context())
	if err != nil {
		return echo.NewHTTPError(500, "could not list events").WithInternal(err)
	}
	return ctx.JSON(200, transformer.EventsToDTOs(events))
}

func (controller *EventController) Register(ctx shared.Context) error {
	eventID, err := shared.GetEventID(ctx)
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	var req dtos.RegistrationCreateDTO
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	registration, err := controller.registrationService.Register(ctx.Request().Context(), eventID, req.HunterID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEventNotFound):
			return echo.NewHTTPError(404, "event does not exist").WithInternal(err)
		case errors.Is(err, services.ErrHunterNotFound):
			return echo.NewHTTPError(404, "hunter does not exist").WithInternal(err)
		case errors.Is(err, services.ErrAlreadyRegistered):
			return echo.NewHTTPError(409, "hunter is already registered for this event").WithInternal(err)
		default:
			return echo.NewHTTPError(500, "could not register for event").WithInternal(err)
		}
	}
	return ctx.JSON(201, transformer.RegistrationToDTO(registration))
}

func (controller *EventController) PendingRegistrations(ctx shared.Context) error {
	registrations, err := controller.registrationService.PendingRegistrations(ctx.Request().Context())
	if err != nil {
		return echo.NewHTTPError(500, "could not list pending registrations").WithInternal(err)
	}
	return ctx.JSON(200, transformer.RegistrationsToDTOs(registrations))
}

func (controller *EventController) ModerateRegistration(ctx shared.Context) error {
	registrationID, err := shared.GetRegistrationID(ctx)
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	var req dtos.ModerationRequestDTO
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	actorID := shared.GetAccessToken(ctx).ID
	registration, err := controller.registrationService.ModerateRegistration(ctx.Request().Context(), registrationID, req.Decision, actorID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRegistrationNotFound):
			return echo.NewHTTPError(404, "registration does not exist").WithInternal(err)
		case errors.Is(err, statemachine.ErrAlreadyModerated):
			return echo.NewHTTPError(409, "registration has already been moderated").WithInternal(err)
		case errors.Is(err, services.ErrEventFull):
			return echo.NewHTTPError(409, "event has no free seats left").WithInternal(err)
		case errors.Is(err, statemachine.ErrUnknownDecision):
			return echo.NewHTTPError(400, "unknown moderation decision").WithInternal(err)
		default:
			return echo.NewHTTPError(500, "could not moderate registration").WithInternal(err)
		}
	}
	return ctx.JSON(200, transformer.RegistrationToDTO(registration))
}
