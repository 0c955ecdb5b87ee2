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

type ReportController struct {
	reportService     shared.ReportService
	moderationService shared.ModerationService
}

func NewReportController(reportService shared.ReportService, moderationService shared.ModerationService) *ReportController {
	return &ReportController{
		reportService:     reportService,
		moderationService: moderationService,
	}
}

func (controller *ReportController) Submit(ctx shared.Context) error {
	var req dtos.ReportCreateDTO
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	report, err := controller.reportService.Submit(ctx.Request().Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrHunterNotFound) {
			return echo.NewHTTPError(404, "hunter does not exist").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not submit report").WithInternal(err)
	}

	return ctx.JSON(201, transformer.ReportToDTO(report))
}

func (controller *ReportController) HunterReports(ctx shared.Context) error {
	hunterID, err := shared.GetHunterID(ctx)
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	reports, err := controller.reportService.HunterReports(ctx.Request().Context(), hunterID)
	if err != nil {
		if errors.Is(err, services.ErrHunterNotFound) {
			return echo.NewHTTPError(404, "hunter does not exist").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not list reports").WithInternal(err)
	}

	return ctx.JSON(200, transformer.ReportsToDTOs(reports))
}

func (controller *ReportController) PendingQueue(ctx shared.Context) error {
	reports, err := controller.reportService.PendingQueue(ctx.Request().Context())
	if err != nil {
		return echo.NewHTTPError(500, "could not list pending reports").WithInternal(err)
	}
	return ctx.JSON(200, transformer.ReportsToDTOs(reports))
}

func (controller *ReportController) Moderate(ctx shared.Context) error {
	reportID, err := shared.GetReportID(ctx)
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
	report, err := controller.moderationService.Moderate(ctx.Request().Context(), reportID, req.Decision, actorID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrReportNotFound):
			return echo.NewHTTPError(404, "report does not exist").WithInternal(err)
		case errors.Is(err, statemachine.ErrAlreadyModerated):
			return echo.NewHTTPError(409, "report has already been moderated").WithInternal(err)
		case errors.Is(err, statemachine.ErrUnknownDecision):
			return echo.NewHTTPError(400, "unknown moderation decision").WithInternal(err)
		default:
			return echo.NewHTTPError(500, "could not moderate report").WithInternal(err)
		}
	}

	return ctx.JSON(200, transformer.ReportToDTO(report))
}
