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
	"github.com/labstack/echo/v4"
	"github.com/phxsec/phoenixportal/dtos"
	"github.com/phxsec/phoenixportal/services"
	"github.com/phxsec/phoenixportal/shared"
	"github.com/phxsec/phoenixportal/transformer"
	"github.com/pkg/errors"
)

type LeaderboardController struct {
	leaderboardService shared.LeaderboardService
}

func NewLeaderboardController(leaderboardService shared.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{leaderboardService: leaderboardService}
}

func (controller *LeaderboardController) Rankings(ctx shared.Context) error {
	rankings, err := controller.leaderboardService.Rankings(ctx.Request().Context())
	if err != nil {
		return echo.NewHTTPError(500, "could not compute leaderboard").WithInternal(err)
	}
	return ctx.JSON(200, rankings)
}

func (controller *LeaderboardController) HunterProfile(ctx shared.Context) error {
	hunterID, err := shared.GetHunterID(ctx)
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	aggregate, reports, err := controller.leaderboardService.HunterProfile(ctx.Request().Context(), hunterID)
	if err != nil {
		if errors.Is(err, services.ErrHunterNotFound) {
			return echo.NewHTTPError(404, "hunter does not exist").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not load hunter profile").WithInternal(err)
	}

	return ctx.JSON(200, dtos.HunterProfileDTO{
		HunterAggregate: aggregate,
		Reports:         transformer.ReportsToDTOs(reports),
	})
}
