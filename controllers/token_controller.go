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
	"github.com/phxsec/phoenixportal/shared"
	"github.com/phxsec/phoenixportal/transformer"
)

type TokenController struct {
	tokenService shared.TokenService
}

func NewTokenController(tokenService shared.TokenService) *TokenController {
	return &TokenController{tokenService: tokenService}
}

func (controller *TokenController) Create(ctx shared.Context) error {
	var req dtos.TokenCreateDTO
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	token, plaintext, err := controller.tokenService.Create(req.Description, req.Scopes)
	if err != nil {
		return echo.NewHTTPError(500, "could not create token").WithInternal(err)
	}

	return ctx.JSON(201, transformer.TokenToDTO(token, plaintext))
}
