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

package middlewares

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/phxsec/phoenixportal/shared"
	"github.com/phxsec/phoenixportal/utils"
)

// TokenAuth resolves the bearer token of the request and puts the stored
// access token into the context. Routes behind this middleware can rely on
// shared.GetAccessToken.
func TokenAuth(tokenService shared.TokenService) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			header := ctx.Request().Header.Get("Authorization")
			secret, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || secret == "" {
				return echo.NewHTTPError(401, "missing bearer token")
			}

			token, err := tokenService.Verify(secret)
			if err != nil {
				return echo.NewHTTPError(401, "invalid bearer token").WithInternal(err)
			}

			shared.SetAccessToken(ctx, token)
			return next(ctx)
		}
	}
}

// NeededScope rejects requests whose token lacks any of the listed scopes.
func NeededScope(neededScopes []string) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c shared.Context) error {
			token := shared.GetAccessToken(c)

			for _, scope := range neededScopes {
				if !utils.ContainsInWhitespaceSeparatedStringList(token.Scopes, scope) {
					slog.Error("token does not have the required scopes", "neededScopes", neededScopes, "tokenScopes", token.GetScopes())
					return echo.NewHTTPError(403, fmt.Sprintf("your access token does not have the required scope, needed scopes: %s", strings.Join(neededScopes, ", ")))
				}
			}

			return next(c)
		}
	}
}
