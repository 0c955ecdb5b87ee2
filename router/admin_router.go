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

package router

import (
	"github.com/labstack/echo/v4"
	"github.com/phxsec/phoenixportal/controllers"
	"github.com/phxsec/phoenixportal/middlewares"
	"github.com/phxsec/phoenixportal/shared"
)

type AdminRouter struct {
	*echo.Group
}

// NewAdminRouter registers the token-protected surface. Every route requires
// a valid bearer token, the scope decides what it may touch.
func NewAdminRouter(
	apiV1Router APIV1Router,
	tokenService shared.TokenService,
	reportController *controllers.ReportController,
	eventController *controllers.EventController,
	tokenController *controllers.TokenController,
) AdminRouter {
	adminRouter := apiV1Router.Group.Group("/admin", middlewares.TokenAuth(tokenService))

	moderationRouter := adminRouter.Group("", middlewares.NeededScope([]string{"moderate"}))
	moderationRouter.GET("/reports/pending/", reportController.PendingQueue)
	moderationRouter.POST("/reports/:reportID/decision/", reportController.Moderate)
	moderationRouter.GET("/registrations/pending/", eventController.PendingRegistrations)
	moderationRouter.POST("/registrations/:registrationID/decision/", eventController.ModerateRegistration)

	eventManagementRouter := adminRouter.Group("/events", middlewares.NeededScope([]string{"manage-events"}))
	eventManagementRouter.POST("/", eventController.Create)
	eventManagementRouter.DELETE("/:eventID/", eventController.Delete)

	tokenRouter := adminRouter.Group("/tokens", middlewares.NeededScope([]string{"manage-tokens"}))
	tokenRouter.POST("/", tokenController.Create)

	return AdminRouter{Group: adminRouter}
}
