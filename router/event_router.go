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
)

type EventRouter struct {
	*echo.Group
}

// NewEventRouter registers the public event surface: browsing upcoming events
// and registering for one. Event management and registration moderation live
// on the admin router.
func NewEventRouter(apiV1Router APIV1Router, eventController *controllers.EventController) EventRouter {
	eventRouter := apiV1Router.Group.Group("/events")
	eventRouter.GET("/", eventController.Upcoming)
	eventRouter.POST("/:eventID/registrations/", eventController.Register)

	return EventRouter{Group: eventRouter}
}
