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

type ReportRouter struct {
	*echo.Group
}

// NewReportRouter registers the public report surface. Submission is open to
// the community, moderation lives on the admin router.
func NewReportRouter(apiV1Router APIV1Router, reportController *controllers.ReportController) ReportRouter {
	reportRouter := apiV1Router.Group.Group("/reports")
	reportRouter.POST("/", reportController.Submit)

	apiV1Router.GET("/hunters/:hunterID/reports/", reportController.HunterReports)

	return ReportRouter{Group: reportRouter}
}
