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

package repositories

import (
	"github.com/phxsec/phoenixportal/shared"
	"go.uber.org/fx"
)

// Module provides all repository constructors as their interfaces
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewReportRepository, fx.As(new(shared.ReportRepository)))),
	fx.Provide(fx.Annotate(NewHunterRepository, fx.As(new(shared.HunterRepository)))),
	fx.Provide(fx.Annotate(NewModerationEventRepository, fx.As(new(shared.ModerationEventRepository)))),
	fx.Provide(fx.Annotate(NewCommunityEventRepository, fx.As(new(shared.CommunityEventRepository)))),
	fx.Provide(fx.Annotate(NewEventRegistrationRepository, fx.As(new(shared.EventRegistrationRepository)))),
	fx.Provide(fx.Annotate(NewAccessTokenRepository, fx.As(new(shared.AccessTokenRepository)))),
)
