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

package services

import "errors"

var (
	ErrReportNotFound       = errors.New("report does not exist")
	ErrHunterNotFound       = errors.New("hunter does not exist")
	ErrEventNotFound        = errors.New("event does not exist")
	ErrRegistrationNotFound = errors.New("registration does not exist")
	ErrAlreadyRegistered    = errors.New("hunter is already registered for this event")
	ErrEventFull            = errors.New("event has no free seats left")
	ErrInvalidToken         = errors.New("invalid access token")
)
