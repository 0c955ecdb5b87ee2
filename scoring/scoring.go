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

// Package scoring owns the two pure reputation policies: the severity to
// points mapping applied once at report approval, and the points to rank tier
// step function.
package scoring

import (
	"errors"

	"github.com/phxsec/phoenixportal/dtos"
)

var ErrInvalidSeverity = errors.New("severity is not part of the closed enum")

var pointsBySeverity = map[dtos.Severity]int{
	dtos.SeverityLow:      50,
	dtos.SeverityMedium:   100,
	dtos.SeverityHigh:     200,
	dtos.SeverityCritical: 400,
}

// PointsFor maps a report severity to its point value. The severity enum is
// validated at the submission boundary, so an unknown value here is a caller
// bug - it is returned as ErrInvalidSeverity and must never be defaulted.
func PointsFor(severity dtos.Severity) (int, error) {
	points, ok := pointsBySeverity[severity]
	if !ok {
		return 0, ErrInvalidSeverity
	}
	return points, nil
}
