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

package dtos

import "github.com/google/uuid"

// HunterAggregate is the derived reputation view of a single hunter. It is
// recomputed from the approved reports, never stored as source of truth.
type HunterAggregate struct {
	HunterID             uuid.UUID `json:"hunterId"`
	Username             string    `json:"username"`
	TotalPoints          int       `json:"totalPoints"`
	TotalApprovedReports int       `json:"totalApprovedReports"`
	Rank                 string    `json:"rank"`
}

type HunterProfileDTO struct {
	HunterAggregate
	Reports []ReportDTO `json:"reports"`
}
