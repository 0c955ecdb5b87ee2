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

package models

// Hunter is a community member who submits vulnerability reports.
//
// TotalPoints, TotalApprovedReports and Rank are maintained incrementally in
// the same transaction as a report approval. They always equal the values
// derivable from the approved-report scan; the CLI recompute command verifies
// and repairs drift.
type Hunter struct {
	Model
	Username             string `json:"username" gorm:"type:text;not null;uniqueIndex"`
	TotalPoints          int    `json:"totalPoints" gorm:"not null;default:0"`
	TotalApprovedReports int    `json:"totalApprovedReports" gorm:"not null;default:0"`
	Rank                 string `json:"rank" gorm:"type:text;not null;default:'Ember Hunter'"`
}

func (h Hunter) TableName() string {
	return "hunters"
}
