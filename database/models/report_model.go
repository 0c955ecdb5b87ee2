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

import (
	"time"

	"github.com/google/uuid"
	"github.com/phxsec/phoenixportal/dtos"
)

// Report is a vulnerability report submitted by a hunter. Everything except
// Status, PointsAwarded, DecidedAt and DecidedBy is immutable after
// submission. PointsAwarded is fixed at the moment of approval and never
// recomputed, even if the scoring table changes later.
type Report struct {
	Model
	HunterID           uuid.UUID            `json:"hunterId" gorm:"type:uuid;not null;index"`
	Hunter             *Hunter              `json:"hunter,omitempty" gorm:"foreignKey:HunterID"`
	Target             string               `json:"target" gorm:"type:text;not null"`
	TargetType         string               `json:"targetType" gorm:"type:text;not null"`
	VulnerabilityClass string               `json:"vulnerabilityClass" gorm:"type:text;not null"`
	Description        string               `json:"description" gorm:"type:text"`
	Severity           dtos.Severity        `json:"severity" gorm:"type:text;not null"`
	Status             dtos.ModerationState `json:"status" gorm:"type:text;not null;default:'pending';index"`
	PointsAwarded      int                  `json:"pointsAwarded" gorm:"not null;default:0"`
	DecidedAt          *time.Time           `json:"decidedAt" gorm:"default:null"`
	DecidedBy          *uuid.UUID           `json:"decidedBy" gorm:"type:uuid;default:null"`
}

func (r Report) TableName() string {
	return "whitehat_reports"
}
