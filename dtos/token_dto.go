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

import (
	"time"

	"github.com/google/uuid"
)

type TokenCreateDTO struct {
	Description string   `json:"description" validate:"required"`
	Scopes      []string `json:"scopes" validate:"required,min=1,dive,oneof=moderate manage-events manage-tokens"`
}

// TokenDTO carries the plaintext secret exactly once, directly after
// creation. Only the fingerprint is stored.
type TokenDTO struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	Scopes      []string  `json:"scopes"`
	Token       string     `json:"token,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastUsedAt  *time.Time `json:"lastUsedAt"`
}
