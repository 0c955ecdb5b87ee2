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

package transformer

import (
	"github.com/phxsec/phoenixportal/database/models"
	"github.com/phxsec/phoenixportal/dtos"
)

// TokenToDTO includes the plaintext secret. Pass an empty string everywhere
// except directly after creation.
func TokenToDTO(token models.AccessToken, plaintext string) dtos.TokenDTO {
	return dtos.TokenDTO{
		ID:          token.ID,
		Description: token.Description,
		Scopes:      token.GetScopes(),
		Token:       plaintext,
		CreatedAt:   token.CreatedAt,
		LastUsedAt:  token.LastUsedAt,
	}
}
