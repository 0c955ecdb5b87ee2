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

import (
	"crypto/rand"
	"encoding/hex"
	"log/slog"

	"github.com/phxsec/phoenixportal/database/models"
	"github.com/phxsec/phoenixportal/shared"
	"github.com/phxsec/phoenixportal/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type TokenService struct {
	tokenRepository shared.AccessTokenRepository
}

func NewTokenService(tokenRepository shared.AccessTokenRepository) *TokenService {
	return &TokenService{tokenRepository: tokenRepository}
}

// Create mints a new access token. The secret is returned exactly once, the
// database only keeps its fingerprint.
func (s *TokenService) Create(description string, scopes []string) (models.AccessToken, string, error) {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return models.AccessToken{}, "", errors.Wrap(err, "could not generate token secret")
	}
	plaintext := hex.EncodeToString(secret)

	token := models.AccessToken{Description: description}
	for _, scope := range scopes {
		token.Scopes = utils.AddToWhitespaceSeparatedStringList(token.Scopes, scope)
	}
	token.Fingerprint = token.HashToken(plaintext)

	if err := s.tokenRepository.Create(nil, &token); err != nil {
		return models.AccessToken{}, "", errors.Wrap(err, "could not save token")
	}
	return token, plaintext, nil
}

// Verify resolves a presented secret to its stored token and records the use.
func (s *TokenService) Verify(token string) (models.AccessToken, error) {
	var t models.AccessToken
	stored, err := s.tokenRepository.ReadByFingerprint(t.HashToken(token))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.AccessToken{}, ErrInvalidToken
		}
		return models.AccessToken{}, errors.Wrap(err, "could not read token")
	}

	if err := s.tokenRepository.MarkUsed(stored.ID); err != nil {
		// best effort, the last-used timestamp is informational
		slog.Warn("could not update token usage", "err", err)
	}
	return stored, nil
}
