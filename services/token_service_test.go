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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenService(t *testing.T) {
	t.Run("should verify a freshly created token", func(t *testing.T) {
		service := NewTokenService(newFakeAccessTokenRepository())

		created, plaintext, err := service.Create("moderation bot", []string{"moderate"})
		assert.NoError(t, err)
		assert.NotEmpty(t, plaintext)
		assert.NotEqual(t, plaintext, created.Fingerprint)

		verified, err := service.Verify(plaintext)
		assert.NoError(t, err)
		assert.Equal(t, created.Fingerprint, verified.Fingerprint)
		assert.Equal(t, []string{"moderate"}, verified.GetScopes())
	})

	t.Run("should store multiple scopes whitespace separated", func(t *testing.T) {
		service := NewTokenService(newFakeAccessTokenRepository())

		created, _, err := service.Create("admin", []string{"moderate", "manage-events"})
		assert.NoError(t, err)
		assert.Equal(t, "moderate manage-events", created.Scopes)
		assert.Equal(t, []string{"moderate", "manage-events"}, created.GetScopes())
	})

	t.Run("should not store a scope twice", func(t *testing.T) {
		service := NewTokenService(newFakeAccessTokenRepository())

		created, _, err := service.Create("sloppy caller", []string{"moderate", "moderate", "manage-events"})
		assert.NoError(t, err)
		assert.Equal(t, "moderate manage-events", created.Scopes)
	})

	t.Run("should reject an unknown token", func(t *testing.T) {
		service := NewTokenService(newFakeAccessTokenRepository())

		_, err := service.Verify("deadbeef")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("should mint distinct secrets", func(t *testing.T) {
		service := NewTokenService(newFakeAccessTokenRepository())

		_, first, err := service.Create("a", []string{"moderate"})
		assert.NoError(t, err)
		_, second, err := service.Create("b", []string{"moderate"})
		assert.NoError(t, err)
		assert.NotEqual(t, first, second)
	})
}
