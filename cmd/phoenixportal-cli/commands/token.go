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

package commands

import (
	"fmt"
	"log/slog"

	"github.com/phxsec/phoenixportal/database/repositories"
	"github.com/phxsec/phoenixportal/services"
	"github.com/spf13/cobra"
)

func NewTokenCommand() *cobra.Command {
	token := cobra.Command{
		Use:   "token",
		Short: "Manage access tokens",
	}

	token.AddCommand(newTokenCreateCommand())
	return &token
}

func newTokenCreateCommand() *cobra.Command {
	create := cobra.Command{
		Use:   "create",
		Short: "Create a new access token",
		Long:  "Creates an access token for the admin API. The secret is printed exactly once.",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			description, _ := cmd.Flags().GetString("description")
			scopes, _ := cmd.Flags().GetStringSlice("scopes")

			db, err := connectDB()
			if err != nil {
				slog.Error("could not connect to database", "err", err)
				return
			}

			tokenService := services.NewTokenService(repositories.NewAccessTokenRepository(db))
			token, plaintext, err := tokenService.Create(description, scopes)
			if err != nil {
				slog.Error("could not create token", "err", err)
				return
			}

			slog.Info("token created", "id", token.ID, "scopes", token.Scopes)
			fmt.Println(plaintext)
		},
	}

	create.Flags().String("description", "", "what the token is used for")
	create.Flags().StringSlice("scopes", []string{"moderate"}, "scopes of the token (moderate, manage-events, manage-tokens)")

	return &create
}
