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
	"log/slog"

	"github.com/phxsec/phoenixportal/database"
	"github.com/phxsec/phoenixportal/shared"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:   "phoenixportal-cli",
	Short: "Management cli",
	Long:  `The phoenixportal cli can be used to maintain a running phoenixportal instance.`,
}

func GetRootCmd() *cobra.Command {
	return rootCmd
}

func connectDB() (*gorm.DB, error) {
	shared.LoadConfig() // nolint
	pool, err := database.NewPgxConnPool(database.PoolConfigFromEnv())
	if err != nil {
		slog.Error("could not create connection pool", "err", err)
		return nil, err
	}
	return database.NewGormDB(pool)
}
