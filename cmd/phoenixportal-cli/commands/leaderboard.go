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

	"github.com/phxsec/phoenixportal/database/repositories"
	"github.com/phxsec/phoenixportal/services"
	"github.com/spf13/cobra"
)

func NewLeaderboardCommand() *cobra.Command {
	leaderboard := cobra.Command{
		Use:   "leaderboard",
		Short: "Inspect and repair the leaderboard",
	}

	leaderboard.AddCommand(newRecomputeCommand())
	return &leaderboard
}

func newRecomputeCommand() *cobra.Command {
	recompute := cobra.Command{
		Use:   "recompute",
		Short: "Rebuild every hunter aggregate from the approved reports",
		Long:  "Scans the approved reports and overwrites drifted hunter totals and ranks. Each hunter is repaired under its row lock, so running this while the service is up cannot clobber a concurrent approval.",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			db, err := connectDB()
			if err != nil {
				slog.Error("could not connect to database", "err", err)
				return
			}

			leaderboardService := services.NewLeaderboardService(
				repositories.NewReportRepository(db),
				repositories.NewHunterRepository(db),
			)

			repaired, err := leaderboardService.RecomputeAggregates(cmd.Context())
			if err != nil {
				slog.Error("could not recompute aggregates", "err", err)
				return
			}
			slog.Info("aggregates recomputed", "repaired", repaired)
		},
	}

	return &recompute
}
