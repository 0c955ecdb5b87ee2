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

package scoring

import "errors"

type RankTier string

const (
	RankEmberHunter      RankTier = "Ember Hunter"
	RankFlameHunter      RankTier = "Flame Hunter"
	RankPhoenixHunter    RankTier = "Phoenix Hunter"
	RankInfernoHunter    RankTier = "Inferno Hunter"
	RankAscendedPhoenix  RankTier = "Ascended Phoenix"
)

var (
	ErrNegativePoints   = errors.New("total points must not be negative")
	ErrInvalidRankTable = errors.New("rank table must start at zero and be strictly increasing")
)

// RankThreshold assigns a tier to every total greater than or equal to
// MinPoints, up to the next threshold.
type RankThreshold struct {
	MinPoints int
	Tier      RankTier
}

// DefaultRankTable covers every non-negative total: no gaps, no overlaps.
// Deployments may swap the values, the shape is validated.
var DefaultRankTable = []RankThreshold{
	{MinPoints: 0, Tier: RankEmberHunter},
	{MinPoints: 300, Tier: RankFlameHunter},
	{MinPoints: 800, Tier: RankPhoenixHunter},
	{MinPoints: 2000, Tier: RankInfernoHunter},
	{MinPoints: 5000, Tier: RankAscendedPhoenix},
}

// ValidateRankTable checks the contract shape of a rank table: the first
// threshold is zero and the thresholds are strictly increasing.
func ValidateRankTable(table []RankThreshold) error {
	if len(table) == 0 || table[0].MinPoints != 0 {
		return ErrInvalidRankTable
	}
	for i := 1; i < len(table); i++ {
		if table[i].MinPoints <= table[i-1].MinPoints {
			return ErrInvalidRankTable
		}
	}
	return nil
}

// RankForWithTable selects the highest tier whose threshold is <= totalPoints.
func RankForWithTable(table []RankThreshold, totalPoints int) (RankTier, error) {
	if totalPoints < 0 {
		return "", ErrNegativePoints
	}
	if err := ValidateRankTable(table); err != nil {
		return "", err
	}

	tier := table[0].Tier
	for _, threshold := range table[1:] {
		if totalPoints < threshold.MinPoints {
			break
		}
		tier = threshold.Tier
	}
	return tier, nil
}

// RankFor evaluates the default rank table. A negative total indicates an
// aggregate maintenance bug upstream and is reported, never masked.
func RankFor(totalPoints int) (RankTier, error) {
	return RankForWithTable(DefaultRankTable, totalPoints)
}
