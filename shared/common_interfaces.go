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

package shared

import (
	"context"

	"github.com/google/uuid"
	"github.com/phxsec/phoenixportal/database/models"
	"github.com/phxsec/phoenixportal/dtos"
)

type ReportRepository interface {
	Read(id uuid.UUID) (models.Report, error)
	Create(tx DB, report *models.Report) error
	Transaction(fn func(tx DB) error) error
	// UpdateIfPending persists a decided report with a conditional update
	// keyed on the row still being pending. It reports whether the row was
	// actually transitioned - false means somebody else decided it first.
	UpdateIfPending(tx DB, report *models.Report) (bool, error)
	ListPending() ([]models.Report, error)
	ListApproved() ([]models.Report, error)
	ListByHunter(hunterID uuid.UUID) ([]models.Report, error)
}

type HunterRepository interface {
	Read(id uuid.UUID) (models.Hunter, error)
	ReadForUpdate(tx DB, id uuid.UUID) (models.Hunter, error)
	ReadByUsername(username string) (models.Hunter, error)
	Create(tx DB, hunter *models.Hunter) error
	List(ids []uuid.UUID) ([]models.Hunter, error)
	All() ([]models.Hunter, error)
	// ApplyApproval credits points and one approved report to the hunter and
	// stores the recomputed rank, all in a single update.
	ApplyApproval(tx DB, hunterID uuid.UUID, points int, rank string) error
	OverwriteAggregate(tx DB, hunterID uuid.UUID, totalPoints int, totalApprovedReports int, rank string) error
}

type ModerationEventRepository interface {
	Create(tx DB, event *models.ModerationEvent) error
	ListByReport(reportID uuid.UUID) ([]models.ModerationEvent, error)
}

type CommunityEventRepository interface {
	Read(id uuid.UUID) (models.CommunityEvent, error)
	ReadForUpdate(tx DB, id uuid.UUID) (models.CommunityEvent, error)
	Create(tx DB, event *models.CommunityEvent) error
	Delete(tx DB, id uuid.UUID) error
	Upcoming() ([]models.CommunityEvent, error)
}

type EventRegistrationRepository interface {
	Read(id uuid.UUID) (models.EventRegistration, error)
	Create(tx DB, registration *models.EventRegistration) error
	Transaction(fn func(tx DB) error) error
	UpdateIfPending(tx DB, registration *models.EventRegistration) (bool, error)
	CountApproved(tx DB, eventID uuid.UUID) (int64, error)
	ListPending() ([]models.EventRegistration, error)
}

type AccessTokenRepository interface {
	ReadByFingerprint(fingerprint string) (models.AccessToken, error)
	Create(tx DB, token *models.AccessToken) error
	MarkUsed(id uuid.UUID) error
}

type ReportService interface {
	Submit(ctx context.Context, dto dtos.ReportCreateDTO) (models.Report, error)
	PendingQueue(ctx context.Context) ([]models.Report, error)
	HunterReports(ctx context.Context, hunterID uuid.UUID) ([]models.Report, error)
}

type ModerationService interface {
	Moderate(ctx context.Context, reportID uuid.UUID, decision dtos.ModerationDecision, actorID uuid.UUID) (models.Report, error)
}

type LeaderboardService interface {
	Rankings(ctx context.Context) ([]dtos.HunterAggregate, error)
	AggregateFor(ctx context.Context, hunterID uuid.UUID) (dtos.HunterAggregate, error)
	HunterProfile(ctx context.Context, hunterID uuid.UUID) (dtos.HunterAggregate, []models.Report, error)
	RecomputeAggregates(ctx context.Context) (int, error)
}

type RegistrationService interface {
	Register(ctx context.Context, eventID uuid.UUID, hunterID uuid.UUID) (models.EventRegistration, error)
	ModerateRegistration(ctx context.Context, registrationID uuid.UUID, decision dtos.ModerationDecision, actorID uuid.UUID) (models.EventRegistration, error)
	CreateEvent(ctx context.Context, dto dtos.EventCreateDTO) (models.CommunityEvent, error)
	DeleteEvent(ctx context.Context, eventID uuid.UUID) error
	UpcomingEvents(ctx context.Context) ([]models.CommunityEvent, error)
	PendingRegistrations(ctx context.Context) ([]models.EventRegistration, error)
}

type TokenService interface {
	Create(description string, scopes []string) (models.AccessToken, string, error)
	Verify(token string) (models.AccessToken, error)
}
