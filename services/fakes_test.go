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
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/phxsec/phoenixportal/database/models"
	"github.com/phxsec/phoenixportal/dtos"
	"github.com/phxsec/phoenixportal/shared"
	"gorm.io/gorm"
)

// errDuplicateKey mimics the error text postgres produces on a unique index
// violation, so database.IsDuplicateKeyError recognizes it.
var errDuplicateKey = errors.New(`ERROR: duplicate key value violates unique constraint "idx_event_hunter" (SQLSTATE 23505)`)

// in-memory fakes standing in for the gorm repositories. They implement the
// same compare-and-set semantics as the SQL layer, including the single-row
// guarantee of UpdateIfPending.

type fakeReportRepository struct {
	mux     sync.Mutex
	reports map[uuid.UUID]models.Report
}

func newFakeReportRepository() *fakeReportRepository {
	return &fakeReportRepository{reports: map[uuid.UUID]models.Report{}}
}

func (f *fakeReportRepository) Read(id uuid.UUID) (models.Report, error) {
	f.mux.Lock()
	defer f.mux.Unlock()
	report, ok := f.reports[id]
	if !ok {
		return models.Report{}, gorm.ErrRecordNotFound
	}
	return report, nil
}

func (f *fakeReportRepository) Create(tx shared.DB, report *models.Report) error {
	f.mux.Lock()
	defer f.mux.Unlock()
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	f.reports[report.ID] = *report
	return nil
}

func (f *fakeReportRepository) Transaction(fn func(tx shared.DB) error) error {
	return fn(nil)
}

func (f *fakeReportRepository) UpdateIfPending(tx shared.DB, report *models.Report) (bool, error) {
	f.mux.Lock()
	defer f.mux.Unlock()
	stored, ok := f.reports[report.ID]
	if !ok || stored.Status != dtos.StatePending {
		return false, nil
	}
	stored.Status = report.Status
	stored.PointsAwarded = report.PointsAwarded
	stored.DecidedAt = report.DecidedAt
	stored.DecidedBy = report.DecidedBy
	f.reports[report.ID] = stored
	return true, nil
}

func (f *fakeReportRepository) ListPending() ([]models.Report, error) {
	return f.listByStatus(dtos.StatePending), nil
}

func (f *fakeReportRepository) ListApproved() ([]models.Report, error) {
	return f.listByStatus(dtos.StateApproved), nil
}

func (f *fakeReportRepository) listByStatus(status dtos.ModerationState) []models.Report {
	f.mux.Lock()
	defer f.mux.Unlock()
	var out []models.Report
	for _, report := range f.reports {
		if report.Status == status {
			out = append(out, report)
		}
	}
	return out
}

func (f *fakeReportRepository) ListByHunter(hunterID uuid.UUID) ([]models.Report, error) {
	f.mux.Lock()
	defer f.mux.Unlock()
	var out []models.Report
	for _, report := range f.reports {
		if report.HunterID == hunterID {
			out = append(out, report)
		}
	}
	return out, nil
}

type fakeHunterRepository struct {
	mux     sync.Mutex
	hunters map[uuid.UUID]models.Hunter
}

func newFakeHunterRepository() *fakeHunterRepository {
	return &fakeHunterRepository{hunters: map[uuid.UUID]models.Hunter{}}
}

func (f *fakeHunterRepository) Read(id uuid.UUID) (models.Hunter, error) {
	f.mux.Lock()
	defer f.mux.Unlock()
	hunter, ok := f.hunters[id]
	if !ok {
		return models.Hunter{}, gorm.ErrRecordNotFound
	}
	return hunter, nil
}

func (f *fakeHunterRepository) ReadForUpdate(tx shared.DB, id uuid.UUID) (models.Hunter, error) {
	return f.Read(id)
}

func (f *fakeHunterRepository) ReadByUsername(username string) (models.Hunter, error) {
	f.mux.Lock()
	defer f.mux.Unlock()
	for _, hunter := range f.hunters {
		if hunter.Username == username {
			return hunter, nil
		}
	}
	return models.Hunter{}, gorm.ErrRecordNotFound
}

func (f *fakeHunterRepository) Create(tx shared.DB, hunter *models.Hunter) error {
	f.mux.Lock()
	defer f.mux.Unlock()
	if hunter.ID == uuid.Nil {
		hunter.ID = uuid.New()
	}
	f.hunters[hunter.ID] = *hunter
	return nil
}

func (f *fakeHunterRepository) List(ids []uuid.UUID) ([]models.Hunter, error) {
	f.mux.Lock()
	defer f.mux.Unlock()
	var out []models.Hunter
	for _, hunter := range f.hunters {
		if slices.Contains(ids, hunter.ID) {
			out = append(out, hunter)
		}
	}
	return out, nil
}

func (f *fakeHunterRepository) All() ([]models.Hunter, error) {
	f.mux.Lock()
	defer f.mux.Unlock()
	var out []models.Hunter
	for _, hunter := range f.hunters {
		out = append(out, hunter)
	}
	return out, nil
}

func (f *fakeHunterRepository) ApplyApproval(tx shared.DB, hunterID uuid.UUID, points int, rank string) error {
	f.mux.Lock()
	defer f.mux.Unlock()
	hunter := f.hunters[hunterID]
	hunter.TotalPoints += points
	hunter.TotalApprovedReports++
	hunter.Rank = rank
	f.hunters[hunterID] = hunter
	return nil
}

func (f *fakeHunterRepository) OverwriteAggregate(tx shared.DB, hunterID uuid.UUID, totalPoints int, totalApprovedReports int, rank string) error {
	f.mux.Lock()
	defer f.mux.Unlock()
	hunter := f.hunters[hunterID]
	hunter.TotalPoints = totalPoints
	hunter.TotalApprovedReports = totalApprovedReports
	hunter.Rank = rank
	f.hunters[hunterID] = hunter
	return nil
}

type fakeModerationEventRepository struct {
	mux    sync.Mutex
	events []models.ModerationEvent
}

func (f *fakeModerationEventRepository) Create(tx shared.DB, event *models.ModerationEvent) error {
	f.mux.Lock()
	defer f.mux.Unlock()
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	f.events = append(f.events, *event)
	return nil
}

func (f *fakeModerationEventRepository) ListByReport(reportID uuid.UUID) ([]models.ModerationEvent, error) {
	f.mux.Lock()
	defer f.mux.Unlock()
	var out []models.ModerationEvent
	for _, event := range f.events {
		if event.ReportID == reportID {
			out = append(out, event)
		}
	}
	return out, nil
}

type fakeCommunityEventRepository struct {
	mux    sync.Mutex
	events map[uuid.UUID]models.CommunityEvent
}

func newFakeCommunityEventRepository() *fakeCommunityEventRepository {
	return &fakeCommunityEventRepository{events: map[uuid.UUID]models.CommunityEvent{}}
}

func (f *fakeCommunityEventRepository) Read(id uuid.UUID) (models.CommunityEvent, error) {
	f.mux.Lock()
	defer f.mux.Unlock()
	event, ok := f.events[id]
	if !ok {
		return models.CommunityEvent{}, gorm.ErrRecordNotFound
	}
	return event, nil
}

func (f *fakeCommunityEventRepository) ReadForUpdate(tx shared.DB, id uuid.UUID) (models.CommunityEvent, error) {
	return f.Read(id)
}

func (f *fakeCommunityEventRepository) Create(tx shared.DB, event *models.CommunityEvent) error {
	f.mux.Lock()
	defer f.mux.Unlock()
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	f.events[event.ID] = *event
	return nil
}

func (f *fakeCommunityEventRepository) Delete(tx shared.DB, id uuid.UUID) error {
	f.mux.Lock()
	defer f.mux.Unlock()
	delete(f.events, id)
	return nil
}

func (f *fakeCommunityEventRepository) Upcoming() ([]models.CommunityEvent, error) {
	f.mux.Lock()
	defer f.mux.Unlock()
	var out []models.CommunityEvent
	for _, event := range f.events {
		out = append(out, event)
	}
	return out, nil
}

type fakeEventRegistrationRepository struct {
	mux           sync.Mutex
	registrations map[uuid.UUID]models.EventRegistration
}

func newFakeEventRegistrationRepository() *fakeEventRegistrationRepository {
	return &fakeEventRegistrationRepository{registrations: map[uuid.UUID]models.EventRegistration{}}
}

func (f *fakeEventRegistrationRepository) Read(id uuid.UUID) (models.EventRegistration, error) {
	f.mux.Lock()
	defer f.mux.Unlock()
	registration, ok := f.registrations[id]
	if !ok {
		return models.EventRegistration{}, gorm.ErrRecordNotFound
	}
	return registration, nil
}

func (f *fakeEventRegistrationRepository) Create(tx shared.DB, registration *models.EventRegistration) error {
	f.mux.Lock()
	defer f.mux.Unlock()
	for _, existing := range f.registrations {
		if existing.EventID == registration.EventID && existing.HunterID == registration.HunterID {
			// mimic the unique index violation of the real schema
			return errDuplicateKey
		}
	}
	if registration.ID == uuid.Nil {
		registration.ID = uuid.New()
	}
	f.registrations[registration.ID] = *registration
	return nil
}

func (f *fakeEventRegistrationRepository) Transaction(fn func(tx shared.DB) error) error {
	return fn(nil)
}

func (f *fakeEventRegistrationRepository) UpdateIfPending(tx shared.DB, registration *models.EventRegistration) (bool, error) {
	f.mux.Lock()
	defer f.mux.Unlock()
	stored, ok := f.registrations[registration.ID]
	if !ok || stored.Status != dtos.StatePending {
		return false, nil
	}
	stored.Status = registration.Status
	stored.DecidedAt = registration.DecidedAt
	stored.DecidedBy = registration.DecidedBy
	f.registrations[registration.ID] = stored
	return true, nil
}

func (f *fakeEventRegistrationRepository) CountApproved(tx shared.DB, eventID uuid.UUID) (int64, error) {
	f.mux.Lock()
	defer f.mux.Unlock()
	var count int64
	for _, registration := range f.registrations {
		if registration.EventID == eventID && registration.Status == dtos.StateApproved {
			count++
		}
	}
	return count, nil
}

func (f *fakeEventRegistrationRepository) ListPending() ([]models.EventRegistration, error) {
	f.mux.Lock()
	defer f.mux.Unlock()
	var out []models.EventRegistration
	for _, registration := range f.registrations {
		if registration.Status == dtos.StatePending {
			out = append(out, registration)
		}
	}
	return out, nil
}

type fakeAccessTokenRepository struct {
	mux    sync.Mutex
	tokens map[string]models.AccessToken
}

func newFakeAccessTokenRepository() *fakeAccessTokenRepository {
	return &fakeAccessTokenRepository{tokens: map[string]models.AccessToken{}}
}

func (f *fakeAccessTokenRepository) ReadByFingerprint(fingerprint string) (models.AccessToken, error) {
	f.mux.Lock()
	defer f.mux.Unlock()
	token, ok := f.tokens[fingerprint]
	if !ok {
		return models.AccessToken{}, gorm.ErrRecordNotFound
	}
	return token, nil
}

func (f *fakeAccessTokenRepository) Create(tx shared.DB, token *models.AccessToken) error {
	f.mux.Lock()
	defer f.mux.Unlock()
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	f.tokens[token.Fingerprint] = *token
	return nil
}

func (f *fakeAccessTokenRepository) MarkUsed(id uuid.UUID) error {
	return nil
}

type fakeBroker struct {
	mux      sync.Mutex
	messages []shared.PubSubMessage
}

func (f *fakeBroker) Publish(ctx context.Context, message shared.PubSubMessage) error {
	f.mux.Lock()
	defer f.mux.Unlock()
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeBroker) Subscribe(topic shared.PubSubChannel) (<-chan map[string]any, error) {
	ch := make(chan map[string]any)
	close(ch)
	return ch, nil
}

func (f *fakeBroker) published() []shared.PubSubMessage {
	f.mux.Lock()
	defer f.mux.Unlock()
	return slices.Clone(f.messages)
}
