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

package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/phxsec/phoenixportal/database/models"
	"github.com/phxsec/phoenixportal/dtos"
	"github.com/phxsec/phoenixportal/services"
	"github.com/phxsec/phoenixportal/shared"
	"github.com/phxsec/phoenixportal/statemachine"
	"github.com/stretchr/testify/assert"
)

type stubReportService struct {
	submitErr error
}

func (s *stubReportService) Submit(ctx context.Context, dto dtos.ReportCreateDTO) (models.Report, error) {
	if s.submitErr != nil {
		return models.Report{}, s.submitErr
	}
	return models.Report{
		Model:    models.Model{ID: uuid.New()},
		HunterID: dto.HunterID,
		Severity: dto.Severity,
		Status:   dtos.StatePending,
	}, nil
}

func (s *stubReportService) PendingQueue(ctx context.Context) ([]models.Report, error) {
	return nil, nil
}

func (s *stubReportService) HunterReports(ctx context.Context, hunterID uuid.UUID) ([]models.Report, error) {
	return nil, nil
}

type stubModerationService struct {
	err error
}

func (s *stubModerationService) Moderate(ctx context.Context, reportID uuid.UUID, decision dtos.ModerationDecision, actorID uuid.UUID) (models.Report, error) {
	if s.err != nil {
		return models.Report{}, s.err
	}
	return models.Report{Model: models.Model{ID: reportID}, Status: dtos.StateApproved}, nil
}

func moderationContext(t *testing.T, body string) (shared.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	e := echo.New()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("reportID")
	ctx.SetParamValues(uuid.New().String())
	shared.SetAccessToken(ctx, models.AccessToken{ID: uuid.New(), Scopes: "moderate"})
	return ctx, rec
}

func TestModerateController(t *testing.T) {
	t.Run("should return 200 on a successful decision", func(t *testing.T) {
		controller := NewReportController(&stubReportService{}, &stubModerationService{})
		ctx, rec := moderationContext(t, `{"decision": "approve"}`)

		err := controller.Moderate(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 200, rec.Code)
	})

	t.Run("should map a repeated decision to 409", func(t *testing.T) {
		controller := NewReportController(&stubReportService{}, &stubModerationService{err: statemachine.ErrAlreadyModerated})
		ctx, _ := moderationContext(t, `{"decision": "reject"}`)

		err := controller.Moderate(ctx)
		httpError, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, 409, httpError.Code)
	})

	t.Run("should map an unknown report to 404", func(t *testing.T) {
		controller := NewReportController(&stubReportService{}, &stubModerationService{err: services.ErrReportNotFound})
		ctx, _ := moderationContext(t, `{"decision": "approve"}`)

		err := controller.Moderate(ctx)
		httpError, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, 404, httpError.Code)
	})

	t.Run("should reject a decision outside the enum with 400", func(t *testing.T) {
		controller := NewReportController(&stubReportService{}, &stubModerationService{})
		ctx, _ := moderationContext(t, `{"decision": "escalate"}`)

		err := controller.Moderate(ctx)
		httpError, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, 400, httpError.Code)
	})

	t.Run("should reject a malformed report id with 400", func(t *testing.T) {
		controller := NewReportController(&stubReportService{}, &stubModerationService{})
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"decision": "approve"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		e := echo.New()
		ctx := e.NewContext(req, httptest.NewRecorder())
		ctx.SetParamNames("reportID")
		ctx.SetParamValues("not-a-uuid")

		err := controller.Moderate(ctx)
		httpError, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, 400, httpError.Code)
	})
}

func TestSubmitController(t *testing.T) {
	t.Run("should return 201 with the created report", func(t *testing.T) {
		controller := NewReportController(&stubReportService{}, &stubModerationService{})
		body := `{"hunterId": "` + uuid.New().String() + `", "target": "portal.example.com", "targetType": "web", "vulnerabilityClass": "xss", "description": "stored xss", "severity": "medium"}`
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e := echo.New()
		ctx := e.NewContext(req, rec)

		err := controller.Submit(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 201, rec.Code)
	})

	t.Run("should reject an invalid severity with 400", func(t *testing.T) {
		controller := NewReportController(&stubReportService{}, &stubModerationService{})
		body := `{"hunterId": "` + uuid.New().String() + `", "target": "portal.example.com", "targetType": "web", "vulnerabilityClass": "xss", "description": "stored xss", "severity": "catastrophic"}`
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		e := echo.New()
		ctx := e.NewContext(req, httptest.NewRecorder())

		err := controller.Submit(ctx)
		httpError, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, 400, httpError.Code)
	})

	t.Run("should map an unknown hunter to 404", func(t *testing.T) {
		controller := NewReportController(&stubReportService{submitErr: services.ErrHunterNotFound}, &stubModerationService{})
		body := `{"hunterId": "` + uuid.New().String() + `", "target": "portal.example.com", "targetType": "web", "vulnerabilityClass": "xss", "description": "stored xss", "severity": "low"}`
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		e := echo.New()
		ctx := e.NewContext(req, httptest.NewRecorder())

		err := controller.Submit(ctx)
		httpError, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, 404, httpError.Code)
	})
}
