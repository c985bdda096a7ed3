//go:build e2e

package e2e

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"time"

	"activity-booking/internal/domain/auth"
	"activity-booking/internal/handler/middleware"
	"activity-booking/internal/pkg/config"
	"activity-booking/internal/pkg/jwt"
	"activity-booking/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Public performs a request against the public API with the test API key.
func (s *SharedSuite) Public(method, path string, body any, headers ...map[string]string) *httptest.ResponseRecorder {
	h := map[string]string{middleware.HeaderAPIKey: config.TestPublicAPIKey}
	for _, extra := range headers {
		for k, v := range extra {
			h[k] = v
		}
	}
	return s.do(method, path, body, h)
}

// Admin performs a request with a bearer token of the given role.
func (s *SharedSuite) Admin(role auth.Role, method, path string, body any) *httptest.ResponseRecorder {
	token, err := jwt.NewService(s.Config.JWT.Secret, time.Hour).GenerateToken("e2e-operator", role)
	require.NoError(s.T(), err)
	return s.do(method, path, body, map[string]string{"Authorization": "Bearer " + token})
}

func (s *SharedSuite) do(method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.T(), json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

// Decode unmarshals the recorder body after checking the status.
func (s *SharedSuite) Decode(w *httptest.ResponseRecorder, status int, target any) {
	s.T().Helper()
	require.Equal(s.T(), status, w.Code, w.Body.String())
	if target != nil {
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), target))
	}
}

// MultiDaySession inserts a session starting in two weeks.
func (s *SharedSuite) MultiDaySession(capacity int, fullPriceCents, depositCents int64) uuid.UUID {
	return dbtest.InsertResource(s.T(), s.DB, dbtest.ResourceRow{
		Kind:           "multi_day_session",
		Title:          "Canyoning weekend",
		StartsAt:       time.Now().Add(14 * 24 * time.Hour),
		Capacity:       capacity,
		FullPriceCents: fullPriceCents,
		DepositCents:   &depositCents,
	})
}

func Participant(firstName string) map[string]any {
	return map[string]any{
		"first_name": firstName,
		"last_name":  "Martin",
		"email":      firstName + "@example.com",
		"phone":      "+33612345678",
		"weight_kg":  70,
		"height_cm":  175,
	}
}

func Contact() map[string]any {
	return map[string]any{
		"email":      "buyer@example.com",
		"first_name": "Claire",
		"last_name":  "Martin",
		"phone":      "+33612345678",
	}
}
