package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-booking/internal/config"
	"github.com/BruksfildServices01/barbershop-booking/internal/state"
	"github.com/BruksfildServices01/barbershop-booking/internal/store"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

const testTZ = "America/Sao_Paulo"

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	mem := store.NewMemoryStore()

	// Semeia num dia antigo para os agendamentos de exemplo não caírem
	// nas datas futuras consultadas pelos testes.
	seedDay := time.Date(2025, 1, 6, 8, 0, 0, 0, timezone.Location(testTZ))
	mgr, err := state.NewManager(context.Background(), mem, logger, seedDay)
	require.NoError(t, err)

	cfg := &config.Config{
		JWTSecret:    "test-secret",
		ShopTimezone: testTZ,
	}

	r := gin.New()
	RegisterRoutes(r, mgr, nil, cfg, logger)
	return r
}

// nextMonday devolve uma segunda-feira futura (pelo menos uma semana à
// frente), para a consulta de disponibilidade não esbarrar no corte de
// "só horários futuros".
func nextMonday() time.Time {
	day := time.Now().In(timezone.Location(testTZ)).AddDate(0, 0, 7)
	for day.Weekday() != time.Monday {
		day = day.AddDate(0, 0, 1)
	}
	return day
}

func doJSON(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine) string {
	t.Helper()

	w := doJSON(r, http.MethodPost, "/api/auth/login", "", gin.H{"password": "fernando1984"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestLogin(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(r, http.MethodPost, "/api/auth/login", "", gin.H{"password": "errada"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	login(t, r)
}

func TestSecuredRoutesRequireToken(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(r, http.MethodGet, "/api/me/services", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := login(t, r)
	w = doJSON(r, http.MethodGet, "/api/me/services", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPublicAvailability(t *testing.T) {
	r := newTestServer(t)
	date := nextMonday().Format("2006-01-02")

	// Barba (30min), barbeiro sem nenhum agendamento no dia: segunda
	// 9–19 com almoço 12–13 rende 18 horários de meia em meia hora.
	w := doJSON(r, http.MethodGet,
		fmt.Sprintf("/api/public/availability?date=%s&barber_id=3&service_id=2", date), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Date  string `json:"date"`
		Slots []struct {
			Time     string    `json:"time"`
			StartsAt time.Time `json:"starts_at"`
		} `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, date, resp.Date)
	require.Len(t, resp.Slots, 18)
	assert.Equal(t, "09:00", resp.Slots[0].Time)
	assert.Equal(t, "18:30", resp.Slots[17].Time)
	for _, s := range resp.Slots {
		assert.NotEqual(t, "12:00", s.Time)
		assert.NotEqual(t, "12:30", s.Time)
	}
}

func TestCreateAppointmentAndConflict(t *testing.T) {
	r := newTestServer(t)
	date := nextMonday().Format("2006-01-02")

	body := gin.H{
		"service_id":     2,
		"barber_id":      1,
		"date":           date,
		"time":           "09:00",
		"customer_name":  "Maria Souza",
		"customer_phone": "(11) 91234-5678",
	}

	w := doJSON(r, http.MethodPost, "/api/public/appointments", "", body)
	require.Equal(t, http.StatusCreated, w.Code)

	// Mesmo horário, mesmo barbeiro: recusa com conflito.
	w = doJSON(r, http.MethodPost, "/api/public/appointments", "", body)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "slot_unavailable")

	// Outro barbeiro no mesmo horário segue livre.
	body["barber_id"] = 2
	w = doJSON(r, http.MethodPost, "/api/public/appointments", "", body)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestAdminAppointmentsByDate(t *testing.T) {
	r := newTestServer(t)
	token := login(t, r)
	date := nextMonday().Format("2006-01-02")

	w := doJSON(r, http.MethodPost, "/api/public/appointments", "", gin.H{
		"service_id":     1,
		"barber_id":      1,
		"date":           date,
		"time":           "10:00",
		"customer_name":  "João Pereira",
		"customer_phone": "11999990000",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, "/api/me/appointments?date="+date, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)

	// O dia da semeadura guarda os dois agendamentos de exemplo.
	w = doJSON(r, http.MethodGet, "/api/me/appointments?date=2025-01-06", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
}

func TestWorkingHoursValidation(t *testing.T) {
	r := newTestServer(t)
	token := login(t, r)

	// Semana incompleta é recusada.
	w := doJSON(r, http.MethodPut, "/api/me/working-hours", token, gin.H{
		"schedule": []gin.H{{"dayOfWeek": 1, "isOpen": true, "opening": 9, "closing": 18}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// A semana completa do GET volta aceita no PUT.
	w = doJSON(r, http.MethodGet, "/api/me/working-hours", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var current map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &current))

	var echo struct {
		Schedule json.RawMessage `json:"schedule"`
	}
	echo.Schedule = current["schedule"]

	req := httptest.NewRequest(http.MethodPut, "/api/me/working-hours",
		bytes.NewReader(mustJSON(t, echo)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}
