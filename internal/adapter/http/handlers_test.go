package adapthttp_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	adapthttp "hydration/internal/adapter/http"
	"hydration/internal/adapter/memory"
	"hydration/internal/app"
)

func newTestHandler() (http.Handler, *memory.DB) {
	gin.SetMode(gin.TestMode)
	mem := memory.New()
	log := logrus.New()
	log.SetOutput(io.Discard)

	users := app.NewUserService(mem)
	intake := app.NewIntakeService(mem, mem)
	progress := app.NewProgressService(mem, mem)

	return adapthttp.New(users, intake, progress, log).Handler(nil), mem
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func TestHealth(t *testing.T) {
	h, _ := newTestHandler()
	w := doJSON(t, h, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestCreateUser(t *testing.T) {
	h, _ := newTestHandler()

	w := doJSON(t, h, http.MethodPost, "/users", map[string]any{"name": "Joana", "weight_kg": 70.5})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var user struct {
		ID          int64   `json:"id"`
		Name        string  `json:"name"`
		WeightKG    float64 `json:"weight_kg"`
		DailyGoalML float64 `json:"daily_goal_ml"`
	}
	decode(t, w, &user)
	if user.ID == 0 || user.Name != "Joana" || user.DailyGoalML != 2467.5 {
		t.Fatalf("unexpected user payload: %+v", user)
	}

	// Same name again is a client error.
	w = doJSON(t, h, http.MethodPost, "/users", map[string]any{"name": "Joana", "weight_kg": 60})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate name, got %d", w.Code)
	}
}

func TestCreateUser_Validation(t *testing.T) {
	h, _ := newTestHandler()

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing name", map[string]any{"weight_kg": 70.5}},
		{"blank name", map[string]any{"name": "   ", "weight_kg": 70.5}},
		{"missing weight", map[string]any{"name": "Joana"}},
		{"zero weight", map[string]any{"name": "Joana", "weight_kg": 0}},
		{"negative weight", map[string]any{"name": "Joana", "weight_kg": -3.0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, h, http.MethodPost, "/users", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestGetUser(t *testing.T) {
	h, _ := newTestHandler()

	w := doJSON(t, h, http.MethodPost, "/users", map[string]any{"name": "Joana", "weight_kg": 70.5})
	var created struct {
		ID int64 `json:"id"`
	}
	decode(t, w, &created)

	w = doJSON(t, h, http.MethodGet, fmt.Sprintf("/users/%d", created.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = doJSON(t, h, http.MethodGet, "/users/999", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown id, got %d", w.Code)
	}

	// Zero and negative ids parse fine and simply miss the lookup.
	w = doJSON(t, h, http.MethodGet, "/users/0", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for id 0, got %d", w.Code)
	}

	w = doJSON(t, h, http.MethodGet, "/users/name/Joana", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = doJSON(t, h, http.MethodGet, "/users/name/joana", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for differently-cased name, got %d", w.Code)
	}
}

func TestListUsers_Paging(t *testing.T) {
	h, _ := newTestHandler()

	for _, name := range []string{"a", "b", "c"} {
		w := doJSON(t, h, http.MethodPost, "/users", map[string]any{"name": name, "weight_kg": 70.0})
		if w.Code != http.StatusCreated {
			t.Fatalf("setup create failed: %d", w.Code)
		}
	}

	w := doJSON(t, h, http.MethodGet, "/users?skip=1&limit=1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var users []struct {
		Name string `json:"name"`
	}
	decode(t, w, &users)
	if len(users) != 1 || users[0].Name != "b" {
		t.Fatalf("unexpected page: %+v", users)
	}
}

func TestRecordIntake(t *testing.T) {
	h, _ := newTestHandler()

	w := doJSON(t, h, http.MethodPost, "/users", map[string]any{"name": "Joana", "weight_kg": 70.5})
	var created struct {
		ID int64 `json:"id"`
	}
	decode(t, w, &created)

	w = doJSON(t, h, http.MethodPost, fmt.Sprintf("/users/%d/water_intake", created.ID), map[string]any{"amount_ml": 250})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var event struct {
		ID       int64  `json:"id"`
		UserID   int64  `json:"user_id"`
		AmountML int64  `json:"amount_ml"`
		LogDate  string `json:"log_date"`
	}
	decode(t, w, &event)
	if event.ID == 0 || event.UserID != created.ID || event.AmountML != 250 {
		t.Fatalf("unexpected event payload: %+v", event)
	}
	if event.LogDate != time.Now().In(time.Local).Format("2006-01-02") {
		t.Fatalf("expected today's log date, got %s", event.LogDate)
	}

	w = doJSON(t, h, http.MethodPost, "/users/999/water_intake", map[string]any{"amount_ml": 250})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown user, got %d", w.Code)
	}

	w = doJSON(t, h, http.MethodPost, fmt.Sprintf("/users/%d/water_intake", created.ID), map[string]any{"amount_ml": -10})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative amount, got %d", w.Code)
	}
}

func TestDailyProgressScenario(t *testing.T) {
	h, _ := newTestHandler()

	w := doJSON(t, h, http.MethodPost, "/users", map[string]any{"name": "Joana", "weight_kg": 70.5})
	var created struct {
		ID int64 `json:"id"`
	}
	decode(t, w, &created)

	for _, amount := range []int64{250, 300} {
		w = doJSON(t, h, http.MethodPost, fmt.Sprintf("/users/%d/water_intake", created.ID), map[string]any{"amount_ml": amount})
		if w.Code != http.StatusCreated {
			t.Fatalf("record intake failed: %d", w.Code)
		}
	}

	var progress struct {
		UserName     string  `json:"user_name"`
		DailyGoalML  float64 `json:"daily_goal_ml"`
		ConsumedML   int64   `json:"consumed_ml"`
		RemainingML  float64 `json:"remaining_ml"`
		GoalAchieved bool    `json:"goal_achieved"`
	}

	w = doJSON(t, h, http.MethodGet, fmt.Sprintf("/users/%d/daily_progress", created.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	decode(t, w, &progress)
	if progress.ConsumedML != 550 || progress.RemainingML != 1917.5 || progress.GoalAchieved {
		t.Fatalf("unexpected progress: %+v", progress)
	}

	// Reading twice without new intake yields the same result.
	w = doJSON(t, h, http.MethodGet, fmt.Sprintf("/users/%d/daily_progress", created.ID), nil)
	var again struct {
		ConsumedML  int64   `json:"consumed_ml"`
		RemainingML float64 `json:"remaining_ml"`
	}
	decode(t, w, &again)
	if again.ConsumedML != progress.ConsumedML || again.RemainingML != progress.RemainingML {
		t.Fatalf("progress reads are not idempotent: %+v vs %+v", progress, again)
	}

	// Top up past the goal.
	w = doJSON(t, h, http.MethodPost, fmt.Sprintf("/users/%d/water_intake", created.ID), map[string]any{"amount_ml": 1918})
	if w.Code != http.StatusCreated {
		t.Fatalf("record intake failed: %d", w.Code)
	}
	w = doJSON(t, h, http.MethodGet, fmt.Sprintf("/users/%d/daily_progress", created.ID), nil)
	decode(t, w, &progress)
	if !progress.GoalAchieved || progress.RemainingML != 0 {
		t.Fatalf("expected goal achieved with no remaining, got %+v", progress)
	}

	w = doJSON(t, h, http.MethodGet, "/users/999/daily_progress", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown user, got %d", w.Code)
	}

	w = doJSON(t, h, http.MethodGet, fmt.Sprintf("/users/%d/daily_progress?date=not-a-date", created.ID), nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed date, got %d", w.Code)
	}
}

func TestHistory(t *testing.T) {
	h, mem := newTestHandler()

	w := doJSON(t, h, http.MethodPost, "/users", map[string]any{"name": "Joana", "weight_kg": 70.5})
	var created struct {
		ID int64 `json:"id"`
	}
	decode(t, w, &created)

	// Seed events across several days directly in the store; the API only
	// records against the current day.
	ctx := context.Background()
	_, _ = mem.AddIntakeEvent(ctx, created.ID, 500, "2026-08-28", time.Now())
	_, _ = mem.AddIntakeEvent(ctx, created.ID, 2600, "2026-08-29", time.Now())
	_, _ = mem.AddIntakeEvent(ctx, created.ID, 250, "2026-08-30", time.Now())
	_, _ = mem.AddIntakeEvent(ctx, created.ID, 300, "2026-08-30", time.Now())

	w = doJSON(t, h, http.MethodGet, fmt.Sprintf("/users/%d/history", created.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var items []struct {
		Date         string  `json:"date"`
		ConsumedML   int64   `json:"consumed_ml"`
		GoalAchieved bool    `json:"goal_achieved"`
		RemainingML  float64 `json:"remaining_ml"`
	}
	decode(t, w, &items)
	if len(items) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(items))
	}
	if items[0].Date != "2026-08-30" || items[0].ConsumedML != 550 {
		t.Fatalf("unexpected newest entry: %+v", items[0])
	}
	if items[1].Date != "2026-08-29" || !items[1].GoalAchieved || items[1].RemainingML != 0 {
		t.Fatalf("unexpected achieved entry: %+v", items[1])
	}
	if items[2].Date != "2026-08-28" || items[2].GoalAchieved {
		t.Fatalf("unexpected oldest entry: %+v", items[2])
	}

	w = doJSON(t, h, http.MethodGet, "/users/999/history", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown user, got %d", w.Code)
	}
}
