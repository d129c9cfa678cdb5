package controller_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/graduation-team-project-4nd/KiMate-AI/internal/agent"
	"github.com/graduation-team-project-4nd/KiMate-AI/internal/config"
	"github.com/graduation-team-project-4nd/KiMate-AI/internal/controller"
	"github.com/graduation-team-project-4nd/KiMate-AI/internal/dto"
	"github.com/graduation-team-project-4nd/KiMate-AI/internal/pkg/logger"
	"github.com/graduation-team-project-4nd/KiMate-AI/internal/screen"
	"github.com/graduation-team-project-4nd/KiMate-AI/internal/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Spins up the full HTTP surface in mock (fallback-only) mode.
func newTestApp() *fiber.App {
	cfg := &config.Config{
		App: config.AppConfig{Port: "8000"},
		Ai:  config.AIConfig{ScreenChangeThreshold: 0.6},
	}
	log := logger.NewNopLogger()
	recommender := agent.NewRecommender(nil, log, true)
	detector := screen.NewDetector(recommender, cfg.Ai.ScreenChangeThreshold)
	kiosk := controller.NewKioskController(recommender, detector, log)

	return server.New(cfg, kiosk, log).GetApp()
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) *http.Response {
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestHealthz(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAnalyze_UniqueMatch(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/analyze", dto.AnalyzeRequest{
		SessionID: "sess_001",
		UserInput: "불고기 버거 하나",
		OcrTexts:  []string{"추천메뉴", "불고기버거", "4500원", "치즈버거", "다음"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.AnalyzeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, "success", body.Status)
	assert.Equal(t, "click_text", body.Action.Type)
	assert.Equal(t, "불고기버거", body.Action.Params.TargetText)
	assert.NotEmpty(t, body.ResponseMessage)
}

func TestAnalyze_Ambiguous(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/analyze", dto.AnalyzeRequest{
		SessionID: "sess_001",
		UserInput: "버거",
		OcrTexts:  []string{"불고기버거", "치즈버거"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.AnalyzeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, "ambiguous", body.Status)
	assert.Equal(t, "ask_clarification", body.Action.Type)
	assert.Equal(t, []string{"불고기버거", "치즈버거"}, body.Action.Params.Candidates)
}

func TestAnalyze_MissingSessionID(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/analyze", fiber.Map{
		"user_input": "불고기버거",
		"ocr_texts":  []string{"불고기버거"},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAnalyze_MalformedBody(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestScreenDetect_Changed(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/screen/detect", dto.ScreenDetectRequest{
		SessionID:     "sess_001",
		PreviousTexts: []string{"버거", "사이드", "디저트"},
		CurrentTexts:  []string{"불고기버거", "치즈버거", "이전"},
		UserInput:     "불고기버거 하나",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.ScreenDetectResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.True(t, body.IsChanged)
	assert.InDelta(t, 0.0, body.SimilarityScore, 1e-9)
	require.NotNil(t, body.AiAnalysis)
	assert.Equal(t, "불고기버거", body.AiAnalysis.Action.Params.TargetText)
}

func TestScreenDetect_Unchanged(t *testing.T) {
	app := newTestApp()

	texts := []string{"추천메뉴", "불고기버거", "치즈버거"}
	resp := postJSON(t, app, "/api/screen/detect", dto.ScreenDetectRequest{
		SessionID:     "sess_001",
		PreviousTexts: texts,
		CurrentTexts:  texts,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.ScreenDetectResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.False(t, body.IsChanged)
	assert.InDelta(t, 1.0, body.SimilarityScore, 1e-9)
	assert.Nil(t, body.AiAnalysis)
}
