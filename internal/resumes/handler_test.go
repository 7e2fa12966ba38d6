package resumes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"jobsearch-backend/internal/bootstrap"
	"jobsearch-backend/internal/shared/config"
	"jobsearch-backend/internal/shared/server/middleware"
)

type stubLLM struct {
	reply string
}

func (s stubLLM) Complete(_ context.Context, _ string) (string, error) {
	return s.reply, nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		LocalStoreDir:   t.TempDir(),
		Env:             "dev",
		ObjectStoreType: "local",
		LLMProvider:     "openai",
		LLMModel:        "gpt-4o-mini",
	}

	app, err := bootstrap.Build(cfg, bootstrap.WithLLMClient(stubLLM{reply: "ok"}))
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func TestSetTextAndCurrent(t *testing.T) {
	router := newTestRouter(t)
	sessionID := "sess-text"

	body := `{"text":"Jane Doe\njane@example.com\nSkills: Go, SQL\nExperience: 5 years"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resume/text", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.SessionHeader, sessionID)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created struct {
		FileName string `json:"fileName"`
		Text     string `json:"text"`
		Score    struct {
			Total int `json:"total"`
		} `json:"score"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.FileName != "pasted-text" {
		t.Fatalf("expected fileName pasted-text, got %s", created.FileName)
	}
	if created.Score.Total == 0 {
		t.Fatalf("expected non-zero score for resume with contact, skills and experience")
	}

	reqGet := httptest.NewRequest(http.MethodGet, "/api/v1/resume", nil)
	reqGet.Header.Set(middleware.SessionHeader, sessionID)
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)

	if respGet.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respGet.Code)
	}

	var current struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(respGet.Body).Decode(&current); err != nil {
		t.Fatalf("decode current response: %v", err)
	}
	if !strings.Contains(current.Text, "Jane Doe") {
		t.Fatalf("expected resume text to survive, got %q", current.Text)
	}
}

func TestCurrentWithoutResumeIsNotFound(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resume", nil)
	req.Header.Set(middleware.SessionHeader, "sess-empty")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestUploadRejectsUnsupportedExtension(t *testing.T) {
	router := newTestRouter(t)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fw, err := writer.CreateFormFile("file", "resume.txt")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte("plain text resume")); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resume", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set(middleware.SessionHeader, "sess-badext")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}

	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if envelope.Error.Code != "validation_error" {
		t.Fatalf("expected validation_error, got %s", envelope.Error.Code)
	}
}

func TestUploadCorruptFileIsUnprocessable(t *testing.T) {
	router := newTestRouter(t)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fw, err := writer.CreateFormFile("file", "resume.pdf")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte("this is not a pdf")); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resume", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set(middleware.SessionHeader, "sess-corrupt")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if envelope.Error.Code != "extraction_error" {
		t.Fatalf("expected extraction_error, got %s", envelope.Error.Code)
	}
}

func TestSetTextReplacesPreviousResume(t *testing.T) {
	router := newTestRouter(t)
	sessionID := "sess-replace"

	for _, text := range []string{"first resume", "second resume"} {
		payload, _ := json.Marshal(map[string]string{"text": text})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/resume/text", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.SessionHeader, sessionID)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusCreated {
			t.Fatalf("expected status 201, got %d", resp.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resume", nil)
	req.Header.Set(middleware.SessionHeader, sessionID)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	var current struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&current); err != nil {
		t.Fatalf("decode current response: %v", err)
	}
	if current.Text != "second resume" {
		t.Fatalf("expected latest text to win, got %q", current.Text)
	}
}
