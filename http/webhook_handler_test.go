package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"loan-eligibility-webhook/repository"
	"loan-eligibility-webhook/service"
)

func newTestHandler() *WebhookHandler {
	repo := repository.NewCheckRepositoryMemory()
	cache := repository.NewMockCache()
	svc := service.NewEligibilityService(repo, cache)
	return NewWebhookHandler(svc)
}

func TestWebhookHandler_OK(t *testing.T) {

	handler := newTestHandler()

	body := []byte(`{
		"queryResult": {
			"parameters": {
				"age": 25,
				"income": 35000
			},
			"intent": {"displayName": "loan.details"},
			"outputContexts": [
				{
					"name": "projects/x/agent/sessions/1/contexts/awaiting-loan-details-followup",
					"lifespanCount": 4,
					"parameters": {"loan-type": "home"}
				}
			]
		}
	}`)

	req := httptest.NewRequest(
		http.MethodPost,
		"/webhook",
		bytes.NewBuffer(body),
	)

	w := httptest.NewRecorder()

	handler.HandleWebhook(w, req)

	resp := w.Result()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var out struct {
		FulfillmentText string `json:"fulfillmentText"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if out.FulfillmentText != service.MsgHomeEligible {
		t.Errorf("expected home eligible message, got %q", out.FulfillmentText)
	}
}

func TestWebhookHandler_MethodNotAllowed(t *testing.T) {

	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/webhook", nil)
	w := httptest.NewRecorder()

	handler.HandleWebhook(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestWebhookHandler_BadRequest(t *testing.T) {

	handler := newTestHandler()

	req := httptest.NewRequest(
		http.MethodPost,
		"/webhook",
		bytes.NewBuffer([]byte(`{invalid-json}`)),
	)

	w := httptest.NewRecorder()
	handler.HandleWebhook(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestWebhookHandler_EmptyBodyStillAnswers(t *testing.T) {

	handler := newTestHandler()

	req := httptest.NewRequest(
		http.MethodPost,
		"/webhook",
		bytes.NewBuffer([]byte(`{}`)),
	)

	w := httptest.NewRecorder()
	handler.HandleWebhook(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for well-formed empty request, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "couldn't determine the loan type") {
		t.Errorf("expected the specify-product prompt, got %q", w.Body.String())
	}
}

func TestHealthHandler_Status(t *testing.T) {

	handler := NewHealthHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler.Status(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Loan Eligibility Webhook is running.") {
		t.Errorf("unexpected health body: %q", w.Body.String())
	}
}
