package http

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"loan-eligibility-webhook/domain"
	"loan-eligibility-webhook/service"
)

type WebhookHandler struct {
	service *service.EligibilityService
}

func NewWebhookHandler(service *service.EligibilityService) *WebhookHandler {
	return &WebhookHandler{service: service}
}

// HandleWebhook processes one fulfillment request from the conversational
// platform. Well-formed input always gets a 200 with a fulfillment text;
// the only other status codes are transport-level.
func (h *WebhookHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()

	var req domain.WebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Error decoding webhook body: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp := h.service.CheckEligibility(req)

	// Encode into a buffer first so a failure cannot corrupt an already
	// started response.
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(resp); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing response: %v", err)
	}

	log.Printf("webhook processed in %.2f ms", float64(time.Since(start).Microseconds())/1000.0)
}
