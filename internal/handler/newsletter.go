package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/kalyondo/guardianre-website/internal/service"
	"github.com/kalyondo/guardianre-website/internal/validation"
)

type newsletterHandler struct {
	emailService *service.EmailService
}

func NewNewsletterHandler(emailService *service.EmailService) *newsletterHandler {
	return &newsletterHandler{
		emailService: emailService,
	}
}

func (h *newsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(strings.ToLower(newsletterEmail(r)))

	err := validation.ValidateEmail(email)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Please provide a valid email address")
		return
	}

	err = h.emailService.SubscribeNewsletter(email)
	if err != nil {
		// Service layer already logs errors - just handle error case
		// Return success to prevent email enumeration
		slog.Warn("newsletter subscription error", "error", err, "email", email)
	}

	// Always report success (prevents email enumeration)
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Thanks for subscribing. Please check your inbox.",
	})
}

func newsletterEmail(r *http.Request) string {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/json") {
		var body struct {
			Email string `json:"email"`
		}
		if err := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 4<<10)).Decode(&body); err != nil {
			return ""
		}
		return body.Email
	}
	return r.FormValue("email")
}
