package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/kalyondo/guardianre-website/internal/service"
	"github.com/kalyondo/guardianre-website/internal/validation"
)

type ContactHandler struct {
	contactService *service.ContactService
}

func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Submit receives a contact form submission as a JSON body, or as form
// values for plain HTML form posts.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	req, err := decodeContactRequest(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validateContactRequest(req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	sub, err := h.contactService.Submit(req)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Could not save your message. Please try again.")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{
		"id":      sub.ID,
		"message": "Thank you for getting in touch. We will reply as soon as we can.",
	})
}

func decodeContactRequest(r *http.Request) (service.ContactRequest, error) {
	var req service.ContactRequest

	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/x-www-form-urlencoded") || strings.HasPrefix(ct, "multipart/form-data") {
		req.Name = r.FormValue("name")
		req.Email = r.FormValue("email")
		req.Subject = r.FormValue("subject")
		req.Message = r.FormValue("message")
		return req, nil
	}

	err := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 64<<10)).Decode(&req)
	return req, err
}

func validateContactRequest(req service.ContactRequest) error {
	if err := validation.ValidateName(req.Name); err != nil {
		return err
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		return err
	}
	if err := validation.ValidateSubject(req.Subject); err != nil {
		return err
	}
	return validation.ValidateMessage(req.Message)
}
