package contact

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/alexisbeaulieu97/nexus/internal/logger"
)

const maxBodyBytes = 64 << 10

// Response messages.
const (
	MsgSent          = "Message sent successfully"
	MsgInvalid       = "Invalid form data"
	MsgInternalError = "Internal server error"
)

// Deliverer hands a validated submission to wherever messages go.
type Deliverer interface {
	Deliver(ctx context.Context, s Submission) error
}

// DelivererFunc adapts a function to Deliverer.
type DelivererFunc func(ctx context.Context, s Submission) error

func (f DelivererFunc) Deliver(ctx context.Context, s Submission) error { return f(ctx, s) }

// LogDeliverer writes submissions to the request logger and keeps nothing.
type LogDeliverer struct{}

func (LogDeliverer) Deliver(ctx context.Context, s Submission) error {
	logger.FromContext(ctx).WithFields(map[string]any{
		"name":    s.Name,
		"email":   s.Email,
		"subject": s.Subject,
		"message": s.Message,
	}).Info("contact form submission")
	return nil
}

// Handler serves POST /api/contact.
type Handler struct {
	deliverer Deliverer
}

// NewHandler returns a handler delivering through d. A nil d logs.
func NewHandler(d Deliverer) *Handler {
	if d == nil {
		d = LogDeliverer{}
	}
	return &Handler{deliverer: d}
}

type errorBody struct {
	Error   string         `json:"error"`
	Details map[string]any `json:"details,omitempty"`
}

type successBody struct {
	Message string `json:"message"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	s, errs, err := DecodeSubmission(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		log.Error(fmt.Errorf("decode contact body: %w", err), "error processing contact form")
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: MsgInternalError})
		return
	}

	if errs != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: MsgInvalid, Details: errs.Details()})
		return
	}

	if err := h.deliverer.Deliver(r.Context(), s); err != nil {
		log.Error(fmt.Errorf("deliver contact submission: %w", err), "error processing contact form")
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: MsgInternalError})
		return
	}

	writeJSON(w, http.StatusOK, successBody{Message: MsgSent})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
