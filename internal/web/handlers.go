// internal/web/handlers.go
//
// Cerney Designs – HTTP handlers.
//
// Context
//   Thin JSON wrappers around the intake service.  The handlers own request
//   decoding, status codes, and the rule that internal errors are never
//   echoed to the caller: the client sees either its own validation
//   messages or a generic failure line.
//
//------------------------------------------------------------------------------

package web

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/Chrisserknee/cerneydesigns/internal/intake"
	"github.com/Chrisserknee/cerneydesigns/internal/request"
	"github.com/Chrisserknee/cerneydesigns/internal/requestinfo"
)

// Handler carries the collaborators the routes need.
type Handler struct {
	svc        *intake.Service
	adminToken string
	log        *zap.SugaredLogger
}

// NewHandler builds the handler set.  An empty adminToken disables the admin
// listing entirely (every request is unauthorized).
func NewHandler(svc *intake.Service, adminToken string, log *zap.SugaredLogger) *Handler {
	return &Handler{svc: svc, adminToken: adminToken, log: log}
}

// submitResponse is the intake endpoint's JSON envelope.
type submitResponse struct {
	Success bool                 `json:"success"`
	Errors  []request.ErrorField `json:"errors,omitempty"`
	Message string               `json:"message,omitempty"`
}

// handleSubmit accepts a design-request submission as form-encoded or JSON
// fields and runs it through the intake pipeline.
func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, submitResponse{
			Message: "Could not read the submitted form.",
		})
		return
	}

	if info := requestinfo.FromContext(r.Context()); info != nil {
		h.log.Infow("design request received",
			"browser", info.UA.Browser, "device", info.UA.Device,
			"bot", info.UA.IsBot, "ip", info.IP)
	}

	res, err := h.svc.Submit(r.Context(), fields)
	switch {
	case err != nil:
		// Persistence failure.  Details went to the log; the client gets a
		// generic line only.
		writeJSON(w, http.StatusInternalServerError, submitResponse{
			Message: "We could not save your request.  Please try again shortly.",
		})
	case !res.OK:
		writeJSON(w, http.StatusBadRequest, submitResponse{Errors: res.Violations})
	default:
		writeJSON(w, http.StatusOK, submitResponse{
			Success: true,
			Message: "Thanks!  Your design request has been received.",
		})
	}
}

// handleAdminList returns every stored request with masked emails.  It
// requires a bearer token matching the configured admin token.
func (h *Handler) handleAdminList(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	records, err := h.svc.ListAll(r.Context())
	if err != nil {
		h.log.Errorw("admin listing failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "listing unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *Handler) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// authorized checks the Authorization header in constant time.  An empty
// configured token never authorizes.
func (h *Handler) authorized(r *http.Request) bool {
	if h.adminToken == "" {
		return false
	}
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.adminToken)) == 1
}

// decodeFields normalizes both supported request bodies into url.Values.
func decodeFields(r *http.Request) (url.Values, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return nil, err
		}
		fields := make(url.Values, len(body))
		for k, v := range body {
			fields.Set(k, v)
		}
		return fields, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return r.PostForm, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
