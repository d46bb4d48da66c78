// Package status reports server health: a JSON snapshot for machines, a
// liveness probe, and a human-readable HTML page on the site root.
package status

import (
	"net/http"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/inkpost/inkpost/internal/app/system/jsonutil"
	"github.com/inkpost/inkpost/internal/app/system/runstate"
)

// Handler holds dependencies for the status endpoints.
type Handler struct {
	flags  *runstate.Flags
	logger *zap.Logger
}

// NewHandler creates a new status Handler.
func NewHandler(flags *runstate.Flags, logger *zap.Logger) *Handler {
	return &Handler{flags: flags, logger: logger}
}

// Snapshot handles GET /api/status. Read-only, no side effects, always 200.
func (h *Handler) Snapshot(w http.ResponseWriter, r *http.Request) {
	jsonutil.JSON(w, http.StatusOK, map[string]any{
		"success":           true,
		"server":            "running",
		"port":              h.flags.Port(),
		"dbStatus":          h.flags.DB(),
		"emailServerStatus": h.flags.Mail(),
		"uptime":            h.flags.Uptime().Round(time.Second).String(),
	})
}

// Liveness handles GET /test.
func (h *Handler) Liveness(w http.ResponseWriter, r *http.Request) {
	jsonutil.Message(w, http.StatusOK, "Server is up and running")
}

// pageVM is the view model for the HTML status page.
type pageVM struct {
	DBConnected   bool
	MailConnected bool
	Port          int
	Uptime        string
	GoVersion     string
}

// Home handles GET /, the human status page.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	vm := pageVM{
		DBConnected:   h.flags.DB(),
		MailConnected: h.flags.Mail(),
		Port:          h.flags.Port(),
		Uptime:        h.flags.Uptime().Round(time.Second).String(),
		GoVersion:     runtime.Version(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := homeTmpl.Execute(w, vm); err != nil {
		h.logger.Error("failed to render status page", zap.Error(err))
	}
}

// NotFound renders the HTML 404 page for unmatched paths.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if err := notFoundTmpl.Execute(w, map[string]string{"Path": r.URL.Path}); err != nil {
		h.logger.Error("failed to render 404 page", zap.Error(err))
	}
}
