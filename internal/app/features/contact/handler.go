// Package contact accepts contact-form submissions and relays them as two
// emails: a confirmation to the submitter and a notification to the admin
// address.
//
// The two sends are deliberately asymmetric: the confirmation to the
// submitter is best-effort (a failure is logged and the request continues),
// while the admin notification is the point of the submission and its
// failure fails the request.
package contact

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/inkpost/inkpost/internal/app/system/jsonutil"
	"github.com/inkpost/inkpost/internal/app/system/mailer"
	"github.com/inkpost/inkpost/internal/app/system/normalize"
	"github.com/inkpost/inkpost/internal/app/system/timeouts"
)

// session is one relay connection able to deliver messages.
type session interface {
	Send(mailer.Email) error
	Close() error
}

// dialer opens relay sessions. Satisfied by the SMTP mailer in production
// and by fakes in tests.
type dialer interface {
	Dial(ctx context.Context) (session, error)
}

// mailerDialer adapts *mailer.Mailer to the dialer interface.
type mailerDialer struct {
	m *mailer.Mailer
}

func (d mailerDialer) Dial(ctx context.Context) (session, error) {
	return d.m.Dial(ctx)
}

// Handler handles contact form submissions.
type Handler struct {
	dialer  dialer
	admin   string
	appName string
	logger  *zap.Logger
}

// NewHandler creates a new contact handler. adminEmail receives the
// notification for every submission.
func NewHandler(m *mailer.Mailer, adminEmail string, logger *zap.Logger) *Handler {
	return &Handler{
		dialer:  mailerDialer{m},
		admin:   adminEmail,
		appName: m.FromName(),
		logger:  logger,
	}
}

// newHandlerWithDialer exists for tests that fake the mail relay.
func newHandlerWithDialer(d dialer, adminEmail, appName string, logger *zap.Logger) *Handler {
	return &Handler{dialer: d, admin: adminEmail, appName: appName, logger: logger}
}

type submitInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Submit handles POST /api/contact.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var in submitInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.Fail(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	in.Name = normalize.Text(in.Name)
	in.Email = normalize.Email(in.Email)
	in.Phone = normalize.Text(in.Phone)
	in.Message = normalize.Text(in.Message)

	if in.Name == "" || in.Email == "" || in.Message == "" {
		jsonutil.Fail(w, http.StatusBadRequest, "name, email and message are required")
		return
	}

	ref := uuid.NewString()
	data := submissionData{
		AppName:   h.appName,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Message:   in.Message,
		Reference: ref,
	}

	ctx, cancel := timeouts.WithMedium(r.Context())
	defer cancel()

	sess, err := h.dialer.Dial(ctx)
	if err != nil {
		h.logger.Error("failed to reach mail relay",
			zap.String("reference", ref),
			zap.Error(err))
		jsonutil.Fail(w, http.StatusBadGateway, "failed to reach mail server")
		return
	}
	defer sess.Close()

	// Confirmation to the submitter is best-effort.
	userText, userHTML := userConfirmationEmail(data)
	if err := sess.Send(mailer.Email{
		To:       in.Email,
		Subject:  "We received your message",
		TextBody: userText,
		HTMLBody: userHTML,
	}); err != nil {
		h.logger.Warn("confirmation email failed, continuing",
			zap.String("reference", ref),
			zap.String("to", in.Email),
			zap.Error(err))
	}

	// The admin notification is the point of the submission; its failure
	// fails the request.
	adminText, adminHTML := adminNotificationEmail(data)
	if err := sess.Send(mailer.Email{
		To:       h.admin,
		Subject:  "New contact form submission from " + in.Name,
		TextBody: adminText,
		HTMLBody: adminHTML,
	}); err != nil {
		h.logger.Error("admin notification failed",
			zap.String("reference", ref),
			zap.Error(err))
		jsonutil.Fail(w, http.StatusBadGateway, "failed to deliver contact message")
		return
	}

	h.logger.Info("contact submission relayed",
		zap.String("reference", ref),
		zap.String("from", in.Email))

	jsonutil.JSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Your message has been sent",
		"reference": ref,
	})
}
