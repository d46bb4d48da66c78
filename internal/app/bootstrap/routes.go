package bootstrap

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	blogsfeature "github.com/inkpost/inkpost/internal/app/features/blogs"
	contactfeature "github.com/inkpost/inkpost/internal/app/features/contact"
	statusfeature "github.com/inkpost/inkpost/internal/app/features/status"
	"github.com/inkpost/inkpost/internal/app/system/apicors"
	"github.com/inkpost/inkpost/internal/app/system/mailer"
	"github.com/inkpost/inkpost/internal/app/system/recovery"
	"github.com/inkpost/inkpost/internal/app/system/requestlog"
	"github.com/inkpost/inkpost/internal/app/system/runstate"
)

// BuildHandler constructs the root HTTP handler.
//
// Middleware order: request logging first so every request is recorded,
// then panic recovery so handler panics still produce the JSON envelope,
// then CORS. Feature routes hang off the /api group; the HTML status page,
// the liveness probe, and the HTML 404 handler live on the root.
func BuildHandler(cfg Config, db *mongo.Database, mail *mailer.Mailer, flags *runstate.Flags, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(requestlog.Middleware(logger))
	r.Use(recovery.Middleware(logger, !cfg.IsProd()))
	if cfg.IsProd() {
		r.Use(apicors.Restricted(cfg.AllowedOrigins...))
	} else {
		r.Use(apicors.Permissive())
	}

	blogH := blogsfeature.NewHandler(db, logger)
	contactH := contactfeature.NewHandler(mail, cfg.AdminEmail, logger)
	statusH := statusfeature.NewHandler(flags, logger)

	r.Route("/api", func(api chi.Router) {
		blogsfeature.Register(api, blogH)
		contactfeature.Register(api, contactH)
		statusfeature.Register(api, statusH)
	})

	statusfeature.RegisterRoot(r, statusH)

	return r
}
