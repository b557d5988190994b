package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"jenny-wellness/internal/handler"
	mw "jenny-wellness/internal/middleware"
)

func New(
	pages *handler.PageHandler,
	submit *handler.SubmitHandler,
	status *handler.StatusHandler,
	static fs.FS,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(mw.Recovery)
	r.Use(mw.Logger)

	r.Get("/", pages.Home)
	r.Get("/questionnaire/{type}", pages.Questionnaire)

	r.Post("/api/submit", submit.Submit)
	r.Get("/api/metrics", status.Metrics)
	r.Get("/healthz", status.Health)

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	return r
}
