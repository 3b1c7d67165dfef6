package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Routes builds the full router. Paths and verbs mirror the original API
// surface and must stay stable for existing clients.
func (h *Handler) Routes(log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware stack
	r.Use(chimiddleware.Recoverer) // recover from panics, return 500
	r.Use(chimiddleware.RequestID) // attach request IDs
	r.Use(chimiddleware.RealIP)    // trust X-Forwarded-For
	r.Use(AccessLog(log))          // structured access log
	r.Use(CORS)                    // permissive CORS for browser clients

	r.Get("/health", HealthCheck)

	r.Post("/auth/login", h.Login)

	r.Route("/events", func(r chi.Router) {
		r.Post("/", h.CreateEvent)
		r.Get("/", h.ListEvents)
		r.Get("/{id}", h.GetEvent)
		r.Put("/{id}", h.UpdateEvent)
		r.Delete("/{id}", h.CancelEvent)
	})

	r.Post("/register", h.Register)
	r.Get("/registrations/{eventID}", h.ListRegistrations)

	r.Post("/attendance", h.MarkAttendance)
	r.Get("/attendance/{eventID}", h.ListAttendance)

	r.Post("/feedback", h.SubmitFeedback)
	r.Get("/feedback/{eventID}", h.ListFeedback)

	r.Route("/reports", func(r chi.Router) {
		r.Get("/registrations/{eventID}", h.ReportRegistrations)
		r.Get("/attendance/{eventID}", h.ReportAttendance)
		r.Get("/feedback/{eventID}", h.ReportFeedback)
		r.Get("/popularity", h.ReportPopularity)
		r.Get("/participation/{studentID}", h.ReportParticipation)
		r.Get("/top-students", h.ReportTopStudents)
	})

	// Administrative surface
	r.Route("/colleges", func(r chi.Router) {
		r.Post("/", h.CreateCollege)
		r.Get("/", h.ListColleges)
		r.Delete("/{id}", h.DeleteCollege)
	})
	r.Route("/students", func(r chi.Router) {
		r.Post("/", h.CreateStudent)
		r.Get("/", h.ListStudents)
		r.Delete("/{id}", h.DeleteStudent)
	})

	return r
}
