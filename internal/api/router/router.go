package router

import (
	"encoding/json"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/otoplaza/showroom-ai/internal/appointments"
	"github.com/otoplaza/showroom-ai/internal/conversation"
	"github.com/otoplaza/showroom-ai/internal/vehicles"
	"github.com/otoplaza/showroom-ai/internal/voice"
	"github.com/otoplaza/showroom-ai/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger              *logging.Logger
	AppointmentsHandler *appointments.Handler
	VehiclesHandler     *vehicles.Handler
	ChatHandler         *conversation.Handler
	VoiceHandler        *voice.Handler
	MetricsHandler      http.Handler

	// StaticDir holds the storefront page served at /.
	StaticDir string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	r.Get("/health", healthCheck)

	if cfg.StaticDir != "" {
		index := filepath.Join(cfg.StaticDir, "index.html")
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			http.ServeFile(w, req, index)
		})
	}

	if cfg.VehiclesHandler != nil {
		r.Route("/api/vehicles", func(r chi.Router) {
			r.Get("/", cfg.VehiclesHandler.ListVehicles)
			r.Get("/{category}", cfg.VehiclesHandler.ListByCategory)
		})
	}

	if cfg.AppointmentsHandler != nil {
		r.Route("/api/appointments", func(r chi.Router) {
			r.Get("/", cfg.AppointmentsHandler.ListAppointments)
			r.Post("/", cfg.AppointmentsHandler.CreateAppointment)
			r.Put("/{id}", cfg.AppointmentsHandler.UpdateAppointment)
			r.Delete("/{id}", cfg.AppointmentsHandler.DeleteAppointment)
		})
	}

	if cfg.ChatHandler != nil {
		r.Post("/api/chat", cfg.ChatHandler.Chat)
	}

	if cfg.VoiceHandler != nil {
		r.Route("/webhooks/twilio", func(r chi.Router) {
			r.Post("/voice", cfg.VoiceHandler.Webhook)
		})
		r.Get("/make-call", cfg.VoiceHandler.MakeCall)
		r.Post("/request-callback", cfg.VoiceHandler.RequestCallback)
	}

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
