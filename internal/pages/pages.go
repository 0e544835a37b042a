// Package pages serves the server-rendered informational pages of the clinic
// site: doctors, services, offerings, testimonials and the appointment
// confirmation. Templates are embedded and parsed once at startup.
package pages

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var funcs = template.FuncMap{
	"stars": func(n int) string { return strings.Repeat("⭐", n) },
}

type Offering struct {
	Name        string
	Price       int
	Duration    string
	Description string
	Available   bool
}

type Testimonial struct {
	Name    string
	Rating  int
	Comment string
	Date    string
}

type Appointment struct {
	ID            string
	Name          string
	Email         string
	Service       string
	PreferredDate string
	PreferredTime string
}

var seedOfferings = []Offering{
	{
		Name:        "Anti-Aging Treatment",
		Price:       5000,
		Duration:    "60 mins",
		Description: "Advanced treatment to reduce fine lines and wrinkles",
		Available:   true,
	},
	{
		Name:        "Acne Treatment",
		Price:       3000,
		Duration:    "45 mins",
		Description: "Specialized treatment for acne-prone skin",
		Available:   true,
	},
	{
		Name:        "Chemical Peel",
		Price:       4000,
		Duration:    "30 mins",
		Description: "Skin resurfacing treatment for even tone",
		Available:   false,
	},
}

var seedTestimonials = []Testimonial{
	{Name: "John Doe", Rating: 5, Comment: "Excellent service!", Date: "2024-01-20"},
	{Name: "Jane Smith", Rating: 4, Comment: "Very professional staff", Date: "2024-01-18"},
}

type Server struct {
	Log  *zap.Logger
	tmpl *template.Template
}

func NewServer(log *zap.Logger) (*Server, error) {
	t, err := template.New("pages").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}
	return &Server{Log: log, tmpl: t}, nil
}

func (s *Server) Register(r chi.Router) {
	r.Get("/doctors", s.doctors)
	r.Get("/services", s.services)
	r.Get("/offerings", s.offerings)
	r.Get("/testimonials", s.testimonials)
	r.Post("/book-appointment", s.bookAppointment)
}

func (s *Server) doctors(w http.ResponseWriter, _ *http.Request) {
	s.render(w, "doctors.tmpl", map[string]any{
		"Title":       "Our Expert Doctors",
		"Description": "Our clinic provides top-notch medical expertise in dermatology and skincare.",
	})
}

func (s *Server) services(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = "General"
	}
	s.render(w, "services.tmpl", map[string]any{
		"Title":    category + " Services",
		"Category": category,
	})
}

func (s *Server) offerings(w http.ResponseWriter, _ *http.Request) {
	s.render(w, "offerings.tmpl", map[string]any{
		"Title":     "Our Offerings",
		"Offerings": seedOfferings,
	})
}

func (s *Server) testimonials(w http.ResponseWriter, _ *http.Request) {
	s.render(w, "testimonials.tmpl", map[string]any{
		"Title":        "Testimonials",
		"Testimonials": seedTestimonials,
	})
}

func (s *Server) bookAppointment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	apt := Appointment{
		ID:            "apt_" + uuid.NewString(),
		Name:          r.PostFormValue("name"),
		Email:         r.PostFormValue("email"),
		Service:       r.PostFormValue("service"),
		PreferredDate: r.PostFormValue("preferredDate"),
		PreferredTime: r.PostFormValue("preferredTime"),
	}

	if s.Log != nil {
		s.Log.Info("appointment booked", zap.String("id", apt.ID), zap.String("service", apt.Service))
	}

	s.render(w, "book-appointment.tmpl", map[string]any{
		"Title":       "Appointment Confirmation",
		"Appointment": apt,
	})
}

// render buffers the template output so a mid-render failure can still return
// a clean 500 instead of a half-written page.
func (s *Server) render(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		if s.Log != nil {
			s.Log.Error("render failed", zap.String("template", name), zap.Error(err))
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
