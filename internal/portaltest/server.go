// Package portaltest runs an in-memory stand-in for the wellness portal
// backend so the client packages can be tested against real HTTP.
package portaltest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/letsdodifferent/HCLTech/internal/model"
)

// Token is the bearer credential the fake backend issues.
const Token = "portaltest-token"

// Seeded login credentials.
const (
	Email    = "asha@example.com"
	Password = "secret123"
)

// Server is the fake backend. Mutate the exported fields to shape responses;
// use Fail to force a status for one path.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	failures  map[string]failure
	nextLogID int

	User      model.User
	Wellness  model.WellnessSnapshot
	Reminders []model.Reminder
	Tip       model.HealthTip
	Logs      []model.DailyLog
	Profile   model.Profile
	Topics    []model.HealthTopic
	Patients  []model.PatientSummary
}

type failure struct {
	status  int
	message string
}

// New starts a seeded fake backend; it is closed with the test.
func New(t interface{ Cleanup(func()) }) *Server {
	s := &Server{
		failures:  map[string]failure{},
		nextLogID: 1,
		User:      model.User{ID: "u1", Name: "Asha Rao", Email: Email, Role: model.RolePatient},
		Wellness: model.WellnessSnapshot{
			StepsToday: 6500, StepsGoal: 8000,
			SleepHours: 7, SleepGoal: 8,
			ActiveMinutes: 25, ActiveGoal: 30,
			WaterIntake: 1.5, WaterGoal: 2.5,
		},
		Reminders: []model.Reminder{
			{ID: "r1", Title: "Annual flu shot", DueDate: "2026-10-01"},
		},
		Tip: model.HealthTip{Category: "hydration", Tip: "Drink enough water throughout the day."},
		Profile: model.Profile{
			Name: "Asha Rao", Age: 34, Email: Email, Phone: "9876543210",
			Address: "12 Lake View Road", AadharCard: "1234-5678-9012",
			StepsGoal: 8000, ActiveTimeGoal: 30, SleepGoal: 7, WaterGoal: 2.5,
		},
		Topics: []model.HealthTopic{
			{ID: "t1", Icon: "💧", Category: "Hydration", Title: "Stay Hydrated",
				Description: "Water keeps every system in your body functioning.",
				Tips:        []string{"Carry a bottle", "Drink before meals"}},
		},
	}

	r := chi.NewRouter()
	r.Post("/auth/register", s.register)
	r.Post("/auth/login", s.login)
	r.Post("/auth/logout", s.authed(s.ok(nil)))
	r.Get("/auth/me", s.authed(func(w http.ResponseWriter, _ *http.Request) { s.writeData(w, s.User) }))

	r.Get("/patient/profile", s.authed(func(w http.ResponseWriter, _ *http.Request) { s.writeData(w, s.Profile) }))
	r.Put("/patient/profile", s.authed(s.updateProfile))
	r.Get("/patient/wellness", s.authed(func(w http.ResponseWriter, _ *http.Request) { s.writeData(w, s.Wellness) }))
	r.Post("/patient/logs", s.authed(s.createLog))
	r.Get("/patient/logs", s.authed(func(w http.ResponseWriter, _ *http.Request) { s.writeData(w, s.snapshotLogs()) }))
	r.Get("/patient/reminders", s.authed(func(w http.ResponseWriter, _ *http.Request) { s.writeData(w, s.Reminders) }))
	r.Post("/patient/reminders", s.authed(s.createReminder))

	r.Post("/provider/assign", s.authed(s.ok(nil)))
	r.Get("/provider/patients", s.authed(func(w http.ResponseWriter, _ *http.Request) { s.writeData(w, s.Patients) }))
	r.Get("/provider/patients/{id}", s.authed(s.patientOverview))
	r.Put("/provider/patients/{id}/compliance", s.authed(s.ok(nil)))

	r.Get("/public/health-info", func(w http.ResponseWriter, _ *http.Request) { s.writeData(w, s.Topics) })
	r.Get("/public/tip", func(w http.ResponseWriter, _ *http.Request) { s.writeData(w, s.Tip) })

	s.Server = httptest.NewServer(s.failureMiddleware(r))
	t.Cleanup(s.Close)
	return s
}

// Fail forces the next responses for path (e.g. "/patient/wellness") to the
// given status and message. Pass status 0 to clear.
func (s *Server) Fail(path string, status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if status == 0 {
		delete(s.failures, path)
		return
	}
	s.failures[path] = failure{status: status, message: message}
}

func (s *Server) failureMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		f, ok := s.failures[r.URL.Path]
		s.mu.Unlock()
		if ok {
			s.writeError(w, f.status, f.message)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) authed(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") || strings.TrimPrefix(auth, "Bearer ") != Token {
			s.writeError(w, http.StatusUnauthorized, "Not authorized, please log in")
			return
		}
		next(w, r)
	}
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var reg model.Registration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	s.mu.Lock()
	s.User = model.User{ID: "u1", Name: reg.Name, Email: reg.Email, Role: reg.Role}
	user := s.User
	s.mu.Unlock()
	s.writeData(w, model.Session{User: user, Token: Token})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var creds model.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if creds.Email != Email || creds.Password != Password {
		s.writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	s.writeData(w, model.Session{User: s.User, Token: Token})
}

func (s *Server) createLog(w http.ResponseWriter, r *http.Request) {
	var entry model.DailyLog
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	s.mu.Lock()
	entry.ID = "log-" + strconv.Itoa(s.nextLogID)
	s.nextLogID++
	s.Logs = append([]model.DailyLog{entry}, s.Logs...)
	s.mu.Unlock()
	s.writeData(w, entry)
}

func (s *Server) createReminder(w http.ResponseWriter, r *http.Request) {
	var rem model.Reminder
	if err := json.NewDecoder(r.Body).Decode(&rem); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	s.mu.Lock()
	rem.ID = "r-" + strconv.Itoa(len(s.Reminders)+1)
	s.Reminders = append(s.Reminders, rem)
	s.mu.Unlock()
	s.writeData(w, rem)
}

func (s *Server) updateProfile(w http.ResponseWriter, r *http.Request) {
	var update model.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	s.mu.Lock()
	s.Profile.Name = update.Name
	s.Profile.Age = update.Age
	s.Profile.Phone = update.Phone
	s.Profile.Address = update.Address
	s.Profile.Allergies = update.Allergies
	s.Profile.CurrentMedications = update.CurrentMedications
	s.Profile.StepsGoal = update.StepsGoal
	s.Profile.ActiveTimeGoal = update.ActiveTimeGoal
	s.Profile.SleepGoal = update.SleepGoal
	s.Profile.WaterGoal = update.WaterGoal
	prof := s.Profile
	s.mu.Unlock()
	s.writeData(w, prof)
}

func (s *Server) patientOverview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.Patients {
		if p.ID == id {
			s.writeDataLocked(w, model.PatientOverview{Patient: p, Wellness: s.Wellness, Logs: s.Logs, Reminders: s.Reminders})
			return
		}
	}
	s.writeError(w, http.StatusNotFound, "Patient not found")
}

func (s *Server) snapshotLogs() []model.DailyLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.DailyLog, len(s.Logs))
	copy(out, s.Logs)
	return out
}

func (s *Server) ok(data any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) { s.writeData(w, data) }
}

func (s *Server) writeData(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "", "data": data})
}

// writeDataLocked is writeData for callers already holding s.mu.
func (s *Server) writeDataLocked(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "", "data": data})
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": message})
}
