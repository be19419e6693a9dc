package session

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/config"
)

// Flash is a one-shot notice shown by the admin UI after a redirect.
// Level follows the UI's alert classes ("success", "danger").
type Flash struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

func init() {
	gob.Register(Flash{})
}

// Manager wraps the cookie store carrying the admin identity and flash
// notices.
type Manager struct {
	store *sessions.CookieStore
	name  string
}

// NewManager builds the cookie store from the session configuration.
func NewManager(cfg *config.SessionConfig) *Manager {
	store := sessions.NewCookieStore([]byte(cfg.Secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   cfg.MaxAge,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store, name: cfg.Name}
}

// Identity returns the logged-in user id and role, empty when the
// session carries none.
func (m *Manager) Identity(r *http.Request) (userID, role string) {
	s, err := m.store.Get(r, m.name)
	if err != nil {
		return "", ""
	}
	userID, _ = s.Values["user_id"].(string)
	role, _ = s.Values["user_role"].(string)
	return userID, role
}

// SetIdentity stores the identity after a successful login.
func (m *Manager) SetIdentity(w http.ResponseWriter, r *http.Request, userID, role string) error {
	s, _ := m.store.Get(r, m.name)
	s.Values["user_id"] = userID
	s.Values["user_role"] = role
	return s.Save(r, w)
}

// Clear drops the session cookie.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	s, _ := m.store.Get(r, m.name)
	s.Options.MaxAge = -1
	return s.Save(r, w)
}

// AddFlash queues one-shot notices for the next page render.
func (m *Manager) AddFlash(w http.ResponseWriter, r *http.Request, level string, messages ...string) error {
	s, _ := m.store.Get(r, m.name)
	for _, msg := range messages {
		s.AddFlash(Flash{Level: level, Message: msg})
	}
	return s.Save(r, w)
}

// Flashes pops every queued notice.
func (m *Manager) Flashes(w http.ResponseWriter, r *http.Request) []Flash {
	s, _ := m.store.Get(r, m.name)
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	flashes := make([]Flash, 0, len(raw))
	for _, f := range raw {
		if fl, ok := f.(Flash); ok {
			flashes = append(flashes, fl)
		}
	}
	// Popping flashes mutates the session; persist the removal.
	_ = s.Save(r, w)
	return flashes
}
