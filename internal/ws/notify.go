package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

type ApplicationReceivedEvent struct {
	Type      string `json:"type"`
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	JobTitle  string `json:"job_title,omitempty"`
	Timestamp string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyApplicationReceived is a no-op until a hub is installed, so callers
// never need to care whether the live feed is running.
func NotifyApplicationReceived(userID uuid.UUID, email, jobTitle string) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := ApplicationReceivedEvent{
		Type:      "application_received",
		UserID:    userID.String(),
		Email:     email,
		JobTitle:  jobTitle,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
