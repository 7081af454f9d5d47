package domain

import "time"

// Message represents an entry in the family feed. Content holds plain text,
// or an embedded image payload (data URL) for handwritten notes.
type Message struct {
	ID             string
	Content        string
	SenderID       string // Profile ID
	Timestamp      time.Time // assigned by the store at creation
	IsAnnouncement bool
	IsHandwritten  bool
}

// FormatTimestamp returns formatted time for feed display
func (m *Message) FormatTimestamp() string {
	return m.Timestamp.Format("02.01 15:04")
}
