package messaging

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types
const (
	EventResumeParsed = "resume.parsed"
)

// Exchange names
const (
	ExchangeResumeEvents = "resume.events"
)

// Event is the envelope every published message is wrapped in
type Event struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Source        string          `json:"source"`
	Timestamp     time.Time       `json:"timestamp"`
	CorrelationID string          `json:"correlation_id"`
	Data          json.RawMessage `json:"data"`
}

// NewEvent creates a new event with the given type and data
func NewEvent(eventType, source, correlationID string, data interface{}) (*Event, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Event{
		ID:            GenerateEventID(),
		Type:          eventType,
		Source:        source,
		Timestamp:     time.Now().UTC(),
		CorrelationID: correlationID,
		Data:          dataBytes,
	}, nil
}

// UnmarshalData unmarshals the event data into the provided struct
func (e *Event) UnmarshalData(v interface{}) error {
	return json.Unmarshal(e.Data, v)
}

// ResumeParsedEvent is published after a document was parsed successfully.
// It carries counts and classifications only, never extracted personal data.
type ResumeParsedEvent struct {
	Filename        string    `json:"filename"`
	MIMEType        string    `json:"mime_type"`
	TextLength      int       `json:"text_length"`
	SkillsFound     int       `json:"skills_found"`
	ExperienceLevel string    `json:"experience_level"`
	ParsedAt        time.Time `json:"parsed_at"`
}

// GenerateEventID generates a unique event ID
func GenerateEventID() string {
	return uuid.New().String()
}
