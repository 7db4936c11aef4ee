package entity

import (
	"strings"
	"time"
)

type GenerationSource string

const (
	SourceGroq     GenerationSource = "GROQ"
	SourceOllama   GenerationSource = "OLLAMA"
	SourceFallback GenerationSource = "FALLBACK"
)

// GenerationRequest describes a single text-generation call. DialogMode
// switches the system instruction and sampling parameters to the
// turn-by-turn dialog persona.
type GenerationRequest struct {
	Prompt     string
	Context    string
	DialogMode bool
}

type GenerationResult struct {
	Text   string
	Source GenerationSource
}

// FormField is one entry of the Variant A form catalog.
type FormField struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Type        string   `json:"type"`
	Options     []string `json:"options,omitempty"`
	Required    bool     `json:"required"`
	Placeholder string   `json:"placeholder,omitempty"`
	Hint        string   `json:"hint"`
}

// DialogQuestion is one entry of the Variant B question list.
type DialogQuestion struct {
	ID         string `json:"id"`
	Question   string `json:"question"`
	Field      string `json:"field"`
	Type       string `json:"type"`
	Difficulty string `json:"difficulty,omitempty"`
	Required   bool   `json:"required"`
}

type ChatMessage struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// DialogSession is one in-progress Variant B dialog. The server-tracked
// CurrentIndex is the source of truth for question progression; indices
// reported by the client are ignored.
type DialogSession struct {
	ID           string            `json:"session_id"`
	Questions    []DialogQuestion  `json:"questions"`
	CurrentIndex int               `json:"currentQuestionIndex"`
	Answers      map[string]string `json:"answers"`
	ChatLog      []ChatMessage     `json:"chatHistory"`
	CreatedAt    time.Time         `json:"created_at"`
}

// Completed reports whether every question has been answered.
func (s *DialogSession) Completed() bool {
	return s.CurrentIndex >= len(s.Questions)
}

// CurrentQuestion returns the question awaiting an answer, or nil once
// the session is completed.
func (s *DialogSession) CurrentQuestion() *DialogQuestion {
	if s.Completed() {
		return nil
	}
	return &s.Questions[s.CurrentIndex]
}

// IsHelpRequest reports whether a dialog message asks for help with the
// current question instead of answering it.
func IsHelpRequest(message string) bool {
	return strings.TrimSpace(message) == "?"
}

// StorageResult reports the outcome of a dual persist. The operation as a
// whole succeeds if at least one backend took the document.
type StorageResult struct {
	Filename       string
	StoredLocally  bool
	StoredRemotely bool
	LocalPath      string
	RemoteID       string
	RemoteURL      string
}

func (r *StorageResult) Succeeded() bool {
	return r.StoredLocally || r.StoredRemotely
}

// Location returns the storage label reported to the client.
func (r *StorageResult) Location() string {
	if r.StoredRemotely {
		return "google_drive"
	}
	return "local"
}
