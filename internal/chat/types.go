package chat

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in a session transcript. Timestamps are milliseconds
// since epoch to match the persisted snapshot layout.
type Message struct {
	ID        string         `json:"id"`
	Role      Role           `json:"role"`
	Content   string         `json:"content"`
	Timestamp int64          `json:"timestamp"`
	Files     []UploadedFile `json:"files,omitempty"`
}

// Session is one conversation thread. Timestamp is last-modified time,
// bumped on every message append.
type Session struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Messages  []Message `json:"messages"`
	Timestamp int64     `json:"timestamp"`
	Summary   string    `json:"summary,omitempty"`
}

// State is the full persisted aggregate. IsLoading is always written as
// false; Messages mirrors the current session's transcript for rendering.
type State struct {
	Messages                []Message `json:"messages"`
	IsLoading               bool      `json:"isLoading"`
	CurrentSessionID        string    `json:"currentSessionId"`
	Sessions                []Session `json:"sessions"`
	SelectedProject         string    `json:"selectedProject"`
	SelectedKnowledgeSource string    `json:"selectedKnowledgeSource"`
}

// UploadedFile describes a staged attachment. Content is only set for plain
// text files; PDF and DOCX keep metadata only.
type UploadedFile struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Size    int64  `json:"size"`
	Type    string `json:"type"`
	Content string `json:"content,omitempty"`
}

type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type KnowledgeSourceType string

const (
	SourceDatabase   KnowledgeSourceType = "database"
	SourceRepository KnowledgeSourceType = "repository"
	SourceDocument   KnowledgeSourceType = "document"
)

type KnowledgeSource struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Type        KnowledgeSourceType `json:"type"`
	Description string              `json:"description"`
}

type Workflow struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Prompt      string `json:"prompt"`
}

func nowMillis(t time.Time) int64 {
	return t.UnixMilli()
}

// FirstUserMessage returns the earliest user message in the session, if any.
func (s *Session) FirstUserMessage() (Message, bool) {
	for _, m := range s.Messages {
		if m.Role == RoleUser {
			return m, true
		}
	}
	return Message{}, false
}
