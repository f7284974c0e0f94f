package chat

import (
	"strings"
	"time"
)

const titleMaxRunes = 30

// DefaultTitle is the templated label a fresh session starts with.
func DefaultTitle(sessionID string) string {
	short := sessionID
	if len(short) > 8 {
		short = short[:8]
	}
	return "Chat " + short
}

// NewSession builds an empty session with a fresh id and the default title.
func NewSession(src RandomSource, now time.Time) Session {
	id := GenerateID(src)
	return Session{
		ID:        id,
		Title:     DefaultTitle(id),
		Messages:  []Message{},
		Timestamp: nowMillis(now),
	}
}

// DeriveTitle resolves the display label for a session.
//
// A title that no longer equals the default template is treated as settled
// and returned unchanged. Otherwise the first user message, truncated to 30
// runes with an ellipsis when cut, wins; with no user message the template
// stands. Idempotent: once a derived title differs from the template, the
// first check keeps it stable.
func DeriveTitle(s *Session) string {
	if s.Title != DefaultTitle(s.ID) {
		return s.Title
	}
	if first, ok := s.FirstUserMessage(); ok {
		return truncateRunes(first.Content, titleMaxRunes)
	}
	return DefaultTitle(s.ID)
}

// DeriveSummary computes the on-demand session summary from the first user
// message. Empty when the session has none.
func DeriveSummary(s *Session) string {
	if s.Summary != "" {
		return s.Summary
	}
	if first, ok := s.FirstUserMessage(); ok {
		return truncateRunes(strings.TrimSpace(first.Content), titleMaxRunes)
	}
	return ""
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
