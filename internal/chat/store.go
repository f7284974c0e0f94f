package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

// ErrBusy is returned when a send is attempted while another one is still
// waiting on its simulated reply.
var ErrBusy = errors.New("a message is already in flight")

// Store owns the chat aggregate: the session collection, the current-session
// pointer, the denormalized transcript of the current session, the staged
// attachment buffer and the project/knowledge-source selections.
//
// All operations hold the store mutex; the only wait happens between the
// user append and the assistant append inside SendMessage, with the mutex
// released. The IsLoading flag doubles as the at-most-one-in-flight guard,
// so overlapping sends are rejected instead of interleaving.
//
// Every mutation is followed by a snapshot write. A failed write is logged
// and otherwise ignored; in-memory state is never rolled back.
type Store struct {
	mu      sync.Mutex
	state   State
	pending []UploadedFile

	src       RandomSource
	responder *Responder
	now       func() time.Time
	delayMin  time.Duration
	delayMax  time.Duration
	persist   StateStore
	log       *Logger
}

type Option func(*Store)

func WithRandomSource(src RandomSource) Option {
	return func(s *Store) { s.src = src }
}

func WithResponder(r *Responder) Option {
	return func(s *Store) { s.responder = r }
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithDelayRange(min, max time.Duration) Option {
	return func(s *Store) {
		s.delayMin = min
		s.delayMax = max
	}
}

func WithLogger(log *Logger) Option {
	return func(s *Store) { s.log = log }
}

// New builds a store backed by the given snapshot slot and restores from it.
// A missing or malformed snapshot initializes one fresh empty session
// instead; restore never fails.
func New(persist StateStore, opts ...Option) *Store {
	s := &Store{
		src:      NewRandomSource(),
		now:      time.Now,
		delayMin: 1000 * time.Millisecond,
		delayMax: 2000 * time.Millisecond,
		persist:  persist,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.responder == nil {
		s.responder = NewResponder(nil, s.src)
	}
	if s.persist == nil {
		s.persist = NewMemStateStore()
	}

	s.state = State{
		SelectedProject:         Projects[0].ID,
		SelectedKnowledgeSource: KnowledgeSources[0].ID,
	}
	if restored, ok := s.persist.Load(); ok {
		restored.IsLoading = false
		if restored.SelectedProject == "" {
			restored.SelectedProject = s.state.SelectedProject
		}
		if restored.SelectedKnowledgeSource == "" {
			restored.SelectedKnowledgeSource = s.state.SelectedKnowledgeSource
		}
		s.state = restored
		return s
	}

	sess := NewSession(s.src, s.now())
	s.state.Sessions = []Session{sess}
	s.state.CurrentSessionID = sess.ID
	s.state.Messages = []Message{}
	s.persistLocked()
	return s
}

// SendMessage appends a user message to the current session, waits the
// simulated reply delay, then appends the mock assistant reply.
//
// Whitespace-only content and a missing current session are silent no-ops.
// A second send while one is in flight returns ErrBusy. Cancelling ctx
// during the delay clears the loading flag and skips the reply.
func (s *Store) SendMessage(ctx context.Context, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}

	s.mu.Lock()
	if s.state.IsLoading {
		s.mu.Unlock()
		return ErrBusy
	}
	cur := s.sessionLocked(s.state.CurrentSessionID)
	if cur == nil {
		s.mu.Unlock()
		return nil
	}
	sessionID := cur.ID

	now := nowMillis(s.now())
	userMsg := Message{
		ID:        GenerateID(s.src),
		Role:      RoleUser,
		Content:   content,
		Timestamp: now,
	}
	var sentFiles []UploadedFile
	if len(s.pending) > 0 {
		sentFiles = append([]UploadedFile(nil), s.pending...)
		userMsg.Files = sentFiles
	}
	s.state.Messages = append(s.state.Messages, userMsg)
	cur.Messages = append(cur.Messages, userMsg)
	cur.Timestamp = now
	s.state.IsLoading = true

	// Selections are resolved at send time, not at reply time.
	project, _ := ProjectByID(s.state.SelectedProject)
	source, _ := KnowledgeSourceByID(s.state.SelectedKnowledgeSource)

	s.persistLocked()
	s.mu.Unlock()

	select {
	case <-ctx.Done():
		s.mu.Lock()
		s.state.IsLoading = false
		s.persistLocked()
		s.mu.Unlock()
		return ctx.Err()
	case <-time.After(s.replyDelay()):
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.IsLoading = false
	s.pending = nil

	// The session can have been deleted while waiting; drop the reply then.
	cur = s.sessionLocked(sessionID)
	if cur == nil {
		s.persistLocked()
		return nil
	}

	reply := s.responder.Compose(ReplyContext{
		Files:           sentFiles,
		Project:         project,
		KnowledgeSource: source,
	})
	now = nowMillis(s.now())
	botMsg := Message{
		ID:        GenerateID(s.src),
		Role:      RoleAssistant,
		Content:   reply,
		Timestamp: now,
	}
	cur.Messages = append(cur.Messages, botMsg)
	cur.Timestamp = now
	if s.state.CurrentSessionID == sessionID {
		s.state.Messages = append(s.state.Messages, botMsg)
	}
	s.persistLocked()
	return nil
}

// NewChat creates a fresh session, makes it current and clears the
// transcript view and the staged attachments.
func (s *Store) NewChat() Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := NewSession(s.src, s.now())
	s.state.Sessions = append(s.state.Sessions, sess)
	s.state.CurrentSessionID = sess.ID
	s.state.Messages = []Message{}
	s.pending = nil
	s.persistLocked()
	return sess
}

// SelectSession switches the current session. Unknown ids are a no-op.
func (s *Store) SelectSession(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.sessionLocked(id)
	if sess == nil {
		return
	}
	s.state.CurrentSessionID = id
	s.state.Messages = append([]Message(nil), sess.Messages...)
	s.pending = nil
	s.persistLocked()
}

// DeleteSession removes a session. Deleting the current one promotes the
// most recently touched survivor, or synthesizes a new empty session when
// none remain, so the current pointer never dangles.
func (s *Store) DeleteSession(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.state.Sessions {
		if s.state.Sessions[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	s.state.Sessions = append(s.state.Sessions[:idx], s.state.Sessions[idx+1:]...)

	if s.state.CurrentSessionID == id {
		if len(s.state.Sessions) > 0 {
			latest := 0
			for i := range s.state.Sessions {
				if s.state.Sessions[i].Timestamp > s.state.Sessions[latest].Timestamp {
					latest = i
				}
			}
			s.state.CurrentSessionID = s.state.Sessions[latest].ID
			s.state.Messages = append([]Message(nil), s.state.Sessions[latest].Messages...)
		} else {
			sess := NewSession(s.src, s.now())
			s.state.Sessions = append(s.state.Sessions, sess)
			s.state.CurrentSessionID = sess.ID
			s.state.Messages = []Message{}
		}
	}
	s.persistLocked()
}

// EditMessage replaces a user message's content in place. It never changes
// id, role or timestamp, and never triggers a reply; whitespace-only
// content and unknown or assistant messages are no-ops.
func (s *Store) EditMessage(messageID, newContent string) {
	newContent = strings.TrimSpace(newContent)
	if newContent == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	edited := false
	for i := range s.state.Messages {
		if s.state.Messages[i].ID == messageID && s.state.Messages[i].Role == RoleUser {
			s.state.Messages[i].Content = newContent
			edited = true
			break
		}
	}
	for si := range s.state.Sessions {
		msgs := s.state.Sessions[si].Messages
		for i := range msgs {
			if msgs[i].ID == messageID && msgs[i].Role == RoleUser {
				msgs[i].Content = newContent
				edited = true
			}
		}
	}
	if edited {
		s.persistLocked()
	}
}

// AddPendingFiles stages attachments for the next send.
func (s *Store) AddPendingFiles(files ...UploadedFile) {
	if len(files) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, files...)
}

// RemovePendingFile unstages one attachment by id.
func (s *Store) RemovePendingFile(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.pending {
		if s.pending[i].ID == id {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}

// SelectProject sets the project context. Unknown ids are a no-op.
func (s *Store) SelectProject(id string) {
	if _, ok := ProjectByID(id); !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SelectedProject = id
	s.persistLocked()
}

// SelectKnowledgeSource sets the knowledge-source context. Unknown ids are
// a no-op.
func (s *Store) SelectKnowledgeSource(id string) {
	if _, ok := KnowledgeSourceByID(id); !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SelectedKnowledgeSource = id
	s.persistLocked()
}

// Messages returns a copy of the current transcript.
func (s *Store) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message(nil), s.state.Messages...)
}

// Sessions returns a copy of the session collection, unsorted. Consumers
// sort by timestamp descending for display.
func (s *Store) Sessions() []Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Session, len(s.state.Sessions))
	copy(out, s.state.Sessions)
	return out
}

func (s *Store) CurrentSessionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.CurrentSessionID
}

func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsLoading
}

// PendingFiles returns a copy of the staged attachment buffer.
func (s *Store) PendingFiles() []UploadedFile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]UploadedFile(nil), s.pending...)
}

func (s *Store) SelectedProject() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SelectedProject
}

func (s *Store) SelectedKnowledgeSource() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SelectedKnowledgeSource
}

func (s *Store) sessionLocked(id string) *Session {
	for i := range s.state.Sessions {
		if s.state.Sessions[i].ID == id {
			return &s.state.Sessions[i]
		}
	}
	return nil
}

func (s *Store) persistLocked() {
	if err := s.persist.Save(s.state); err != nil {
		s.log.Error("persist snapshot", map[string]interface{}{"error": err.Error()})
	}
}

func (s *Store) replyDelay() time.Duration {
	spread := s.delayMax - s.delayMin
	if spread <= 0 {
		return s.delayMin
	}
	return s.delayMin + time.Duration(s.src.Float64()*float64(spread))
}
