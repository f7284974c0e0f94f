package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"docchat/internal/chat"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type sidebarView int

const (
	sidebarWorkflows sidebarView = iota
	sidebarHistory
)

// Model is the interactive chat screen: transcript, input box, and a
// sidebar that toggles between quick workflows and session history.
type Model struct {
	store    *chat.Store
	userName string
	src      chat.RandomSource

	input        textarea.Model
	keys         keyMap
	sidebar      sidebarView
	histIndex    int
	notice       string
	errText      string
	spinnerFrame int
	windowWidth  int
	windowHeight int
}

type keyMap struct {
	Send       key.Binding
	ToggleSide key.Binding
	NewChat    key.Binding
	HistUp     key.Binding
	HistDown   key.Binding
	HistOpen   key.Binding
	HistDelete key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Send:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
		ToggleSide: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "workflows/history")),
		NewChat:    key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new chat")),
		HistUp:     key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "up")),
		HistDown:   key.NewBinding(key.WithKeys("ctrl+j"), key.WithHelp("ctrl+j", "down")),
		HistOpen:   key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open session")),
		HistDelete: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "delete session")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("ctrl+c", "quit")),
	}
}

func New(store *chat.Store, userName string) *Model {
	ta := textarea.New()
	ta.Placeholder = "Type your message here... (/help for commands)"
	ta.Focus()
	ta.CharLimit = 8000
	ta.SetWidth(80)
	ta.SetHeight(2)
	ta.Prompt = "▍ "
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.BlurredStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(lipgloss.Color(colorFgMuted))
	ta.BlurredStyle.Placeholder = lipgloss.NewStyle().Foreground(lipgloss.Color(colorFgMuted))

	return &Model{
		store:        store,
		userName:     userName,
		src:          chat.NewRandomSource(),
		input:        ta,
		keys:         defaultKeyMap(),
		sidebar:      sidebarWorkflows,
		windowWidth:  80,
		windowHeight: 24,
	}
}

func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// replyMsg reports a finished (or failed) send.
type replyMsg struct {
	err error
}

// spinMsg drives the thinking spinner while a send is in flight.
type spinMsg struct{}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		m.input.SetWidth(msg.Width - 8)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.ToggleSide):
			if m.sidebar == sidebarWorkflows {
				m.sidebar = sidebarHistory
			} else {
				m.sidebar = sidebarWorkflows
			}
			m.histIndex = 0
			return m, nil

		case key.Matches(msg, m.keys.NewChat):
			m.store.NewChat()
			m.notice = "started a new chat"
			m.histIndex = 0
			return m, nil

		case key.Matches(msg, m.keys.HistUp):
			if m.sidebar == sidebarHistory && m.histIndex > 0 {
				m.histIndex--
			}
			return m, nil

		case key.Matches(msg, m.keys.HistDown):
			if m.sidebar == sidebarHistory && m.histIndex < len(m.sortedSessions())-1 {
				m.histIndex++
			}
			return m, nil

		case key.Matches(msg, m.keys.HistOpen):
			if m.sidebar == sidebarHistory {
				if sessions := m.sortedSessions(); m.histIndex < len(sessions) {
					m.store.SelectSession(sessions[m.histIndex].ID)
					m.notice = ""
				}
			}
			return m, nil

		case key.Matches(msg, m.keys.HistDelete):
			if m.sidebar == sidebarHistory {
				if sessions := m.sortedSessions(); m.histIndex < len(sessions) {
					m.store.DeleteSession(sessions[m.histIndex].ID)
					if m.histIndex > 0 {
						m.histIndex--
					}
					m.notice = "session deleted"
				}
			}
			return m, nil

		case key.Matches(msg, m.keys.Send):
			return m.handleSubmit()
		}

	case replyMsg:
		if msg.err != nil {
			m.errText = msg.err.Error()
		}
		return m, nil

	case spinMsg:
		if m.store.Loading() {
			m.spinnerFrame++
			return m, m.spinCmd()
		}
		return m, nil
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *Model) handleSubmit() (tea.Model, tea.Cmd) {
	raw := m.input.Value()
	if strings.TrimSpace(raw) == "" {
		return m, nil
	}
	m.errText = ""
	m.notice = ""

	if cmd, ok := parseCommand(raw); ok {
		m.input.Reset()
		return m.runCommand(cmd)
	}

	if m.store.Loading() {
		m.errText = "still thinking, hold on"
		return m, nil
	}
	m.input.Reset()
	return m, tea.Batch(m.sendCmd(strings.TrimSpace(raw)), m.spinCmd())
}

func (m *Model) runCommand(c command) (tea.Model, tea.Cmd) {
	switch c.name {
	case "help":
		m.notice = helpText

	case "new":
		m.store.NewChat()
		m.notice = "started a new chat"

	case "attach":
		if len(c.args) == 0 {
			m.errText = "usage: /attach <path>"
			break
		}
		var added, skipped int
		for _, p := range c.args {
			if f, ok := chat.LoadUploadedFile(m.src, p); ok {
				m.store.AddPendingFiles(f)
				added++
			} else {
				skipped++
			}
		}
		m.notice = fmt.Sprintf("attached %d file(s)", added)
		if skipped > 0 {
			m.notice += fmt.Sprintf(", skipped %d (only .txt, .pdf, .docx)", skipped)
		}

	case "detach":
		pending := m.store.PendingFiles()
		if len(c.args) == 0 {
			m.errText = "usage: /detach <n>"
			break
		}
		if i, ok := pickIndex(c.args[0], len(pending)); ok {
			m.store.RemovePendingFile(pending[i].ID)
			m.notice = "removed " + pending[i].Name
		} else {
			m.errText = "no such attachment"
		}

	case "edit":
		if len(c.args) < 2 {
			m.errText = "usage: /edit <n> <new text>"
			break
		}
		msgs := m.store.Messages()
		i, ok := pickIndex(c.args[0], len(msgs))
		if !ok || msgs[i].Role != chat.RoleUser {
			m.errText = "no such user message"
			break
		}
		m.store.EditMessage(msgs[i].ID, c.rest(1))
		m.notice = "message edited"

	case "workflow":
		if len(c.args) == 0 {
			m.errText = "usage: /workflow <n>"
			break
		}
		if i, ok := pickIndex(c.args[0], len(chat.Workflows)); ok {
			return m, tea.Batch(m.sendCmd(chat.Workflows[i].Prompt), m.spinCmd())
		}
		if wf, ok := chat.WorkflowByID(c.args[0]); ok {
			return m, tea.Batch(m.sendCmd(wf.Prompt), m.spinCmd())
		}
		m.errText = "no such workflow"

	case "suggest":
		if len(c.args) == 0 {
			m.errText = "usage: /suggest <n>"
			break
		}
		if i, ok := pickIndex(c.args[0], len(chat.SuggestedPrompts)); ok {
			return m, tea.Batch(m.sendCmd(chat.SuggestedPrompts[i]), m.spinCmd())
		}
		m.errText = "no such suggested prompt"

	case "project":
		if len(c.args) == 0 {
			m.errText = "usage: /project <n>"
			break
		}
		if i, ok := pickIndex(c.args[0], len(chat.Projects)); ok {
			m.store.SelectProject(chat.Projects[i].ID)
			m.notice = "project: " + chat.Projects[i].Name
		} else {
			m.store.SelectProject(c.args[0])
			m.notice = "project: " + c.args[0]
		}

	case "source":
		if len(c.args) == 0 {
			m.errText = "usage: /source <n>"
			break
		}
		if i, ok := pickIndex(c.args[0], len(chat.KnowledgeSources)); ok {
			m.store.SelectKnowledgeSource(chat.KnowledgeSources[i].ID)
			m.notice = "knowledge source: " + chat.KnowledgeSources[i].Name
		} else {
			m.store.SelectKnowledgeSource(c.args[0])
			m.notice = "knowledge source: " + c.args[0]
		}

	case "delete":
		sessions := m.sortedSessions()
		if len(c.args) == 0 {
			m.errText = "usage: /delete <n>"
			break
		}
		if i, ok := pickIndex(c.args[0], len(sessions)); ok {
			m.store.DeleteSession(sessions[i].ID)
			m.notice = "session deleted"
		} else {
			m.errText = "no such session"
		}

	default:
		m.errText = "unknown command /" + c.name + " (try /help)"
	}
	return m, nil
}

func (m *Model) sendCmd(content string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		return replyMsg{err: m.store.SendMessage(ctx, content)}
	}
}

func (m *Model) spinCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(_ time.Time) tea.Msg {
		return spinMsg{}
	})
}

// sortedSessions is the display order: most recently touched first.
func (m *Model) sortedSessions() []chat.Session {
	sessions := m.store.Sessions()
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].Timestamp > sessions[j].Timestamp
	})
	return sessions
}
