package tui

import (
	"fmt"
	"strings"
	"time"

	"docchat/internal/chat"

	"github.com/charmbracelet/lipgloss"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderSidebar(),
		m.renderTranscript(),
	)
	b.WriteString(body)
	b.WriteString("\n")

	if files := m.store.PendingFiles(); len(files) > 0 {
		b.WriteString(m.renderPendingFiles(files))
		b.WriteString("\n")
	}

	if m.store.Loading() {
		frame := spinnerFrames[m.spinnerFrame%len(spinnerFrames)]
		b.WriteString(loadingStyle.Render(frame + " AI is thinking..."))
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}
	if m.errText != "" {
		b.WriteString(errorStyle.Render(m.errText))
		b.WriteString("\n")
	}

	b.WriteString(inputStyle.Width(m.windowWidth - 4).Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter send • tab workflows/history • ctrl+n new • ctrl+j/k move • ctrl+o open • ctrl+x delete • /help • ctrl+c quit"))

	return b.String()
}

func (m *Model) renderHeader() string {
	project := m.store.SelectedProject()
	if p, ok := chat.ProjectByID(project); ok {
		project = p.Name
	}
	source := m.store.SelectedKnowledgeSource()
	if ks, ok := chat.KnowledgeSourceByID(source); ok {
		source = ks.Name
	}
	text := fmt.Sprintf("Smart Document Chat — project: %s • source: %s", project, source)
	return headerStyle.Width(m.windowWidth - 2).Render(text)
}

func (m *Model) renderTranscript() string {
	msgs := m.store.Messages()
	width := m.transcriptWidth()
	now := time.Now()

	if len(msgs) == 0 {
		var b strings.Builder
		b.WriteString(messageBodyStyle.Render("Welcome to Smart Document Chat!"))
		b.WriteString("\n\n")
		b.WriteString(sidebarItemStyle.Render("  Attach files with /attach, pick a workflow with /workflow <n>,"))
		b.WriteString("\n")
		b.WriteString(sidebarItemStyle.Render("  or just start typing. Suggested prompts:"))
		b.WriteString("\n")
		for i, p := range chat.SuggestedPrompts {
			b.WriteString(sidebarItemStyle.Render(fmt.Sprintf("    %d. %s", i+1, p)))
			b.WriteString("\n")
		}
		return lipgloss.NewStyle().Width(width).Render(b.String())
	}

	var b strings.Builder
	for i, msg := range msgs {
		var header string
		switch msg.Role {
		case chat.RoleUser:
			header = userHeaderStyle.Render(fmt.Sprintf("%d │ %s • %s", i+1, m.userName, relativeAge(msg.Timestamp, now)))
		default:
			header = assistantHeaderStyle.Render(fmt.Sprintf("%d │ AI Assistant • %s", i+1, relativeAge(msg.Timestamp, now)))
		}
		b.WriteString(header)
		b.WriteString("\n")
		b.WriteString(messageBodyStyle.Width(width).Render(msg.Content))
		b.WriteString("\n")
		for _, f := range msg.Files {
			b.WriteString(fileChipStyle.Render(fmt.Sprintf("📎 %s (%s)", f.Name, chat.FormatFileSize(f.Size))))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func (m *Model) renderSidebar() string {
	width := m.sidebarWidth()
	var b strings.Builder

	if m.sidebar == sidebarWorkflows {
		b.WriteString(sidebarTitleStyle.Render("Quick Workflows"))
		b.WriteString("\n")
		for i, wf := range chat.Workflows {
			b.WriteString(sidebarItemStyle.Render(fmt.Sprintf("%d. %s %s", i+1, wf.Icon, wf.Title)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(sidebarItemStyle.Render("/workflow <n> to run"))
	} else {
		b.WriteString(sidebarTitleStyle.Render("Chat History"))
		b.WriteString("\n")
		sessions := m.sortedSessions()
		if len(sessions) == 0 {
			b.WriteString(sidebarItemStyle.Render("No chat history yet"))
		}
		now := time.Now()
		current := m.store.CurrentSessionID()
		for i := range sessions {
			title := chat.DeriveTitle(&sessions[i])
			line := fmt.Sprintf("%d. %s (%d) %s", i+1, title, len(sessions[i].Messages), relativeAge(sessions[i].Timestamp, now))
			style := sidebarItemStyle
			if i == m.histIndex {
				style = sidebarSelectedStyle
			} else if sessions[i].ID == current {
				style = sidebarCurrentStyle
			}
			b.WriteString(style.Render(line))
			b.WriteString("\n")
		}
	}

	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(lipgloss.Color(colorBorder)).
		Render(b.String())
}

func (m *Model) renderPendingFiles(files []chat.UploadedFile) string {
	parts := make([]string, 0, len(files))
	for i, f := range files {
		parts = append(parts, fmt.Sprintf("%d:%s (%s)", i+1, f.Name, chat.FormatFileSize(f.Size)))
	}
	return fileChipStyle.Render("📎 pending: " + strings.Join(parts, "  ") + "  (/detach <n> to remove)")
}

func (m *Model) sidebarWidth() int {
	w := m.windowWidth / 4
	if w < 24 {
		w = 24
	}
	return w
}

func (m *Model) transcriptWidth() int {
	w := m.windowWidth - m.sidebarWidth() - 4
	if w < 40 {
		w = 40
	}
	return w
}
