package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"docchat/internal/chat"
	"docchat/internal/tui"

	"github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const version = "1.0.0"

var (
	flagStateDir string
	flagConfig   string
)

func buildStore(cfg chat.Config) *chat.Store {
	stateDir := flagStateDir
	if stateDir == "" {
		stateDir = cfg.StateDir
	}
	return chat.New(
		chat.NewFileStateStore(stateDir),
		chat.WithDelayRange(
			time.Duration(cfg.DelayMinMs)*time.Millisecond,
			time.Duration(cfg.DelayMaxMs)*time.Millisecond,
		),
		chat.WithLogger(chat.NewLogger(os.Stderr)),
	)
}

func loadConfig() (chat.Config, error) {
	path := flagConfig
	if path == "" {
		path = chat.DefaultConfigPath()
	}
	return chat.LoadConfig(path)
}

func main() {
	root := &cobra.Command{
		Use:     "docchat",
		Short:   "Smart Document Chat - local demo chat with mock responses",
		Long:    "docchat is a local chat demo: sessions, file attachments and canned assistant replies, persisted to a single JSON snapshot on disk.\n\nRun without arguments for the interactive TUI.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store := buildStore(cfg)
			p := tea.NewProgram(tui.New(store, cfg.UserName))
			if _, err := p.Run(); err != nil {
				return err
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&flagStateDir, "state-dir", "", "override the snapshot directory")
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default "+chat.DefaultConfigPath()+")")

	titleStyle := lipgloss.NewStyle().Bold(true)
	mutedStyle := lipgloss.NewStyle().Faint(true)

	sessionsCmd := &cobra.Command{
		Use:   "sessions",
		Short: "List stored chat sessions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store := buildStore(cfg)

			sessions := store.Sessions()
			sort.Slice(sessions, func(i, j int) bool {
				return sessions[i].Timestamp > sessions[j].Timestamp
			})
			if cfg.HistoryLimit > 0 && len(sessions) > cfg.HistoryLimit {
				sessions = sessions[:cfg.HistoryLimit]
			}

			current := store.CurrentSessionID()
			for i := range sessions {
				marker := "  "
				if sessions[i].ID == current {
					marker = "* "
				}
				line := fmt.Sprintf("%s%s", marker, titleStyle.Render(chat.DeriveTitle(&sessions[i])))
				meta := fmt.Sprintf("  %d message(s), %s", len(sessions[i].Messages), time.UnixMilli(sessions[i].Timestamp).Format("2006-01-02 15:04"))
				if summary := chat.DeriveSummary(&sessions[i]); summary != "" {
					meta += "  — " + summary
				}
				fmt.Println(line)
				fmt.Println(mutedStyle.Render(meta))
			}
			return nil
		},
	}
	root.AddCommand(sessionsCmd)

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the persisted chat snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			stateDir := flagStateDir
			if stateDir == "" {
				stateDir = cfg.StateDir
			}
			if err := chat.NewFileStateStore(stateDir).Reset(); err != nil {
				return err
			}
			fmt.Println("chat state cleared")
			return nil
		},
	}
	root.AddCommand(resetCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
