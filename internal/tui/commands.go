package tui

import (
	"strconv"
	"strings"
)

// A terminal has no drag-and-drop or dropdowns, so attachments, edits and
// selections come in as slash commands typed into the input box.
type command struct {
	name string
	args []string
}

func parseCommand(input string) (command, bool) {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "/") {
		return command{}, false
	}
	fields := strings.Fields(input[1:])
	if len(fields) == 0 {
		return command{}, false
	}
	return command{name: strings.ToLower(fields[0]), args: fields[1:]}, true
}

// rest joins args from i onward, for commands whose last argument is free
// text (e.g. /edit 2 new content here).
func (c command) rest(i int) string {
	if i >= len(c.args) {
		return ""
	}
	return strings.Join(c.args[i:], " ")
}

// pickIndex resolves a 1-based ordinal argument against a list length.
func pickIndex(arg string, n int) (int, bool) {
	v, err := strconv.Atoi(arg)
	if err != nil || v < 1 || v > n {
		return 0, false
	}
	return v - 1, true
}

const helpText = `commands:
  /attach <path>      stage a .txt, .pdf or .docx file for the next message
  /detach <n>         unstage attachment n
  /new                start a new chat
  /edit <n> <text>    rewrite your message n (does not resend)
  /workflow <n>       send workflow prompt n
  /suggest <n>        send suggested prompt n
  /project <n>        switch project context
  /source <n>         switch knowledge source
  /delete <n>         delete session n from the history list
  /help               show this help`
