package tui

import "testing"

func TestParseCommand(t *testing.T) {
	cases := []struct {
		in       string
		wantOK   bool
		wantName string
		wantArgs int
	}{
		{"/help", true, "help", 0},
		{"  /attach notes.txt report.pdf  ", true, "attach", 2},
		{"/EDIT 2 new text", true, "edit", 3},
		{"plain message", false, "", 0},
		{"/", false, "", 0},
		{"   ", false, "", 0},
	}
	for _, c := range cases {
		got, ok := parseCommand(c.in)
		if ok != c.wantOK {
			t.Fatalf("parseCommand(%q) ok = %v, want %v", c.in, ok, c.wantOK)
		}
		if !ok {
			continue
		}
		if got.name != c.wantName {
			t.Fatalf("parseCommand(%q) name = %q, want %q", c.in, got.name, c.wantName)
		}
		if len(got.args) != c.wantArgs {
			t.Fatalf("parseCommand(%q) args = %d, want %d", c.in, len(got.args), c.wantArgs)
		}
	}
}

func TestCommandRest(t *testing.T) {
	c, ok := parseCommand("/edit 3 hello brave new world")
	if !ok {
		t.Fatalf("parse failed")
	}
	if got := c.rest(1); got != "hello brave new world" {
		t.Fatalf("rest(1) = %q", got)
	}
	if got := c.rest(10); got != "" {
		t.Fatalf("rest past end = %q", got)
	}
}

func TestPickIndex(t *testing.T) {
	if i, ok := pickIndex("2", 5); !ok || i != 1 {
		t.Fatalf("pickIndex(2,5) = %d,%v", i, ok)
	}
	for _, bad := range []string{"0", "6", "-1", "x", ""} {
		if _, ok := pickIndex(bad, 5); ok {
			t.Fatalf("pickIndex(%q,5) accepted", bad)
		}
	}
}
