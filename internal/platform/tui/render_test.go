package tui

import (
	"regexp"
	"testing"

	"github.com/vovakirdan/bigbrick/internal/core"
)

var ansiSeq = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColor(2, 0, "cd", core.ColorRed)
	s.SetHex(0, 1, '█', "#ff0000")
	s.SetHex(1, 1, '█', "#ff0000")
	s.SetHex(2, 1, '█', "#00ff00")

	got := ansiSeq.ReplaceAllString(RenderScreen(s), "")
	want := "abcd  \n███   "
	if got != want {
		t.Errorf("RenderScreen() text = %q, want %q", got, want)
	}
}

func TestSameStyle(t *testing.T) {
	tests := []struct {
		name string
		a, b core.Cell
		want bool
	}{
		{"both plain", core.Cell{Rune: 'a'}, core.Cell{Rune: 'b'}, true},
		{"palette differs", core.Cell{Color: core.ColorRed}, core.Cell{Color: core.ColorBlue}, false},
		{"same hex", core.Cell{Hex: "#112233"}, core.Cell{Hex: "#112233"}, true},
		{"hex differs", core.Cell{Hex: "#112233"}, core.Cell{Hex: "#332211"}, false},
		{"hex vs plain", core.Cell{Hex: "#112233"}, core.Cell{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sameStyle(tt.a, tt.b); got != tt.want {
				t.Errorf("sameStyle() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText() = %q, want %q", got, "  ab")
	}
	if got := centerText("toolong", 4); got != "toolong" {
		t.Errorf("centerText() = %q, want unchanged", got)
	}
	if got := centerText("10x20 · 5", 11); got != " 10x20 · 5" {
		t.Errorf("centerText() = %q, want rune-aware padding", got)
	}
}

func TestValidateNickname(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"plain", "alice", true},
		{"spaces trimmed", "  bob ", true},
		{"empty", "", false},
		{"blank", "   ", false},
		{"separator", "a;b", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := validateNickname(tt.input)
			if (msg == "") != tt.ok {
				t.Errorf("validateNickname(%q) = %q, want ok=%v", tt.input, msg, tt.ok)
			}
		})
	}
}
