package model

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/osrview/internal/ui/input"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want input.KeyPressed
	}{
		{
			name: "lowercase letter",
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")},
			want: input.KeyPressed{Key: input.Character("a"), Physical: input.CodeKeyA, Text: "a"},
		},
		{
			name: "uppercase letter holds shift",
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Q")},
			want: input.KeyPressed{Key: input.Character("Q"), Physical: input.CodeKeyQ, Modifiers: input.ModShift, Text: "Q"},
		},
		{
			name: "shifted digit",
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("!")},
			want: input.KeyPressed{Key: input.Character("!"), Physical: input.CodeDigit1, Modifiers: input.ModShift, Text: "!"},
		},
		{
			name: "alt letter produces no text",
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true},
			want: input.KeyPressed{Key: input.Character("x"), Physical: input.CodeKeyX, Modifiers: input.ModAlt},
		},
		{
			name: "enter",
			msg:  tea.KeyMsg{Type: tea.KeyEnter},
			want: input.KeyPressed{Key: input.Named(input.KeyEnter), Physical: input.CodeEnter},
		},
		{
			name: "page down alias",
			msg:  tea.KeyMsg{Type: tea.KeyPgDown},
			want: input.KeyPressed{Key: input.Named(input.KeyPageDown), Physical: input.CodePageDown},
		},
		{
			name: "control letter",
			msg:  tea.KeyMsg{Type: tea.KeyCtrlA},
			want: input.KeyPressed{Key: input.Character("a"), Physical: input.CodeKeyA, Modifiers: input.ModControl},
		},
		{
			name: "shift tab",
			msg:  tea.KeyMsg{Type: tea.KeyShiftTab},
			want: input.KeyPressed{Key: input.Named(input.KeyTab), Physical: input.CodeTab, Modifiers: input.ModShift},
		},
		{
			name: "function key",
			msg:  tea.KeyMsg{Type: tea.KeyF12},
			want: input.KeyPressed{Key: input.Named(input.KeyF12), Physical: input.CodeF12},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translateKey(tt.msg)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTranslateKeyRejectsPaste(t *testing.T) {
	_, ok := translateKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("pasted"), Paste: true})
	assert.False(t, ok)
}

func TestReleaseMirrorsPress(t *testing.T) {
	press := input.KeyPressed{
		Key:       input.Character("é"),
		Physical:  input.CodeKeyE,
		Modifiers: input.ModAlt,
		Text:      "é",
	}
	assert.Equal(t, input.KeyReleased{
		Key:       input.Character("é"),
		Physical:  input.CodeKeyE,
		Modifiers: input.ModAlt,
	}, release(press))
}
