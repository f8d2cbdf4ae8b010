package model

import (
	"strings"
	"unicode"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/osrview/internal/ui/input"
)

// Terminal key names that differ from the input package names.
var teaKeyNames = map[string]string{
	"pgup":   "pageup",
	"pgdown": "pagedown",
	" ":      "space",
}

var namedCodes = map[input.NamedKey]input.Code{
	input.KeyEnter:      input.CodeEnter,
	input.KeyTab:        input.CodeTab,
	input.KeySpace:      input.CodeSpace,
	input.KeyBackspace:  input.CodeBackspace,
	input.KeyEscape:     input.CodeEscape,
	input.KeyDelete:     input.CodeDelete,
	input.KeyInsert:     input.CodeInsert,
	input.KeyHome:       input.CodeHome,
	input.KeyEnd:        input.CodeEnd,
	input.KeyPageUp:     input.CodePageUp,
	input.KeyPageDown:   input.CodePageDown,
	input.KeyArrowLeft:  input.CodeArrowLeft,
	input.KeyArrowRight: input.CodeArrowRight,
	input.KeyArrowUp:    input.CodeArrowUp,
	input.KeyArrowDown:  input.CodeArrowDown,
	input.KeyF1:         input.CodeF1,
	input.KeyF2:         input.CodeF2,
	input.KeyF3:         input.CodeF3,
	input.KeyF4:         input.CodeF4,
	input.KeyF5:         input.CodeF5,
	input.KeyF6:         input.CodeF6,
	input.KeyF7:         input.CodeF7,
	input.KeyF8:         input.CodeF8,
	input.KeyF9:         input.CodeF9,
	input.KeyF10:        input.CodeF10,
	input.KeyF11:        input.CodeF11,
	input.KeyF12:        input.CodeF12,
}

// US layout: punctuation keys and the shifted character on each key.
var punctuationCodes = map[rune]input.Code{
	'-': input.CodeMinus, '=': input.CodeEqual,
	'[': input.CodeBracketLeft, ']': input.CodeBracketRight,
	'\\': input.CodeBackslash, ';': input.CodeSemicolon,
	'\'': input.CodeQuote, '`': input.CodeBackquote,
	',': input.CodeComma, '.': input.CodePeriod, '/': input.CodeSlash,
}

var shiftedCodes = map[rune]input.Code{
	'!': input.CodeDigit1, '@': input.CodeDigit2, '#': input.CodeDigit3,
	'$': input.CodeDigit4, '%': input.CodeDigit5, '^': input.CodeDigit6,
	'&': input.CodeDigit7, '*': input.CodeDigit8, '(': input.CodeDigit9,
	')': input.CodeDigit0, '_': input.CodeMinus, '+': input.CodeEqual,
	'{': input.CodeBracketLeft, '}': input.CodeBracketRight,
	'|': input.CodeBackslash, ':': input.CodeSemicolon,
	'"': input.CodeQuote, '~': input.CodeBackquote,
	'<': input.CodeComma, '>': input.CodePeriod, '?': input.CodeSlash,
}

// translateKey turns a terminal key into a press. Terminals do not report
// releases, so the caller synthesizes one right after.
func translateKey(msg tea.KeyMsg) (input.KeyPressed, bool) {
	if msg.Type == tea.KeyRunes {
		if msg.Paste || len(msg.Runes) == 0 {
			return input.KeyPressed{}, false
		}
		text := string(msg.Runes)
		ev := input.KeyPressed{Key: input.Character(text), Text: text}
		if len(msg.Runes) == 1 {
			ev.Physical, ev.Modifiers = runeCode(msg.Runes[0])
		}
		if msg.Alt {
			ev.Modifiers |= input.ModAlt
			ev.Text = ""
		}
		return ev, true
	}

	name := msg.String()
	var mods input.Modifiers
	for {
		prefix, rest, found := strings.Cut(name, "+")
		if !found || rest == "" {
			break
		}
		switch prefix {
		case "ctrl":
			mods |= input.ModControl
		case "alt":
			mods |= input.ModAlt
		case "shift":
			mods |= input.ModShift
		default:
			return input.KeyPressed{}, false
		}
		name = rest
	}
	if alias, ok := teaKeyNames[name]; ok {
		name = alias
	}
	key, ok := input.ParseKey(name)
	if !ok {
		return input.KeyPressed{}, false
	}

	ev := input.KeyPressed{Key: key, Modifiers: mods}
	if key.Named != input.NamedNone {
		ev.Physical = namedCodes[key.Named]
		if key.Named == input.KeySpace && mods&(input.ModControl|input.ModAlt) == 0 {
			ev.Text = " "
		}
		return ev, true
	}
	code, shift := runeCode([]rune(key.Char)[0])
	ev.Physical = code
	ev.Modifiers |= shift
	return ev, true
}

func runeCode(r rune) (input.Code, input.Modifiers) {
	switch {
	case r >= 'a' && r <= 'z':
		return input.CodeKeyA + input.Code(r-'a'), 0
	case r >= 'A' && r <= 'Z':
		return input.CodeKeyA + input.Code(r-'A'), input.ModShift
	case r == '0':
		return input.CodeDigit0, 0
	case r >= '1' && r <= '9':
		return input.CodeDigit1 + input.Code(r-'1'), 0
	}
	if c, ok := punctuationCodes[r]; ok {
		return c, 0
	}
	if c, ok := shiftedCodes[r]; ok {
		return c, input.ModShift
	}
	if unicode.IsUpper(r) {
		return input.CodeUnidentified, input.ModShift
	}
	return input.CodeUnidentified, 0
}

// release builds the release matching a press.
func release(ev input.KeyPressed) input.KeyReleased {
	key := ev.Key
	if key.Named == input.NamedNone && utf8.RuneCountInString(key.Char) > 1 {
		key = input.Character(string([]rune(key.Char)[0]))
	}
	return input.KeyReleased{
		Key:       key,
		Physical:  ev.Physical,
		Location:  ev.Location,
		Modifiers: ev.Modifiers,
	}
}
