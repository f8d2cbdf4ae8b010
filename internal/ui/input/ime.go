package input

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/bnema/osrview/internal/domain/entity"
)

// UTF16Len returns the length of s in UTF-16 code units, the unit the engine
// measures composition ranges in.
func UTF16Len(s string) uint32 {
	var n uint32
	for _, r := range s {
		n += uint32(utf16.RuneLen(r))
	}
	return n
}

// utf16Offset converts a byte offset inside s. Offsets past the end or in
// the middle of a rune snap to the following rune boundary.
func utf16Offset(s string, byteOff uint32) uint32 {
	if int(byteOff) >= len(s) {
		return UTF16Len(s)
	}
	var n uint32
	for i := 0; i < len(s); {
		if uint32(i) >= byteOff {
			return n
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		n += uint32(utf16.RuneLen(r))
		i += size
	}
	return n
}

// CompositionSelection converts the preedit cursor of ev into the UTF-16
// selection range the engine expects. Without a cursor the caret sits at the
// end of the text.
func CompositionSelection(ev IMEPreedit) entity.Range {
	if !ev.HasCursor {
		end := UTF16Len(ev.Text)
		return entity.Range{From: end, To: end}
	}
	from, to := ev.Cursor.From, ev.Cursor.To
	if from > to {
		from, to = to, from
	}
	return entity.Range{From: utf16Offset(ev.Text, from), To: utf16Offset(ev.Text, to)}
}
