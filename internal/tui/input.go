package tui

import "unicode/utf8"

// maxInputLen is the maximum number of runes allowed in form inputs.
const maxInputLen = 200

// editRune processes a keystroke for inline text editing.
// Handles backspace (rune-aware) and single printable characters.
// Returns the text unchanged for non-printable keys (enter, esc, etc.).
// Input is clamped to maxInputLen runes.
func editRune(text string, key string) string {
	switch key {
	case "backspace":
		if len(text) > 0 {
			runes := []rune(text)
			return string(runes[:len(runes)-1])
		}
		return text
	default:
		if utf8.RuneCountInString(key) == 1 {
			if utf8.RuneCountInString(text) >= maxInputLen {
				return text
			}
			return text + key
		}
		return text
	}
}

// insertText appends pasted text, clamped to maxInputLen runes.
// Control characters such as newlines are dropped.
func insertText(text, paste string) string {
	n := utf8.RuneCountInString(text)
	var b []rune
	for _, r := range paste {
		if n >= maxInputLen {
			break
		}
		if r < ' ' || r == 0x7f {
			continue
		}
		b = append(b, r)
		n++
	}
	return text + string(b)
}

// editDigits is editRune restricted to ASCII digits, capped at maxLen.
func editDigits(text, key string, maxLen int) string {
	if key == "backspace" {
		return editRune(text, key)
	}
	if len(key) != 1 || key[0] < '0' || key[0] > '9' || len(text) >= maxLen {
		return text
	}
	return text + key
}

// truncateToHeight limits output to maxLines newline-delimited lines.
// Returns the original string if it fits or maxLines is <= 0.
func truncateToHeight(s string, maxLines int) string {
	if maxLines <= 0 {
		return s
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			n++
			if n >= maxLines {
				return s[:i+1]
			}
		}
	}
	return s
}

// truncStr truncates a string to maxLen runes, appending an ellipsis if needed.
func truncStr(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen-1]) + "…"
}
