package rst

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Separator is the rst escaped space. It renders as nothing but ends an
// inline markup run that would otherwise merge with the following text.
const Separator = `\ `

// Escape backslash-escapes characters that would start inline markup.
// Underscores are escaped only where they end a word, because only there
// they turn the word into a hyperlink reference.
func Escape(s string) string {
	if !strings.ContainsAny(s, "\\*`|_") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + 8)
	for i, r := range s {
		switch r {
		case '\\', '*', '`', '|':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case '_':
			next, _ := utf8.DecodeRuneInString(s[i+1:])
			if i+1 >= len(s) || !isWordRune(next) {
				sb.WriteString(`\_`)
			} else {
				sb.WriteRune(r)
			}
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// EscapeRoleUnderscores escapes underscores outside back-quoted segments
// that end a word. Text inside back-quotes is left untouched.
func EscapeRoleUnderscores(s string) string {
	var sb strings.Builder
	inQuote := false
	for i, r := range s {
		switch {
		case r == '`':
			inQuote = !inQuote
			sb.WriteRune(r)
		case r == '_' && !inQuote:
			prev, _ := utf8.DecodeLastRuneInString(s[:i])
			next, _ := utf8.DecodeRuneInString(s[i+1:])
			if (i+1 >= len(s) || !isWordRune(next)) && (i == 0 || prev != '\\') {
				sb.WriteString(`\_`)
			} else {
				sb.WriteRune(r)
			}
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// escapeInterpreted escapes text placed between back-quotes of a role or
// hyperlink reference.
func escapeInterpreted(s string) string {
	r := strings.NewReplacer(`\`, `\\`, "`", "\\`", "<", `\<`, ">", `\>`)
	return r.Replace(s)
}

// unescapeBrackets reverses backslash and entity escaping of angle brackets.
func unescapeBrackets(s string) string {
	r := strings.NewReplacer(`\<`, "<", `\>`, ">", "&lt;", "<", "&gt;", ">")
	return r.Replace(s)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// endStringFollowers may directly follow the end of an inline markup run.
const endStringFollowers = `-.,:;!?\/'")]}>`

// startStringPrecursors may directly precede the start of an inline markup run.
const startStringPrecursors = `-:/'"<([{`

func allowedAfterMarkup(next string) bool {
	r, _ := utf8.DecodeRuneInString(next)
	if r == utf8.RuneError {
		return true
	}
	return unicode.IsSpace(r) || strings.ContainsRune(endStringFollowers, r) || unicode.Is(unicode.Pe, r) || unicode.Is(unicode.Pf, r)
}

func allowedBeforeMarkup(prev string) bool {
	r, _ := utf8.DecodeLastRuneInString(prev)
	if r == utf8.RuneError {
		return true
	}
	return unicode.IsSpace(r) || strings.ContainsRune(startStringPrecursors, r) || unicode.Is(unicode.Ps, r) || unicode.Is(unicode.Pi, r)
}

// needsSeparator reports whether a Separator must be placed between two
// adjacent fragments so that markup at the seam is still recognized.
func needsSeparator(prev string, prevMarkup bool, next string, nextMarkup bool) bool {
	if prev == "" || next == "" {
		return false
	}
	if prevMarkup && !allowedAfterMarkup(next) {
		return true
	}
	if nextMarkup && !allowedBeforeMarkup(prev) {
		return true
	}
	return false
}
