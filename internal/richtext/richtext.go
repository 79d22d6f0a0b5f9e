// Package richtext tokenizes the backslash control sequences embedded in
// description text: \C[n] colour, \I[n] icon, \{ and \} size steps, and \\
// for a literal backslash. Unknown codes are dropped together with their
// bracketed parameter.
package richtext

import (
	"strconv"
	"strings"
	"unicode"
)

type Kind int

const (
	Text Kind = iota
	Color
	Icon
	Larger
	Smaller
)

type Token struct {
	Kind  Kind
	Text  string
	Param int
}

func Parse(s string) []Token {
	var (
		out []Token
		buf strings.Builder
	)
	flush := func() {
		if buf.Len() > 0 {
			out = append(out, Token{Kind: Text, Text: buf.String()})
			buf.Reset()
		}
	}

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '\\' || i+1 >= len(runes) {
			buf.WriteRune(r)
			continue
		}
		i++
		next := runes[i]
		switch {
		case next == '\\':
			buf.WriteRune('\\')
		case next == '{':
			flush()
			out = append(out, Token{Kind: Larger})
		case next == '}':
			flush()
			out = append(out, Token{Kind: Smaller})
		case unicode.IsLetter(next) && next < unicode.MaxASCII:
			j := i
			for j < len(runes) && runes[j] < unicode.MaxASCII && unicode.IsLetter(runes[j]) {
				j++
			}
			code := strings.ToUpper(string(runes[i:j]))
			param, end, ok := bracketParam(runes, j)
			if ok {
				j = end
			}
			i = j - 1
			switch code {
			case "C":
				flush()
				out = append(out, Token{Kind: Color, Param: param})
			case "I":
				flush()
				out = append(out, Token{Kind: Icon, Param: param})
			}
		default:
			// Single punctuation codes (\. \| \! and friends) only pace
			// message playback; they draw nothing.
		}
	}
	flush()
	return out
}

// bracketParam reads "[digits]" starting at runes[i].
func bracketParam(runes []rune, i int) (int, int, bool) {
	if i >= len(runes) || runes[i] != '[' {
		return 0, i, false
	}
	j := i + 1
	for j < len(runes) && unicode.IsDigit(runes[j]) {
		j++
	}
	if j >= len(runes) || runes[j] != ']' {
		return 0, i, false
	}
	n, err := strconv.Atoi(string(runes[i+1 : j]))
	if err != nil {
		return 0, i, false
	}
	return n, j + 1, true
}

// Plain returns only the visible text of s.
func Plain(s string) string {
	var b strings.Builder
	for _, tok := range Parse(s) {
		if tok.Kind == Text {
			b.WriteString(tok.Text)
		}
	}
	return b.String()
}
