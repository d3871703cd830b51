// tokenizer.go implements scanning for [tag]...[/tag] shortcode syntax.
package shortcode

import "strings"

// Tokenize scans input for shortcode syntax and returns a token stream.
// Recognized forms:
//   - [tag] or [tag attrs] - open tag
//   - [/tag] - close tag
//   - [tag/] or [tag attrs /] - self-closing
//
// When names are given only those tags are recognized and every other
// bracket is text. Names are matched case-sensitively.
func Tokenize(input string, names ...string) []Token {
	var tokens []Token
	brackets := bracketIndex{input: input}
	pos := 0
	textStart := 0

	for pos < len(input) {
		if input[pos] != '[' {
			pos++
			continue
		}

		token, ok := parseTag(input, pos, names, &brackets)
		if !ok {
			// Not a recognized tag - treat '[' as text
			pos++
			continue
		}

		if pos > textStart {
			tokens = append(tokens, Token{
				Type:     TokenText,
				Text:     input[textStart:pos],
				Position: textStart,
				End:      pos,
			})
		}

		tokens = append(tokens, token)
		pos = token.End
		textStart = pos
	}

	if textStart < len(input) {
		tokens = append(tokens, Token{
			Type:     TokenText,
			Text:     input[textStart:],
			Position: textStart,
			End:      len(input),
		})
	}

	return tokens
}

// bracketIndex finds the next ']' at or after a position. Lookups must be
// made at non-decreasing positions; each byte of input is scanned once.
type bracketIndex struct {
	input string
	next  int  // first ']' at or after the last lookup
	found bool // next is set
	done  bool // no ']' remains
}

func (b *bracketIndex) from(pos int) int {
	if b.done {
		return -1
	}
	if b.found && b.next >= pos {
		return b.next
	}
	i := strings.IndexByte(b.input[pos:], ']')
	if i < 0 {
		b.done = true
		return -1
	}
	b.next, b.found = pos+i, true
	return b.next
}

// parseTag attempts to parse a tag starting at pos, which must hold '['.
func parseTag(input string, pos int, names []string, brackets *bracketIndex) (Token, bool) {
	start := pos
	pos++ // skip '['

	isClose := false
	if pos < len(input) && input[pos] == '/' {
		isClose = true
		pos++
	}

	nameStart := pos
	for pos < len(input) && isNameChar(input[pos]) {
		pos++
	}
	if pos == nameStart {
		return Token{}, false
	}
	name := input[nameStart:pos]
	if len(names) > 0 && !contains(names, name) {
		return Token{}, false
	}

	if isClose {
		if pos >= len(input) || input[pos] != ']' {
			return Token{}, false
		}
		pos++
		return Token{
			Type:     TokenCloseTag,
			Name:     name,
			Text:     input[start:pos],
			Position: start,
			End:      pos,
		}, true
	}

	// Attributes run to the first ']'; a '/' right before it self-closes.
	attrStart := pos
	end := brackets.from(pos)
	if end < 0 {
		return Token{}, false
	}

	token := Token{
		Type:     TokenOpenTag,
		Name:     name,
		RawAtts:  input[attrStart:end],
		Text:     input[start : end+1],
		Position: start,
		End:      end + 1,
	}
	if end > attrStart && input[end-1] == '/' {
		token.Type = TokenSelfClose
		token.RawAtts = input[attrStart : end-1]
	}

	return token, true
}

// isNameChar returns true if c is valid in a shortcode name.
func isNameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
