// extract.go finds top-level occurrences of a single shortcode tag.
package shortcode

import "strings"

// Match is one occurrence of a shortcode found by Replace or ExtractAll.
type Match struct {
	Tag         string
	RawAtts     string // attribute text as written, unparsed
	Inner       string // content between the open and close tags
	SelfClosing bool
	Closed      bool // a matching [/tag] was found
	Position    int  // byte offset of the opening '['
	End         int  // byte offset just past the match
}

// Atts parses the match's attribute text.
func (m Match) Atts() Atts {
	return ParseAtts(m.RawAtts)
}

// Replace calls fn for every top-level occurrence of tag in content, left to
// right, and substitutes the match with the returned string.
//
// The inner content of [tag]...[/tag] runs to the first [/tag]; the same tag
// does not nest. An open tag with no close tag anywhere after it matches on
// its own with empty content. An escaped occurrence [[tag]] is not passed to
// fn and is replaced by its text without the outer brackets.
func Replace(content, tag string, fn func(Match) string) string {
	tokens := Tokenize(content, tag)
	closes := nextCloseTags(tokens)

	var sb strings.Builder
	last := 0

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if tok.Type != TokenOpenTag && tok.Type != TokenSelfClose {
			continue
		}

		m := Match{
			Tag:         tok.Name,
			RawAtts:     tok.RawAtts,
			SelfClosing: tok.Type == TokenSelfClose,
			Position:    tok.Position,
			End:         tok.End,
		}

		if j := closes[i]; tok.Type == TokenOpenTag && j >= 0 {
			m.Inner = content[tok.End:tokens[j].Position]
			m.End = tokens[j].End
			m.Closed = true
			i = j
		}

		if isEscaped(content, m, last) {
			sb.WriteString(content[last : m.Position-1])
			sb.WriteString(content[m.Position:m.End])
			last = m.End + 1
			continue
		}

		sb.WriteString(content[last:m.Position])
		sb.WriteString(fn(m))
		last = m.End
	}

	sb.WriteString(content[last:])
	return sb.String()
}

// nextCloseTags returns, for each token, the index of the first close tag
// after it, or -1 when there is none.
func nextCloseTags(tokens []Token) []int {
	closes := make([]int, len(tokens))
	next := -1
	for i := len(tokens) - 1; i >= 0; i-- {
		closes[i] = next
		if tokens[i].Type == TokenCloseTag {
			next = i
		}
	}
	return closes
}

// ExtractAll returns every top-level occurrence of tag in content, in order,
// along with the content that remains once they are removed.
func ExtractAll(content, tag string) ([]Match, string) {
	var matches []Match
	residual := Replace(content, tag, func(m Match) string {
		matches = append(matches, m)
		return ""
	})
	return matches, strings.TrimSpace(residual)
}

// Has reports whether content holds at least one unescaped occurrence of tag.
func Has(content, tag string) bool {
	found := false
	Replace(content, tag, func(Match) string {
		found = true
		return ""
	})
	return found
}

// isEscaped reports whether m is wrapped as [[tag ...]] with the outer
// brackets not already consumed by an earlier match.
func isEscaped(content string, m Match, last int) bool {
	return m.Position-1 >= last &&
		content[m.Position-1] == '[' &&
		m.End < len(content) &&
		content[m.End] == ']'
}
