// atts.go parses shortcode attribute text into key/value pairs.
package shortcode

import (
	"maps"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Atts holds the attributes of one shortcode occurrence.
type Atts struct {
	Named      map[string]string // lowercased keys
	Positional []string          // bare values with no key, in order
}

// Get returns the named attribute value.
func (a Atts) Get(key string) (string, bool) {
	v, ok := a.Named[strings.ToLower(key)]
	return v, ok
}

// Flag reports whether a bare token equal to name (case-insensitive) was given,
// as in [maplayer control].
func (a Atts) Flag(name string) bool {
	for _, p := range a.Positional {
		if strings.EqualFold(p, name) {
			return true
		}
	}
	return false
}

// Merge returns a copy of a where every key missing from a takes its value
// from defaults. Keys not present in defaults are kept.
func (a Atts) Merge(defaults map[string]string) Atts {
	named := make(map[string]string, len(defaults)+len(a.Named))
	maps.Copy(named, defaults)
	maps.Copy(named, a.Named)
	return Atts{
		Named:      named,
		Positional: append([]string(nil), a.Positional...),
	}
}

// quoteReplacer maps the typographic quotes and entities a rich-text editor
// substitutes for plain quotes.
var quoteReplacer = strings.NewReplacer(
	"&#8220;", `"`,
	"&Prime;", `"`,
	"&#8221;", `"`,
	"&#8243;", `"`,
	"&#8217;", `'`,
	"&#8242;", `'`,
	"&nbsp;&raquo;", `"`,
	"&#187;", `"`,
	"&quot;", `"`,
)

// NormalizeQuotes replaces smart-quote and quote-entity sequences with plain
// ASCII quotes so the attribute text tokenizes.
func NormalizeQuotes(text string) string {
	return quoteReplacer.Replace(text)
}

// ParseAtts parses attribute text. Recognized forms, tried in order at each
// position:
//   - key="value" and key='value' (value may contain spaces)
//   - key=value (value has no whitespace or quotes)
//   - "value" and 'value' (positional)
//   - any other run of non-space characters (positional)
//
// Every form must be followed by whitespace or the end of the text.
func ParseAtts(text string) Atts {
	text = strings.Map(func(r rune) rune {
		if r == '\u00a0' || r == '\u200b' {
			return ' '
		}
		return r
	}, text)

	atts := Atts{Named: make(map[string]string)}
	pos := 0

	for {
		pos = skipSpace(text, pos)
		if pos >= len(text) {
			break
		}

		if key, value, end, ok := parsePair(text, pos); ok {
			atts.Named[strings.ToLower(key)] = value
			pos = end
			continue
		}

		if value, end, ok := parseQuoted(text, pos); ok {
			atts.Positional = append(atts.Positional, value)
			pos = end
			continue
		}

		end := pos
		for end < len(text) {
			r, size := utf8.DecodeRuneInString(text[end:])
			if unicode.IsSpace(r) {
				break
			}
			end += size
		}
		atts.Positional = append(atts.Positional, text[pos:end])
		pos = end
	}

	return atts
}

// parsePair parses key=value at pos, tolerating whitespace around '='.
func parsePair(text string, pos int) (key, value string, end int, ok bool) {
	keyEnd := pos
	for keyEnd < len(text) && isKeyChar(text[keyEnd]) {
		keyEnd++
	}
	if keyEnd == pos {
		return "", "", pos, false
	}

	p := skipSpace(text, keyEnd)
	if p >= len(text) || text[p] != '=' {
		return "", "", pos, false
	}
	p = skipSpace(text, p+1)
	if p >= len(text) {
		return "", "", pos, false
	}

	if text[p] == '"' || text[p] == '\'' {
		value, end, ok = parseQuoted(text, p)
		if !ok {
			return "", "", pos, false
		}
		return text[pos:keyEnd], value, end, true
	}

	valueEnd := p
	for valueEnd < len(text) {
		r, size := utf8.DecodeRuneInString(text[valueEnd:])
		if unicode.IsSpace(r) || r == '"' || r == '\'' {
			break
		}
		valueEnd += size
	}
	if valueEnd == p || !atBoundary(text, valueEnd) {
		return "", "", pos, false
	}
	return text[pos:keyEnd], text[p:valueEnd], valueEnd, true
}

// parseQuoted parses a "..." or '...' value at pos. The closing quote must
// be followed by whitespace or the end of the text.
func parseQuoted(text string, pos int) (string, int, bool) {
	if pos >= len(text) || (text[pos] != '"' && text[pos] != '\'') {
		return "", pos, false
	}
	quote := text[pos]
	closing := strings.IndexByte(text[pos+1:], quote)
	if closing < 0 {
		return "", pos, false
	}
	closing += pos + 1
	if !atBoundary(text, closing+1) {
		return "", pos, false
	}
	return text[pos+1 : closing], closing + 1, true
}

func atBoundary(text string, pos int) bool {
	if pos >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[pos:])
	return unicode.IsSpace(r)
}

func skipSpace(text string, pos int) int {
	for pos < len(text) {
		r, size := utf8.DecodeRuneInString(text[pos:])
		if !unicode.IsSpace(r) {
			break
		}
		pos += size
	}
	return pos
}

// isKeyChar returns true if c is valid in an attribute key.
func isKeyChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-' || c == '_'
}
