// tokens.go defines token types for shortcode scanning.
package shortcode

// TokenType represents token types for [tag]...[/tag] syntax.
type TokenType int

const (
	TokenText      TokenType = iota // plain text between tags
	TokenOpenTag                    // [tag] or [tag attrs]
	TokenCloseTag                   // [/tag]
	TokenSelfClose                  // [tag/] or [tag attrs /]
)

func (t TokenType) String() string {
	switch t {
	case TokenText:
		return "text"
	case TokenOpenTag:
		return "open"
	case TokenCloseTag:
		return "close"
	case TokenSelfClose:
		return "self-close"
	default:
		return "unknown"
	}
}

// Token represents a single token from shortcode scanning.
type Token struct {
	Type     TokenType
	Name     string // set for OpenTag, CloseTag, SelfClose
	RawAtts  string // attribute text between the name and ']' (OpenTag, SelfClose)
	Text     string // set for Text tokens; the original tag text otherwise
	Position int    // byte offset in original input
	End      int    // byte offset just past the token
}
