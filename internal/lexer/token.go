package lexer

// Kind identifies the lexical class of a token.
type Kind int

const (
	End Kind = iota
	LeftBrace
	RightBrace
	LeftBracket
	RightBracket
	Comma
	Colon
	String
	Number
	True
	False
	Null
)

var kindNames = [...]string{
	End:          "end of input",
	LeftBrace:    "'{'",
	RightBrace:   "'}'",
	LeftBracket:  "'['",
	RightBracket: "']'",
	Comma:        "','",
	Colon:        "':'",
	String:       "string",
	Number:       "number",
	True:         "true",
	False:        "false",
	Null:         "null",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Token is a single lexical unit. Literal holds the decoded text for strings
// and the raw lexeme for numbers; it is empty for punctuation and keywords.
type Token struct {
	Kind    Kind
	Literal string
	Line    int
	Column  int
}
