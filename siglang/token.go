package siglang

type Token struct {
	Kind TokenKind
	Text string
	Pos  Pos
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenIdentifier
	TokenNumber
	TokenOperator
	TokenPunct
	TokenEOF
)

type Pos struct {
	Source *Source
	Line   int
	Column int
}
