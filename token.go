package lsystem

// Token is a single grammar symbol. Rules are keyed by single ASCII bytes;
// other bytes of a string pass through expansion untouched.
type Token byte

// Action tokens understood by the turtle interpreter.
const (
	Forward     Token = 'F'
	Move        Token = 'f'
	TurnLeft    Token = '+'
	TurnRight   Token = '-'
	Reverse     Token = '|'
	PushState   Token = '['
	PopState    Token = ']'
	actionChars       = "Ff+-|[]"
)

type TokenSet map[Token]struct{}

func NewTokenSet(s string) TokenSet {
	ts := make(TokenSet, len(s))
	for i := 0; i < len(s); i++ {
		ts.Add(Token(s[i]))
	}
	return ts
}

func (ts TokenSet) Contains(t Token) bool {
	_, exists := ts[t]
	return exists
}

func (ts TokenSet) Add(t Token) {
	ts[t] = struct{}{}
}

func (ts TokenSet) AsSlice() []Token {
	slice := make([]Token, 0, len(ts))
	for t := range ts {
		slice = append(slice, t)
	}
	return slice
}

// ActionTokens is the fixed turtle alphabet.
var ActionTokens = NewTokenSet(actionChars)

func IsAction(t Token) bool {
	return ActionTokens.Contains(t)
}
