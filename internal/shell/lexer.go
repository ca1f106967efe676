package shell

import "strings"

// redirectForms lists the recognized redirection spellings, longest
// first so matching is greedy: "2>>" must win over "2>", ">>"
// over ">".
var redirectForms = []struct {
	text  string
	spec  RedirSpec
}{
	{"2>>", RedirSpec{FD: 2, Mode: RedirAppend}},
	{"1>>", RedirSpec{FD: 1, Mode: RedirAppend}},
	{">>", RedirSpec{FD: 1, Mode: RedirAppend}},
	{"2>", RedirSpec{FD: 2, Mode: RedirTruncate}},
	{"1>", RedirSpec{FD: 1, Mode: RedirTruncate}},
	{">", RedirSpec{FD: 1, Mode: RedirTruncate}},
}

// Tokenize turns a raw input line into an ordered token sequence,
// applying POSIX-style quoting and escaping rules (spec.md §4.2).
func Tokenize(line string) ([]Token, error) {
	lx := &lexer{line: line}
	return lx.run()
}

type lexer struct {
	line    string
	pos     int
	tokens  []Token
	current strings.Builder
	haveWord bool // distinguishes "" (empty word seen) from "nothing pending"
}

func (lx *lexer) run() ([]Token, error) {
	for lx.pos < len(lx.line) {
		ch := lx.line[lx.pos]

		switch {
		case ch == '\'':
			if err := lx.readSingleQuoted(); err != nil {
				return nil, err
			}
		case ch == '"':
			if err := lx.readDoubleQuoted(); err != nil {
				return nil, err
			}
		case ch == '\\':
			lx.readEscape()
		case ch == ' ' || ch == '\t':
			lx.flushWord()
			lx.pos++
		case ch == '|':
			lx.flushWord()
			lx.tokens = append(lx.tokens, Token{Kind: TokenPipe})
			lx.pos++
		case lx.atWordBoundary() && lx.matchRedirect():
			// matchRedirect already advanced lx.pos and appended the token.
		default:
			lx.current.WriteByte(ch)
			lx.haveWord = true
			lx.pos++
		}
	}
	lx.flushWord()
	return lx.tokens, nil
}

// atWordBoundary reports whether lx.pos begins either at the start of
// input, just after whitespace, or just after another operator token —
// the only positions where a redirection operator is recognized rather
// than treated as literal WORD text (spec.md §4.2).
func (lx *lexer) atWordBoundary() bool {
	if lx.haveWord {
		return false
	}
	if lx.pos == 0 {
		return true
	}
	prev := lx.line[lx.pos-1]
	// With no word pending, a preceding '|' or '>' can only be the end of
	// an operator token just emitted.
	return prev == ' ' || prev == '\t' || prev == '|' || prev == '>'
}

// matchRedirect tries every known redirection spelling at lx.pos,
// longest first, and emits a TokenRedirect on success.
func (lx *lexer) matchRedirect() bool {
	for _, f := range redirectForms {
		if strings.HasPrefix(lx.line[lx.pos:], f.text) {
			lx.tokens = append(lx.tokens, Token{Kind: TokenRedirect, Value: f.text, Redir: f.spec})
			lx.pos += len(f.text)
			return true
		}
	}
	return false
}

func (lx *lexer) flushWord() {
	if lx.haveWord || lx.current.Len() > 0 {
		lx.tokens = append(lx.tokens, Token{Kind: TokenWord, Value: lx.current.String()})
		lx.current.Reset()
		lx.haveWord = false
	}
}

func (lx *lexer) readSingleQuoted() error {
	lx.pos++ // skip opening '
	start := lx.pos
	for lx.pos < len(lx.line) && lx.line[lx.pos] != '\'' {
		lx.pos++
	}
	if lx.pos >= len(lx.line) {
		return &LexError{Msg: "unterminated quote"}
	}
	lx.current.WriteString(lx.line[start:lx.pos])
	lx.haveWord = true
	lx.pos++ // skip closing '
	return nil
}

func (lx *lexer) readDoubleQuoted() error {
	lx.pos++ // skip opening "
	for lx.pos < len(lx.line) && lx.line[lx.pos] != '"' {
		if lx.line[lx.pos] == '\\' && lx.pos+1 < len(lx.line) {
			next := lx.line[lx.pos+1]
			if next == '"' || next == '\\' {
				lx.current.WriteByte(next)
				lx.pos += 2
				continue
			}
		}
		lx.current.WriteByte(lx.line[lx.pos])
		lx.pos++
	}
	if lx.pos >= len(lx.line) {
		return &LexError{Msg: "unterminated quote"}
	}
	lx.haveWord = true
	lx.pos++ // skip closing "
	return nil
}

// readEscape consumes a backslash and the character following it
// verbatim. A trailing backslash with nothing after it is itself
// emitted literally, per spec.md §4.2.
func (lx *lexer) readEscape() {
	if lx.pos+1 >= len(lx.line) {
		lx.current.WriteByte('\\')
		lx.haveWord = true
		lx.pos++
		return
	}
	lx.current.WriteByte(lx.line[lx.pos+1])
	lx.haveWord = true
	lx.pos += 2
}
