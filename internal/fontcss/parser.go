package fontcss

import (
	"bytes"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// FontDeclaration is one @include font-face(...) call found in a stylesheet
type FontDeclaration struct {
	Family string // "Roboto"
	File   string // "Roboto/Roboto-Italic"
	Weight string // As written; "400" when omitted
	Style  string // As written; "normal" when omitted
	Line   int    // 1-based
	Column int    // 1-based, position of @include
	Text   string // Full source line
}

// Key identifies a declaration regardless of its whitespace
func (d FontDeclaration) Key() string {
	return strings.Join([]string{d.Family, d.File, d.Weight, d.Style}, "\x00")
}

// token is a lexer token with its start position
type token struct {
	tt   css.TokenType
	text string
	line int
	col  int
}

// declParser tracks @include font-face(...) calls while lexing
type declParser struct {
	lines []string
	decls []FontDeclaration

	inLineComment bool
	prevSlashEnd  int // Byte offset right after a lone "/" delimiter, -1 if none

	include *token    // Pending @include
	inArgs  bool      // Inside font-face( ... )
	depth   int       // Nested parentheses inside the arguments
	args    [][]token // Arguments split on top-level commas
}

// ParseDeclarations finds every font-face mixin include in an SCSS stylesheet.
// Line (//) and block comments are skipped. Includes that do not close their
// argument list are ignored.
func ParseDeclarations(content string) []FontDeclaration {
	p := &declParser{
		lines:        SplitLines(content),
		prevSlashEnd: -1,
	}

	lexer := css.NewLexer(parse.NewInputString(content))
	line, col, offset := 1, 1, 0

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal
			break
		}

		tok := token{tt: tt, text: string(text), line: line, col: col}
		start := offset

		offset += len(text)
		if n := bytes.Count(text, []byte("\n")); n > 0 {
			line += n
			col = len(text) - bytes.LastIndexByte(text, '\n')
		} else {
			col += len(text)
		}

		p.handle(tok, start, offset)
	}

	return p.decls
}

func (p *declParser) handle(tok token, start, end int) {
	if p.inLineComment {
		if strings.Contains(tok.text, "\n") {
			p.inLineComment = false
		}
		return
	}

	if tok.tt == css.DelimToken && tok.text == "/" {
		if p.prevSlashEnd == start {
			p.inLineComment = true
			p.prevSlashEnd = -1
			p.reset()
			return
		}
		p.prevSlashEnd = end
	} else {
		p.prevSlashEnd = -1
	}

	if tok.tt == css.CommentToken {
		return
	}

	switch {
	case p.inArgs:
		p.handleArg(tok)
	case p.include != nil:
		switch {
		case tok.tt == css.WhitespaceToken:
		case tok.tt == css.FunctionToken && strings.EqualFold(tok.text, "font-face("):
			p.inArgs = true
			p.args = [][]token{nil}
		default:
			p.reset()
		}
	case tok.tt == css.AtKeywordToken && tok.text == "@include":
		t := tok
		p.include = &t
	}
}

func (p *declParser) handleArg(tok token) {
	switch tok.tt {
	case css.SemicolonToken, css.LeftBraceToken, css.RightBraceToken:
		p.reset()
		return
	case css.WhitespaceToken:
		return
	case css.FunctionToken, css.LeftParenthesisToken:
		p.depth++
	case css.RightParenthesisToken:
		if p.depth == 0 {
			p.finish()
			return
		}
		p.depth--
	case css.CommaToken:
		if p.depth == 0 {
			p.args = append(p.args, nil)
			return
		}
	}
	last := len(p.args) - 1
	p.args[last] = append(p.args[last], tok)
}

// finish turns the collected arguments into a declaration
func (p *declParser) finish() {
	defer p.reset()

	if len(p.args) < 2 {
		return
	}

	decl := FontDeclaration{
		Family: firstOf(p.args[0], css.StringToken, css.IdentToken),
		File:   firstOf(p.args[1], css.StringToken, css.IdentToken),
		Weight: firstOf(p.args[1], css.NumberToken),
		Style:  "",
		Line:   p.include.line,
		Column: p.include.col,
	}
	if decl.Family == "" || decl.File == "" {
		return
	}

	// The weight is either part of the file argument or the next argument
	rest := p.args[2:]
	if decl.Weight == "" && len(rest) > 0 {
		if w := firstOf(rest[0], css.NumberToken); w != "" {
			decl.Weight = w
			rest = rest[1:]
		}
	}
	if len(rest) > 0 {
		decl.Style = firstOf(rest[0], css.StringToken, css.IdentToken)
	}

	if decl.Weight == "" {
		decl.Weight = "400"
	}
	if decl.Style == "" {
		decl.Style = string(StyleNormal)
	}
	if decl.Line-1 < len(p.lines) {
		decl.Text = p.lines[decl.Line-1]
	}

	p.decls = append(p.decls, decl)
}

func (p *declParser) reset() {
	p.include = nil
	p.inArgs = false
	p.depth = 0
	p.args = nil
}

// firstOf returns the unquoted text of the first token of one of the types
func firstOf(toks []token, types ...css.TokenType) string {
	for _, t := range toks {
		for _, want := range types {
			if t.tt == want {
				return unquote(t.text)
			}
		}
	}
	return ""
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
