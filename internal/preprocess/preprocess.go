// Package preprocess implements the token-stream passes that run between
// the lexer and the parser: comment stripping, and coalescing
// an IDENT followed by "[]" into a single array-typed identifier.
package preprocess

import "github.com/orange-lang/orangec/internal/token"

// commentState tracks which kind of comment, if any, the linear scan is
// currently inside.
type commentState int

const (
	noComment commentState = iota
	blockComment
	lineComment
)

// StripComments removes every token that falls between an LBLOCK/RBLOCK
// pair or between a DSLASH and the next line-number change, The
// delimiter tokens themselves are also removed.
func StripComments(toks []token.Token) []token.Token {
	out := make([]token.Token, 0, len(toks))
	state := noComment
	lineCommentLine := -1

	for _, t := range toks {
		switch state {
		case noComment:
			switch t.Kind {
			case token.LBLOCK:
				state = blockComment
			case token.DSLASH:
				state = lineComment
				lineCommentLine = t.Pos.Line
			default:
				out = append(out, t)
			}
		case blockComment:
			if t.Kind == token.RBLOCK {
				state = noComment
			}
		case lineComment:
			if t.Pos.Line != lineCommentLine {
				state = noComment
				// Re-process this token now that we've left the comment.
				if t.Kind == token.LBLOCK {
					state = blockComment
					continue
				}
				if t.Kind == token.DSLASH {
					state = lineComment
					lineCommentLine = t.Pos.Line
					continue
				}
				out = append(out, t)
			}
		}
	}

	return out
}

// CoalesceArrays rewrites every IDENTIFIER immediately followed by "[" "]"
// into a single IDENTIFIER token whose text is "<name> array", deleting the
// bracket pair. A freshly coalesced token is itself re-tested against a
// following "[" "]" pair, so "int[][]" stacks into "int array array" rather
// than stopping after one level. This is what makes array types first-class
// identifier strings for the rest of the pipeline.
func CoalesceArrays(toks []token.Token) []token.Token {
	out := make([]token.Token, 0, len(toks))
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		if t.Kind != token.IDENTIFIER {
			out = append(out, t)
			continue
		}
		for i+2 < len(toks) && toks[i+1].Kind == token.LSQUARE && toks[i+2].Kind == token.RSQUARE {
			t = token.Token{
				Kind: token.IDENTIFIER,
				Text: t.Text + " array",
				Pos:  t.Pos,
			}
			i += 2
		}
		out = append(out, t)
	}
	return out
}

// Process runs both passes in order: comments are stripped first, then
// array suffixes are coalesced on what remains.
func Process(toks []token.Token) []token.Token {
	return CoalesceArrays(StripComments(toks))
}
