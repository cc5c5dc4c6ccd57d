package lexer

import (
	"github.com/atisharma/beautifhy/internal/token"
)

// collectLeadingTrivia gathers consecutive trivia before a significant token.
//   - runs of ' ', '\t', '\r' coalesce into one TriviaSpace
//   - runs of '\n' coalesce into one TriviaNewline (the run length is how
//     blank lines survive into the tree)
//   - ";..." up to but excluding the newline -> TriviaLineComment
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' || b == '\r' {
			for {
				b2 := lx.cursor.Peek()
				if b2 != ' ' && b2 != '\t' && b2 != '\r' {
					break
				}
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaSpace,
				Span: sp,
				Text: lx.text(sp),
			})
			continue
		}

		if b == '\n' {
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaNewline,
				Span: sp,
				Text: lx.text(sp),
			})
			continue
		}

		if b == ';' {
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaLineComment,
				Span: sp,
				Text: lx.text(sp),
			})
			continue
		}

		break
	}
}
