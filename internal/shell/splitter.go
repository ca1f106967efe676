package shell

// SplitPipeline partitions a token stream at unquoted pipe boundaries,
// discarding the TokenPipe separators themselves (spec.md §4.3). An
// empty segment — leading, trailing, or between two pipes — is a
// ParseError.
func SplitPipeline(tokens []Token) ([][]Token, error) {
	var segments [][]Token
	var current []Token

	for _, tok := range tokens {
		if tok.Kind == TokenPipe {
			if len(current) == 0 {
				return nil, &ParseError{Op: "|"}
			}
			segments = append(segments, current)
			current = nil
			continue
		}
		current = append(current, tok)
	}

	if len(current) == 0 {
		if len(segments) == 0 {
			// A wholly empty line never reaches here (callers skip it),
			// but a lone trailing pipe ("cmd |") is a ParseError.
			return nil, &ParseError{Op: "|"}
		}
		return nil, &ParseError{Op: "|"}
	}
	segments = append(segments, current)
	return segments, nil
}
