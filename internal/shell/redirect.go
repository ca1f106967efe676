package shell

// FileRedirect names a file target and the mode to open it in.
type FileRedirect struct {
	Path string
	Mode RedirMode
}

// Redirects holds the file-redirection targets resolved out of a
// stage's token list, keyed by which descriptor they rebind (spec.md
// §3's IOPlan, pre-open: RedirectionResolver only resolves paths and
// modes, the PipelineExecutor decides when to actually open them).
type Redirects struct {
	Stdout *FileRedirect // fd 1
	Stderr *FileRedirect // fd 2
}

// ResolveRedirection separates a stage's redirection operators from its
// argv (spec.md §4.4). When the same fd is redirected more than once,
// the later occurrence replaces the earlier one and only the last
// target is kept; earlier targets for that fd are not recorded, so the
// executor never opens, creates or truncates them.
func ResolveRedirection(tokens []Token) (argv []string, rds Redirects, err error) {
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		switch tok.Kind {
		case TokenWord:
			argv = append(argv, tok.Value)

		case TokenRedirect:
			if i+1 >= len(tokens) || tokens[i+1].Kind != TokenWord {
				return nil, Redirects{}, &ParseError{Op: tok.Value}
			}
			target := tokens[i+1].Value
			fr := &FileRedirect{Path: target, Mode: tok.Redir.Mode}
			if tok.Redir.FD == 1 {
				rds.Stdout = fr
			} else {
				rds.Stderr = fr
			}
			i++

		default:
			return nil, Redirects{}, &ParseError{Msg: "unexpected token"}
		}
	}

	if len(argv) == 0 && (rds.Stdout != nil || rds.Stderr != nil) {
		return nil, Redirects{}, &ParseError{Msg: "empty command"}
	}

	return argv, rds, nil
}
