package shell

// Stage is one command invocation inside a Pipeline (spec.md §3).
type Stage struct {
	Argv      []string
	Redirects Redirects
}

// Pipeline is an ordered, non-empty sequence of Stages (spec.md §3).
type Pipeline struct {
	Stages []Stage
}

// ParsePipeline tokenizes line, splits it on unquoted pipes, and
// resolves each segment's redirections into a Stage. A line that
// tokenizes to nothing is a no-op (nil, nil) rather than an error
// (spec.md §4.4's "entirely empty stage ... is a no-op" case, for the
// length-1 pipeline this function is always called with one line at a
// time for).
func ParsePipeline(line string) (*Pipeline, error) {
	tokens, err := Tokenize(line)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, nil
	}

	segments, err := SplitPipeline(tokens)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{Stages: make([]Stage, 0, len(segments))}
	for _, seg := range segments {
		argv, rds, err := ResolveRedirection(seg)
		if err != nil {
			return nil, err
		}
		if len(argv) == 0 && len(segments) > 1 {
			return nil, &ParseError{Msg: "empty command in pipeline"}
		}
		p.Stages = append(p.Stages, Stage{Argv: argv, Redirects: rds})
	}
	return p, nil
}
