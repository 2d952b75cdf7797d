package starglob

// compile classifies a (possibly already folded) pattern by the number of
// wildcards in it.
func compile(pattern string) (*Pattern, error) {
	if pattern == "*" {
		return &Pattern{kind: MatchAny}, nil
	}

	spans := tokenise(pattern)
	switch len(spans) {
	case 1:
		// No wildcards.
		return &Pattern{kind: MatchFull, prefix: pattern}, nil

	case 2:
		before, after := spans[0].text, spans[1].text
		switch {
		case before == "":
			return &Pattern{kind: MatchEnd, suffix: after}, nil
		case after == "":
			return &Pattern{kind: MatchStart, prefix: before}, nil
		default:
			return &Pattern{kind: MatchBothEnds, prefix: before, suffix: after}, nil
		}
	}

	segs, err := compileSegments(pattern, spans)
	if err != nil {
		return nil, err
	}
	return &Pattern{kind: Multipart, segments: segs}, nil
}

// compileSegments builds the segments of a pattern with at least two
// wildcards.
func compileSegments(pattern string, spans []span) ([]Segment, error) {
	segs := make([]Segment, 0, len(spans))

	// A leading * leaves an empty first span. The literal after it is
	// picked up as the first AnyUntil below.
	first, last := spans[0], spans[len(spans)-1]
	if first.text != "" {
		segs = append(segs, ExactStart(first.text))
	}

	for _, sp := range spans[1 : len(spans)-1] {
		if sp.text == "" {
			return nil, &CompileError{
				Pattern: pattern,
				Offset:  sp.end,
				Err:     ErrAdjacentWildcards,
			}
		}
		segs = append(segs, AnyUntil(sp.text))
	}

	if last.text == "" {
		segs = append(segs, AnyEnd{})
	} else {
		segs = append(segs, AnyUntilExactEnd(last.text))
	}
	return segs, nil
}
