package starglob

// span is a run of literal text bounded by wildcards or the ends of the
// pattern.
type span struct {
	text string

	// end is the byte offset of the wildcard closing the span, or the length
	// of the pattern for the final span.
	end int
}

// tokenise splits p on every *. The result always has one more span than p
// has wildcards, so "*" gives two empty spans and "" gives one.
func tokenise(p string) []span {
	// Most patterns have few wildcards.
	spans := make([]span, 0, 4)
	start := 0
	for i := 0; i < len(p); i++ {
		if p[i] != '*' {
			continue
		}
		spans = append(spans, span{text: p[start:i], end: i})
		start = i + 1
	}
	return append(spans, span{text: p[start:], end: len(p)})
}
