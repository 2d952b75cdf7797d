package starglob

import "strings"

// Match reports if the subject matches the pattern.
func (p *Pattern) Match(subject string) bool {
	if p.fold != nil {
		subject = p.fold(subject)
	}
	return p.matchFolded(subject)
}

// matchFolded is Match for a subject that has already been folded (if the
// pattern needs it).
func (p *Pattern) matchFolded(subject string) bool {
	switch p.kind {
	case MatchAny:
		return true

	case MatchFull:
		return subject == p.prefix

	case MatchStart:
		return strings.HasPrefix(subject, p.prefix)

	case MatchEnd:
		return strings.HasSuffix(subject, p.suffix)

	case MatchBothEnds:
		// The prefix and suffix are checked independently and may share
		// characters: "ab*ba" matches "aba".
		return strings.HasPrefix(subject, p.prefix) && strings.HasSuffix(subject, p.suffix)

	case Multipart:
		return matchSegments(p.segments, subject)
	}
	return false
}

// matchSegments scans the subject once, left to right. Each segment commits
// to the first place its literal fits; a later segment failing never makes
// an earlier one try again further along.
func matchSegments(segs []Segment, subject string) bool {
	if len(segs) == 0 {
		return false
	}

	pos := 0
	for _, seg := range segs {
		switch seg := seg.(type) {
		case AnyEnd:
			return true

		case ExactStart:
			if !strings.HasPrefix(subject[pos:], string(seg)) {
				return false
			}
			pos += len(seg)

		case AnyUntil:
			i := indexFrom(subject, pos, string(seg))
			if i < 0 {
				return false
			}
			pos = i + len(seg)

		case AnyUntilExactEnd:
			if !anchoredFrom(subject, pos, string(seg)) {
				return false
			}
			pos = len(subject)
		}
	}
	return pos == len(subject)
}

// indexFrom returns the index of the first occurrence of lit in s at or
// after from, or -1.
func indexFrom(s string, from int, lit string) int {
	if i := strings.Index(s[from:], lit); i >= 0 {
		return from + i
	}
	return -1
}

// anchoredFrom reports whether lit occurs in s at or after from, ending
// exactly at the end of s. A candidate ending early is rejected and the
// search resumes one past its start, so overlapping candidates ("aa" in
// "aaa") are still found.
func anchoredFrom(s string, from int, lit string) bool {
	for from <= len(s) {
		i := indexFrom(s, from, lit)
		if i < 0 {
			return false
		}
		if i+len(lit) == len(s) {
			return true
		}
		from = i + 1
	}
	return false
}
