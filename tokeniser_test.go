package starglob

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokeniser(t *testing.T) {
	tests := []struct {
		pattern string
		want    []span
	}{
		{
			pattern: "",
			want:    []span{{text: "", end: 0}},
		},
		{
			pattern: "abc",
			want:    []span{{text: "abc", end: 3}},
		},
		{
			pattern: "*",
			want: []span{
				{text: "", end: 0},
				{text: "", end: 1},
			},
		},
		{
			pattern: "ab*cd*",
			want: []span{
				{text: "ab", end: 2},
				{text: "cd", end: 5},
				{text: "", end: 6},
			},
		},
		{
			pattern: "*val**",
			want: []span{
				{text: "", end: 0},
				{text: "val", end: 4},
				{text: "", end: 5},
				{text: "", end: 6},
			},
		},
		{
			pattern: "é*ü",
			want: []span{
				{text: "é", end: 2},
				{text: "ü", end: 5},
			},
		},
	}

	for _, test := range tests {
		got := tokenise(test.pattern)
		if diff := cmp.Diff(got, test.want, cmp.AllowUnexported(span{})); diff != "" {
			t.Errorf("tokenise(%q) diff (-got +want):\n%s", test.pattern, diff)
		}
	}
}
