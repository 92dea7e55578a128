package utils

import "testing"

func TestMovieIconByGenre(t *testing.T) {
	cases := []struct {
		genre string
		want  string
	}{
		{"Drama", "🎭"},
		{"Crime/Drama", "🕵️"},
		{"Action/Sci-Fi", "🚀"},
		{"Crime/Thriller", "🕵️"},
	}
	for _, tc := range cases {
		if got := MovieIcon("Some Movie", tc.genre); got != tc.want {
			t.Errorf("MovieIcon(%q) = %q, want %q", tc.genre, got, tc.want)
		}
	}
}

func TestMovieIconFallbackIsStable(t *testing.T) {
	first := MovieIcon("Unknown Film", "Mockumentary")
	second := MovieIcon("Unknown Film", "Mockumentary")

	if first != second {
		t.Errorf("fallback icon not stable: %q vs %q", first, second)
	}
	if first == "" {
		t.Error("fallback icon is empty")
	}
}
