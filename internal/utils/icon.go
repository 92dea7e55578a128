package utils

import (
	"hash/fnv"
	"strings"
)

var fallbackIcons = []string{"🎬", "🎞️", "📽️", "🍿"}

// MovieIcon picks a display icon for a movie from its genre. The first
// matching genre keyword wins, so "Crime/Drama" gets the crime icon. Movies
// with an unrecognized genre get a stable icon from a hash of their name.
func MovieIcon(name, genre string) string {
	g := strings.ToLower(genre)
	switch {
	case strings.Contains(g, "sci-fi"):
		return "🚀"
	case strings.Contains(g, "action"):
		return "💥"
	case strings.Contains(g, "crime"):
		return "🕵️"
	case strings.Contains(g, "thriller"):
		return "🔪"
	case strings.Contains(g, "horror"):
		return "👻"
	case strings.Contains(g, "comedy"):
		return "😂"
	case strings.Contains(g, "romance"):
		return "❤️"
	case strings.Contains(g, "fantasy"):
		return "🧙"
	case strings.Contains(g, "animation"):
		return "🎨"
	case strings.Contains(g, "drama"):
		return "🎭"
	}

	h := fnv.New32a()
	h.Write([]byte(name))
	return fallbackIcons[h.Sum32()%uint32(len(fallbackIcons))]
}
