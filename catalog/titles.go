package catalog

// abbreviations expands the short titles upstream uses for a few long-running shows.
var abbreviations = map[string]string{
	"1P":  "One Piece",
	"OP":  "One Piece",
	"AOT": "Attack on Titan",
	"DS":  "Demon Slayer",
	"JJK": "Jujutsu Kaisen",
	"MHA": "My Hero Academia",
}

// NormalizeTitle expands a known abbreviation and returns any other title unchanged.
func NormalizeTitle(title string) string {
	if full, ok := abbreviations[title]; ok {
		return full
	}
	return title
}
