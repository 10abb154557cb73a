package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Video
	Stream
	Show
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "✅",
		nerd:    "",
		plain:   "✓",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "✖",
		kaomoji: "(╥﹏╥)",
		squares: "🟥",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "...",
		kaomoji: "(・_・)ノ",
		squares: "🟨",
	},
	Video: {
		emoji:   "🎞️",
		nerd:    "",
		plain:   "mp4",
		kaomoji: "(▰˘◡˘▰)",
		squares: "🟦",
	},
	Stream: {
		emoji:   "📡",
		nerd:    "",
		plain:   "hls",
		kaomoji: "(っ˘ω˘ς)",
		squares: "🟪",
	},
	Show: {
		emoji:   "📺",
		nerd:    "",
		plain:   "#",
		kaomoji: "(◕‿◕)",
		squares: "⬛",
	},
}
