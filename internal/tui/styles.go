package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/stepmate/stepmate/internal/todo"
)

var (
	// Colors shared by every theme
	GreenColor  = lipgloss.Color("#10B981")
	RedColor    = lipgloss.Color("#F87171")
	MutedColor  = lipgloss.Color("#9CA3AF")
	TextColor   = lipgloss.Color("#F9FAFB")
	BorderColor = lipgloss.Color("#6B7280")
	YellowColor = lipgloss.Color("#FBBF24")

	Muted = lipgloss.NewStyle().Foreground(MutedColor)
	Text  = lipgloss.NewStyle().Foreground(TextColor)
)

// accentColors maps the stored theme choice to a terminal color.
var accentColors = map[todo.PrimaryColor]lipgloss.Color{
	todo.ColorOrange: lipgloss.Color("#FB923C"),
	todo.ColorGreen:  lipgloss.Color("#34D399"),
	todo.ColorBlue:   lipgloss.Color("#60A5FA"),
	todo.ColorPurple: lipgloss.Color("#A78BFA"),
}

// Theme bundles the styles the checklist view renders with. The accent
// follows the user's primary color setting.
type Theme struct {
	Accent lipgloss.Color

	Title         lipgloss.Style
	Selected      lipgloss.Style
	StepDone      lipgloss.Style
	StepPending   lipgloss.Style
	Encouragement lipgloss.Style
	Celebration   lipgloss.Style
	Badge         lipgloss.Style
	ErrorMsg      lipgloss.Style
	HelpBar       lipgloss.Style
}

// NewTheme builds the style set for a primary color. Unknown colors fall
// back to the orange default.
func NewTheme(color todo.PrimaryColor) Theme {
	accent, ok := accentColors[color]
	if !ok {
		accent = accentColors[todo.ColorOrange]
	}

	return Theme{
		Accent: accent,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			MarginBottom(1),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		StepDone: lipgloss.NewStyle().
			Foreground(GreenColor).
			Strikethrough(true),

		StepPending: lipgloss.NewStyle().
			Foreground(TextColor),

		Encouragement: lipgloss.NewStyle().
			Foreground(YellowColor).
			Italic(true).
			MarginTop(1),

		Celebration: lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(accent).
			Padding(1, 3).
			MarginTop(1),

		Badge: lipgloss.NewStyle().
			Foreground(MutedColor),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(RedColor).
			Bold(true),

		HelpBar: lipgloss.NewStyle().
			Foreground(MutedColor).
			MarginTop(1),
	}
}

// difficultyIcon returns the marker rendered next to a step's duration.
func difficultyIcon(d todo.Difficulty) string {
	switch d {
	case todo.DifficultyEasy:
		return "●"
	case todo.DifficultyMedium:
		return "●●"
	case todo.DifficultyHard:
		return "●●●"
	default:
		return "●"
	}
}
