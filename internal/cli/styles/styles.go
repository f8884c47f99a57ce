package styles

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/todo/internal/models"
)

// Palette is the set of colors CLI output is drawn with
type Palette struct {
	Accent  string
	Title   string
	Subtle  string
	Normal  string
	Success string
	Error   string
}

var palettes = map[models.Theme]Palette{
	models.ThemeDark: {
		Accent:  "#7D56F4",
		Title:   "#FAFAFA",
		Subtle:  "#6C6C6C",
		Normal:  "#DDDDDD",
		Success: "#04B575",
		Error:   "#FF5F87",
	},
	models.ThemeLight: {
		Accent:  "#5A3FC0",
		Title:   "#1A1A1A",
		Subtle:  "#8A8A8A",
		Normal:  "#333333",
		Success: "#027A4F",
		Error:   "#C4003A",
	},
}

// PaletteFor returns the palette of theme, falling back to the default theme
func PaletteFor(theme models.Theme) Palette {
	if p, ok := palettes[theme]; ok {
		return p
	}
	return palettes[models.DefaultTheme]
}

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "ID:", "Created:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Description"

	// Status styles
	DoneStyle    lipgloss.Style
	PendingStyle lipgloss.Style
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
)

func init() {
	Init(models.DefaultTheme)
}

// Init initializes all CLI styles with the palette of the given theme
func Init(theme models.Theme) {
	colors := PaletteFor(theme)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true).
		MarginTop(1)

	DoneStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Success))

	PendingStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Success))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Error))
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// Checkbox renders the completion marker for a task
func Checkbox(completed bool) string {
	if completed {
		return DoneStyle.Render("[x]")
	}
	return PendingStyle.Render("[ ]")
}

// ShortID returns the first 8 characters of a task id
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}
