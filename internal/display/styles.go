package display

import "github.com/charmbracelet/lipgloss"

// Static styles for content elements
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	PlayerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	OpponentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// Rarity tiers keep fixed colors so listings read at a glance.
var rarityStyles = map[string]lipgloss.Style{
	"Common":    lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA")),
	"Uncommon":  lipgloss.NewStyle().Foreground(lipgloss.Color("#96CEB4")),
	"Rare":      lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")),
	"Epic":      lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")),
	"Legendary": lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")),
}

func rarityStyle(name string) lipgloss.Style {
	if s, ok := rarityStyles[name]; ok {
		return s
	}
	return InfoStyle
}
