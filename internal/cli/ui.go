package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan   = lipgloss.Color("36")  // section titles
	colorGreen  = lipgloss.Color("35")  // success / path output
	colorYellow = lipgloss.Color("220") // warnings
	colorDim    = lipgloss.Color("240") // secondary text
)

var (
	// styleTitle renders section headings above tables.
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// stylePath renders reconstructed transmission routes.
	stylePath = lipgloss.NewStyle().Foreground(colorGreen)

	// styleWarn renders the negative-cycle warning.
	styleWarn = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)

	// styleDim renders file names and run identifiers.
	styleDim = lipgloss.NewStyle().Foreground(colorDim)
)
