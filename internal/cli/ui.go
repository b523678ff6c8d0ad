package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Color palette.
var (
	colorCyan = lipgloss.Color("36")  // Teal - primary actions
	colorRed  = lipgloss.Color("167") // Soft red - errors
	colorDim  = lipgloss.Color("240") // Dim gray - muted text
)

// Styles.
var (
	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
)

// Icons.
const (
	iconError = "✗"
)

// printError prints a styled error message to stderr. Standard output
// is reserved for the fixed validation messages.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, styleIconError.Render(iconError)+" "+msg)
}
