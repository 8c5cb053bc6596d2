package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(14)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

func (c *Cli) title(s string) {
	c.io.Println(titleStyle.Render(s))
	c.io.Println()
}

func (c *Cli) field(label string, value any) {
	c.io.Printf("%s %v\n", labelStyle.Render(label), value)
}

func (c *Cli) ok(format string, a ...any) {
	c.io.Println(okStyle.Render("✓ " + fmt.Sprintf(format, a...)))
}

func (c *Cli) warn(format string, a ...any) {
	c.io.Println(warnStyle.Render(fmt.Sprintf(format, a...)))
}
