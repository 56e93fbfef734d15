package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A40000"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFA500")).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A40000"))
)

func printTitle(w io.Writer, s string) {
	_, _ = fmt.Fprintln(w, titleStyle.Render(s))
}

func printSection(w io.Writer, s string) {
	_, _ = fmt.Fprintln(w, sectionStyle.Render(s))
}

func printError(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "%s %v\n", errorStyle.Render("error:"), err)
}
