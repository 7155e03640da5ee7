package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-stacker/internal/app"
	"github.com/vovakirdan/tui-stacker/internal/core"
)

var (
	boxStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	textStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("4"))
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	faultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// stateStyles colors the state badge in the header.
var stateStyles = map[app.AppState]lipgloss.Style{
	app.StateMenu:     dimStyle,
	app.StatePlaying:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	app.StatePause:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	app.StateGameOver: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	app.StateErr:      faultStyle,
}

// RenderFrame styles a frame produced by core.Screen.String.
// Runs of box cells and runs of text are styled separately to keep the
// number of escape sequences low.
func RenderFrame(frame string) string {
	var sb strings.Builder
	sb.Grow(len(frame) * 2)

	for i, line := range strings.Split(frame, "\n") {
		if i > 0 {
			sb.WriteRune('\n')
		}

		runes := []rune(line)
		x := 0
		for x < len(runes) {
			fill := runes[x] == core.FillRune
			start := x
			for x < len(runes) && (runes[x] == core.FillRune) == fill {
				x++
			}
			run := string(runes[start:x])
			switch {
			case fill:
				sb.WriteString(boxStyle.Render(run))
			case strings.TrimSpace(run) == "":
				sb.WriteString(run)
			default:
				sb.WriteString(textStyle.Render(run))
			}
		}
	}
	return sb.String()
}

// renderHeader draws the title line with the current state.
func renderHeader(state app.AppState, code app.ErrorCode) string {
	style, ok := stateStyles[state]
	if !ok {
		style = dimStyle
	}
	header := titleStyle.Render("STACKER") + "  " + style.Render(state.String())
	if code != app.CodeNone {
		header += "  " + faultStyle.Render(fmt.Sprintf("last fault: code %d", code))
	}
	return header
}
