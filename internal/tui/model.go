// Package tui implements the interactive terminal simulator.
//
// The TUI is a thin presentation layer over the cubesim engine: each
// keypress maps to exactly one Move, applied synchronously, so the
// rendered state is always a consistent snapshot.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/twistylab/cubesim"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// stickerStyles maps each sticker color to a colored terminal block.
var stickerStyles = map[cubesim.Color]lipgloss.Style{
	cubesim.White:  lipgloss.NewStyle().Background(lipgloss.Color("15")).Foreground(lipgloss.Color("0")),
	cubesim.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("11")).Foreground(lipgloss.Color("0")),
	cubesim.Green:  lipgloss.NewStyle().Background(lipgloss.Color("10")).Foreground(lipgloss.Color("0")),
	cubesim.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("12")).Foreground(lipgloss.Color("15")),
	cubesim.Red:    lipgloss.NewStyle().Background(lipgloss.Color("9")).Foreground(lipgloss.Color("15")),
	cubesim.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("0")),
}

// keyMoves maps keypresses to moves: lowercase is the letter's visual
// clockwise, uppercase the prime variant.
var keyMoves = map[string]cubesim.Move{
	"u": cubesim.U, "U": cubesim.UPrime,
	"d": cubesim.D, "D": cubesim.DPrime,
	"l": cubesim.L, "L": cubesim.LPrime,
	"r": cubesim.R, "R": cubesim.RPrime,
	"f": cubesim.F, "F": cubesim.FPrime,
	"b": cubesim.B, "B": cubesim.BPrime,
	"m": cubesim.M, "M": cubesim.MPrime,
	"e": cubesim.E, "E": cubesim.EPrime,
	"s": cubesim.S, "S": cubesim.SPrime,
}

// Model is the bubbletea model for the simulator.
type Model struct {
	tracker  *cubesim.Tracker
	quitting bool
}

// NewModel creates a simulator model starting from a solved cube.
func NewModel() *Model {
	return &Model{tracker: cubesim.NewTracker()}
}

// Run starts the interactive simulator and blocks until it exits.
func Run() error {
	_, err := tea.NewProgram(NewModel(), tea.WithAltScreen()).Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "backspace":
		m.tracker.Undo()
		return m, nil
	case "ctrl+n":
		m.tracker.Reset()
		return m, nil
	}

	if move, ok := keyMoves[keyMsg.String()]; ok {
		m.tracker.Apply(move)
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("cubesim"))
	b.WriteString("\n\n")
	b.WriteString(renderNet(m.tracker.Cube()))
	b.WriteString("\n")

	if m.tracker.IsSolved() {
		b.WriteString(solvedStyle.Render("SOLVED"))
	} else {
		b.WriteString(statusStyle.Render(fmt.Sprintf("%d moves", len(m.tracker.Moves()))))
	}
	b.WriteString("\n")

	if history := m.tracker.Moves(); len(history) > 0 {
		tail := history
		if len(tail) > 12 {
			tail = tail[len(tail)-12:]
		}
		b.WriteString(moveStyle.Render(cubesim.FormatMoves(tail)))
		b.WriteString("\n")
	}

	if facelets, err := m.tracker.Cube().Encode(); err != nil {
		b.WriteString(errorStyle.Render(err.Error()))
		b.WriteString("\n")
	} else {
		b.WriteString(statusStyle.Render(facelets))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("u/d/l/r/f/b/m/e/s turn · shift for prime · backspace undo · ctrl+n reset · q quit"))
	b.WriteString("\n")
	return b.String()
}

// renderNet draws the unfolded cube as colored blocks.
func renderNet(c *cubesim.Cube) string {
	var b strings.Builder

	u := c.Face(cubesim.FaceU)
	for row := 0; row < 3; row++ {
		b.WriteString("       ")
		writeRow(&b, u, row)
		b.WriteString("\n")
	}
	l, f, r, back := c.Face(cubesim.FaceL), c.Face(cubesim.FaceF), c.Face(cubesim.FaceR), c.Face(cubesim.FaceB)
	for row := 0; row < 3; row++ {
		for _, face := range [][9]cubesim.Color{l, f, r, back} {
			writeRow(&b, face, row)
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	d := c.Face(cubesim.FaceD)
	for row := 0; row < 3; row++ {
		b.WriteString("       ")
		writeRow(&b, d, row)
		b.WriteString("\n")
	}
	return b.String()
}

func writeRow(b *strings.Builder, face [9]cubesim.Color, row int) {
	for col := 0; col < 3; col++ {
		color := face[row*3+col]
		style, ok := stickerStyles[color]
		if !ok {
			b.WriteString("??")
			continue
		}
		b.WriteString(style.Render("  "))
	}
}
