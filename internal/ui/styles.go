package ui

import "github.com/charmbracelet/lipgloss"

// Palette for the card view.
var (
	ColorAccent = lipgloss.Color("86")
	ColorHeart  = lipgloss.Color("204")
	ColorWhite  = lipgloss.Color("255")
	ColorDim    = lipgloss.Color("242")
	ColorError  = lipgloss.Color("203")
)

// Styles holds all Lip Gloss style definitions for the app. Injectable
// for testing.
type Styles struct {
	CardBorder   lipgloss.Style
	CardTitle    lipgloss.Style
	CardCategory lipgloss.Style
	CardSummary  lipgloss.Style
	CardMeta     lipgloss.Style
	RatingFill   lipgloss.Style
	RatingEmpty  lipgloss.Style
	Heart        lipgloss.Style
	HeartIdle    lipgloss.Style

	Position lipgloss.Style
	HelpBar  lipgloss.Style
	ErrTitle lipgloss.Style
	ErrBody  lipgloss.Style
	Loading  lipgloss.Style
}

// DefaultStyles returns the default look.
func DefaultStyles() Styles {
	s := Styles{}

	s.CardBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(1, 2)

	s.CardTitle = lipgloss.NewStyle().Bold(true).Foreground(ColorWhite)
	s.CardCategory = lipgloss.NewStyle().Foreground(ColorAccent)
	s.CardSummary = lipgloss.NewStyle().Foreground(ColorWhite)
	s.CardMeta = lipgloss.NewStyle().Foreground(ColorDim)
	s.RatingFill = lipgloss.NewStyle().Foreground(ColorAccent)
	s.RatingEmpty = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
	s.Heart = lipgloss.NewStyle().Foreground(ColorHeart).Bold(true)
	s.HeartIdle = lipgloss.NewStyle().Foreground(ColorDim)

	s.Position = lipgloss.NewStyle().Foreground(ColorDim)
	s.HelpBar = lipgloss.NewStyle().Foreground(ColorDim).MarginTop(1)
	s.ErrTitle = lipgloss.NewStyle().Bold(true).Foreground(ColorError)
	s.ErrBody = lipgloss.NewStyle().Foreground(ColorWhite)
	s.Loading = lipgloss.NewStyle().Foreground(ColorAccent)

	return s
}
