package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/camdenreyes/loci/internal/feed"
)

// Card renders one item full screen.
type Card struct {
	Styles Styles
}

// NewCard creates a card with default styles.
func NewCard() Card {
	return Card{Styles: DefaultStyles()}
}

// View renders the item. heartScale comes from the like burst: 1.0 at
// rest, larger mid-burst.
func (c Card) View(item feed.Item, liked bool, heartScale float64, width, height int) string {
	inner := width - 6 // border + padding
	if inner < 16 {
		inner = 16
	}

	var b strings.Builder

	b.WriteString(c.Styles.CardTitle.Render(runewidth.Truncate(item.Name, inner, "…")))
	b.WriteString("\n")
	b.WriteString(c.Styles.CardCategory.Render(runewidth.Truncate(item.Category, inner, "…")))
	b.WriteString("\n\n")

	if item.Summary != "" {
		b.WriteString(c.Styles.CardSummary.Render(wrap(item.Summary, inner, 6)))
		b.WriteString("\n\n")
	}

	meta := fmt.Sprintf("%s away", formatDistance(item.DistanceM))
	b.WriteString(c.Styles.CardMeta.Render(meta))
	b.WriteString("\n")

	if item.Rating > 0 {
		b.WriteString(c.renderRating(item.Rating))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(c.renderHeart(liked, heartScale))

	return c.Styles.CardBorder.Width(width - 2).Render(b.String())
}

func (c Card) renderRating(rating float64) string {
	full := int(rating + 0.5)
	if full > 5 {
		full = 5
	}
	filled := c.Styles.RatingFill.Render(strings.Repeat("★", full))
	empty := c.Styles.RatingEmpty.Render(strings.Repeat("☆", 5-full))
	return fmt.Sprintf("%s%s %s", filled, empty, c.Styles.CardMeta.Render(fmt.Sprintf("%.1f", rating)))
}

// renderHeart scales the liked indicator during the burst by widening
// its glyph run; a terminal cell can't scale, so size stands in for it.
func (c Card) renderHeart(liked bool, scale float64) string {
	if !liked {
		return c.Styles.HeartIdle.Render("♡")
	}
	n := 1
	if scale >= 1.25 {
		n = 2
	}
	if scale >= 1.55 {
		n = 3
	}
	return c.Styles.Heart.Render(strings.Repeat("♥", n))
}

// formatDistance renders meters the way people say them.
func formatDistance(m float64) string {
	switch {
	case m <= 0:
		return "right here"
	case m < 1000:
		return fmt.Sprintf("%dm", int(m))
	default:
		return fmt.Sprintf("%.1fkm", m/1000)
	}
}

// wrap folds text at width, keeping at most maxLines lines.
func wrap(s string, width, maxLines int) string {
	words := strings.Fields(s)
	var lines []string
	var line string
	for _, w := range words {
		candidate := w
		if line != "" {
			candidate = line + " " + w
		}
		if runewidth.StringWidth(candidate) > width && line != "" {
			lines = append(lines, line)
			line = w
		} else {
			line = candidate
		}
		if len(lines) == maxLines {
			break
		}
	}
	if line != "" && len(lines) < maxLines {
		lines = append(lines, line)
	}
	if len(lines) == maxLines {
		last := lines[maxLines-1]
		lines[maxLines-1] = runewidth.Truncate(last, width, "…")
	}
	return strings.Join(lines, "\n")
}
