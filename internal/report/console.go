package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ConsoleOptions controls console rendering
type ConsoleOptions struct {
	NoColor bool
}

type palette struct {
	header   lipgloss.Style
	section  lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	positive lipgloss.Style
	negative lipgloss.Style
	muted    lipgloss.Style
}

func newPalette(r *lipgloss.Renderer) palette {
	return palette{
		header: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1),
		section: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true).
			MarginTop(1),
		label: r.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Width(22),
		value: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")),
		positive: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		negative: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		muted: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

// WriteConsole renders a human readable summary to w
func WriteConsole(w io.Writer, s Summary, opts ConsoleOptions) error {
	renderer := lipgloss.NewRenderer(w)
	if opts.NoColor {
		renderer.SetColorProfile(termenv.Ascii)
	}
	p := newPalette(renderer)

	var b strings.Builder
	line := func(label, value string) {
		b.WriteString(p.label.Render(label))
		b.WriteString(value)
		b.WriteByte('\n')
	}
	signed := func(v float64, format string) string {
		text := fmt.Sprintf(format, v)
		switch {
		case v > 0:
			return p.positive.Render(text)
		case v < 0:
			return p.negative.Render(text)
		default:
			return p.value.Render(text)
		}
	}
	count := func(n int) string {
		return p.value.Render(fmt.Sprintf("%d", n))
	}

	r := s.Results
	b.WriteString(p.header.Render("Blackjack simulation"))
	b.WriteByte('\n')

	b.WriteString(p.section.Render("Rules"))
	b.WriteByte('\n')
	line("Decks", count(s.Rules.Decks))
	line("Reshuffle at", p.value.Render(fmt.Sprintf("%d cards left", s.Rules.Penetration)))
	line("Dealer", p.value.Render(dealerRule(s.Rules.HitSoft17)))
	line("Double after split", p.value.Render(yesNo(s.Rules.DoubleAfterSplit)))
	line("Surrender", p.value.Render(s.Rules.Surrender))

	b.WriteString(p.section.Render("Run"))
	b.WriteByte('\n')
	line("Sessions", p.value.Render(fmt.Sprintf("%d x %d rounds", s.Simulation.Sessions, s.Simulation.Rounds)))
	line("Bet / bankroll", p.value.Render(fmt.Sprintf("%d / %d", s.Simulation.Bet, s.Simulation.Bankroll)))
	line("Seed", p.value.Render(fmt.Sprintf("%d", s.Simulation.Seed)))
	line("Workers", count(s.Simulation.Workers))
	line("Elapsed", p.value.Render(fmt.Sprintf("%s (%.0f rounds/s)", r.Elapsed.Round(time.Millisecond), r.RoundsPerSecond)))
	if r.StoppedEarly > 0 {
		line("Hit bankroll floor", p.negative.Render(fmt.Sprintf("%d sessions", r.StoppedEarly)))
	}

	b.WriteString(p.section.Render("Outcomes"))
	b.WriteByte('\n')
	line("Rounds", count(r.Rounds))
	line("Hands", count(r.Hands))
	line("Wins", percent(p, r.Wins, r.Hands))
	line("Losses", percent(p, r.Losses, r.Hands))
	line("Pushes", percent(p, r.Pushes, r.Hands))
	line("Surrenders", percent(p, r.Surrenders, r.Hands))
	line("Blackjacks", percent(p, r.Blackjacks, r.Hands))
	line("Actions", p.value.Render(fmt.Sprintf("hit %d, stand %d, double %d, split %d",
		r.Hits, r.Stands, r.Doubles, r.Splits)))

	b.WriteString(p.section.Render("Money"))
	b.WriteByte('\n')
	line("Won / lost", p.value.Render(fmt.Sprintf("%d / %d", r.AmountWon, r.AmountLost)))
	line("Net", signed(float64(r.Net), "%.0f"))
	line("Mean per round", signed(r.MeanPerRound, "%.4f"))
	line("Std dev", p.value.Render(fmt.Sprintf("%.4f", r.StdDev)))
	line("95% CI", p.value.Render(fmt.Sprintf("[%.4f, %.4f]", r.CI95[0], r.CI95[1])))
	line("Player edge", signed(r.EdgePercent, "%.3f%%"))
	line("Session net", p.muted.Render(fmt.Sprintf("p5 %.0f, median %.0f, p95 %.0f",
		r.P05SessionNet, r.MedianSessionNet, r.P95SessionNet)))

	b.WriteString(p.section.Render("Count"))
	b.WriteByte('\n')
	line("Final true count", p.value.Render(fmt.Sprintf("%.2f mean per session", r.MeanFinalTrueCount)))

	_, err := io.WriteString(w, b.String())
	return err
}

func percent(p palette, n, total int) string {
	if total == 0 {
		return p.value.Render(fmt.Sprintf("%d", n))
	}
	return p.value.Render(fmt.Sprintf("%d", n)) +
		p.muted.Render(fmt.Sprintf(" (%.2f%%)", 100*float64(n)/float64(total)))
}

func dealerRule(hitSoft17 bool) string {
	if hitSoft17 {
		return "hits soft 17"
	}
	return "stands on soft 17"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
