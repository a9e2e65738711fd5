package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/fivecard/internal/deck"
	"github.com/lox/fivecard/internal/evaluator"
	"github.com/lox/fivecard/internal/showdown"
)

// Styles holds the lipgloss styles used for terminal output
type Styles struct {
	Header   lipgloss.Style
	Hand     lipgloss.Style
	Category lipgloss.Style
	Win      lipgloss.Style
	Tie      lipgloss.Style
	Percent  lipgloss.Style
	red      lipgloss.Style
}

func newStyles(out io.Writer, color bool) *Styles {
	r := lipgloss.NewRenderer(out)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Styles{
		Header:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		Hand:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		Category: r.NewStyle().Foreground(lipgloss.Color("12")),
		Win:      r.NewStyle().Foreground(lipgloss.Color("10")),
		Tie:      r.NewStyle().Foreground(lipgloss.Color("11")),
		Percent:  r.NewStyle().Foreground(lipgloss.Color("9")),
		red:      r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// Cards renders cards with red suits highlighted
func (s *Styles) Cards(cards []deck.Card) string {
	var out string
	for i, c := range cards {
		if i > 0 {
			out += " "
		}
		if c.Suit == deck.Hearts || c.Suit == deck.Diamonds {
			out += s.red.Render(c.String())
		} else {
			out += c.String()
		}
	}
	return out
}

// Verdict renders a showdown outcome
func (s *Styles) Verdict(text string, o evaluator.Outcome) string {
	if o == evaluator.Draw {
		return s.Tie.Render(text)
	}
	return s.Win.Render(text)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// writeResults prints one row per evaluated hand
func writeResults(w io.Writer, s *Styles, names []string, results []evaluator.Result) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		s.Header.Render("hand"),
		s.Header.Render("combination"),
		s.Header.Render("cards"),
		s.Header.Render("strength"))

	for i, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n",
			s.Hand.Render(names[i]),
			s.Category.Render(r.Tier().String()),
			s.Cards(r.Cards()),
			uint64(r.Strength))
	}
	return tw.Flush()
}

// writeShowdown prints both players' hands and the verdict
func writeShowdown(w io.Writer, s *Styles, res *showdown.Result) error {
	names := make([]string, len(res.Players))
	results := make([]evaluator.Result, len(res.Players))
	for i, p := range res.Players {
		names[i] = p.Name
		results[i] = p.Result
	}

	tw := newTable(w)
	for _, p := range res.Players {
		fmt.Fprintf(tw, "%s\t%s\n", s.Hand.Render(p.Name+"'s hand"), s.Cards(p.Hand.Cards()))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w)

	if err := writeResults(w, s, names, results); err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, s.Verdict(res.Verdict(), res.Outcome))
	return nil
}
