package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/followthequeen/internal/advice"
	"github.com/lox/followthequeen/internal/deck"
	"github.com/lox/followthequeen/internal/equity"
	"github.com/lox/followthequeen/internal/evaluator"
	"github.com/lox/followthequeen/internal/wild"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	wildStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("13"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	loseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

func renderCards(cards []deck.Card) string {
	if len(cards) == 0 {
		return dimStyle.Render("-")
	}
	return handStyle.Render(deck.FormatCards(cards))
}

func renderWilds(wilds wild.RankSet) string {
	if wilds.Empty() {
		return dimStyle.Render("none")
	}
	return wildStyle.Render(wilds.String())
}

func renderBoard(w io.Writer, board wild.Board, revealed int) {
	fmt.Fprintf(w, "%s\n", headerStyle.Render("board"))
	parts := make([]string, wild.NumPairs)
	for i := range parts {
		if i < revealed {
			parts[i] = deck.FormatCards(board[i][:])
		} else {
			parts[i] = "?? ??"
		}
	}
	fmt.Fprintf(w, "%s\n", strings.Join(parts, " | "))
	fmt.Fprintf(w, "wild: %s\n\n", renderWilds(wild.Resolve(board, revealed)))
}

func pct(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate*100)
}

func renderResult(w io.Writer, res equity.Result, highOnly bool) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		headerStyle.Render("outcome"),
		headerStyle.Render("rate"),
		headerStyle.Render("95% ci"))

	rows := []struct {
		name string
		rate float64
	}{
		{"high", res.HighRate},
		{"low", res.LowRate},
		{"scoop", res.ScoopRate},
		{"any", res.AnyRate},
	}
	if highOnly {
		rows = rows[:1]
	}
	for _, row := range rows {
		lo, hi := res.ConfidenceInterval(row.rate)
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			row.name,
			winStyle.Render(pct(row.rate)),
			dimStyle.Render(fmt.Sprintf("%s-%s", pct(lo), pct(hi))))
	}
	tw.Flush()

	fmt.Fprintf(w, "\n%d/%d iterations in %v (seed %d)",
		res.IterationsRun, res.Iterations, res.Elapsed.Truncate(time.Millisecond), res.Seed)
	if res.TimeCapped {
		fmt.Fprint(w, ", time cap reached")
	}
	fmt.Fprintln(w)
}

func renderRecommendation(w io.Writer, rec advice.Recommendation) {
	style := winStyle
	if rec.Decision == advice.CheckFold {
		style = loseStyle
	}
	fmt.Fprintf(w, "\n%s\n", style.Render(rec.String()))
	fmt.Fprintf(w, "split win %s", pct(rec.SplitWin))
	if rec.BurnPenalty > 0 {
		fmt.Fprintf(w, ", burn $%.2f", rec.BurnPenalty)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, dimStyle.Render(rec.DetailText))
	fmt.Fprintln(w, dimStyle.Render(rec.ConstraintText))
}

func renderShowdown(w io.Writer, hands [][]deck.Card, out evaluator.Outcome, highOnly bool) {
	fmt.Fprintf(w, "\n%s\n", headerStyle.Render("showdown"))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("seat"),
		headerStyle.Render("hand"),
		headerStyle.Render("high"),
		headerStyle.Render("low"),
		headerStyle.Render("result"))
	for seat, sel := range out.Selections {
		low := sel.Low.String()
		if highOnly {
			low = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			seat,
			renderCards(hands[seat]),
			sel.High.String(),
			low,
			seatResult(out, seat, highOnly))
	}
	tw.Flush()
}

func seatResult(out evaluator.Outcome, seat int, highOnly bool) string {
	switch {
	case highOnly && out.WonHigh(seat):
		return winStyle.Render("wins")
	case out.Scooped(seat):
		return winStyle.Render("scoops")
	case out.WonHigh(seat):
		return winStyle.Render("wins high")
	case out.WonLow(seat) && !highOnly:
		return winStyle.Render("wins low")
	default:
		return dimStyle.Render("loses")
	}
}
