// Package advice turns simulated win rates into a bet-or-fold suggestion.
package advice

import (
	"fmt"
	"time"
)

// Decisions returned by Recommend.
const (
	BetCall   = "Bet/Call"
	CheckFold = "Check/Fold"
)

const (
	// DefaultMaxBet and DefaultMaxRaises are the table's betting caps.
	DefaultMaxBet    = 0.25
	DefaultMaxRaises = 3

	maxBurn = 2.0
)

// SimulationNote describes the run behind the rates, for the detail text.
type SimulationNote struct {
	IterationsRun int
	Elapsed       time.Duration
	TimeCapped    bool
}

// Input is everything the recommendation depends on. Callers validate the
// numbers; Recommend trusts them.
type Input struct {
	HighRate float64
	LowRate  float64
	AnyRate  float64

	Pot      float64
	CallCost float64

	BurnEnabled bool
	FinalRound  bool

	MaxBet    float64
	MaxRaises int

	// HighOnly means the whole pot goes to the best high hand.
	HighOnly bool

	Sim *SimulationNote
}

// Recommendation is the suggested action and how it was reached.
type Recommendation struct {
	Decision       string  `json:"decision"`
	ExpectedValue  float64 `json:"ev"`
	SplitWin       float64 `json:"split_win"`
	BurnPenalty    float64 `json:"burn_penalty"`
	DetailText     string  `json:"detail"`
	ConstraintText string  `json:"betting_constraints"`
}

// String renders the headline, e.g. "Bet/Call (EV: $3.00)".
func (r Recommendation) String() string {
	return fmt.Sprintf("%s (EV: $%.2f)", r.Decision, r.ExpectedValue)
}

// Recommend computes the expected value of calling and the resulting
// decision. The hero expects half the pot per half won; on the final round
// with burn enabled, missing both halves also costs min(pot/2, 2).
func Recommend(in Input) Recommendation {
	rec := Recommendation{SplitWin: (in.HighRate + in.LowRate) / 2}
	if in.HighOnly {
		rec.SplitWin = in.HighRate
	}
	rec.ExpectedValue = in.Pot*rec.SplitWin - in.CallCost

	burnApplied := in.BurnEnabled && in.FinalRound
	if burnApplied {
		rec.BurnPenalty = BurnPenalty(in.Pot)
		rec.ExpectedValue -= (1 - in.AnyRate) * rec.BurnPenalty
	}

	rec.Decision = CheckFold
	if rec.ExpectedValue >= 0 {
		rec.Decision = BetCall
	}

	rec.DetailText = detail(burnApplied, in.Sim)
	rec.ConstraintText = constraints(in.MaxBet, in.MaxRaises)
	return rec
}

// BurnPenalty is what a player who wins neither half pays on the final
// round when burn is in play: half the pot, capped at $2.
func BurnPenalty(pot float64) float64 {
	return min(pot/2, maxBurn)
}

func detail(burnApplied bool, sim *SimulationNote) string {
	text := "EV uses split-pot odds and your call cost"
	if burnApplied {
		text += " (burn applied on final round)"
	}
	text += "."

	switch {
	case sim == nil:
	case sim.IterationsRun == 0:
		text += " Heuristic estimate (no Monte Carlo iterations)."
	case sim.TimeCapped:
		text += fmt.Sprintf(" Simulation ran %d iterations in %.1fs (time cap reached).", sim.IterationsRun, sim.Elapsed.Seconds())
	default:
		text += fmt.Sprintf(" Simulation ran %d iterations in %.1fs.", sim.IterationsRun, sim.Elapsed.Seconds())
	}
	return text
}

func constraints(maxBet float64, maxRaises int) string {
	if maxBet <= 0 {
		maxBet = DefaultMaxBet
	}
	if maxRaises <= 0 {
		maxRaises = DefaultMaxRaises
	}
	return fmt.Sprintf("Betting caps: max bet/raise $%.2f, up to %d raises per round. No all-ins.", maxBet, maxRaises)
}
