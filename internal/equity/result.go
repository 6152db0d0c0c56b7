package equity

import (
	"math"
	"time"
)

// Result summarises a simulation from the hero's seat. Rates are counts
// divided by the trials actually run.
type Result struct {
	HighRate  float64 `json:"high_rate"`
	LowRate   float64 `json:"low_rate"`
	ScoopRate float64 `json:"scoop_rate"`
	AnyRate   float64 `json:"any_rate"`

	HighWins   int `json:"high_wins"`
	HighLosses int `json:"high_losses"`
	LowWins    int `json:"low_wins"`
	Scoops     int `json:"scoops"`
	AnyWins    int `json:"any_wins"`

	Iterations    int           `json:"iterations"`
	IterationsRun int           `json:"iterations_run"`
	TimeCapped    bool          `json:"time_capped"`
	Elapsed       time.Duration `json:"elapsed_ns"`
	Seed          int64         `json:"seed"`
}

// tally is one worker's share of the counters.
type tally struct {
	high, highLoss, low, scoop, either, run int
}

func (t *tally) add(o tally) {
	t.high += o.high
	t.highLoss += o.highLoss
	t.low += o.low
	t.scoop += o.scoop
	t.either += o.either
	t.run += o.run
}

func (t tally) result(highOnly bool) Result {
	r := Result{
		HighWins:      t.high,
		HighLosses:    t.highLoss,
		LowWins:       t.low,
		Scoops:        t.scoop,
		AnyWins:       t.either,
		IterationsRun: t.run,
	}
	if t.run == 0 {
		return r
	}
	n := float64(t.run)
	r.HighRate = float64(t.high) / n
	if highOnly {
		r.AnyRate = r.HighRate
		return r
	}
	r.LowRate = float64(t.low) / n
	r.ScoopRate = float64(t.scoop) / n
	r.AnyRate = float64(t.either) / n
	return r
}

// ConfidenceInterval returns a 95% normal-approximation interval for one of
// the result's rates, clamped to [0, 1].
func (r Result) ConfidenceInterval(rate float64) (lo, hi float64) {
	if r.IterationsRun == 0 {
		return 0, 1
	}
	half := 1.96 * math.Sqrt(rate*(1-rate)/float64(r.IterationsRun))
	return math.Max(0, rate-half), math.Min(1, rate+half)
}
