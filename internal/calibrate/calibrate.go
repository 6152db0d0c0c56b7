// Package calibrate plays many random deals, follows the advice for one
// seat in each, and measures how the simulated odds and EV compare with
// what the showdown actually paid.
package calibrate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/followthequeen/internal/advice"
	"github.com/lox/followthequeen/internal/dealer"
	"github.com/lox/followthequeen/internal/dealid"
	"github.com/lox/followthequeen/internal/equity"
	"github.com/lox/followthequeen/internal/evaluator"
	"github.com/lox/followthequeen/internal/randutil"
	"github.com/lox/followthequeen/internal/statistics"
	"github.com/lox/followthequeen/internal/wild"
)

// Config holds configuration for a calibration run
type Config struct {
	Deals   int
	Players int
	Seed    int64

	// RevealedPairs is how many pairs are face up when advice is taken.
	RevealedPairs int
	Iterations    int

	Pot       float64
	Call      float64
	Burn      bool
	HighOnly  bool
	WildLow   bool
	MaxBet    float64
	MaxRaises int

	// Timeout bounds each deal, including its simulation.
	Timeout time.Duration

	Logger    *log.Logger
	Simulator *equity.Simulator
}

// Runner plays calibration deals
type Runner struct {
	config Config
}

// New creates a new runner with the given configuration
func New(config Config) *Runner {
	if config.Logger == nil {
		config.Logger = log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	}
	if config.Simulator == nil {
		config.Simulator = equity.New(equity.Config{Logger: config.Logger})
	}
	return &Runner{config: config}
}

// Run plays every deal and returns the validated statistics. Deal i uses
// seed Seed+i and advises seat i mod Players, so every seat is covered.
func (r *Runner) Run(ctx context.Context) (*statistics.Statistics, error) {
	c := r.config
	if c.Deals <= 0 {
		return nil, fmt.Errorf("deals must be positive, got %d", c.Deals)
	}
	if c.Players < equity.MinPlayers || c.Players > equity.MaxPlayers {
		return nil, fmt.Errorf("%w: %d", equity.ErrInvalidPlayers, c.Players)
	}
	if c.RevealedPairs < 0 || c.RevealedPairs > wild.NumPairs {
		return nil, fmt.Errorf("%w: %d", equity.ErrInvalidRevealed, c.RevealedPairs)
	}

	stats := &statistics.Statistics{}
	for i := 0; i < c.Deals; i++ {
		dealSeed := c.Seed + int64(i)
		seat := i % c.Players

		result, err := r.playDealWithTimeout(ctx, dealSeed, seat)
		if err != nil {
			return nil, fmt.Errorf("deal %d (seed %d): %w", i+1, dealSeed, err)
		}
		stats.Add(result)
	}

	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return stats, nil
}

func (r *Runner) playDealWithTimeout(ctx context.Context, dealSeed int64, seat int) (statistics.DealResult, error) {
	if r.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.config.Timeout)
		defer cancel()
	}

	result, err := r.playDeal(ctx, dealSeed, seat)
	if errors.Is(err, context.DeadlineExceeded) {
		return result, fmt.Errorf("deal timed out after %v: %w", r.config.Timeout, err)
	}
	return result, err
}

// playDeal deals, takes advice at the configured reveal, then plays the
// board out and settles the advised seat.
func (r *Runner) playDeal(ctx context.Context, dealSeed int64, seat int) (statistics.DealResult, error) {
	c := r.config
	rng := randutil.New(dealSeed)

	id, err := dealid.NewFromReader(randutil.Reader{R: rng})
	if err != nil {
		return statistics.DealResult{}, err
	}
	ds, err := dealer.New(rng, c.Players, id)
	if err != nil {
		return statistics.DealResult{}, err
	}
	for ds.Revealed < c.RevealedPairs {
		if _, err := ds.RevealNext(); err != nil {
			return statistics.DealResult{}, err
		}
	}

	req, err := ds.SimulationRequest(seat, c.Iterations)
	if err != nil {
		return statistics.DealResult{}, err
	}
	req.Seed = rng.Int64()
	req.HighOnly = c.HighOnly
	req.WildLow = c.WildLow

	res, err := c.Simulator.Simulate(ctx, req)
	if err != nil {
		return statistics.DealResult{}, err
	}
	rec := advice.Recommend(advice.Input{
		HighRate:    res.HighRate,
		LowRate:     res.LowRate,
		AnyRate:     res.AnyRate,
		Pot:         c.Pot,
		CallCost:    c.Call,
		BurnEnabled: c.Burn,
		FinalRound:  ds.FinalRound(),
		MaxBet:      c.MaxBet,
		MaxRaises:   c.MaxRaises,
		HighOnly:    c.HighOnly,
	})

	for !ds.FinalRound() {
		if _, err := ds.RevealNext(); err != nil {
			return statistics.DealResult{}, err
		}
	}
	out, err := ds.Showdown(evaluator.Options{WildLow: c.WildLow})
	if err != nil {
		return statistics.DealResult{}, err
	}

	result := statistics.DealResult{
		Seed:      dealSeed,
		Seat:      seat,
		Called:    rec.Decision == advice.BetCall,
		Predicted: rec.SplitWin,
		Expected:  rec.ExpectedValue,
		Share:     PotShare(out, seat, c.HighOnly),
		WonHigh:   out.WonHigh(seat),
		WonLow:    !c.HighOnly && out.WonLow(seat),
	}
	if result.Called {
		result.Net = c.Pot*result.Share - c.Call
		// Deals always reach the last pair, so burn is owed on any empty
		// share whichever round the advice came from.
		if c.Burn && result.Share == 0 {
			result.Net -= advice.BurnPenalty(c.Pot)
		}
	}

	c.Logger.Debug("Deal settled",
		"deal", id,
		"seat", seat,
		"decision", rec.Decision,
		"predicted", rec.SplitWin,
		"share", result.Share,
		"net", result.Net)
	return result, nil
}

// PotShare is the fraction of the pot seat takes at showdown. Each half is
// split evenly between tied winners; with HighOnly the high hand takes it
// all.
func PotShare(out evaluator.Outcome, seat int, highOnly bool) float64 {
	var share float64
	half := 0.5
	if highOnly {
		half = 1
	}
	if out.WonHigh(seat) {
		share += half / float64(len(out.HighWinners))
	}
	if !highOnly && out.WonLow(seat) {
		share += half / float64(len(out.LowWinners))
	}
	return share
}

// PrintSummary writes a summary of calibration results
func PrintSummary(w io.Writer, stats *statistics.Statistics) {
	low, high := stats.ConfidenceInterval95()

	fmt.Fprintf(w, "Deals played: %d\n", stats.Deals)

	fmt.Fprintf(w, "\n=== RESULTS ===\n")
	fmt.Fprintf(w, "Mean: $%.4f/deal\n", stats.Mean())
	fmt.Fprintf(w, "Median: $%.4f/deal\n", stats.Median())
	fmt.Fprintf(w, "Std Dev: $%.4f\n", stats.StdDev())
	fmt.Fprintf(w, "95%% CI: [%.4f, %.4f] $/deal\n", low, high)
	fmt.Fprintf(w, "Percentiles: P5=%.3f, P25=%.3f, P75=%.3f, P95=%.3f\n",
		stats.Percentile(0.05), stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95))

	fmt.Fprintf(w, "\n=== ADVICE ===\n")
	fmt.Fprintf(w, "Bet/Call: %d deals, $%.2f net", stats.Calls, stats.CallNet)
	if stats.Calls > 0 {
		fmt.Fprintf(w, " (EV predicted $%.2f)", stats.ExpectedSum)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Check/Fold: %d deals\n", stats.Folds)

	fmt.Fprintf(w, "\n=== SHOWDOWN ===\n")
	fmt.Fprintf(w, "Scoops: %d, high only: %d, low only: %d, lost both: %d\n",
		stats.Scoops, stats.HighWins, stats.LowWins, stats.Losses)
	fmt.Fprintf(w, "Predicted split win %.3f vs actual share %.3f (Brier %.4f)\n",
		stats.MeanPredicted(), stats.MeanShare(), stats.BrierScore())

	fmt.Fprintf(w, "\n=== SEATS ===\n")
	for seat, ss := range stats.SeatResults {
		if ss.Deals > 0 {
			fmt.Fprintf(w, "Seat %d: %d deals, $%.3f/deal\n", seat, ss.Deals, stats.SeatMean(seat))
		}
	}
}
