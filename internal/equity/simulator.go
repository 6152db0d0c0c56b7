// Package equity estimates how often a hand wins the high half, the low
// half, or both, by dealing out the unknown cards many times.
package equity

import (
	"context"
	"fmt"
	"io"
	rand "math/rand/v2"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/followthequeen/internal/deck"
	"github.com/lox/followthequeen/internal/evaluator"
	"github.com/lox/followthequeen/internal/randutil"
	"github.com/lox/followthequeen/internal/wild"
)

const (
	handSize = evaluator.HandSize

	// MinPlayers and MaxPlayers bound the table. Eight seats with ten board
	// cards use fifty of the fifty-two cards.
	MinPlayers = 2
	MaxPlayers = 8

	maxWorkers = 8
)

// Config controls how a Simulator runs. The zero value is usable.
type Config struct {
	// Workers is the number of goroutines sharing the trials. Zero means one
	// per CPU, capped at 8.
	Workers int

	// MaxTime stops a run early once exceeded. Zero disables the cap.
	MaxTime time.Duration

	Clock  quartz.Clock
	Logger *log.Logger
	Drawer Drawer
}

// Request describes one simulation from the hero's seat.
type Request struct {
	Hero          []deck.Card
	Board         wild.Board
	RevealedPairs int
	Players       int

	// Iterations is the number of trials. Zero picks IterationsFor.
	Iterations int

	// Seed makes the run reproducible. Zero draws a fresh seed, which is
	// reported back in the Result.
	Seed int64

	// HighOnly plays the whole pot for high; no low half is awarded.
	HighOnly bool

	// WildLow lets wild cards count as aces for low.
	WildLow bool

	// DealID tags log lines with the deal the request belongs to.
	DealID string
}

// Simulator runs Monte Carlo equity estimates. It holds no per-run state and
// is safe for concurrent use.
type Simulator struct {
	workers int
	maxTime time.Duration
	clock   quartz.Clock
	logger  *log.Logger
	drawer  Drawer
}

// New creates a Simulator, filling defaults for unset Config fields.
func New(cfg Config) *Simulator {
	s := &Simulator{
		workers: cfg.Workers,
		maxTime: cfg.MaxTime,
		clock:   cfg.Clock,
		logger:  cfg.Logger,
		drawer:  cfg.Drawer,
	}
	if s.workers <= 0 {
		s.workers = min(runtime.NumCPU(), maxWorkers)
	}
	if s.clock == nil {
		s.clock = quartz.NewReal()
	}
	if s.logger == nil {
		s.logger = log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	}
	if s.drawer == nil {
		s.drawer = RandomDrawer{}
	}
	s.logger = s.logger.WithPrefix("equity")
	return s
}

// plan is a validated request shared read-only by the workers.
type plan struct {
	hero     []deck.Card
	revealed []deck.Card
	known    deck.CardSet
	unknown  int
	players  int
	highOnly bool
	opts     evaluator.Options
}

func newPlan(req Request) (*plan, error) {
	if req.Players < MinPlayers || req.Players > MaxPlayers {
		return nil, fmt.Errorf("%w: %d (want %d-%d)", ErrInvalidPlayers, req.Players, MinPlayers, MaxPlayers)
	}
	if req.RevealedPairs < 0 || req.RevealedPairs > wild.NumPairs {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRevealed, req.RevealedPairs)
	}
	if len(req.Hero) != handSize {
		return nil, fmt.Errorf("hero: %w: got %d", evaluator.ErrInvalidHandSize, len(req.Hero))
	}

	revealed := req.Board.Cards(req.RevealedPairs)
	known, err := deck.NewCardSet(req.Hero...)
	if err != nil {
		return nil, fmt.Errorf("hero: %w", err)
	}
	if err := known.AddAll(revealed...); err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}

	return &plan{
		hero:     req.Hero,
		revealed: revealed,
		known:    known,
		unknown:  (wild.NumPairs - req.RevealedPairs) * 2,
		players:  req.Players,
		highOnly: req.HighOnly,
		opts:     evaluator.Options{WildLow: req.WildLow},
	}, nil
}

// Simulate runs the request's trials across the worker pool. Cancellation is
// honoured between trials; a cancelled run returns the context error and no
// result. Contract violations in the request or from the drawer are returned
// as-is and wrap the deck and evaluator sentinel errors.
func (s *Simulator) Simulate(ctx context.Context, req Request) (Result, error) {
	p, err := newPlan(req)
	if err != nil {
		return Result{}, err
	}

	iterations := req.Iterations
	if iterations <= 0 {
		iterations = IterationsFor(req.Players, req.RevealedPairs)
	}
	seed := req.Seed
	if seed == 0 {
		seed = randutil.Seed()
	}
	workers := min(s.workers, iterations)

	logger := s.logger.With("deal", req.DealID)
	logger.Debug("Starting simulation",
		"players", req.Players,
		"revealed", req.RevealedPairs,
		"iterations", iterations,
		"workers", workers,
		"seed", seed)

	start := s.clock.Now()
	var (
		completed atomic.Int64
		capped    atomic.Bool
	)
	overTime := func() bool {
		if s.maxTime <= 0 || completed.Load() == 0 {
			return false
		}
		if s.clock.Since(start) >= s.maxTime {
			capped.Store(true)
			return true
		}
		return false
	}

	rngs := randutil.Split(randutil.New(seed), workers)
	tallies := make([]tally, workers)
	perWorker, remainder := iterations/workers, iterations%workers

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		trials := perWorker
		if w < remainder {
			trials++
		}
		g.Go(func() error {
			for range trials {
				if err := gctx.Err(); err != nil {
					return err
				}
				if overTime() {
					return nil
				}
				t, err := s.trial(p, rngs[w])
				if err != nil {
					return err
				}
				tallies[w].add(t)
				completed.Add(1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			logger.Debug("Simulation cancelled", "completed", completed.Load())
			return Result{}, ctxErr
		}
		return Result{}, err
	}

	var total tally
	for _, t := range tallies {
		total.add(t)
	}
	res := total.result(p.highOnly)
	res.Iterations = iterations
	res.TimeCapped = capped.Load()
	res.Elapsed = s.clock.Since(start)
	res.Seed = seed

	if res.TimeCapped {
		logger.Info("Simulation hit time cap",
			"max_time", s.maxTime,
			"iterations_run", res.IterationsRun,
			"iterations", iterations)
	}
	logger.Debug("Simulation complete",
		"iterations_run", res.IterationsRun,
		"elapsed", res.Elapsed,
		"high", res.HighRate,
		"low", res.LowRate)
	return res, nil
}

// trial deals one random completion of the board and the opponents' hands
// and reports the hero's share of the pot.
func (s *Simulator) trial(p *plan, rng *rand.Rand) (tally, error) {
	pool := deck.Pool(p.known, rng)

	filler, err := s.drawer.DrawBoard(pool, p.unknown)
	if err != nil {
		return tally{}, fmt.Errorf("draw board: %w", err)
	}
	if len(filler) != p.unknown {
		return tally{}, fmt.Errorf("draw board: %w: got %d cards, want %d", deck.ErrDeckExhausted, len(filler), p.unknown)
	}
	community := make([]deck.Card, 0, wild.NumPairs*2)
	community = append(community, p.revealed...)
	community = append(community, filler...)

	// Filler cards count toward the wild walk exactly as dealt cards would.
	wilds := wild.ResolveSequence(community)

	hands := make([][]deck.Card, p.players)
	hands[0] = p.hero
	for i := 1; i < p.players; i++ {
		if hands[i], err = s.drawer.DrawHand(pool); err != nil {
			return tally{}, fmt.Errorf("draw opponent %d: %w", i, err)
		}
	}

	out, err := evaluator.Showdown(hands, community, wilds, p.opts)
	if err != nil {
		return tally{}, err
	}

	t := tally{run: 1}
	high := out.WonHigh(0)
	low := !p.highOnly && out.WonLow(0)
	if high {
		t.high = 1
	} else {
		t.highLoss = 1
	}
	if low {
		t.low = 1
	}
	if high && low {
		t.scoop = 1
	}
	if high || low {
		t.either = 1
	}
	return t, nil
}
