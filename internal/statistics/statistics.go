package statistics

import (
	"fmt"
	"math"
	"sort"
)

// maxSeats bounds the per-seat breakdown.
const maxSeats = 8

// DealResult is the outcome of following the advice for one deal.
type DealResult struct {
	Net       float64 // Dollars won or lost by the advised seat
	Seed      int64   // RNG seed for this deal (for replay)
	Seat      int     // Advised seat, 0-based
	Called    bool    // Advice was Bet/Call
	Predicted float64 // Simulated split-win rate
	Expected  float64 // EV the advice was based on
	Share     float64 // Fraction of the pot actually won
	WonHigh   bool
	WonLow    bool
}

// SeatStats tracks results for one seat.
type SeatStats struct {
	Deals int
	Sum   float64
	SumSq float64
}

// Statistics accumulates calibration results across many deals.
type Statistics struct {
	Deals  int
	Sum    float64
	SumSq  float64   // Sum of squares for variance calculation
	Values []float64 // Store all values for median/percentile calculation

	// Split by advice. Folds cost nothing beyond the ante.
	Calls   int
	Folds   int
	CallNet float64
	FoldNet float64
	AllNet  float64 // Total for sanity check

	// Outcomes at showdown, whatever the advice was.
	Scoops   int
	HighWins int
	LowWins  int
	Losses   int

	// Prediction quality.
	PredictedSum float64
	ShareSum     float64
	SquaredError float64
	ExpectedSum  float64 // EV summed over called deals only

	SeatResults [maxSeats]SeatStats
}

// Mean returns the mean net result per deal
func (s *Statistics) Mean() float64 {
	if s.Deals == 0 {
		return 0
	}
	return s.Sum / float64(s.Deals)
}

// Variance returns the sample variance of all results
func (s *Statistics) Variance() float64 {
	if s.Deals < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumSq - float64(s.Deals)*mean*mean) / float64(s.Deals-1)
}

// StdDev returns the sample standard deviation of all results
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Deals == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Deals))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Add incorporates a new deal result into the statistics
func (s *Statistics) Add(result DealResult) {
	net := result.Net
	s.Deals++
	s.Sum += net
	s.SumSq += net * net
	s.Values = append(s.Values, net)

	if result.Called {
		s.Calls++
		s.CallNet += net
		s.ExpectedSum += result.Expected
	} else {
		s.Folds++
		s.FoldNet += net
	}
	s.AllNet += net

	switch {
	case result.WonHigh && result.WonLow:
		s.Scoops++
	case result.WonHigh:
		s.HighWins++
	case result.WonLow:
		s.LowWins++
	default:
		s.Losses++
	}

	s.PredictedSum += result.Predicted
	s.ShareSum += result.Share
	diff := result.Predicted - result.Share
	s.SquaredError += diff * diff

	if result.Seat >= 0 && result.Seat < maxSeats {
		seat := &s.SeatResults[result.Seat]
		seat.Deals++
		seat.Sum += net
		seat.SumSq += net * net
	}
}

// Median returns the median value of all results
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// SeatMean returns the mean result for a seat
func (s *Statistics) SeatMean(seat int) float64 {
	if seat < 0 || seat >= maxSeats {
		return 0
	}
	ss := s.SeatResults[seat]
	if ss.Deals == 0 {
		return 0
	}
	return ss.Sum / float64(ss.Deals)
}

// MeanPredicted is the average simulated split-win rate.
func (s *Statistics) MeanPredicted() float64 {
	if s.Deals == 0 {
		return 0
	}
	return s.PredictedSum / float64(s.Deals)
}

// MeanShare is the average fraction of the pot actually won.
func (s *Statistics) MeanShare() float64 {
	if s.Deals == 0 {
		return 0
	}
	return s.ShareSum / float64(s.Deals)
}

// BrierScore is the mean squared gap between predicted and won share.
// Lower is better; always guessing 0.5 scores at most 0.25.
func (s *Statistics) BrierScore() float64 {
	if s.Deals == 0 {
		return 0
	}
	return s.SquaredError / float64(s.Deals)
}

// IsLedgerBalanced checks if the accounting is consistent
func (s *Statistics) IsLedgerBalanced() bool {
	return math.Abs(s.AllNet-s.CallNet-s.FoldNet) <= 1e-6
}

// Validate performs comprehensive validation of statistics data
func (s *Statistics) Validate() error {
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: AllNet=%.6f, CallNet=%.6f, FoldNet=%.6f",
			s.AllNet, s.CallNet, s.FoldNet)
	}

	if s.Deals <= 0 {
		return fmt.Errorf("invalid deals count: %d", s.Deals)
	}

	if len(s.Values) != s.Deals {
		return fmt.Errorf("values array length (%d) does not match deals count (%d)",
			len(s.Values), s.Deals)
	}

	if s.Calls+s.Folds != s.Deals {
		return fmt.Errorf("calls (%d) plus folds (%d) does not match deals (%d)", s.Calls, s.Folds, s.Deals)
	}

	if outcomes := s.Scoops + s.HighWins + s.LowWins + s.Losses; outcomes != s.Deals {
		return fmt.Errorf("outcome total (%d) does not match deals (%d)", outcomes, s.Deals)
	}

	totalSeatDeals := 0
	for _, seat := range s.SeatResults {
		totalSeatDeals += seat.Deals
	}
	if totalSeatDeals != s.Deals {
		return fmt.Errorf("seat deals total (%d) does not match total deals (%d)",
			totalSeatDeals, s.Deals)
	}

	return nil
}
