package equity

const (
	baseIterations = 200
	minIterations  = 80
	maxIterations  = 300
	iterationStep  = 20
)

// IterationsFor picks a trial budget for a request that did not set one.
// More revealed pairs buy more trials since fewer cards remain unknown; each
// extra opponent costs trials since every trial scores another hand.
func IterationsFor(players, revealedPairs int) int {
	raw := baseIterations + revealedPairs*iterationStep - (players-2)*iterationStep
	return min(maxIterations, max(minIterations, raw))
}
