package equity

import "github.com/lox/followthequeen/internal/deck"

// Drawer supplies the unknown cards for one trial. The pool holds every card
// not yet known; implementations must take cards out of it so that nothing
// is dealt twice. Drawers are shared by all workers and must be safe for
// concurrent use.
type Drawer interface {
	// DrawBoard returns n cards that complete the community board, in
	// position order after the revealed pairs.
	DrawBoard(pool *deck.Deck, n int) ([]deck.Card, error)

	// DrawHand returns one opponent's five private cards.
	DrawHand(pool *deck.Deck) ([]deck.Card, error)
}

// RandomDrawer draws uniformly without replacement using the pool's own
// random source.
type RandomDrawer struct{}

func (RandomDrawer) DrawBoard(pool *deck.Deck, n int) ([]deck.Card, error) {
	return pool.DrawRandom(n)
}

func (RandomDrawer) DrawHand(pool *deck.Deck) ([]deck.Card, error) {
	return pool.DrawRandom(handSize)
}
