package cards

import (
	"errors"
	"fmt"
	"math/rand"
)

// DeckSize is the number of cards in a single standard deck.
const DeckSize = 52

// reshuffleFloor is the minimum number of cards left behind the cut card.
const reshuffleFloor = 30

// ErrDeckCount is returned when a shoe is built with an unsupported number of decks.
var ErrDeckCount = errors.New("number of decks must be between 1 and 6")

// Shoe holds one or more shuffled decks that are consumed from the top, plus
// a randomized cut point that marks when a fresh shoe is needed.
type Shoe struct {
	cards          Stack
	reshufflePoint int
}

// NewShoe builds a shoe of numDecks independently shuffled decks and draws
// its reshuffle point uniformly from [30, 52*numDecks). The reshuffle point
// is fixed for the shoe's lifetime.
func NewShoe(numDecks int, rng *rand.Rand) (*Shoe, error) {
	if numDecks < 1 || numDecks > 6 {
		return nil, fmt.Errorf("%w, got %d", ErrDeckCount, numDecks)
	}

	var stack Stack
	for i := 0; i < numDecks; i++ {
		stack = append(stack, newDeck(rng)...)
	}

	return &Shoe{
		cards:          stack,
		reshufflePoint: reshuffleFloor + rng.Intn(DeckSize*numDecks-reshuffleFloor),
	}, nil
}

// newDeck returns a single shuffled 52-card deck.
func newDeck(rng *rand.Rand) Stack {
	deck := make(Stack, DeckSize)
	for i := range deck {
		deck[i] = Card(i)
	}

	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	return deck
}

// Pop removes and returns the top card of the shoe. Callers are expected to
// check Remaining against the reshuffle point between hands; popping an empty
// shoe panics.
func (s *Shoe) Pop() Card {
	card := s.cards[len(s.cards)-1]
	s.cards = s.cards[:len(s.cards)-1]
	return card
}

// Remaining returns the number of cards left in the shoe.
func (s *Shoe) Remaining() int {
	return len(s.cards)
}

// ReshufflePoint returns the cut point chosen when the shoe was built.
func (s *Shoe) ReshufflePoint() int {
	return s.reshufflePoint
}

// NeedsReshuffle checks if the shoe has been consumed past its cut point.
func (s *Shoe) NeedsReshuffle() bool {
	return len(s.cards) < s.reshufflePoint
}
