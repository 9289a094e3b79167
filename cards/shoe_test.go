package cards

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewShoeValidatesDeckCount(t *testing.T) {
	for _, numDecks := range []int{-1, 0, 7, 12} {
		_, err := NewShoe(numDecks, rand.New(rand.NewSource(1)))
		require.ErrorIs(t, err, ErrDeckCount, "numDecks=%d should be rejected", numDecks)
	}

	for numDecks := 1; numDecks <= 6; numDecks++ {
		shoe, err := NewShoe(numDecks, rand.New(rand.NewSource(1)))
		require.NoError(t, err)
		require.Equal(t, numDecks*DeckSize, shoe.Remaining())
	}
}

func TestNewShoeIsDeterministicForASeed(t *testing.T) {
	first, err := NewShoe(6, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	second, err := NewShoe(6, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	require.Equal(t, first.ReshufflePoint(), second.ReshufflePoint())
	for first.Remaining() > 0 {
		require.Equal(t, first.Pop(), second.Pop())
	}
}

func TestShoeContainsEveryCardPerDeck(t *testing.T) {
	shoe, err := NewShoe(2, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	counts := make(map[Card]int)
	for shoe.Remaining() > 0 {
		counts[shoe.Pop()]++
	}

	require.Len(t, counts, DeckSize)
	for card, count := range counts {
		require.Equal(t, 2, count, "card %s should appear once per deck", card)
	}
}

func TestReshufflePointRange(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		shoe, err := NewShoe(6, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		require.GreaterOrEqual(t, shoe.ReshufflePoint(), 30)
		require.Less(t, shoe.ReshufflePoint(), 6*DeckSize)
	}
}

func TestNeedsReshuffleIsMonotonic(t *testing.T) {
	shoe, err := NewShoe(6, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	for shoe.Remaining() >= shoe.ReshufflePoint() {
		require.False(t, shoe.NeedsReshuffle())
		shoe.Pop()
	}

	// Once past the cut point the flag never reverts.
	for i := 0; i < 10; i++ {
		require.True(t, shoe.NeedsReshuffle())
		shoe.Pop()
	}
}

func TestPopConsumesFromTheTop(t *testing.T) {
	shoe, err := NewShoe(1, rand.New(rand.NewSource(9)))
	require.NoError(t, err)

	before := shoe.Remaining()
	shoe.Pop()
	require.Equal(t, before-1, shoe.Remaining())
}
