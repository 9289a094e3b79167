package blackjack

import (
	"testing"

	"github.com/cardroom/blackjack/cards"
	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	var (
		two   = cards.Card(0)  // 2♣
		five  = cards.Card(3)  // 5♣
		nine  = cards.Card(7)  // 9♣
		ten   = cards.Card(8)  // 10♣
		king  = cards.Card(11) // K♣
		ace   = cards.Card(12) // A♣
		queen = cards.Card(23) // Q♦
		aceD  = cards.Card(25) // A♦
	)

	tests := []struct {
		name string
		hand cards.Stack
		want HandValue
	}{
		{"empty hand", nil, HandValue{Value: 0, Blackjack: false}},
		{"single card", cards.Stack{nine}, HandValue{Value: 9, Blackjack: false}},
		{"ace and king is blackjack", cards.Stack{ace, king}, HandValue{Value: 21, Blackjack: true}},
		{"king and ace is blackjack", cards.Stack{king, aceD}, HandValue{Value: 21, Blackjack: true}},
		{"three-card 21 is not blackjack", cards.Stack{ace, aceD, nine}, HandValue{Value: 21, Blackjack: false}},
		{"two aces make twelve", cards.Stack{ace, aceD}, HandValue{Value: 12, Blackjack: false}},
		{"soft ace drops to one", cards.Stack{ace, nine, five}, HandValue{Value: 15, Blackjack: false}},
		{"bust with no aces", cards.Stack{king, queen, five}, HandValue{Value: 25, Blackjack: false}},
		{"twenty from two tens", cards.Stack{ten, queen}, HandValue{Value: 20, Blackjack: false}},
		{"soft seventeen", cards.Stack{ace, cards.Card(4)}, HandValue{Value: 17, Blackjack: false}},
		{"hard twenty-one from small cards", cards.Stack{five, five, nine, two}, HandValue{Value: 21, Blackjack: false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.hand))
		})
	}
}

func TestEvaluateIsPure(t *testing.T) {
	hand := cards.Stack{cards.Card(12), cards.Card(11)} // A♣ K♣
	first := Evaluate(hand)
	second := Evaluate(hand)

	assert.Equal(t, first, second)
	assert.Equal(t, cards.Stack{cards.Card(12), cards.Card(11)}, hand)
}
