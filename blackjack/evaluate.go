package blackjack

import "github.com/cardroom/blackjack/cards"

const (
	// handLimit is the highest hand value that does not bust.
	handLimit = 21
	// dealerStand is the value at which the dealer stops drawing,
	// soft hands included.
	dealerStand = 17
)

// HandValue is the evaluated worth of a hand.
type HandValue struct {
	Value     int
	Blackjack bool
}

// Evaluate computes the value of the given hand. Cards 2-10 count face value,
// face cards count ten, and each ace counts eleven until the running total
// busts, at which point aces drop to one, one at a time. Blackjack is a
// two-card 21 only; a 21 built from three or more cards is not a blackjack.
//
// Evaluate is pure and never cached: hands mutate between calls.
func Evaluate(hand cards.Stack) HandValue {
	value := 0
	aces := 0

	for _, card := range hand {
		switch rank := int(card) % 13; {
		case rank <= 7: // 2 through 9
			value += rank + 2
		case rank <= 11: // 10, J, Q, K
			value += 10
		default: // ace
			aces++
			value += 11
		}
	}

	// Each ace can drop from 11 to 1; re-check the total after every drop.
	for i := 0; i < aces; i++ {
		if value > handLimit {
			value -= 10
		}
	}

	return HandValue{
		Value:     value,
		Blackjack: len(hand) == 2 && value == handLimit,
	}
}
