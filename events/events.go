package events

import "github.com/cardroom/blackjack/cards"

// Seat identifies which hand a card was dealt to.
type Seat string

const (
	SeatDealer Seat = "dealer"
	SeatPlayer Seat = "player"
	SeatSplit  Seat = "split"
)

type HandStarted struct {
	TableID string
	HandID  string
	Bet     int
}

func (h HandStarted) EventName() string { return "HAND_STARTED" }

type BetPlaced struct {
	TableID string
	Amount  int
}

func (b BetPlaced) EventName() string { return "BET_PLACED" }

// BetRaised records a double-down style increase of an already-placed bet.
// Only the increment was deducted from the stack.
type BetRaised struct {
	TableID   string
	Seat      Seat
	Amount    int
	Increment int
}

func (b BetRaised) EventName() string { return "BET_RAISED" }

type CardDealt struct {
	TableID string
	Seat    Seat
	Card    cards.Card
}

func (c CardDealt) EventName() string { return "CARD_DEALT" }

type PlayerActed struct {
	TableID string
	Action  string
}

func (p PlayerActed) EventName() string { return "PLAYER_ACTED" }

type HandSplit struct {
	TableID  string
	SplitBet int
}

func (h HandSplit) EventName() string { return "HAND_SPLIT" }

type DealerRevealed struct {
	TableID   string
	Value     int
	Blackjack bool
}

func (d DealerRevealed) EventName() string { return "DEALER_REVEALED" }

type HandSettled struct {
	TableID string
	Result  string
	Payout  int
	Stack   int
}

func (h HandSettled) EventName() string { return "HAND_SETTLED" }

type ReshuffleReached struct {
	TableID   string
	Remaining int
}

func (r ReshuffleReached) EventName() string { return "RESHUFFLE_REACHED" }
