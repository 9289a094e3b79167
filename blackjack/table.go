package blackjack

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/cardroom/blackjack/cards"
	"github.com/cardroom/blackjack/events"
)

// Action is a player decision during a hand.
type Action string

const (
	ActionHit    Action = "hit"
	ActionStand  Action = "stand"
	ActionDouble Action = "double"
	ActionSplit  Action = "split"
)

// actionKeys maps the single-key inputs accepted at the prompt.
var actionKeys = map[string]Action{
	"h": ActionHit,
	"s": ActionStand,
	"d": ActionDouble,
	"2": ActionSplit,
}

// Phase represents where the table is in a hand's lifecycle.
type Phase string

const (
	PhaseAwaitingBet  Phase = "awaiting_bet"
	PhasePlayerActing Phase = "player_acting"
	PhaseSplitActing  Phase = "split_acting"
	PhaseDealerReveal Phase = "dealer_reveal"
	PhasePayout       Phase = "payout"
)

// HandState tracks whether a hand still accepts player input.
type HandState string

const (
	HandActing HandState = "acting"
	HandDone   HandState = "done"
)

// Result classifies a settled bet.
type Result string

const (
	ResultBlackjack Result = "blackjack"
	ResultWin       Result = "win"
	ResultPush      Result = "push"
	ResultLoss      Result = "loss"
)

// Outcome is the settlement of a single bet.
type Outcome struct {
	Result Result
	Bet    int
	Payout int
}

// HandOutcome is the settlement of a whole hand, split hand included.
type HandOutcome struct {
	Primary Outcome
	Split   *Outcome
	Payout  int
}

var (
	// ErrInvalidBet marks a rejected bet; the table state is unchanged and
	// the caller may re-prompt with the error's message.
	ErrInvalidBet = errors.New("invalid bet")
	// ErrInvalidAction marks an action outside the permitted set; the table
	// state is unchanged and the caller may re-prompt.
	ErrInvalidAction = errors.New("invalid action")
	// ErrStackBounds marks an attempt to move the stack outside its legal
	// range. Payouts and deductions never produce it organically, so it
	// signals a logic error upstream.
	ErrStackBounds = errors.New("player stack out of range")
)

// CardSource supplies cards to the table. *cards.Shoe satisfies it; tests
// substitute a scripted source.
type CardSource interface {
	Pop() cards.Card
	Remaining() int
	NeedsReshuffle() bool
}

const (
	DefaultStartingStack = 1000
	DefaultStackCeiling  = 999999
	DefaultNumDecks      = 6
)

// TableRules configures a table.
type TableRules struct {
	StartingStack int
	StackCeiling  int
}

// Table owns the player's chip stack, the live bet(s) and the dealer, player
// and split card sets for a single-player blackjack session. It drives one
// hand at a time through bet, deal, player actions, dealer reveal and payout.
//
// Splitting is supported at most once per hand and split hands cannot be
// re-split; this mirrors the table rules the engine was written for and is a
// designed limitation, not an oversight.
type Table struct {
	ID    string
	shoe  CardSource
	rules TableRules

	stack     int
	bet       int
	splitBet  int
	betPlaced bool

	phase     Phase
	primary   HandState
	split     HandState
	hasSplit  bool
	reshuffle bool

	dealerCards cards.Stack
	playerCards cards.Stack
	splitCards  cards.Stack

	events        []events.Event
	eventHandlers []events.EventHandler
}

// NewTable creates a table drawing from the given card source.
func NewTable(shoe CardSource, rules TableRules) (*Table, error) {
	if rules.StackCeiling <= 0 {
		rules.StackCeiling = DefaultStackCeiling
	}
	if rules.StartingStack <= 0 {
		return nil, fmt.Errorf("%w: starting stack must be greater than 0", ErrStackBounds)
	}

	t := &Table{
		ID:      uuid.NewString(),
		shoe:    shoe,
		rules:   rules,
		phase:   PhaseAwaitingBet,
		primary: HandDone,
		split:   HandDone,
	}
	if err := t.setStack(rules.StartingStack); err != nil {
		return nil, err
	}

	return t, nil
}

// Read-only state for the rendering and input layers.

func (t *Table) Stack() int               { return t.stack }
func (t *Table) Bet() int                 { return t.bet }
func (t *Table) SplitBet() int            { return t.splitBet }
func (t *Table) BetPlaced() bool          { return t.betPlaced }
func (t *Table) Phase() Phase             { return t.phase }
func (t *Table) HasSplit() bool           { return t.hasSplit }
func (t *Table) DealerCards() cards.Stack { return t.dealerCards }
func (t *Table) PlayerCards() cards.Stack { return t.playerCards }
func (t *Table) SplitCards() cards.Stack  { return t.splitCards }

// Reshuffle reports whether the shoe has passed its cut point. Once set it
// stays set for the shoe's lifetime.
func (t *Table) Reshuffle() bool { return t.reshuffle }

// Broke reports whether the player is out of chips.
func (t *Table) Broke() bool { return t.stack <= 0 }

// ReachedCeiling reports whether the player has won the session by reaching
// the configured stack ceiling.
func (t *Table) ReachedCeiling() bool { return t.stack >= t.rules.StackCeiling }

// SetBet parses a raw bet entry. Before the deal it places the initial bet;
// once a bet is placed it only accepts a valid increase (a double) that the
// remaining stack can cover, deducting the increment alone. Rejections leave
// the table untouched.
func (t *Table) SetBet(input string) error {
	amount, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return fmt.Errorf("%w: %q is not a number", ErrInvalidBet, strings.TrimSpace(input))
	}
	return t.placeBet(amount)
}

func (t *Table) placeBet(amount int) error {
	// Once the hand is underway the placed bet has been deducted, so any
	// new value is treated as an increase over it. After player input ends
	// the bet is locked until the next hand.
	switch t.phase {
	case PhasePlayerActing, PhaseSplitActing:
		return t.raiseBet(amount)
	case PhaseDealerReveal, PhasePayout:
		return fmt.Errorf("%w: player input has ended", ErrInvalidBet)
	}

	if amount <= 0 {
		return fmt.Errorf("%w: bet must be greater than 0", ErrInvalidBet)
	}
	if amount > t.stack {
		return fmt.Errorf("%w: bet must not be larger than remaining chips", ErrInvalidBet)
	}

	t.bet = amount
	t.betPlaced = true
	t.emitEvent(events.BetPlaced{TableID: t.ID, Amount: amount})
	return nil
}

// raiseBet increases the already-placed primary bet. The original bet was
// deducted at the deal, so only the increment comes off the stack here.
func (t *Table) raiseBet(amount int) error {
	increment := amount - t.bet
	if increment <= 0 {
		return fmt.Errorf("%w: a placed bet can only be increased", ErrInvalidBet)
	}
	if increment > t.stack {
		return fmt.Errorf("%w: bet must not be larger than remaining chips", ErrInvalidBet)
	}

	if err := t.setStack(t.stack - increment); err != nil {
		return err
	}
	t.bet = amount
	t.emitEvent(events.BetRaised{TableID: t.ID, Seat: events.SeatPlayer, Amount: amount, Increment: increment})
	return nil
}

// DealInitial starts a hand: it clears all card sets, deducts the bet from
// the stack and draws two cards for the player and one for the dealer, in
// exactly that order. A dealt blackjack ends player input immediately.
func (t *Table) DealInitial() error {
	if t.phase != PhaseAwaitingBet {
		return fmt.Errorf("%w: a hand is already in progress", ErrInvalidAction)
	}
	if !t.betPlaced {
		return fmt.Errorf("%w: no bet placed", ErrInvalidBet)
	}
	if err := t.setStack(t.stack - t.bet); err != nil {
		return err
	}

	t.dealerCards = nil
	t.playerCards = nil
	t.splitCards = nil
	t.hasSplit = false
	t.splitBet = 0
	t.primary = HandActing
	t.split = HandDone
	t.phase = PhasePlayerActing

	t.emitEvent(events.HandStarted{TableID: t.ID, HandID: uuid.NewString(), Bet: t.bet})

	t.dealTo(&t.playerCards, events.SeatPlayer)
	t.dealTo(&t.playerCards, events.SeatPlayer)
	t.dealTo(&t.dealerCards, events.SeatDealer)

	t.checkAutoEnd()
	return nil
}

func (t *Table) dealTo(hand *cards.Stack, seat events.Seat) {
	card := t.shoe.Pop()
	*hand = append(*hand, card)
	t.emitEvent(events.CardDealt{TableID: t.ID, Seat: seat, Card: card})
}

// activeCards returns the hand currently accepting input.
func (t *Table) activeCards() cards.Stack {
	if t.phase == PhaseSplitActing {
		return t.splitCards
	}
	return t.playerCards
}

// activeBet returns the bet backing the hand currently accepting input.
func (t *Table) activeBet() int {
	if t.phase == PhaseSplitActing {
		return t.splitBet
	}
	return t.bet
}

// ActionPermitted checks if the given action is legal for the active hand.
// A dealt blackjack disables everything; doubling requires the first
// decision of a hand and a stack that covers the bet; splitting additionally
// requires equal ranks and is allowed once per hand.
func (t *Table) ActionPermitted(action Action) bool {
	if t.phase != PhasePlayerActing && t.phase != PhaseSplitActing {
		return false
	}

	hand := t.activeCards()
	if Evaluate(hand).Blackjack {
		return false
	}

	switch action {
	case ActionHit, ActionStand:
		return true
	case ActionDouble:
		return len(hand) == 2 && t.stack >= t.activeBet()
	case ActionSplit:
		return t.phase == PhasePlayerActing &&
			!t.hasSplit &&
			len(hand) == 2 &&
			hand[0].SameRank(hand[1]) &&
			t.stack >= t.bet
	default:
		return false
	}
}

// ApplyAction applies a raw action key (h, s, d or 2) to the active hand.
// Anything outside the permitted set is rejected without mutating state.
// After a legal action the active hand is ended automatically when it busts
// or holds a blackjack.
func (t *Table) ApplyAction(key string) error {
	action, ok := actionKeys[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return fmt.Errorf("%w: press h, s, d or 2", ErrInvalidAction)
	}
	if !t.ActionPermitted(action) {
		return fmt.Errorf("%w: %s is not available right now", ErrInvalidAction, action)
	}

	switch action {
	case ActionHit:
		t.dealToActive()
	case ActionStand:
		t.endActiveHand()
	case ActionDouble:
		if err := t.double(); err != nil {
			return err
		}
	case ActionSplit:
		if err := t.splitHand(); err != nil {
			return err
		}
	}

	t.emitEvent(events.PlayerActed{TableID: t.ID, Action: string(action)})
	t.checkAutoEnd()
	return nil
}

func (t *Table) dealToActive() {
	if t.phase == PhaseSplitActing {
		t.dealTo(&t.splitCards, events.SeatSplit)
		return
	}
	t.dealTo(&t.playerCards, events.SeatPlayer)
}

// checkAutoEnd ends the active hand when it has busted or holds a blackjack,
// so the surrounding input loop never has to detect either itself.
func (t *Table) checkAutoEnd() {
	if t.phase != PhasePlayerActing && t.phase != PhaseSplitActing {
		return
	}
	eval := Evaluate(t.activeCards())
	if eval.Value > handLimit || eval.Blackjack {
		t.endActiveHand()
	}
}

// endActiveHand marks the active hand done and advances the phase: primary
// hand first, then the split hand if one exists, then the dealer reveal.
func (t *Table) endActiveHand() {
	if t.phase == PhasePlayerActing {
		t.primary = HandDone
		if t.hasSplit && t.split == HandActing {
			t.phase = PhaseSplitActing
			t.checkAutoEnd()
			return
		}
		t.phase = PhaseDealerReveal
		return
	}
	if t.phase == PhaseSplitActing {
		t.split = HandDone
		t.phase = PhaseDealerReveal
	}
}

// double doubles the active hand's bet, deducting only the increment, then
// draws exactly one card and ends input for that hand.
func (t *Table) double() error {
	if t.phase == PhaseSplitActing {
		increment := t.splitBet
		if err := t.setStack(t.stack - increment); err != nil {
			return err
		}
		t.splitBet += increment
		t.emitEvent(events.BetRaised{TableID: t.ID, Seat: events.SeatSplit, Amount: t.splitBet, Increment: increment})
	} else if err := t.raiseBet(t.bet * 2); err != nil {
		return err
	}

	t.dealToActive()
	t.endActiveHand()
	return nil
}

// splitHand moves the second card into a new split hand backed by its own
// bet, then draws one replacement card for each hand. The primary hand is
// played out first. Split hands cannot be re-split.
func (t *Table) splitHand() error {
	if err := t.setStack(t.stack - t.bet); err != nil {
		return err
	}

	t.splitBet = t.bet
	t.hasSplit = true
	t.split = HandActing
	t.splitCards = cards.Stack{t.playerCards[1]}
	t.playerCards = t.playerCards[:1]

	t.emitEvent(events.HandSplit{TableID: t.ID, SplitBet: t.splitBet})

	t.dealTo(&t.playerCards, events.SeatPlayer)
	t.dealTo(&t.splitCards, events.SeatSplit)
	return nil
}

// RevealDealer draws the dealer's second card, then keeps drawing until the
// dealer holds 17 or more. The dealer stands on all 17s, soft 17 included.
// A blackjack on either side stops the dealer after the reveal card.
func (t *Table) RevealDealer() error {
	if t.phase != PhaseDealerReveal {
		return fmt.Errorf("%w: player input has not ended", ErrInvalidAction)
	}

	t.dealTo(&t.dealerCards, events.SeatDealer)

	playerBlackjack := !t.hasSplit && Evaluate(t.playerCards).Blackjack
	if !playerBlackjack && !Evaluate(t.dealerCards).Blackjack {
		for Evaluate(t.dealerCards).Value < dealerStand {
			t.dealTo(&t.dealerCards, events.SeatDealer)
		}
	}

	eval := Evaluate(t.dealerCards)
	t.emitEvent(events.DealerRevealed{TableID: t.ID, Value: eval.Value, Blackjack: eval.Blackjack})
	t.phase = PhasePayout
	return nil
}

// Settle computes the payout for each bet purely from the evaluated hands
// and credits the stack: blackjack returns 2.5x the bet, a win 2x, a push
// returns the stake and a dealer win pays nothing. Card sets are kept for
// display until the next deal.
func (t *Table) Settle() (HandOutcome, error) {
	if t.phase != PhasePayout {
		return HandOutcome{}, fmt.Errorf("%w: the dealer has not revealed yet", ErrInvalidAction)
	}

	dealer := Evaluate(t.dealerCards)

	primary := Evaluate(t.playerCards)
	if t.hasSplit {
		// A two-card 21 assembled after splitting pays as a plain 21.
		primary.Blackjack = false
	}

	outcome := HandOutcome{Primary: settleBet(primary, dealer, t.bet)}
	outcome.Payout = outcome.Primary.Payout

	if t.hasSplit {
		splitEval := Evaluate(t.splitCards)
		splitEval.Blackjack = false
		split := settleBet(splitEval, dealer, t.splitBet)
		outcome.Split = &split
		outcome.Payout += split.Payout
	}

	if outcome.Payout > 0 {
		if err := t.setStack(t.stack + outcome.Payout); err != nil {
			return HandOutcome{}, err
		}
	}

	t.emitEvent(events.HandSettled{
		TableID: t.ID,
		Result:  string(outcome.Primary.Result),
		Payout:  outcome.Payout,
		Stack:   t.stack,
	})

	t.betPlaced = false
	t.phase = PhaseAwaitingBet
	return outcome, nil
}

// settleBet resolves a single bet against the dealer's hand.
func settleBet(player, dealer HandValue, bet int) Outcome {
	switch {
	case player.Blackjack && !dealer.Blackjack:
		// The bet comes back alongside 1.5x winnings. An odd bet rounds
		// the half-win down to whole chips.
		return Outcome{Result: ResultBlackjack, Bet: bet, Payout: bet*2 + bet/2}
	case player.Value <= handLimit && (player.Value > dealer.Value || dealer.Value > handLimit):
		return Outcome{Result: ResultWin, Bet: bet, Payout: bet * 2}
	case player.Value <= handLimit && player.Value == dealer.Value && player.Blackjack == dealer.Blackjack:
		return Outcome{Result: ResultPush, Bet: bet, Payout: bet}
	default:
		return Outcome{Result: ResultLoss, Bet: bet}
	}
}

// AdvanceShoeCheck raises the reshuffle flag once the shoe has been consumed
// past its cut point. The flag is one-way for the shoe's lifetime.
func (t *Table) AdvanceShoeCheck() {
	if t.reshuffle || !t.shoe.NeedsReshuffle() {
		return
	}
	t.reshuffle = true
	t.emitEvent(events.ReshuffleReached{TableID: t.ID, Remaining: t.shoe.Remaining()})
}

// setStack is the single write path for the chip stack.
func (t *Table) setStack(v int) error {
	if v < 0 {
		return fmt.Errorf("%w: %d", ErrStackBounds, v)
	}
	t.stack = v
	return nil
}

// RegisterEventHandler registers a callback function that will be called when events occur
func (t *Table) RegisterEventHandler(handler events.EventHandler) {
	t.eventHandlers = append(t.eventHandlers, handler)
}

// Events returns every event emitted by this table so far.
func (t *Table) Events() []events.Event {
	return t.events
}

// emitEvent notifies all registered handlers of a new event
func (t *Table) emitEvent(event events.Event) {
	t.events = append(t.events, event)

	for _, handler := range t.eventHandlers {
		handler(event)
	}
}
