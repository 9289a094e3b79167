// Package console is the terminal front end for the blackjack engine. It
// renders table state and forwards raw input strings into the table's
// setters; all rule decisions stay inside the blackjack package.
package console

import (
	"errors"

	"github.com/pterm/pterm"

	"github.com/cardroom/blackjack/blackjack"
)

// Run plays hands until the player runs out of chips, reaches the stack
// ceiling or the shoe passes its cut card.
func Run(t *blackjack.Table) error {
	for !t.Broke() && !t.ReachedCeiling() && !t.Reshuffle() {
		if err := playHand(t); err != nil {
			return err
		}
		t.AdvanceShoeCheck()
	}

	switch {
	case t.Broke():
		pterm.Error.Println("You are out of chips. Better luck next time!")
	case t.ReachedCeiling():
		pterm.Success.Printfln("You beat the house! Final stack: %d", t.Stack())
	default:
		pterm.Info.Printfln("The shoe has reached its cut card. Final stack: %d", t.Stack())
	}
	return nil
}

func playHand(t *blackjack.Table) error {
	if err := promptBet(t); err != nil {
		return err
	}
	if err := t.DealInitial(); err != nil {
		return err
	}

	for t.Phase() == blackjack.PhasePlayerActing || t.Phase() == blackjack.PhaseSplitActing {
		render(t)
		if err := promptAction(t); err != nil {
			return err
		}
	}

	if err := t.RevealDealer(); err != nil {
		return err
	}

	outcome, err := t.Settle()
	if err != nil {
		return err
	}

	render(t)
	announce("Your hand", outcome.Primary)
	if outcome.Split != nil {
		announce("Split hand", *outcome.Split)
	}
	return nil
}

// promptBet re-prompts until the table accepts a bet.
func promptBet(t *blackjack.Table) error {
	for {
		input, err := pterm.DefaultInteractiveTextInput.
			WithDefaultText("How much would you like to bet on this hand?").
			Show()
		if err != nil {
			return err
		}

		err = t.SetBet(input)
		if err == nil {
			return nil
		}
		if errors.Is(err, blackjack.ErrInvalidBet) {
			pterm.Error.Println(err)
			continue
		}
		return err
	}
}

// promptAction re-prompts until the table accepts an action; the active hand
// may end on its own after a bust or blackjack, so the caller re-checks the
// phase between prompts.
func promptAction(t *blackjack.Table) error {
	for {
		key, err := pterm.DefaultInteractiveTextInput.
			WithDefaultText("Hit (h), Stand (s), Double (d) or Split (2)?").
			Show()
		if err != nil {
			return err
		}

		err = t.ApplyAction(key)
		if err == nil {
			return nil
		}
		if errors.Is(err, blackjack.ErrInvalidAction) {
			pterm.Error.Println(err)
			continue
		}
		return err
	}
}

func announce(title string, outcome blackjack.Outcome) {
	switch outcome.Result {
	case blackjack.ResultBlackjack:
		pterm.Success.Printfln("%s: blackjack! You win %d.", title, outcome.Payout-outcome.Bet)
	case blackjack.ResultWin:
		pterm.Success.Printfln("%s: you win %d.", title, outcome.Payout-outcome.Bet)
	case blackjack.ResultPush:
		pterm.Info.Printfln("%s: push. Your bet of %d is returned.", title, outcome.Bet)
	default:
		pterm.Warning.Printfln("%s: the dealer wins. You lose %d.", title, outcome.Bet)
	}
}
