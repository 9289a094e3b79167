package console

import (
	"strings"

	"github.com/pterm/pterm"

	"github.com/cardroom/blackjack/blackjack"
	"github.com/cardroom/blackjack/cards"
)

// FaceDown is the display character for the dealer's hole card.
const FaceDown = "▓"

// colorCard renders a card with its suit colored: red for diamonds and
// hearts, black for clubs and spades.
func colorCard(c cards.Card) string {
	suit := c.Suit()
	switch suit {
	case "♦", "♥":
		suit = pterm.LightRed(suit)
	default:
		suit = pterm.Black(suit)
	}
	return c.Rank() + suit
}

func handString(hand cards.Stack) string {
	labels := make([]string, len(hand))
	for i, c := range hand {
		labels[i] = colorCard(c)
	}
	return strings.Join(labels, " - ")
}

func handInfo(title string, hand cards.Stack, bet int) string {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	eval := blackjack.Evaluate(hand)
	value := pterm.Sprintf("Value: %d", eval.Value)
	if eval.Blackjack {
		value = pterm.LightGreen("Blackjack!")
	} else if eval.Value > 21 {
		value = pterm.LightRed("Bust!")
	}
	body := pterm.Sprintf("%s\n%s\nBet: %d\n", handString(hand), value, bet)
	return pbox.WithTitle(title).WithTitleTopLeft().Sprintf(body)
}

func dealerInfo(t *blackjack.Table) string {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	hand := t.DealerCards()
	body := handString(hand)
	if t.Phase() == blackjack.PhasePlayerActing || t.Phase() == blackjack.PhaseSplitActing {
		// The hole card is not drawn until the reveal; show a placeholder.
		body += " - " + FaceDown
	} else {
		body += pterm.Sprintf("\nValue: %d", blackjack.Evaluate(hand).Value)
	}
	return pbox.WithTitle("Dealer").WithTitleTopLeft().Sprintf(body + "\n")
}

func stackInfo(t *blackjack.Table) string {
	pbox := pterm.DefaultBox.WithLeftPadding(10).WithRightPadding(10).WithTopPadding(1).WithBottomPadding(1)
	return pbox.WithTitle("Chips").WithTitleTopLeft().Sprintf("Stack: %d\n", t.Stack())
}

// render draws the whole table: dealer on top, the player's hand(s) in the
// middle, the chip stack at the bottom. It reads table state only and holds
// no game rules.
func render(t *blackjack.Table) {
	playerTitle := "Your hand"
	hands := []pterm.Panel{{Data: handInfo(playerTitle, t.PlayerCards(), t.Bet())}}
	if t.HasSplit() {
		hands = append(hands, pterm.Panel{Data: handInfo("Split hand", t.SplitCards(), t.SplitBet())})
	}

	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{{Data: dealerInfo(t)}},
		hands,
		{{Data: stackInfo(t)}},
	}).Render()
}
