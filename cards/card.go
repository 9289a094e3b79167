package cards

// Card encodes a playing card as an integer in [0,51]. The rank is the
// remainder after dividing by 13 and the suit is the quotient, so every
// value maps to exactly one (rank, suit) pair.
type Card int

// Stack represents multiple cards
type Stack []Card

var ranks = [13]string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

var suits = [4]string{"♣", "♦", "♥", "♠"}

// Rank returns the rank symbol of the card (2..10, J, Q, K or A).
func (c Card) Rank() string {
	return ranks[int(c)%13]
}

// Suit returns the suit symbol of the card.
func (c Card) Suit() string {
	return suits[int(c)/13]
}

// String returns the display label of the card, e.g. "10♥" or "A♠".
func (c Card) String() string {
	return c.Rank() + c.Suit()
}

// SameRank checks if two cards share a rank.
func (c Card) SameRank(other Card) bool {
	return int(c)%13 == int(other)%13
}
