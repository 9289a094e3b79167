package events

import (
	"testing"

	"github.com/cardroom/blackjack/cards"
	"github.com/stretchr/testify/require"
)

func TestInMemoryEventStore(t *testing.T) {
	store := NewInMemoryEventStore()
	tableID := "table-123"

	t.Run("append and load events", func(t *testing.T) {
		handStarted := HandStarted{
			TableID: tableID,
			HandID:  "hand-456",
			Bet:     10,
		}
		cardDealt := CardDealt{
			TableID: tableID,
			Seat:    SeatPlayer,
			Card:    cards.Card(12), // A♣
		}
		settled := HandSettled{
			TableID: tableID,
			Result:  "blackjack",
			Payout:  25,
			Stack:   1015,
		}

		require.NoError(t, store.Append(handStarted))
		require.NoError(t, store.Append(cardDealt))
		require.NoError(t, store.Append(settled))

		loaded, err := store.LoadEvents(tableID)
		require.NoError(t, err)
		require.Len(t, loaded, 3)

		// Events come back in append order.
		require.Equal(t, "HAND_STARTED", loaded[0].EventName())
		require.Equal(t, "CARD_DEALT", loaded[1].EventName())
		require.Equal(t, "HAND_SETTLED", loaded[2].EventName())
	})

	t.Run("unknown table returns no events", func(t *testing.T) {
		loaded, err := store.LoadEvents("missing-table")
		require.NoError(t, err)
		require.Empty(t, loaded)
	})

	t.Run("events without a table id are rejected", func(t *testing.T) {
		err := store.Append(BetPlaced{Amount: 10})
		require.Error(t, err)
	})
}

func TestGetTableID(t *testing.T) {
	require.Equal(t, "t-1", GetTableID(BetPlaced{TableID: "t-1", Amount: 5}))
	require.Equal(t, "t-2", GetTableID(&HandSplit{TableID: "t-2", SplitBet: 5}))
	require.Equal(t, "", GetTableID(BetPlaced{}))
}
