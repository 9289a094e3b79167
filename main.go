package main

import (
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/sanity-io/litter"

	"github.com/cardroom/blackjack/blackjack"
	"github.com/cardroom/blackjack/cards"
	"github.com/cardroom/blackjack/console"
	"github.com/cardroom/blackjack/events"
)

func main() {
	var (
		numDecks = flag.Int("decks", blackjack.DefaultNumDecks, "number of decks in the shoe (1-6)")
		stack    = flag.Int("stack", blackjack.DefaultStartingStack, "starting chip stack")
		seed     = flag.Int64("seed", 0, "shuffle seed (0 picks one from the clock)")
		debug    = flag.Bool("debug", false, "dump emitted events when the session ends")
	)
	flag.Parse()

	logger := slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	shoe, err := cards.NewShoe(*numDecks, rng)
	if err != nil {
		logger.Error("invalid shoe configuration", "error", err)
		os.Exit(1)
	}

	table, err := blackjack.NewTable(shoe, blackjack.TableRules{StartingStack: *stack})
	if err != nil {
		logger.Error("invalid table configuration", "error", err)
		os.Exit(1)
	}

	store := events.NewInMemoryEventStore()
	table.RegisterEventHandler(func(event events.Event) {
		if err := store.Append(event); err != nil {
			logger.Warn("failed to record event", "event", event.EventName(), "error", err)
		}
	})

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Black", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("jack", pterm.FgRed.ToStyle()),
	).Render()

	if err := console.Run(table); err != nil {
		logger.Error("session aborted", "error", err)
		os.Exit(1)
	}

	if *debug {
		handHistory, err := store.LoadEvents(table.ID)
		if err != nil {
			logger.Error("failed to load event history", "error", err)
			os.Exit(1)
		}
		litter.Dump(handHistory)
	}
}
