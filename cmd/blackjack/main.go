package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/fadedpez/blackjack/internal/config"
	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/fadedpez/blackjack/pkg/services/blackjack"
)

type CLI struct {
	Bet        float64 `short:"b" help:"Bet for each round (defaults to DEFAULT_BET)"`
	HitsSoft17 *bool   `name:"hits-soft17" help:"Dealer hits on soft 17 (defaults to DEALER_HITS_SOFT17)"`
	Seed       int64   `help:"Shuffle seed for reproducible rounds (defaults to SHUFFLE_SEED, 0 uses the clock)"`
	Rounds     int     `short:"n" default:"1" help:"Number of rounds to play"`
	LogLevel   string  `name:"log-level" help:"Log level: debug, info, warn or error (defaults to LOG_LEVEL)"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Play blackjack against the dealer. Type hit or stay at each prompt."),
	)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		ctx.Exit(1)
	}

	if err := cli.apply(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid flags: %v\n", err)
		ctx.Exit(1)
	}

	logger := logging.NewLoggerWithWriter(cfg.LogLevel, os.Stderr)
	dealer := blackjack.NewDealer(entities.NewRandomSource(cfg.ShuffleSeed), logger)
	table := newTable(os.Stdin, os.Stdout, dealer, cfg.Rules())

	total, err := table.Play(cli.Rounds, cfg.DefaultBet)
	if err != nil {
		logger.LogError(err)
		ctx.Exit(1)
	}

	fmt.Printf("Net result after %d round(s): %+.2f\n", cli.Rounds, total)
}

// apply layers command line flags over the loaded config
func (c *CLI) apply(cfg *config.Config) error {
	if c.Bet != 0 {
		cfg.DefaultBet = c.Bet
	}
	if c.HitsSoft17 != nil {
		cfg.DealerHitsSoft17 = *c.HitsSoft17
	}
	if c.Seed != 0 {
		cfg.ShuffleSeed = c.Seed
	}
	if c.LogLevel != "" {
		level, err := logging.ParseLevel(c.LogLevel)
		if err != nil {
			return err
		}
		cfg.LogLevel = level
	}
	if c.Rounds < 1 {
		return fmt.Errorf("rounds must be at least 1, got %d", c.Rounds)
	}
	return cfg.Validate()
}
