package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/services/blackjack"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	loseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	pushStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))
)

// table plays rounds over a text stream
type table struct {
	in     *bufio.Scanner
	out    io.Writer
	dealer *blackjack.Dealer
	rules  blackjack.Rules
}

func newTable(in io.Reader, out io.Writer, dealer *blackjack.Dealer, rules blackjack.Rules) *table {
	return &table{
		in:     bufio.NewScanner(in),
		out:    out,
		dealer: dealer,
		rules:  rules,
	}
}

// Play runs the given number of rounds and returns the player's net result
func (t *table) Play(rounds int, bet float64) (float64, error) {
	total := 0.0
	for i := 1; i <= rounds; i++ {
		fmt.Fprintln(t.out, headerStyle.Render(fmt.Sprintf("Round %d, bet %.2f", i, bet)))

		result, err := t.playRound(bet)
		if err != nil {
			return total, err
		}
		total += result.Payout()
	}
	return total, nil
}

func (t *table) playRound(bet float64) (blackjack.MoveResult, error) {
	result := t.dealer.StartGame(t.rules, bet)

	for !result.Outcome.IsTerminal() {
		t.showTable(result.Game, false)

		move, err := t.readMove()
		if err != nil {
			return result, err
		}
		result = t.dealer.MakePlayerMove(result.Game, move)
	}

	t.showTable(result.Game, true)
	t.showResult(result)
	return result, nil
}

// readMove prompts until the player enters a valid move
func (t *table) readMove() (blackjack.PlayerMove, error) {
	for {
		fmt.Fprint(t.out, "hit or stay? ")
		if !t.in.Scan() {
			if err := t.in.Err(); err != nil {
				return 0, types.WrapError(types.ErrInternalError, "reading move", err)
			}
			return 0, types.NewGameError(types.ErrInvalidArgument, "input ended before the round finished")
		}

		move, err := blackjack.ParsePlayerMove(t.in.Text())
		if err == nil {
			return move, nil
		}
		fmt.Fprintln(t.out, err)
	}
}

func (t *table) showTable(game *blackjack.Game, reveal bool) {
	if reveal {
		fmt.Fprintf(t.out, "Dealer: %s (%d)\n", game.DealerHand().Pretty(), game.DealerValue())
	} else {
		fmt.Fprintf(t.out, "Dealer: ?? %s\n", game.DealerVisibleHand.Pretty())
	}
	fmt.Fprintf(t.out, "You:    %s (%d)\n", game.PlayerHand.Pretty(), game.PlayerValue())
}

func (t *table) showResult(result blackjack.MoveResult) {
	style := pushStyle
	switch {
	case result.Outcome.PlayerWins():
		style = winStyle
	case result.Outcome.DealerWins():
		style = loseStyle
	}
	fmt.Fprintln(t.out, style.Render(fmt.Sprintf("Result: %s, payout %+.2f", result.Outcome, result.Payout())))
}
