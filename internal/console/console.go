// internal/console/console.go
//
// Line-oriented caller console.
// Each input line is one command applied to the session; replies are plain text.
//
// Commands:
//   call N | N        toggle number N (1..75)
//   reset             clear the board
//   mode ID           switch winning pattern
//   modes             list patterns, marking the active one
//   status            last called, total and call order
//   new NAME          register a random card
//   add NAME n1..n25  register a card from 25 values, row by row;
//                     FREE, *, or any value outside 1..75 is a FREE cell
//   cards             list cards
//   show ID           print a card with called cells bracketed
//   rename ID NAME    rename a card, keeping its grid
//   rm ID             remove a card
//   winners           cards that satisfy the active pattern
//   help | quit
//
// Storage failures are printed and the loop keeps going.

package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/bingo/internal/bingo"
	"github.com/robalobadob/bingo/internal/game"
)

const help = `commands: call N | N, reset, mode ID, modes, status, new NAME, add NAME n1..n25, cards, show ID, rename ID NAME, rm ID, winners, help, quit`

// Console reads commands and writes replies.
type Console struct {
	s   *bingo.Session
	out io.Writer
}

// New builds a console over s writing to out.
func New(s *bingo.Session, out io.Writer) *Console {
	return &Console{s: s, out: out}
}

// Run processes lines from in until EOF, "quit", or ctx is done.
// Reading happens on its own goroutine so cancellation is not held up by a
// blocked reader; that goroutine exits once its pending read returns.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-done:
				return
			}
		}
		readErr <- sc.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return <-readErr
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if !c.Exec(ctx, line) {
				return nil
			}
		}
	}
}

// Exec applies one command line. It returns false when the console should stop.
func (c *Console) Exec(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	// a bare number is a call
	if _, err := strconv.Atoi(cmd); err == nil {
		cmd, args = "call", fields
	}

	switch cmd {
	case "call":
		c.call(ctx, args)
	case "reset":
		c.report(c.s.ResetBoard(ctx))
		c.printf("board cleared\n")
	case "mode":
		c.mode(ctx, args)
	case "modes":
		c.modes()
	case "status":
		c.status()
	case "new":
		c.newCard(ctx, args)
	case "add":
		c.addCard(ctx, args)
	case "cards":
		c.cards()
	case "show":
		c.show(args)
	case "rename":
		c.rename(ctx, args)
	case "rm":
		if len(args) != 1 {
			c.printf("usage: rm ID\n")
			break
		}
		c.report(c.s.RemoveCard(ctx, args[0]))
	case "winners":
		c.winners()
	case "help":
		c.printf("%s\n", help)
	case "quit", "exit":
		return false
	default:
		c.printf("unknown command %q; try help\n", cmd)
	}
	return true
}

func (c *Console) call(ctx context.Context, args []string) {
	if len(args) != 1 {
		c.printf("usage: call N\n")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > 75 {
		c.printf("not a bingo number: %s\n", args[0])
		return
	}
	num := game.Number(n)
	c.report(c.s.ToggleNumber(ctx, num))
	state := "called"
	if !c.s.IsCalled(num) {
		state = "uncalled"
	}
	c.printf("%s-%d %s (%d called)\n", c.s.LetterFor(num), n, state, c.s.TotalCalled())
	for _, w := range c.s.RegisteredWinners() {
		c.printf("BINGO: %s (%s)\n", w.Name, w.ID)
	}
}

func (c *Console) mode(ctx context.Context, args []string) {
	if len(args) != 1 {
		c.printf("usage: mode ID\n")
		return
	}
	applied, err := c.s.SetActiveMode(ctx, game.ModeID(args[0]))
	c.report(err)
	if !applied {
		c.printf("unknown mode %q; still %s\n", args[0], c.s.ActiveMode())
		return
	}
	c.printf("mode %s\n", c.s.ActiveMode())
}

func (c *Console) modes() {
	active := c.s.ActiveMode()
	for _, p := range c.s.Patterns() {
		mark := " "
		if p.ID == active {
			mark = "*"
		}
		c.printf("%s %s %-8s %s (%d cells)\n", mark, p.Icon, p.ID, p.Label, len(p.Cells))
	}
}

func (c *Console) status() {
	last, ok := c.s.LastCalled()
	if !ok {
		c.printf("nothing called\n")
		return
	}
	hist := c.s.History()
	parts := make([]string, len(hist))
	for i, n := range hist {
		parts[i] = fmt.Sprintf("%s-%d", c.s.LetterFor(n), n)
	}
	c.printf("last %s-%d, %d called: %s\n", c.s.LetterFor(last), last, c.s.TotalCalled(), strings.Join(parts, " "))
}

func (c *Console) newCard(ctx context.Context, args []string) {
	if len(args) == 0 {
		c.printf("usage: new NAME\n")
		return
	}
	id, err := c.s.AddCard(ctx, strings.Join(args, " "), c.s.GenerateRandomGrid())
	c.report(err)
	c.printf("card %s\n", id)
}

func (c *Console) addCard(ctx context.Context, args []string) {
	const cells = game.Size * game.Size
	if len(args) < cells+1 {
		c.printf("usage: add NAME n1..n%d\n", cells)
		return
	}
	name, vals := strings.Join(args[:len(args)-cells], " "), args[len(args)-cells:]

	rows := make([][]int, game.Size)
	for i, v := range vals {
		n := 0
		if !strings.EqualFold(v, "free") && v != "*" {
			var err error
			if n, err = strconv.Atoi(v); err != nil {
				c.printf("not a number: %s\n", v)
				return
			}
		}
		rows[i/game.Size] = append(rows[i/game.Size], n)
	}

	id, err := c.s.AddCard(ctx, name, game.NormalizeScannedGrid(rows))
	c.report(err)
	c.printf("card %s\n", id)
}

func (c *Console) cards() {
	list := c.s.Cards()
	if len(list) == 0 {
		c.printf("no cards\n")
		return
	}
	for _, card := range list {
		c.printf("%s %s\n", card.ID, card.Name)
	}
}

func (c *Console) show(args []string) {
	if len(args) != 1 {
		c.printf("usage: show ID\n")
		return
	}
	card, ok := c.s.Card(args[0])
	if !ok {
		c.printf("no card %s\n", args[0])
		return
	}
	c.printf("%s\n", card.Name)
	for _, col := range c.s.Columns() {
		c.printf("%5s", col.Letter)
	}
	c.printf("\n")
	for r := 0; r < game.Size; r++ {
		for col := 0; col < game.Size; col++ {
			cell := card.Grid[r][col]
			switch {
			case cell.IsFree():
				c.printf("%5s", "FREE")
			case c.s.IsCalled(cell.Number()):
				c.printf("%5s", fmt.Sprintf("[%d]", cell))
			default:
				c.printf("%5d", cell)
			}
		}
		c.printf("\n")
	}
	if c.s.CheckCardWin(card) {
		c.printf("BINGO\n")
	}
}

func (c *Console) rename(ctx context.Context, args []string) {
	if len(args) < 2 {
		c.printf("usage: rename ID NAME\n")
		return
	}
	card, ok := c.s.Card(args[0])
	if !ok {
		c.printf("no card %s\n", args[0])
		return
	}
	c.report(c.s.UpdateCard(ctx, card.ID, strings.Join(args[1:], " "), card.Grid))
}

func (c *Console) winners() {
	ws := c.s.RegisteredWinners()
	if len(ws) == 0 {
		c.printf("no winners under %s\n", c.s.ActiveMode())
		return
	}
	for _, w := range ws {
		c.printf("BINGO: %s (%s)\n", w.Name, w.ID)
	}
}

func (c *Console) report(err error) {
	if err != nil {
		log.Error().Err(err).Msg("command not saved")
		c.printf("warning: not saved: %v\n", err)
	}
}

func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}
