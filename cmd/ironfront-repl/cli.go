package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/turnforge/ironfront/pathing"
	"github.com/turnforge/ironfront/simfixture"
)

// CLI is the interactive frame-stepper: a loaded scenario's Driver/World
// plus a readline instance, so a route can be issued and its budget
// exhaustion watched one tick at a time.
type CLI struct {
	scenario *simfixture.Scenario
	driver   *pathing.Driver
	world    *simfixture.World
	budget   *pathing.SearchBudget
	readline *readline.Instance
}

func NewCLI(scenarioPath string) (*CLI, error) {
	sc, err := simfixture.Load(scenarioPath)
	if err != nil {
		return nil, err
	}
	driver, world := simfixture.NewDriver(sc)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "ironfront> ",
		HistoryFile:     "/tmp/ironfront-repl.history",
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return nil, fmt.Errorf("ironfront-repl: readline: %w", err)
	}

	return &CLI{
		scenario: sc,
		driver:   driver,
		world:    world,
		budget:   &pathing.SearchBudget{Limit: sc.Budget},
		readline: rl,
	}, nil
}

func (c *CLI) Close() { c.readline.Close() }

// ExecuteCommand runs one REPL line and returns the text to print. The
// literal string "quit" tells the caller's loop to stop, matching the
// teacher REPL's sentinel-return convention.
func (c *CLI) ExecuteCommand(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}

	switch fields[0] {
	case "quit", "exit":
		return "quit"
	case "help":
		return helpText
	case "tick":
		n := 1
		if len(fields) > 1 {
			if v, err := strconv.Atoi(fields[1]); err == nil {
				n = v
			}
		}
		for i := 0; i < n; i++ {
			c.world.Tick()
			c.driver.UpdateTick(c.budget)
		}
		return fmt.Sprintf("advanced to frame %d (budget consumed %d/%d)", c.world.FrameNumber(), c.budget.Consumed, c.budget.Limit)
	case "route":
		return c.route(fields[1:])
	case "units":
		return c.listUnits()
	case "status":
		return fmt.Sprintf("frame %d, %d units", c.world.FrameNumber(), len(c.world.Units))
	default:
		return fmt.Sprintf("unknown command %q, type 'help' for the list", fields[0])
	}
}

func (c *CLI) route(args []string) string {
	if len(args) != 3 {
		return "usage: route <unit-id> <target-x> <target-y>"
	}
	unit := c.world.ByID(args[0])
	if unit == nil {
		return fmt.Sprintf("no such unit %q", args[0])
	}
	tx, err1 := strconv.Atoi(args[1])
	ty, err2 := strconv.Atoi(args[2])
	if err1 != nil || err2 != nil {
		return "target-x and target-y must be integers"
	}
	rv := c.driver.Route(unit, int32(tx), int32(ty), c.budget)
	if rv == pathing.RESCHEDULE {
		c.world.Enqueue(unit)
	}
	return fmt.Sprintf("%s -> %s (%d waypoints)", unit.ID, rv, len(unit.Move.Waypoints))
}

func (c *CLI) listUnits() string {
	var b strings.Builder
	for _, u := range c.world.Units {
		fmt.Fprintf(&b, "%-12v player %d  pos (%d,%d)  status %v  %d waypoints\n",
			u.ID, u.PlayerID, u.Position.X, u.Position.Y, u.Move.Status, len(u.Move.Waypoints))
	}
	if b.Len() == 0 {
		return "no units in this scenario"
	}
	return strings.TrimRight(b.String(), "\n")
}

const helpText = `commands:
  route <unit-id> <x> <y>   issue a move for a unit, one Driver.Route call
  tick [n]                  advance n ticks (default 1), resetting the budget each time
  units                     list units, positions, status and waypoint counts
  status                    show the current frame number
  help                      show this text
  quit                      exit the REPL`
