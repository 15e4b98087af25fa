// ironfront-repl is an interactive, one-tick-at-a-time frame stepper over
// a scenario fixture, for watching a parked search resume across ticks by
// hand — the way cmd/repl drove a headless game state from the command
// line in the teacher repo.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/chzyer/readline"
)

func main() {
	var (
		help = flag.Bool("help", false, "show help information")
	)
	flag.Parse()

	if *help || len(flag.Args()) == 0 {
		showHelp()
		return
	}

	scenarioPath := flag.Args()[0]
	cli, err := NewCLI(scenarioPath)
	if err != nil {
		log.Fatalf("ironfront-repl: %v", err)
	}
	defer cli.Close()

	fmt.Printf("ironfront-repl - scenario %s loaded\n", scenarioPath)
	fmt.Println("type 'help' for available commands, 'quit' to exit")

	if len(flag.Args()) > 1 {
		for _, cmd := range flag.Args()[1:] {
			fmt.Printf("> %s\n", cmd)
			result := cli.ExecuteCommand(cmd)
			if result == "quit" {
				return
			}
			fmt.Println(result)
		}
	}

	startREPL(cli)
}

func showHelp() {
	fmt.Println("ironfront-repl - interactive unit-pathfinding frame stepper")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  ironfront-repl <scenario-file> [commands...]")
	fmt.Println()
	fmt.Println("ARGUMENTS:")
	fmt.Println("  scenario-file        Scenario fixture to load")
	fmt.Println("  commands             Optional commands to execute before entering the REPL")
	fmt.Println()
	fmt.Println(helpText)
}

func startREPL(cli *CLI) {
	for {
		line, err := cli.readline.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			} else if err == io.EOF {
				fmt.Println("\ngoodbye")
				break
			}
			log.Printf("ironfront-repl: read error: %v", err)
			break
		}

		command := strings.TrimSpace(line)
		if command == "" {
			continue
		}

		result := cli.ExecuteCommand(command)
		if result == "quit" {
			fmt.Println("goodbye")
			break
		}
		fmt.Println(result)
	}
}
