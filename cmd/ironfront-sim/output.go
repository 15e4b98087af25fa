package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"

	"github.com/turnforge/ironfront/pathing"
)

// OutputFormatter handles formatting run/validate results in text or JSON,
// the way the teacher's cli/cmd package kept a single formatter shared
// across subcommands.
type OutputFormatter struct {
	JSON bool
}

func NewOutputFormatter() *OutputFormatter {
	return &OutputFormatter{JSON: isJSONOutput()}
}

func (f *OutputFormatter) Print(data any) error {
	if f.JSON {
		jsonBytes, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("ironfront-sim: marshal JSON: %w", err)
		}
		fmt.Println(string(jsonBytes))
		return nil
	}
	fmt.Println(data)
	return nil
}

var (
	colorOK    = color.New(color.FgGreen).SprintFunc()
	colorWait  = color.New(color.FgYellow).SprintFunc()
	colorResch = color.New(color.FgCyan).SprintFunc()
	colorFail  = color.New(color.FgRed).SprintFunc()
)

// colorVerdict renders a Retval with the teacher's terse, colorized CLI
// style rather than a bare string.
func colorVerdict(rv pathing.Retval) string {
	switch rv {
	case pathing.OK:
		return colorOK(rv.String())
	case pathing.WAIT:
		return colorWait(rv.String())
	case pathing.RESCHEDULE:
		return colorResch(rv.String())
	default:
		return colorFail(rv.String())
	}
}
