package root

import (
	"flag"

	"github.com/mccanne/charm"
)

var Cdl = &charm.Spec{
	Name:  "cdl",
	Usage: "cdl <command> [options] [arguments...]",
	Short: "translate between CDL text and assembled datasets",
	Long: `
cdl parses UCAR Common Data Language files into in-memory datasets and
renders datasets back out as canonical CDL text.`,
	New: func(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
		return &Command{}, nil
	},
}

func init() {
	Cdl.Add(charm.Help)
}

type Command struct{}

func (c *Command) Run(args []string) error {
	if len(args) == 0 {
		return Cdl.Exec(c, []string{"help"})
	}
	return charm.ErrNoRun
}
