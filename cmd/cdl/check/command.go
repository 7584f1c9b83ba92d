package check

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/mccanne/charm"
	"github.com/ncdata/cdl"
	"github.com/ncdata/cdl/cmd/cdl/root"
)

var Check = &charm.Spec{
	Name:  "check",
	Usage: "check <file.cdl> [file.cdl ...]",
	Short: "parse and assemble CDL files, reporting the first error",
	Long: `
The check command runs each file through the full pipeline (parse,
reduce, assemble) and prints a one-line summary per file, or the first
structural error encountered.`,
	New: newCommand,
}

func init() {
	root.Cdl.Add(Check)
}

type Command struct {
	*root.Command
}

func newCommand(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	return &Command{Command: parent.(*root.Command)}, nil
}

func (c *Command) Run(args []string) error {
	if len(args) == 0 {
		return errors.New("check requires at least one CDL input file")
	}
	for _, path := range args {
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		ds, err := cdl.ParseDataset(string(src))
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		fmt.Printf("%s: %d dimensions, %d variables, %d global attributes\n",
			path, len(ds.Dimensions()), len(ds.Variables()), ds.Attrs.Len())
	}
	return nil
}
