package format

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mccanne/charm"
	"github.com/ncdata/cdl"
	"github.com/ncdata/cdl/cmd/cdl/root"
)

var Format = &charm.Spec{
	Name:  "format",
	Usage: "format [-n name] <file.cdl>",
	Short: "re-render a CDL file in canonical form",
	Long: `
The format command parses a CDL file, assembles the dataset it
describes, and prints the dataset's canonical rendering to stdout:
coordinate variables first, data values wrapped at eight per line, and
fill values made explicit.`,
	New: newCommand,
}

func init() {
	root.Cdl.Add(Format)
}

type Command struct {
	*root.Command
	name string
}

func newCommand(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{Command: parent.(*root.Command)}
	f.StringVar(&c.name, "n", "", "dataset name for the rendered output (default: input base name)")
	return c, nil
}

func (c *Command) Run(args []string) error {
	if len(args) != 1 {
		return errors.New("format requires a single CDL input file")
	}
	path := args[0]
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	ds, err := cdl.ParseDataset(string(src))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	name := c.name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	fmt.Println(cdl.FormatDataset(ds, name))
	return nil
}
