package main

import (
	"fmt"
	"os"

	_ "github.com/ncdata/cdl/cmd/cdl/check"
	_ "github.com/ncdata/cdl/cmd/cdl/format"
	"github.com/ncdata/cdl/cmd/cdl/root"
)

func main() {
	_, err := root.Cdl.ExecRoot(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}
