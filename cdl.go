// Package cdl translates between the UCAR Common Data Language (CDL)
// textual notation and an in-memory dataset of dimensions, typed
// multidimensional variables, and attributes.
//
// The parse direction is a three-step pipeline: a Parser turns CDL text
// into a syntax tree, an Analyzer reduces the tree to a flat set of
// Declarations, and a Builder materializes typed, shaped arrays from
// those declarations.  The Formatter runs the other way, rendering any
// Dataset as canonical CDL text that the Parser accepts.
//
// Every step is a pure function over in-memory state.  A Parser,
// Analyzer, Builder, or Formatter owns its own intermediate state, so
// concurrent pipelines over independent inputs need no coordination.
package cdl

// ParseDataset runs the full parse pipeline over src: parse the text
// into a syntax tree, reduce the tree to declarations, and assemble the
// declarations into a Dataset.
func ParseDataset(src string) (*Dataset, error) {
	file, err := NewParser(src).Parse()
	if err != nil {
		return nil, err
	}
	decls, err := NewAnalyzer().Reduce(file)
	if err != nil {
		return nil, err
	}
	return NewBuilder().Build(decls)
}

// FormatDataset renders ds as canonical CDL text under the given
// dataset name.
func FormatDataset(ds *Dataset, name string) string {
	return NewFormatter().Format(ds, name)
}
