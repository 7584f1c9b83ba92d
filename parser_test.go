package cdl_test

import (
	"errors"
	"math"
	"testing"

	"github.com/ncdata/cdl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) *cdl.File {
	t.Helper()
	file, err := cdl.NewParser(src).Parse()
	require.NoError(t, err)
	return file
}

func TestParseDimensions(t *testing.T) {
	file := parse(t, "netcdf t { dimensions: a = 1; b=3; }")
	require.Len(t, file.Body, 2)
	a, ok := file.Body[0].(*cdl.DimDecl)
	require.True(t, ok)
	assert.Equal(t, "a", a.Name)
	assert.Equal(t, 1, a.Size)
	b := file.Body[1].(*cdl.DimDecl)
	assert.Equal(t, "b", b.Name)
	assert.Equal(t, 3, b.Size)
}

func TestParseName(t *testing.T) {
	file := parse(t, "netcdf Some Data { }")
	assert.Equal(t, "Some Data", file.Name)
	assert.Empty(t, file.Body)
}

func TestParseVariables(t *testing.T) {
	file := parse(t, "netcdf t { variables: float a(x,y); a:someAttr = 0; int b(y); int c; }")
	require.Len(t, file.Body, 4)
	a := file.Body[0].(*cdl.VarDecl)
	assert.Equal(t, "float", a.Type)
	assert.Equal(t, "a", a.Name)
	assert.Equal(t, []string{"x", "y"}, a.Dims)
	attr := file.Body[1].(*cdl.AttrDecl)
	assert.Equal(t, "a", attr.Var)
	assert.Equal(t, "someAttr", attr.Name)
	assert.Equal(t, cdl.LiteralNumber, attr.Value.Kind)
	assert.Equal(t, 0.0, attr.Value.Num)
	c := file.Body[3].(*cdl.VarDecl)
	assert.Equal(t, "c", c.Name)
	assert.Empty(t, c.Dims)
}

func TestParseGlobalAttr(t *testing.T) {
	file := parse(t, `netcdf t { variables: :title = "hello"; }`)
	require.Len(t, file.Body, 1)
	attr := file.Body[0].(*cdl.AttrDecl)
	assert.Equal(t, "", attr.Var)
	assert.Equal(t, "title", attr.Name)
	assert.Equal(t, "hello", attr.Value.Str)
}

func TestParseData(t *testing.T) {
	file := parse(t, "netcdf t { data: time = 1, NaN, _, -2.5e3; }")
	require.Len(t, file.Body, 1)
	datum := file.Body[0].(*cdl.Datum)
	assert.Equal(t, "time", datum.Name)
	require.Len(t, datum.Values, 4)
	assert.Equal(t, 1.0, datum.Values[0].Num)
	assert.True(t, math.IsNaN(datum.Values[1].Num))
	assert.Equal(t, cdl.LiteralUnset, datum.Values[2].Kind)
	assert.Equal(t, -2500.0, datum.Values[3].Num)
}

func TestParseUnlimited(t *testing.T) {
	file := parse(t, "netcdf t { dimensions: time = UNLIMITED; }")
	dim := file.Body[0].(*cdl.DimDecl)
	assert.True(t, dim.Unlimited)
	assert.Equal(t, 0, dim.Size)
}

func TestParseGroup(t *testing.T) {
	file := parse(t, `
netcdf t {
dimensions:
    time = 3;
group: SubGroup {
    dimensions:
        time = 1;
    variables:
        int time(time);
}
}`)
	require.Len(t, file.Body, 2)
	group, ok := file.Body[1].(*cdl.Group)
	require.True(t, ok)
	assert.Equal(t, "SubGroup", group.Name)
	require.Len(t, group.Body, 2)
	assert.Equal(t, 1, group.Body[0].(*cdl.DimDecl).Size)
}

func TestParseComments(t *testing.T) {
	file := parse(t, `
netcdf t { // a trailing comment
// a full-line comment
dimensions:
    a = 1; // another
}`)
	require.Len(t, file.Body, 1)
	assert.Equal(t, "a", file.Body[0].(*cdl.DimDecl).Name)
}

func TestParseStringEscapes(t *testing.T) {
	file := parse(t, `netcdf t { variables: :s = "a\"b\\c\nd"; }`)
	attr := file.Body[0].(*cdl.AttrDecl)
	assert.Equal(t, "a\"b\\c\nd", attr.Value.Str)
}

func TestParseErrors(t *testing.T) {
	cases := []string{
		"",
		"dimensions: a = 1;",
		"netcdf t {",
		"netcdf t { dimensions: a = ; }",
		"netcdf t { dimensions: a = -1; }",
		"netcdf t { data: a = ; }",
		`netcdf t { variables: :s = "unterminated; }`,
		"netcdf t { a = 1; }",
		"netcdf t { } trailing",
	}
	for _, src := range cases {
		_, err := cdl.NewParser(src).Parse()
		require.Error(t, err, "source: %q", src)
		var serr *cdl.SyntaxError
		require.True(t, errors.As(err, &serr), "source: %q", src)
		assert.Greater(t, serr.Line, 0)
		assert.Greater(t, serr.Column, 0)
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := cdl.NewParser("netcdf t {\n  !\n}").Parse()
	var serr *cdl.SyntaxError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, 2, serr.Line)
	assert.Equal(t, 3, serr.Column)
}
