package cdl_test

import (
	"math"
	"strings"
	"testing"

	"github.com/ncdata/cdl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func temperatureDataset() *cdl.Dataset {
	ds := cdl.NewDataset()
	ds.AddDimension(cdl.Dimension{Name: "lat", Size: 2})
	ds.AddDimension(cdl.Dimension{Name: "lon", Size: 2})
	lat := cdl.NewVariable("lat", cdl.TypeFloat32, []string{"lat"}, []int{2})
	lat.Data.Elements = []float64{0, 1}
	ds.AddVariable(lat)
	lon := cdl.NewVariable("lon", cdl.TypeFloat32, []string{"lon"}, []int{2})
	lon.Data.Elements = []float64{0, 1}
	ds.AddVariable(lon)
	temp := cdl.NewVariable("temp", cdl.TypeFloat64, []string{"lat", "lon"}, []int{2, 2})
	temp.Data.Elements = []float64{1, 2, 3, 4}
	temp.Attrs.Set("units", cdl.StringValue("K"))
	ds.AddVariable(temp)
	ds.Attrs.Set("title", cdl.StringValue("Temperature data"))
	return ds
}

const temperatureCDL = `netcdf temperature {
dimensions:
    lat = 2;
    lon = 2;
variables:
    float lat(lat);
    float lon(lon);
    double temp(lat, lon);
        temp:units = "K";
    // global attributes
        :title = "Temperature data";
data:
    lat = 0, 1;
    lon = 0, 1;
    temp = 1, 2, 3, 4;
}`

func TestFormat(t *testing.T) {
	out := cdl.FormatDataset(temperatureDataset(), "temperature")
	assert.Equal(t, temperatureCDL, out)
}

func TestFormatIdempotent(t *testing.T) {
	ds := temperatureDataset()
	first := cdl.FormatDataset(ds, "temperature")
	second := cdl.FormatDataset(ds, "temperature")
	assert.Equal(t, first, second)
}

func TestFormatCoordinatesFirst(t *testing.T) {
	// Declare the data variable before the coordinate; the rendering
	// must still list the coordinate first.
	ds := assemble(t, `netcdf t {
dimensions:
    n = 1;
variables:
    double a(n);
    int n(n);
}`)
	out := cdl.FormatDataset(ds, "t")
	assert.Less(t, strings.Index(out, "int n(n);"), strings.Index(out, "double a(n);"))
}

func TestFormatDimensionOrder(t *testing.T) {
	ds := cdl.NewDataset()
	ds.AddDimension(cdl.Dimension{Name: "zz", Size: 1})
	ds.AddDimension(cdl.Dimension{Name: "aa", Size: 2})
	out := cdl.FormatDataset(ds, "t")
	assert.Less(t, strings.Index(out, "zz = 1;"), strings.Index(out, "aa = 2;"))
}

func TestFormatScalar(t *testing.T) {
	ds := cdl.NewDataset()
	x := cdl.NewVariable("x", cdl.TypeInt32, nil, nil)
	x.Data.Elements[0] = 7
	ds.AddVariable(x)
	out := cdl.FormatDataset(ds, "t")
	assert.Contains(t, out, "    int x;\n")
	assert.Contains(t, out, "    x = 7;\n")
}

func TestFormatNaN(t *testing.T) {
	ds := cdl.NewDataset()
	ds.AddDimension(cdl.Dimension{Name: "n", Size: 3})
	a := cdl.NewVariable("a", cdl.TypeFloat32, []string{"n"}, []int{3})
	a.Data.Elements = []float64{1, math.NaN(), 3}
	ds.AddVariable(a)
	out := cdl.FormatDataset(ds, "t")
	assert.Contains(t, out, "a = 1, NaN, 3;")
}

func TestFormatWrapsLongData(t *testing.T) {
	ds := cdl.NewDataset()
	ds.AddDimension(cdl.Dimension{Name: "n", Size: 12})
	a := cdl.NewVariable("a", cdl.TypeInt32, []string{"n"}, []int{12})
	for i := range a.Data.Elements {
		a.Data.Elements[i] = float64(i)
	}
	ds.AddVariable(a)
	out := cdl.FormatDataset(ds, "t")
	assert.Contains(t, out, "    a = 0, 1, 2, 3, 4, 5, 6, 7,\n    8, 9, 10, 11;\n")
}

func TestFormatUnlimited(t *testing.T) {
	ds := cdl.NewDataset()
	ds.AddDimension(cdl.Dimension{Name: "time", Size: 3, Unlimited: true})
	out := cdl.FormatDataset(ds, "t")
	assert.Contains(t, out, "    time = UNLIMITED;\n")
}

func TestFormatAttrValues(t *testing.T) {
	ds := cdl.NewDataset()
	ds.Attrs.Set("flag", cdl.BoolValue(true))
	ds.Attrs.Set("off", cdl.BoolValue(false))
	ds.Attrs.Set("missing", cdl.NumberValue(math.NaN()))
	ds.Attrs.Set("note", cdl.StringValue(`say "hi"`))
	out := cdl.FormatDataset(ds, "t")
	assert.Contains(t, out, ":flag = 1;")
	assert.Contains(t, out, ":off = 0;")
	assert.Contains(t, out, ":missing = NaN;")
	assert.Contains(t, out, `:note = "say \"hi\"";`)
}

func TestFormatSkipsZeroLengthData(t *testing.T) {
	ds := cdl.NewDataset()
	ds.AddDimension(cdl.Dimension{Name: "n", Size: 0})
	ds.AddVariable(cdl.NewVariable("a", cdl.TypeFloat64, []string{"n"}, []int{0}))
	out := cdl.FormatDataset(ds, "t")
	assert.Contains(t, out, "double a(n);")
	assert.NotContains(t, out, "a = ")
	require.True(t, strings.HasSuffix(out, "data:\n}"))
}
