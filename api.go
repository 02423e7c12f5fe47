package modislib

import (
	"fmt"
	"image/color"

	"github.com/lukeroth/gdal"
)

// Projection describes the map projection of the product grid.
type Projection struct {
	Name  string
	A     float64 // semi-major axis, meters
	B     float64 // semi-minor axis, meters (sphere, equal to A)
	Units string
}

// Proj4 renders the projection as a proj4 init string.
func (p Projection) Proj4() string {
	return fmt.Sprintf("+proj=sinu +R=%.3f +nadgrids=@null +wktext", p.A)
}

// Raster holds one variable as stored in the file: native shape, native
// numeric type, no scaling or masking applied. Data is a typed slice
// ([]uint8, []int16, ... per DType) of XSize*YSize values in row-major
// order.
type Raster struct {
	Name  string
	Data  interface{}
	DType gdal.DataType
	XSize int
	YSize int
}

// LegendEntry maps one integer category code to its label.
type LegendEntry struct {
	Code  int
	Label string
}

// Legend is the ordered code/label table of one classification scheme.
type Legend []LegendEntry

// Label returns the label for a category code.
func (l Legend) Label(code int) (label string, ok bool) {
	for _, e := range l {
		if e.Code == code {
			return e.Label, true
		}
	}
	return
}

// Strings renders the legend in the conventional "code - label" form.
func (l Legend) Strings() []string {
	out := make([]string, len(l))
	for i, e := range l {
		out[i] = fmt.Sprintf("%d - %s", e.Code, e.Label)
	}
	return out
}

// ColorEntry is one suggested display color, by common name and value.
type ColorEntry struct {
	Name string
	RGBA color.RGBA
}

// ColorMap is aligned index-for-index with the legend of its scheme.
type ColorMap []ColorEntry

func (c ColorMap) Names() []string {
	out := make([]string, len(c))
	for i, e := range c {
		out[i] = e.Name
	}
	return out
}

func (c ColorMap) Colors() []color.RGBA {
	out := make([]color.RGBA, len(c))
	for i, e := range c {
		out[i] = e.RGBA
	}
	return out
}
