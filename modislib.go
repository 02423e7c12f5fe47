package modislib

import (
	"github.com/wgdzlh/modislib/log"
	"github.com/wgdzlh/modislib/utils"

	"github.com/golang/geo/s2"
	"github.com/lukeroth/gdal"
	"go.uber.org/zap"
)

// MCD12Q1 is a read-only accessor over one MODIS MCD12Q1 land cover
// granule. It owns the underlying GDAL dataset from construction until
// Close; a single instance is not safe for concurrent use, distinct
// instances over distinct files are independent.
type MCD12Q1 struct {
	ds        gdal.Dataset
	opened    bool
	tile      [2]int
	structure string
	meta      string
	corners   [4]float64 // ulx, uly, lrx, lry, projection meters
	axisX     []float64
	axisY     []float64
	lons      [][]float64
	lats      [][]float64
	subs      map[string]string
	logTag    string
}

// NewMCD12Q1 opens an MCD12Q1 HDF granule, reads its global attributes
// and derives the per-pixel lon/lat grid from the corner coordinates in
// the struct metadata. The tile indices come from fixed offsets in the
// standard MODIS file naming convention; renamed files yield wrong
// indices without error, so keep the naming convention intact.
// The dataset is released on every error path; a successfully built
// accessor must be released with Close.
func NewMCD12Q1(path string) (m *MCD12Q1, err error) {
	h, v := TileFromPath(path)
	m = &MCD12Q1{
		tile:   [2]int{h, v},
		logTag: "MCD12Q1:",
	}
	defer func() {
		if err != nil {
			m.Close()
			m = nil
		}
	}()
	if m.ds, err = gdal.Open(path, gdal.ReadOnly); err != nil {
		log.Error(m.logTag+"open hdf failed", zap.String("file", utils.GetFilenameWithoutExt(path)), zap.Error(err))
		err = ErrFileOpen
		return
	}
	m.opened = true
	m.structure = m.ds.MetadataItem(ATTR_STRUCT_METADATA, "")
	m.meta = m.ds.MetadataItem(ATTR_CORE_METADATA, "")
	if m.structure == "" || m.meta == "" {
		log.Error(m.logTag+"global attribute missing", zap.Bool("structure", m.structure != ""), zap.Bool("core", m.meta != ""))
		err = ErrMissingMetadata
		return
	}
	var ulx, uly, lrx, lry float64
	if ulx, uly, err = parseCornerPair(m.structure, MARKER_UPPER_LEFT); err != nil {
		return
	}
	if lrx, lry, err = parseCornerPair(m.structure, MARKER_LOWER_RIGHT); err != nil {
		return
	}
	m.corners = [4]float64{ulx, uly, lrx, lry}
	m.axisX = linspace(ulx, lrx, GridSize)
	m.axisY = linspace(uly, lry, GridSize)
	if err = m.projectGrid(); err != nil {
		return
	}
	m.indexSubdatasets()
	log.Info(m.logTag+"granule opened", zap.Ints("tile", m.tile[:]), zap.Int("vars", len(m.subs)))
	return
}

// Close releases the underlying dataset. Idempotent, and safe on a nil
// or never-opened receiver. Release errors are swallowed: teardown is
// best effort and has no recovery action, unlike every other operation
// here, which surfaces its error to the caller.
func (m *MCD12Q1) Close() {
	if m == nil || !m.opened {
		return
	}
	m.ds.Close()
	m.opened = false
}

// Tile returns the (horizontal, vertical) MODIS tile indices parsed
// from the file path.
func (m *MCD12Q1) Tile() (h, v int) {
	return m.tile[0], m.tile[1]
}

// Lons returns the per-pixel longitude grid, GridSize x GridSize,
// degrees in [-180, 180]. Shared read-only; callers must not modify.
func (m *MCD12Q1) Lons() [][]float64 {
	return m.lons
}

// Lats returns the per-pixel latitude grid, GridSize x GridSize,
// degrees in [-90, 90]. Shared read-only; callers must not modify.
func (m *MCD12Q1) Lats() [][]float64 {
	return m.lats
}

// Corners returns the projected corner coordinates parsed from the
// struct metadata, as [ulx, uly, lrx, lry] in meters.
func (m *MCD12Q1) Corners() [4]float64 {
	return m.corners
}

// StructMetadata returns the raw StructMetadata.0 attribute text.
func (m *MCD12Q1) StructMetadata() string {
	return m.structure
}

// CoreMetadata returns the raw CoreMetadata.0 attribute text.
func (m *MCD12Q1) CoreMetadata() string {
	return m.meta
}

// Attribute reads any global text attribute of the granule by name.
func (m *MCD12Q1) Attribute(name string) (val string, err error) {
	val = m.ds.MetadataItem(name, "")
	if val == "" {
		log.Error(m.logTag+"no such attribute", zap.String("attr", name))
		err = ErrMissingMetadata
	}
	return
}

// Bounds returns the geographic bounding rectangle of the tile, built
// from the four grid corners.
func (m *MCD12Q1) Bounds() s2.Rect {
	n := GridSize - 1
	rect := s2.RectFromLatLng(s2.LatLngFromDegrees(m.lats[0][0], m.lons[0][0]))
	rect = rect.AddPoint(s2.LatLngFromDegrees(m.lats[0][n], m.lons[0][n]))
	rect = rect.AddPoint(s2.LatLngFromDegrees(m.lats[n][0], m.lons[n][0]))
	rect = rect.AddPoint(s2.LatLngFromDegrees(m.lats[n][n], m.lons[n][n]))
	return rect
}
