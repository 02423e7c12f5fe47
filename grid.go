package modislib

import (
	"github.com/wgdzlh/modislib/log"

	"github.com/lukeroth/gdal"
	"go.uber.org/zap"
)

// linspace returns num evenly spaced values from start to stop, both
// endpoints included exactly.
func linspace(start, stop float64, num int) []float64 {
	out := make([]float64, num)
	step := (stop - start) / float64(num-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[num-1] = stop
	return out
}

// projectGrid builds the per-pixel lon/lat grids from the interpolated
// projection axes. Row i of the meshgrid holds axisX against the
// constant axisY[i]; the inverse transform runs row by row and keeps
// positional correspondence, so cell [i][j] of the projected grid maps
// to cell [i][j] of lons/lats.
func (m *MCD12Q1) projectGrid() (err error) {
	src := gdal.CreateSpatialReference("")
	defer src.Destroy()
	if err = src.FromProj4(SinusoidalSphere.Proj4()); err != nil {
		log.Error(m.logTag+"sinusoidal ref init failed", zap.Error(err))
		err = ErrProjectionInit
		return
	}
	dst := gdal.CreateSpatialReference("")
	defer dst.Destroy()
	if err = dst.FromEPSG(UNIVERSAL_SRID); err != nil {
		log.Error(m.logTag+"geographic ref init failed", zap.Error(err))
		err = ErrProjectionInit
		return
	}
	// keep transformed points (lon,lat) ordered regardless of the CRS
	// axis definition
	dst.SetAxisMappingStrategy(gdal.OAMS_TraditionalGisOrder)
	trans := gdal.CreateCoordinateTransform(src, dst)
	defer trans.Destroy()

	n := GridSize
	zs := make([]float64, n)
	m.lons = make([][]float64, n)
	m.lats = make([][]float64, n)
	for i := 0; i < n; i++ {
		xs := make([]float64, n)
		copy(xs, m.axisX)
		ys := make([]float64, n)
		for j := range ys {
			ys[j] = m.axisY[i]
		}
		for j := range zs {
			zs[j] = 0
		}
		if !trans.Transform(n, xs, ys, zs) || !rowInGeographicRange(xs, ys) {
			log.Error(m.logTag+"inverse transform failed", zap.Int("row", i))
			err = ErrProjectionInit
			return
		}
		m.lons[i] = xs
		m.lats[i] = ys
	}
	return
}

// rowInGeographicRange reports whether a transformed row holds
// geographic degrees rather than leftover projection meters. A row that
// fails this check must abort construction; a wrong grid is never
// returned silently.
func rowInGeographicRange(lons, lats []float64) bool {
	for j := range lons {
		if lons[j] < -180 || lons[j] > 180 || lats[j] < -90 || lats[j] > 90 {
			return false
		}
	}
	return true
}
