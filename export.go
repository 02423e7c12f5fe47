package modislib

import (
	"fmt"
	"path/filepath"

	"github.com/wgdzlh/modislib/log"

	"github.com/google/uuid"
	"github.com/lukeroth/gdal"
	"go.uber.org/zap"
)

// ExportGeoTIFF writes the named variable to a single-band GeoTIFF in
// dir, georeferenced on the product's sinusoidal grid, and returns the
// output path. The file gets a unique name so repeated exports never
// clobber each other. The granule itself is only read.
func (m *MCD12Q1) ExportGeoTIFF(name, dir string) (out string, err error) {
	r, err := m.Get(name)
	if err != nil {
		return
	}
	driver, err := gdal.GetDriverByName(GTIFF_DRIVER_NAME)
	if err != nil {
		log.Error(m.logTag+"get gtiff driver failed", zap.Error(err))
		err = ErrGdalDriverCreate
		return
	}
	sr := gdal.CreateSpatialReference("")
	defer sr.Destroy()
	if err = sr.FromProj4(SinusoidalSphere.Proj4()); err != nil {
		log.Error(m.logTag+"sinusoidal ref init failed", zap.Error(err))
		err = ErrProjectionInit
		return
	}
	wkt, err := sr.ToWKT()
	if err != nil {
		log.Error(m.logTag+"sinusoidal ref to wkt failed", zap.Error(err))
		err = ErrProjectionInit
		return
	}
	out = filepath.Join(dir, fmt.Sprintf(EXPORT_TIF, uuid.NewString()))
	ods := driver.Create(out, r.XSize, r.YSize, 1, r.DType, []string{"COMPRESS=LZW"})
	defer ods.Close()
	if err = ods.SetProjection(wkt); err != nil {
		log.Error(m.logTag+"set projection failed", zap.Error(err))
		err = ErrRasterWriteFailed
		return
	}
	xres := (m.corners[2] - m.corners[0]) / float64(r.XSize)
	yres := (m.corners[3] - m.corners[1]) / float64(r.YSize)
	if err = ods.SetGeoTransform([6]float64{m.corners[0], xres, 0, m.corners[1], 0, yres}); err != nil {
		log.Error(m.logTag+"set geo transform failed", zap.Error(err))
		err = ErrRasterWriteFailed
		return
	}
	band := ods.RasterBand(1)
	switch buf := r.Data.(type) {
	case []uint8:
		err = band.IO(gdal.Write, 0, 0, r.XSize, r.YSize, buf, r.XSize, r.YSize, 0, 0)
	case []int16:
		err = band.IO(gdal.Write, 0, 0, r.XSize, r.YSize, buf, r.XSize, r.YSize, 0, 0)
	case []uint16:
		err = band.IO(gdal.Write, 0, 0, r.XSize, r.YSize, buf, r.XSize, r.YSize, 0, 0)
	case []int32:
		err = band.IO(gdal.Write, 0, 0, r.XSize, r.YSize, buf, r.XSize, r.YSize, 0, 0)
	case []uint32:
		err = band.IO(gdal.Write, 0, 0, r.XSize, r.YSize, buf, r.XSize, r.YSize, 0, 0)
	case []float32:
		err = band.IO(gdal.Write, 0, 0, r.XSize, r.YSize, buf, r.XSize, r.YSize, 0, 0)
	case []float64:
		err = band.IO(gdal.Write, 0, 0, r.XSize, r.YSize, buf, r.XSize, r.YSize, 0, 0)
	default:
		err = ErrUnsupportedDataType
	}
	if err != nil {
		log.Error(m.logTag+"write gtiff failed", zap.String("var", name), zap.Error(err))
		err = ErrRasterWriteFailed
		return
	}
	log.Info(m.logTag+"variable exported", zap.String("var", name), zap.String("out", out))
	return
}
