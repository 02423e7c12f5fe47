package modislib

import (
	"sort"
	"strings"

	"github.com/wgdzlh/modislib/log"

	"github.com/lukeroth/gdal"
	"go.uber.org/zap"
)

// indexSubdatasets maps variable names to their full GDAL subdataset
// identifiers. HDF4-EOS subdataset names end with the variable, e.g.
// HDF4_EOS:EOS_GRID:"file.hdf":MCD12Q1:LC_Type1.
func (m *MCD12Q1) indexSubdatasets() {
	m.subs = map[string]string{}
	for _, kv := range m.ds.Metadata(SUBDATASET_DOMAIN) {
		i := strings.IndexByte(kv, '=')
		if i < 0 || !strings.HasSuffix(kv[:i], SUBDATASET_NAME_TAG) {
			continue
		}
		sub := kv[i+1:]
		name := sub[strings.LastIndexByte(sub, ':')+1:]
		if name != "" {
			m.subs[name] = sub
		}
	}
}

// Variables lists the variable names stored in the granule, sorted.
func (m *MCD12Q1) Variables() []string {
	names := make([]string, 0, len(m.subs))
	for name := range m.subs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get reads the full array of the named variable in its native shape
// and numeric type, with no scaling, masking or reprojection. It may be
// called any number of times while the accessor remains open.
func (m *MCD12Q1) Get(name string) (ret Raster, err error) {
	sub, ok := m.subs[name]
	if !ok {
		log.Error(m.logTag+"no such variable", zap.String("var", name))
		err = ErrVariableNotFound
		return
	}
	sds, err := gdal.Open(sub, gdal.ReadOnly)
	if err != nil {
		log.Error(m.logTag+"open subdataset failed", zap.String("var", name), zap.Error(err))
		err = ErrFileOpen
		return
	}
	defer sds.Close()
	x := sds.RasterXSize()
	y := sds.RasterYSize()
	band := sds.RasterBand(1)
	dt := band.RasterDataType()
	log.Info(m.logTag+"read variable", zap.String("var", name), zap.String("dataType", dt.Name()), zap.Int("width", x), zap.Int("height", y))
	ret = Raster{
		Name:  name,
		DType: dt,
		XSize: x,
		YSize: y,
	}
	switch dt {
	case gdal.Byte:
		buf := make([]uint8, x*y)
		err = band.IO(gdal.Read, 0, 0, x, y, buf, x, y, 0, 0)
		ret.Data = buf
	case gdal.Int16:
		buf := make([]int16, x*y)
		err = band.IO(gdal.Read, 0, 0, x, y, buf, x, y, 0, 0)
		ret.Data = buf
	case gdal.UInt16:
		buf := make([]uint16, x*y)
		err = band.IO(gdal.Read, 0, 0, x, y, buf, x, y, 0, 0)
		ret.Data = buf
	case gdal.Int32:
		buf := make([]int32, x*y)
		err = band.IO(gdal.Read, 0, 0, x, y, buf, x, y, 0, 0)
		ret.Data = buf
	case gdal.UInt32:
		buf := make([]uint32, x*y)
		err = band.IO(gdal.Read, 0, 0, x, y, buf, x, y, 0, 0)
		ret.Data = buf
	case gdal.Float32:
		buf := make([]float32, x*y)
		err = band.IO(gdal.Read, 0, 0, x, y, buf, x, y, 0, 0)
		ret.Data = buf
	case gdal.Float64:
		buf := make([]float64, x*y)
		err = band.IO(gdal.Read, 0, 0, x, y, buf, x, y, 0, 0)
		ret.Data = buf
	default:
		log.Error(m.logTag+"unsupported data type", zap.String("var", name), zap.String("dataType", dt.Name()))
		err = ErrUnsupportedDataType
		return
	}
	if err != nil {
		log.Error(m.logTag+"read raster failed", zap.String("var", name), zap.Error(err))
		err = ErrRasterReadFailed
		ret = Raster{}
	}
	return
}
