package modislib

import "errors"

var (
	ErrFileOpen            = errors.New("modis hdf open err")
	ErrMissingMetadata     = errors.New("modis global attribute missing")
	ErrBadStructMetadata   = errors.New("modis struct metadata malformed")
	ErrVariableNotFound    = errors.New("modis variable not found")
	ErrUnsupportedDataType = errors.New("modis unsupported data type")
	ErrRasterReadFailed    = errors.New("modis raster read err")
	ErrRasterWriteFailed   = errors.New("modis raster write err")
	ErrProjectionInit      = errors.New("modis projection init err")
	ErrGdalDriverCreate    = errors.New("gdal driver create err")
)
