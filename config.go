package modislib

const (
	// MODIS sinusoidal tiling grid, per the MCD12Q1 product documentation.
	NumHTiles = 36
	NumVTiles = 18

	// edge length of one pixel in projection meters
	PixelSize = 463.312716525
	// pixels along one edge of a tile
	GridSize = 2400
	// extent of one tile in projection meters
	TileSpan = GridSize * PixelSize

	// radius of the MODIS authalic sphere in meters
	SphereRadius = 6371007.181

	UNIVERSAL_SRID = 4326

	ATTR_STRUCT_METADATA = "StructMetadata.0"
	ATTR_CORE_METADATA   = "CoreMetadata.0"

	MARKER_UPPER_LEFT  = "UpperLeftPointMtrs=("
	MARKER_LOWER_RIGHT = "LowerRightMtrs=("

	SUBDATASET_DOMAIN   = "SUBDATASETS"
	SUBDATASET_NAME_TAG = "_NAME"

	GTIFF_DRIVER_NAME = "GTiff"

	EXPORT_TIF = "lc_%s.tif"
)

// MODIS grid projection, constant for the product
var SinusoidalSphere = Projection{
	Name:  "sinusoidal",
	A:     SphereRadius,
	B:     SphereRadius,
	Units: "meters",
}
