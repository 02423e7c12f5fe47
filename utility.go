package modislib

import (
	"math"

	"github.com/wgdzlh/modislib/utils"
)

const degToRad = math.Pi / 180

// TileFromPath parses the (horizontal, vertical) tile indices from the
// fixed offsets of the standard MODIS file naming convention, e.g.
// MCD12Q1.A2019001.h09v05.006.2019200190635.hdf. Paths too short to
// carry the indices yield (0, 0); renamed files yield garbage. Callers
// keep the naming convention intact.
func TileFromPath(path string) (h, v int) {
	n := len(path)
	if n < 27 {
		return
	}
	h = utils.StrToInt(path[n-27 : n-25])
	v = utils.StrToInt(path[n-24 : n-22])
	return
}

// SinuToLonLat converts MODIS sinusoidal-sphere projection meters to
// geographic degrees.
func SinuToLonLat(x, y float64) (lon, lat float64) {
	latRad := y / SphereRadius
	lat = latRad / degToRad
	if c := math.Cos(latRad); c != 0 {
		lon = x / (SphereRadius * c) / degToRad
	}
	return
}

// LonLatToSinu converts geographic degrees to MODIS sinusoidal-sphere
// projection meters.
func LonLatToSinu(lon, lat float64) (x, y float64) {
	latRad := lat * degToRad
	x = SphereRadius * lon * degToRad * math.Cos(latRad)
	y = SphereRadius * latRad
	return
}

// TileUpperLeft returns the projected coordinates of the upper left
// corner of tile (h, v).
func TileUpperLeft(h, v int) (x, y float64) {
	x = float64(h-NumHTiles/2) * TileSpan
	y = float64(NumVTiles/2-v) * TileSpan
	return
}

// LonLatToTile locates the MODIS tile containing the given point. The
// upper and left tile edges are inclusive.
func LonLatToTile(lon, lat float64) (h, v int) {
	x, y := LonLatToSinu(lon, lat)
	h = int(math.Floor(x/TileSpan)) + NumHTiles/2
	v = int(math.Floor(float64(NumVTiles/2) - y/TileSpan))
	return
}
