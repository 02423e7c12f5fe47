package modislib

import "image/color"

// Fixed classification legends of the MCD12Q1 product, one per
// categorical variable, shared process-wide. The color maps are
// suggestions only, not official in any capacity; LC_Prop3 and QC carry
// no color map.

// IGBP legend (LC_Type1)
var LC1Legend = Legend{
	{1, "Evergreen Needleleaf Forests"},
	{2, "Evergreen Broadleaf Forests"},
	{3, "Deciduous Needleleaf Forests"},
	{4, "Deciduous Broadleaf Forests"},
	{5, "Mixed Forests"},
	{6, "Closed Shrublands"},
	{7, "Open Shrublands"},
	{8, "Woody Savannas"},
	{9, "Savannas"},
	{10, "Grasslands"},
	{11, "Permanent Wetlands"},
	{12, "Croplands"},
	{13, "Urban and Built-up"},
	{14, "Cropland/Natural Vegetation Mosaics"},
	{15, "Permanent Snow and Ice"},
	{16, "Barren"},
	{17, "Water Bodies"},
	{255, "Unclassified"},
}

// UMD legend (LC_Type2)
var LC2Legend = Legend{
	{0, "Water Bodies"},
	{1, "Evergreen Needleleaf Forests"},
	{2, "Evergreen Broadleaf Forests"},
	{3, "Deciduous Needleleaf Forests"},
	{4, "Deciduous Broadleaf Forests"},
	{5, "Mixed Forests"},
	{6, "Closed Shrublands"},
	{7, "Open Shrublands"},
	{8, "Woody Savannas"},
	{9, "Savannas"},
	{10, "Grasslands"},
	{11, "Permanent Wetlands"},
	{12, "Croplands"},
	{13, "Urban and Built-up"},
	{14, "Cropland/Natural Vegetation Mosaics"},
	{15, "Non-Vegetated Lands"},
	{255, "Unclassified"},
}

// LAI legend (LC_Type3)
var LC3Legend = Legend{
	{0, "Water Bodies"},
	{1, "Grasslands"},
	{2, "Shrublands"},
	{3, "Broadleaf Croplands"},
	{4, "Savannas"},
	{5, "Evergreen Broadleaf Forests"},
	{6, "Deciduous Broadleaf Forests"},
	{7, "Evergreen Needleleaf Forests"},
	{8, "Deciduous Needleleaf Forests"},
	{9, "Non-Vegetated Lands"},
	{10, "Urban and Built-up Lands"},
	{255, "Unclassified"},
}

// BGC legend (LC_Type4)
var LC4Legend = Legend{
	{0, "Water Bodies"},
	{1, "Evergreen Needleleaf Vegetation"},
	{2, "Evergreen Broadleaf Vegetation"},
	{3, "Deciduous Broadleaf Vegetation"},
	{4, "Deciduous Needleleaf Vegetation"},
	{5, "Annual Broadleaf Vegetation"},
	{6, "Annual Grass Vegetation"},
	{7, "Non-Vegetated Lands"},
	{8, "Urban and Built-up Lands"},
	{255, "Unclassified"},
}

// PFT legend (LC_Type5)
var LC5Legend = Legend{
	{0, "Water Bodies"},
	{1, "Evergreen Needleleaf Trees"},
	{2, "Evergreen Broadleaf Trees"},
	{3, "Deciduous Broadleaf Trees"},
	{4, "Deciduous Needleleaf Trees"},
	{5, "Shrub"},
	{6, "Grass"},
	{7, "Cereal Croplands"},
	{8, "Broadleaf Croplands"},
	{9, "Urban and Built-up Lands"},
	{10, "Permanent Snow and Ice"},
	{11, "Barren"},
	{255, "Unclassified"},
}

// FAO-LCCS1 land cover legend (LC_Prop1)
var LP1Legend = Legend{
	{1, "Barren"},
	{2, "Permanent Snow and Ice"},
	{3, "Water Bodies"},
	{11, "Evergreen Needleleaf Forests"},
	{12, "Evergreen Broadleaf Forests"},
	{13, "Deciduous Needleleaf Forests"},
	{14, "Deciduous Broadleaf Forests"},
	{15, "Mixed Broadleaf/Needleleaf Forests"},
	{16, "Mixed Evergreen Broadleaf/Needleleaf Forests"},
	{21, "Open Forests"},
	{22, "Sparse Forests"},
	{31, "Dense Herbaceous"},
	{32, "Sparse Herbaceous"},
	{41, "Dense Shrublands"},
	{42, "Shrubland/Grassland Mosaics"},
	{43, "Sparse Shrublands"},
	{255, "Unclassified"},
}

// FAO-LCCS2 land use legend (LC_Prop2)
var LP2Legend = Legend{
	{1, "Barren"},
	{2, "Permanent Snow and Ice"},
	{3, "Water Bodies"},
	{9, "Urban and Built-up Lands"},
	{10, "Dense Forests"},
	{20, "Open Forests"},
	{25, "Forest/Cropland Mosaics"},
	{30, "Natural Herbaceous"},
	{35, "Natural Herbaceous/Croplands Mosaics"},
	{36, "Herbaceous Croplands"},
	{40, "Shrublands"},
	{255, "Unclassified"},
}

// FAO-LCCS3 surface hydrology legend (LC_Prop3)
var LP3Legend = Legend{
	{1, "Barren"},
	{2, "Permanent Snow and Ice"},
	{3, "Water Bodies"},
	{10, "Dense Forests"},
	{20, "Open Forests"},
	{27, "Woody Wetlands"},
	{30, "Grasslands"},
	{40, "Shrublands"},
	{50, "Herbaceous Wetlands"},
	{51, "Tundra"},
	{255, "Unclassified"},
}

// Quality control legend (QC)
var QCLegend = Legend{
	{0, "Classified Land"},
	{1, "Unclassified Land"},
	{2, "Classified Water"},
	{3, "Unclassified Water"},
	{4, "Classified Sea Ice"},
	{5, "Misclassified Water"},
	{6, "Omitted Snow/Ice"},
	{7, "Misclassified Snow/Ice"},
	{8, "Backfilled Label"},
	{9, "Forest Type Changed"},
	{10, "No Data"},
}

var (
	LC1ColorMap = newColorMap("darkgreen", "forestgreen", "darkolivegreen",
		"olivedrab", "greenyellow", "olive", "darkkhaki", "darkorange", "orange",
		"yellow", "navy", "mediumorchid", "red", "mediumpurple", "lightcyan",
		"sienna", "blue", "grey")

	LC2ColorMap = newColorMap("blue", "darkgreen", "forestgreen",
		"darkolivegreen", "olivedrab", "greenyellow", "olive", "darkkhaki",
		"darkorange", "orange", "yellow", "navy", "mediumorchid", "red",
		"mediumpurple", "sienna", "grey")

	LC3ColorMap = newColorMap("blue", "yellow", "darkkhaki", "mediumorchid",
		"orange", "forestgreen", "olivedrab", "darkgreen", "darkolivegreen",
		"sienna", "red", "grey")

	LC4ColorMap = newColorMap("blue", "darkgreen", "forestgreen", "olivedrab",
		"darkolivegreen", "greenyellow", "yellow", "sienna", "red", "grey")

	LC5ColorMap = newColorMap("blue", "darkgreen", "forestgreen", "olivedrab",
		"darkolivegreen", "darkkhaki", "yellow", "darkorange", "mediumorchid",
		"red", "lightcyan", "sienna", "grey")

	LP1ColorMap = newColorMap("sienna", "lightcyan", "blue", "darkgreen",
		"forestgreen", "darkolivegreen", "olivedrab", "seagreen", "limegreen",
		"olive", "darkkhaki", "yellow", "wheat", "peru", "darkorange", "tan",
		"grey")

	LP2ColorMap = newColorMap("sienna", "lightcyan", "blue", "red",
		"darkgreen", "seagreen", "mediumpurple", "yellow", "darkorange",
		"mediumorchid", "darkkhaki", "grey")
)

var colorValues = map[string]color.RGBA{
	"blue":           {0, 0, 255, 255},
	"darkgreen":      {0, 100, 0, 255},
	"darkkhaki":      {189, 183, 107, 255},
	"darkolivegreen": {85, 107, 47, 255},
	"darkorange":     {255, 140, 0, 255},
	"forestgreen":    {34, 139, 34, 255},
	"greenyellow":    {173, 255, 47, 255},
	"grey":           {128, 128, 128, 255},
	"lightcyan":      {224, 255, 255, 255},
	"limegreen":      {50, 205, 50, 255},
	"mediumorchid":   {186, 85, 211, 255},
	"mediumpurple":   {147, 112, 219, 255},
	"navy":           {0, 0, 128, 255},
	"olive":          {128, 128, 0, 255},
	"olivedrab":      {107, 142, 35, 255},
	"orange":         {255, 165, 0, 255},
	"peru":           {205, 133, 63, 255},
	"red":            {255, 0, 0, 255},
	"seagreen":       {46, 139, 87, 255},
	"sienna":         {160, 82, 45, 255},
	"tan":            {210, 180, 140, 255},
	"wheat":          {245, 222, 179, 255},
	"yellow":         {255, 255, 0, 255},
}

func newColorMap(names ...string) ColorMap {
	out := make(ColorMap, len(names))
	for i, name := range names {
		out[i] = ColorEntry{Name: name, RGBA: colorValues[name]}
	}
	return out
}

var legends = map[string]Legend{
	"LC_Type1": LC1Legend,
	"LC_Type2": LC2Legend,
	"LC_Type3": LC3Legend,
	"LC_Type4": LC4Legend,
	"LC_Type5": LC5Legend,
	"LC_Prop1": LP1Legend,
	"LC_Prop2": LP2Legend,
	"LC_Prop3": LP3Legend,
	"QC":       QCLegend,
}

var colorMaps = map[string]ColorMap{
	"LC_Type1": LC1ColorMap,
	"LC_Type2": LC2ColorMap,
	"LC_Type3": LC3ColorMap,
	"LC_Type4": LC4ColorMap,
	"LC_Type5": LC5ColorMap,
	"LC_Prop1": LP1ColorMap,
	"LC_Prop2": LP2ColorMap,
}

// LegendOf returns the classification legend for a variable name.
func LegendOf(name string) (l Legend, ok bool) {
	l, ok = legends[name]
	return
}

// ColorMapOf returns the suggested color map for a variable name.
func ColorMapOf(name string) (c ColorMap, ok bool) {
	c, ok = colorMaps[name]
	return
}
