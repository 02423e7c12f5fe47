package modislib

import (
	"math"
	"os"
	"testing"

	"github.com/lukeroth/gdal"
)

const testGranule = "testdata/MCD12Q1.A2019001.h09v05.006.2019200190635.hdf"

func openTestGranule(t *testing.T) *MCD12Q1 {
	t.Helper()
	if _, err := os.Stat(testGranule); err != nil {
		t.Skipf("sample granule not present: %s", testGranule)
	}
	m, err := NewMCD12Q1(testGranule)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(m.Close)
	return m
}

func TestOpenGranule(t *testing.T) {
	m := openTestGranule(t)
	if h, v := m.Tile(); h != 9 || v != 5 {
		t.Fatalf("got tile (%d,%d), want (9,5)", h, v)
	}
	if m.StructMetadata() == "" || m.CoreMetadata() == "" {
		t.Fatal("global attributes not retained")
	}
	c := m.Corners()
	if m.axisX[0] != c[0] || m.axisX[GridSize-1] != c[2] {
		t.Fatal("x axis endpoints do not match parsed corners")
	}
	if m.axisY[0] != c[1] || m.axisY[GridSize-1] != c[3] {
		t.Fatal("y axis endpoints do not match parsed corners")
	}
}

func TestOpenMissingFile(t *testing.T) {
	m, err := NewMCD12Q1("testdata/no_such_granule.hdf")
	if err != ErrFileOpen {
		t.Fatalf("got %v, want ErrFileOpen", err)
	}
	if m != nil {
		t.Fatal("accessor returned alongside error")
	}
}

func TestCoordinateGrid(t *testing.T) {
	m := openTestGranule(t)
	lons, lats := m.Lons(), m.Lats()
	if len(lons) != GridSize || len(lats) != GridSize {
		t.Fatalf("wrong grid height: %d, %d", len(lons), len(lats))
	}
	for i := range lons {
		if len(lons[i]) != GridSize || len(lats[i]) != GridSize {
			t.Fatalf("wrong grid width at row %d", i)
		}
		for j := range lons[i] {
			if lons[i][j] < -180 || lons[i][j] > 180 {
				t.Fatalf("longitude out of range at [%d][%d]: %f", i, j, lons[i][j])
			}
			if lats[i][j] < -90 || lats[i][j] > 90 {
				t.Fatalf("latitude out of range at [%d][%d]: %f", i, j, lats[i][j])
			}
		}
	}
	// pixel correspondence against the closed-form inverse
	c := m.Corners()
	lon, lat := SinuToLonLat(c[0], c[1])
	if math.Abs(lons[0][0]-lon) > 1e-6 || math.Abs(lats[0][0]-lat) > 1e-6 {
		t.Fatalf("grid origin mismatch: (%f,%f) vs (%f,%f)", lons[0][0], lats[0][0], lon, lat)
	}
}

func TestRasterIOFlags(t *testing.T) {
	// the band IO calls depend on these flags of the GDAL binding
	if gdal.Read == gdal.Write {
		t.Fatal("read and write IO flags must differ")
	}
}

func TestGetVariable(t *testing.T) {
	m := openTestGranule(t)
	r, err := m.Get("LC_Type1")
	if err != nil {
		t.Fatal(err)
	}
	if r.XSize != GridSize || r.YSize != GridSize {
		t.Fatalf("wrong raster shape: %dx%d", r.XSize, r.YSize)
	}
	buf, ok := r.Data.([]uint8)
	if !ok {
		t.Fatalf("wrong data type: %T", r.Data)
	}
	if len(buf) != r.XSize*r.YSize {
		t.Fatalf("wrong buffer length: %d", len(buf))
	}
	if _, err = m.Get("NoSuchVar"); err != ErrVariableNotFound {
		t.Fatalf("got %v, want ErrVariableNotFound", err)
	}
}

func TestVariablesListed(t *testing.T) {
	m := openTestGranule(t)
	vars := m.Variables()
	if len(vars) == 0 {
		t.Fatal("no variables listed")
	}
	found := false
	for _, v := range vars {
		if v == "LC_Type1" {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("LC_Type1 not listed: %v", vars)
	}
}

func TestBounds(t *testing.T) {
	m := openTestGranule(t)
	rect := m.Bounds()
	if rect.IsEmpty() {
		t.Fatal("empty bounds")
	}
	// h09v05 sits in the northern hemisphere west of Greenwich
	if rect.Lat.Hi <= 0 || rect.Lng.Lo >= 0 {
		t.Fatalf("implausible bounds: %v", rect)
	}
}

func TestExportGeoTIFF(t *testing.T) {
	m := openTestGranule(t)
	out, err := m.ExportGeoTIFF("LC_Type1", t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(out)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Fatal("empty export")
	}
}

func TestCloseIdempotent(t *testing.T) {
	var nilAcc *MCD12Q1
	nilAcc.Close()
	(&MCD12Q1{}).Close()
	if _, err := os.Stat(testGranule); err != nil {
		t.Skipf("sample granule not present: %s", testGranule)
	}
	m, err := NewMCD12Q1(testGranule)
	if err != nil {
		t.Fatal(err)
	}
	m.Close()
	m.Close()
}

func TestLegendsSharedAcrossInstances(t *testing.T) {
	a := openTestGranule(t)
	b := openTestGranule(t)
	if a == b {
		t.Fatal("accessors should be independent instances")
	}
	la, _ := LegendOf("LC_Type1")
	lb, _ := LegendOf("LC_Type1")
	if len(la) != 18 || len(lb) != 18 {
		t.Fatal("legend length drifted")
	}
	if &la[0] != &lb[0] {
		t.Fatal("legend tables are not shared")
	}
}
