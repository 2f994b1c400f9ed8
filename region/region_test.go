package region

import (
	"errors"
	"math"
	"testing"
)

func testMapInfo() *MapInfo {
	return &MapInfo{
		ProjectionName:  "UTM",
		XReferencePixel: 1.0,
		YReferencePixel: 1.0,
		XZeroCoordinate: 620006.407,
		YZeroCoordinate: 2376995.930,
		XPixelSize:      7.8,
		YPixelSize:      7.8,
		Zone:            4,
		Area:            "North",
		Datum:           "WGS-84",
	}
}

func TestNewRegionOfInterest_PixelConversion(t *testing.T) {
	tests := []struct {
		name         string
		points       [][]float64
		xZoom, yZoom float64
		wantX, wantY []int16
	}{
		{
			name:   "zoom 1 is identity",
			points: [][]float64{{0, 1}, {5, 9}},
			xZoom:  1, yZoom: 1,
			wantX: []int16{0, 5}, wantY: []int16{1, 9},
		},
		{
			name:   "zoom 2 halves and floors",
			points: [][]float64{{3, 5}, {7, 8}},
			xZoom:  2, yZoom: 2,
			wantX: []int16{1, 2}, wantY: []int16{2, 4},
		},
		{
			name:   "asymmetric zoom",
			points: [][]float64{{9, 9}},
			xZoom:  3, yZoom: 1.5,
			wantX: []int16{3}, wantY: []int16{6},
		},
		{
			name:   "fractional display coordinates floor",
			points: [][]float64{{2.9, 0.4}},
			xZoom:  1, yZoom: 1,
			wantX: []int16{2}, wantY: []int16{0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roi, err := NewRegionOfInterest(tt.points, tt.xZoom, tt.yZoom,
				100, 100, "img", "", nil)
			if err != nil {
				t.Fatalf("NewRegionOfInterest failed: %v", err)
			}
			if roi.Len() != len(tt.points) {
				t.Fatalf("Len: got %d, want %d", roi.Len(), len(tt.points))
			}
			for i := range tt.wantX {
				if roi.XPoints()[i] != tt.wantX[i] {
					t.Errorf("XPoints[%d]: got %d, want %d", i, roi.XPoints()[i], tt.wantX[i])
				}
				if roi.YPoints()[i] != tt.wantY[i] {
					t.Errorf("YPoints[%d]: got %d, want %d", i, roi.YPoints()[i], tt.wantY[i])
				}
			}
		})
	}
}

func TestNewRegionOfInterest_InvalidShape(t *testing.T) {
	tests := []struct {
		name   string
		points [][]float64
	}{
		{"three columns", [][]float64{{1, 2, 3}, {4, 5, 6}}},
		{"one column", [][]float64{{1}, {2}}},
		{"ragged rows", [][]float64{{1, 2}, {3}}},
		{"empty row", [][]float64{{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegionOfInterest(tt.points, 1, 1, 10, 10, "img", "", nil)
			if !errors.Is(err, ErrInvalidShape) {
				t.Fatalf("got error %v, want ErrInvalidShape", err)
			}
		})
	}
}

func TestRegionOfInterest_GeoCoordinates(t *testing.T) {
	points := [][]float64{{0, 0}, {1, 2}}
	roi, err := NewRegionOfInterest(points, 1, 1, 10, 10, "img", "", testMapInfo())
	if err != nil {
		t.Fatalf("NewRegionOfInterest failed: %v", err)
	}

	wantX := []float64{620006.407, 620006.407 + 7.8}
	wantY := []float64{2376995.930, 2376995.930 - 2*7.8}

	i := 0
	for roi.Reset(); roi.Next(); i++ {
		x, ok := roi.XCoordinate()
		if !ok {
			t.Fatal("XCoordinate unavailable with map info attached")
		}
		y, ok := roi.YCoordinate()
		if !ok {
			t.Fatal("YCoordinate unavailable with map info attached")
		}
		if math.Abs(x-wantX[i]) > 1e-9 {
			t.Errorf("point %d x: got %v, want %v", i, x, wantX[i])
		}
		if math.Abs(y-wantY[i]) > 1e-9 {
			t.Errorf("point %d y: got %v, want %v", i, y, wantY[i])
		}
	}
	if i != 2 {
		t.Fatalf("iterated %d points, want 2", i)
	}
}

func TestRegionOfInterest_SetMapInfo(t *testing.T) {
	roi, err := NewRegionOfInterest([][]float64{{4, 4}}, 1, 1, 10, 10, "img", "", nil)
	if err != nil {
		t.Fatalf("NewRegionOfInterest failed: %v", err)
	}

	// No map info: coordinates unavailable.
	roi.Reset()
	if !roi.Next() {
		t.Fatal("Next returned false on first point")
	}
	if _, ok := roi.XCoordinate(); ok {
		t.Error("XCoordinate available without map info")
	}

	pixelX, pixelY := roi.XPoint(), roi.YPoint()

	// Attaching map info makes coordinates available without touching
	// pixel points.
	roi.SetMapInfo(testMapInfo())
	roi.Reset()
	roi.Next()
	if x, ok := roi.XCoordinate(); !ok || math.Abs(x-(620006.407+4*7.8)) > 1e-6 {
		t.Errorf("XCoordinate after SetMapInfo: got %v (ok=%v)", x, ok)
	}
	if roi.XPoint() != pixelX || roi.YPoint() != pixelY {
		t.Error("pixel points changed when map info was attached")
	}

	// Replacing map info recomputes.
	m := testMapInfo()
	m.XZeroCoordinate = 0
	m.YZeroCoordinate = 0
	roi.SetMapInfo(m)
	roi.Reset()
	roi.Next()
	if x, _ := roi.XCoordinate(); math.Abs(x-4*7.8) > 1e-6 {
		t.Errorf("XCoordinate after replacing map info: got %v, want %v", x, 4*7.8)
	}

	// Removing map info makes coordinates unavailable again.
	roi.SetMapInfo(nil)
	roi.Reset()
	roi.Next()
	if _, ok := roi.XCoordinate(); ok {
		t.Error("XCoordinate still available after map info removed")
	}
	if _, ok := roi.YCoordinate(); ok {
		t.Error("YCoordinate still available after map info removed")
	}
}

func TestRegionOfInterest_IterationRestarts(t *testing.T) {
	points := [][]float64{{0, 0}, {1, 1}, {2, 2}}
	roi, err := NewRegionOfInterest(points, 1, 1, 10, 10, "img", "", nil)
	if err != nil {
		t.Fatalf("NewRegionOfInterest failed: %v", err)
	}

	visit := func() []int16 {
		var seen []int16
		for roi.Reset(); roi.Next(); {
			seen = append(seen, roi.XPoint())
		}
		return seen
	}

	first := visit()
	second := visit()
	if len(first) != 3 || len(second) != 3 {
		t.Fatalf("visited %d then %d points, want 3 both times", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("pass mismatch at %d: %d vs %d", i, first[i], second[i])
		}
	}

	// Exhausted cursor stays exhausted until Reset.
	if roi.Next() {
		t.Error("Next returned true after exhaustion")
	}
}

func TestRegionOfInterest_UniqueIDs(t *testing.T) {
	a, err := NewRegionOfInterest([][]float64{{1, 1}}, 1, 1, 10, 10, "img", "", nil)
	if err != nil {
		t.Fatalf("NewRegionOfInterest failed: %v", err)
	}
	b, err := NewRegionOfInterest([][]float64{{1, 1}}, 1, 1, 10, 10, "img", "", nil)
	if err != nil {
		t.Fatalf("NewRegionOfInterest failed: %v", err)
	}
	if a.ID() == "" {
		t.Fatal("empty region ID")
	}
	if a.ID() == b.ID() {
		t.Error("two regions with identical point data share an ID")
	}
}

func TestMapInfo_ProjectionDescription(t *testing.T) {
	tests := []struct {
		name string
		m    MapInfo
		want string
	}{
		{
			name: "all fields",
			m:    *testMapInfo(),
			want: "UTM 4 North WGS-84",
		},
		{
			name: "no zone or area",
			m:    MapInfo{ProjectionName: "Geographic Lat/Lon", Datum: "WGS-84"},
			want: "Geographic Lat/Lon WGS-84",
		},
		{
			name: "name only",
			m:    MapInfo{ProjectionName: "UTM"},
			want: "UTM",
		},
		{
			name: "empty",
			m:    MapInfo{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.ProjectionDescription(); got != tt.want {
				t.Errorf("ProjectionDescription: got %q, want %q", got, tt.want)
			}
		})
	}
}
