package world

import (
	"math"
	"testing"
)

func oceanWorld(t *testing.T, width, height int) *WorldGrid {
	t.Helper()
	ocean, err := NewOceanLayer(width, height, testCatalogs()[KindOcean])
	if err != nil {
		t.Fatalf("NewOceanLayer error: %v", err)
	}
	w, err := NewWorldGrid(16, ocean)
	if err != nil {
		t.Fatalf("NewWorldGrid error: %v", err)
	}
	return w
}

func TestVisibleTileRange(t *testing.T) {
	w := oceanWorld(t, 64, 64)

	tests := []struct {
		name string
		v    Viewport
		want TileRange
	}{
		{
			name: "centered",
			v:    Viewport{Target: Point{512, 512}, Zoom: Point{1, 1}, HalfExtent: Point{80, 48}},
			want: TileRange{X0: 27, X1: 37, Y0: 29, Y1: 35},
		},
		{
			name: "zoomed in",
			v:    Viewport{Target: Point{512, 512}, Zoom: Point{2, 2}, HalfExtent: Point{80, 48}},
			want: TileRange{X0: 29, X1: 35, Y0: 30, Y1: 34},
		},
		{
			name: "partial tiles round outward",
			v:    Viewport{Target: Point{100, 100}, Zoom: Point{1, 1}, HalfExtent: Point{10, 10}},
			want: TileRange{X0: 5, X1: 7, Y0: 5, Y1: 7},
		},
		{
			name: "clamped at origin",
			v:    Viewport{Target: Point{0, 0}, Zoom: Point{1, 1}, HalfExtent: Point{80, 80}},
			want: TileRange{X0: 0, X1: 5, Y0: 0, Y1: 5},
		},
		{
			name: "clamped at far corner",
			v:    Viewport{Target: Point{1024, 1024}, Zoom: Point{1, 1}, HalfExtent: Point{80, 80}},
			want: TileRange{X0: 59, X1: 64, Y0: 59, Y1: 64},
		},
		{
			name: "whole map",
			v:    Viewport{Target: Point{512, 512}, Zoom: Point{0.1, 0.1}, HalfExtent: Point{800, 800}},
			want: TileRange{X0: 0, X1: 64, Y0: 0, Y1: 64},
		},
	}

	for _, tt := range tests {
		if got := w.VisibleTileRange(tt.v); got != tt.want {
			t.Errorf("%s: VisibleTileRange() = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestVisibleTileRangeNeverEscapes(t *testing.T) {
	w := oceanWorld(t, 20, 12)

	targets := []Point{
		{-10000, -10000},
		{10000, 10000},
		{-10000, 10000},
		{10000, -10000},
		{160, 96},
		{math.Inf(1), 0},
	}
	zooms := []Point{{1, 1}, {4, 0.5}, {0.01, 0.01}, {0, 1}, {-1, -1}}

	for _, target := range targets {
		for _, zoom := range zooms {
			r := w.VisibleTileRange(Viewport{Target: target, Zoom: zoom, HalfExtent: Point{120, 80}})
			if r.X0 < 0 || r.Y0 < 0 || r.X1 > 20 || r.Y1 > 12 {
				t.Errorf("target %+v zoom %+v: range %+v escapes 20x12", target, zoom, r)
			}
			if r.X1 < r.X0 || r.Y1 < r.Y0 {
				t.Errorf("target %+v zoom %+v: negative range %+v", target, zoom, r)
			}
		}
	}
}

func TestVisibleTileRangeFarOutsideIsEmpty(t *testing.T) {
	w := oceanWorld(t, 20, 12)
	r := w.VisibleTileRange(Viewport{Target: Point{-5000, 40}, Zoom: Point{1, 1}, HalfExtent: Point{100, 100}})
	if !r.Empty() {
		t.Errorf("range %+v should be empty", r)
	}

	r = w.VisibleTileRange(Viewport{Target: Point{80, 40}, Zoom: Point{0, 1}, HalfExtent: Point{100, 100}})
	if !r.Empty() {
		t.Errorf("zero zoom range %+v should be empty", r)
	}
}

func TestTileRangeContains(t *testing.T) {
	r := TileRange{X0: 2, X1: 4, Y0: 1, Y1: 3}
	if !r.Contains(2, 1) || !r.Contains(3, 2) {
		t.Error("range should contain its lower bounds")
	}
	if r.Contains(4, 2) || r.Contains(2, 3) || r.Contains(1, 1) {
		t.Error("range should exclude its upper bounds")
	}
}
