package main

import (
	"path/filepath"
	"testing"

	"github.com/gogpu/collide"
)

func TestLoadScene(t *testing.T) {
	scene, err := LoadScene(filepath.Join("testdata", "arena.yaml"))
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	if scene.Rule != collide.AllEdges {
		t.Errorf("rule = %s, want all", scene.Rule)
	}
	if scene.Tolerance != 0.25 {
		t.Errorf("tolerance = %v, want 0.25", scene.Tolerance)
	}
	if got, want := scene.ShapeCount(), 8; got != want {
		t.Errorf("ShapeCount = %d, want %d", got, want)
	}
	if got, want := scene.PairCount(), 24; got != want {
		t.Errorf("PairCount = %d, want %d", got, want)
	}
}

func TestLoadScene_Missing(t *testing.T) {
	if _, err := LoadScene(filepath.Join("testdata", "nope.yaml")); err == nil {
		t.Fatal("expected error for missing scene")
	}
}

func TestScene_Collisions(t *testing.T) {
	scene, err := LoadScene(filepath.Join("testdata", "arena.yaml"))
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}

	want := map[Hit]bool{
		{A: "ball", B: "left-wall"}:    true,
		{A: "pit", B: "ledge"}:         true, // edge touch, rule is "all"
		{A: "pit", B: "ray"}:           true,
		{A: "ledge", B: "ray"}:         true,
		{A: "marker-a", B: "marker-b"}: true,
	}
	hits := scene.Collisions()
	if len(hits) != len(want) {
		t.Errorf("got %d collisions %v, want %d", len(hits), hits, len(want))
	}
	for _, h := range hits {
		if !want[h] {
			t.Errorf("unexpected collision %s <-> %s", h.A, h.B)
		}
	}
}

func TestScene_CollisionsRuleSensitive(t *testing.T) {
	scene, err := LoadScene(filepath.Join("testdata", "clear.yaml"))
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	if hits := scene.Collisions(); len(hits) != 0 {
		t.Fatalf("expected clean scene, got %v", hits)
	}

	// The two boxes touch edge to edge; the inclusive rule flips them to
	// colliding.
	scene.Rule = collide.AllEdges
	hits := scene.Collisions()
	if len(hits) != 1 || (hits[0] != Hit{A: "box-a", B: "box-b"}) {
		t.Fatalf("expected the touching boxes to collide under rule all, got %v", hits)
	}
}

func TestScene_Bounds(t *testing.T) {
	scene, err := LoadScene(filepath.Join("testdata", "arena.yaml"))
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	b := scene.Bounds()
	// The stray segment reaches (12, 1); the ball's disc reaches (-0.5, 1.5).
	if b.MinX() != -0.5 || b.MaxX() != 12 {
		t.Errorf("x bounds (%v, %v), want (-0.5, 12)", b.MinX(), b.MaxX())
	}
	if b.MinY() != 0 || b.MaxY() != 8 {
		t.Errorf("y bounds (%v, %v), want (0, 8)", b.MinY(), b.MaxY())
	}
}

func TestRenderScene(t *testing.T) {
	scene, err := LoadScene(filepath.Join("testdata", "arena.yaml"))
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	out := filepath.Join(t.TempDir(), "arena.png")
	if err := renderScene(scene, scene.Collisions(), out); err != nil {
		t.Fatalf("renderScene: %v", err)
	}
}
