package system

import (
	"testing"

	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/vmath"
)

func targets() []HoverTarget {
	return []HoverTarget{
		{Index: 0, Name: "Mercury", Screen: vmath.V2(10, 10), Radius: 0.5, World: vmath.V2(0.38*parameter.AU, 0)},
		{Index: 1, Name: "Venus", Screen: vmath.V2(14, 10), Radius: 0.75, World: vmath.V2(0, 0.72*parameter.AU)},
		{Index: 2, Name: "Earth", Screen: vmath.V2(40, 20), Radius: 1, World: vmath.V2(-parameter.AU, 0)},
	}
}

func TestResolveHoverNone(t *testing.T) {
	if h, ok := ResolveHover(vmath.V2(80, 5), targets(), 2); ok {
		t.Errorf("Expected no hover, got %+v", h)
	}
	if _, ok := ResolveHover(vmath.V2(1, 1), nil, 2); ok {
		t.Error("Expected no hover with no targets")
	}
}

func TestResolveHoverSingle(t *testing.T) {
	h, ok := ResolveHover(vmath.V2(41, 21), targets(), 2)
	if !ok {
		t.Fatal("Expected hover on Earth")
	}
	if h.Name != "Earth" || h.Index != 2 {
		t.Errorf("Expected Earth, got %+v", h)
	}
	if !vmath.NearlyEqual(h.DistanceAU, 1, 1e-12) {
		t.Errorf("Expected 1 AU, got %f", h.DistanceAU)
	}
	if h.Label() != "Earth: 1.00 AU" {
		t.Errorf("Expected label 'Earth: 1.00 AU', got %q", h.Label())
	}
}

func TestResolveHoverNearestOfTwo(t *testing.T) {
	// Within threshold of both Mercury and Venus in each case
	h, ok := ResolveHover(vmath.V2(11.5, 10), targets(), 2)
	if !ok || h.Name != "Mercury" {
		t.Errorf("Expected Mercury, got %+v (ok=%v)", h, ok)
	}

	h, ok = ResolveHover(vmath.V2(12.2, 10), targets(), 2)
	if !ok || h.Name != "Venus" {
		t.Errorf("Expected Venus, got %+v (ok=%v)", h, ok)
	}
}

func TestResolveHoverThresholdUsesRadius(t *testing.T) {
	ts := []HoverTarget{{Name: "Jupiter", Screen: vmath.V2(0, 0), Radius: 3}}
	if _, ok := ResolveHover(vmath.V2(4.5, 0), ts, 2); !ok {
		t.Error("Expected hover inside radius+margin")
	}
	if _, ok := ResolveHover(vmath.V2(5, 0), ts, 2); ok {
		t.Error("Expected no hover at exactly radius+margin")
	}
}

func TestResolveHoverTieKeepsEarlier(t *testing.T) {
	ts := []HoverTarget{
		{Index: 0, Name: "A", Screen: vmath.V2(0, 0), Radius: 1},
		{Index: 1, Name: "B", Screen: vmath.V2(2, 0), Radius: 1},
	}
	h, ok := ResolveHover(vmath.V2(1, 0), ts, 1)
	if !ok || h.Name != "A" {
		t.Errorf("Expected tie to resolve to A, got %+v", h)
	}
}
