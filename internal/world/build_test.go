package world

import (
	"math"
	"testing"

	"github.com/Faultbox/hauntedhouse/internal/engine/lighting"
	"github.com/Faultbox/hauntedhouse/internal/engine/material"
	"github.com/Faultbox/hauntedhouse/internal/engine/scene"
	"github.com/Faultbox/hauntedhouse/internal/engine/texture"
)

func buildDefault(t *testing.T) *World {
	t.Helper()
	w := Build(DefaultOptions(), testRand())
	if w == nil || w.Scene == nil {
		t.Fatal("Build returned no scene")
	}
	return w
}

func TestBuildContents(t *testing.T) {
	w := buildDefault(t)
	st := w.Scene.Stats()

	// floor, walls, roof, door, 4 bushes, 30 graves
	if st.Meshes != 38 {
		t.Errorf("meshes = %d, want 38", st.Meshes)
	}
	// door light and three ghosts
	if st.PointLights != 4 {
		t.Errorf("point lights = %d, want 4", st.PointLights)
	}
	if len(w.Graves) != 30 {
		t.Errorf("graves = %d, want 30", len(w.Graves))
	}
	if len(w.Ghosts) != 3 {
		t.Errorf("ghosts = %d, want 3", len(w.Ghosts))
	}

	for _, name := range []string{"floor", "house", "walls", "roof", "door", "doorLight", "graves", "ghost1", "ghost2", "ghost3"} {
		if w.Scene.Find(name) == nil {
			t.Errorf("missing node %q", name)
		}
	}
}

func TestBuildFloor(t *testing.T) {
	w := buildDefault(t)
	floor := w.Scene.Find("floor")
	m := floor.Mesh.Material

	if m != w.Floor {
		t.Error("World.Floor must be the floor mesh material")
	}
	if m.DisplacementScale != 0.3 || m.DisplacementBias != -0.2 {
		t.Errorf("displacement = %v/%v, want 0.3/-0.2", m.DisplacementScale, m.DisplacementBias)
	}
	if !m.Transparent || m.Side != material.DoubleSide || !floor.ReceiveShadow {
		t.Error("floor must be transparent, double sided and receive shadows")
	}
	if got := floor.Transform.Rotation.X; math.Abs(float64(got)+math.Pi/2) > 1e-6 {
		t.Errorf("floor rotation = %v, want -pi/2", got)
	}
	if m.Map.Repeat != [2]float32{8, 8} || m.Map.WrapS != texture.WrapRepeat || m.Map.WrapT != texture.WrapRepeat {
		t.Errorf("floor colour map = %+v, want 8x8 repeat", m.Map)
	}
	if m.AlphaMap.Repeat != [2]float32{1, 1} || m.AlphaMap.WrapS != texture.WrapClamp {
		t.Errorf("floor alpha map = %+v, want untiled", m.AlphaMap)
	}
	if m.AOMap != m.RoughnessMap || m.RoughnessMap != m.MetalnessMap {
		t.Error("floor must share one ARM texture across three slots")
	}
	if !m.Map.SRGB || m.NormalMap.SRGB || m.AOMap.SRGB {
		t.Error("only the colour map holds sRGB data")
	}
}

func TestBuildOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.GraveCount = 5
	opts.FloorDisplacementScale = 7
	opts.FogDensity = 0.05
	opts.SunShadowMapSize = 1024

	w := Build(opts, testRand())

	if len(w.Graves) != 5 || len(w.Scene.Find("graves").Children()) != 5 {
		t.Errorf("expected 5 graves, got %d", len(w.Graves))
	}
	if w.Floor.DisplacementScale != 1 {
		t.Errorf("displacement scale = %v, want clamped 1", w.Floor.DisplacementScale)
	}
	if w.Scene.Fog.Density != 0.05 {
		t.Errorf("fog density = %v, want 0.05", w.Scene.Fog.Density)
	}
	if w.Scene.Sun.Shadow.MapSize != 1024 {
		t.Errorf("sun shadow map = %d, want 1024", w.Scene.Sun.Shadow.MapSize)
	}
}

func TestBuildHouse(t *testing.T) {
	w := buildDefault(t)
	house := w.Scene.Find("house")

	for _, name := range []string{"walls", "roof", "door", "doorLight"} {
		n := w.Scene.Find(name)
		if n.Parent() != house {
			t.Errorf("%s should belong to the house group", name)
		}
	}

	door := w.Scene.Find("door")
	m := door.Mesh.Material
	if m.DisplacementScale != 0.15 || m.DisplacementBias != -0.04 {
		t.Errorf("door displacement = %v/%v, want 0.15/-0.04", m.DisplacementScale, m.DisplacementBias)
	}
	if m.AOMap == m.RoughnessMap {
		t.Error("door uses separate ambient occlusion and roughness maps")
	}

	roof := w.Scene.Find("roof")
	if roof.Transform.Position.Y != 3.25 || !roof.CastShadow || roof.ReceiveShadow {
		t.Errorf("roof = %+v cast=%v receive=%v", roof.Transform.Position, roof.CastShadow, roof.ReceiveShadow)
	}
	if r := roof.Mesh.Material.Map; r.Repeat != [2]float32{3, 1} || r.WrapS != texture.WrapRepeat || r.WrapT != texture.WrapClamp {
		t.Errorf("roof map = %+v, want 3x1 wrapping on S only", r)
	}

	light := w.Scene.Find("doorLight")
	if light.Light.CastShadow {
		t.Error("door light does not cast shadows")
	}
	if pos := light.WorldPosition(); pos.Y != 2.2 || pos.Z != 2.5 {
		t.Errorf("door light at %+v, want (0, 2.2, 2.5)", pos)
	}
}

func TestBuildBushes(t *testing.T) {
	w := buildDefault(t)
	var bushes []*scene.Node
	for _, n := range w.Scene.Find("house").Children() {
		if n.Name == "bush" {
			bushes = append(bushes, n)
		}
	}
	if len(bushes) != 4 {
		t.Fatalf("bushes = %d, want 4", len(bushes))
	}

	wantScale := []float32{0.5, 0.25, 0.4, 0.15}
	for i, b := range bushes {
		if b.Transform.Scale.X != wantScale[i] || b.Transform.Scale.Y != wantScale[i] {
			t.Errorf("bush %d scale = %+v, want %v", i, b.Transform.Scale, wantScale[i])
		}
		if b.Mesh.Geometry != bushes[0].Mesh.Geometry || b.Mesh.Material != bushes[0].Mesh.Material {
			t.Errorf("bush %d must share geometry and material", i)
		}
		wantTilt := float32(0)
		if i == 0 {
			wantTilt = -0.75
		}
		if b.Transform.Rotation.X != wantTilt {
			t.Errorf("bush %d rotation = %v, want %v", i, b.Transform.Rotation.X, wantTilt)
		}
	}

	m := bushes[0].Mesh.Material
	if m.Map.Repeat != [2]float32{2, 1} || m.Map.WrapS != texture.WrapRepeat {
		t.Errorf("bush map = %+v, want 2x1 repeating on S", m.Map)
	}
	if m.Color != lighting.MustLinearHex("#ccffcc") {
		t.Errorf("bush colour = %v", m.Color)
	}
}

func TestBuildGraves(t *testing.T) {
	w := buildDefault(t)
	graves := w.Scene.Find("graves").Children()

	for i, g := range graves {
		if !g.CastShadow || !g.ReceiveShadow {
			t.Errorf("grave %d must cast and receive shadows", i)
		}
		if g.Transform.Position != w.Graves[i].Position || g.Transform.Rotation != w.Graves[i].Rotation {
			t.Errorf("grave %d transform does not match its placement", i)
		}
		if g.Mesh.Geometry != graves[0].Mesh.Geometry {
			t.Errorf("grave %d must share the marker geometry", i)
		}
	}

	m := graves[0].Mesh.Material
	if m.Map.Repeat != [2]float32{0.3, 0.4} || m.Map.WrapS != texture.WrapClamp {
		t.Errorf("grave map = %+v, want 0.3x0.4 clamped", m.Map)
	}
}

func TestBuildDeterministic(t *testing.T) {
	a := Build(DefaultOptions(), NewRand(1234, nil))
	b := Build(DefaultOptions(), NewRand(1234, nil))
	for i := range a.Graves {
		if a.Graves[i] != b.Graves[i] {
			t.Fatalf("grave %d differs between builds with the same seed", i)
		}
	}
}

func TestBuildLightsAndAtmosphere(t *testing.T) {
	w := buildDefault(t)
	sc := w.Scene

	if sc.Ambient.Intensity != 0.275 {
		t.Errorf("ambient intensity = %v", sc.Ambient.Intensity)
	}
	sun := sc.Sun
	if !sun.CastShadow || sun.Shadow.MapSize != 256 || sun.Shadow.Top != 8 || sun.Shadow.Near != 1 || sun.Shadow.Far != 20 {
		t.Errorf("sun = %+v", sun)
	}
	if sc.Fog == nil || sc.Fog.Density != 0.1 || sc.Fog.Color != lighting.MustLinearHex("#04343f") {
		t.Errorf("fog = %+v", sc.Fog)
	}
	if sc.Sky == nil || sc.Sky.Scale != 100 || sc.Sky.Turbidity != 10 || sc.Sky.MieDirectionalG != 0.95 {
		t.Errorf("sky = %+v", sc.Sky)
	}

	for _, g := range w.Ghosts {
		l := g.Node.Light
		if !l.CastShadow || l.Shadow.MapSize != 256 || l.Shadow.Far != 10 || l.Intensity != 6 {
			t.Errorf("%s light = %+v", g.Ghost.Name, l)
		}
		if g.Node.Parent() != sc.Root {
			t.Errorf("%s should hang off the scene root", g.Ghost.Name)
		}
	}
}

func TestAnimate(t *testing.T) {
	w := buildDefault(t)

	for _, tt := range []float64{0, 1.5, 42} {
		w.Animate(tt)
		for _, g := range w.Ghosts {
			want := g.Ghost.Trajectory.Sample(tt)
			if got := g.Node.WorldPosition(); got != want {
				t.Errorf("t=%v %s at %+v, want %+v", tt, g.Ghost.Name, got, want)
			}
		}
	}

	before := w.Scene.Stats()
	w.Animate(10)
	w.Animate(10)
	if w.Scene.Stats() != before {
		t.Error("animation must not change the scene contents")
	}
	first := w.Ghosts[0].Node.Transform.Position
	w.Animate(3)
	w.Animate(10)
	if w.Ghosts[0].Node.Transform.Position != first {
		t.Error("positions must depend on elapsed time only")
	}
}
