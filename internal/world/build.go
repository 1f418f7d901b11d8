package world

import (
	gomath "math"
	"math/rand/v2"

	"github.com/Faultbox/hauntedhouse/internal/engine/geometry"
	"github.com/Faultbox/hauntedhouse/internal/engine/lighting"
	"github.com/Faultbox/hauntedhouse/internal/engine/material"
	"github.com/Faultbox/hauntedhouse/internal/engine/scene"
	"github.com/Faultbox/hauntedhouse/internal/engine/texture"
	"github.com/Faultbox/hauntedhouse/pkg/math"
)

// Options tunes scene assembly.
type Options struct {
	GraveCount             int
	GraveInnerRadius       float32
	GraveOuterRadius       float32
	FloorDisplacementScale float32
	FloorDisplacementBias  float32
	FogDensity             float32
	SunShadowMapSize       int
	GhostShadowMapSize     int
}

// DefaultOptions returns the values the scene was designed with.
func DefaultOptions() Options {
	return Options{
		GraveCount:             30,
		GraveInnerRadius:       3,
		GraveOuterRadius:       7,
		FloorDisplacementScale: 0.3,
		FloorDisplacementBias:  -0.2,
		FogDensity:             0.1,
		SunShadowMapSize:       256,
		GhostShadowMapSize:     256,
	}
}

// GhostNode links a ghost to the scene node carrying its light.
type GhostNode struct {
	Ghost Ghost
	Node  *scene.Node
}

// World is an assembled haunted house scene plus the handles the frame
// loop needs.
type World struct {
	Scene  *scene.Scene
	Floor  *material.Standard
	Graves []GraveTransform
	Ghosts []GhostNode
}

// Build assembles the scene. rng drives grave placement only.
func Build(opts Options, rng *rand.Rand) *World {
	sc := scene.New()
	w := &World{Scene: sc}

	w.Floor = addFloor(sc, opts)
	addHouse(sc)
	w.Graves = addGraves(sc, rng, opts)
	w.Ghosts = addGhosts(sc, opts)
	addLights(sc, opts)
	addAtmosphere(sc, opts)

	return w
}

// armMaterial returns a material using the usual texture set of a surface:
// colour, packed AO/roughness/metalness and an OpenGL normal map.
func armMaterial(name, color, arm, normal string) *material.Standard {
	m := material.NewStandard(name)
	m.Map = texture.Color(color)
	m.SetARM(texture.New(arm))
	m.NormalMap = texture.New(normal)
	return m
}

// tile applies the same repeat to every texture of m.
func tile(m *material.Standard, u, v float32, wrapS, wrapT texture.Wrap) {
	for _, t := range m.Textures() {
		t.Tiled(u, v, wrapS, wrapT)
	}
}

func addFloor(sc *scene.Scene, opts Options) *material.Standard {
	m := armMaterial("floor",
		"floor/coast_sand_rocks_02_diff_1k.webp",
		"floor/coast_sand_rocks_02_arm_1k.webp",
		"floor/coast_sand_rocks_02_nor_gl_1k.webp",
	)
	m.DisplacementMap = texture.New("floor/coast_sand_rocks_02_disp_1k.webp")
	tile(m, 8, 8, texture.WrapRepeat, texture.WrapRepeat)

	// The alpha mask fades the ground out at its edges and is not tiled.
	m.AlphaMap = texture.New("floor/alpha.webp")
	m.Transparent = true
	m.Side = material.DoubleSide
	m.SetDisplacementScale(opts.FloorDisplacementScale)
	m.SetDisplacementBias(opts.FloorDisplacementBias)

	floor := scene.NewMesh("floor", geometry.Plane(20, 20, 100, 100), m)
	floor.Transform.Rotation.X = -gomath.Pi / 2
	floor.ReceiveShadow = true
	sc.Add(floor)
	return m
}

func addHouse(sc *scene.Scene) {
	house := scene.Group("house")
	sc.Add(house)

	wallMat := armMaterial("walls",
		"brick/castle_brick_broken_06_diff_1k.webp",
		"brick/castle_brick_broken_06_arm_1k.webp",
		"brick/castle_brick_broken_06_nor_gl_1k.webp",
	)
	wallMat.Side = material.DoubleSide
	walls := scene.NewMesh("walls", geometry.Box(4, 2.5, 4), wallMat)
	walls.Transform.Position.Y = 1.25
	walls.CastShadow = true
	walls.ReceiveShadow = true

	roofMat := armMaterial("roof",
		"roof/roof_slates_02_diff_1k.webp",
		"roof/roof_slates_02_arm_1k.webp",
		"roof/roof_slates_02_nor_gl_1k.webp",
	)
	tile(roofMat, 3, 1, texture.WrapRepeat, texture.WrapClamp)
	roofMat.Side = material.DoubleSide
	roof := scene.NewMesh("roof", geometry.Cone(3.5, 1.5, 4), roofMat)
	roof.Transform.Position.Y = 2.5 + 0.75
	roof.Transform.Rotation.Y = -gomath.Pi / 4
	roof.CastShadow = true

	doorMat := material.NewStandard("door")
	doorMat.Map = texture.Color("door/color.webp")
	doorMat.AlphaMap = texture.New("door/alpha.webp")
	doorMat.AOMap = texture.New("door/ambientOcclusion.webp")
	doorMat.DisplacementMap = texture.New("door/height.webp")
	doorMat.NormalMap = texture.New("door/normal.webp")
	doorMat.MetalnessMap = texture.New("door/metalness.webp")
	doorMat.RoughnessMap = texture.New("door/roughness.webp")
	doorMat.SetDisplacementScale(0.15)
	doorMat.SetDisplacementBias(-0.04)
	doorMat.Transparent = true
	doorMat.Side = material.DoubleSide
	door := scene.NewMesh("door", geometry.Plane(2.2, 2.2, 100, 100), doorMat)
	door.Transform.Position = math.Vec3{X: 0, Y: 1.1, Z: 2.01}
	door.CastShadow = true
	door.ReceiveShadow = true

	doorLight := scene.NewLight("doorLight", lighting.NewPointLight(lighting.MustLinearHex("#ff7d46"), 5))
	doorLight.Transform.Position = math.Vec3{X: 0, Y: 2.2, Z: 2.5}

	house.Add(walls, roof, door, doorLight)
	house.Add(addBushes()...)
}

func addBushes() []*scene.Node {
	m := armMaterial("bush",
		"bush/leaves_forest_ground_diff_1k.webp",
		"bush/leaves_forest_ground_arm_1k.webp",
		"bush/leaves_forest_ground_nor_gl_1k.webp",
	)
	tile(m, 2, 1, texture.WrapRepeat, texture.WrapClamp)
	m.Color = lighting.MustLinearHex("#ccffcc")

	g := geometry.Sphere(1, 16, 16)
	placements := []struct {
		scale    float32
		position math.Vec3
	}{
		{0.5, math.Vec3{X: 0.8, Y: 0.2, Z: 2.2}},
		{0.25, math.Vec3{X: 1.4, Y: 0.1, Z: 2.1}},
		{0.4, math.Vec3{X: -0.8, Y: 0.1, Z: 2.2}},
		{0.15, math.Vec3{X: -1, Y: 0.05, Z: 2.6}},
	}

	bushes := make([]*scene.Node, len(placements))
	for i, p := range placements {
		b := scene.NewMesh("bush", g, m)
		b.Transform.UniformScale(p.scale)
		b.Transform.Position = p.position
		bushes[i] = b
	}
	// Only the largest bush leans forward.
	bushes[0].Transform.Rotation.X = -0.75
	return bushes
}

func addGraves(sc *scene.Scene, rng *rand.Rand, opts Options) []GraveTransform {
	m := armMaterial("grave",
		"grave/plastered_stone_wall_diff_1k.webp",
		"grave/plastered_stone_wall_arm_1k.webp",
		"grave/plastered_stone_wall_nor_gl_1k.webp",
	)
	tile(m, 0.3, 0.4, texture.WrapClamp, texture.WrapClamp)

	g := geometry.Box(0.6, 0.8, 0.2)
	group := scene.Group("graves")
	sc.Add(group)

	transforms := PlaceGraves(rng, opts.GraveCount, opts.GraveInnerRadius, opts.GraveOuterRadius)
	for _, tr := range transforms {
		grave := scene.NewMesh("grave", g, m)
		grave.Transform.Position = tr.Position
		grave.Transform.Rotation = tr.Rotation
		grave.CastShadow = true
		grave.ReceiveShadow = true
		group.Add(grave)
	}
	return transforms
}

func addGhosts(sc *scene.Scene, opts Options) []GhostNode {
	ghosts := DefaultGhosts()
	nodes := make([]GhostNode, len(ghosts))
	for i, g := range ghosts {
		light := lighting.NewPointLight(lighting.MustLinearHex(g.Color), g.Intensity)
		light.CastShadow = true
		light.Shadow.MapSize = opts.GhostShadowMapSize
		light.Shadow.Far = 10

		n := scene.NewLight(g.Name, light)
		n.Transform.Position = g.Trajectory.Sample(0)
		sc.Add(n)
		nodes[i] = GhostNode{Ghost: g, Node: n}
	}
	return nodes
}

func addLights(sc *scene.Scene, opts Options) {
	sc.Ambient = lighting.AmbientLight{Color: lighting.MustLinearHex("#86cdff"), Intensity: 0.275}

	sun := lighting.NewDirectionalLight(lighting.MustLinearHex("#86cdff"), 1, math.Vec3{X: 10, Y: 10, Z: 10})
	sun.CastShadow = true
	sun.Shadow = lighting.DirectionalShadow{
		MapSize: opts.SunShadowMapSize,
		Left:    -8, Right: 8, Bottom: -8, Top: 8,
		Near: 1, Far: 20,
	}
	sc.Sun = sun
}

func addAtmosphere(sc *scene.Scene, opts Options) {
	sc.Sky = &scene.Sky{
		Turbidity:       10,
		Rayleigh:        3,
		MieCoefficient:  0.1,
		MieDirectionalG: 0.95,
		SunPosition:     math.Vec3{X: 0.3, Y: -0.038, Z: -0.95},
		Scale:           100,
	}
	sc.Fog = &scene.FogExp2{Color: lighting.MustLinearHex("#04343f"), Density: opts.FogDensity}
	sc.ClearColor = [3]float32{0, 0, 0}
}
