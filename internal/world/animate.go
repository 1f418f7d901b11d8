package world

// Animate moves every ghost light to its position at elapsed time t,
// in seconds. Positions are sampled from t directly, never accumulated,
// so a frame can be recomputed exactly.
func (w *World) Animate(t float64) {
	for _, g := range w.Ghosts {
		g.Node.Transform.Position = g.Ghost.Trajectory.Sample(t)
	}
}
