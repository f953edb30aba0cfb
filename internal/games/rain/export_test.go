package rain

import "github.com/vovakirdan/rainshield/internal/core"

// PlaceDrop spawns a rain drop immediately.
func (g *Game) PlaceDrop(pos, vel core.WorldVec2) {
	g.spawnDropAt(pos, vel)
	g.world.Flush()
}

// PlaceNpc spawns an NPC immediately.
func (g *Game) PlaceNpc(pos core.WorldVec2) {
	g.spawnNpcAt(pos)
	g.world.Flush()
}
