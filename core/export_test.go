package core

// SetRound replaces the current round for tests that need a specific board.
func (g *GameState) SetRound(body *Body, food Cell, dir Direction) {
	g.r.body = body
	g.r.food = food
	g.r.dir = dir
	g.r.pending = dir
}
