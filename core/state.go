package core

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// TopScoreStore persists the best score across sessions.
type TopScoreStore interface {
	Load() (score int, ok bool, err error)
	Save(score int) error
}

// round holds everything that Reset throws away.
type round struct {
	body         *Body
	food         Cell
	dir          Direction // direction of the last tick
	pending      Direction // applied by the next tick
	score        int
	ticksPerMove float64
}

// GameState is the single player simulation. It is not safe for concurrent
// use: the loop driver owns it and calls it from one goroutine.
type GameState struct {
	cfg     Config
	spawner *Spawner
	store   TopScoreStore
	notify  Listener
	log     zerolog.Logger

	r     round
	round int

	top    int
	hasTop bool
}

// NewGameState starts the first round. The top score is read from store once;
// a nil store or a failed read means no top score is tracked.
func NewGameState(cfg Config, spawner *Spawner, store TopScoreStore) (*GameState, error) {
	g := &GameState{
		cfg:     cfg,
		spawner: spawner,
		store:   store,
		log:     log.Logger.With().Str("component", "game").Logger(),
	}

	if store != nil {
		top, ok, err := store.Load()
		if err != nil {
			g.log.Warn().Err(&StoreError{Op: "load", Err: err}).Msg("Top score disabled")
			g.store = nil
		} else {
			g.top, g.hasTop = top, ok
		}
	}

	r, err := g.newRound()
	if err != nil {
		return nil, fmt.Errorf("start round: %v", err)
	}
	g.r = r
	g.round = 1

	return g, nil
}

// OnEvent registers the listener that receives state change events.
func (g *GameState) OnEvent(l Listener) {
	g.notify = l
}

func (g *GameState) newRound() (round, error) {
	body := NewBody(g.cfg.Origin)
	food, err := g.spawner.Place(g.cfg.Cols, g.cfg.Rows, body)
	if err != nil {
		return round{}, err
	}

	return round{
		body:         body,
		food:         food,
		dir:          Right,
		pending:      Right,
		ticksPerMove: g.cfg.DefaultTicksPerMove,
	}, nil
}

// SetDirection queues dir for the next tick. A reversal of the direction the
// snake last moved in, or a non unit direction, is ignored. Of several
// requests between ticks the last accepted one wins.
func (g *GameState) SetDirection(dir Direction) bool {
	if !dir.Valid() || dir == g.r.dir.Opposite() {
		return false
	}

	g.r.pending = dir
	return true
}

// Advance runs one tick: move, check walls, check self, then food.
// A collision resets the game and nothing else happens in that tick.
func (g *GameState) Advance() Outcome {
	r := &g.r
	r.dir = r.pending

	tail := r.body.Advance(r.dir)
	head := r.body.Head()

	if !head.In(g.cfg.Cols, g.cfg.Rows) {
		g.reset(HitWall)
		return HitWall
	}

	if r.body.SelfIntersects() {
		g.reset(HitSelf)
		return HitSelf
	}

	if head != r.food {
		return Moved
	}

	r.body.GrowAt(tail)
	r.score++
	r.ticksPerMove = math.Max(r.ticksPerMove-g.cfg.SpeedStep, g.cfg.SpeedFloor)
	g.recordScore(r.score)

	eaten := r.food
	food, err := g.spawner.Place(g.cfg.Cols, g.cfg.Rows, r.body)
	if err != nil {
		g.log.Warn().Err(err).Int("length", r.body.Len()).Msg("No room for food")
		g.reset(Saturated)
		return Saturated
	}
	r.food = food

	g.log.Debug().
		Stringer("at", eaten).
		Stringer("next", food).
		Int("score", r.score).
		Float64("ticks_per_move", r.ticksPerMove).
		Msg("Food eaten")
	g.emit(FoodEaten{At: eaten, Score: r.score, Next: food})

	return Ate
}

// Reset starts a new round.
func (g *GameState) Reset() {
	g.reset(Restarted)
}

func (g *GameState) reset(cause Outcome) {
	final := g.r.score

	r, err := g.newRound()
	if err != nil {
		// Only a grid with a single cell gets here and Config.Validate rejects it.
		g.log.Error().Err(err).Msg("Reset")
		return
	}
	g.r = r
	g.round++

	g.log.Info().
		Int("round", g.round).
		Stringer("cause", cause).
		Int("final_score", final).
		Msg("Round reset")
	g.emit(RoundReset{Round: g.round, Cause: cause, FinalScore: final})
}

func (g *GameState) recordScore(score int) {
	if g.hasTop && score <= g.top {
		return
	}

	g.top, g.hasTop = score, true
	if g.store != nil {
		if err := g.store.Save(score); err != nil {
			g.log.Err(&StoreError{Op: "save", Err: err}).Int("score", score).Msg("Save top score")
		}
	}
	g.emit(TopScoreChanged{Score: score})
}

func (g *GameState) emit(e Event) {
	if g.notify != nil {
		g.notify(e)
	}
}

func (g *GameState) Config() Config {
	return g.cfg
}

// Body returns the snake cells, head first.
func (g *GameState) Body() []Cell {
	return g.r.body.Cells()
}

func (g *GameState) Len() int {
	return g.r.body.Len()
}

func (g *GameState) Food() Cell {
	return g.r.food
}

// Direction is the direction the snake moved in on the last tick.
func (g *GameState) Direction() Direction {
	return g.r.dir
}

func (g *GameState) Score() int {
	return g.r.score
}

// TopScore returns the best score seen and whether there is one yet.
func (g *GameState) TopScore() (int, bool) {
	return g.top, g.hasTop
}

func (g *GameState) TicksPerMove() float64 {
	return g.r.ticksPerMove
}

// Round counts rounds started, the first one being 1.
func (g *GameState) Round() int {
	return g.round
}
