package core

// Event is published by GameState whenever something observable happens.
// Handlers run synchronously inside Advance or Reset.
type Event interface {
	isEvent()
}

type FoodEaten struct {
	At    Cell // where the food was
	Score int  // score after eating
	Next  Cell // newly placed food
}

type RoundReset struct {
	Round      int     // number of the round that starts now
	Cause      Outcome // what ended the previous round
	FinalScore int     // score the previous round ended with
}

type TopScoreChanged struct {
	Score int
}

func (FoodEaten) isEvent()       {}
func (RoundReset) isEvent()      {}
func (TopScoreChanged) isEvent() {}

// Listener receives state change events.
type Listener func(Event)

// Outcome describes what a single tick did.
type Outcome int

const (
	Moved Outcome = iota
	Ate
	HitWall
	HitSelf
	Saturated
	Restarted // reset requested by the caller
)

func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Ate:
		return "ate"
	case HitWall:
		return "hit wall"
	case HitSelf:
		return "hit self"
	case Saturated:
		return "grid saturated"
	case Restarted:
		return "restarted"
	}
	return "unknown"
}

// Terminal reports whether the outcome ended the round.
func (o Outcome) Terminal() bool {
	return o == HitWall || o == HitSelf || o == Saturated
}
