package engine

import "github.com/kuredoro/snake_solo/core"

// Inbox carries direction requests from the input goroutine to the loop.
// Send never blocks: when the buffer is full the oldest request is dropped.
type Inbox struct {
	ch chan core.Direction
}

func NewInbox(size int) *Inbox {
	if size < 1 {
		size = 1
	}
	return &Inbox{ch: make(chan core.Direction, size)}
}

func (in *Inbox) Send(dir core.Direction) {
	for {
		select {
		case in.ch <- dir:
			return
		default:
		}

		select {
		case <-in.ch:
		default:
		}
	}
}

// Drain hands every queued request to fn in arrival order without waiting
// for more.
func (in *Inbox) Drain(fn func(core.Direction)) {
	for {
		select {
		case dir := <-in.ch:
			fn(dir)
		default:
			return
		}
	}
}
