// Package reveal animates elements into place when they appear: each item waits
// for its delay, then rises from a lowered position onto its final row on a
// damped spring.
package reveal

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

const (
	fps = 60

	// DefaultRise is how many rows below its final position an item starts.
	DefaultRise = 2.0

	settleEpsilon = 0.01
)

type Item struct {
	ID    string
	Delay time.Duration
}

type startMsg struct {
	gen int
	id  string
}

type frameMsg struct {
	gen int
}

type itemState struct {
	started bool
	done    bool
	pos     float64
	vel     float64
}

// Animator is not safe for concurrent use; it lives inside a bubbletea model
// and is only touched from Update.
type Animator struct {
	enabled bool
	ticking bool
	gen     int
	rise    float64
	spring  harmonica.Spring
	items   map[string]*itemState
}

func New() *Animator {
	return &Animator{
		rise:   DefaultRise,
		spring: harmonica.NewSpring(harmonica.FPS(fps), 8.0, 0.6),
		items:  map[string]*itemState{},
	}
}

// Init switches animations on. Calling it again has no further effect.
func (a *Animator) Init() {
	a.enabled = true
}

func (a *Animator) Enabled() bool { return a.enabled }

// Start lays items out at their lowered position and schedules their entrance.
// Any animation still running from an earlier Start is abandoned.
func (a *Animator) Start(items ...Item) tea.Cmd {
	a.Reset()
	if !a.enabled {
		for _, it := range items {
			a.items[it.ID] = &itemState{started: true, done: true}
		}
		return nil
	}
	gen := a.gen
	cmds := make([]tea.Cmd, 0, len(items))
	for _, it := range items {
		id := it.ID
		a.items[id] = &itemState{pos: a.rise}
		cmds = append(cmds, tea.Tick(it.Delay, func(time.Time) tea.Msg {
			return startMsg{gen: gen, id: id}
		}))
	}
	return tea.Batch(cmds...)
}

// Reset forgets every item. Ticks already in flight are ignored when they land.
func (a *Animator) Reset() {
	a.gen++
	a.ticking = false
	a.items = map[string]*itemState{}
}

func (a *Animator) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case startMsg:
		if msg.gen != a.gen {
			return nil
		}
		st, ok := a.items[msg.id]
		if !ok || st.started {
			return nil
		}
		st.started = true
		if a.ticking {
			return nil
		}
		a.ticking = true
		return a.frame()
	case frameMsg:
		if msg.gen != a.gen {
			return nil
		}
		a.ticking = false
		if !a.step() {
			return nil
		}
		a.ticking = true
		return a.frame()
	}
	return nil
}

// step advances every running item by one frame and reports whether any item
// still needs frames.
func (a *Animator) step() bool {
	running := false
	for _, st := range a.items {
		if !st.started || st.done {
			continue
		}
		st.pos, st.vel = a.spring.Update(st.pos, st.vel, 0)
		if math.Abs(st.pos) < settleEpsilon && math.Abs(st.vel) < settleEpsilon {
			st.pos, st.vel, st.done = 0, 0, true
			continue
		}
		running = true
	}
	return running
}

func (a *Animator) frame() tea.Cmd {
	gen := a.gen
	return tea.Tick(time.Second/fps, func(time.Time) tea.Msg {
		return frameMsg{gen: gen}
	})
}

// Offset is the number of rows id currently sits below its final position.
func (a *Animator) Offset(id string) int {
	st, ok := a.items[id]
	if !ok {
		return 0
	}
	return int(math.Round(st.pos))
}

// Started reports whether id's delay has elapsed. Unknown items count as started.
func (a *Animator) Started(id string) bool {
	st, ok := a.items[id]
	if !ok {
		return true
	}
	return st.started
}

// Settled reports whether every item has reached its final position.
func (a *Animator) Settled() bool {
	for _, st := range a.items {
		if !st.done {
			return false
		}
	}
	return true
}
