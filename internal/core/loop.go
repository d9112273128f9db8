package core

import "time"

// NominalFrame is the frame period assumed when nothing better is known.
const NominalFrame = 16 * time.Millisecond

// DefaultMaxDelta caps a single tick when a cadence sets no limit of its own.
const DefaultMaxDelta = 250 * time.Millisecond

// Token identifies one scheduled callback. The zero Token means "nothing
// scheduled".
type Token uint64

// Scheduler is the host's request-next-frame primitive.
type Scheduler interface {
	// Schedule arranges for fn to run once on a later frame.
	Schedule(fn func(now time.Time)) Token
	// Cancel drops a pending callback. Unknown tokens are ignored.
	Cancel(tok Token)
}

// CadenceMode selects how wall-clock time turns into simulation steps.
type CadenceMode int

const (
	// CadenceContinuous advances the simulation every frame by the clamped delta.
	CadenceContinuous CadenceMode = iota
	// CadenceStepped accumulates time and advances at most one step per frame
	// once an interval has elapsed.
	CadenceStepped
	// CadenceCatchUp advances fixed steps until the accumulated time is used
	// up, so the simulation rate does not depend on the frame rate.
	CadenceCatchUp
)

// DefaultMaxSteps bounds the catch-up steps taken in one frame.
const DefaultMaxSteps = 16

// Cadence configures a Loop.
type Cadence struct {
	Mode     CadenceMode
	MaxDelta time.Duration        // Upper bound for one frame's delta
	Interval func() time.Duration // Step length, read every frame (stepped and catch-up)
	MaxSteps int                  // Steps per frame before the backlog is dropped (catch-up only)
}

// Continuous returns a continuous cadence clamped at maxDelta.
func Continuous(maxDelta time.Duration) Cadence {
	return Cadence{Mode: CadenceContinuous, MaxDelta: maxDelta}
}

// Stepped returns a stepped cadence whose interval may change between frames.
func Stepped(interval func() time.Duration) Cadence {
	return Cadence{Mode: CadenceStepped, Interval: interval}
}

// CatchUp returns a fixed-step cadence that runs as many steps per frame as
// the elapsed time covers, at most maxSteps. A non-positive maxSteps uses
// DefaultMaxSteps.
func CatchUp(step time.Duration, maxSteps int) Cadence {
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	return Cadence{
		Mode:     CadenceCatchUp,
		Interval: func() time.Duration { return step },
		MaxSteps: maxSteps,
	}
}

// Loop is the timed update loop. It owns at most one scheduled callback at a
// time and only reschedules itself while active reports true.
type Loop struct {
	sched   Scheduler
	cadence Cadence
	update  func(dt time.Duration)
	active  func() bool

	token Token
	last  time.Time
	acc   time.Duration
	steps uint64
}

// NewLoop wires a loop to a scheduler. update receives the time advanced by
// each simulation step; active gates rescheduling.
func NewLoop(sched Scheduler, cadence Cadence, update func(dt time.Duration), active func() bool) *Loop {
	if cadence.MaxDelta <= 0 {
		cadence.MaxDelta = DefaultMaxDelta
	}
	if cadence.Mode == CadenceCatchUp && cadence.MaxSteps <= 0 {
		cadence.MaxSteps = DefaultMaxSteps
	}
	return &Loop{
		sched:   sched,
		cadence: cadence,
		update:  update,
		active:  active,
	}
}

// Start begins ticking from now. Calling Start on a running loop is a no-op.
func (l *Loop) Start(now time.Time) {
	if l.Running() {
		return
	}
	l.last = now
	l.acc = 0
	l.token = l.sched.Schedule(l.Tick)
}

// Stop cancels the pending callback, if any.
func (l *Loop) Stop() {
	if l.token != 0 {
		l.sched.Cancel(l.token)
		l.token = 0
	}
}

// Running reports whether a callback is scheduled.
func (l *Loop) Running() bool {
	return l.token != 0
}

// Steps returns the number of simulation steps taken since creation.
func (l *Loop) Steps() uint64 {
	return l.steps
}

// Tick is the scheduled callback. It advances the simulation according to
// the cadence and schedules the next frame while the game stays active.
func (l *Loop) Tick(now time.Time) {
	l.token = 0
	if !l.active() {
		return
	}

	dt := now.Sub(l.last)
	l.last = now
	if dt < 0 {
		dt = 0
	}
	if dt > l.cadence.MaxDelta {
		dt = l.cadence.MaxDelta
	}

	switch l.cadence.Mode {
	case CadenceContinuous:
		l.step(dt)
	case CadenceStepped:
		l.acc += dt
		if l.acc > l.cadence.Interval() {
			elapsed := l.acc
			l.acc = 0
			l.step(elapsed)
		}
	case CadenceCatchUp:
		l.catchUp(dt)
	}

	if l.active() {
		l.token = l.sched.Schedule(l.Tick)
	}
}

func (l *Loop) catchUp(dt time.Duration) {
	step := l.cadence.Interval()
	if step <= 0 {
		return
	}
	l.acc += dt
	for n := 0; l.acc >= step; n++ {
		if n == l.cadence.MaxSteps {
			l.acc %= step
			return
		}
		l.acc -= step
		l.step(step)
		if !l.active() {
			return
		}
	}
}

func (l *Loop) step(dt time.Duration) {
	l.steps++
	l.update(dt)
}
