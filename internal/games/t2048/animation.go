package t2048

import (
	"time"

	"github.com/vovakirdan/santa2048/internal/core"
	"github.com/vovakirdan/santa2048/internal/engine"
)

// AnimationKind identifies what a tile animation shows.
type AnimationKind int

const (
	AnimSlide AnimationKind = iota // tile travelling between cells
	AnimMerge                      // merged tile appearing at its destination
	AnimPop                        // newly inserted tile
)

// Animation is one tile transition. Progress runs over the tracker's
// duration, which matches the move debounce so a move has visually settled
// before the next queued move is applied.
type Animation struct {
	Kind     AnimationKind
	From     engine.Position
	To       engine.Position
	Value    int
	elapsed  time.Duration
	duration time.Duration
}

// Progress returns the eased completion in [0, 1].
func (a Animation) Progress() float64 {
	if a.duration <= 0 {
		return 1
	}
	return easeOutQuad(core.ClampF(float64(a.elapsed)/float64(a.duration), 0, 1))
}

// Done reports whether the animation has finished.
func (a Animation) Done() bool {
	return a.elapsed >= a.duration
}

// Position returns the interpolated board coordinates of the tile.
func (a Animation) Position() (row, col float64) {
	t := a.Progress()
	row = core.Lerp(float64(a.From.Row), float64(a.To.Row), t)
	col = core.Lerp(float64(a.From.Col), float64(a.To.Col), t)
	return row, col
}

// Tracker turns engine notifications into animations. It implements
// engine.Observer.
type Tracker struct {
	duration time.Duration
	active   []Animation

	score   int
	gain    int
	gainAge time.Duration
}

// NewTracker creates a tracker whose animations last d.
func NewTracker(d time.Duration) *Tracker {
	return &Tracker{duration: max(d, 0)}
}

func (t *Tracker) add(kind AnimationKind, from, to engine.Position, value int) {
	t.active = append(t.active, Animation{
		Kind:     kind,
		From:     from,
		To:       to,
		Value:    value,
		duration: t.duration,
	})
}

// ScoreChanged records points gained so the HUD can show them briefly.
func (t *Tracker) ScoreChanged(score int) {
	if score > t.score {
		if t.gainAge >= t.duration {
			t.gain = 0
		}
		t.gain += score - t.score
		t.gainAge = 0
	} else {
		t.gain = 0
	}
	t.score = score
}

func (t *Tracker) TileInserted(at engine.Position, value int) {
	t.add(AnimPop, at, at, value)
}

func (t *Tracker) TileMoved(from, to engine.Position, value int) {
	t.add(AnimSlide, from, to, value)
}

func (t *Tracker) TilesMerged(from [2]engine.Position, to engine.Position, value int) {
	t.add(AnimSlide, from[0], to, value/2)
	t.add(AnimSlide, from[1], to, value/2)
	t.add(AnimMerge, to, to, value)
}

// Advance moves every animation forward by d and drops finished ones.
func (t *Tracker) Advance(d time.Duration) {
	if d <= 0 {
		return
	}
	t.gainAge += d

	live := t.active[:0]
	for _, a := range t.active {
		a.elapsed += d
		if !a.Done() {
			live = append(live, a)
		}
	}
	clear(t.active[len(live):])
	t.active = live
}

// Active returns a copy of the running animations.
func (t *Tracker) Active() []Animation {
	out := make([]Animation, len(t.active))
	copy(out, t.active)
	return out
}

// Highlight returns the pop or merge animation landing at p, if any.
func (t *Tracker) Highlight(p engine.Position) (Animation, bool) {
	for _, a := range t.active {
		if a.Kind != AnimSlide && a.To == p {
			return a, true
		}
	}
	return Animation{}, false
}

// Gain returns the points scored by the most recent moves while they are
// still on display, or 0.
func (t *Tracker) Gain() int {
	if t.gainAge >= t.duration {
		return 0
	}
	return t.gain
}

// Clear drops every animation and the score gain.
func (t *Tracker) Clear() {
	t.active = nil
	t.gain = 0
	t.gainAge = 0
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}
