package engine

// Observer receives board notifications. Calls are synchronous and happen on
// the goroutine that drives the engine, in the order the changes are applied.
type Observer interface {
	ScoreChanged(score int)
	TileInserted(at Position, value int)
	TileMoved(from, to Position, value int)
	TilesMerged(from [2]Position, to Position, value int)
}

// NopObserver ignores every notification.
type NopObserver struct{}

func (NopObserver) ScoreChanged(int)                        {}
func (NopObserver) TileInserted(Position, int)              {}
func (NopObserver) TileMoved(Position, Position, int)       {}
func (NopObserver) TilesMerged([2]Position, Position, int) {}

// ObserverFuncs adapts optional callbacks to the Observer interface.
// Nil fields are skipped.
type ObserverFuncs struct {
	OnScoreChanged func(score int)
	OnTileInserted func(at Position, value int)
	OnTileMoved    func(from, to Position, value int)
	OnTilesMerged  func(from [2]Position, to Position, value int)
}

func (f ObserverFuncs) ScoreChanged(score int) {
	if f.OnScoreChanged != nil {
		f.OnScoreChanged(score)
	}
}

func (f ObserverFuncs) TileInserted(at Position, value int) {
	if f.OnTileInserted != nil {
		f.OnTileInserted(at, value)
	}
}

func (f ObserverFuncs) TileMoved(from, to Position, value int) {
	if f.OnTileMoved != nil {
		f.OnTileMoved(from, to, value)
	}
}

func (f ObserverFuncs) TilesMerged(from [2]Position, to Position, value int) {
	if f.OnTilesMerged != nil {
		f.OnTilesMerged(from, to, value)
	}
}

// multiObserver fans notifications out in order.
type multiObserver []Observer

// Observers combines several observers into one. Nil entries are dropped.
func Observers(observers ...Observer) Observer {
	var m multiObserver
	for _, o := range observers {
		if o != nil {
			m = append(m, o)
		}
	}
	switch len(m) {
	case 0:
		return NopObserver{}
	case 1:
		return m[0]
	}
	return m
}

func (m multiObserver) ScoreChanged(score int) {
	for _, o := range m {
		o.ScoreChanged(score)
	}
}

func (m multiObserver) TileInserted(at Position, value int) {
	for _, o := range m {
		o.TileInserted(at, value)
	}
}

func (m multiObserver) TileMoved(from, to Position, value int) {
	for _, o := range m {
		o.TileMoved(from, to, value)
	}
}

func (m multiObserver) TilesMerged(from [2]Position, to Position, value int) {
	for _, o := range m {
		o.TilesMerged(from, to, value)
	}
}
