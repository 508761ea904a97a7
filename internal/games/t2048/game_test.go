package t2048

import (
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/santa2048/internal/engine"
)

// bareSettings starts games on an empty board with a fixed spawn value.
func bareSettings(spawnFour float64) Settings {
	return Settings{
		Debounce:             100 * time.Millisecond,
		QueueCapacity:        100,
		SpawnFourProbability: spawnFour,
		OpeningTiles:         0,
	}
}

func place(t *testing.T, g *Game, tiles map[engine.Position]int) {
	t.Helper()
	c := g.engine.Controller()
	for p, v := range tiles {
		if !c.InsertTile(p, v) {
			t.Fatalf("InsertTile(%v, %d) failed", p, v)
		}
	}
	g.tracker.Clear()
}

func TestStartPlacesOpeningTiles(t *testing.T) {
	g := New(Variants[0], WithSeed(42))
	g.Start()

	snap := g.Snapshot()
	tiles := 0
	for _, row := range snap.Board {
		for _, v := range row {
			if v != 0 {
				tiles++
				if v != 2 {
					t.Errorf("opening tile = %d, want 2", v)
				}
			}
		}
	}

	if tiles != 2 {
		t.Errorf("opening tiles = %d, want 2", tiles)
	}
	if snap.Score != 0 || snap.Moves != 0 {
		t.Errorf("fresh game has score %d and %d moves", snap.Score, snap.Moves)
	}
	if snap.Status != StatusPlaying {
		t.Errorf("Status = %s, want playing", snap.Status)
	}
	if snap.Variant != "classic" || snap.Dimension != 4 || snap.Threshold != 2048 {
		t.Errorf("unexpected variant in snapshot: %+v", snap)
	}
}

func TestMoveSpawnsAfterChange(t *testing.T) {
	g := New(Variants[0], WithSeed(7), WithSettings(bareSettings(0)))
	g.Start()
	place(t, g, map[engine.Position]int{engine.Pos(0, 0): 2, engine.Pos(0, 1): 2})

	if !g.Move(engine.Left) {
		t.Fatal("Move should be accepted while playing")
	}

	snap := g.Snapshot()
	if snap.Board[0][0] != 4 {
		t.Errorf("merged tile = %d, want 4", snap.Board[0][0])
	}
	if snap.Score != 4 {
		t.Errorf("Score = %d, want 4", snap.Score)
	}
	if snap.Moves != 1 {
		t.Errorf("Moves = %d, want 1", snap.Moves)
	}
	if sum := g.engine.Controller().Grid().Sum(); sum != 6 {
		t.Errorf("board sum = %d, want 6 (merged 4 plus a spawned 2)", sum)
	}
}

func TestNoChangeNoSpawn(t *testing.T) {
	g := New(Variants[0], WithSeed(7), WithSettings(bareSettings(0)))
	g.Start()
	place(t, g, map[engine.Position]int{engine.Pos(0, 0): 4})

	g.Move(engine.Left)
	g.Move(engine.Up)

	snap := g.Snapshot()
	if snap.Moves != 0 {
		t.Errorf("Moves = %d, want 0", snap.Moves)
	}
	if sum := g.engine.Controller().Grid().Sum(); sum != 4 {
		t.Errorf("board sum = %d, want 4 (no spawn)", sum)
	}
}

func TestSpawnFourProbability(t *testing.T) {
	g := New(Variants[0], WithSeed(7), WithSettings(bareSettings(1)))
	g.Start()
	place(t, g, map[engine.Position]int{engine.Pos(0, 3): 2})

	g.Move(engine.Left)

	if sum := g.engine.Controller().Grid().Sum(); sum != 6 {
		t.Errorf("board sum = %d, want 6 (moved 2 plus a spawned 4)", sum)
	}
}

func TestWinStopsSpawnAndCancelsQueue(t *testing.T) {
	g := New(Custom(4, 8), WithSeed(3), WithSettings(bareSettings(0)))
	g.Start()
	place(t, g, map[engine.Position]int{
		engine.Pos(0, 0): 4,
		engine.Pos(1, 0): 4,
		engine.Pos(3, 3): 2,
	})

	g.Move(engine.Left) // changes row 3 only
	g.Move(engine.Up)   // merges the 4s into the winning 8
	g.Move(engine.Down)
	if got := g.Snapshot().Pending; got != 2 {
		t.Fatalf("Pending = %d, want 2 while debounced", got)
	}

	g.Advance(100 * time.Millisecond)

	snap := g.Snapshot()
	if snap.Status != StatusWon {
		t.Fatalf("Status = %s, want won", snap.Status)
	}
	if snap.WinAt == nil || *snap.WinAt != engine.Pos(0, 0) {
		t.Errorf("WinAt = %v, want (0,0)", snap.WinAt)
	}
	if snap.Pending != 0 {
		t.Errorf("Pending = %d, want 0 after win", snap.Pending)
	}
	if snap.Moves != 2 {
		t.Errorf("Moves = %d, want 2", snap.Moves)
	}

	// the winning move must not spawn: 8 + 2 from row 3 + one spawn after the first move
	if sum := g.engine.Controller().Grid().Sum(); sum != 12 {
		t.Errorf("board sum = %d, want 12", sum)
	}

	if g.Move(engine.Right) {
		t.Error("Move should be ignored after a win")
	}
	g.Settle()
	if g.Snapshot().Moves != 2 {
		t.Error("no move may be applied after a win")
	}
}

func TestLossDetection(t *testing.T) {
	g := New(Custom(2, 2048), WithSeed(5), WithSettings(bareSettings(1)))
	g.Start()
	place(t, g, map[engine.Position]int{
		engine.Pos(0, 0): 2,
		engine.Pos(0, 1): 4,
		engine.Pos(1, 0): 8,
	})

	g.Move(engine.Right) // 8 slides right, the spawned 4 fills (1,0)

	snap := g.Snapshot()
	want := [][]int{{2, 4}, {4, 8}}
	if !reflect.DeepEqual(snap.Board, want) {
		t.Fatalf("Board = %v, want %v", snap.Board, want)
	}
	if snap.Status != StatusLost {
		t.Errorf("Status = %s, want lost", snap.Status)
	}
	if snap.WinAt != nil {
		t.Error("WinAt should be nil for a lost game")
	}
	if !g.Over() {
		t.Error("Over() should be true")
	}
	if g.Move(engine.Left) {
		t.Error("Move should be ignored after a loss")
	}
}

func TestRestart(t *testing.T) {
	g := New(Custom(2, 2048), WithSeed(5), WithSettings(bareSettings(1)))
	g.Start()
	place(t, g, map[engine.Position]int{
		engine.Pos(0, 0): 2,
		engine.Pos(0, 1): 4,
		engine.Pos(1, 0): 8,
	})
	g.Move(engine.Right)

	settings := bareSettings(0)
	settings.OpeningTiles = 2
	g.settings = settings
	g.Restart()

	snap := g.Snapshot()
	if snap.Status != StatusPlaying || snap.Score != 0 || snap.Moves != 0 {
		t.Errorf("Restart should reset the session, got %+v", snap)
	}
	if n := len(g.engine.Controller().Grid().EmptyCells()); n != 2 {
		t.Errorf("empty cells after restart = %d, want 2", n)
	}
}

func TestDeterministicReplay(t *testing.T) {
	moves := []engine.Direction{engine.Left, engine.Up, engine.Right, engine.Down, engine.Left, engine.Left, engine.Up}

	play := func() Snapshot {
		g := New(Variants[0], WithSeed(99))
		g.Start()
		for _, d := range moves {
			g.Move(d)
			g.Settle()
		}
		return g.Snapshot()
	}

	a, b := play(), play()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed and moves produced different games:\n%v\n%v", a, b)
	}
}

func TestObserverReceivesNotifications(t *testing.T) {
	var inserted int
	g := New(Variants[0], WithSeed(1), WithObserver(engine.ObserverFuncs{
		OnTileInserted: func(engine.Position, int) { inserted++ },
	}))
	g.Start()

	if inserted != 2 {
		t.Errorf("observer saw %d insertions, want 2", inserted)
	}
}

func TestSnapshotString(t *testing.T) {
	snap := Snapshot{
		Board:   [][]int{{2, 0}, {0, 16}},
		Score:   20,
		MaxTile: 16,
		Status:  StatusPlaying,
		Moves:   3,
	}

	want := " 2  .\n . 16\nscore=20 max=16 moves=3 status=playing"
	if got := snap.String(); got != want {
		t.Errorf("String() =\n%q\nwant\n%q", got, want)
	}
}
