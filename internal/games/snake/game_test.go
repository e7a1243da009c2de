package snake

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = seed

	g := New()
	if err := g.Reset(cfg); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	return g
}

func step(t *testing.T, g *Game, actions ...core.Action) core.StepResult {
	t.Helper()
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	res, err := g.Step(in)
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	return res
}

func TestResetStartsAtCenter(t *testing.T) {
	g := newTestGame(t, 1)

	if g.snake.Len() != 1 || g.snake.Head() != (core.Cell{X: 16, Y: 12}) {
		t.Errorf("snake = %v, expected [(16, 12)]", g.snake.Body())
	}
	if g.snake.Heading() != core.DirRight {
		t.Errorf("heading = %v, expected right", g.snake.Heading())
	}
	if g.food.Position() == g.snake.Head() {
		t.Error("Initial food should not be on the snake")
	}
	if !g.cfg.Grid.Contains(g.food.Position()) {
		t.Errorf("Initial food out of bounds at %v", g.food.Position())
	}
}

func TestResetRejectsEmptyBoard(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Grid = core.Grid{}

	if err := New().Reset(cfg); err == nil {
		t.Error("Reset() with an empty board should fail")
	}
}

func TestResetSingleCellBoardIsFull(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Grid = core.Grid{W: 1, H: 1}

	err := New().Reset(cfg)
	if !errors.Is(err, ErrBoardFull) {
		t.Errorf("Reset() on a 1x1 board = %v, expected ErrBoardFull", err)
	}
}

// The head reaches the food at the end of tick 4; eating is detected on
// tick 5 against the pre-move head, and the growth applies to that same move.
func TestEatDetectedBeforeAdvance(t *testing.T) {
	g := newTestGame(t, 5)
	g.food.position = core.Cell{X: 20, Y: 12}

	for tick := 1; tick <= 4; tick++ {
		res := step(t, g)
		if res.Ate {
			t.Fatalf("tick %d: food eaten too early", tick)
		}
	}

	if g.snake.Head() != (core.Cell{X: 20, Y: 12}) {
		t.Fatalf("after 4 ticks head = %v, expected (20, 12)", g.snake.Head())
	}
	if g.snake.Len() != 1 {
		t.Fatalf("after 4 ticks Len() = %d, expected 1", g.snake.Len())
	}

	res := step(t, g)
	if !res.Ate {
		t.Fatal("tick 5: expected food to be eaten")
	}
	if res.State.Length != 2 || res.State.Eaten != 1 {
		t.Errorf("tick 5: state = %+v, expected length 2 and 1 eaten", res.State)
	}
	if g.snake.Head() != (core.Cell{X: 21, Y: 12}) {
		t.Errorf("tick 5: head = %v, expected (21, 12)", g.snake.Head())
	}
	if g.food.Position() == (core.Cell{X: 20, Y: 12}) {
		t.Error("Food should have been relocated off the eaten cell")
	}
	for _, c := range g.snake.Body() {
		if c == g.food.Position() && c != g.snake.Head() {
			t.Errorf("Food relocated onto the body at %v", c)
		}
	}
}

func TestReversalIntentIgnored(t *testing.T) {
	g := newTestGame(t, 9)
	g.food.position = core.Cell{X: 0, Y: 0}
	g.snake.body = []core.Cell{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}

	res := step(t, g, core.ActionLeft)

	if g.snake.Heading() != core.DirRight {
		t.Errorf("heading = %v, expected right", g.snake.Heading())
	}
	if res.Reset {
		t.Error("Rejected reversal should not cause a collision")
	}
	if g.snake.Head() != (core.Cell{X: 6, Y: 5}) {
		t.Errorf("head = %v, expected (6, 5)", g.snake.Head())
	}
}

func TestActionsAppliedInOrder(t *testing.T) {
	g := newTestGame(t, 9)
	g.food.position = core.Cell{X: 0, Y: 0}
	g.snake.body = []core.Cell{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}

	// Up is accepted, Left would reverse the direction of travel.
	step(t, g, core.ActionUp, core.ActionLeft)

	if g.snake.Head() != (core.Cell{X: 5, Y: 4}) {
		t.Errorf("head = %v, expected (5, 4)", g.snake.Head())
	}

	// Now travelling up: Left then Down ends heading left.
	step(t, g, core.ActionLeft, core.ActionDown)
	if g.snake.Head() != (core.Cell{X: 4, Y: 4}) {
		t.Errorf("head = %v, expected (4, 4)", g.snake.Head())
	}
}

func TestSelfCollisionResets(t *testing.T) {
	g := newTestGame(t, 111)
	g.food.position = core.Cell{X: 0, Y: 0}
	g.snake.body = []core.Cell{
		{X: 5, Y: 5}, // Head
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
		{X: 6, Y: 4},
	}
	g.eaten = 4

	res := step(t, g)

	if !res.Reset {
		t.Fatal("Expected a reset after self collision")
	}
	if g.snake.Len() != 1 || g.snake.Head() != g.cfg.Grid.Center() {
		t.Errorf("after reset body = %v, expected [%v]", g.snake.Body(), g.cfg.Grid.Center())
	}
	if g.snake.Heading() != core.DirRight {
		t.Errorf("after reset heading = %v, expected right", g.snake.Heading())
	}
	if res.State.Resets != 1 || res.State.Eaten != 0 {
		t.Errorf("state = %+v, expected 1 reset and 0 eaten", res.State)
	}
	if g.food.Position() != (core.Cell{X: 0, Y: 0}) {
		t.Error("Reset should not move the food")
	}
}

func TestWrapAroundThroughStep(t *testing.T) {
	g := newTestGame(t, 3)
	g.food.position = core.Cell{X: 0, Y: 0}
	g.snake.body = []core.Cell{{X: 31, Y: 7}}

	step(t, g)

	if g.snake.Head() != (core.Cell{X: 0, Y: 7}) {
		t.Errorf("head = %v, expected (0, 7)", g.snake.Head())
	}
}

func TestLengthChangesByAtMostOne(t *testing.T) {
	g := newTestGame(t, 77)
	actions := []core.Action{core.ActionUp, core.ActionLeft, core.ActionDown, core.ActionRight}

	prev := g.snake.Len()
	for i := 0; i < 2000; i++ {
		var res core.StepResult
		if i%7 == 0 {
			res = step(t, g, actions[(i/7)%len(actions)])
		} else {
			res = step(t, g)
		}
		// Steer onto the food row/column now and then to force growth.
		if i%50 == 0 {
			g.food.position = g.cfg.Grid.Step(g.snake.Head(), g.snake.Heading())
		}

		switch {
		case res.Reset:
			if res.State.Length != 1 {
				t.Fatalf("tick %d: length %d after reset, expected 1", i, res.State.Length)
			}
		case res.State.Length != prev && res.State.Length != prev+1:
			t.Fatalf("tick %d: length jumped from %d to %d", i, prev, res.State.Length)
		}
		prev = res.State.Length
	}
}

func TestStepBoardFull(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Grid = core.Grid{W: 2, H: 1}
	cfg.Seed = 1

	g := New()
	if err := g.Reset(cfg); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	// Snake fills the board and sits on the food.
	g.snake.body = []core.Cell{{X: 1, Y: 0}, {X: 0, Y: 0}}
	g.food.position = core.Cell{X: 1, Y: 0}

	_, err := g.Step(core.NewInputFrame())
	if !errors.Is(err, ErrBoardFull) {
		t.Errorf("Step() error = %v, expected ErrBoardFull", err)
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	g1 := newTestGame(t, 12345)
	g2 := newTestGame(t, 12345)

	for i := 0; i < 300; i++ {
		in := core.NewInputFrame()
		switch i % 40 {
		case 10:
			in.Set(core.ActionDown)
		case 20:
			in.Set(core.ActionLeft)
		case 30:
			in.Set(core.ActionUp)
		}
		if _, err := g1.Step(in); err != nil {
			t.Fatal(err)
		}
		if _, err := g2.Step(in); err != nil {
			t.Fatal(err)
		}
		// Feed both games the same food so they grow.
		if i%25 == 0 {
			next := g1.cfg.Grid.Step(g1.snake.Head(), g1.snake.Heading())
			g1.food.position = next
			g2.food.position = next
		}
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()

	if snap1.Tick != snap2.Tick {
		t.Errorf("Tick mismatch: %d vs %d", snap1.Tick, snap2.Tick)
	}
	if snap1.Eaten != snap2.Eaten || snap1.Resets != snap2.Resets {
		t.Errorf("Counter mismatch: %+v vs %+v", snap1, snap2)
	}
	if snap1.Head() != snap2.Head() {
		t.Errorf("Head position mismatch: %v vs %v", snap1.Head(), snap2.Head())
	}
	if len(snap1.Body) != len(snap2.Body) {
		t.Errorf("Length mismatch: %d vs %d", len(snap1.Body), len(snap2.Body))
	}
	if snap1.Heading != snap2.Heading {
		t.Errorf("Heading mismatch: %v vs %v", snap1.Heading, snap2.Heading)
	}
	if snap1.Food != snap2.Food {
		t.Errorf("Food position mismatch: %v vs %v", snap1.Food, snap2.Food)
	}
}

type drawCall struct {
	cell         core.Cell
	fill, border core.Color
}

type recordingRenderer struct {
	cleared   []core.Color
	draws     []drawCall
	presented int
}

func (r *recordingRenderer) Clear(bg core.Color) { r.cleared = append(r.cleared, bg) }

func (r *recordingRenderer) DrawCell(c core.Cell, fill, border core.Color) {
	r.draws = append(r.draws, drawCall{cell: c, fill: fill, border: border})
}

func (r *recordingRenderer) Present() error {
	r.presented++
	return nil
}

func TestRenderDrawsFoodThenSnake(t *testing.T) {
	g := newTestGame(t, 444)
	pal := g.cfg.Palette
	g.food.position = core.Cell{X: 1, Y: 1}
	g.snake.body = []core.Cell{{X: 5, Y: 5}, {X: 4, Y: 5}}

	r := &recordingRenderer{}
	if err := g.Render(r); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}

	if len(r.cleared) != 1 || r.cleared[0] != pal.Background {
		t.Errorf("Clear calls = %v, expected one with %v", r.cleared, pal.Background)
	}
	if r.presented != 1 {
		t.Errorf("Present called %d times, expected 1", r.presented)
	}

	expected := []drawCall{
		{core.Cell{X: 1, Y: 1}, pal.Food, pal.Border},
		{core.Cell{X: 5, Y: 5}, pal.Snake, pal.Border},
		{core.Cell{X: 4, Y: 5}, pal.Snake, pal.Border},
	}
	if len(r.draws) != len(expected) {
		t.Fatalf("DrawCell calls = %v, expected %v", r.draws, expected)
	}
	for i, d := range expected {
		if r.draws[i] != d {
			t.Errorf("DrawCell[%d] = %+v, expected %+v", i, r.draws[i], d)
		}
	}
}

func TestRenderClearsVacatedTail(t *testing.T) {
	g := newTestGame(t, 444)
	pal := g.cfg.Palette
	g.food.position = core.Cell{X: 0, Y: 0}
	g.snake.body = []core.Cell{{X: 5, Y: 5}, {X: 4, Y: 5}}

	step(t, g)

	r := &recordingRenderer{}
	if err := g.Render(r); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}

	first := r.draws[0]
	if first.cell != (core.Cell{X: 4, Y: 5}) || first.fill != pal.Background {
		t.Errorf("first DrawCell = %+v, expected vacated (4, 5) in background", first)
	}
}

func TestRenderToScreen(t *testing.T) {
	g := newTestGame(t, 444)
	screen := core.NewScreen(64, 24)

	if err := g.Render(screen); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}

	head := g.snake.Head()
	if screen.Get(head.X*core.CellWidth, head.Y) != '█' {
		t.Error("Snake head should be drawn on the screen")
	}
}

func TestGameIdentity(t *testing.T) {
	g := New()
	if g.ID() != "snake" {
		t.Errorf("ID should be 'snake', got %s", g.ID())
	}
	if g.Title() != "Snake" {
		t.Errorf("Title should be 'Snake', got %s", g.Title())
	}
}
