package gridtask

import (
	"errors"
	"fmt"

	"github.com/eyal-weiss/laddersearch/searchtask"
)

// Sentinel errors returned by New.
var (
	ErrEmptyGrid   = errors.New("gridtask: grid must have at least one row and column")
	ErrRaggedGrid  = errors.New("gridtask: all rows must have the same width")
	ErrBadStart    = errors.New("gridtask: start cell is outside the grid")
	ErrBadGoal     = errors.New("gridtask: goal cell is outside the grid")
	ErrNonPositive = errors.New("gridtask: cell costs must be positive")
)

// Cell is a grid coordinate.
type Cell struct{ X, Y int }

func (c Cell) id() searchtask.StateID {
	return searchtask.StateID(fmt.Sprintf("%d,%d", c.X, c.Y))
}

type state struct{ cell Cell }

func (s state) ID() searchtask.StateID { return s.cell.id() }

// direction names the four moves a state in a Grid supports.
type direction struct {
	name string
	dx   int
	dy   int
}

var directions = []direction{
	{"N", 0, -1},
	{"S", 0, 1},
	{"E", 1, 0},
	{"W", -1, 0},
}

type op struct {
	dir  direction
	cost int
}

func (o op) ID() searchtask.OperatorID { return searchtask.OperatorID(o.dir.name) }
func (o op) Cost() int                 { return o.cost }

// Grid is a rectangular grid task: moving onto a cell costs that cell's
// weight, and the goal is a single fixed cell.
type Grid struct {
	weights [][]int // weights[y][x]
	width   int
	height  int
	start   Cell
	goal    Cell
}

// New builds a Grid task. weights[y][x] is the cost of moving onto cell
// (x, y); every row must have the same length and every weight must be
// positive. start and goal must both lie within the grid.
func New(weights [][]int, start, goal Cell) (*Grid, error) {
	if len(weights) == 0 || len(weights[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len(weights[0])
	for _, row := range weights {
		if len(row) != width {
			return nil, ErrRaggedGrid
		}
		for _, w := range row {
			if w <= 0 {
				return nil, ErrNonPositive
			}
		}
	}
	height := len(weights)
	g := &Grid{weights: weights, width: width, height: height, start: start, goal: goal}
	if !g.inBounds(start) {
		return nil, ErrBadStart
	}
	if !g.inBounds(goal) {
		return nil, ErrBadGoal
	}
	return g, nil
}

func (g *Grid) inBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

func (g *Grid) InitialState() searchtask.State {
	return state{cell: g.start}
}

func (g *Grid) Operators(s searchtask.State) []searchtask.Operator {
	cell := s.(state).cell
	ops := make([]searchtask.Operator, 0, len(directions))
	for _, d := range directions {
		next := Cell{X: cell.X + d.dx, Y: cell.Y + d.dy}
		if !g.inBounds(next) {
			continue
		}
		ops = append(ops, op{dir: d, cost: g.weights[next.Y][next.X]})
	}
	return ops
}

func (g *Grid) Apply(s searchtask.State, o searchtask.Operator) searchtask.State {
	cell := s.(state).cell
	d := o.(op).dir
	return state{cell: Cell{X: cell.X + d.dx, Y: cell.Y + d.dy}}
}

func (g *Grid) IsGoal(s searchtask.State) bool {
	return s.(state).cell == g.goal
}

// StateOf re-exposes a StateID previously produced by this Grid as a
// searchtask.State, for use as SearchSpace's "lookup" callback in
// TracePath/ExtractPlan.
func (g *Grid) StateOf(id searchtask.StateID) searchtask.State {
	var x, y int
	fmt.Sscanf(string(id), "%d,%d", &x, &y)
	return state{cell: Cell{X: x, Y: y}}
}
