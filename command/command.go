// Package command implements the Command interface, the three concrete
// work orders, the Queue invoker and the undo History.
package command

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Invoker-level sentinel errors.
var (
	// ErrNilCommand is returned by Submit for a nil command.
	ErrNilCommand = errors.New("command: nil command")

	// ErrNothingToUndo is returned by UndoLast on an empty history.
	ErrNothingToUndo = errors.New("command: nothing to undo")
)

// Command is a reified request: identity for the journal, a name for
// humans, Execute to do it, Undo to take it back.
type Command interface {
	// ID is the generated work-order identifier.
	ID() string

	// Name is the human-readable request name.
	Name() string

	// Execute performs the request against its receiver.
	Execute() error

	// Undo reverses a completed Execute.
	Undo() error
}

// order carries the identity fields shared by every concrete command.
type order struct {
	id   string
	name string
}

func newOrder(name string) order {
	return order{id: uuid.NewString(), name: name}
}

func (o order) ID() string   { return o.id }
func (o order) Name() string { return o.name }

// OpenDoor raises the garage door.
type OpenDoor struct {
	order
	g *Garage
}

// NewOpenDoor builds the work order; the receiver is captured now, executed
// later.
func NewOpenDoor(g *Garage) *OpenDoor {
	return &OpenDoor{order: newOrder("open door"), g: g}
}

// Execute raises the door.
func (c *OpenDoor) Execute() error {
	c.g.doorOpen = true
	return nil
}

// Undo lowers the door.
func (c *OpenDoor) Undo() error {
	c.g.doorOpen = false
	return nil
}

// StartEngine starts one vehicle's engine; the door must be up.
type StartEngine struct {
	order
	g   *Garage
	vin string
}

// NewStartEngine builds the work order for one vehicle.
func NewStartEngine(g *Garage, vin string) *StartEngine {
	return &StartEngine{order: newOrder("start engine " + vin), g: g, vin: vin}
}

// Execute starts the engine, refusing while the door is down (nobody wants
// the exhaust indoors).
func (c *StartEngine) Execute() error {
	if !c.g.doorOpen {
		return fmt.Errorf("%w: cannot start %s", ErrDoorClosed, c.vin)
	}
	c.g.running[c.vin] = true

	return nil
}

// Undo stops the engine.
func (c *StartEngine) Undo() error {
	if !c.g.running[c.vin] {
		return fmt.Errorf("%w: %s", ErrEngineOff, c.vin)
	}
	delete(c.g.running, c.vin)

	return nil
}

// Refuel adds fuel to one vehicle's tank.
type Refuel struct {
	order
	g      *Garage
	vin    string
	litres int
}

// NewRefuel builds the work order for a given amount.
func NewRefuel(g *Garage, vin string, litres int) *Refuel {
	return &Refuel{
		order: newOrder(fmt.Sprintf("refuel %s (%dL)", vin, litres)),
		g:     g, vin: vin, litres: litres,
	}
}

// Execute pumps the litres in.
func (c *Refuel) Execute() error {
	c.g.fuelL[c.vin] += c.litres
	return nil
}

// Undo drains the same litres back out.
func (c *Refuel) Undo() error {
	c.g.fuelL[c.vin] -= c.litres
	return nil
}

// Journal lists executed command lines in execution order.
type Journal []string

// Queue is the invoker: it stores submitted commands and runs them FIFO,
// knowing nothing about what they do. Completed commands land in the
// attached History for undo.
type Queue struct {
	pending []Command
	hist    History
}

// NewQueue returns an empty queue with an empty history.
func NewQueue() *Queue { return &Queue{} }

// Submit appends a command for the next Run.
func (q *Queue) Submit(c Command) error {
	if c == nil {
		return ErrNilCommand
	}
	q.pending = append(q.pending, c)

	return nil
}

// Run executes every pending command in submission order and journals each
// completed one. The first failure stops the run; completed commands stay
// completed (and undoable), the failed command and everything behind it
// stays pending.
//
// Complexity: O(pending).
func (q *Queue) Run() (Journal, error) {
	var j Journal
	for len(q.pending) > 0 {
		c := q.pending[0]
		if err := c.Execute(); err != nil {
			return j, fmt.Errorf("command %q: %w", c.Name(), err)
		}
		q.pending = q.pending[1:]
		q.hist.push(c)
		j = append(j, c.Name()+": done")
	}

	return j, nil
}

// History exposes the executed-command stack for undo.
func (q *Queue) History() *History { return &q.hist }

// History records executed commands, most recent last.
type History struct {
	done []Command
}

func (h *History) push(c Command) { h.done = append(h.done, c) }

// Depth reports how many executed commands can still be undone.
func (h *History) Depth() int { return len(h.done) }

// UndoLast reverses the most recently executed command and pops it.
func (h *History) UndoLast() error {
	if len(h.done) == 0 {
		return ErrNothingToUndo
	}
	top := h.done[len(h.done)-1]
	if err := top.Undo(); err != nil {
		return fmt.Errorf("command %q: undo: %w", top.Name(), err)
	}
	h.done = h.done[:len(h.done)-1]

	return nil
}
