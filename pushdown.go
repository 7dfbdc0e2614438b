package automat

type stackOp int8

const (
	opStay stackOp = iota
	opPush
	opPop
)

// Frame is any automaton that can live on a pushdown stack.
type Frame[I, A any] = Automaton[I, FrameAction[I, A]]

// Bottom is the distinguished automaton below the stack. Its action type has
// no pop case, so the machine can never pop past it.
type Bottom[I, A any] = Automaton[I, BottomAction[I, A]]

// FrameAction is returned by stack frames: keep running in place, push a new
// frame above this one, or pop this frame. Every case carries the action the
// pushdown automaton surfaces for the step.
type FrameAction[I, A any] struct {
	op     stackOp
	action A
	frame  Frame[I, A]
}

// PushFrame keeps the current frame and stacks a new one above it. The new
// frame services the next input.
func PushFrame[I, A any](action A, frame Frame[I, A]) FrameAction[I, A] {
	if frame == nil {
		panic("automat: nil pushed frame")
	}
	return FrameAction[I, A]{op: opPush, action: action, frame: frame}
}

// Stay keeps the current frame in place.
func Stay[I, A any](action A) FrameAction[I, A] {
	return FrameAction[I, A]{op: opStay, action: action}
}

// Pop discards the current frame. Control returns to the frame below it, or
// to the bottom automaton if this was the last frame.
func Pop[I, A any](action A) FrameAction[I, A] {
	return FrameAction[I, A]{op: opPop, action: action}
}

// BottomAction is returned by the bottom automaton: keep going, or push the
// first frame onto the empty stack.
type BottomAction[I, A any] struct {
	op     stackOp
	action A
	frame  Frame[I, A]
}

// BottomPush stacks a frame above the bottom. The frame services the next
// input.
func BottomPush[I, A any](action A, frame Frame[I, A]) BottomAction[I, A] {
	if frame == nil {
		panic("automat: nil pushed frame")
	}
	return BottomAction[I, A]{op: opPush, action: action, frame: frame}
}

// BottomStay keeps the stack empty.
func BottomStay[I, A any](action A) BottomAction[I, A] {
	return BottomAction[I, A]{op: opStay, action: action}
}

// Pushdown is a stack of frame automata over one always-present bottom
// automaton. Each transition is serviced by the top frame, or by the bottom
// when the stack is empty; the servicing machine's action decides whether
// the stack grows, stays, or shrinks by exactly one frame. The bottom is
// mutated only while the stack is empty.
//
// The servicing frame is taken off the stack for the duration of its call.
// If the call panics, the frame is not restored and the machine is poisoned:
// every later Transition fails fast instead of running on an inconsistent
// stack.
type Pushdown[I, A any] struct {
	bottom   Bottom[I, A]
	stack    []Frame[I, A]
	poisoned bool
}

var _ Automaton[int, int] = (*Pushdown[int, int])(nil)

// NewPushdown returns a pushdown automaton over bottom. Any frames given are
// pre-stacked in order, the last one on top.
func NewPushdown[I, A any](bottom Bottom[I, A], frames ...Frame[I, A]) *Pushdown[I, A] {
	if bottom == nil {
		panic("automat: nil bottom machine")
	}
	stack := make([]Frame[I, A], 0, len(frames))
	for _, frame := range frames {
		if frame == nil {
			panic("automat: nil pushed frame")
		}
		stack = append(stack, frame)
	}
	return &Pushdown[I, A]{bottom: bottom, stack: stack}
}

// Depth reports the number of stacked frames, excluding the bottom.
func (p *Pushdown[I, A]) Depth() int {
	return len(p.stack)
}

func (p *Pushdown[I, A]) Transition(input I) A {
	if p.poisoned {
		panic("automat: pushdown automaton was poisoned")
	}
	if len(p.stack) == 0 {
		return p.transitionBottom(input)
	}

	top := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	p.poisoned = true
	act := top.Transition(input)
	p.poisoned = false

	switch act.op {
	case opPush:
		p.stack = append(p.stack, top, act.frame)
	case opStay:
		p.stack = append(p.stack, top)
	case opPop:
		// top stays discarded
	default:
		panic("automat: invalid frame action")
	}
	return act.action
}

func (p *Pushdown[I, A]) transitionBottom(input I) A {
	p.poisoned = true
	act := p.bottom.Transition(input)
	p.poisoned = false

	switch act.op {
	case opPush:
		p.stack = append(p.stack, act.frame)
	case opStay:
	default:
		panic("automat: invalid bottom action")
	}
	return act.action
}
