// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package eval

import (
	"github.com/ezrec/unwind/memory"
)

// Evaluator holds the state needed to evaluate unwinding rules for one
// call frame: an optional memory region, caller-supplied constants, and
// the variables produced by assignments.
//
// An Evaluator is not safe for concurrent use; concurrent unwinds of
// independent frames each need their own Evaluator.
type Evaluator[T memory.Value] struct {
	// Memory is the view of the target's memory image. When nil, any
	// dereference fails with ErrMemoryUnavailable.
	Memory *memory.Region

	// Order is the byte order for dereference reads. The zero value is
	// BO_NATIVE.
	Order memory.ByteOrder

	// Constants holds read-only bindings, populated before evaluation.
	Constants map[Constant]T

	// Variables holds mutable bindings; Assign and Process write here.
	Variables map[Variable]T
}

// NewEvaluator returns an Evaluator with empty constant and variable
// bindings and no memory region.
func NewEvaluator[T memory.Value]() *Evaluator[T] {
	return &Evaluator[T]{
		Constants: map[Constant]T{},
		Variables: map[Variable]T{},
	}
}

// Evaluate walks expr and produces its value. Constants and variables
// resolve against the Evaluator's bindings; dereferences read from its
// memory region at its byte order. The left side of a binary operator is
// evaluated completely before the right side begins.
func (ev *Evaluator[T]) Evaluate(expr Expr[T]) (value T, err error) {
	switch e := expr.(type) {
	case Value[T]:
		return e.X, nil

	case Const[T]:
		value, ok := ev.Constants[e.Name]
		if !ok {
			return 0, ErrUndefinedConstant(e.Name)
		}
		return value, nil

	case Var[T]:
		value, ok := ev.Variables[e.Name]
		if !ok {
			return 0, ErrUndefinedVariable(e.Name)
		}
		return value, nil

	case Op[T]:
		left, err := ev.Evaluate(e.Left)
		if err != nil {
			return 0, err
		}
		right, err := ev.Evaluate(e.Right)
		if err != nil {
			return 0, err
		}
		return combine(left, right, e.Operator)

	case Deref[T]:
		if ev.Memory == nil {
			return 0, ErrMemoryUnavailable
		}
		inner, err := ev.Evaluate(e.Expr)
		if err != nil {
			return 0, err
		}
		addr := uint64(inner)
		value, ok := memory.ReadAt[T](ev.Memory, addr, ev.Order)
		if !ok {
			return 0, ErrMemoryOutOfBounds{
				Address: addr,
				Base:    ev.Memory.BaseAddr(),
				Size:    ev.Memory.Size(),
			}
		}
		return value, nil
	}

	panic("unknown expression node")
}

// combine applies a binary operator. Division, modulo, and alignment
// fail on a zero right operand instead of faulting.
func combine[T memory.Value](left, right T, op BinOp) (value T, err error) {
	switch op {
	case OP_ADD:
		return left + right, nil
	case OP_SUB:
		return left - right, nil
	case OP_MUL:
		return left * right, nil
	case OP_DIV:
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		return left / right, nil
	case OP_MOD:
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		return left % right, nil
	case OP_ALIGN:
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		return right * floorDiv(left, right), nil
	}

	panic("unknown operator")
}

// floorDiv divides rounding toward negative infinity, so that aligning
// a negative value moves it to the next lower multiple. For the unsigned
// widths this is plain truncating division.
func floorDiv[T memory.Value](left, right T) (q T) {
	q = left / right
	if left%right != 0 && (left < 0) != (right < 0) {
		q--
	}

	return
}

// Assign evaluates an assignment's expression and stores the result
// under its variable. It reports whether the variable was already bound
// before this call.
func (ev *Evaluator[T]) Assign(a Assignment[T]) (overwrote bool, err error) {
	value, err := ev.Evaluate(a.Expr)
	if err != nil {
		return
	}

	_, overwrote = ev.Variables[a.Variable]
	ev.Variables[a.Variable] = value
	return
}

// Process parses input as a batch of assignments and applies them in
// order. Parsing is all-or-nothing; application stops at the first
// evaluation failure, leaving earlier assignments committed. The
// returned set holds every variable written by the batch. Failures are
// wrapped in ErrExpression tagged with the phase that failed.
func (ev *Evaluator[T]) Process(input string) (changed map[Variable]bool, err error) {
	assigns, err := ParseAssignments[T](input)
	if err != nil {
		return nil, &ErrExpression{Phase: PHASE_PARSE, Err: err}
	}

	changed = map[Variable]bool{}
	for _, a := range assigns {
		if _, err := ev.Assign(a); err != nil {
			return changed, &ErrExpression{Phase: PHASE_EVAL, Err: err}
		}
		changed[a.Variable] = true
	}

	return
}
