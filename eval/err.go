package eval

import (
	"errors"

	"github.com/ezrec/unwind/translate"
)

var f = translate.From

var (
	// Evaluation errors
	ErrMemoryUnavailable = errors.New(f("no memory region available"))
	ErrDivisionByZero    = errors.New(f("division by zero"))
)

// ErrNotEnoughOperands indicates an operator with too few operands on
// the stack. The value is the remaining input at the operator.
type ErrNotEnoughOperands string

func (err ErrNotEnoughOperands) Error() string {
	return f("not enough operands at '%v'", string(err))
}

func (err ErrNotEnoughOperands) Is(target error) (ok bool) {
	_, ok = target.(ErrNotEnoughOperands)
	return
}

// ErrIllegalVariableName indicates that a variable was expected but the
// identifier did not start with '$'. The value is the remaining input.
type ErrIllegalVariableName string

func (err ErrIllegalVariableName) Error() string {
	return f("variable at '%v' must start with '$'", string(err))
}

func (err ErrIllegalVariableName) Is(target error) (ok bool) {
	_, ok = target.(ErrIllegalVariableName)
	return
}

// ErrMalformedAssignment indicates that more than one expression
// preceded the '=' of an assignment. The value is the remaining input.
type ErrMalformedAssignment string

func (err ErrMalformedAssignment) Error() string {
	return f("more than one expression before '=' at '%v'", string(err))
}

func (err ErrMalformedAssignment) Is(target error) (ok bool) {
	_, ok = target.(ErrMalformedAssignment)
	return
}

// ErrSyntax indicates input that could not be tokenized where a token
// was required. The value is the remaining input.
type ErrSyntax string

func (err ErrSyntax) Error() string {
	return f("syntax error at '%v'", string(err))
}

func (err ErrSyntax) Is(target error) (ok bool) {
	_, ok = target.(ErrSyntax)
	return
}

// ErrUndefinedConstant indicates a constant with no binding.
type ErrUndefinedConstant Constant

func (err ErrUndefinedConstant) Error() string {
	return f("constant %v undefined", Constant(err))
}

func (err ErrUndefinedConstant) Is(target error) (ok bool) {
	_, ok = target.(ErrUndefinedConstant)
	return
}

// ErrUndefinedVariable indicates a variable with no binding.
type ErrUndefinedVariable Variable

func (err ErrUndefinedVariable) Error() string {
	return f("variable %v undefined", Variable(err))
}

func (err ErrUndefinedVariable) Is(target error) (ok bool) {
	_, ok = target.(ErrUndefinedVariable)
	return
}

// ErrMemoryOutOfBounds indicates a dereference outside the configured
// memory region.
type ErrMemoryOutOfBounds struct {
	Address uint64 // The dereferenced address.
	Base    uint64 // Base address of the region.
	Size    int    // Size of the region in bytes.
}

func (err ErrMemoryOutOfBounds) Error() string {
	return f("address %#x outside memory region [%#x, %#x)",
		err.Address, err.Base, err.Base+uint64(err.Size))
}

func (err ErrMemoryOutOfBounds) Is(target error) (ok bool) {
	_, ok = target.(ErrMemoryOutOfBounds)
	return
}

// Phase tags which stage of Process failed.
type Phase int

const (
	PHASE_PARSE Phase = iota // The input did not parse.
	PHASE_EVAL               // A parsed assignment did not evaluate.
)

// ErrExpression wraps a parse or evaluation failure from Process,
// recording the phase it came from.
type ErrExpression struct {
	Phase Phase
	Err   error
}

func (err *ErrExpression) Error() string {
	if err.Phase == PHASE_PARSE {
		return f("parse: %v", err.Err)
	}

	return f("evaluate: %v", err.Err)
}

func (err *ErrExpression) Unwrap() error {
	return err.Err
}
