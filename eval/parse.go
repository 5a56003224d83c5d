// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package eval

import (
	"strconv"
	"strings"

	"github.com/ezrec/unwind/memory"
)

func skipSpace(input string) string {
	return strings.TrimLeft(input, " \t\r\n")
}

func isAlnum(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// scanAlnum splits the leading alphanumeric run off input.
func scanAlnum(input string) (ident, rest string) {
	n := 0
	for n < len(input) && isAlnum(input[n]) {
		n++
	}

	return input[:n], input[n:]
}

// scanNumber splits a decimal literal, with optional leading '-', off
// input and parses it at T's width and signedness. A literal that does
// not fit T (a negative literal at an unsigned width, or an out-of-range
// value) is not a number token at all; the caller falls through to the
// other token kinds.
func scanNumber[T memory.Value](input string) (value T, rest string, ok bool) {
	rest = input

	digits := input
	if len(digits) > 0 && digits[0] == '-' {
		digits = digits[1:]
	}

	n := 0
	for n < len(digits) && digits[n] >= '0' && digits[n] <= '9' {
		n++
	}
	if n == 0 {
		return
	}

	token := input[:len(input)-len(digits)+n]
	bits := memory.Width[T]() * 8

	if memory.Signed[T]() {
		parsed, err := strconv.ParseInt(token, 10, bits)
		if err != nil {
			return
		}
		return T(parsed), digits[n:], true
	}

	parsed, err := strconv.ParseUint(token, 10, bits)
	if err != nil {
		return
	}
	return T(parsed), digits[n:], true
}

// scanBase splits one base token off input: a literal, a '$'-prefixed
// variable, or a constant, in that priority order.
func scanBase[T memory.Value](input string) (e Expr[T], rest string, ok bool) {
	rest = input

	if value, tail, isNumber := scanNumber[T](input); isNumber {
		return Value[T]{X: value}, tail, true
	}

	if strings.HasPrefix(input, "$") {
		ident, tail := scanAlnum(input[1:])
		if len(ident) == 0 {
			return
		}
		return Var[T]{Name: Variable(input[:1+len(ident)])}, tail, true
	}

	ident, tail := scanAlnum(input)
	if len(ident) == 0 {
		return
	}

	return Const[T]{Name: Constant(ident)}, tail, true
}

var binOps = map[byte]BinOp{
	'+': OP_ADD,
	'-': OP_SUB,
	'*': OP_MUL,
	'/': OP_DIV,
	'%': OP_MOD,
	'@': OP_ALIGN,
}

// ParseExpressions scans input left to right as a stream of postfix
// tokens, maintaining an operand stack. A base token pushes one operand;
// a binary operator pops the right operand, then the left, and pushes
// the combined node; '^' pops one operand and pushes a dereference.
//
// The scan stops without error at the first byte it cannot classify and
// returns the final stack (zero or more completed expressions) together
// with the unconsumed remainder. Popping an empty stack fails with
// ErrNotEnoughOperands carrying the remaining input at that token.
func ParseExpressions[T memory.Value](input string) (stack []Expr[T], rest string, err error) {
	rest = skipSpace(input)

	for len(rest) > 0 {
		if e, tail, ok := scanBase[T](rest); ok {
			stack = append(stack, e)
			rest = skipSpace(tail)
			continue
		}

		if op, ok := binOps[rest[0]]; ok {
			if len(stack) < 2 {
				err = ErrNotEnoughOperands(rest)
				return
			}
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			stack = append(stack, Op[T]{Left: left, Right: right, Operator: op})
			rest = skipSpace(rest[1:])
			continue
		}

		if rest[0] == '^' {
			if len(stack) < 1 {
				err = ErrNotEnoughOperands(rest)
				return
			}
			stack[len(stack)-1] = Deref[T]{Expr: stack[len(stack)-1]}
			rest = skipSpace(rest[1:])
			continue
		}

		break
	}

	return
}

// ParseAssignment parses "<variable> <postfix-expression> =" off the
// front of input. The expression scan must leave exactly one operand on
// the stack: none is ErrNotEnoughOperands, more than one is
// ErrMalformedAssignment.
func ParseAssignment[T memory.Value](input string) (a Assignment[T], rest string, err error) {
	rest = skipSpace(input)

	if !strings.HasPrefix(rest, "$") {
		err = ErrIllegalVariableName(rest)
		return
	}
	ident, tail := scanAlnum(rest[1:])
	if len(ident) == 0 {
		err = ErrSyntax(rest[1:])
		return
	}
	variable := Variable(rest[:1+len(ident)])

	var stack []Expr[T]
	stack, rest, err = ParseExpressions[T](tail)
	if err != nil {
		return
	}

	if len(stack) > 1 {
		err = ErrMalformedAssignment(rest)
		return
	}
	if len(stack) == 0 {
		err = ErrNotEnoughOperands(rest)
		return
	}

	if !strings.HasPrefix(rest, "=") {
		err = ErrSyntax(rest)
		return
	}

	a = Assignment[T]{Variable: variable, Expr: stack[0]}
	rest = skipSpace(rest[1:])
	return
}

// ParseAssignments parses input as a whitespace-delimited batch of
// assignments. The whole input must be consumed: trailing text that does
// not parse as an assignment fails the batch.
func ParseAssignments[T memory.Value](input string) (assigns []Assignment[T], err error) {
	rest := skipSpace(input)

	for len(rest) > 0 {
		var a Assignment[T]
		a, rest, err = ParseAssignment[T](rest)
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, a)
	}

	return
}
