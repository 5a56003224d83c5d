// Package eval parses and evaluates Breakpad-style postfix (RPN)
// expressions describing call-frame unwinding rules.
//
// An unwinding rule is a batch of assignments such as
//
//	$ebp $ebp ^ = $eip $ebp 4 + ^ =
//
// Expressions combine integer literals, named constants, variables
// (names starting with '$'), the binary operators + - * / % @, and the
// dereference suffix ^, evaluated left to right with an operand stack.
// An Evaluator applies parsed rules against caller-supplied constant
// bindings and an optional memory region, producing caller register
// values for the next frame.
package eval
