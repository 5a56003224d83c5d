package eval

import (
	"fmt"

	"github.com/ezrec/unwind/memory"
)

// Variable names a mutable binding in an unwinding rule. The stored name
// includes the leading '$' so that rendering round-trips.
type Variable string

func (v Variable) String() string {
	return string(v)
}

// Constant names a read-only binding supplied by the caller, such as a
// platform register-size constant.
type Constant string

func (c Constant) String() string {
	return string(c)
}

// BinOp is a binary operator of the postfix expression language.
type BinOp int

const (
	OP_ADD   BinOp = iota // +
	OP_SUB                // -
	OP_MUL                // *
	OP_DIV                // / (truncating)
	OP_MOD                // %
	OP_ALIGN              // @ (truncate left down to a multiple of right)
)

func (op BinOp) String() string {
	switch op {
	case OP_ADD:
		return "+"
	case OP_SUB:
		return "-"
	case OP_MUL:
		return "*"
	case OP_DIV:
		return "/"
	case OP_MOD:
		return "%"
	case OP_ALIGN:
		return "@"
	}

	return "?"
}

// Expr is one node of a parsed postfix expression tree. Subtrees are
// exclusively owned by their parent node; trees are immutable once the
// parser produces them. String() renders the canonical postfix text,
// which is exactly what the parser accepts.
type Expr[T memory.Value] interface {
	fmt.Stringer
	expr()
}

// Value is a literal.
type Value[T memory.Value] struct {
	X T
}

// Const references a named constant.
type Const[T memory.Value] struct {
	Name Constant
}

// Var references a named variable.
type Var[T memory.Value] struct {
	Name Variable
}

// Op combines two subexpressions with a binary operator.
type Op[T memory.Value] struct {
	Left, Right Expr[T]
	Operator    BinOp
}

// Deref evaluates its subexpression to an address and loads the value
// stored there.
type Deref[T memory.Value] struct {
	Expr Expr[T]
}

func (Value[T]) expr() {}
func (Const[T]) expr() {}
func (Var[T]) expr()   {}
func (Op[T]) expr()    {}
func (Deref[T]) expr() {}

func (e Value[T]) String() string {
	return fmt.Sprintf("%d", e.X)
}

func (e Const[T]) String() string {
	return e.Name.String()
}

func (e Var[T]) String() string {
	return e.Name.String()
}

func (e Op[T]) String() string {
	return fmt.Sprintf("%v %v %v", e.Left, e.Right, e.Operator)
}

func (e Deref[T]) String() string {
	return fmt.Sprintf("%v ^", e.Expr)
}

// Assignment pairs a variable with the expression that produces its
// value, written "$var expr =".
type Assignment[T memory.Value] struct {
	Variable Variable
	Expr     Expr[T]
}

func (a Assignment[T]) String() string {
	return fmt.Sprintf("%v %v =", a.Variable, a.Expr)
}
