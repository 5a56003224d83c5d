package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinOpString(t *testing.T) {
	assert := assert.New(t)

	table := map[BinOp]string{
		OP_ADD:   "+",
		OP_SUB:   "-",
		OP_MUL:   "*",
		OP_DIV:   "/",
		OP_MOD:   "%",
		OP_ALIGN: "@",
	}

	for op, text := range table {
		assert.Equal(text, op.String())
	}
}

func TestExprString(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		expr Expr[int32]
		text string
	}){
		{"value", Value[int32]{X: 42}, "42"},
		{"negative", Value[int32]{X: -3}, "-3"},
		{"const", Const[int32]{Name: "baz"}, "baz"},
		{"var", Var[int32]{Name: "$foo"}, "$foo"},
		{
			"op",
			Op[int32]{
				Left:     Value[int32]{X: 1},
				Right:    Value[int32]{X: 2},
				Operator: OP_ADD,
			},
			"1 2 +",
		},
		{
			"nested",
			Op[int32]{
				Left: Op[int32]{
					Left:     Value[int32]{X: 1},
					Right:    Value[int32]{X: 2},
					Operator: OP_ADD,
				},
				Right:    Value[int32]{X: -3},
				Operator: OP_MUL,
			},
			"1 2 + -3 *",
		},
		{
			"deref",
			Deref[int32]{Expr: Var[int32]{Name: "$esp"}},
			"$esp ^",
		},
	}

	for _, entry := range table {
		assert.Equal(entry.text, entry.expr.String(), entry.name)
	}
}

func TestAssignmentString(t *testing.T) {
	assert := assert.New(t)

	a := Assignment[int32]{
		Variable: "$foo",
		Expr: Op[int32]{
			Left:     Deref[int32]{Expr: Value[int32]{X: -4}},
			Right:    Value[int32]{X: 7},
			Operator: OP_ALIGN,
		},
	}

	assert.Equal("$foo -4 ^ 7 @ =", a.String())
}

// Rendering an expression and parsing it back must reproduce the tree.
func TestExprRoundTrip(t *testing.T) {
	assert := assert.New(t)

	table := []Expr[int64]{
		Value[int64]{X: 0},
		Value[int64]{X: -128},
		Const[int64]{Name: "cfa"},
		Var[int64]{Name: "$rbp"},
		Op[int64]{
			Left:     Var[int64]{Name: "$rsp"},
			Right:    Value[int64]{X: 8},
			Operator: OP_ADD,
		},
		Op[int64]{
			Left: Op[int64]{
				Left:     Value[int64]{X: 1},
				Right:    Value[int64]{X: 2},
				Operator: OP_ADD,
			},
			Right:    Value[int64]{X: -3},
			Operator: OP_MUL,
		},
		Deref[int64]{
			Expr: Op[int64]{
				Left:     Var[int64]{Name: "$ebp"},
				Right:    Const[int64]{Name: "wordsize"},
				Operator: OP_ALIGN,
			},
		},
		Op[int64]{
			Left:     Deref[int64]{Expr: Deref[int64]{Expr: Value[int64]{X: 4096}}},
			Right:    Value[int64]{X: 16},
			Operator: OP_MOD,
		},
	}

	for _, expr := range table {
		stack, rest, err := ParseExpressions[int64](expr.String())
		assert.NoError(err, expr.String())
		assert.Equal("", rest, expr.String())
		if assert.Len(stack, 1, expr.String()) {
			assert.Equal(expr, stack[0], expr.String())
		}
	}
}
