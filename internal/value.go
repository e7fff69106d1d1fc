package internal

import (
	"math"
	"strconv"
)

// Value is a runtime value, either a Number or a Text.
type Value interface {
	getOperator(op operator) (operatorApply, error)
	truthy() bool
	String() string
}

// Number is a floating point value. Integers are not a separate type.
type Number float64

// Text is a string value.
type Text string

func boolValue(b bool) Number {
	if b {
		return 1
	}
	return 0
}

var numberOperations = map[operator]func(x, y float64) Value{
	opAdd: func(x, y float64) Value { return Number(x + y) },
	opSub: func(x, y float64) Value { return Number(x - y) },
	opMul: func(x, y float64) Value { return Number(x * y) },
	opDiv: func(x, y float64) Value { return Number(x / y) },
	opEq:  func(x, y float64) Value { return boolValue(x == y) },
	opNeq: func(x, y float64) Value { return boolValue(x != y) },
	opLt:  func(x, y float64) Value { return boolValue(x < y) },
	opLte: func(x, y float64) Value { return boolValue(x <= y) },
	opGt:  func(x, y float64) Value { return boolValue(x > y) },
	opGte: func(x, y float64) Value { return boolValue(x >= y) },
}

func (n Number) getOperator(op operator) (operatorApply, error) {
	apply, ok := numberOperations[op]
	if !ok {
		return nil, errUndefinedOp
	}
	return func(right Value) (Value, error) {
		y, ok := right.(Number)
		if !ok {
			return applyMixed(op)
		}
		return apply(float64(n), float64(y)), nil
	}, nil
}

func (n Number) truthy() bool {
	return n != 0
}

// String renders integral values without exponent below 1e21 and falls
// back to exponent notation for very large or very small magnitudes.
func (n Number) String() string {
	f := float64(n)
	format := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	return strconv.FormatFloat(f, format, -1, 64)
}

// Text has no arithmetic. Comparisons are lexicographic on bytes.
var textOperations = map[operator]func(x, y string) Value{
	opEq:  func(x, y string) Value { return boolValue(x == y) },
	opNeq: func(x, y string) Value { return boolValue(x != y) },
	opLt:  func(x, y string) Value { return boolValue(x < y) },
	opLte: func(x, y string) Value { return boolValue(x <= y) },
	opGt:  func(x, y string) Value { return boolValue(x > y) },
	opGte: func(x, y string) Value { return boolValue(x >= y) },
}

func (s Text) getOperator(op operator) (operatorApply, error) {
	apply, ok := textOperations[op]
	if !ok {
		return nil, ErrTypeMismatch
	}
	return func(right Value) (Value, error) {
		y, ok := right.(Text)
		if !ok {
			return applyMixed(op)
		}
		return apply(string(s), string(y)), nil
	}, nil
}

func (s Text) truthy() bool {
	return s != ""
}

func (s Text) String() string {
	return string(s)
}

// Repr renders a value the way it would be written in source: text is quoted.
func Repr(v Value) string {
	if s, ok := v.(Text); ok {
		return strconv.Quote(string(s))
	}
	return v.String()
}
