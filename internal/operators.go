package internal

type operator string

const (
	opAdd operator = "add"
	opSub operator = "sub"
	opDiv operator = "div"
	opMul operator = "mul"
	opEq  operator = "eq"
	opNeq operator = "neq"
	opLt  operator = "lt"
	opLte operator = "lte"
	opGt  operator = "gt"
	opGte operator = "gte"
)

var tokenOperators = map[tokenType]operator{
	tkPlus:         opAdd,
	tkMinus:        opSub,
	tkSlash:        opDiv,
	tkStar:         opMul,
	tkEqualEqual:   opEq,
	tkBangEqual:    opNeq,
	tkLess:         opLt,
	tkLessEqual:    opLte,
	tkGreater:      opGt,
	tkGreaterEqual: opGte,
}

type operatorApply func(right Value) (Value, error)

// applyMixed handles operands of different kinds: they are never equal
// and cannot be combined in any other way.
func applyMixed(op operator) (Value, error) {
	switch op {
	case opEq:
		return boolValue(false), nil
	case opNeq:
		return boolValue(true), nil
	}
	return nil, ErrTypeMismatch
}
