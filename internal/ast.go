package internal

//go:generate sh -c "go run ../cmd/astgen Expr > expr.go"
//go:generate sh -c "go run ../cmd/astgen Stmt > stmt.go"

// R generic type
type R interface{}

// stmtList is an ordered sequence of statements, in execution order.
// A nil list and an empty list both execute nothing.
type stmtList []stmt

func (l *stmtList) append(s stmt) {
	*l = append(*l, s)
}
