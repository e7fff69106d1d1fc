package internal

import "github.com/sirupsen/logrus"

type exec struct {
	state *interpreterState

	env *Env
}

func newExec(state *interpreterState, env *Env) *exec {
	env.state = state
	return &exec{
		state: state,
		env:   env,
	}
}

func (e *exec) interpret() error {
	return e.execute(e.state.stmts)
}

// execute runs stmts in order. A runtime error stops the run; whatever was
// printed before stays printed.
func (e *exec) execute(stmts stmtList) (err error) {
	defer e.recoverRuntimeErr(&err)
	e.executeBlock(stmts)
	return nil
}

// evaluate computes the value of a single expression.
func (e *exec) evaluate(ex expr) (value Value, err error) {
	defer e.recoverRuntimeErr(&err)
	return e.value(ex), nil
}

func (e *exec) recoverRuntimeErr(err *error) {
	if r := recover(); r != nil {
		runErr, ok := r.(*RuntimeError)
		if !ok {
			panic(r)
		}
		*err = runErr
	}
}

func (e *exec) executeBlock(stmts stmtList) {
	for _, s := range stmts {
		e.executeOne(s)
	}
}

func (e *exec) executeOne(s stmt) {
	if e.state.trace {
		kind, tk := describeStmt(s)
		e.state.logger.WithFields(logrus.Fields{
			"stmt": kind,
			"line": tk.line,
		}).Trace("exec")
	}
	s.accept(e)
}

func describeStmt(s stmt) (string, *token) {
	switch st := s.(type) {
	case *assignStmt:
		return "assign", st.name
	case *printStmt:
		return "print", st.keyword
	case *ifStmt:
		return "if", st.keyword
	case *whileStmt:
		return "while", st.keyword
	case *forStmt:
		return "for", st.keyword
	}
	return "unknown", &token{}
}

func (e *exec) value(ex expr) Value {
	return ex.accept(e).(Value)
}

func (e *exec) visitAssignStmt(stmt *assignStmt) R {
	e.env.define(stmt.name.lexeme, e.value(stmt.value))
	return nil
}

func (e *exec) visitPrintStmt(stmt *printStmt) R {
	e.state.printer.Println(e.value(stmt.value).String())
	return nil
}

func (e *exec) visitIfStmt(stmt *ifStmt) R {
	if e.truthy(stmt.condition) {
		e.executeBlock(stmt.thenBranch)
	} else if stmt.elseBranch != nil {
		e.executeBlock(stmt.elseBranch)
	}
	return nil
}

func (e *exec) visitWhileStmt(stmt *whileStmt) R {
	for i := 0; e.truthy(stmt.condition); i++ {
		e.traceIteration(stmt.keyword, i)
		e.executeBlock(stmt.body)
	}
	return nil
}

func (e *exec) visitForStmt(stmt *forStmt) R {
	if stmt.initializer != nil {
		e.executeOne(stmt.initializer)
	}
	for i := 0; stmt.condition == nil || e.truthy(stmt.condition); i++ {
		e.traceIteration(stmt.keyword, i)
		e.executeBlock(stmt.body)
		if stmt.increment != nil {
			e.executeOne(stmt.increment)
		}
	}
	return nil
}

func (e *exec) traceIteration(keyword *token, i int) {
	if !e.state.trace {
		return
	}
	e.state.logger.WithFields(logrus.Fields{
		"loop":      keyword.lexeme,
		"line":      keyword.line,
		"iteration": i,
	}).Trace("loop")
}

func (e *exec) visitConstExpr(expr *constExpr) R {
	return Number(expr.value)
}

func (e *exec) visitStringExpr(expr *stringExpr) R {
	return Text(expr.value)
}

func (e *exec) visitVariableExpr(expr *variableExpr) R {
	return e.env.get(expr.name)
}

func (e *exec) visitBinaryExpr(expr *binaryExpr) R {
	switch expr.operator.token {
	case tkAnd:
		if !e.truthy(expr.left) {
			return boolValue(false)
		}
		return boolValue(e.truthy(expr.right))
	case tkOr:
		if e.truthy(expr.left) {
			return boolValue(true)
		}
		return boolValue(e.truthy(expr.right))
	}

	left := e.value(expr.left)
	right := e.value(expr.right)

	op, ok := tokenOperators[expr.operator.token]
	if !ok {
		e.state.runtimeErr(errUndefinedOp, expr.operator)
	}
	apply, err := left.getOperator(op)
	if err != nil {
		e.state.runtimeErr(err, expr.operator)
	}
	result, err := apply(right)
	if err != nil {
		e.state.runtimeErr(err, expr.operator)
	}
	return result
}

func (e *exec) truthy(ex expr) bool {
	return e.value(ex).truthy()
}
