package internal

import (
	"fmt"
	"strconv"
	"strings"
)

// PrintTree prints every top level statement as an s-expression, one per line
func (s *interpreterState) PrintTree() {
	for _, st := range s.stmts {
		s.printer.Println(st.accept(stringVisitor{}))
	}
}

func treeString(stmts stmtList) string {
	out := make([]string, len(stmts))
	for i, st := range stmts {
		out[i] = st.accept(stringVisitor{}).(string)
	}
	return strings.Join(out, "\n")
}

type stringVisitor struct{}

func (v stringVisitor) block(head string, stmts stmtList) string {
	out := "(" + head
	for _, st := range stmts {
		out += fmt.Sprintf(" %v", st.accept(v))
	}
	return out + ")"
}

func (v stringVisitor) optionalStmt(st stmt) R {
	if st == nil {
		return "_"
	}
	return st.accept(v)
}

func (v stringVisitor) visitAssignStmt(stmt *assignStmt) R {
	return fmt.Sprintf("(set %s %v)", stmt.name.lexeme, stmt.value.accept(v))
}

func (v stringVisitor) visitPrintStmt(stmt *printStmt) R {
	return fmt.Sprintf("(print %v)", stmt.value.accept(v))
}

func (v stringVisitor) visitIfStmt(stmt *ifStmt) R {
	out := fmt.Sprintf("(if %v %s", stmt.condition.accept(v), v.block("then", stmt.thenBranch))
	if stmt.elseBranch != nil {
		out += " " + v.block("else", stmt.elseBranch)
	}
	return out + ")"
}

func (v stringVisitor) visitWhileStmt(stmt *whileStmt) R {
	return fmt.Sprintf("(while %v %s)", stmt.condition.accept(v), v.block("do", stmt.body))
}

func (v stringVisitor) visitForStmt(stmt *forStmt) R {
	var cond R = "_"
	if stmt.condition != nil {
		cond = stmt.condition.accept(v)
	}
	return fmt.Sprintf(
		"(for %v %v %v %s)",
		v.optionalStmt(stmt.initializer),
		cond,
		v.optionalStmt(stmt.increment),
		v.block("do", stmt.body),
	)
}

func (v stringVisitor) visitConstExpr(expr *constExpr) R {
	return Number(expr.value).String()
}

func (v stringVisitor) visitStringExpr(expr *stringExpr) R {
	return strconv.Quote(expr.value)
}

func (v stringVisitor) visitVariableExpr(expr *variableExpr) R {
	return expr.name.lexeme
}

func (v stringVisitor) visitBinaryExpr(expr *binaryExpr) R {
	return fmt.Sprintf("(%s %v %v)", expr.operator.lexeme, expr.left.accept(v), expr.right.accept(v))
}
