package internal

import (
	"errors"
	"testing"
)

func parseTree(t *testing.T, source string) stmtList {
	t.Helper()
	state := newInterpreterState("", source, &testPrinter{}, Options{})
	if err := newParser(state, newLexer(state)).parse(); err != nil {
		t.Fatalf("cannot parse %q: %v", source, err)
	}
	return state.stmts
}

func checkTree(t *testing.T, source string, tree string) {
	t.Helper()
	if got := treeString(parseTree(t, source)); got != tree {
		t.Errorf("\nSource:\n----\n%s\n----\nExpected:\n%s\nFound:\n%s", source, tree, got)
	}
}

func TestParserPrecedence(t *testing.T) {
	checkTree(t, "x = a + b * c;", "(set x (+ a (* b c)))")
	checkTree(t, "x = a * b + c;", "(set x (+ (* a b) c))")
	checkTree(t, "x = (a + b) * c;", "(set x (* (+ a b) c))")
	checkTree(t, "x = a || b && c;", "(set x (|| a (&& b c)))")
	checkTree(t, "x = a && b == c;", "(set x (&& a (== b c)))")
	checkTree(t, "x = a == b + c;", "(set x (== a (+ b c)))")
}

func TestParserAssociativity(t *testing.T) {
	checkTree(t, "x = a - b - c;", "(set x (- (- a b) c))")
	checkTree(t, "x = a / b / c;", "(set x (/ (/ a b) c))")
	checkTree(t, "x = a || b || c;", "(set x (|| (|| a b) c))")
	checkTree(t, "x = a == b < c;", "(set x (< (== a b) c))")
	checkTree(t, "x = a != b >= c <= d;", "(set x (<= (>= (!= a b) c) d))")
}

func TestParserStatements(t *testing.T) {
	checkTree(t, `print "hi";`, `(print "hi")`)
	checkTree(t, "print 1.5;", "(print 1.5)")
	checkTree(t, "if (a) { print 1; }", "(if a (then (print 1)))")
	checkTree(t, "if (a) { } else { }", "(if a (then) (else))")
	checkTree(t, "if (a) { b = 1; } else { b = 2; c = 3; }", "(if a (then (set b 1)) (else (set b 2) (set c 3)))")
	checkTree(t, "while (i < 3) { i = i + 1; }", "(while (< i 3) (do (set i (+ i 1))))")
	checkTree(t, "for (i = 0; i < 3; i = i + 1) { print i; }", "(for (set i 0) (< i 3) (set i (+ i 1)) (do (print i)))")
	checkTree(t, "for (;;) {}", "(for _ _ _ (do))")
	checkTree(t, "a = 1; b = 2;\nprint a;", "(set a 1)\n(set b 2)\n(print a)")
	checkTree(t, "", "")
}

func TestParserTreeShape(t *testing.T) {
	stmts := parseTree(t, "x = a - b - c;")
	if len(stmts) != 1 {
		t.Fatalf("expected one statement, got %d", len(stmts))
	}
	assign, ok := stmts[0].(*assignStmt)
	if !ok || assign.name.lexeme != "x" {
		t.Fatalf("expected an assignment to x, got %#v", stmts[0])
	}
	outer, ok := assign.value.(*binaryExpr)
	if !ok || outer.operator.token != tkMinus {
		t.Fatalf("expected a subtraction, got %#v", assign.value)
	}
	if c, ok := outer.right.(*variableExpr); !ok || c.name.lexeme != "c" {
		t.Errorf("right operand should be c, got %#v", outer.right)
	}
	inner, ok := outer.left.(*binaryExpr)
	if !ok || inner.operator.token != tkMinus {
		t.Fatalf("left operand should be a - b, got %#v", outer.left)
	}
}

func TestParserElseBranch(t *testing.T) {
	withoutElse := parseTree(t, "if (a) { }")[0].(*ifStmt)
	if withoutElse.elseBranch != nil {
		t.Error("missing else should leave a nil branch")
	}
	emptyElse := parseTree(t, "if (a) { } else { }")[0].(*ifStmt)
	if emptyElse.elseBranch == nil || len(emptyElse.elseBranch) != 0 {
		t.Error("empty else should be an empty, non-nil branch")
	}
}

func TestParserForClauses(t *testing.T) {
	loop := parseTree(t, "for (; i < 3;) { }")[0].(*forStmt)
	if loop.initializer != nil || loop.increment != nil {
		t.Error("absent clauses should be nil")
	}
	if loop.condition == nil {
		t.Error("condition should be parsed")
	}
}

func TestParserError(t *testing.T) {
	state := newInterpreterState("", "print 1", &testPrinter{}, Options{})
	err := newParser(state, newLexer(state)).parse()
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected a parse error, got %v", err)
	}
	if !errors.Is(err, ErrSyntax) {
		t.Error("grammar errors should wrap ErrSyntax")
	}
	if parseErr.Found.token != tkEOF {
		t.Errorf("expected end of input, found %v", parseErr.Found)
	}
	if state.stmts != nil {
		t.Error("a failed parse should not keep statements")
	}
}

func TestParserLexerError(t *testing.T) {
	state := newInterpreterState("", `x = "open`, &testPrinter{}, Options{})
	err := newParser(state, newLexer(state)).parse()
	if !errors.Is(err, errUnclosedString) {
		t.Errorf("expected an unclosed string error, got %v", err)
	}
	if errors.Is(err, ErrSyntax) {
		t.Error("lexer errors are not grammar errors")
	}
}
