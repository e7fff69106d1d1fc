package internal

// parser builds the tree from a token stream using a single token of lookahead
type parser struct {
	tokens tokenStream

	current token
	prev    *token

	state *interpreterState
}

func newParser(state *interpreterState, tokens tokenStream) *parser {
	return &parser{
		tokens: tokens,
		state:  state,
	}
}

// parse reads statements until the end of input. The first error aborts
// parsing and leaves no statements behind.
func (p *parser) parse() (err error) {
	defer func() {
		if r := recover(); r != nil {
			parseErr, ok := r.(*ParseError)
			if !ok {
				panic(r)
			}
			p.state.stmts = nil
			err = parseErr
		}
	}()
	p.current = p.tokens.next()
	for !p.isAtEnd() {
		p.state.stmts.append(p.statement())
	}
	return nil
}

func (p *parser) statement() stmt {
	if p.match(tkPrint) {
		return p.print()
	}
	if p.match(tkIf) {
		return p.ifStmt()
	}
	if p.match(tkWhile) {
		return p.while()
	}
	if p.match(tkFor) {
		return p.forLoop()
	}
	if p.check(tkIdentifier) {
		st := p.assignment()
		p.consume(tkSemicolon)
		return st
	}
	p.fail(tkIdentifier, tkPrint, tkIf, tkWhile, tkFor)
	return nil
}

func (p *parser) assignment() stmt {
	name := p.consume(tkIdentifier)
	p.consume(tkAssign)
	return &assignStmt{
		name:  name,
		value: p.expression(),
	}
}

func (p *parser) print() stmt {
	keyword := p.previous()
	value := p.expression()
	p.consume(tkSemicolon)
	return &printStmt{
		keyword: keyword,
		value:   value,
	}
}

func (p *parser) ifStmt() stmt {
	st := &ifStmt{
		keyword: p.previous(),
	}

	st.condition = p.condition()
	st.thenBranch = p.block()

	if p.match(tkElse) {
		st.elseBranch = p.block()
		if st.elseBranch == nil {
			st.elseBranch = stmtList{}
		}
	}

	return st
}

func (p *parser) while() stmt {
	keyword := p.previous()
	cond := p.condition()
	body := p.block()
	return &whileStmt{
		keyword:   keyword,
		condition: cond,
		body:      body,
	}
}

// forLoop parses the header `( init? ; cond? ; incr? )`. The semicolons
// are part of the header: init and incr are assignments without their own
// terminator.
func (p *parser) forLoop() stmt {
	st := &forStmt{
		keyword: p.previous(),
	}

	p.consume(tkLeftParen)

	if !p.check(tkSemicolon) {
		st.initializer = p.forClause(tkSemicolon)
	}
	p.consume(tkSemicolon)

	if !p.check(tkSemicolon) {
		st.condition = p.expression()
	}
	p.consume(tkSemicolon)

	if !p.check(tkRightParen) {
		st.increment = p.forClause(tkRightParen)
	}
	p.consume(tkRightParen)

	st.body = p.block()

	return st
}

func (p *parser) forClause(closing tokenType) stmt {
	if !p.check(tkIdentifier) {
		p.fail(tkIdentifier, closing)
	}
	return p.assignment()
}

func (p *parser) condition() expr {
	p.consume(tkLeftParen)
	cond := p.expression()
	p.consume(tkRightParen)
	return cond
}

func (p *parser) block() stmtList {
	var stmts stmtList
	p.consume(tkLeftCurlyBrace)
	for !p.check(tkRightCurlyBrace) && !p.isAtEnd() {
		stmts.append(p.statement())
	}
	p.consume(tkRightCurlyBrace)
	return stmts
}

func (p *parser) expression() expr {
	return p.or()
}

func (p *parser) or() expr {
	expr := p.and()
	for p.match(tkOr) {
		operator := p.previous()
		right := p.and()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) and() expr {
	expr := p.comparison()
	for p.match(tkAnd) {
		operator := p.previous()
		right := p.comparison()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

// comparison covers equality and ordering, which share one precedence level
func (p *parser) comparison() expr {
	expr := p.addition()
	for p.match(tkEqualEqual, tkBangEqual, tkGreater, tkGreaterEqual, tkLess, tkLessEqual) {
		operator := p.previous()
		right := p.addition()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) addition() expr {
	expr := p.multiplication()
	for p.match(tkPlus, tkMinus) {
		operator := p.previous()
		right := p.multiplication()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) multiplication() expr {
	expr := p.primary()
	for p.match(tkStar, tkSlash) {
		operator := p.previous()
		right := p.primary()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) primary() expr {
	if p.match(tkNumber) {
		return &constExpr{value: p.previous().literal.(float64)}
	}
	if p.match(tkString) {
		return &stringExpr{value: p.previous().literal.(string)}
	}
	if p.match(tkIdentifier) {
		return &variableExpr{name: p.previous()}
	}
	if p.match(tkLeftParen) {
		expr := p.expression()
		p.consume(tkRightParen)
		return expr
	}

	p.fail(tkNumber, tkString, tkIdentifier, tkLeftParen)
	return nil
}

func (p *parser) fail(expected ...tokenType) {
	found := p.current
	p.state.fatalError(&ParseError{
		Err:      ErrSyntax,
		Expected: expected,
		Found:    &found,
		Line:     found.line,
	})
}

func (p *parser) consume(tk tokenType) *token {
	if p.check(tk) {
		return p.advance()
	}
	p.fail(tk)
	return nil
}

func (p *parser) advance() *token {
	tk := p.current
	if !p.isAtEnd() {
		p.current = p.tokens.next()
	}
	p.prev = &tk
	return p.prev
}

func (p *parser) match(tokens ...tokenType) bool {
	for _, token := range tokens {
		if p.check(token) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) check(token tokenType) bool {
	return p.current.token == token
}

func (p *parser) previous() *token {
	return p.prev
}

func (p *parser) isAtEnd() bool {
	return p.current.token == tkEOF
}
