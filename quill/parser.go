package quill

import "strconv"

// parser is a recursive-descent parser with a two-token lookahead, mirroring
// the reference codebase's curToken/peekToken parser shape. Unlike that
// parser's prefix/infix function-map dispatch, this grammar is small and
// fixed-precedence enough to parse with one function per precedence level.
type parser struct {
	l   *lexer
	err error

	curToken  Token
	peekToken Token

	classes map[string]*Class
}

func newParser(source string) (*parser, error) {
	p := &parser{l: newLexer(source), classes: make(map[string]*Class)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *parser) advance() error {
	p.curToken = p.peekToken
	tok, err := p.l.NextToken()
	if err != nil {
		return err
	}
	p.peekToken = tok
	return nil
}

func (p *parser) parseErrorf(format string, args ...any) error {
	return newRuntimeError(ErrParse, p.curToken.Pos, format, args...)
}

func (p *parser) expect(t TokenType, what string) error {
	if p.curToken.Type != t {
		return p.parseErrorf("expected %s, got %q", what, p.curToken.Literal)
	}
	return nil
}

// ParseProgram parses source into a single top-level Statement (a Compound
// of the program's statements).
func ParseProgram(source string) (Statement, error) {
	p, err := newParser(source)
	if err != nil {
		return nil, err
	}
	return p.parseProgram()
}

func (p *parser) parseProgram() (Statement, error) {
	var stmts []Statement
	for p.curToken.Type != tokenEOF {
		if p.curToken.Type == tokenNewline {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return &Compound{Statements: stmts}, nil
}

func (p *parser) parseStatement() (Statement, error) {
	switch p.curToken.Type {
	case tokenClass:
		return p.parseClassDef()
	case tokenIf:
		return p.parseIfStmt()
	case tokenReturn:
		return p.parseReturnStmt()
	case tokenPrint:
		return p.parsePrintStmt()
	default:
		return p.parseSimpleStatement()
	}
}

// parseSuite parses the body of a colon-introduced block: either an indented
// block of statements, or a single statement written on the same line.
func (p *parser) parseSuite() (Statement, error) {
	if p.curToken.Type == tokenNewline {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expect(tokenIndent, "an indented block"); err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		var stmts []Statement
		for p.curToken.Type != tokenDedent && p.curToken.Type != tokenEOF {
			stmt, err := p.parseStatement()
			if err != nil {
				return nil, err
			}
			stmts = append(stmts, stmt)
		}
		if err := p.expect(tokenDedent, "a dedent closing the block"); err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Compound{Statements: stmts}, nil
	}
	return p.parseStatement()
}

func (p *parser) atStatementEnd() bool {
	switch p.curToken.Type {
	case tokenNewline, tokenEOF, tokenDedent:
		return true
	default:
		return false
	}
}

func (p *parser) consumeStatementEnd() error {
	if p.curToken.Type == tokenNewline {
		return p.advance()
	}
	if p.curToken.Type == tokenEOF || p.curToken.Type == tokenDedent {
		return nil
	}
	return p.parseErrorf("expected end of statement, got %q", p.curToken.Literal)
}

func (p *parser) parseClassDef() (Statement, error) {
	pos := p.curToken.Pos
	if err := p.advance(); err != nil { // consume 'class'
		return nil, err
	}
	if err := p.expect(tokenIdent, "a class name"); err != nil {
		return nil, err
	}
	name := p.curToken.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}

	var parent *Class
	if p.curToken.Type == tokenLParen {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expect(tokenIdent, "a parent class name"); err != nil {
			return nil, err
		}
		parentName := p.curToken.Literal
		cls, ok := p.classes[parentName]
		if !ok {
			return nil, p.parseErrorf("unknown parent class %q (must be defined earlier)", parentName)
		}
		parent = cls
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expect(tokenRParen, ")"); err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	if err := p.expect(tokenColon, ":"); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	// Register the class before parsing its body so a method may
	// instantiate its own class (e.g. a V.__add__ that builds another V).
	class := NewClass(name, parent, nil)
	p.classes[name] = class

	methods, err := p.parseMethodSuite()
	if err != nil {
		return nil, err
	}
	class.addMethods(methods)

	return &ClassDefinition{baseNode: baseNode{pos: pos}, Class: class}, nil
}

func (p *parser) parseMethodSuite() ([]*Method, error) {
	if err := p.expect(tokenNewline, "a newline before the class body"); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(tokenIndent, "an indented class body"); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	var methods []*Method
	for p.curToken.Type != tokenDedent && p.curToken.Type != tokenEOF {
		m, err := p.parseMethodDef()
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	if err := p.expect(tokenDedent, "a dedent closing the class body"); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return methods, nil
}

func (p *parser) parseMethodDef() (*Method, error) {
	if err := p.expect(tokenDef, "a method definition"); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(tokenIdent, "a method name"); err != nil {
		return nil, err
	}
	name := p.curToken.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(tokenLParen, "("); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(tokenSelf, "self as the first parameter"); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	var params []string
	for p.curToken.Type == tokenComma {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expect(tokenIdent, "a parameter name"); err != nil {
			return nil, err
		}
		params = append(params, p.curToken.Literal)
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if err := p.expect(tokenRParen, ")"); err != nil {
		return nil, err
	}
	bodyPos := p.curToken.Pos
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(tokenColon, ":"); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	body, err := p.parseSuite()
	if err != nil {
		return nil, err
	}
	return &Method{Name: name, Params: params, Body: &MethodBody{baseNode: baseNode{pos: bodyPos}, Body: body}}, nil
}

func (p *parser) parseIfStmt() (Statement, error) {
	pos := p.curToken.Pos
	if err := p.advance(); err != nil { // consume 'if'
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(tokenColon, ":"); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	thenBranch, err := p.parseSuite()
	if err != nil {
		return nil, err
	}
	var elseBranch Statement
	if p.curToken.Type == tokenElse {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expect(tokenColon, ":"); err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		elseBranch, err = p.parseSuite()
		if err != nil {
			return nil, err
		}
	}
	return &IfElse{baseNode: baseNode{pos: pos}, Cond: cond, Then: thenBranch, Else: elseBranch}, nil
}

func (p *parser) parseReturnStmt() (Statement, error) {
	pos := p.curToken.Pos
	if err := p.advance(); err != nil { // consume 'return'
		return nil, err
	}
	var expr Statement
	if !p.atStatementEnd() {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		expr = e
	}
	if err := p.consumeStatementEnd(); err != nil {
		return nil, err
	}
	return &Return{baseNode: baseNode{pos: pos}, Expr: expr}, nil
}

func (p *parser) parsePrintStmt() (Statement, error) {
	pos := p.curToken.Pos
	if err := p.advance(); err != nil { // consume 'print'
		return nil, err
	}
	var args []Statement
	if !p.atStatementEnd() {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		for p.curToken.Type == tokenComma {
			if err := p.advance(); err != nil {
				return nil, err
			}
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
	}
	if err := p.consumeStatementEnd(); err != nil {
		return nil, err
	}
	return &Print{baseNode: baseNode{pos: pos}, Args: args}, nil
}

func (p *parser) parseSimpleStatement() (Statement, error) {
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.curToken.Type == tokenAssign {
		pos := p.curToken.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.consumeStatementEnd(); err != nil {
			return nil, err
		}
		vv, ok := expr.(*VariableValue)
		if !ok {
			return nil, &RuntimeError{Kind: ErrParse, Message: "invalid assignment target", Pos: pos}
		}
		if len(vv.Attrs) == 0 {
			return &Assignment{baseNode: baseNode{pos: pos}, Name: vv.Name, RHS: rhs}, nil
		}
		object := &VariableValue{baseNode: vv.baseNode, Name: vv.Name, Attrs: vv.Attrs[:len(vv.Attrs)-1]}
		field := vv.Attrs[len(vv.Attrs)-1]
		return &FieldAssignment{baseNode: baseNode{pos: pos}, Object: object, Field: field, RHS: rhs}, nil
	}
	if err := p.consumeStatementEnd(); err != nil {
		return nil, err
	}
	return expr, nil
}

// Expression grammar, precedence low to high:
//   or < and < not < equality < relational < additive < multiplicative < postfix < primary

func (p *parser) parseExpr() (Statement, error) { return p.parseOr() }

func (p *parser) parseOr() (Statement, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.curToken.Type == tokenOr {
		pos := p.curToken.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &Or{BinaryOp{baseNode{pos}, left, right}}
	}
	return left, nil
}

func (p *parser) parseAnd() (Statement, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.curToken.Type == tokenAnd {
		pos := p.curToken.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = &And{BinaryOp{baseNode{pos}, left, right}}
	}
	return left, nil
}

func (p *parser) parseNot() (Statement, error) {
	if p.curToken.Type == tokenNot {
		pos := p.curToken.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		arg, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &Not{baseNode: baseNode{pos: pos}, Arg: arg}, nil
	}
	return p.parseEquality()
}

func (p *parser) parseEquality() (Statement, error) {
	left, err := p.parseRelational()
	if err != nil {
		return nil, err
	}
	for p.curToken.Type == tokenEQ || p.curToken.Type == tokenNotEQ {
		op := CompareEQ
		if p.curToken.Type == tokenNotEQ {
			op = CompareNEQ
		}
		pos := p.curToken.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseRelational()
		if err != nil {
			return nil, err
		}
		left = &Comparison{BinaryOp{baseNode{pos}, left, right}, op}
	}
	return left, nil
}

func (p *parser) parseRelational() (Statement, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		var op CompareOp
		switch p.curToken.Type {
		case tokenLT:
			op = CompareLT
		case tokenLTE:
			op = CompareLTE
		case tokenGT:
			op = CompareGT
		case tokenGTE:
			op = CompareGTE
		default:
			return left, nil
		}
		pos := p.curToken.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &Comparison{BinaryOp{baseNode{pos}, left, right}, op}
	}
}

func (p *parser) parseAdditive() (Statement, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.curToken.Type == tokenPlus || p.curToken.Type == tokenMinus {
		isPlus := p.curToken.Type == tokenPlus
		pos := p.curToken.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		if isPlus {
			left = &Add{BinaryOp{baseNode{pos}, left, right}}
		} else {
			left = &Sub{BinaryOp{baseNode{pos}, left, right}}
		}
	}
	return left, nil
}

func (p *parser) parseMultiplicative() (Statement, error) {
	left, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	for p.curToken.Type == tokenStar || p.curToken.Type == tokenSlash {
		isMul := p.curToken.Type == tokenStar
		pos := p.curToken.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parsePostfix()
		if err != nil {
			return nil, err
		}
		if isMul {
			left = &Mult{BinaryOp{baseNode{pos}, left, right}}
		} else {
			left = &Div{BinaryOp{baseNode{pos}, left, right}}
		}
	}
	return left, nil
}

func (p *parser) parsePostfix() (Statement, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.curToken.Type == tokenDot {
		pos := p.curToken.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expect(tokenIdent, "a member name"); err != nil {
			return nil, err
		}
		name := p.curToken.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.curToken.Type == tokenLParen {
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			expr = &MethodCall{baseNode: baseNode{pos: pos}, Object: expr, MethodName: name, Args: args}
			continue
		}
		vv, ok := expr.(*VariableValue)
		if !ok {
			return nil, &RuntimeError{Kind: ErrParse, Message: "field access is only supported on a variable reference", Pos: pos}
		}
		vv.Attrs = append(vv.Attrs, name)
	}
	return expr, nil
}

func (p *parser) parseArgs() ([]Statement, error) {
	if err := p.expect(tokenLParen, "("); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	var args []Statement
	if p.curToken.Type != tokenRParen {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		for p.curToken.Type == tokenComma {
			if err := p.advance(); err != nil {
				return nil, err
			}
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
	}
	if err := p.expect(tokenRParen, ")"); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *parser) parsePrimary() (Statement, error) {
	tok := p.curToken
	switch tok.Type {
	case tokenInt:
		if err := p.advance(); err != nil {
			return nil, err
		}
		n, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			return nil, &RuntimeError{Kind: ErrParse, Message: "invalid integer literal " + tok.Literal, Pos: tok.Pos}
		}
		return &NumericConst{baseNode: baseNode{pos: tok.Pos}, Value: n}, nil
	case tokenString:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &StringConst{baseNode: baseNode{pos: tok.Pos}, Value: tok.Literal}, nil
	case tokenTrue:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &BoolConst{baseNode: baseNode{pos: tok.Pos}, Value: true}, nil
	case tokenFalse:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &BoolConst{baseNode: baseNode{pos: tok.Pos}, Value: false}, nil
	case tokenNone:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &NoneLiteral{baseNode: baseNode{pos: tok.Pos}}, nil
	case tokenSelf:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &VariableValue{baseNode: baseNode{pos: tok.Pos}, Name: "self"}, nil
	case tokenStr:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expect(tokenLParen, "("); err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokenRParen, ")"); err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Stringify{baseNode: baseNode{pos: tok.Pos}, Arg: arg}, nil
	case tokenLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokenRParen, ")"); err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return expr, nil
	case tokenIdent:
		name := tok.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.curToken.Type == tokenLParen {
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			class, ok := p.classes[name]
			if !ok {
				return nil, p.parseErrorf("unknown class %q (must be defined earlier)", name)
			}
			return &NewInstance{baseNode: baseNode{pos: tok.Pos}, ClassName: name, Class: class, Args: args}, nil
		}
		return &VariableValue{baseNode: baseNode{pos: tok.Pos}, Name: name}, nil
	default:
		return nil, p.parseErrorf("unexpected token %q", tok.Literal)
	}
}
