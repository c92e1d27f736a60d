// Package parse implements the Smython scanner and parser.
//
// The scanner converts source text into a token stream, synthesizing INDENT
// and DEDENT tokens from leading whitespace. The parser is a hand-written
// recursive descent LL(1) over that stream, producing a Suite of statements.
package parse

import (
	"fmt"
	"strconv"
	"strings"

	"src.smy.sh/pkg/diag"
)

// Parse tokenizes and parses the given source. The returned error, if not
// nil, always has type *Error.
func Parse(src Source) (Suite, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &parser{src: tokens[0].Src, tokens: tokens}
	suite, err := p.parseFile()
	if err != nil {
		return nil, err
	}
	return suite, nil
}

// parser maintains the token cursor. It has a single token of lookahead.
type parser struct {
	src    Source
	tokens []Token
	i      int
}

func (p *parser) parseFile() (suite Suite, err error) {
	defer func() {
		if r := recover(); r != nil {
			if perr, ok := r.(*Error); ok {
				suite, err = nil, perr
				return
			}
			panic(r)
		}
	}()
	for p.cur().Kind != EOF {
		if p.cur().Kind == Newline {
			p.i++
			continue
		}
		p.parseStmt(&suite)
	}
	return suite, nil
}

func (p *parser) cur() Token { return p.tokens[p.i] }

func (p *parser) next() Token {
	tok := p.tokens[p.i]
	if tok.Kind != EOF {
		p.i++
	}
	return tok
}

// at consumes the current token and returns true if its lexeme equals v.
// The names of the synthetic kinds only match the synthetic tokens
// themselves, never identifiers spelled the same way.
func (p *parser) at(v string) bool {
	tok := p.cur()
	switch v {
	case "NEWLINE", "INDENT", "DEDENT", "EOF":
		if tok.Kind != Newline && tok.Kind != Indent && tok.Kind != Dedent && tok.Kind != EOF {
			return false
		}
	default:
		if tok.Kind == String {
			return false
		}
	}
	if tok.Is(v) {
		p.next()
		return true
	}
	return false
}

// expect consumes the current token if its lexeme equals v and raises a
// syntax error otherwise.
func (p *parser) expect(v string) {
	if !p.at(v) {
		p.errorExpected(v)
	}
}

func (p *parser) expectName() string {
	if p.cur().IsName() {
		return p.next().Lexeme()
	}
	p.errorExpected("NAME")
	panic("unreachable")
}

func (p *parser) errorExpected(what string) {
	p.failAt(p.cur(), fmt.Sprintf("expected %s but found %s", what, p.cur().Lexeme()))
}

func (p *parser) failAt(tok Token, msg string) {
	panic(newError(msg, p.src, tok.Ranging, tok.Kind == EOF))
}

func (p *parser) failRange(r diag.Ranger, msg string) {
	panic(newError(msg, p.src, r.Range(), false))
}

// ranging returns a Ranging from the given start offset to the end of the
// most recently consumed token.
func (p *parser) ranging(start int) node {
	end := start
	if p.i > 0 {
		end = p.tokens[p.i-1].To
	}
	return node{diag.Ranging{From: start, To: end}}
}

// Statements.

func (p *parser) parseStmt(suite *Suite) {
	switch p.cur().Lexeme() {
	case "if":
		*suite = append(*suite, p.parseIf())
	case "while":
		*suite = append(*suite, p.parseWhile())
	case "for":
		*suite = append(*suite, p.parseFor())
	case "try":
		*suite = append(*suite, p.parseTry())
	case "def":
		*suite = append(*suite, p.parseDef())
	case "class":
		*suite = append(*suite, p.parseClass())
	default:
		p.parseSimple(suite)
	}
}

// parseSimple parses one or more small statements separated by semicolons
// and terminated by NEWLINE. A trailing semicolon is allowed.
func (p *parser) parseSimple(suite *Suite) {
	for {
		*suite = append(*suite, p.parseSmall())
		if !p.at(";") {
			break
		}
		if p.cur().Kind == Newline {
			break
		}
	}
	p.expect("NEWLINE")
}

func (p *parser) parseSmall() Stmt {
	start := p.cur().From
	switch p.cur().Lexeme() {
	case "pass":
		p.next()
		return &PassStmt{p.ranging(start)}
	case "break":
		p.next()
		return &BreakStmt{p.ranging(start)}
	case "continue":
		p.next()
		return &ContinueStmt{p.ranging(start)}
	case "return":
		p.next()
		var value Expr
		if !p.atStmtEnd() {
			value = p.parseTestlist()
		}
		return &ReturnStmt{p.ranging(start), value}
	case "raise":
		p.next()
		var value Expr
		if !p.atStmtEnd() {
			value = p.parseTest()
		}
		return &RaiseStmt{p.ranging(start), value}
	case "assert":
		p.next()
		cond := p.parseTest()
		var msg Expr
		if p.at(",") {
			msg = p.parseTest()
		}
		return &AssertStmt{p.ranging(start), cond, msg}
	case "global":
		p.next()
		names := []string{p.expectName()}
		for p.at(",") {
			names = append(names, p.expectName())
		}
		return &GlobalStmt{p.ranging(start), names}
	case "import":
		p.next()
		items := p.parseImportItems()
		return &ImportStmt{p.ranging(start), items}
	case "from":
		p.next()
		module := p.expectName()
		p.expect("import")
		if p.at("*") {
			return &FromImportStmt{p.ranging(start), module, true, nil}
		}
		items := p.parseImportItems()
		return &FromImportStmt{p.ranging(start), module, false, items}
	}
	return p.parseExprOrAssign()
}

func (p *parser) atStmtEnd() bool {
	return p.cur().Kind == Newline || (p.cur().Kind == Punct && p.cur().Is(";"))
}

func (p *parser) parseImportItems() []ImportItem {
	var items []ImportItem
	for {
		item := ImportItem{Name: p.expectName()}
		if p.at("as") {
			item.As = p.expectName()
		}
		items = append(items, item)
		if !p.at(",") {
			return items
		}
		if p.atStmtEnd() {
			return items
		}
	}
}

var augOps = map[string]bool{
	"+=": true, "-=": true, "*=": true, "/=": true,
	"%=": true, "|=": true, "&=": true,
}

func (p *parser) parseExprOrAssign() Stmt {
	start := p.cur().From
	lhs := p.parseTestlist()
	op := p.cur().Lexeme()
	if p.cur().Kind == Punct && (op == "=" || augOps[op]) {
		p.next()
		rhs := p.parseTestlist()
		p.checkAssignable(lhs, op)
		return &AssignStmt{p.ranging(start), op, lhs, rhs}
	}
	return &ExprStmt{p.ranging(start), lhs}
}

func (p *parser) checkAssignable(e Expr, op string) {
	switch e := e.(type) {
	case *VarExpr, *AttrExpr, *IndexExpr:
		return
	case *TupleExpr:
		if op == "=" {
			for _, item := range e.Items {
				p.checkAssignable(item, op)
			}
			return
		}
		p.failRange(e, "illegal expression for augmented assignment")
	default:
		p.failRange(e, "cannot assign to expression")
	}
}

// parseSuite parses either a single simple-statement line or
// NEWLINE INDENT stmt+ DEDENT.
func (p *parser) parseSuite() Suite {
	var suite Suite
	if p.at("NEWLINE") {
		p.expect("INDENT")
		for {
			p.parseStmt(&suite)
			if p.at("DEDENT") {
				return suite
			}
		}
	}
	p.parseSimple(&suite)
	return suite
}

func (p *parser) parseIf() Stmt {
	start := p.cur().From
	p.next() // if or elif
	cond := p.parseTest()
	p.expect(":")
	then := p.parseSuite()
	var els Suite
	if p.cur().Is("elif") {
		els = Suite{p.parseIf()}
	} else if p.at("else") {
		p.expect(":")
		els = p.parseSuite()
	}
	return &IfStmt{p.ranging(start), cond, then, els}
}

func (p *parser) parseWhile() Stmt {
	start := p.cur().From
	p.next()
	cond := p.parseTest()
	p.expect(":")
	body := p.parseSuite()
	var els Suite
	if p.at("else") {
		p.expect(":")
		els = p.parseSuite()
	}
	return &WhileStmt{p.ranging(start), cond, body, els}
}

func (p *parser) parseFor() Stmt {
	start := p.cur().From
	p.next()
	target := p.parseExprList()
	p.checkAssignable(target, "=")
	p.expect("in")
	iter := p.parseTestlist()
	p.expect(":")
	body := p.parseSuite()
	var els Suite
	if p.at("else") {
		p.expect(":")
		els = p.parseSuite()
	}
	return &ForStmt{p.ranging(start), target, iter, body, els}
}

func (p *parser) parseTry() Stmt {
	start := p.cur().From
	p.next()
	p.expect(":")
	body := p.parseSuite()
	if p.at("finally") {
		p.expect(":")
		fin := p.parseSuite()
		return &TryFinallyStmt{p.ranging(start), body, fin}
	}
	var excepts []*ExceptClause
	for p.cur().Is("except") {
		cstart := p.cur().From
		p.next()
		var test Expr
		name := ""
		if !p.cur().Is(":") {
			test = p.parseTest()
			if p.at("as") {
				name = p.expectName()
			}
		}
		p.expect(":")
		cbody := p.parseSuite()
		excepts = append(excepts, &ExceptClause{p.ranging(cstart), test, name, cbody})
	}
	if excepts == nil {
		p.errorExpected("except")
	}
	var els Suite
	if p.at("else") {
		p.expect(":")
		els = p.parseSuite()
	}
	return &TryExceptStmt{p.ranging(start), body, excepts, els}
}

func (p *parser) parseDef() Stmt {
	start := p.cur().From
	p.next()
	name := p.expectName()
	p.expect("(")
	params, defaults, rest := p.parseParams()
	p.expect(":")
	body := p.parseSuite()
	return &DefStmt{p.ranging(start), name, params, rest, defaults, body}
}

// parseParams parses the parameter list of a def, including the closing
// parenthesis. A parameter written as *NAME collects the remaining arguments
// and must be last.
func (p *parser) parseParams() (params []string, defaults []Expr, rest bool) {
	if p.at(")") {
		return nil, nil, false
	}
	for {
		if p.at("*") {
			params = append(params, p.expectName())
			rest = true
			p.at(",")
			p.expect(")")
			return params, defaults, rest
		}
		params = append(params, p.expectName())
		if p.at("=") {
			defaults = append(defaults, p.parseTest())
		} else if len(defaults) > 0 {
			p.failAt(p.cur(), "non-default argument follows default argument")
		}
		if !p.at(",") {
			p.expect(")")
			return params, defaults, rest
		}
		if p.at(")") {
			return params, defaults, rest
		}
	}
}

func (p *parser) parseClass() Stmt {
	start := p.cur().From
	p.next()
	name := p.expectName()
	var super Expr
	if p.at("(") {
		if !p.at(")") {
			super = p.parseTest()
			p.expect(")")
		}
	}
	p.expect(":")
	body := p.parseSuite()
	return &ClassStmt{p.ranging(start), name, super, body}
}

// Expressions.

// startsTest reports whether a token can begin a test.
func startsTest(tok Token) bool {
	switch tok.Kind {
	case Number, String:
		return true
	case Name:
		return tok.IsName() || tok.Is("True") || tok.Is("False") ||
			tok.Is("None") || tok.Is("not")
	case Punct:
		switch tok.Lexeme() {
		case "(", "[", "{", "+", "-":
			return true
		}
	}
	return false
}

// parseTestlist parses test {',' test} [',']. The result is a TupleExpr when
// at least one comma is present.
func (p *parser) parseTestlist() Expr {
	start := p.cur().From
	first := p.parseTest()
	if !p.at(",") {
		return first
	}
	items := []Expr{first}
	for startsTest(p.cur()) {
		items = append(items, p.parseTest())
		if !p.at(",") {
			break
		}
	}
	return &TupleExpr{p.ranging(start), items}
}

// parseExprList is like parseTestlist but at the expr (bitwise or) level. It
// parses for-loop targets, which cannot contain comparisons.
func (p *parser) parseExprList() Expr {
	start := p.cur().From
	first := p.parseExpr()
	if !p.at(",") {
		return first
	}
	items := []Expr{first}
	for startsTest(p.cur()) {
		items = append(items, p.parseExpr())
		if !p.at(",") {
			break
		}
	}
	return &TupleExpr{p.ranging(start), items}
}

func (p *parser) parseTest() Expr {
	start := p.cur().From
	x := p.parseOr()
	if p.at("if") {
		cond := p.parseOr()
		p.expect("else")
		els := p.parseTest()
		return &CondExpr{p.ranging(start), x, cond, els}
	}
	return x
}

func (p *parser) parseOr() Expr {
	start := p.cur().From
	x := p.parseAnd()
	for p.at("or") {
		y := p.parseAnd()
		x = &OrExpr{p.ranging(start), x, y}
	}
	return x
}

func (p *parser) parseAnd() Expr {
	start := p.cur().From
	x := p.parseNot()
	for p.at("and") {
		y := p.parseNot()
		x = &AndExpr{p.ranging(start), x, y}
	}
	return x
}

func (p *parser) parseNot() Expr {
	start := p.cur().From
	if p.at("not") {
		x := p.parseNot()
		return &NotExpr{p.ranging(start), x}
	}
	return p.parseComparison()
}

func (p *parser) parseComparison() Expr {
	start := p.cur().From
	x := p.parseExpr()
	var ops []string
	var operands []Expr
	for {
		var op string
		switch {
		case p.at("<"):
			op = "<"
		case p.at(">"):
			op = ">"
		case p.at("=="):
			op = "=="
		case p.at(">="):
			op = ">="
		case p.at("<="):
			op = "<="
		case p.at("!="):
			op = "!="
		case p.at("in"):
			op = "in"
		case p.at("not"):
			p.expect("in")
			op = "not in"
		case p.at("is"):
			if p.at("not") {
				op = "is not"
			} else {
				op = "is"
			}
		default:
			if ops == nil {
				return x
			}
			return &CompareExpr{p.ranging(start), x, ops, operands}
		}
		ops = append(ops, op)
		operands = append(operands, p.parseExpr())
	}
}

func (p *parser) parseExpr() Expr {
	start := p.cur().From
	x := p.parseBitAnd()
	for p.at("|") {
		y := p.parseBitAnd()
		x = &BinExpr{p.ranging(start), "|", x, y}
	}
	return x
}

func (p *parser) parseBitAnd() Expr {
	start := p.cur().From
	x := p.parseArith()
	for p.at("&") {
		y := p.parseArith()
		x = &BinExpr{p.ranging(start), "&", x, y}
	}
	return x
}

func (p *parser) parseArith() Expr {
	start := p.cur().From
	x := p.parseTerm()
	for {
		switch {
		case p.at("+"):
			y := p.parseTerm()
			x = &BinExpr{p.ranging(start), "+", x, y}
		case p.at("-"):
			y := p.parseTerm()
			x = &BinExpr{p.ranging(start), "-", x, y}
		default:
			return x
		}
	}
}

func (p *parser) parseTerm() Expr {
	start := p.cur().From
	x := p.parseFactor()
	for {
		switch {
		case p.at("*"):
			y := p.parseFactor()
			x = &BinExpr{p.ranging(start), "*", x, y}
		case p.at("/"):
			y := p.parseFactor()
			x = &BinExpr{p.ranging(start), "/", x, y}
		case p.at("%"):
			y := p.parseFactor()
			x = &BinExpr{p.ranging(start), "%", x, y}
		default:
			return x
		}
	}
}

func (p *parser) parseFactor() Expr {
	start := p.cur().From
	switch {
	case p.at("+"):
		x := p.parseFactor()
		return &UnaryExpr{p.ranging(start), "+", x}
	case p.at("-"):
		x := p.parseFactor()
		return &UnaryExpr{p.ranging(start), "-", x}
	}
	return p.parsePower()
}

// parsePower parses an atom followed by call, subscript and attribute
// trailers.
func (p *parser) parsePower() Expr {
	start := p.cur().From
	x := p.parseAtom()
	for {
		switch {
		case p.at("("):
			args := p.parseArgs()
			x = &CallExpr{p.ranging(start), x, args}
		case p.at("["):
			index := p.parseSubscript()
			p.expect("]")
			x = &IndexExpr{p.ranging(start), x, index}
		case p.at("."):
			name := p.expectName()
			x = &AttrExpr{p.ranging(start), x, name}
		default:
			return x
		}
	}
}

// parseArgs parses the argument list of a call, including the closing
// parenthesis.
func (p *parser) parseArgs() []Expr {
	if p.at(")") {
		return nil
	}
	var args []Expr
	for {
		args = append(args, p.parseTest())
		if !p.at(",") {
			p.expect(")")
			return args
		}
		if p.at(")") {
			return args
		}
	}
}

// parseSubscript parses the inside of a pair of brackets. Any form
// containing a colon is a slice, emitted as a synthetic call to the builtin
// slice with None for omitted parts.
func (p *parser) parseSubscript() Expr {
	start := p.cur().From
	var lo, hi, step Expr
	if !p.cur().Is(":") {
		lo = p.parseTest()
	}
	if !p.at(":") {
		return lo
	}
	if startsTest(p.cur()) {
		hi = p.parseTest()
	}
	if p.at(":") {
		if startsTest(p.cur()) {
			step = p.parseTest()
		}
	}
	rg := p.ranging(start)
	none := func(e Expr) Expr {
		if e == nil {
			return &LitExpr{rg, nil}
		}
		return e
	}
	return &CallExpr{rg, &VarExpr{rg, "slice"}, []Expr{none(lo), none(hi), none(step)}}
}

func (p *parser) parseAtom() Expr {
	tok := p.cur()
	start := tok.From
	switch {
	case tok.Kind == Number:
		p.next()
		return &LitExpr{p.ranging(start), p.numberValue(tok)}
	case tok.Kind == String:
		// Adjacent string literals are concatenated at parse time.
		var b strings.Builder
		for p.cur().Kind == String {
			b.WriteString(p.next().StringVal())
		}
		return &LitExpr{p.ranging(start), b.String()}
	case tok.Is("True"):
		p.next()
		return &LitExpr{p.ranging(start), true}
	case tok.Is("False"):
		p.next()
		return &LitExpr{p.ranging(start), false}
	case tok.Is("None"):
		p.next()
		return &LitExpr{p.ranging(start), nil}
	case tok.IsName():
		p.next()
		return &VarExpr{p.ranging(start), tok.Lexeme()}
	case p.at("("):
		if p.at(")") {
			return &TupleExpr{p.ranging(start), nil}
		}
		x := p.parseTestlist()
		p.expect(")")
		return x
	case p.at("["):
		if p.at("]") {
			return &ListExpr{p.ranging(start), nil}
		}
		items := p.parseTestItems("]")
		return &ListExpr{p.ranging(start), items}
	case p.at("{"):
		return p.parseDictOrSet(start)
	}
	p.failAt(tok, "expected (, [, {, NAME, NUMBER, or STRING but found "+tok.Lexeme())
	panic("unreachable")
}

func (p *parser) numberValue(tok Token) any {
	lex := tok.Lexeme()
	if strings.Contains(lex, ".") {
		f, err := strconv.ParseFloat(lex, 64)
		if err != nil {
			p.failAt(tok, "invalid number literal")
		}
		return f
	}
	n, err := strconv.Atoi(lex)
	if err != nil {
		p.failAt(tok, "number literal out of range")
	}
	return n
}

// parseTestItems parses test {',' test} [','] followed by the closer.
func (p *parser) parseTestItems(closer string) []Expr {
	var items []Expr
	for {
		items = append(items, p.parseTest())
		if !p.at(",") {
			p.expect(closer)
			return items
		}
		if p.at(closer) {
			return items
		}
	}
}

// parseDictOrSet parses the body of a brace display; the two forms are
// distinguished by the presence of a colon after the first element.
func (p *parser) parseDictOrSet(start int) Expr {
	if p.at("}") {
		return &DictExpr{p.ranging(start), nil, nil}
	}
	first := p.parseTest()
	if p.at(":") {
		keys := []Expr{first}
		values := []Expr{p.parseTest()}
		for {
			if !p.at(",") {
				p.expect("}")
				return &DictExpr{p.ranging(start), keys, values}
			}
			if p.at("}") {
				return &DictExpr{p.ranging(start), keys, values}
			}
			keys = append(keys, p.parseTest())
			p.expect(":")
			values = append(values, p.parseTest())
		}
	}
	items := []Expr{first}
	for {
		if !p.at(",") {
			p.expect("}")
			return &SetExpr{p.ranging(start), items}
		}
		if p.at("}") {
			return &SetExpr{p.ranging(start), items}
		}
		items = append(items, p.parseTest())
	}
}
