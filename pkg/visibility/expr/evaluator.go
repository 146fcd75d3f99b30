package expr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jateonwr/dem-survey/pkg/visibility"
)

// Program is a compiled predicate in a small, dependency-free rule language.
//
// Supported forms:
//   - truthiness: `checked`
//   - comparisons: `value == "other"`, `value != ""`, `checked == true`
//   - membership: `value in ("lidar_sub1m", "other")`
//   - composition: `a && b`, `a || b`, `!a`, parentheses
//
// Identifiers resolve against visibility.Context.Values, and against
// visibility.Context.Extras via the `extras.` prefix with dot paths, e.g.
// `extras.coverageCountry.checked`. A Program is immutable and safe to share
// between items.
type Program struct {
	source string
	root   exprNode
	refs   []string
}

// Compile parses rule once so repeated evaluation skips tokenizing.
func Compile(rule string) (*Program, error) {
	trimmed := strings.TrimSpace(rule)
	prog := &Program{source: trimmed}
	if trimmed == "" {
		return prog, nil
	}
	tokens, err := tokenize(trimmed)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return prog, nil
	}
	root, err := parseExpression(tokens)
	if err != nil {
		return nil, err
	}
	prog.root = root
	prog.refs = extraRefs(tokens)
	return prog, nil
}

// ExtraRefs returns the distinct first path segments of every `extras.`
// identifier, in order of appearance.
func (p *Program) ExtraRefs() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.refs...)
}

func extraRefs(tokens []token) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, tok := range tokens {
		if tok.kind != tokenIdentifier || !strings.HasPrefix(strings.ToLower(tok.raw), extrasPrefix) {
			continue
		}
		name, _, _ := strings.Cut(tok.raw[len(extrasPrefix):], ".")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// MustCompile is Compile for static rule tables; it panics on syntax errors.
func MustCompile(rule string) *Program {
	prog, err := Compile(rule)
	if err != nil {
		panic(err)
	}
	return prog
}

// String returns the rule source.
func (p *Program) String() string {
	if p == nil {
		return ""
	}
	return p.source
}

// Eval evaluates the compiled rule.
func (p *Program) Eval(ctx visibility.Context) (bool, error) {
	if p == nil || p.root == nil {
		return true, nil
	}
	return p.root.eval(ctx)
}

type tokenKind int

const (
	tokenIdentifier tokenKind = iota
	tokenString
	tokenNumber
	tokenBool
	tokenNull
	tokenEq
	tokenNeq
	tokenAnd
	tokenOr
	tokenNot
	tokenIn
	tokenComma
	tokenLParen
	tokenRParen
)

type token struct {
	kind tokenKind
	raw  string
}

func isDelimiter(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '(', ')', '!', '=', '&', '|', ',':
		return true
	}
	return false
}

func tokenize(input string) ([]token, error) {
	var tokens []token
	i := 0

	peek := func(offset int) byte {
		if i+offset >= len(input) {
			return 0
		}
		return input[i+offset]
	}

	for i < len(input) {
		ch := input[i]
		switch ch {
		case ' ', '\t', '\n', '\r':
			i++
		case '(':
			i++
			tokens = append(tokens, token{kind: tokenLParen, raw: "("})
		case ')':
			i++
			tokens = append(tokens, token{kind: tokenRParen, raw: ")"})
		case ',':
			i++
			tokens = append(tokens, token{kind: tokenComma, raw: ","})
		case '!':
			if peek(1) == '=' {
				i += 2
				tokens = append(tokens, token{kind: tokenNeq, raw: "!="})
				continue
			}
			i++
			tokens = append(tokens, token{kind: tokenNot, raw: "!"})
		case '=':
			if peek(1) != '=' {
				return nil, errors.New("expr: unexpected '='; use '=='")
			}
			i += 2
			tokens = append(tokens, token{kind: tokenEq, raw: "=="})
		case '&':
			if peek(1) != '&' {
				return nil, errors.New("expr: unexpected '&'; use '&&'")
			}
			i += 2
			tokens = append(tokens, token{kind: tokenAnd, raw: "&&"})
		case '|':
			if peek(1) != '|' {
				return nil, errors.New("expr: unexpected '|'; use '||'")
			}
			i += 2
			tokens = append(tokens, token{kind: tokenOr, raw: "||"})
		case '"', '\'':
			value, next, err := readString(input, i)
			if err != nil {
				return nil, err
			}
			i = next
			tokens = append(tokens, token{kind: tokenString, raw: value})
		default:
			start := i
			for i < len(input) && !isDelimiter(input[i]) {
				i++
			}
			tokens = append(tokens, classifyWord(input[start:i]))
		}
	}

	return tokens, nil
}

func readString(input string, start int) (string, int, error) {
	quote := input[start]
	escaped := false
	for i := start + 1; i < len(input); i++ {
		c := input[i]
		if escaped {
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		if c != quote {
			continue
		}
		body := input[start+1 : i]
		if quote == '\'' {
			// strconv.Unquote only accepts single runes between single quotes.
			body = strings.ReplaceAll(body, `\'`, `'`)
			body = strings.ReplaceAll(body, `"`, `\"`)
		}
		value, err := strconv.Unquote(`"` + body + `"`)
		if err != nil {
			return "", 0, fmt.Errorf("expr: invalid string literal: %w", err)
		}
		return value, i + 1, nil
	}
	return "", 0, errors.New("expr: unterminated string literal")
}

func classifyWord(raw string) token {
	switch strings.ToLower(raw) {
	case "true", "false":
		return token{kind: tokenBool, raw: strings.ToLower(raw)}
	case "null", "nil":
		return token{kind: tokenNull, raw: "null"}
	case "in":
		return token{kind: tokenIn, raw: "in"}
	}
	if looksLikeNumber(raw) {
		return token{kind: tokenNumber, raw: raw}
	}
	return token{kind: tokenIdentifier, raw: raw}
}

func looksLikeNumber(raw string) bool {
	if raw == "" {
		return false
	}
	ch := raw[0]
	return (ch >= '0' && ch <= '9') || ch == '-' || ch == '+'
}

type exprNode interface {
	eval(ctx visibility.Context) (bool, error)
}

type exprOr struct {
	left  exprNode
	right exprNode
}

func (n exprOr) eval(ctx visibility.Context) (bool, error) {
	ok, err := n.left.eval(ctx)
	if err != nil || ok {
		return ok, err
	}
	return n.right.eval(ctx)
}

type exprAnd struct {
	left  exprNode
	right exprNode
}

func (n exprAnd) eval(ctx visibility.Context) (bool, error) {
	ok, err := n.left.eval(ctx)
	if err != nil || !ok {
		return false, err
	}
	return n.right.eval(ctx)
}

type exprNot struct {
	inner exprNode
}

func (n exprNot) eval(ctx visibility.Context) (bool, error) {
	ok, err := n.inner.eval(ctx)
	if err != nil {
		return false, err
	}
	return !ok, nil
}

type literalKind int

const (
	litString literalKind = iota
	litNumber
	litBool
	litNull
)

type literal struct {
	kind literalKind
	raw  string
}

func (l literal) matches(value any) (bool, error) {
	switch l.kind {
	case litNull:
		return value == nil, nil
	case litBool:
		got, _ := coerceBool(value)
		return got == (l.raw == "true"), nil
	case litNumber:
		want, err := strconv.ParseFloat(l.raw, 64)
		if err != nil {
			return false, fmt.Errorf("expr: invalid number literal %q", l.raw)
		}
		got, _ := coerceNumber(value)
		return got == want, nil
	case litString:
		return coerceString(value) == l.raw, nil
	default:
		return false, errors.New("expr: unsupported literal")
	}
}

type exprCompare struct {
	identifier string
	negate     bool
	literal    literal
}

func (n exprCompare) eval(ctx visibility.Context) (bool, error) {
	value, _ := lookup(ctx, n.identifier)
	ok, err := n.literal.matches(value)
	if err != nil {
		return false, err
	}
	return ok != n.negate, nil
}

type exprIn struct {
	identifier string
	set        []literal
}

func (n exprIn) eval(ctx visibility.Context) (bool, error) {
	value, _ := lookup(ctx, n.identifier)
	for _, lit := range n.set {
		ok, err := lit.matches(value)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

type exprTruthy struct {
	identifier string
}

func (n exprTruthy) eval(ctx visibility.Context) (bool, error) {
	value, ok := lookup(ctx, n.identifier)
	if !ok {
		return false, nil
	}
	return truthy(value), nil
}

type tokenStream struct {
	tokens []token
	pos    int
}

func parseExpression(tokens []token) (exprNode, error) {
	stream := &tokenStream{tokens: tokens}
	node, err := parseOr(stream)
	if err != nil {
		return nil, err
	}
	if stream.pos < len(stream.tokens) {
		return nil, fmt.Errorf("expr: unexpected token %q", stream.tokens[stream.pos].raw)
	}
	return node, nil
}

func parseOr(stream *tokenStream) (exprNode, error) {
	left, err := parseAnd(stream)
	if err != nil {
		return nil, err
	}
	for stream.match(tokenOr) {
		right, err := parseAnd(stream)
		if err != nil {
			return nil, err
		}
		left = exprOr{left: left, right: right}
	}
	return left, nil
}

func parseAnd(stream *tokenStream) (exprNode, error) {
	left, err := parseUnary(stream)
	if err != nil {
		return nil, err
	}
	for stream.match(tokenAnd) {
		right, err := parseUnary(stream)
		if err != nil {
			return nil, err
		}
		left = exprAnd{left: left, right: right}
	}
	return left, nil
}

func parseUnary(stream *tokenStream) (exprNode, error) {
	if stream.match(tokenNot) {
		inner, err := parseUnary(stream)
		if err != nil {
			return nil, err
		}
		return exprNot{inner: inner}, nil
	}
	return parsePrimary(stream)
}

func parsePrimary(stream *tokenStream) (exprNode, error) {
	if stream.match(tokenLParen) {
		inner, err := parseOr(stream)
		if err != nil {
			return nil, err
		}
		if !stream.match(tokenRParen) {
			return nil, errors.New("expr: missing closing ')'")
		}
		return inner, nil
	}

	ident, ok := stream.consume(tokenIdentifier)
	if !ok {
		if stream.pos >= len(stream.tokens) {
			return nil, errors.New("expr: empty expression")
		}
		return nil, fmt.Errorf("expr: expected identifier, got %q", stream.tokens[stream.pos].raw)
	}

	if stream.peekIs(tokenEq) || stream.peekIs(tokenNeq) {
		negate := stream.tokens[stream.pos].kind == tokenNeq
		stream.pos++
		lit, err := stream.consumeLiteral()
		if err != nil {
			return nil, err
		}
		return exprCompare{identifier: ident.raw, negate: negate, literal: lit}, nil
	}
	if stream.match(tokenIn) {
		set, err := stream.consumeLiteralList()
		if err != nil {
			return nil, err
		}
		return exprIn{identifier: ident.raw, set: set}, nil
	}

	return exprTruthy{identifier: ident.raw}, nil
}

func (s *tokenStream) peekIs(kind tokenKind) bool {
	return s.pos < len(s.tokens) && s.tokens[s.pos].kind == kind
}

func (s *tokenStream) match(kind tokenKind) bool {
	if !s.peekIs(kind) {
		return false
	}
	s.pos++
	return true
}

func (s *tokenStream) consume(kind tokenKind) (token, bool) {
	if !s.peekIs(kind) {
		return token{}, false
	}
	out := s.tokens[s.pos]
	s.pos++
	return out, true
}

func (s *tokenStream) consumeLiteral() (literal, error) {
	if s.pos >= len(s.tokens) {
		return literal{}, errors.New("expr: missing literal")
	}
	tok := s.tokens[s.pos]
	s.pos++
	switch tok.kind {
	case tokenString:
		return literal{kind: litString, raw: tok.raw}, nil
	case tokenNumber:
		return literal{kind: litNumber, raw: tok.raw}, nil
	case tokenBool:
		return literal{kind: litBool, raw: tok.raw}, nil
	case tokenNull:
		return literal{kind: litNull, raw: "null"}, nil
	case tokenIdentifier:
		// bare words compare as strings: value == other
		return literal{kind: litString, raw: tok.raw}, nil
	default:
		return literal{}, fmt.Errorf("expr: expected literal, got %q", tok.raw)
	}
}

func (s *tokenStream) consumeLiteralList() ([]literal, error) {
	if !s.match(tokenLParen) {
		return nil, errors.New("expr: 'in' requires a parenthesised list")
	}
	var out []literal
	for {
		lit, err := s.consumeLiteral()
		if err != nil {
			return nil, err
		}
		out = append(out, lit)
		if s.match(tokenComma) {
			continue
		}
		if s.match(tokenRParen) {
			return out, nil
		}
		return nil, errors.New("expr: expected ',' or ')' in list")
	}
}

const extrasPrefix = "extras."

func lookup(ctx visibility.Context, key string) (any, bool) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, false
	}
	if strings.HasPrefix(strings.ToLower(key), extrasPrefix) {
		return lookupMap(ctx.Extras, strings.TrimSpace(key[len(extrasPrefix):]))
	}
	return lookupMap(ctx.Values, key)
}

func lookupMap(values map[string]any, path string) (any, bool) {
	if len(values) == 0 || path == "" {
		return nil, false
	}
	if v, ok := values[path]; ok {
		return v, true
	}

	var current any = values
	for _, part := range strings.Split(path, ".") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, false
		}
		switch typed := current.(type) {
		case map[string]any:
			next, ok := typed[part]
			if !ok {
				return nil, false
			}
			current = next
		case map[string]string:
			next, ok := typed[part]
			if !ok {
				return nil, false
			}
			current = next
		default:
			return nil, false
		}
	}
	return current, true
}

func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return strings.TrimSpace(v) != ""
	case int:
		return v != 0
	case float64:
		return v != 0
	case []string:
		return len(v) > 0
	case []any:
		return len(v) > 0
	default:
		return true
	}
}

func coerceBool(value any) (bool, bool) {
	switch v := value.(type) {
	case nil:
		return false, false
	case bool:
		return v, true
	case string:
		if parsed, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return parsed, true
		}
		return strings.TrimSpace(v) != "", true
	default:
		return truthy(value), true
	}
}

func coerceNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func coerceString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(value)
	}
}
