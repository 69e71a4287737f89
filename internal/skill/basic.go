package skill

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CurrentTime reports the current time, optionally in a named IANA
// timezone from config["timezone"].
type CurrentTime struct{}

func (CurrentTime) Name() string        { return "current_time" }
func (CurrentTime) Description() string { return "Returns the current date and time" }

func (CurrentTime) Execute(ctx context.Context, input string, config map[string]string) (string, error) {
	loc := time.Local
	if tz := config["timezone"]; tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			return "", fmt.Errorf("unknown timezone %q: %w", tz, err)
		}
		loc = l
	}
	return time.Now().In(loc).Format(time.RFC3339), nil
}

// Echo repeats its input back.
type Echo struct{}

func (Echo) Name() string        { return "echo" }
func (Echo) Description() string { return "Echoes the input back" }

func (Echo) Execute(ctx context.Context, input string, config map[string]string) (string, error) {
	return "Echo: " + input, nil
}

// Calculator evaluates basic arithmetic expressions. Only digits,
// parentheses and the four operators are accepted.
type Calculator struct{}

func (Calculator) Name() string        { return "calculator" }
func (Calculator) Description() string { return "Evaluates a basic arithmetic expression" }

const calcAllowed = "0123456789+-*/(). "

func (Calculator) Execute(ctx context.Context, input string, config map[string]string) (string, error) {
	expr := strings.TrimSpace(input)
	if expr == "" {
		return "", fmt.Errorf("empty expression")
	}
	for _, r := range expr {
		if !strings.ContainsRune(calcAllowed, r) {
			return "", fmt.Errorf("invalid character %q in expression", r)
		}
	}

	p := &exprParser{src: expr}
	val, err := p.parseExpr()
	if err != nil {
		return "", err
	}
	p.skipSpaces()
	if p.pos != len(p.src) {
		return "", fmt.Errorf("unexpected character at position %d", p.pos)
	}
	return strconv.FormatFloat(val, 'f', -1, 64), nil
}

// exprParser is a recursive descent parser over the usual grammar:
// expr = term {(+|-) term}, term = factor {(*|/) factor},
// factor = number | (expr) | -factor.
type exprParser struct {
	src string
	pos int
}

func (p *exprParser) skipSpaces() {
	for p.pos < len(p.src) && p.src[p.pos] == ' ' {
		p.pos++
	}
}

func (p *exprParser) peek() byte {
	p.skipSpaces()
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *exprParser) parseExpr() (float64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '+':
			p.pos++
			right, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			left += right
		case '-':
			p.pos++
			right, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			left -= right
		default:
			return left, nil
		}
	}
}

func (p *exprParser) parseTerm() (float64, error) {
	left, err := p.parseFactor()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '*':
			p.pos++
			right, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			left *= right
		case '/':
			p.pos++
			right, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			if right == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			left /= right
		default:
			return left, nil
		}
	}
}

func (p *exprParser) parseFactor() (float64, error) {
	switch c := p.peek(); {
	case c == '(':
		p.pos++
		val, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if p.peek() != ')' {
			return 0, fmt.Errorf("missing closing parenthesis")
		}
		p.pos++
		return val, nil
	case c == '-':
		p.pos++
		val, err := p.parseFactor()
		if err != nil {
			return 0, err
		}
		return -val, nil
	case c >= '0' && c <= '9' || c == '.':
		start := p.pos
		for p.pos < len(p.src) && (p.src[p.pos] >= '0' && p.src[p.pos] <= '9' || p.src[p.pos] == '.') {
			p.pos++
		}
		val, err := strconv.ParseFloat(p.src[start:p.pos], 64)
		if err != nil {
			return 0, fmt.Errorf("invalid number %q", p.src[start:p.pos])
		}
		return val, nil
	case c == 0:
		return 0, fmt.Errorf("unexpected end of expression")
	default:
		return 0, fmt.Errorf("unexpected character %q", c)
	}
}
