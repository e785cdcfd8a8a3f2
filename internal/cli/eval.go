package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/govalues/numeral"
)

var errExpression = errors.New("invalid expression")

// evaluate computes an expression in Polish notation, such as "+ 1 * 2 3".
// Every operand and intermediate result has precision prec.
func evaluate(tokens []string, prec int) (numeral.Numeral, error) {
	if len(tokens) == 0 {
		return numeral.Numeral{}, fmt.Errorf("no tokens: %w", errExpression)
	}
	stack, err := processTokens(tokens, prec)
	if err != nil {
		return numeral.Numeral{}, fmt.Errorf("processing tokens: %w", err)
	}
	if len(stack) != 1 {
		return numeral.Numeral{}, fmt.Errorf("post-processed stack contains %v, expected exactly one item: %w", stack, errExpression)
	}
	return stack[0], nil
}

func processTokens(tokens []string, prec int) ([]numeral.Numeral, error) {
	stack := make([]numeral.Numeral, 0, len(tokens))
	var err error
	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		switch token {
		case "+", "-", "*", "/":
			stack, err = processOperator(stack, token, prec)
		default:
			stack, err = processOperand(stack, token, prec)
		}
		if err != nil {
			return nil, fmt.Errorf("processing token %q: %w", token, err)
		}
	}
	return stack, nil
}

func processOperator(stack []numeral.Numeral, token string, prec int) ([]numeral.Numeral, error) {
	if len(stack) < 2 {
		return nil, fmt.Errorf("not enough operands: %w", errExpression)
	}
	right := stack[len(stack)-2]
	left := stack[len(stack)-1]
	stack = stack[:len(stack)-2]
	var result numeral.Numeral
	var err error
	switch token {
	case "+":
		result, err = left.AddPrec(right, prec)
	case "-":
		result, err = left.SubPrec(right, prec)
	case "*":
		result, err = left.MulPrec(right, prec)
	case "/":
		result, err = left.QuoPrec(right, prec)
	}
	if err != nil {
		return nil, fmt.Errorf("evaluating \"%s %s %s\": %w", left, token, right, err)
	}
	return append(stack, result), nil
}

func processOperand(stack []numeral.Numeral, token string, prec int) ([]numeral.Numeral, error) {
	d, err := numeral.ParsePrec(token, prec)
	if err != nil {
		return nil, err
	}
	return append(stack, d), nil
}

// joinTokens restores the expression text for logs and JSON output.
func joinTokens(tokens []string) string {
	return strings.Join(tokens, " ")
}
