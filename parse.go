package polyalgebra

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/groebner-lab/polyalgebra/parse"
	"github.com/groebner-lab/polyalgebra/parse/scan"
)

// Parse reads an infix expression such as "5/3b(a+b)^2c+9a" into a
// Polynomial[K]. Multiplication may be written either by juxtaposition or
// with an explicit "*"; "/" divides a literal integer by a literal integer;
// "^" raises to a non-negative integer power. one supplies the coefficient
// kind's multiplicative identity, from which every integer literal is
// built by repeated addition.
func Parse[K Field[K]](one K, input string) (Polynomial[K], error) {
	n, err := parse.Parse(scan.NewScanner(bytes.NewBufferString(input)))
	if err != nil {
		return Polynomial[K]{}, errors.Wrap(err, "Parse")
	}
	p, err := evaluate(n, one)
	if err != nil {
		return Polynomial[K]{}, errors.Wrap(err, "Parse")
	}
	return p, nil
}

func evaluate[K Field[K]](n *parse.Node, one K) (Polynomial[K], error) {
	switch n.Token.Type {
	case scan.Parenthesis:
		return evaluateParenthesis(n, one)
	case scan.Operator:
		return evaluateOperator(n, one)
	case scan.Int:
		return evaluateInt(n, one)
	case scan.Identifier:
		return evaluateIdentifier(n, one)
	default:
		return Polynomial[K]{}, errors.Errorf("unknown node %#v", n)
	}
}

func evaluateParenthesis[K Field[K]](n *parse.Node, one K) (Polynomial[K], error) {
	if n.Left == nil {
		return Polynomial[K]{}, errors.Errorf("%#v", n)
	}
	return evaluate(n.Left, one)
}

func evaluateOperator[K Field[K]](n *parse.Node, one K) (Polynomial[K], error) {
	switch n.Token.Text {
	case "+":
		return evaluatePlus(n, one)
	case "-":
		return evaluateMinus(n, one)
	case "*":
		return evaluateMultiply(n, one)
	case "/":
		return evaluateDivide(n, one)
	case "^":
		return evaluatePower(n, one)
	default:
		return Polynomial[K]{}, errors.Errorf("%#v", n)
	}
}

func evaluateIdentifier[K Field[K]](n *parse.Node, one K) (Polynomial[K], error) {
	name := n.Token.Text
	if len(name) >= 2 && name[0] == '{' && name[len(name)-1] == '}' {
		name = name[1 : len(name)-1]
	}
	p, err := DefineVariable[K](name, one)
	if err != nil {
		return Polynomial[K]{}, errors.Errorf("%#v", n)
	}
	return p, nil
}

func evaluatePlus[K Field[K]](n *parse.Node, one K) (Polynomial[K], error) {
	left, right, err := evaluateLeftRight(n, one)
	if err != nil {
		return Polynomial[K]{}, errors.Wrapf(err, "%#v", n)
	}
	z, err := left.Add(right)
	if err != nil {
		return Polynomial[K]{}, errors.Wrapf(err, "%#v", n)
	}
	return z, nil
}

func evaluateMinus[K Field[K]](n *parse.Node, one K) (Polynomial[K], error) {
	left, right, err := evaluateLeftRight(n, one)
	if err != nil {
		return Polynomial[K]{}, errors.Wrapf(err, "%#v", n)
	}
	z, err := left.Sub(right)
	if err != nil {
		return Polynomial[K]{}, errors.Wrapf(err, "%#v", n)
	}
	return z, nil
}

func evaluateMultiply[K Field[K]](n *parse.Node, one K) (Polynomial[K], error) {
	left, right, err := evaluateLeftRight(n, one)
	if err != nil {
		return Polynomial[K]{}, errors.Wrapf(err, "%#v", n)
	}
	z, err := left.Mul(right)
	if err != nil {
		return Polynomial[K]{}, errors.Wrapf(err, "%#v", n)
	}
	return z, nil
}

// evaluateDivide handles only literal/literal division, e.g. "12/5": the
// grammar never produces a "/" whose operands are themselves compound
// expressions.
func evaluateDivide[K Field[K]](n *parse.Node, one K) (Polynomial[K], error) {
	if n.Left == nil || n.Left.Token.Type != scan.Int {
		return Polynomial[K]{}, errors.Errorf("%#v", n)
	}
	num, err := evaluateInt[K](n.Left, one)
	if err != nil {
		return Polynomial[K]{}, errors.Wrapf(err, "%#v", n)
	}
	if n.Right == nil || n.Right.Token.Type != scan.Int {
		return Polynomial[K]{}, errors.Errorf("%#v", n)
	}
	denom, err := evaluateInt[K](n.Right, one)
	if err != nil {
		return Polynomial[K]{}, errors.Wrapf(err, "%#v", n)
	}
	numC, ok := num.Terms()[ConstantMonomial()]
	if !ok {
		numC = one.NewZero()
	}
	denomC, ok := denom.Terms()[ConstantMonomial()]
	if !ok {
		denomC = one.NewZero()
	}
	c, err := numC.Div(denomC)
	if err != nil {
		return Polynomial[K]{}, errors.Wrapf(err, "%#v", n)
	}
	return ConstantPolynomial(c), nil
}

func evaluatePower[K Field[K]](n *parse.Node, one K) (Polynomial[K], error) {
	if n.Left == nil {
		return Polynomial[K]{}, errors.Errorf("%#v", n)
	}
	left, err := evaluate(n.Left, one)
	if err != nil {
		return Polynomial[K]{}, errors.Wrapf(err, "%#v", n)
	}
	if n.Right == nil || n.Right.Token.Type != scan.Int {
		return Polynomial[K]{}, errors.Errorf("%#v", n)
	}
	right := atoiUnsigned(n.Right.Token.Text)
	z, err := left.Pow(right)
	if err != nil {
		return Polynomial[K]{}, errors.Wrapf(err, "%#v", n)
	}
	return z, nil
}

func evaluateInt[K Field[K]](n *parse.Node, one K) (Polynomial[K], error) {
	coeff, err := intTimes(one, atoiUnsigned(n.Token.Text))
	if err != nil {
		return Polynomial[K]{}, errors.Wrapf(err, "%#v", n)
	}
	return ConstantPolynomial(coeff), nil
}

func atoiUnsigned(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}

func evaluateLeftRight[K Field[K]](n *parse.Node, one K) (Polynomial[K], Polynomial[K], error) {
	if n.Left == nil {
		return Polynomial[K]{}, Polynomial[K]{}, errors.Errorf("%#v", n)
	}
	left, err := evaluate(n.Left, one)
	if err != nil {
		return Polynomial[K]{}, Polynomial[K]{}, errors.Wrapf(err, "%#v", n)
	}
	if n.Right == nil {
		return Polynomial[K]{}, Polynomial[K]{}, errors.Errorf("%#v", n)
	}
	right, err := evaluate(n.Right, one)
	if err != nil {
		return Polynomial[K]{}, Polynomial[K]{}, errors.Wrapf(err, "%#v", n)
	}
	return left, right, nil
}
