package scan

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"slices"
	"testing"
)

func TestScanner(t *testing.T) {
	tests := []struct {
		input  string
		tokens []Token
	}{
		{
			input: `101y + 71/2 {x_1}^2 (x - yz)^3`,
			tokens: []Token{
				{Type: Int, Text: "101", Location: Location{Line: 0, Column: 0}},
				{Type: Identifier, Text: "y", Location: Location{Line: 0, Column: 3}},
				{Type: Operator, Text: "+", Location: Location{Line: 0, Column: 4}},
				{Type: Int, Text: "71", Location: Location{Line: 0, Column: 5}},
				{Type: Operator, Text: "/", Location: Location{Line: 0, Column: 7}},
				{Type: Int, Text: "2", Location: Location{Line: 0, Column: 8}},
				{Type: Identifier, Text: `{x_1}`, Location: Location{Line: 0, Column: 9}},
				{Type: Operator, Text: "^", Location: Location{Line: 0, Column: 14}},
				{Type: Int, Text: "2", Location: Location{Line: 0, Column: 15}},
				{Type: Parenthesis, Text: "(", Location: Location{Line: 0, Column: 16}},
				{Type: Identifier, Text: "x", Location: Location{Line: 0, Column: 17}},
				{Type: Operator, Text: "-", Location: Location{Line: 0, Column: 18}},
				{Type: Identifier, Text: "y", Location: Location{Line: 0, Column: 19}},
				{Type: Identifier, Text: "z", Location: Location{Line: 0, Column: 20}},
				{Type: Parenthesis, Text: ")", Location: Location{Line: 0, Column: 21}},
				{Type: Operator, Text: "^", Location: Location{Line: 0, Column: 22}},
				{Type: Int, Text: "3", Location: Location{Line: 0, Column: 23}},
			},
		},
		{
			// An explicit "*" is a distinct operator token from the
			// implicit-juxtaposition multiplication the parser synthesizes;
			// the scanner only needs to recognize it, not disambiguate it.
			input: "2*x^3",
			tokens: []Token{
				{Type: Int, Text: "2", Location: Location{Line: 0, Column: 0}},
				{Type: Operator, Text: "*", Location: Location{Line: 0, Column: 1}},
				{Type: Identifier, Text: "x", Location: Location{Line: 0, Column: 2}},
				{Type: Operator, Text: "^", Location: Location{Line: 0, Column: 3}},
				{Type: Int, Text: "3", Location: Location{Line: 0, Column: 4}},
			},
		},
		{
			// Greek letters are valid single-rune identifiers too.
			input: "α^2+β",
			tokens: []Token{
				{Type: Identifier, Text: "α", Location: Location{Line: 0, Column: 0}},
				{Type: Operator, Text: "^", Location: Location{Line: 0, Column: 1}},
				{Type: Int, Text: "2", Location: Location{Line: 0, Column: 2}},
				{Type: Operator, Text: "+", Location: Location{Line: 0, Column: 3}},
				{Type: Identifier, Text: "β", Location: Location{Line: 0, Column: 4}},
			},
		},
	}

	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			t.Parallel()
			l := NewScanner(bytes.NewBufferString(test.input))
			var tokens []Token
			for i := l.Next(); i.Type != EOF; i = l.Next() {
				tokens = append(tokens, i)
			}
			if !slices.Equal(tokens, test.tokens) {
				t.Errorf("%v", tokens)
			}
		})
	}
}

func TestMain(m *testing.M) {
	flag.Parse()
	log.SetFlags(log.Lmicroseconds | log.Llongfile | log.LstdFlags)

	m.Run()
}
