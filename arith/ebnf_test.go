package arith

import (
	"strings"
	"testing"

	"golang.org/x/exp/ebnf"
)

func TestEBNF(t *testing.T) {
	grammar, err := ebnf.Parse("arith.ebnf", strings.NewReader(EBNF))
	if err != nil {
		t.Fatalf("parse grammar: %v", err)
	}
	if err := ebnf.Verify(grammar, StartProduction); err != nil {
		t.Fatalf("verify grammar: %v", err)
	}

	for _, name := range []string{"Expression", "Term", "Factor", "float"} {
		if grammar[name] == nil {
			t.Errorf("grammar has no production %s", name)
		}
	}
}
