package testcase

import (
	"strings"
	"testing"
)

func TestParseSectionsSplitOnDashDashDash(t *testing.T) {
	src := `--- precondition
R16 = 5
--- test
ADD R16, R17
--- postcondition
R16 = 10
`
	c, err := Parse(strings.NewReader(src), "add_basic")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Name != "add_basic" || c.DisplayName != "add_basic" {
		t.Fatalf("Name/DisplayName = %q/%q, want add_basic/add_basic", c.Name, c.DisplayName)
	}
	if len(c.Precondition) != 1 || c.Precondition[0] != "R16 = 5" {
		t.Fatalf("Precondition = %v", c.Precondition)
	}
	if len(c.Test) != 1 || c.Test[0] != "ADD R16, R17" {
		t.Fatalf("Test = %v", c.Test)
	}
	if len(c.Postcondition) != 1 || c.Postcondition[0] != "R16 = 10" {
		t.Fatalf("Postcondition = %v", c.Postcondition)
	}
}

func TestParseWithNoParametersExpandsToItself(t *testing.T) {
	src := `--- test
NOP
`
	c, err := Parse(strings.NewReader(src), "nop")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cases := c.Expand()
	if len(cases) != 1 || cases[0] != c {
		t.Fatalf("Expand() of an unparameterized case should return itself")
	}
}

func TestParseParametersSeparatesHeaderFromRows(t *testing.T) {
	src := `--- parameters
VAL, RESULT
5, 10
7, 14
`
	c, err := Parse(strings.NewReader(src), "p")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(c.ParameterVars) != 2 || c.ParameterVars[0] != "VAL" || c.ParameterVars[1] != "RESULT" {
		t.Fatalf("ParameterVars = %v", c.ParameterVars)
	}
	if len(c.ParameterValues) != 2 {
		t.Fatalf("ParameterValues = %v, want 2 rows", c.ParameterValues)
	}
}

func TestExpandSubstitutesEachRowIntoEverySection(t *testing.T) {
	src := `--- precondition
R16 = VAL
--- test
ADD R16, R17
--- postcondition
R16 = RESULT
--- parameters
VAL, RESULT
5, 10
7, 14
`
	c, err := Parse(strings.NewReader(src), "add_param")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	cases := c.Expand()
	if len(cases) != 2 {
		t.Fatalf("Expand() = %d cases, want 2", len(cases))
	}

	first := cases[0]
	if first.Name != "add_param_p0" {
		t.Fatalf("Name = %q, want add_param_p0", first.Name)
	}
	if first.DisplayName != "add_param VAL=5 RESULT=10" {
		t.Fatalf("DisplayName = %q", first.DisplayName)
	}
	if first.Precondition[0] != "R16 = 5" {
		t.Fatalf("Precondition = %v, want substituted VAL", first.Precondition)
	}
	if first.Postcondition[0] != "R16 = 10" {
		t.Fatalf("Postcondition = %v, want substituted RESULT", first.Postcondition)
	}
	if first.Test[0] != "ADD R16, R17" {
		t.Fatalf("Test = %v, want unchanged (no placeholders)", first.Test)
	}

	second := cases[1]
	if second.Precondition[0] != "R16 = 7" || second.Postcondition[0] != "R16 = 14" {
		t.Fatalf("second case substitution wrong: pre=%v post=%v", second.Precondition, second.Postcondition)
	}
}

func TestExpandSkipsMalformedRows(t *testing.T) {
	src := `--- parameters
VAL, RESULT
5, 10
only_one_field
7, 14
`
	c, err := Parse(strings.NewReader(src), "p")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	cases := c.Expand()
	if len(cases) != 2 {
		t.Fatalf("Expand() = %d cases, want 2 (malformed row dropped)", len(cases))
	}
}
