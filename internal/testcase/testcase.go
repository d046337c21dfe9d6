// Package testcase parses the simulator's instruction test-case file
// format: plain text split into "--- section" blocks (precondition, test,
// postcondition, parameters), the same format the original ATSim project
// used to drive its AVR-toolchain test harness.
package testcase

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Case is one parsed test-case file: a fragment of assembly run to
// completion, bracketed by optional C-level pre/postcondition statements,
// plus an optional parameter grid for expansion into several concrete
// cases.
type Case struct {
	Name          string
	DisplayName   string
	Precondition  []string
	Test          []string
	Postcondition []string

	ParameterVars   []string
	ParameterValues [][]string
}

// Parse reads a test-case file from r. name identifies the case (typically
// the file's base name without extension) and becomes both Name and the
// initial DisplayName.
func Parse(r io.Reader, name string) (*Case, error) {
	c := &Case{Name: name, DisplayName: name}

	const (
		none = iota
		precondition
		postcondition
		test
		parameters
	)
	section := none

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, "---") {
			fields := strings.Fields(line)
			name := ""
			if len(fields) >= 2 {
				name = strings.TrimSpace(fields[1])
			}
			switch name {
			case "precondition":
				section = precondition
			case "postcondition":
				section = postcondition
			case "test":
				section = test
			case "parameters":
				section = parameters
			default:
				section = none
			}
			continue
		}

		switch section {
		case precondition:
			c.Precondition = append(c.Precondition, line)
		case postcondition:
			c.Postcondition = append(c.Postcondition, line)
		case test:
			c.Test = append(c.Test, line)
		case parameters:
			fields := splitCSV(line)
			if c.ParameterVars == nil {
				c.ParameterVars = fields
			} else {
				c.ParameterValues = append(c.ParameterValues, fields)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("testcase: %w", err)
	}
	return c, nil
}

func splitCSV(line string) []string {
	parts := strings.Split(line, ",")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}

// Expand produces the concrete cases a parameterized Case generates: one
// per row in ParameterValues, with every occurrence of each parameter
// variable substituted by that row's value in the precondition, test, and
// postcondition lines. A Case with no parameter grid expands to itself.
// A row whose length doesn't match ParameterVars is skipped, matching the
// original harness's behavior of silently dropping malformed rows.
func (c *Case) Expand() []*Case {
	if len(c.ParameterVars) == 0 || len(c.ParameterValues) == 0 {
		return []*Case{c}
	}

	var out []*Case
	for i, row := range c.ParameterValues {
		if len(row) != len(c.ParameterVars) {
			continue
		}

		sub := func(lines []string) []string {
			result := make([]string, len(lines))
			copy(result, lines)
			for vi, v := range c.ParameterVars {
				for li, line := range result {
					result[li] = strings.ReplaceAll(line, v, row[vi])
				}
			}
			return result
		}

		display := c.DisplayName
		for vi, v := range c.ParameterVars {
			display += fmt.Sprintf(" %s=%s", v, row[vi])
		}

		out = append(out, &Case{
			Name:          fmt.Sprintf("%s_p%d", c.Name, i),
			DisplayName:   display,
			Precondition:  sub(c.Precondition),
			Test:          sub(c.Test),
			Postcondition: sub(c.Postcondition),
		})
	}
	return out
}
