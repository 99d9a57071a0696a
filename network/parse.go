package network

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// lineRx matches one valve declaration. The grammar allows both the singular
// and the plural tunnel phrasing.
var lineRx = regexp.MustCompile(
	`^Valve ([A-Za-z]{2}) has flow rate=(\d+); tunnels? leads? to valves? ([A-Za-z]{2}(?:, [A-Za-z]{2})*)$`,
)

// declaration is one parsed line, before labels are resolved.
type declaration struct {
	line    int
	label   string
	flow    int
	tunnels []string
}

// Parse reads valve declarations from r, one per line:
//
//	Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//	Valve HH has flow rate=22; tunnel leads to valve GG
//
// Labels become dense indices in line order; every tunnel is unit-distance
// and recorded on both ends. Blank lines are ignored. The start valve is
// StartLabel.
//
// Errors: ErrSyntax (with line number), ErrDuplicateLabel, ErrUnknownLabel,
// ErrNoStart, or the reader's own error.
func Parse(r io.Reader) (*Network, error) {
	// Stage 1: tokenize every line; labels may be referenced before declared.
	var decls []declaration
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		text := strings.TrimRight(sc.Text(), "\r \t")
		if text == "" {
			continue
		}
		d, err := parseLine(lineNo, text)
		if err != nil {
			return nil, err
		}
		decls = append(decls, d)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("network: read input: %w", err)
	}

	// Stage 2: declare valves, then wire tunnels.
	b := NewBuilder()
	for _, d := range decls {
		if _, err := b.AddValve(d.label, d.flow); err != nil {
			return nil, fmt.Errorf("line %d: %w", d.line, err)
		}
	}
	for _, d := range decls {
		for _, to := range d.tunnels {
			if err := b.Connect(d.label, to, 1); err != nil {
				return nil, fmt.Errorf("line %d: %w", d.line, err)
			}
		}
	}

	return b.Build(StartLabel)
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

func parseLine(lineNo int, text string) (declaration, error) {
	m := lineRx.FindStringSubmatch(text)
	if m == nil {
		return declaration{}, fmt.Errorf("%w: line %d: %q", ErrSyntax, lineNo, text)
	}
	flow, err := strconv.Atoi(m[2])
	if err != nil {
		return declaration{}, fmt.Errorf("%w: line %d: flow rate %q: %v", ErrSyntax, lineNo, m[2], err)
	}

	return declaration{
		line:    lineNo,
		label:   m[1],
		flow:    flow,
		tunnels: strings.Split(m[3], ", "),
	}, nil
}
