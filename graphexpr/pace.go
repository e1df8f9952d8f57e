// pace.go implements a reader for the PACE challenge .gr graph format.

package graphexpr

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/SoerenHenning/MIM-Width-Project/core"
)

// Sentinel errors for the PACE reader.
var (
	// ErrBadHeader is returned when the "p" problem line is missing or
	// malformed.
	ErrBadHeader = errors.New("graphexpr: malformed PACE header")

	// ErrBadEdge is returned for an edge line that is not a pair of
	// positive integers within the announced vertex range.
	ErrBadEdge = errors.New("graphexpr: malformed PACE edge")
)

const paceHeaderFields = 4 // "p" <descriptor> <vertices> <edges>

// ReadPACE parses a PACE .gr document into a graph over 1-based integer
// vertices. All n announced vertices are present in the result even
// when some have no incident edges. Comment lines ("c ...") and blank
// lines are skipped; repeated edges are ignored.
func ReadPACE(r io.Reader) (*core.Graph[int], error) {
	sc := bufio.NewScanner(r)

	var (
		g        *core.Graph[int]
		vertices int
		line     int
	)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "c") {
			continue
		}

		fields := strings.Fields(text)
		if g == nil {
			if fields[0] != "p" || len(fields) != paceHeaderFields {
				return nil, fmt.Errorf("%w: line %d: %q", ErrBadHeader, line, text)
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: line %d: vertex count %q", ErrBadHeader, line, fields[2])
			}
			vertices = n
			g = core.NewGraph[int]()
			for v := 1; v <= n; v++ {
				g.AddVertex(v)
			}
			continue
		}

		u, v, err := parseEdgeLine(fields, vertices)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q", err, line, text)
		}
		if !g.HasEdge(u, v) {
			if err := g.AddEdge(u, v); err != nil {
				return nil, fmt.Errorf("graphexpr: line %d: %w", line, err)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphexpr: reading PACE input: %w", err)
	}
	if g == nil {
		return nil, fmt.Errorf("%w: no problem line", ErrBadHeader)
	}
	return g, nil
}

// parseEdgeLine validates one "u v" pair against the announced range.
func parseEdgeLine(fields []string, vertices int) (int, int, error) {
	if len(fields) != 2 {
		return 0, 0, ErrBadEdge
	}
	u, errU := strconv.Atoi(fields[0])
	v, errV := strconv.Atoi(fields[1])
	if errU != nil || errV != nil {
		return 0, 0, ErrBadEdge
	}
	if u < 1 || u > vertices || v < 1 || v > vertices {
		return 0, 0, ErrBadEdge
	}
	return u, v, nil
}
