// SPDX-License-Identifier: MIT

package poscar

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/crysym/crystal"
	"github.com/katalvlaran/crysym/geom"
)

// currentMarker separates the allowed occupants from the current one.
const currentMarker = "::"

type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func (r *lineReader) next(what string) (string, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", fmt.Errorf("poscar: %w", err)
		}
		return "", &ParseError{Line: r.line + 1, Msg: "unexpected end of input, want " + what}
	}
	r.line++
	return r.sc.Text(), nil
}

func (r *lineReader) fail(format string, args ...any) error {
	return &ParseError{Line: r.line, Msg: fmt.Sprintf(format, args...)}
}

func (r *lineReader) wrap(err error, format string, args ...any) error {
	return &ParseError{Line: r.line, Msg: fmt.Sprintf(format, args...), Err: err}
}

func parseFloats(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Read parses a POSCAR file into a structure built with opts.
// Every failure is a *ParseError wrapping ErrParse, except I/O errors.
func Read(in io.Reader, opts ...crystal.Option) (*crystal.Structure, error) {
	r := &lineReader{sc: bufio.NewScanner(in)}

	title, err := r.next("title")
	if err != nil {
		return nil, err
	}

	line, err := r.next("scale")
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, r.fail("missing scale factor")
	}
	scale, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || scale == 0 {
		return nil, r.fail("bad scale factor %q", fields[0])
	}

	var vecs [3]geom.Vec3
	for i := 0; i < 3; i++ {
		line, err := r.next("lattice vector")
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, r.fail("lattice vector needs 3 components")
		}
		v, err := parseFloats(fields[:3])
		if err != nil {
			return nil, r.wrap(err, "bad lattice vector")
		}
		vecs[i] = geom.Vec3{v[0], v[1], v[2]}
	}
	if scale < 0 {
		vol := math.Abs(geom.TripleProduct(vecs[0], vecs[1], vecs[2]))
		if vol == 0 {
			return nil, r.fail("degenerate lattice")
		}
		scale = math.Cbrt(-scale / vol)
	}
	for i := range vecs {
		vecs[i] = vecs[i].Scale(scale)
	}
	lat, err := geom.NewLattice(vecs[0], vecs[1], vecs[2])
	if err != nil {
		return nil, r.wrap(err, "lattice")
	}

	line, err = r.next("species counts")
	if err != nil {
		return nil, err
	}
	var elements []string
	fields = strings.Fields(line)
	if len(fields) > 0 && unicode.IsLetter(rune(fields[0][0])) {
		elements = fields
		if line, err = r.next("species counts"); err != nil {
			return nil, err
		}
		fields = strings.Fields(line)
	}
	var counts []int
	total := 0
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			if len(counts) > 0 {
				break
			}
			return nil, r.fail("bad species count %q", f)
		}
		counts = append(counts, n)
		total += n
	}
	if len(counts) == 0 {
		return nil, r.fail("missing species counts")
	}
	if elements != nil && len(elements) != len(counts) {
		return nil, r.fail("%d element names for %d species counts", len(elements), len(counts))
	}

	line, err = r.next("coordinate mode")
	if err != nil {
		return nil, err
	}
	selective := false
	if m := strings.TrimSpace(line); m != "" && (m[0] == 'S' || m[0] == 's') {
		selective = true
		if line, err = r.next("coordinate mode"); err != nil {
			return nil, err
		}
	}
	mode, ok := parseMode(line)
	if !ok {
		return nil, r.fail("missing Direct/Cartesian marker, got %q", strings.TrimSpace(line))
	}

	s := crystal.NewStructure(lat, opts...)
	s.Title = title
	group, left := 0, counts[0]
	for i := 0; i < total; i++ {
		for left == 0 {
			group++
			left = counts[group]
		}
		left--
		line, err := r.next(fmt.Sprintf("site %d of %d", i+1, total))
		if err != nil {
			return nil, err
		}
		var elem string
		if elements != nil {
			elem = elements[group]
		}
		site, err := parseSite(line, lat, mode, scale, selective, elem)
		if err != nil {
			return nil, r.wrap(err, "site %d", i+1)
		}
		s.AddSite(site)
	}
	return s, nil
}

func parseMode(line string) (crystal.CoordMode, bool) {
	m := strings.TrimSpace(line)
	if m == "" {
		return crystal.Frac, false
	}
	switch m[0] {
	case 'D', 'd':
		return crystal.Frac, true
	case 'C', 'c', 'K', 'k':
		return crystal.Cart, true
	}
	return crystal.Frac, false
}

func parseSite(line string, lat *geom.Lattice, mode crystal.CoordMode, scale float64, selective bool, elem string) (*crystal.Site, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return nil, fmt.Errorf("need 3 coordinates")
	}
	v, err := parseFloats(fields[:3])
	if err != nil {
		return nil, err
	}
	pos := geom.Vec3{v[0], v[1], v[2]}
	if mode == crystal.Cart {
		pos = pos.Scale(scale)
	}
	rest := fields[3:]

	var sd [3]bool
	if selective {
		if len(rest) < 3 {
			return nil, fmt.Errorf("need 3 selective dynamics flags")
		}
		for k := 0; k < 3; k++ {
			switch rest[k] {
			case "T", "t":
				sd[k] = true
			case "F", "f":
			default:
				return nil, fmt.Errorf("bad selective dynamics flag %q", rest[k])
			}
		}
		rest = rest[3:]
	}

	coord := crystal.NewCoordinate(pos, lat, mode)
	var site *crystal.Site
	if elem != "" {
		site = crystal.NewAtomicSite(coord, elem)
	} else {
		var names []string
		current := ""
		for k := 0; k < len(rest); k++ {
			if rest[k] == currentMarker {
				if k+1 < len(rest) {
					current = rest[k+1]
				}
				break
			}
			names = append(names, rest[k])
		}
		if len(names) == 0 {
			return nil, fmt.Errorf("no occupants listed")
		}
		site = crystal.NewAtomicSite(coord, names...)
		if current != "" {
			if err := site.Occupant().SetCurrent(crystal.NewAtomicMolecule(current)); err != nil {
				return nil, fmt.Errorf("current occupant %q: %w", current, err)
			}
		}
	}
	site.SetSDFlag(sd)
	return site, nil
}
