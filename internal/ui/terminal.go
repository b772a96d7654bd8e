package ui

import (
	"os"

	"golang.org/x/term"
)

// Geometry describes the medium behind an output stream. Width is in
// character cells and is zero when the stream is not a terminal or the
// size query failed.
type Geometry struct {
	Interactive bool
	Width       int
}

// GeometryDetector reports the geometry of an output stream. The real
// implementation queries the OS; tests inject StaticGeometry instead.
type GeometryDetector interface {
	Detect() Geometry
}

// TerminalGeometry detects the geometry of the terminal (if any) backing
// an os.File, typically os.Stdout.
type TerminalGeometry struct {
	out *os.File
}

func NewTerminalGeometry(out *os.File) *TerminalGeometry {
	return &TerminalGeometry{out: out}
}

// Detect reports whether the stream is attached to a terminal and, if so,
// the terminal's current width. Query failures are absorbed: a terminal
// whose size cannot be read is reported as interactive with unknown width.
// Safe to call repeatedly.
func (t *TerminalGeometry) Detect() Geometry {
	fd := int(t.out.Fd())
	if !term.IsTerminal(fd) {
		return Geometry{}
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return Geometry{Interactive: true}
	}
	return Geometry{Interactive: true, Width: width}
}

// StaticGeometry is a GeometryDetector that always reports a fixed
// geometry.
type StaticGeometry struct {
	Geometry Geometry
}

func (s StaticGeometry) Detect() Geometry {
	return s.Geometry
}
