package sketch

import (
	"fmt"

	"github.com/google/uuid"

	"PlanBoard/internal/geom"
)

// Kind selects how an annotation's point sequence is interpreted.
type Kind uint8

const (
	KindLine Kind = iota
	KindPolyline
	KindArc
	KindBezier
)

var kindNames = map[Kind]string{
	KindLine:     "line",
	KindPolyline: "polyline",
	KindArc:      "arc",
	KindBezier:   "bezier",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// MarshalText encodes the kind as its wire name.
func (k Kind) MarshalText() ([]byte, error) {
	name, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("unknown annotation kind %d", uint8(k))
	}
	return []byte(name), nil
}

// UnmarshalText decodes a wire name back into a Kind.
func (k *Kind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown annotation kind %q", text)
}

// CapID names an endpoint marker. CapNone means no marker.
type CapID string

const (
	CapNone  CapID = "none"
	CapArrow CapID = "arrow"
	CapDot   CapID = "dot"
)

// Style carries the drawable configuration of an annotation.
// FilletRadius is only consulted for polylines; zero means no rounding.
type Style struct {
	Color        string  `json:"color"`
	StrokeWidth  float32 `json:"stroke"`
	FilletRadius float64 `json:"fillet_radius,omitempty"`
	StartCap     CapID   `json:"start_cap,omitempty"`
	EndCap       CapID   `json:"end_cap,omitempty"`
}

// Annotation is the unit of drawable geometry. The meaning of Points
// depends on Kind: two endpoints for a line, placed vertices for a
// polyline, start/through/end for an arc, and node triples
// [anchor, handleIn, handleOut] for a bezier.
type Annotation struct {
	ID      string       `json:"id"`
	OwnerID string       `json:"owner_id"`
	Kind    Kind         `json:"kind"`
	Points  []geom.Point `json:"points"`
	Style   Style        `json:"style"`
	Closed  bool         `json:"closed,omitempty"`
}

// The constructors below are the supported ways to build an annotation;
// they keep the closed flag settable only where it means something.

// NewLine creates a two-point line annotation.
func NewLine(owner string, start, end geom.Point, style Style) Annotation {
	return Annotation{
		ID:      uuid.NewString(),
		OwnerID: owner,
		Kind:    KindLine,
		Points:  []geom.Point{start, end},
		Style:   style,
	}
}

// NewPolyline creates a polyline annotation from placed vertices.
func NewPolyline(owner string, points []geom.Point, closed bool, style Style) Annotation {
	return Annotation{
		ID:      uuid.NewString(),
		OwnerID: owner,
		Kind:    KindPolyline,
		Points:  clonePoints(points),
		Style:   style,
		Closed:  closed,
	}
}

// NewArc creates a three-point arc annotation (start, through, end).
func NewArc(owner string, start, through, end geom.Point, style Style) Annotation {
	return Annotation{
		ID:      uuid.NewString(),
		OwnerID: owner,
		Kind:    KindArc,
		Points:  []geom.Point{start, through, end},
		Style:   style,
	}
}

// NewBezier creates a bezier annotation from node triples laid out as
// [anchor, handleIn, handleOut] groups.
func NewBezier(owner string, points []geom.Point, closed bool, style Style) Annotation {
	return Annotation{
		ID:      uuid.NewString(),
		OwnerID: owner,
		Kind:    KindBezier,
		Points:  clonePoints(points),
		Style:   style,
		Closed:  closed,
	}
}

func clonePoints(points []geom.Point) []geom.Point {
	out := make([]geom.Point, len(points))
	copy(out, points)
	return out
}
