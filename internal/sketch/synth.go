package sketch

// GeneratePath converts an annotation into its path command sequence.
// It never mutates the annotation and never fails: annotations with too
// few points for their kind synthesize to the empty path, which the
// renderer simply draws as nothing.
func GeneratePath(a Annotation) []Command {
	switch a.Kind {
	case KindLine:
		// A line is exactly two points; malformed wire payloads with
		// extra points synthesize to nothing rather than guessing.
		if len(a.Points) != 2 {
			return nil
		}
		return []Command{
			MoveTo{Point: a.Points[0]},
			LineTo{Point: a.Points[1]},
		}

	case KindPolyline:
		if len(a.Points) < 2 {
			return nil
		}
		var cmds []Command
		if a.Style.FilletRadius > 0 {
			cmds = FilletPath(a.Points, a.Style.FilletRadius)
		} else {
			cmds = polylinePath(a.Points)
		}
		// Rounding never wraps around the closing segment; the close
		// is appended after the open pass.
		if a.Closed {
			cmds = append(cmds, Close{})
		}
		return cmds

	case KindArc:
		return ArcPath(a.Points)

	case KindBezier:
		if len(a.Points) < 3 {
			return nil
		}
		return BezierPath(a.Points, a.Closed)
	}
	return nil
}

// EndpointRole distinguishes the two ends of an annotation for marker
// placement.
type EndpointRole uint8

const (
	RoleStart EndpointRole = iota
	RoleEnd
)

func (r EndpointRole) String() string {
	if r == RoleStart {
		return "start"
	}
	return "end"
}

// Marker is an opaque reference to an endpoint decoration; renderers
// resolve Ref to whatever their backend uses for markers.
type Marker struct {
	Cap  CapID
	Role EndpointRole
	Ref  string
}

// MarkerFor resolves a cap identifier and endpoint role to a marker
// reference. An empty or none cap means no marker.
func MarkerFor(id CapID, role EndpointRole) (Marker, bool) {
	if id == "" || id == CapNone {
		return Marker{}, false
	}
	return Marker{
		Cap:  id,
		Role: role,
		Ref:  string(id) + "-" + role.String(),
	}, true
}
