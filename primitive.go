package chart

// PrimitiveKind identifies the type of a Primitive.
type PrimitiveKind uint8

const (
	KindRect      PrimitiveKind = iota // Filled axis-aligned rectangle
	KindPath                           // Stroked and optionally filled path
	KindArcSector                      // Pie slice bounded by two radii and an arc
	KindCircle                         // Filled full circle
	KindText                           // Text label
)

// primitiveKindNames maps PrimitiveKind values to their string representation.
var primitiveKindNames = [...]string{
	KindRect:      "Rect",
	KindPath:      "PathSegment",
	KindArcSector: "ArcSector",
	KindCircle:    "Circle",
	KindText:      "TextLabel",
}

// String returns the string representation of a PrimitiveKind.
func (k PrimitiveKind) String() string {
	if int(k) < len(primitiveKindNames) {
		return primitiveKindNames[k]
	}
	return "Unknown"
}

// Primitive is a renderer-agnostic drawable unit. The set of
// implementations is closed: Rect, PathSegment, ArcSector, Circle and
// TextLabel.
type Primitive interface {
	Kind() PrimitiveKind
	isPrimitive()
}

// Role tags what a primitive represents so renderers can style or skip it.
type Role uint8

const (
	RoleData   Role = iota // Encodes a data point
	RoleGrid               // Fixed gridline or baseline
	RoleLabel              // Category or value text
	RoleLegend             // Legend swatch or entry text
	RoleHole               // Donut cut-out
)

// Rect is a filled axis-aligned rectangle.
type Rect struct {
	Box
	Fill  Color
	Role  Role
	Index int // source point index, -1 if none
}

func (Rect) Kind() PrimitiveKind { return KindRect }
func (Rect) isPrimitive()        {}

// PathSegment is a polyline or closed region. Fill is empty for stroke-only
// paths such as the line of a line chart or a gridline.
type PathSegment struct {
	Path        *Path
	Fill        Color
	Stroke      Color
	StrokeWidth float64
	Role        Role
	Index       int
}

func (PathSegment) Kind() PrimitiveKind { return KindPath }
func (PathSegment) isPrimitive()        {}

// D returns the SVG path data of the segment.
func (s PathSegment) D() string {
	if s.Path == nil {
		return ""
	}
	return s.Path.String()
}

// ArcSector is a pie slice. Angles are in degrees, clockwise, with Start and
// End the Cartesian endpoints of the outer arc.
type ArcSector struct {
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Start      Point
	End        Point
	LargeArc   bool
	Fill       Color
	Index      int
}

func (ArcSector) Kind() PrimitiveKind { return KindArcSector }
func (ArcSector) isPrimitive()        {}

// Path returns the closed outline center -> Start -> arc -> End -> center.
func (a ArcSector) Path() *Path {
	p := NewPath()
	p.MoveTo(a.Center.X, a.Center.Y)
	p.LineTo(a.Start.X, a.Start.Y)
	p.Arc(a.Center, a.Radius, a.StartAngle, a.EndAngle)
	p.Close()
	return p
}

// Circle is a filled full circle. It stands in for a slice covering the
// whole pie, and for the donut hole.
type Circle struct {
	Center Point
	Radius float64
	Fill   Color
	Role   Role
	Index  int
}

func (Circle) Kind() PrimitiveKind { return KindCircle }
func (Circle) isPrimitive()        {}

// Anchor is the horizontal alignment of a TextLabel relative to its position.
type Anchor uint8

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// Baseline is the vertical alignment of a TextLabel relative to its position.
type Baseline uint8

const (
	BaselineBottom Baseline = iota // text sits above Y
	BaselineMiddle                 // text is centered on Y
	BaselineTop                    // text hangs below Y
)

// TextLabel is a piece of text positioned in viewBox coordinates.
// Font size is left to the renderer.
type TextLabel struct {
	Position Point
	Text     string
	Anchor   Anchor
	Baseline Baseline
	Fill     Color
	Role     Role
	Index    int
}

func (TextLabel) Kind() PrimitiveKind { return KindText }
func (TextLabel) isPrimitive()        {}
