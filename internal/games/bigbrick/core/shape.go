package core

// Shape identifies one of the built-in piece footprints.
type Shape uint8

const (
	Shape1x1 Shape = iota
	Shape2x2
	ShapeLine4
	ShapeL
	ShapeLMirror
	ShapeS
	ShapeSMirror
	ShapeT
	ShapeCount // Sentinel value for iteration
)

// shapeCoords lists the local footprint of each shape.
var shapeCoords = [ShapeCount][]Coord{
	Shape1x1:     {C(0, 0)},
	Shape2x2:     {C(0, 0), C(1, 0), C(0, 1), C(1, 1)},
	ShapeLine4:   {C(0, 0), C(1, 0), C(2, 0), C(3, 0)},
	ShapeL:       {C(0, 0), C(0, 1), C(0, 2), C(1, 2)},
	ShapeLMirror: {C(1, 0), C(1, 1), C(1, 2), C(0, 2)},
	ShapeS:       {C(0, 0), C(1, 0), C(1, 1), C(2, 1)},
	ShapeSMirror: {C(0, 1), C(1, 1), C(1, 0), C(2, 0)},
	ShapeT:       {C(0, 0), C(1, 0), C(2, 0), C(1, 1)},
}

// Coords returns a copy of the shape's local footprint.
// Unknown shapes return nil.
func (s Shape) Coords() []Coord {
	if s >= ShapeCount {
		return nil
	}
	out := make([]Coord, len(shapeCoords[s]))
	copy(out, shapeCoords[s])
	return out
}

// String returns the string representation of a shape.
func (s Shape) String() string {
	switch s {
	case Shape1x1:
		return "1x1"
	case Shape2x2:
		return "2x2"
	case ShapeLine4:
		return "line4"
	case ShapeL:
		return "L"
	case ShapeLMirror:
		return "L-mirror"
	case ShapeS:
		return "S"
	case ShapeSMirror:
		return "S-mirror"
	case ShapeT:
		return "T"
	default:
		return "unknown"
	}
}

// AllShapes returns every built-in shape in declaration order.
func AllShapes() []Shape {
	shapes := make([]Shape, 0, ShapeCount)
	for s := Shape(0); s < ShapeCount; s++ {
		shapes = append(shapes, s)
	}
	return shapes
}
