package calendar

// Rect is an axis-aligned box in page coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Point is a position relative to the calendar container's origin.
type Point struct {
	X, Y float64
}

// Offsets that place the floating panel beside and above the hovered item.
const (
	hoverOffsetX = 30
	hoverOffsetY = -50
)

// HoverPosition places the floating event panel relative to the calendar
// container's bounding box, clamped so the panel stays inside the container
// rather than the viewport.
func HoverPosition(item, container Rect, panelW, panelH float64) Point {
	x := item.X - container.X + hoverOffsetX
	y := item.Y - container.Y + hoverOffsetY

	if max := container.W - panelW; x > max {
		x = max
	}
	if max := container.H - panelH; y > max {
		y = max
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return Point{X: x, Y: y}
}
