package road

import "math"

// Lane width bounds in logical pixels
const (
	MinLaneWidth = 80.0
	MaxLaneWidth = 120.0
	// LaneWidthFactor is the share of the viewport width given to one lane
	LaneWidthFactor = 0.08
	// LaneInset is how far into its lane a car's left edge sits, as a
	// fraction of the lane width
	LaneInset = 0.12
)

// Geometry is the road layout for one viewport width.
// It is a pure function of the width and lane count.
type Geometry struct {
	LaneCount int
	LaneWidth float64
	RoadWidth float64
	RoadX     float64 // left edge, road is centred horizontally
}

// NewGeometry lays out laneCount lanes centred in a viewport of the given width
func NewGeometry(viewportWidth float64, laneCount int) Geometry {
	if laneCount < 1 {
		laneCount = 1
	}
	if math.IsNaN(viewportWidth) || viewportWidth < 0 {
		viewportWidth = 0
	}
	laneW := LaneWidth(viewportWidth)
	roadW := laneW * float64(laneCount)
	return Geometry{
		LaneCount: laneCount,
		LaneWidth: laneW,
		RoadWidth: roadW,
		RoadX:     (viewportWidth - roadW) / 2,
	}
}

// LaneWidth returns clamp(width*0.08, 80, 120)
func LaneWidth(viewportWidth float64) float64 {
	return math.Min(MaxLaneWidth, math.Max(MinLaneWidth, viewportWidth*LaneWidthFactor))
}

// LaneLeft returns the X coordinate of the left edge of lane
func (g Geometry) LaneLeft(lane int) float64 {
	return g.RoadX + float64(lane)*g.LaneWidth
}

// CarX returns where a car spawned in lane puts its left edge
func (g Geometry) CarX(lane int) float64 {
	return g.LaneLeft(lane) + g.LaneWidth*LaneInset
}

// DividerX returns the X coordinate of the boundary between lane i-1 and lane i
func (g Geometry) DividerX(i int) float64 {
	return g.LaneLeft(i)
}
