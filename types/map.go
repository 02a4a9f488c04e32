package types

// Coordinate is a geographic point.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Marker is one plotted activity on the rendering surface. The marker set is
// ephemeral: derived from the selected day's activities and fully recomputed
// on every day change, never persisted.
type Marker struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Position    Coordinate `json:"position"`
}

// ViewportMargins is the inset applied when fitting the viewport to a
// marker set.
type ViewportMargins struct {
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
}

// UniformMargins returns equal margins on all four sides.
func UniformMargins(m int) ViewportMargins {
	return ViewportMargins{Top: m, Right: m, Bottom: m, Left: m}
}

// MapSurface is the external rendering surface. The surface becomes ready
// exactly once per mount; implementations render, the core only calls.
// The marker set is exclusively owned and mutated through this interface by
// the map sync engine.
type MapSurface interface {
	// Ready reports whether the surface has finished mounting and can
	// accept marker operations.
	Ready() bool
	// InstallMarkers places the given set on the surface in one batch.
	InstallMarkers(markers []Marker)
	// ClearMarkers removes every marker currently on the surface.
	ClearMarkers()
	// FitViewport adjusts the viewport to exactly bound the given set
	// with the given inset margins.
	FitViewport(markers []Marker, margins ViewportMargins)
	// Resize notifies the surface that its containing viewport changed size.
	Resize()
}
