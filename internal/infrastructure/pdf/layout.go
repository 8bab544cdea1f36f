package pdf

// Cursor tracks the vertical writing position on the page. Sections draw at
// Y() and then call Advance; crossing the bottom margin opens a new page and
// resets the position to the top margin. One Cursor belongs to exactly one
// render call.
type Cursor struct {
	canvas Canvas
	pageH  float64
	margin float64
	y      float64
}

func newCursor(c Canvas, t Theme) *Cursor {
	c.AddPage()
	return &Cursor{canvas: c, pageH: t.PageHeight, margin: t.Margin, y: t.Margin}
}

// Y is the current vertical position.
func (cu *Cursor) Y() float64 { return cu.y }

// Advance moves the position down by dy, breaking the page on overflow.
func (cu *Cursor) Advance(dy float64) {
	cu.y += dy
	if cu.y > cu.pageH-cu.margin {
		cu.breakPage()
	}
}

// EnsureRoom breaks the page now if h more millimeters would not fit.
// Reports whether a break happened, so table renderers can repeat headers.
func (cu *Cursor) EnsureRoom(h float64) bool {
	if cu.y+h > cu.pageH-cu.margin {
		cu.breakPage()
		return true
	}
	return false
}

func (cu *Cursor) breakPage() {
	cu.canvas.AddPage()
	cu.y = cu.margin
}
