package pdf

// A4 page dimensions at 96 DPI, in pixels. The preview surface aims to show
// one full printable page when the viewport allows it.
const (
	PageWidthPx  = 794
	PageHeightPx = 1123

	// minUsableHeightPx is the floor below which the preview stops being usable.
	minUsableHeightPx = 600

	// viewportChromePx approximates headers, margins and other UI around the
	// preview that eat into the viewport.
	viewportChromePx = 200
)

// PreviewOptions constrain the computed preview height, in pixels.
// Zero values mean "unconstrained". Height forces an exact height.
type PreviewOptions struct {
	Height    int
	MinHeight int
	MaxHeight int
}

// PreviewHeight computes the optimal preview surface height for a viewport:
// one full page when there is room, otherwise the available space clamped to
// a usable minimum, further clamped by the caller's min/max. Recalculated by
// the consumer on every viewport resize.
func PreviewHeight(viewportHeight int, opts PreviewOptions) int {
	if opts.Height > 0 {
		return opts.Height
	}

	available := viewportHeight - viewportChromePx

	var optimal int
	switch {
	case opts.MaxHeight > 0:
		optimal = min(available, opts.MaxHeight, PageHeightPx)
	case available >= PageHeightPx:
		optimal = PageHeightPx
	case available >= minUsableHeightPx:
		optimal = available
	default:
		optimal = minUsableHeightPx
	}

	if opts.MinHeight > 0 && optimal < opts.MinHeight {
		optimal = opts.MinHeight
	}
	return optimal
}
