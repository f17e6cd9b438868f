package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreviewHeight(t *testing.T) {
	tests := []struct {
		name     string
		viewport int
		opts     PreviewOptions
		want     int
	}{
		{name: "tall viewport shows a full page", viewport: 1500, want: PageHeightPx},
		{name: "exactly enough room for a page", viewport: PageHeightPx + viewportChromePx, want: PageHeightPx},
		{name: "mid-size viewport uses available space", viewport: 1000, want: 800},
		{name: "short viewport clamps to usable minimum", viewport: 500, want: minUsableHeightPx},
		{name: "explicit height wins", viewport: 1500, opts: PreviewOptions{Height: 720}, want: 720},
		{name: "max height caps available space", viewport: 1500, opts: PreviewOptions{MaxHeight: 900}, want: 900},
		{name: "max height never exceeds available space", viewport: 900, opts: PreviewOptions{MaxHeight: 1000}, want: 700},
		{name: "max height never exceeds a page", viewport: 3000, opts: PreviewOptions{MaxHeight: 2000}, want: PageHeightPx},
		{name: "min height floors the result", viewport: 500, opts: PreviewOptions{MinHeight: 650}, want: 650},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PreviewHeight(tt.viewport, tt.opts))
		})
	}
}
