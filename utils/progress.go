package utils

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"sync"
)

// ProgressBar renders the carving progress on a single terminal line:
//
//	[=========================>                        ] 51 %
type ProgressBar struct {
	mu         sync.Mutex
	writer     io.Writer
	width      int
	hideCursor bool
	last       int
}

// NewProgressBar creates a progress bar of the given width (in characters).
func NewProgressBar(w io.Writer, width int, hideCursor bool) *ProgressBar {
	return &ProgressBar{
		writer:     w,
		width:      Max(width, 1),
		hideCursor: hideCursor,
		last:       -1,
	}
}

// Update redraws the bar for completed out of total steps. The bar is
// finished with a new line once completed reaches total.
func (pb *ProgressBar) Update(completed, total int) {
	if total <= 0 {
		return
	}
	pb.mu.Lock()
	defer pb.mu.Unlock()

	completed = Clamp(completed, 0, total)
	if pb.last < 0 && pb.hideCursor && runtime.GOOS != "windows" {
		fmt.Fprint(pb.writer, "\033[?25l")
	}
	if completed == pb.last {
		return
	}
	pb.last = completed

	fmt.Fprintf(pb.writer, "\r%s", pb.render(completed, total))

	if completed == total {
		fmt.Fprintln(pb.writer)
		pb.RestoreCursor()
	}
}

// render returns the textual representation of the bar.
func (pb *ProgressBar) render(completed, total int) string {
	progress := float64(completed) / float64(total)
	pos := int(float64(pb.width) * progress)

	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < pb.width; i++ {
		switch {
		case i < pos:
			sb.WriteByte('=')
		case i == pos:
			sb.WriteByte('>')
		default:
			sb.WriteByte(' ')
		}
	}
	fmt.Fprintf(&sb, "] %d %%", int(progress*100))
	return sb.String()
}

// RestoreCursor restores back the cursor visibility.
func (pb *ProgressBar) RestoreCursor() {
	if pb.hideCursor && runtime.GOOS != "windows" {
		fmt.Fprint(pb.writer, "\033[?25h")
	}
}
