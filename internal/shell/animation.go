package shell

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// BorderSegment is appended to the border on every frame.
const BorderSegment = "____________________\t\t"

// Animation draws a border that grows one segment per frame, redrawn in
// place with a carriage return.
type Animation struct {
	Frames int
	Delay  time.Duration
	Style  lipgloss.Style
}

// NewAnimation returns an Animation whose border is drawn in color.
// An empty color leaves the border unstyled.
func NewAnimation(frames int, delay time.Duration, color string) *Animation {
	style := lipgloss.NewStyle().TabWidth(lipgloss.NoTabConversion)
	if color != "" {
		style = style.Foreground(lipgloss.Color(color))
	}
	return &Animation{Frames: frames, Delay: delay, Style: style}
}

// Draw writes each frame to w and returns the final border followed by a
// newline. It stops early, returning the border drawn so far, when ctx is done.
func (a *Animation) Draw(ctx context.Context, w io.Writer) string {
	var border strings.Builder
	for i := 0; i < a.Frames; i++ {
		border.WriteString(BorderSegment)
		fmt.Fprint(w, a.Style.Render(border.String())+"\r")
		if !sleep(ctx, a.Delay) {
			break
		}
	}
	return border.String() + "\n"
}

func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
