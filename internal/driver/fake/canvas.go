package fake

import (
	"fmt"
	"image"
	"image/color"
	"strings"
)

// Op is one recorded draw call.
type Op struct {
	Kind  string // "clear", "blit", "rect" or "text"
	Src   image.Image
	Rect  image.Rectangle // source region for blits, outline for rects
	X, Y  int
	Scale int
	Color color.Color
	Text  string
}

func (o Op) String() string {
	switch o.Kind {
	case "clear":
		return fmt.Sprintf("clear %v", o.Color)
	case "blit":
		return fmt.Sprintf("blit %v at %d,%d x%d", o.Rect, o.X, o.Y, o.Scale)
	case "rect":
		return fmt.Sprintf("rect %v %v", o.Rect, o.Color)
	case "text":
		return fmt.Sprintf("text %d,%d %q", o.X, o.Y, o.Text)
	}
	return o.Kind
}

// Canvas records draw calls instead of drawing; useful for headless tests.
type Canvas struct {
	Count int // frames started with Clear
	Ops   []Op
}

func (c *Canvas) Clear(col color.Color) {
	c.Count++
	c.Ops = append(c.Ops, Op{Kind: "clear", Color: col})
}

func (c *Canvas) Blit(src image.Image, r image.Rectangle, x, y, scale int) {
	c.Ops = append(c.Ops, Op{Kind: "blit", Src: src, Rect: r, X: x, Y: y, Scale: scale})
}

func (c *Canvas) StrokeRect(x, y, w, h int, col color.Color) {
	c.Ops = append(c.Ops, Op{Kind: "rect", Rect: image.Rect(x, y, x+w, y+h), X: x, Y: y, Color: col})
}

func (c *Canvas) Text(x, y int, s string) {
	c.Ops = append(c.Ops, Op{Kind: "text", X: x, Y: y, Text: s})
}

// Reset drops all recorded calls.
func (c *Canvas) Reset() {
	c.Count = 0
	c.Ops = c.Ops[:0]
}

// Kind returns the recorded calls of the given kind in order.
func (c *Canvas) Kind(kind string) []Op {
	var out []Op
	for _, o := range c.Ops {
		if o.Kind == kind {
			out = append(out, o)
		}
	}
	return out
}

// Lines returns the recorded text, one call per line.
func (c *Canvas) Lines() string {
	var b strings.Builder
	for _, o := range c.Kind("text") {
		b.WriteString(o.Text)
		b.WriteByte('\n')
	}
	return b.String()
}
