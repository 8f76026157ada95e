// Package render paints computed layout trees to images. It is a
// debugging aid: nodes are drawn as outlines with their padding, scrollbar
// tracks and optional labels.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/grindlemire/go-imlayout/internal/layout"
)

// Options controls how a tree is painted.
type Options struct {
	Background string  // hex color, e.g. "#ffffff"; empty leaves the image transparent
	Scale      float64 // device pixels per layout pixel
	Labels     bool    // draw each node's name in its top-left corner

	// Name labels a node. Defaults to the node's key in hex.
	Name func(*layout.Node) string
}

// MaxDimension bounds the width and height of a rendered image in device pixels.
const MaxDimension = 16384

// ErrTooLarge is returned when the root rect does not fit in MaxDimension
// at the requested scale.
var ErrTooLarge = errors.New("render: image too large")

// DefaultOptions paints at 1x on white without labels.
func DefaultOptions() Options {
	return Options{Background: "#ffffff", Scale: 1}
}

var (
	palette = []color.RGBA{
		{0x1f, 0x77, 0xb4, 0xff},
		{0xd6, 0x27, 0x28, 0xff},
		{0x2c, 0xa0, 0x2c, 0xff},
		{0x94, 0x67, 0xbd, 0xff},
		{0xff, 0x7f, 0x0e, 0xff},
	}
	paddingColor = color.RGBA{0xaa, 0xaa, 0xaa, 0xff}
	trackColor   = color.RGBA{0xdd, 0xdd, 0xdd, 0xff}
	thumbColor   = color.RGBA{0x66, 0x66, 0x66, 0xff}
	labelColor   = color.RGBA{0x20, 0x20, 0x20, 0xff}
)

// Render paints the tree rooted at root. The image covers root's rect.
// Compute must have run on the tree.
func Render(root *layout.Node, opts Options) (image.Image, error) {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Name == nil {
		opts.Name = func(n *layout.Node) string { return fmt.Sprintf("%x", n.ID()) }
	}

	bounds := root.Rect()
	w, err := deviceExtent(bounds.Width, opts.Scale)
	if err != nil {
		return nil, fmt.Errorf("width: %w", err)
	}
	h, err := deviceExtent(bounds.Height, opts.Scale)
	if err != nil {
		return nil, fmt.Errorf("height: %w", err)
	}

	dc := gg.NewContext(w, h)
	if opts.Background != "" {
		dc.SetHexColor(opts.Background)
		dc.Clear()
	}
	dc.Scale(opts.Scale, opts.Scale)
	dc.Translate(-bounds.X, -bounds.Y)
	dc.SetLineWidth(1 / opts.Scale)
	if opts.Labels {
		dc.SetFontFace(basicfont.Face7x13)
	}

	p := &painter{dc: dc, opts: opts}
	p.paint(root, 0, layout.Rect{}, false)
	return dc.Image(), nil
}

// deviceExtent converts a layout extent to a whole number of device pixels,
// at least one.
func deviceExtent(extent, scale float64) (int, error) {
	px := math.Ceil(extent * scale)
	if math.IsNaN(px) || px > MaxDimension {
		return 0, fmt.Errorf("%w: %v px exceeds %d", ErrTooLarge, px, MaxDimension)
	}
	return max(1, int(px)), nil
}

// SavePNG renders the tree and writes it to path.
func SavePNG(path string, root *layout.Node, opts Options) error {
	img, err := Render(root, opts)
	if err != nil {
		return fmt.Errorf("render: %s: %w", path, err)
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}

type painter struct {
	dc   *gg.Context
	opts Options
}

// paint draws n under the clip inherited from its ancestors, then its
// children. Scrollbar tracks are drawn after the content they overlay.
func (p *painter) paint(n *layout.Node, depth int, clip layout.Rect, clipped bool) {
	p.setClip(clip, clipped)
	if n.IsSynthetic() {
		p.paintScrollbar(n)
		return
	}
	p.paintNode(n, depth)

	if c, ok := n.ClipRect(); ok {
		if clipped {
			clip = clip.Intersect(c)
		} else {
			clip = c
		}
		clipped = true
	}
	if clipped && clip.IsEmpty() {
		return
	}
	for _, c := range n.Children() {
		if !c.IsSynthetic() {
			p.paint(c, depth+1, clip, clipped)
		}
	}
	for _, c := range n.Children() {
		if c.IsSynthetic() {
			p.paint(c, depth+1, clip, clipped)
		}
	}
}

// setClip replaces the context's clip mask. gg does not restore masks on
// Pop, so every node sets its own.
func (p *painter) setClip(clip layout.Rect, clipped bool) {
	p.dc.ResetClip()
	if !clipped {
		return
	}
	p.dc.DrawRectangle(clip.X, clip.Y, clip.Width, clip.Height)
	p.dc.Clip()
}

func (p *painter) paintNode(n *layout.Node, depth int) {
	dc := p.dc
	r := n.Rect()

	if !n.Paddings().IsZero() {
		inner := n.InnerRect()
		dc.SetColor(paddingColor)
		dc.SetDash(2/p.opts.Scale, 2/p.opts.Scale)
		dc.DrawRectangle(inner.X, inner.Y, inner.Width, inner.Height)
		dc.Stroke()
		dc.SetDash()
	}

	dc.SetColor(palette[depth%len(palette)])
	dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	dc.Stroke()

	if p.opts.Labels && r.Width > 0 && r.Height > 0 {
		dc.SetColor(labelColor)
		dc.DrawString(p.opts.Name(n), r.X+2, r.Y+11)
	}
}

func (p *painter) paintScrollbar(track *layout.Node) {
	dc := p.dc
	r := track.Rect()
	dc.SetColor(trackColor)
	dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	dc.Fill()

	for _, thumb := range track.Children() {
		tr := thumb.Rect()
		dc.SetColor(thumbColor)
		dc.DrawRectangle(tr.X, tr.Y, tr.Width, tr.Height)
		dc.Fill()
	}
}
