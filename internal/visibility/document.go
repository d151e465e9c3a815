package visibility

import (
	"fmt"
	"math"
)

// Terminal cells are mapped to logical pixels so pixel-denominated settings
// (breakpoint, root margins, scroll-past distance) keep their meaning.
const (
	CellWidth  = 8
	CellHeight = 16
)

// Block is a laid-out section of a Document.
type Block struct {
	Name string

	doc    *Document
	top    int
	height int
}

// BoundingClientRect returns the block's box relative to the viewport. A nil
// or detached block has an empty box.
func (b *Block) BoundingClientRect() Rect {
	if b == nil || b.doc == nil {
		return Rect{}
	}
	d := b.doc
	return Rect{
		Top:    float64((b.top - d.offset) * CellHeight),
		Left:   0,
		Width:  float64(d.cols * CellWidth),
		Height: float64(b.height * CellHeight),
	}
}

// Top returns the block's first row in document coordinates.
func (b *Block) Top() int { return b.top }

// Height returns the block's height in rows.
func (b *Block) Height() int { return b.height }

// Document is a vertically scrolling page of blocks measured in terminal
// cells. It is both the Window and the intersection Primitive for the
// terminal client: after every scroll, resize or relayout the owner calls
// Refresh to deliver entries.
type Document struct {
	cols, rows int
	offset     int

	blocks        []*Block
	intersections []*docIntersection
}

// NewDocument returns an empty document with no size.
func NewDocument() *Document {
	return &Document{}
}

// SetSize sets the viewport size in cells.
func (d *Document) SetSize(cols, rows int) {
	d.cols = max(cols, 0)
	d.rows = max(rows, 0)
}

// ScrollTo sets the first visible row.
func (d *Document) ScrollTo(row int) {
	d.offset = max(row, 0)
}

// Offset returns the first visible row.
func (d *Document) Offset() int { return d.offset }

// Block returns the named block, creating it on first use.
func (d *Document) Block(name string) *Block {
	for _, b := range d.blocks {
		if b.Name == name {
			return b
		}
	}
	b := &Block{Name: name, doc: d}
	d.blocks = append(d.blocks, b)
	return b
}

// Place positions b at row top with the given height in rows.
func (d *Document) Place(b *Block, top, height int) {
	b.top = top
	b.height = max(height, 0)
}

// Blocks returns the document's blocks in creation order.
func (d *Document) Blocks() []*Block {
	return append([]*Block(nil), d.blocks...)
}

// InnerWidth implements Window.
func (d *Document) InnerWidth() float64 { return float64(d.cols * CellWidth) }

// InnerHeight implements Window.
func (d *Document) InnerHeight() float64 { return float64(d.rows * CellHeight) }

// NewIntersection implements Primitive.
func (d *Document) NewIntersection(fn func([]Entry), threshold float64, rootMargin string) (Intersection, error) {
	if math.IsNaN(threshold) || threshold < 0 || threshold > 1 {
		return nil, fmt.Errorf("threshold %v outside [0,1]", threshold)
	}
	margin, err := ParseMargin(rootMargin)
	if err != nil {
		return nil, err
	}
	in := &docIntersection{
		doc:       d,
		fn:        fn,
		threshold: threshold,
		margin:    margin,
		state:     make(map[Element]bool),
	}
	d.intersections = append(d.intersections, in)
	return in, nil
}

// Refresh measures every observed element and delivers an entry wherever
// the intersecting state changed or has never been reported.
func (d *Document) Refresh() {
	root := d.root()
	for _, in := range append([]*docIntersection(nil), d.intersections...) {
		in.refresh(root)
	}
}

func (d *Document) root() Rect {
	return Rect{Width: d.InnerWidth(), Height: d.InnerHeight()}
}

func (d *Document) detach(in *docIntersection) {
	for i, cur := range d.intersections {
		if cur == in {
			d.intersections = append(d.intersections[:i], d.intersections[i+1:]...)
			return
		}
	}
}

type docIntersection struct {
	doc       *Document
	fn        func([]Entry)
	threshold float64
	margin    Margin

	targets []Element
	state   map[Element]bool
	closed  bool
}

func (in *docIntersection) Observe(el Element) {
	if in.closed {
		return
	}
	for _, t := range in.targets {
		if t == el {
			return
		}
	}
	in.targets = append(in.targets, el)
}

func (in *docIntersection) Disconnect() {
	if in.closed {
		return
	}
	in.closed = true
	in.targets = nil
	in.doc.detach(in)
}

func (in *docIntersection) refresh(root Rect) {
	if in.closed {
		return
	}
	area := in.margin.Apply(root)

	var batch []Entry
	for _, el := range in.targets {
		e := measure(el, area, in.threshold)
		prev, seen := in.state[el]
		if seen && prev == e.IsIntersecting {
			continue
		}
		in.state[el] = e.IsIntersecting
		batch = append(batch, e)
	}
	if len(batch) > 0 {
		in.fn(batch)
	}
}

// measure intersects el with the root area. An element counts as
// intersecting when it overlaps the area and at least threshold of it is
// inside.
func measure(el Element, area Rect, threshold float64) Entry {
	r := el.BoundingClientRect()
	e := Entry{Target: el, BoundingRect: r}

	h := math.Min(r.Bottom(), area.Bottom()) - math.Max(r.Top, area.Top)
	w := math.Min(r.Right(), area.Right()) - math.Max(r.Left, area.Left)
	if h <= 0 || w <= 0 {
		return e
	}
	if r.Height > 0 && r.Width > 0 {
		e.IntersectionRatio = (h * w) / (r.Height * r.Width)
	}
	e.IsIntersecting = e.IntersectionRatio >= threshold
	return e
}
