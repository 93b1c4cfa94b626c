package layout

import "image"

// Cursor is the top-left position of the next element to place
type Cursor struct {
	X, Y int
}

// Flow describes a left-to-right, top-to-bottom wrap of fixed-height items
type Flow struct {
	Left     int // x a new row starts at
	Height   int
	Gap      int // horizontal gap between items
	RowGap   int // vertical gap between rows
	WrapAt   int // wrap once the advanced cursor passes this x
	MaxRight int // items never end past this x; 0 disables the check
}

// FlowPills places items of the given widths starting at start.
// It returns one rectangle per item and the cursor after the last item.
//
// After each item the cursor advances by width+Gap; if that passes WrapAt
// the next item starts a new row. An item that would cross MaxRight also
// starts a new row, unless it is already first in its row.
func FlowPills(widths []int, start Cursor, f Flow) ([]image.Rectangle, Cursor) {
	rects := make([]image.Rectangle, 0, len(widths))
	cur := start

	for _, w := range widths {
		if f.MaxRight > 0 && cur.X > f.Left && cur.X+w > f.MaxRight {
			cur = f.newRow(cur)
		}

		rects = append(rects, image.Rect(cur.X, cur.Y, cur.X+w, cur.Y+f.Height))

		cur.X += w + f.Gap
		if cur.X > f.WrapAt {
			cur = f.newRow(cur)
		}
	}

	return rects, cur
}

func (f Flow) newRow(cur Cursor) Cursor {
	return Cursor{X: f.Left, Y: cur.Y + f.Height + f.RowGap}
}

// Chip spaces a value/label pair and the gap to the next pair
type Chip struct {
	LabelGap  int // between value and label
	LabelDrop int // label baseline sits lower than the value's
	ChipGap   int // between one label and the next value
}

// LabelOrigin returns where the label of a chip starting at cur is drawn
func (c Chip) LabelOrigin(cur Cursor, valueWidth int) Cursor {
	return Cursor{X: cur.X + valueWidth + c.LabelGap, Y: cur.Y + c.LabelDrop}
}

// Advance returns the cursor for the chip after one starting at cur
func (c Chip) Advance(cur Cursor, valueWidth, labelWidth int) Cursor {
	cur.X += valueWidth + c.LabelGap + labelWidth + c.ChipGap
	return cur
}

// CenterX returns the left edge that centres content of width w in a span of total
func CenterX(total, w int) int {
	return (total - w) / 2
}
