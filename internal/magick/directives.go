package magick

import (
	"fmt"
	"strconv"
)

// Slot names a directive category. Each slot holds at most one directive
// between commits.
type Slot string

const (
	SlotResize  Slot = "resize"
	SlotCrop    Slot = "crop"
	SlotRotate  Slot = "rotate"
	SlotDraw    Slot = "draw"
	SlotOptions Slot = "options"
)

// slotOrder fixes the position of each slot on the convert command line.
var slotOrder = []Slot{SlotResize, SlotCrop, SlotRotate, SlotDraw, SlotOptions}

// exclusive slots refuse a second directive before a commit.
func (s Slot) exclusive() bool {
	return s == SlotResize || s == SlotCrop
}

// Directive is the argument vector queued for one slot.
type Directive []string

func dims(w, h int) string {
	return strconv.Itoa(w) + "x" + strconv.Itoa(h)
}

func exactResizeDirective(w, h int) Directive {
	return Directive{"-geometry", dims(w, h) + "!"}
}

func fillDirective(w, h int, color string) Directive {
	box := dims(w, h)
	return Directive{"-resize", box, "-background", color, "-gravity", "center", "-extent", box}
}

func cropDirective(w, h, x, y int, repage bool) Directive {
	d := Directive{"-crop", fmt.Sprintf("%dx%d+%d+%d", w, h, x, y)}
	if repage {
		d = append(d, "+repage")
	}
	return d
}

func rotateDirective(degrees int) Directive {
	return Directive{"-rotate", strconv.Itoa(degrees)}
}

func interlaceDirective() Directive {
	return Directive{"-interlace", "line", "-colorspace", "rgb"}
}

// roundedCornersDirective builds an alpha mask with one quarter-circle corner,
// mirrors it vertically and horizontally with multiply composition so all four
// corners are masked, then copies the mask into the image's opacity.
func roundedCornersDirective(radius int) Directive {
	r := strconv.Itoa(radius)
	shape := fmt.Sprintf("fill black polygon 0,0 0,%s %s,0 fill white circle %s,%s %s,0", r, r, r, r, r)
	return Directive{
		"(", "+clone", "-channel", "matte", "-separate", "+channel", "-negate",
		"-draw", shape,
		"(", "+clone", "-flip", ")", "-compose", "Multiply", "-composite",
		"(", "+clone", "-flop", ")", "-compose", "Multiply", "-composite",
		")",
		"+matte", "-compose", "CopyOpacity", "-composite",
	}
}

// thumbnailDirective oversamples the source to twice the target box, guarding
// the limiting axis with "<" so small sources are not blown up, halves it and
// center-crops to the exact box.
func thumbnailDirective(src Size, w, h int) Directive {
	var first, guard string
	if src.Landscape() {
		first = "x" + strconv.Itoa(2*h)
		guard = strconv.Itoa(2*w) + "x<"
	} else {
		first = strconv.Itoa(2*w) + "x"
		guard = "x" + strconv.Itoa(2*h) + "<"
	}
	return Directive{
		"-resize", first,
		"-resize", guard,
		"-resize", "50%",
		"-gravity", "center",
		"-crop", dims(w, h) + "+0+0",
		"+repage",
	}
}
