package escpos

import (
	"bytes"
	"strings"
)

const (
	esc = 0x1B
	gs  = 0x1D
)

// Alignment values for ESC a
const (
	AlignLeft   = 0x00
	AlignCenter = 0x01
	AlignRight  = 0x02
)

// Print mode bits for ESC !
const (
	ModeNormal      = 0x00
	ModeDoubleWidth = 0x20
	ModeDoubleSize  = 0x30 // double width and height
)

// Builder assembles an ESC/POS byte sequence
type Builder struct {
	buf bytes.Buffer
}

func New() *Builder {
	return &Builder{}
}

// Init resets the printer to its power-on state (ESC @)
func (b *Builder) Init() *Builder {
	b.buf.Write([]byte{esc, '@'})
	return b
}

// Align sets text justification (ESC a n)
func (b *Builder) Align(n byte) *Builder {
	b.buf.Write([]byte{esc, 'a', n})
	return b
}

// Mode selects the print mode bits (ESC ! n)
func (b *Builder) Mode(n byte) *Builder {
	b.buf.Write([]byte{esc, '!', n})
	return b
}

// Bold turns emphasized printing on or off (ESC E n)
func (b *Builder) Bold(on bool) *Builder {
	n := byte(0x00)
	if on {
		n = 0x01
	}
	b.buf.Write([]byte{esc, 'E', n})
	return b
}

// Text appends raw text. The printer treats LF as print-and-feed.
func (b *Builder) Text(s string) *Builder {
	b.buf.WriteString(s)
	return b
}

// Line appends text followed by a line feed
func (b *Builder) Line(s string) *Builder {
	b.buf.WriteString(s)
	b.buf.WriteByte('\n')
	return b
}

// Feed appends n line feeds
func (b *Builder) Feed(n int) *Builder {
	for i := 0; i < n; i++ {
		b.buf.WriteByte('\n')
	}
	return b
}

// Cut performs a partial paper cut (GS V 1)
func (b *Builder) Cut() *Builder {
	b.buf.Write([]byte{gs, 'V', 0x01})
	return b
}

// Bytes returns the assembled command bytes to send to the printer
func (b *Builder) Bytes() []byte {
	return b.buf.Bytes()
}

// Len returns the current size of the assembled sequence
func (b *Builder) Len() int {
	return b.buf.Len()
}

// TestPage builds the diagnostic test page for the named printer:
// a large bold centered header, the printer status lines, and a
// final feed-and-cut so the page is readable when torn off.
func TestPage(printerName string) []byte {
	b := New()

	b.Init().
		Align(AlignCenter).
		Mode(ModeDoubleSize).
		Bold(true).
		Line("TEST PRINT").
		Line("FROM UBUNTU").
		Feed(1)

	b.Init().
		Align(AlignLeft).
		Bold(false).
		Line("Printer: " + printerName).
		Line("Status: Working!").
		Feed(1).
		Line(strings.Repeat("-", 32)).
		Feed(1).
		Line("If you see this,").
		Line("printer is ready!").
		Feed(3)

	b.Feed(2).
		Cut()

	return b.Bytes()
}
