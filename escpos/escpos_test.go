package escpos

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilderInit(t *testing.T) {
	b := New().Init()
	assert.Equal(t, []byte{0x1B, '@'}, b.Bytes())
}

func TestBuilderAlign(t *testing.T) {
	testCases := []struct {
		name string
		n    byte
		want []byte
	}{
		{"Left", AlignLeft, []byte{0x1B, 'a', 0x00}},
		{"Center", AlignCenter, []byte{0x1B, 'a', 0x01}},
		{"Right", AlignRight, []byte{0x1B, 'a', 0x02}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := New().Align(tc.n)
			assert.Equal(t, tc.want, b.Bytes())
		})
	}
}

func TestBuilderBold(t *testing.T) {
	assert.Equal(t, []byte{0x1B, 'E', 0x01}, New().Bold(true).Bytes())
	assert.Equal(t, []byte{0x1B, 'E', 0x00}, New().Bold(false).Bytes())
}

func TestBuilderMode(t *testing.T) {
	testCases := []struct {
		name string
		n    byte
		want []byte
	}{
		{"Normal", ModeNormal, []byte{0x1B, '!', 0x00}},
		{"DoubleWidth", ModeDoubleWidth, []byte{0x1B, '!', 0x20}},
		{"DoubleSize", ModeDoubleSize, []byte{0x1B, '!', 0x30}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := New().Mode(tc.n)
			assert.Equal(t, tc.want, b.Bytes())
		})
	}
}

func TestBuilderText(t *testing.T) {
	// Text appends raw bytes without a trailing feed; Line adds one
	assert.Equal(t, []byte("no feed"), New().Text("no feed").Bytes())
	assert.Equal(t, []byte("with feed\n"), New().Line("with feed").Bytes())
}

func TestBuilderCut(t *testing.T) {
	b := New().Cut()
	assert.Equal(t, []byte{0x1D, 'V', 0x01}, b.Bytes())
}

func TestBuilderFeed(t *testing.T) {
	b := New().Feed(3)
	assert.Equal(t, []byte("\n\n\n"), b.Bytes())

	b = New().Feed(0)
	assert.Equal(t, 0, b.Len())
}

func TestBuilderChaining(t *testing.T) {
	b := New().
		Init().
		Align(AlignCenter).
		Line("hello").
		Cut()

	want := append([]byte{0x1B, '@', 0x1B, 'a', 0x01}, []byte("hello\n")...)
	want = append(want, 0x1D, 'V', 0x01)
	assert.Equal(t, want, b.Bytes())
}

func TestTestPageStartsWithReset(t *testing.T) {
	page := TestPage("XP-V320M")
	assert.True(t, bytes.HasPrefix(page, []byte{0x1B, '@'}), "test page must start with ESC @")
}

func TestTestPageEndsWithCut(t *testing.T) {
	page := TestPage("XP-V320M")
	assert.True(t, bytes.HasSuffix(page, []byte{0x0A, 0x0A, 0x1D, 'V', 0x01}),
		"test page must end with line feeds and a partial cut")
}

func TestTestPageContent(t *testing.T) {
	page := TestPage("XP-V320M")

	assert.Contains(t, string(page), "TEST PRINT\n")
	assert.Contains(t, string(page), "FROM UBUNTU\n")
	assert.Contains(t, string(page), "Printer: XP-V320M\n")
	assert.Contains(t, string(page), "Status: Working!\n")
	assert.Contains(t, string(page), "If you see this,\n")
	assert.Contains(t, string(page), "printer is ready!\n")

	// Separator rule fits a 32-column receipt
	assert.Contains(t, string(page), "--------------------------------\n")
}

func TestTestPageFormattingOrder(t *testing.T) {
	page := TestPage("XP-V320M")

	// Header styling (center, double size, bold) precedes the header
	// text, and formatting is reset before the status lines.
	header := bytes.Index(page, []byte("TEST PRINT"))
	status := bytes.Index(page, []byte("Printer:"))
	center := bytes.Index(page, []byte{0x1B, 'a', 0x01})
	doubleSize := bytes.Index(page, []byte{0x1B, '!', 0x30})
	boldOn := bytes.Index(page, []byte{0x1B, 'E', 0x01})
	boldOff := bytes.Index(page, []byte{0x1B, 'E', 0x00})
	leftAlign := bytes.Index(page, []byte{0x1B, 'a', 0x00})

	assert.True(t, center < header)
	assert.True(t, doubleSize < header)
	assert.True(t, boldOn < header)
	assert.True(t, header < boldOff)
	assert.True(t, leftAlign < status)
	assert.True(t, boldOff < status)
}

func TestTestPagePrinterName(t *testing.T) {
	page := TestPage("TM-T88V")
	assert.Contains(t, string(page), "Printer: TM-T88V\n")
	assert.NotContains(t, string(page), "XP-V320M")
}
