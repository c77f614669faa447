//go:build !linux

package adapter

import "fmt"

var _ Adapter = (*RFCOMMAdapter)(nil)

// RFCOMMAdapter is a compatibility type for non-Linux platforms.
// AF_BLUETOOTH stream sockets are Linux-only; the constructor still
// validates its arguments so configuration errors surface everywhere.
type RFCOMMAdapter struct {
	mac     string
	channel uint8
}

// NewRFCOMMAdapter validates the address and channel but the resulting
// adapter cannot be opened on this platform.
func NewRFCOMMAdapter(mac string, channel int) (*RFCOMMAdapter, error) {
	if _, err := ParseMAC(mac); err != nil {
		return nil, err
	}
	if !ValidChannel(channel) {
		return nil, fmt.Errorf("rfcomm channel %d out of range %d..%d", channel, MinChannel, MaxChannel)
	}

	return &RFCOMMAdapter{mac: mac, channel: uint8(channel)}, nil
}

// Open always fails on non-Linux platforms
func (a *RFCOMMAdapter) Open() error {
	return ErrNotSupported
}

// Write always fails on non-Linux platforms
func (a *RFCOMMAdapter) Write(data []byte) (int, error) {
	return 0, ErrNotOpen
}

// Read always fails on non-Linux platforms
func (a *RFCOMMAdapter) Read(buf []byte) (int, error) {
	return 0, ErrNotOpen
}

// Close is a no-op on non-Linux platforms
func (a *RFCOMMAdapter) Close() error {
	return nil
}

// IsOpen always returns false on non-Linux platforms
func (a *RFCOMMAdapter) IsOpen() bool {
	return false
}

// MAC returns the printer address this adapter targets
func (a *RFCOMMAdapter) MAC() string {
	return a.mac
}

// Channel returns the RFCOMM channel this adapter targets
func (a *RFCOMMAdapter) Channel() int {
	return int(a.channel)
}
