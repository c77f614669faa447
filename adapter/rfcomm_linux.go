//go:build linux

package adapter

import (
	"fmt"
	"sync"

	"golang.org/x/sys/unix"
)

var _ Adapter = (*RFCOMMAdapter)(nil)

// RFCOMMAdapter manages a Bluetooth RFCOMM stream socket to a printer
type RFCOMMAdapter struct {
	mac     string
	addr    [6]byte
	channel uint8
	fd      int
	isOpen  bool
	mu      sync.Mutex
}

// NewRFCOMMAdapter creates a new RFCOMM adapter for the printer at the
// given Bluetooth MAC address and channel. The address and channel are
// validated here; no socket is created until Open.
func NewRFCOMMAdapter(mac string, channel int) (*RFCOMMAdapter, error) {
	addr, err := ParseMAC(mac)
	if err != nil {
		return nil, err
	}
	if !ValidChannel(channel) {
		return nil, fmt.Errorf("rfcomm channel %d out of range %d..%d", channel, MinChannel, MaxChannel)
	}

	return &RFCOMMAdapter{
		mac:     mac,
		addr:    addr,
		channel: uint8(channel),
		fd:      -1,
	}, nil
}

// Open creates the RFCOMM socket and connects to the printer
func (a *RFCOMMAdapter) Open() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.isOpen {
		return ErrAlreadyOpen
	}

	fd, err := unix.Socket(unix.AF_BLUETOOTH, unix.SOCK_STREAM, unix.BTPROTO_RFCOMM)
	if err != nil {
		return fmt.Errorf("failed to create rfcomm socket: %w", err)
	}

	sa := &unix.SockaddrRFCOMM{
		Addr:    a.addr,
		Channel: a.channel,
	}

	if err := unix.Connect(fd, sa); err != nil {
		unix.Close(fd)
		return fmt.Errorf("failed to connect to %s on channel %d: %w", a.mac, a.channel, err)
	}

	a.fd = fd
	a.isOpen = true

	return nil
}

// Write sends data to the printer
func (a *RFCOMMAdapter) Write(data []byte) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.isOpen {
		return 0, ErrNotOpen
	}

	n, err := unix.Write(a.fd, data)
	if err != nil {
		return n, fmt.Errorf("write failed: %w", err)
	}

	return n, nil
}

// Read reads data from the printer
func (a *RFCOMMAdapter) Read(buf []byte) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.isOpen {
		return 0, ErrNotOpen
	}

	n, err := unix.Read(a.fd, buf)
	if err != nil {
		return n, fmt.Errorf("read failed: %w", err)
	}

	return n, nil
}

// Close closes the socket
func (a *RFCOMMAdapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.isOpen {
		return nil
	}

	err := unix.Close(a.fd)
	a.fd = -1
	a.isOpen = false

	if err != nil {
		return fmt.Errorf("close failed: %w", err)
	}

	return nil
}

// IsOpen returns whether the socket is connected
func (a *RFCOMMAdapter) IsOpen() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.isOpen
}

// MAC returns the printer address this adapter targets
func (a *RFCOMMAdapter) MAC() string {
	return a.mac
}

// Channel returns the RFCOMM channel this adapter targets
func (a *RFCOMMAdapter) Channel() int {
	return int(a.channel)
}
