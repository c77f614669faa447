package adapter

import (
	"fmt"
	"strconv"
	"strings"
)

// RFCOMM channels are numbered 1 through 30.
const (
	MinChannel = 1
	MaxChannel = 30
)

// ParseMAC parses a colon-separated Bluetooth device address
// ("DC:0D:30:CA:8D:4A") into the 6-byte form the kernel expects.
// sockaddr_rc carries the address little-endian, so the groups are
// stored in reverse order.
func ParseMAC(mac string) ([6]byte, error) {
	var addr [6]byte

	groups := strings.Split(mac, ":")
	if len(groups) != 6 {
		return addr, fmt.Errorf("invalid bluetooth address %q: expected 6 colon-separated groups", mac)
	}

	for i, g := range groups {
		if len(g) != 2 {
			return addr, fmt.Errorf("invalid bluetooth address %q: group %q is not two hex digits", mac, g)
		}
		b, err := strconv.ParseUint(g, 16, 8)
		if err != nil {
			return addr, fmt.Errorf("invalid bluetooth address %q: %w", mac, err)
		}
		addr[5-i] = byte(b)
	}

	return addr, nil
}

// ValidChannel reports whether ch is a usable RFCOMM channel number.
func ValidChannel(ch int) bool {
	return ch >= MinChannel && ch <= MaxChannel
}
