// Package endian provides byte order detection and utilities for the
// host-native wire layout produced by packbuf.
//
// The packing engine copies value representations verbatim, so the byte
// order of every scalar and count prefix is whatever the host CPU uses.
// This package makes that order observable: consumers that need to decode
// a packed region independently (tests, the mirrored unpack engine, tools
// inspecting stored regions) obtain the matching binary.ByteOrder through
// Native instead of hard-coding an endianness.
//
// # Usage
//
//	engine := endian.Native()
//	count := engine.Uint64(region[:8])
//
// All functions are safe for concurrent use; the returned engines are the
// stateless binary.LittleEndian / binary.BigEndian values.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface for convenient byte order operations. It is
// satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. A little-endian host stores the LSB (0x00) first,
	// a big-endian host stores the MSB (0x01) first.
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// Native returns the engine matching the host byte order. Packed regions
// must be decoded with this engine on the machine that produced them.
func Native() EndianEngine {
	if IsNativeBigEndian() {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// IsNativeBigEndian reports whether the host is big-endian.
func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}
