package ipnetwork

import (
	"encoding/binary"
	"math/bits"
)

// uint128 represents an unsigned 128-bit integer as two 64-bit halves.
type uint128 struct {
	hi uint64
	lo uint64
}

func uint128From16(b [16]byte) uint128 {
	return uint128{
		hi: binary.BigEndian.Uint64(b[:8]),
		lo: binary.BigEndian.Uint64(b[8:]),
	}
}

func (u uint128) to16() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], u.hi)
	binary.BigEndian.PutUint64(b[8:], u.lo)
	return b
}

func (u uint128) isZero() bool {
	return u.hi|u.lo == 0
}

func (u uint128) and(m uint128) uint128 {
	return uint128{hi: u.hi & m.hi, lo: u.lo & m.lo}
}

func (u uint128) or(m uint128) uint128 {
	return uint128{hi: u.hi | m.hi, lo: u.lo | m.lo}
}

func (u uint128) not() uint128 {
	return uint128{hi: ^u.hi, lo: ^u.lo}
}

func (u uint128) compare(v uint128) int {
	switch {
	case u.hi != v.hi:
		if u.hi < v.hi {
			return -1
		}
		return 1
	case u.lo != v.lo:
		if u.lo < v.lo {
			return -1
		}
		return 1
	default:
		return 0
	}
}

func (u uint128) less(v uint128) bool {
	return u.compare(v) < 0
}

// add returns u+v and whether the sum wrapped around 2^128.
func (u uint128) add(v uint128) (uint128, bool) {
	lo, carry := bits.Add64(u.lo, v.lo, 0)
	hi, carry := bits.Add64(u.hi, v.hi, carry)
	return uint128{hi: hi, lo: lo}, carry != 0
}

// addOne returns u+1 and whether the increment wrapped around 2^128.
func (u uint128) addOne() (uint128, bool) {
	return u.add(uint128{lo: 1})
}

// hostSpan128 returns 2^(128-cidr)-1: the offset from a block's base
// address to its last address, which is also the mask of its host bits.
func hostSpan128(cidr uint8) uint128 {
	hostBits := 128 - int(cidr)
	switch {
	case hostBits >= 128:
		return uint128{hi: ^uint64(0), lo: ^uint64(0)}
	case hostBits >= 64:
		return uint128{hi: 1<<(hostBits-64) - 1, lo: ^uint64(0)}
	default:
		return uint128{lo: 1<<hostBits - 1}
	}
}

// hostSpan32 is the 32-bit counterpart of hostSpan128. The result is a
// uint64 so that a /0 block needs no special casing.
func hostSpan32(cidr uint8) uint64 {
	return 1<<(32-uint64(cidr)) - 1
}
