package lights

import (
	"encoding/binary"
	"math/bits"
)

// bitPacker stores fixed width values back to back in a byte array. The
// lowest order bits are used, and the number of bits per value must be
// no more than 64 - 8 == 56.
type bitPacker struct {
	buf  []byte
	bits uint
	mask uint64
}

func newBitPacker(buf []byte, bits uint) bitPacker {
	return bitPacker{
		buf:  buf,
		bits: bits,
		mask: 1<<bits - 1,
	}
}

// packedSize is the number of bytes needed to hold n values of width bits.
func packedSize(n int, bits uint) int { return (n*int(bits) + 7) / 8 }

// joltageWidth is the number of bits needed for any value up to max. Values
// only shrink while solving, so the width of the initial maximum holds for
// every remaining vector.
func joltageWidth(vals []uint16) uint {
	var max uint16
	for _, v := range vals {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		return 1
	}
	return uint(bits.Len16(max))
}

func (bp *bitPacker) rawRead(n uint) uint64 {
	var tmp [8]byte
	copy(tmp[:], bp.buf[n:])
	return binary.LittleEndian.Uint64(tmp[:])
}

func (bp *bitPacker) rawWrite(n uint, val uint64) {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], val)
	copy(bp.buf[n:], tmp[:])
}

func (bp *bitPacker) Get(idx uint) uint64 {
	b := idx * bp.bits
	return bp.rawRead(b/8) >> (b % 8) & bp.mask
}

func (bp *bitPacker) Put(idx uint, val uint64) {
	b := idx * bp.bits
	n, o := b/8, b%8
	v := bp.rawRead(n)
	v &^= bp.mask << o
	v |= val & bp.mask << o
	bp.rawWrite(n, v)
}

// Key packs vals into the buffer and returns it as a string usable as a map
// key. The buffer must hold exactly len(vals) values.
func (bp *bitPacker) Key(vals []uint16) string {
	for i := range bp.buf {
		bp.buf[i] = 0
	}
	for i, v := range vals {
		bp.Put(uint(i), uint64(v))
	}
	return string(bp.buf)
}
