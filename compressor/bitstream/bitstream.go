// Package bitstream implements the growable bit buffer the codecs use as their
// on-the-wire representation. Bits are written and read most significant
// bit first.
package bitstream

// BitStream is an append-only bit buffer with an independent read cursor.
// A BitStream is owned by a single codec call and is not safe for concurrent
// use.
type BitStream struct {
	buffer []byte
	// write cursor
	bytePos int
	bitPos  uint
	// read cursor
	readBytePos int
	readBitPos  uint
	// limit is the number of readable bytes.
	limit int
}

// New returns an empty BitStream whose buffer starts with the given capacity.
func New(capacity int) *BitStream {
	if capacity < 1 {
		capacity = 1
	}
	return &BitStream{buffer: make([]byte, capacity)}
}

// FromBytes returns a BitStream positioned for reading b. The bytes are copied
// so later writes never alias the caller's slice.
func FromBytes(b []byte) *BitStream {
	bs := New(len(b))
	copy(bs.buffer, b)
	bs.bytePos = len(b)
	bs.limit = len(b)
	return bs
}

func (bs *BitStream) grow() {
	bigger := make([]byte, 2*len(bs.buffer))
	copy(bigger, bs.buffer)
	bs.buffer = bigger
}

// WriteBits appends the lowest n bits of value. n must be in [1, 32];
// anything else is ignored.
func (bs *BitStream) WriteBits(value uint32, n int) {
	if n <= 0 || n > 32 {
		return
	}
	for i := n - 1; i >= 0; i-- {
		if bs.bytePos >= len(bs.buffer) {
			bs.grow()
		}
		if (value>>uint(i))&1 == 1 {
			bs.buffer[bs.bytePos] |= 1 << (7 - bs.bitPos)
		}
		bs.bitPos++
		if bs.bitPos == 8 {
			bs.bitPos = 0
			bs.bytePos++
		}
	}
	bs.limit = bs.bytePos
	if bs.bitPos > 0 {
		bs.limit++
	}
}

// FlushPad pads the stream with zero bits up to the next byte boundary.
func (bs *BitStream) FlushPad() {
	if bs.bitPos > 0 {
		bs.WriteBits(0, int(8-bs.bitPos))
	}
}

// Bytes returns the written bytes, including a trailing partial byte if the
// stream has not been padded. The slice is a copy.
func (bs *BitStream) Bytes() []byte {
	out := make([]byte, bs.limit)
	copy(out, bs.buffer[:bs.limit])
	return out
}

// Len is the number of bits written.
func (bs *BitStream) Len() int {
	return bs.bytePos*8 + int(bs.bitPos)
}

// ReadBits extracts the next n bits (n in [1, 32]) starting at the read
// cursor. Bits past the end of the stream read as zero; check Remaining
// before trusting the result.
func (bs *BitStream) ReadBits(n int) uint32 {
	if n <= 0 || n > 32 {
		return 0
	}
	var result uint32
	for i := 0; i < n; i++ {
		var bit uint32
		if bs.readBytePos < bs.limit {
			bit = uint32(bs.buffer[bs.readBytePos]>>(7-bs.readBitPos)) & 1
			bs.readBitPos++
			if bs.readBitPos == 8 {
				bs.readBitPos = 0
				bs.readBytePos++
			}
		}
		result = result<<1 | bit
	}
	return result
}

// Remaining is the number of unread bits, counting the whole readable region
// (padding included).
func (bs *BitStream) Remaining() int {
	r := (bs.limit-bs.readBytePos)*8 - int(bs.readBitPos)
	if r < 0 {
		return 0
	}
	return r
}
