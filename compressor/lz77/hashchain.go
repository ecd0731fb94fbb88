package lz77

const (
	hashBits      = 16
	hashTableSize = 1 << hashBits
	noPosition    = -1
)

// Candidates examined per search, indexed by level.
var maxChainByLevel = [...]int{0, 4, 8, 16, 32, 64, 128, 256, 1024, 4096}

// hashChain indexes every inserted position by the hash of its 3-byte
// prefix. head holds the newest position per hash and prev links each
// position to the previous one with the same hash, so a chain always runs
// from newer to older positions. It belongs to a single Compress call.
type hashChain struct {
	head     []int32
	prev     []int32
	maxChain int
}

func newHashChain(size int, maxChain int) *hashChain {
	h := &hashChain{
		head:     make([]int32, hashTableSize),
		prev:     make([]int32, size),
		maxChain: maxChain,
	}
	for i := range h.head {
		h.head[i] = noPosition
	}
	return h
}

func hash3(b []byte) uint32 {
	return (uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])) * 0x1e35a7bd >> (32 - hashBits)
}

// insert records pos; the caller guarantees three bytes are available there.
func (h *hashChain) insert(content []byte, pos int) {
	key := hash3(content[pos:])
	h.prev[pos] = h.head[key]
	h.head[key] = int32(pos)
}

// findLongestMatch searches the chain of pos, which must already have been
// inserted, for the longest earlier run equal to the bytes at pos. It returns
// a zero length when nothing reaches MinMatchLength.
func (h *hashChain) findLongestMatch(content []byte, pos int) (distance, length int) {
	maxLength := min(MaxMatchLength, len(content)-pos)
	if maxLength < MinMatchLength {
		return 0, 0
	}
	candidate := h.prev[pos]
	for chain := h.maxChain; candidate != noPosition && chain > 0; chain-- {
		d := pos - int(candidate)
		// positions further down the chain are older still
		if d > MaxDistance {
			break
		}
		n := matchLength(content, int(candidate), pos, maxLength)
		if n > length {
			distance, length = d, n
			if n == maxLength {
				break
			}
		}
		candidate = h.prev[candidate]
	}
	if length < MinMatchLength {
		return 0, 0
	}
	return distance, length
}

// matchLength compares byte by byte; the source run may overlap pos.
func matchLength(content []byte, from, pos, maxLength int) int {
	n := 0
	for n < maxLength && content[from+n] == content[pos+n] {
		n++
	}
	return n
}
