package huffman

import (
	"container/heap"
	"fmt"

	"github.com/FitrahHaque/compfile/compressor"
)

// maxCodeLength bounds the depth of the tree. With 32-bit frequencies and at
// most 256 symbols no optimal tree can get this deep.
const maxCodeLength = 64

type huffmanTree interface {
	getFrequency() uint64
	getId() int
}

type huffmanLeaf struct {
	freq   uint64
	id     int
	symbol byte
}

// huffmanNode is an internal node. right is nil only for the synthetic parent
// of a single-symbol tree.
type huffmanNode struct {
	freq        uint64
	id          int
	left, right huffmanTree
}

type huffmanHeap []huffmanTree

type code struct {
	bits   uint64
	length int
}

func (hub *huffmanHeap) Push(item any) {
	*hub = append(*hub, item.(huffmanTree))
}

func (hub *huffmanHeap) Pop() any {
	popped := (*hub)[len(*hub)-1]
	(*hub) = (*hub)[:len(*hub)-1]
	return popped
}

func (hub huffmanHeap) Len() int {
	return len(hub)
}

// Less orders by frequency, then leaves before internal nodes, then by
// creation order so equal inputs always build the same tree.
func (hub huffmanHeap) Less(i, j int) bool {
	if hub[i].getFrequency() != hub[j].getFrequency() {
		return hub[i].getFrequency() < hub[j].getFrequency()
	}
	_, iLeaf := hub[i].(*huffmanLeaf)
	_, jLeaf := hub[j].(*huffmanLeaf)
	if iLeaf != jLeaf {
		return iLeaf
	}
	return hub[i].getId() < hub[j].getId()
}

func (hub huffmanHeap) Swap(i, j int) {
	hub[i], hub[j] = hub[j], hub[i]
}

func (leaf *huffmanLeaf) getId() int {
	return leaf.id
}

func (leaf *huffmanLeaf) getFrequency() uint64 {
	return leaf.freq
}

func (node *huffmanNode) getFrequency() uint64 {
	return node.freq
}

func (node *huffmanNode) getId() int {
	return node.id
}

// buildTree builds the prefix tree for a 256-entry frequency table. Symbols
// with a zero count get no leaf.
func buildTree(symbolFreq *[256]uint64) (huffmanTree, error) {
	var treehub huffmanHeap
	monoId := 0
	for symbol, freq := range symbolFreq {
		if freq == 0 {
			continue
		}
		treehub = append(treehub, &huffmanLeaf{
			freq:   freq,
			symbol: byte(symbol),
			id:     monoId,
		})
		monoId++
	}
	switch treehub.Len() {
	case 0:
		return nil, fmt.Errorf("%w: no symbol has a non-zero count", compressor.ErrInvalidFrequencyTable)
	case 1:
		return &huffmanNode{
			freq: treehub[0].getFrequency(),
			left: treehub[0],
			id:   monoId,
		}, nil
	}
	heap.Init(&treehub)
	for treehub.Len() > 1 {
		x := heap.Pop(&treehub).(huffmanTree)
		y := heap.Pop(&treehub).(huffmanTree)
		heap.Push(&treehub, &huffmanNode{
			freq:  x.getFrequency() + y.getFrequency(),
			left:  x,
			right: y,
			id:    monoId,
		})
		monoId++
	}
	return heap.Pop(&treehub).(huffmanTree), nil
}

// getSymbolEncoding walks the tree depth first, appending 0 for a left edge
// and 1 for a right edge. It uses an explicit stack rather than recursion.
func getSymbolEncoding(root huffmanTree) ([256]code, error) {
	var symbolEnc [256]code
	type frame struct {
		tree   huffmanTree
		prefix uint64
		depth  int
	}
	stack := []frame{{tree: root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch i := f.tree.(type) {
		case *huffmanLeaf:
			if f.depth == 0 {
				symbolEnc[i.symbol] = code{bits: 0, length: 1}
				continue
			}
			symbolEnc[i.symbol] = code{bits: f.prefix, length: f.depth}
		case *huffmanNode:
			if f.depth >= maxCodeLength {
				return symbolEnc, fmt.Errorf("%w: code longer than %d bits", compressor.ErrInvalidFrequencyTable, maxCodeLength)
			}
			if i.right != nil {
				stack = append(stack, frame{tree: i.right, prefix: f.prefix<<1 | 1, depth: f.depth + 1})
			}
			if i.left != nil {
				stack = append(stack, frame{tree: i.left, prefix: f.prefix << 1, depth: f.depth + 1})
			}
		}
	}
	return symbolEnc, nil
}
