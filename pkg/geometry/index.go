package geometry

import "fmt"

// maxUint16Vertices is the first vertex count whose indices no longer fit
// in 16 bits.
const maxUint16Vertices = 64 * 1024

// IndexDatatype is the integer width of an index buffer.
type IndexDatatype int

const (
	Uint16 IndexDatatype = iota
	Uint32
)

// IndexDatatypeFor returns the narrowest datatype able to address
// numVertices vertices.
func IndexDatatypeFor(numVertices int) IndexDatatype {
	if numVertices >= maxUint16Vertices {
		return Uint32
	}
	return Uint16
}

// Size returns the size of one index in bytes.
func (d IndexDatatype) Size() int {
	if d == Uint32 {
		return 4
	}
	return 2
}

func (d IndexDatatype) String() string {
	switch d {
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	default:
		return fmt.Sprintf("IndexDatatype(%d)", int(d))
	}
}

// IndexBuffer is a fixed-length index list whose storage width is chosen
// from the vertex count at construction.
type IndexBuffer struct {
	datatype IndexDatatype
	u16      []uint16
	u32      []uint32
}

// NewIndexBuffer allocates exactly numIndices indices addressing numVertices
// vertices.
func NewIndexBuffer(numVertices, numIndices int) *IndexBuffer {
	ib := &IndexBuffer{datatype: IndexDatatypeFor(numVertices)}
	if ib.datatype == Uint32 {
		ib.u32 = make([]uint32, numIndices)
	} else {
		ib.u16 = make([]uint16, numIndices)
	}
	return ib
}

// Datatype returns the storage width.
func (ib *IndexBuffer) Datatype() IndexDatatype {
	return ib.datatype
}

// Len returns the number of indices.
func (ib *IndexBuffer) Len() int {
	if ib.datatype == Uint32 {
		return len(ib.u32)
	}
	return len(ib.u16)
}

// Set stores index v at position i. Out of range positions panic like any
// slice access.
func (ib *IndexBuffer) Set(i int, v uint32) {
	if ib.datatype == Uint32 {
		ib.u32[i] = v
		return
	}
	ib.u16[i] = uint16(v)
}

// At returns the index at position i.
func (ib *IndexBuffer) At(i int) uint32 {
	if ib.datatype == Uint32 {
		return ib.u32[i]
	}
	return uint32(ib.u16[i])
}

// Uint16 returns the backing slice of a Uint16 buffer, nil otherwise.
func (ib *IndexBuffer) Uint16() []uint16 {
	return ib.u16
}

// Uint32 returns the backing slice of a Uint32 buffer, nil otherwise.
func (ib *IndexBuffer) Uint32() []uint32 {
	return ib.u32
}
