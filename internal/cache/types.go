// Package cache implements a two-tier content cache for opaque binary
// payloads (pixel buffers and UTF-8 text blobs) identified by stable
// string keys. A bounded in-memory LRU tier fronts a persistent disk
// tier; Cache unifies the two behind a single read-through / write-through
// façade.
package cache

// Kind selects the on-disk suffix, the memory tier, and the read
// allocation strategy for an Item.
type Kind int

const (
	// Pixels are raw or codec-compressed image pixel buffers.
	Pixels Kind = iota
	// Strings are UTF-8 text blobs, always gzip-framed on disk.
	Strings
)

func (k Kind) String() string {
	switch k {
	case Pixels:
		return "pixels"
	case Strings:
		return "string"
	default:
		return "unknown"
	}
}

// Sized is the constraint MemLRU requires of its stored values: each
// value must report its own accounting size in bytes.
type Sized interface {
	Size() int64
}

// Item is a single cache entry. Size may differ from len(Data) after a
// transform has run (see Cache.Get's post-process step); Data is always
// the current, authoritative payload.
type Item struct {
	Data         []byte
	DeclaredSize int64
	IsCompressed bool
	Kind         Kind
}

// Size implements Sized so Item can be stored directly in a MemLRU.
func (it *Item) Size() int64 {
	if it == nil {
		return 0
	}
	return it.DeclaredSize
}

// clone returns an Item with its own backing buffer, copying exactly
// DeclaredSize bytes (or len(Data) if DeclaredSize is larger than what's
// available, which should not happen in practice but is guarded against).
func (it *Item) clone() *Item {
	n := it.DeclaredSize
	if n > int64(len(it.Data)) {
		n = int64(len(it.Data))
	}
	buf := make([]byte, n)
	copy(buf, it.Data[:n])
	return &Item{
		Data:         buf,
		DeclaredSize: it.DeclaredSize,
		IsCompressed: it.IsCompressed,
		Kind:         it.Kind,
	}
}

// ReadPipeline is the per-read, caller-supplied context for the optional
// decompress + post-process step of Cache.Get. Either function may be
// nil. ConversionBufferSize overrides the item's declared size after
// PostProcess runs; UnsetConversionBufferSize means "leave size alone".
type ReadPipeline struct {
	Decompressor         func(data []byte, declaredSize int64) ([]byte, error)
	PostProcessor        func(data []byte) ([]byte, error)
	ConversionBufferSize int64
}

// UnsetConversionBufferSize is the sentinel for ReadPipeline.ConversionBufferSize
// meaning "do not override the item's size".
const UnsetConversionBufferSize int64 = -1
