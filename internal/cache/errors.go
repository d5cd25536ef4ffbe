package cache

import "errors"

// ErrConfigInvalid is returned from constructors when the supplied
// configuration is self-contradictory (negative capacity, etc). It is
// the only error class that surfaces at construction time; everything
// else is absorbed and reported through PutResponse or an absent read.
var ErrConfigInvalid = errors.New("cache: invalid configuration")

// ErrDecompressorMissing is returned by Cache.Get when an item read back
// compressed from disk has no decompressor configured in its
// ReadPipeline. Unlike disk IO errors, this indicates a caller
// programming error rather than an environmental failure, so it
// propagates instead of being swallowed into "absent".
var ErrDecompressorMissing = errors.New("cache: compressed item read with no decompressor configured")

// PutResponse is the outcome of a disk (or memory-fallback) write.
type PutResponse int

const (
	// PutSuccess means the payload was written to disk.
	PutSuccess PutResponse = iota
	// PutDisabled means the disk tier is off; callers of Cache.Put see
	// this after the memory-fallback branch has already run.
	PutDisabled
	// PutInvalidData means the key was empty or the payload had no bytes.
	PutInvalidData
	// PutError means an IO failure occurred while writing.
	PutError
)

func (r PutResponse) String() string {
	switch r {
	case PutSuccess:
		return "success"
	case PutDisabled:
		return "disabled"
	case PutInvalidData:
		return "invalid_data"
	case PutError:
		return "error"
	default:
		return "unknown"
	}
}
