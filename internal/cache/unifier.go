package cache

import "context"

// Cache is the unifier: one disk store fronted by two memory tiers (one
// per Kind). It composes DiskStore and MemLRU into a single read-through
// / write-through façade.
type Cache struct {
	disk *DiskStore

	pixels  *MemLRU[*Item]
	strings *MemLRU[*Item]

	logger  Logger
	metrics *Metrics
}

// NewCache wires a disk store and two byte-budgeted memory tiers
// together. Either capacity may be 0 for unbounded.
func NewCache(disk *DiskStore, pixelCapacityBytes, stringCapacityBytes int64, logger Logger, metrics *Metrics) (*Cache, error) {
	if logger == nil {
		logger = noopLogger{}
	}

	pixels, err := NewMemLRU[*Item](pixelCapacityBytes)
	if err != nil {
		return nil, err
	}
	strs, err := NewMemLRU[*Item](stringCapacityBytes)
	if err != nil {
		return nil, err
	}

	pixels.SetDiscardingOldest(func(key string, item *Item) {
		metrics.recordEviction(Pixels.String())
		logger.Log(LevelDebug, "evicting pixel item "+key)
	})
	strs.SetDiscardingOldest(func(key string, item *Item) {
		metrics.recordEviction(Strings.String())
		logger.Log(LevelDebug, "evicting string item "+key)
	})

	return &Cache{
		disk:    disk,
		pixels:  pixels,
		strings: strs,
		logger:  logger,
		metrics: metrics,
	}, nil
}

func (c *Cache) tierFor(kind Kind) *MemLRU[*Item] {
	if kind == Strings {
		return c.strings
	}
	return c.pixels
}

// Get runs the full read pipeline: memory lookup, disk load, optional
// decompress + post-process, mandatory buffer re-homing, memory
// insertion.
func (c *Cache) Get(ctx context.Context, kind Kind, topLevelID, cacheID string, rp *ReadPipeline) (*Item, error) {
	tier := c.tierFor(kind)

	if item, ok := tier.Get(cacheID); ok {
		c.metrics.recordHit("memory", kind.String())
		return item, nil
	}
	c.metrics.recordMiss("memory", kind.String())

	item, ok := c.disk.Get(kind, topLevelID, cacheID)
	if !ok {
		c.metrics.recordMiss("disk", kind.String())
		return nil, nil
	}
	c.metrics.recordHit("disk", kind.String())

	if rp != nil {
		// Only a Pixels read ever borrows the disk tier's scratch buffer;
		// hold onto the original reference so it can be released back to
		// the pool once rehome has copied out of it, however many
		// transforms run in between.
		var scratch []byte
		if kind == Pixels {
			scratch = item.Data
		}

		if item.IsCompressed {
			if rp.Decompressor == nil {
				return nil, ErrDecompressorMissing
			}
			decompressed, err := rp.Decompressor(item.Data, item.DeclaredSize)
			if err != nil {
				return nil, err
			}
			item.Data = decompressed
			item.DeclaredSize = int64(len(decompressed))
			item.IsCompressed = false
		}

		if rp.PostProcessor != nil {
			processed, err := rp.PostProcessor(item.Data)
			if err != nil {
				return nil, err
			}
			item.Data = processed
			if rp.ConversionBufferSize != UnsetConversionBufferSize {
				item.DeclaredSize = rp.ConversionBufferSize
			}
		}

		c.rehome(tier, item, scratch)
	}

	tier.Add(cacheID, item)
	c.metrics.setResidentBytes(kind.String(), tier.CurrentBytes())
	return item, nil
}

// rehome replaces item.Data with an owned buffer, recycling an evicted
// item's backing array of matching size when one is available. This is
// a mandatory promotion step: the current item.Data may point at the
// disk tier's shared scratch buffer or at caller-supplied transform
// output, neither safe to retain past this call. scratch, when non-nil,
// is the original disk-tier buffer borrowed for this read; it is
// returned to the pool once its contents have been copied out.
func (c *Cache) rehome(tier *MemLRU[*Item], item *Item, scratch []byte) {
	n := item.DeclaredSize
	var dst []byte
	if recycled, ok := tier.PopOldestIfMatches(n); ok {
		dst = recycled.Data[:n]
	} else {
		dst = make([]byte, n)
	}
	copyN := n
	if int64(len(item.Data)) < copyN {
		copyN = int64(len(item.Data))
	}
	copy(dst[:copyN], item.Data[:copyN])
	item.Data = dst

	if scratch != nil {
		c.disk.releaseScratch(scratch)
	}
}

// Put writes a pixel item through to disk, falling back to a memory-only
// insert when the disk tier is disabled so the payload is not lost.
func (c *Cache) Put(ctx context.Context, topLevelID, cacheID string, item *Item) (PutResponse, error) {
	resp, err := c.disk.PutBytes(topLevelID, cacheID, item)
	if err != nil {
		return resp, err
	}
	if resp == PutDisabled && item != nil && len(item.Data) > 0 {
		c.pixels.Add(cacheID, item.clone())
		c.metrics.setResidentBytes(Pixels.String(), c.pixels.CurrentBytes())
	}
	return resp, nil
}

// PutString writes a string item through to disk. There is no memory
// fallback here; the write-only fallback is reserved for pixel items.
func (c *Cache) PutString(ctx context.Context, topLevelID, cacheID string, item *Item) (PutResponse, error) {
	return c.disk.PutString(topLevelID, cacheID, item)
}

// PutMemory inserts directly into the pixel memory tier, bypassing disk.
func (c *Cache) PutMemory(cacheID string, item *Item) {
	c.pixels.Add(cacheID, item)
	c.metrics.setResidentBytes(Pixels.String(), c.pixels.CurrentBytes())
}

// GetMemory performs a memory-only lookup; it never escalates to disk.
func (c *Cache) GetMemory(cacheID string) (*Item, bool) {
	return c.pixels.Get(cacheID)
}

// IsCachedToDisk delegates to the disk tier's status probe.
func (c *Cache) IsCachedToDisk(ctx context.Context, kind Kind, topLevelID, cacheID string) bool {
	return c.disk.IsCached(kind, topLevelID, cacheID)
}

// ClearCachedToDisk invalidates the disk status entry for cacheID.
func (c *Cache) ClearCachedToDisk(cacheID string) {
	c.disk.ClearIsCached(cacheID)
}

// ClearFromMemory removes cacheID from the given kind's memory tier.
func (c *Cache) ClearFromMemory(kind Kind, cacheID string) {
	c.tierFor(kind).Remove(cacheID)
}
