package mate

import (
	"fmt"
	"io"
	"math"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/tsv"
)

// Hash computes the bucket hash of a normalized identifier:
// h = c + 31*h over the bytes of id, in uint32 arithmetic.
func Hash(id string) uint32 {
	var h uint32
	for i := 0; i < len(id); i++ {
		h = uint32(id[i]) + 31*h
	}
	return h
}

type indexEntry struct {
	id      string
	offset  int64
	matched bool
}

// Index maps normalized identifiers of left reads to their byte offsets
// in the left file. It is a fixed-size chained hash table; it never
// resizes. Each bucket lists its entries most recently inserted first.
//
// An Index is not threadsafe.
type Index struct {
	// buckets[i] holds the entries that hash to i in insertion order;
	// list order is the reverse of the slice order.
	buckets [][]indexEntry
	n       int
}

// NewIndex creates an empty index with the given number of buckets.
func NewIndex(size int) (*Index, error) {
	if err := checkTableSize(size); err != nil {
		return nil, err
	}
	return &Index{buckets: make([][]indexEntry, size)}, nil
}

func checkTableSize(size int) error {
	if size <= 0 {
		return errors.E(errors.Invalid, fmt.Sprintf("index table size must be positive, got %d", size))
	}
	// Bucket numbers are computed modulo the size in uint32.
	if uint64(size) > math.MaxUint32 {
		return errors.E(errors.Invalid, fmt.Sprintf("index table size must be at most %d, got %d", uint64(math.MaxUint32), size))
	}
	return nil
}

func (x *Index) bucket(id string) int {
	return int(Hash(id) % uint32(len(x.buckets)))
}

// Insert adds an unmatched entry for a read with the given normalized
// identifier starting at offset. Duplicate identifiers each get their own
// entry.
func (x *Index) Insert(id string, offset int64) {
	b := x.bucket(id)
	x.buckets[b] = append(x.buckets[b], indexEntry{id: id, offset: offset})
	x.n++
}

// Lookup finds the left read for a right read with the given
// normalized identifier. Every entry with an equal identifier is marked
// matched. When the identifier occurs more than once, the offset of the
// last entry visited in list order is returned, which is the entry
// inserted first.
//
// Entries already matched are still found, so a right read sharing an
// identifier with an earlier right read pairs with the same left read.
func (x *Index) Lookup(id string) (offset int64, ok bool) {
	bucket := x.buckets[x.bucket(id)]
	for i := len(bucket) - 1; i >= 0; i-- {
		e := &bucket[i]
		if e.id == id {
			offset, ok = e.offset, true
			e.matched = true
		}
	}
	return offset, ok
}

// Unmatched calls fn with the offset of every entry never returned by
// Lookup, in bucket order and list order within a bucket. It stops at
// the first error returned by fn.
func (x *Index) Unmatched(fn func(offset int64) error) error {
	for _, bucket := range x.buckets {
		for i := len(bucket) - 1; i >= 0; i-- {
			if bucket[i].matched {
				continue
			}
			if err := fn(bucket[i].offset); err != nil {
				return err
			}
		}
	}
	return nil
}

// Len returns the number of entries.
func (x *Index) Len() int { return x.n }

// Size returns the number of buckets.
func (x *Index) Size() int { return len(x.buckets) }

// BucketLen returns the number of entries in bucket i.
func (x *Index) BucketLen(i int) int { return len(x.buckets[i]) }

// WriteBucketCounts writes a "Bucket sizes" header followed by one
// "<bucket>\t<entries>" row per bucket.
func (x *Index) WriteBucketCounts(w io.Writer) error {
	out := tsv.NewWriter(w)
	out.WriteString("Bucket sizes")
	if err := out.EndLine(); err != nil {
		return err
	}
	for i := 0; i < x.Size(); i++ {
		out.WriteUint32(uint32(i))
		out.WriteUint32(uint32(x.BucketLen(i)))
		if err := out.EndLine(); err != nil {
			return err
		}
	}
	return out.Flush()
}
