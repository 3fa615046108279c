package mate

import (
	"bytes"
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

func TestHash(t *testing.T) {
	expect.EQ(t, Hash(""), uint32(0))
	expect.EQ(t, Hash("a"), uint32(97))
	expect.EQ(t, Hash("ab"), uint32(97*31+98))
	// Long strings wrap around in 32 bits.
	var want uint32
	id := "NB500956:89:HW2FHBGX2:1:11101:25648:1069/"
	for i := 0; i < len(id); i++ {
		want = want*31 + uint32(id[i])
	}
	expect.EQ(t, Hash(id), want)
}

func TestNewIndexSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		_, err := NewIndex(size)
		expect.NotNil(t, err, "size %d", size)
	}
	if strconv.IntSize == 64 {
		// A table this large is rejected before anything is allocated.
		tooLarge := int64(math.MaxUint32) + 1
		for _, size := range []int64{tooLarge, tooLarge + 7} {
			_, err := NewIndex(int(size))
			assert.NotNil(t, err, "size %d", size)
			expect.HasSubstr(t, err.Error(), "must be at most")
		}
	}
	x, err := NewIndex(7)
	assert.NoError(t, err)
	expect.EQ(t, x.Size(), 7)
	expect.EQ(t, x.Len(), 0)
}

func unmatched(t *testing.T, x *Index) []int64 {
	var offsets []int64
	assert.NoError(t, x.Unmatched(func(off int64) error {
		offsets = append(offsets, off)
		return nil
	}))
	return offsets
}

func TestIndexLookup(t *testing.T) {
	x, err := NewIndex(1)
	assert.NoError(t, err)
	x.Insert("r1/", 0)
	x.Insert("r2/", 10)
	x.Insert("r3/", 20)
	expect.EQ(t, x.Len(), 3)
	expect.EQ(t, x.BucketLen(0), 3)

	off, ok := x.Lookup("r2/")
	expect.True(t, ok)
	expect.EQ(t, off, int64(10))
	_, ok = x.Lookup("r4/")
	expect.False(t, ok)
	// Same hash bucket, different string.
	_, ok = x.Lookup("r2")
	expect.False(t, ok)

	// Most recent insertion first.
	expect.EQ(t, unmatched(t, x), []int64{20, 0})

	// Matched entries can be found again.
	off, ok = x.Lookup("r2/")
	expect.True(t, ok)
	expect.EQ(t, off, int64(10))
}

func TestIndexDuplicates(t *testing.T) {
	x, err := NewIndex(5)
	assert.NoError(t, err)
	x.Insert("dup", 0)
	x.Insert("other", 5)
	x.Insert("dup", 10)
	x.Insert("dup", 20)

	// The first inserted duplicate wins, and all of them are matched.
	off, ok := x.Lookup("dup")
	expect.True(t, ok)
	expect.EQ(t, off, int64(0))
	expect.EQ(t, unmatched(t, x), []int64{5})
}

func TestIndexUnmatchedOrder(t *testing.T) {
	// Hash("a")%3 == 1, Hash("b")%3 == 2, Hash("c")%3 == 0, Hash("d")%3 == 1.
	x, err := NewIndex(3)
	assert.NoError(t, err)
	for i, id := range []string{"a", "b", "c", "d"} {
		x.Insert(id, int64(i))
	}
	expect.EQ(t, unmatched(t, x), []int64{2, 3, 0, 1})
}

var errStop = errors.New("stop")

func TestIndexUnmatchedStops(t *testing.T) {
	x, err := NewIndex(3)
	assert.NoError(t, err)
	x.Insert("a", 0)
	x.Insert("b", 1)
	n := 0
	err = x.Unmatched(func(int64) error {
		n++
		return errStop
	})
	expect.EQ(t, err, errStop)
	expect.EQ(t, n, 1)
}

func TestWriteBucketCounts(t *testing.T) {
	x, err := NewIndex(3)
	assert.NoError(t, err)
	for i, id := range []string{"a", "b", "c", "d"} {
		x.Insert(id, int64(i))
	}
	var buf bytes.Buffer
	assert.NoError(t, x.WriteBucketCounts(&buf))
	expect.EQ(t, buf.String(), "Bucket sizes\n0\t1\n1\t2\n2\t1\n")
}
