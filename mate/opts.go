package mate

import "io"

// Opts controls a pairing run.
type Opts struct {
	// TableSize is the number of Index buckets. It only affects speed: a
	// table much smaller than the number of left reads makes lookups
	// scan long buckets. A prime is recommended.
	TableSize int
	// PrintBucketCounts causes the size of every Index bucket to be
	// written to BucketCounts once the left file has been indexed.
	PrintBucketCounts bool
	// BucketCounts receives the bucket sizes. If nil, os.Stdout is used.
	BucketCounts io.Writer
	// Verbose logs the normalized identifier of every left read.
	Verbose bool
	// Strict rejects malformed records (ID line not starting with '@',
	// line 3 not starting with '+', truncated final record) instead of
	// passing them through.
	Strict bool
}

// DefaultOpts sets the default values to Opts.
var DefaultOpts = Opts{
	TableSize:         100003,
	PrintBucketCounts: false,
	Verbose:           false,
	Strict:            false,
}
