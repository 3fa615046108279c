/*Package mate restores mate pairs between two FASTQ files whose reads
  have been filtered or reordered independently.

  Two reads are mates when their identifiers agree after the trailing
  pair marker ("/1", "_2", ".f", ...) is removed; see NormalizeID.

  Pairing is a two-pass external join. The left file is scanned once to
  build an Index from normalized identifier to the byte offset of the
  read. The right file is then streamed; for each right read with a
  mate, the left read is reloaded by seeking to its offset, and both are
  written to the paired outputs. Right reads without a mate go to the
  right single output. Finally every left read that was never matched is
  reloaded and written to the left single output.

  Only identifiers and offsets are held in memory, so memory use is
  proportional to the number of left reads times the identifier length,
  not to the size of the files. The price is one seek per paired read
  and one per unpaired left read, and the requirement that the left
  input be seekable (in particular, not gzip compressed).

  Ordering of the outputs:

    - right paired and right single follow the order of the right file.
    - left paired follows the order of the right file, i.e. read i of
      the left paired output is the mate of read i of the right paired
      output.
    - left single follows Index order (bucket, then most recent
      insertion first), not the order of the left file.
*/
package mate
