/*Command bio-fastq-pair restores mate pairs between two FASTQ files.

  Reads are paired when their identifiers are equal after removing a
  trailing "/1", "/2", "/f", "/r" (or the same with '_' or '.'). For
  inputs left.fq and right.fq, four files are written:

    left.fq.paired.fq    left reads with a mate, in right file order
    right.fq.paired.fq   right reads with a mate
    left.fq.single.fq    left reads without a mate
    right.fq.single.fq   right reads without a mate

  The left file is indexed in memory by identifier and byte offset, so
  both inputs must be uncompressed, seekable files. Gzipped inputs are
  rejected.

  Usage: bio-fastq-pair [-table-size=100003] [-print-bucket-counts] [-verbose] left.fq right.fq

  -table-size should be close to the number of reads in the left file;
  only speed, not the result, depends on it. -print-bucket-counts shows
  how evenly the identifiers spread over the table.
*/
package main
