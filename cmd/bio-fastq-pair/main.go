package main

// See doc.go for documentation.

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/fastqpair/encoding/fastq"
	"github.com/grailbio/fastqpair/mate"
	"v.io/x/lib/cmdline"
)

const version = "0.4"

func newCmdPair() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "bio-fastq-pair",
		Short:    "Restore mate pairs between two FASTQ files",
		Long:     "Reads whose identifiers match after removing a trailing /1, /2, /f or /r are written to <input>.paired.fq; the rest to <input>.single.fq.",
		ArgsName: "left.fq right.fq",
	}
	opts := mate.DefaultOpts
	cmd.Flags.IntVar(&opts.TableSize, "table-size", mate.DefaultOpts.TableSize, "Number of hash table buckets. Ideally a prime near the number of left reads")
	cmd.Flags.BoolVar(&opts.PrintBucketCounts, "print-bucket-counts", false, "Print the number of reads in each hash table bucket")
	cmd.Flags.BoolVar(&opts.Verbose, "verbose", false, "Log every indexed identifier and the elapsed time")
	cmd.Flags.BoolVar(&opts.Strict, "strict", false, "Reject records whose ID line does not start with '@' or whose line 3 does not start with '+'")
	versionFlag := cmd.Flags.Bool("version", false, "Print the version and exit")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if *versionFlag {
			fmt.Fprintf(env.Stdout, "%s version %s\n", cmd.Name, version)
			return nil
		}
		if len(argv) != 2 {
			return fmt.Errorf("bio-fastq-pair takes two FASTQ paths, but got %v", argv)
		}
		ctx := vcontext.Background()
		return run(ctx, env.Stdout, env.Stderr, argv[0], argv[1], opts)
	})
	return cmd
}

// checkUncompressed fails if the file at path is gzipped, since the left
// file is read by seeking and the right file must be plain text too.
func checkUncompressed(ctx context.Context, path string) (err error) {
	f, err := file.Open(ctx, path)
	if err != nil {
		return errors.E(err, "open", path)
	}
	defer file.CloseAndReport(ctx, f, &err)
	gz, err := fastq.IsGzipped(f.Reader(ctx))
	if err != nil {
		return errors.E(err, path)
	}
	if gz {
		return errors.E(errors.NotSupported, fmt.Sprintf(
			"%s appears to be compressed with gzip. Random access to the reads is required, so please uncompress it first", path))
	}
	return nil
}

func run(ctx context.Context, stdout, stderr io.Writer, leftPath, rightPath string, opts mate.Opts) error {
	for _, path := range []string{leftPath, rightPath} {
		if err := checkUncompressed(ctx, path); err != nil {
			return err
		}
	}
	if opts.PrintBucketCounts && opts.BucketCounts == nil {
		opts.BucketCounts = stdout
	}
	paths := mate.OutputPaths(leftPath, rightPath)
	fmt.Fprintf(stdout, "Writing the paired reads to %s and %s.\nWriting the single reads to %s and %s\n",
		paths.LeftPaired, paths.RightPaired, paths.LeftSingle, paths.RightSingle)

	start := time.Now()
	stats, err := mate.PairFiles(ctx, leftPath, rightPath, opts)
	if err != nil {
		return err
	}
	fmt.Fprint(stderr, stats)
	if opts.Verbose {
		log.Printf("elapsed time: %v", time.Since(start))
	}
	return nil
}

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(newCmdPair())
}
