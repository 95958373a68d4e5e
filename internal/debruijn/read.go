package debruijn

import (
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/io/seqio/fastq"
	"github.com/biogo/biogo/seq/linear"
	"github.com/pkg/errors"
)

// eachSequence streams the sequences in a FASTA or FASTQ file, gzip
// compressed or not, through fn in file order. Record ids and quality
// data are dropped and sequences are uppercased. The walk stops at the
// first error fn returns. The format is decided by file extension:
// .fastq and .fq parse as FASTQ, everything else as FASTA
func eachSequence(path string, fn func(seq string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "failed to open reads file %s", path)
	}
	defer f.Close()

	var r io.Reader = f
	name := strings.ToLower(path)
	if strings.HasSuffix(name, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return errors.Wrapf(err, "failed to decompress %s", path)
		}
		defer gz.Close()
		r = gz
		name = strings.TrimSuffix(name, ".gz")
	}

	if strings.HasSuffix(name, ".fastq") || strings.HasSuffix(name, ".fq") {
		return eachFastqSequence(r, path, fn)
	}
	return eachFastaSequence(r, path, fn)
}

// eachFastqSequence streams the reads of a FASTQ stream through fn
func eachFastqSequence(r io.Reader, path string, fn func(seq string) error) error {
	reader := fastq.NewReader(r, linear.NewQSeq("", nil, alphabet.DNA, alphabet.Sanger))
	for {
		s, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "failed to parse FASTQ in %s", path)
		}

		read := s.(*linear.QSeq)
		seq := make([]byte, len(read.Seq))
		for i, ql := range read.Seq {
			seq[i] = byte(ql.L)
		}
		if err := fn(strings.ToUpper(string(seq))); err != nil {
			return err
		}
	}
}

// eachFastaSequence streams the records of a FASTA stream through fn
func eachFastaSequence(r io.Reader, path string, fn func(seq string) error) error {
	reader := fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA))
	for {
		s, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "failed to parse FASTA in %s", path)
		}

		record := s.(*linear.Seq)
		seq := make([]byte, len(record.Seq))
		for i, l := range record.Seq {
			seq[i] = byte(l)
		}
		if err := fn(strings.ToUpper(string(seq))); err != nil {
			return err
		}
	}
}
