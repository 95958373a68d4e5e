package debruijn

import (
	"fmt"
	"io"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/pkg/errors"
)

// writeContigs writes the contigs to w as FASTA. The i-th record is
// named contig_<i> with a len=<length> description and its sequence
// wrapped at width columns
func writeContigs(w io.Writer, contigs []Contig, width int) error {
	fw := fasta.NewWriter(w, width)
	for i, c := range contigs {
		letters := make([]alphabet.Letter, len(c.Seq))
		for j := range c.Seq {
			letters[j] = alphabet.Letter(c.Seq[j])
		}

		s := linear.NewSeq(fmt.Sprintf("contig_%d", i), letters, alphabet.DNA)
		s.Annotation.SetDescription(fmt.Sprintf("len=%d", c.Length))
		if _, err := fw.Write(s); err != nil {
			return errors.Wrapf(err, "failed to write contig_%d", i)
		}
	}
	return nil
}

// saveContigs writes the contig FASTA to path, overwriting whatever is
// already there
func saveContigs(path string, contigs []Contig, width int) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create contigs file %s", path)
	}
	if err := writeContigs(f, contigs, width); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
