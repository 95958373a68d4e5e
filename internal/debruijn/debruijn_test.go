package debruijn

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Trysis/debruijn-tp/config"
)

func Test_assemble(t *testing.T) {
	dir := t.TempDir()

	in := filepath.Join(dir, "reads.fastq")
	if err := os.WriteFile(in, []byte(testFastq), 0644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "contigs.fasta")
	dot := filepath.Join(dir, "graph.dot")

	flags := &Flags{in: in, out: out, dot: dot}
	conf := &config.Config{KmerSize: 4, Seed: 9001, Wrap: 80}
	if err := assemble(flags, conf); err != nil {
		t.Fatalf("assemble() error = %v", err)
	}

	// the two overlapping reads assemble to a single contig
	fasta, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if want := ">contig_0 len=10"; !strings.Contains(string(fasta), want) {
		t.Errorf("assemble() output missing %q:\n%s", want, fasta)
	}
	if want := "AACCGGTTAA"; !strings.Contains(string(fasta), want) {
		t.Errorf("assemble() output missing %q:\n%s", want, fasta)
	}
	if strings.Contains(string(fasta), ">contig_1") {
		t.Errorf("assemble() wrote more than one contig:\n%s", fasta)
	}

	// the DOT rendering was asked for, so it was written too
	viz, err := os.ReadFile(dot)
	if err != nil {
		t.Fatal(err)
	}
	if want := "digraph debruijn"; !strings.Contains(string(viz), want) {
		t.Errorf("assemble() DOT output missing %q:\n%s", want, viz)
	}
}

func Test_assemble_deterministic(t *testing.T) {
	dir := t.TempDir()

	// a coverage tie the random source has to settle
	reads := `>read_1
AATGCA
>read_2
AATGGA
`
	in := filepath.Join(dir, "reads.fasta")
	if err := os.WriteFile(in, []byte(reads), 0644); err != nil {
		t.Fatal(err)
	}

	run := func(out string) string {
		conf := &config.Config{KmerSize: 4, Seed: 9001, Wrap: 80}
		if err := assemble(&Flags{in: in, out: filepath.Join(dir, out)}, conf); err != nil {
			t.Fatalf("assemble() error = %v", err)
		}
		b, err := os.ReadFile(filepath.Join(dir, out))
		if err != nil {
			t.Fatal(err)
		}
		return string(b)
	}

	first := run("first.fasta")
	second := run("second.fasta")
	if first != second {
		t.Errorf("assemble() with the same seed wrote %q then %q, want identical output", first, second)
	}
}

func Test_assemble_missingReads(t *testing.T) {
	dir := t.TempDir()

	flags := &Flags{
		in:  filepath.Join(dir, "nope.fastq"),
		out: filepath.Join(dir, "contigs.fasta"),
	}
	conf := &config.Config{KmerSize: 4, Seed: 9001, Wrap: 80}
	if err := assemble(flags, conf); err == nil {
		t.Error("assemble() error = nil for a missing reads file, want an error")
	}
}
