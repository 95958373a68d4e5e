// Package debruijn assembles contigs from short sequencing reads using
// a k-mer de Bruijn graph. The pipeline counts k-mers, builds a graph
// over their (k-1)-length overlaps, collapses sequencing-noise bubbles,
// trims weakly supported entry and exit tips, and writes every
// remaining source-to-sink path out as a FASTA contig.
package debruijn

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Trysis/debruijn-tp/config"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Flags are the command line arguments shared by the assembly commands
type Flags struct {
	// in is the path to the file of sequencing reads
	in string

	// out is the path the contig FASTA is written to
	out string

	// dot is an optional path for a Graphviz rendering of the
	// simplified graph, skipped when empty
	dot string
}

// parseCmdFlags reads the files off the command's flag set and the
// settings out of viper
func parseCmdFlags(cmd *cobra.Command) (*Flags, *config.Config, error) {
	in, err := cmd.Flags().GetString("in")
	if err != nil || in == "" {
		return nil, nil, errors.New("no reads file, pass one with --in")
	}
	out, _ := cmd.Flags().GetString("out")
	dot, _ := cmd.Flags().GetString("dot")

	conf := config.New()
	if conf.KmerSize < 1 {
		return nil, nil, errors.Errorf("k-mer size must be a positive integer, got %d", conf.KmerSize)
	}

	return &Flags{in: in, out: out, dot: dot}, conf, nil
}

// AssembleCmd runs the full assembly pipeline. It is the cobra handler
// behind `debruijn assemble`
func AssembleCmd(cmd *cobra.Command, args []string) error {
	flags, conf, err := parseCmdFlags(cmd)
	if err != nil {
		return err
	}
	return assemble(flags, conf)
}

// assemble runs the pipeline end to end: count k-mers, build the
// graph, simplify it, and write the contigs, plus the DOT rendering
// when one was asked for
func assemble(flags *Flags, conf *config.Config) error {
	start := time.Now()

	table, reads, err := buildKmerTable(flags.in, conf.KmerSize)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"reads": reads,
		"k":     conf.KmerSize,
		"kmers": len(table),
	}).Info("counted k-mers")

	g := buildGraph(table)
	log.WithFields(log.Fields{
		"nodes": g.NodeCount(),
		"edges": g.EdgeCount(),
	}).Info("built graph")

	sel := newPathSelector(conf.Seed)
	g = simplifyBubbles(g, sel)
	log.WithFields(log.Fields{"edges": g.EdgeCount()}).Info("simplified bubbles")

	g = trimEntryTips(g, sel)
	g = trimExitTips(g, sel)
	log.WithFields(log.Fields{"edges": g.EdgeCount()}).Info("trimmed tips")

	contigs := extractContigs(g, sourceNodes(g), sinkNodes(g))
	if err := saveContigs(flags.out, contigs, conf.Wrap); err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"contigs": len(contigs),
		"out":     flags.out,
		"seconds": fmt.Sprintf("%.2f", time.Since(start).Seconds()),
	}).Info("assembly done")

	if flags.dot != "" {
		if err := saveDot(flags.dot, g); err != nil {
			return err
		}
		log.WithFields(log.Fields{"dot": flags.dot}).Info("wrote graph rendering")
	}
	return nil
}

// StatsCmd prints a JSON summary of the reads and the graph built from
// them, before any simplification. It is the cobra handler behind
// `debruijn stats`
func StatsCmd(cmd *cobra.Command, args []string) error {
	in, err := cmd.Flags().GetString("in")
	if err != nil || in == "" {
		return errors.New("no reads file, pass one with --in")
	}

	conf := config.New()
	if conf.KmerSize < 1 {
		return errors.Errorf("k-mer size must be a positive integer, got %d", conf.KmerSize)
	}

	table, reads, err := buildKmerTable(in, conf.KmerSize)
	if err != nil {
		return err
	}
	g := buildGraph(table)

	b, err := json.MarshalIndent(newGraphStats(g, table, reads, conf.KmerSize), "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode graph stats")
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}
