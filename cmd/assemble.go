package cmd

import (
	"github.com/Trysis/debruijn-tp/config"
	"github.com/Trysis/debruijn-tp/internal/debruijn"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// assembleCmd represents the assemble command
var assembleCmd = &cobra.Command{
	Use:   "assemble",
	Short: "Assemble contigs from a file of sequencing reads",
	Long: `Assemble contigs from a file of sequencing reads

"debruijn assemble" counts the k-mers in the reads and builds a de Bruijn
graph with an edge per distinct k-mer, joining its two overlapping
(k-1)-mers and weighted by the k-mer's occurrence count. The graph is then
cleaned of the artifacts of sequencing noise:

1. Bubbles, spans where paths diverge and reconverge, keep their best
   supported path and lose the others
2. Entry and exit tips, weakly supported branches hanging off the ends of
   the graph, are trimmed back to the best supported path

Every remaining path from a source node to a sink node is written out as a
FASTA contig. Runs are reproducible: ties between equally supported paths
are settled by a random source seeded from --seed`,
	PreRun: func(cmd *cobra.Command, args []string) {
		// Bind the parameters of the executed command to viper
		viper.BindPFlag("k", cmd.Flags().Lookup("kmer-size"))
		viper.BindPFlag("seed", cmd.Flags().Lookup("seed"))
	},
	RunE: debruijn.AssembleCmd,
}

func init() {
	rootCmd.AddCommand(assembleCmd)

	// Flags for specifying the paths to the reads file and the output files
	assembleCmd.Flags().StringP("in", "i", "", "path to a FASTA or FASTQ file of sequencing reads")
	assembleCmd.Flags().StringP("out", "o", "contigs.fasta", "path to write the assembled contigs to")
	assembleCmd.Flags().String("dot", "", "path to write the simplified graph to, in Graphviz DOT")

	// Flags for tuning the assembly
	assembleCmd.Flags().IntP("kmer-size", "k", config.DefaultKmerSize, "width of the k-mer counting window")
	assembleCmd.Flags().Int64("seed", config.DefaultSeed, "seed for the tie-breaking random source")

	// Mark required flags
	assembleCmd.MarkFlagRequired("in")
}
