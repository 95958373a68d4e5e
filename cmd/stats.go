package cmd

import (
	"github.com/Trysis/debruijn-tp/config"
	"github.com/Trysis/debruijn-tp/internal/debruijn"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the k-mers and graph a file of reads would produce",
	Long: `Summarize the k-mers and graph a file of reads would produce

"debruijn stats" counts the k-mers in the reads, builds the de Bruijn
graph, and prints a JSON report of counts without simplifying or
assembling anything. Useful for picking a k before a full run`,
	PreRun: func(cmd *cobra.Command, args []string) {
		// Bind the parameters of the executed command to viper
		viper.BindPFlag("k", cmd.Flags().Lookup("kmer-size"))
	},
	RunE: debruijn.StatsCmd,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	// Flags for specifying the path to the reads file
	statsCmd.Flags().StringP("in", "i", "", "path to a FASTA or FASTQ file of sequencing reads")
	statsCmd.Flags().IntP("kmer-size", "k", config.DefaultKmerSize, "width of the k-mer counting window")

	// Mark required flags
	statsCmd.MarkFlagRequired("in")
}
