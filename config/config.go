// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// settings file defaults, registered with viper before any
// unmarshalling happens
const (
	// DefaultKmerSize is the counting window width used when neither
	// the settings file nor the command line picks one
	DefaultKmerSize = 22

	// DefaultSeed feeds the tie-break random source
	DefaultSeed = 9001

	// DefaultWrap is the FASTA output line width
	DefaultWrap = 80
)

// Config is the root-level settings struct and is a mix of settings
// available in the optional .debruijn.yaml and those available from
// the command line
type Config struct {
	// the k-mer counting window width, graph nodes are one shorter
	KmerSize int `mapstructure:"k"`

	// the seed for the path selector's random source, runs with the
	// same seed and input resolve ties the same way
	Seed int64 `mapstructure:"seed"`

	// the column width contig sequences are wrapped at on output
	Wrap int `mapstructure:"wrap"`
}

// SetDefaults registers the default for every setting with viper.
// Values from the settings file and changed command line flags both
// take precedence over these
func SetDefaults() {
	viper.SetDefault("k", DefaultKmerSize)
	viper.SetDefault("seed", DefaultSeed)
	viper.SetDefault("wrap", DefaultWrap)
}

// New returns a new Config struct populated by Viper settings (either
// from the local .debruijn.yaml) and/or command line arguments
func New() *Config {
	var c Config

	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	return &c
}
