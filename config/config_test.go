// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"reflect"
	"testing"

	"github.com/spf13/viper"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		settings map[string]interface{}
		want     *Config
	}{
		{
			"defaults",
			map[string]interface{}{},
			&Config{
				KmerSize: DefaultKmerSize,
				Seed:     DefaultSeed,
				Wrap:     DefaultWrap,
			},
		},
		{
			"settings override defaults",
			map[string]interface{}{
				"k":    31,
				"seed": int64(42),
			},
			&Config{
				KmerSize: 31,
				Seed:     42,
				Wrap:     DefaultWrap,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			SetDefaults()
			for key, value := range tt.settings {
				viper.Set(key, value)
			}

			if got := New(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("New() = %+v, want %+v", got, tt.want)
			}
		})
	}
	viper.Reset()
}
