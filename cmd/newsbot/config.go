// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/newsbot/pkg/types"
)

// Viper keys, as used in newsbot.yaml and (upper-cased, NEWSBOT_ prefixed)
// in the environment.
const (
	keyLanguage     = "language"
	keyRegion       = "region"
	keyMaxResults   = "max_results"
	keyMaxSentences = "max_sentences"
	keyTimeout      = "timeout"
	keyUserAgent    = "user_agent"
	keyEndpoint     = "endpoint"
)

var flagKeys = map[string]string{
	"lang":        keyLanguage,
	"region":      keyRegion,
	"max-results": keyMaxResults,
	"sentences":   keyMaxSentences,
	"timeout":     keyTimeout,
	"user-agent":  keyUserAgent,
	"endpoint":    keyEndpoint,
}

// configureViper installs the built-in defaults and binds flags so they
// override config file and environment values. Unset flags fall through to
// those sources.
func configureViper(flags *pflag.FlagSet) {
	d := types.DefaultNewsConfig()
	viper.SetDefault(keyLanguage, d.Language)
	viper.SetDefault(keyRegion, d.Region)
	viper.SetDefault(keyMaxResults, d.MaxResults)
	viper.SetDefault(keyMaxSentences, d.MaxSentences)
	viper.SetDefault(keyTimeout, d.Timeout)
	viper.SetDefault(keyUserAgent, d.UserAgent)
	viper.SetDefault(keyEndpoint, d.Endpoint)

	for name, key := range flagKeys {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("binding flag %s: %v", name, err))
		}
	}
}

// newsConfig assembles and validates the effective configuration.
func newsConfig() (types.NewsConfig, error) {
	cfg := types.NewsConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration(keyTimeout),
			UserAgent: viper.GetString(keyUserAgent),
		},
		Endpoint:     viper.GetString(keyEndpoint),
		Language:     viper.GetString(keyLanguage),
		Region:       viper.GetString(keyRegion),
		MaxResults:   viper.GetInt(keyMaxResults),
		MaxSentences: viper.GetInt(keyMaxSentences),
	}
	if err := cfg.Validate(); err != nil {
		return types.NewsConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
