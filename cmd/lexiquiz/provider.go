package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/at-ishikawa/lexiquiz/internal/config"
)

// Provider selects the lexicon provider from the command line.
type Provider string

func (p *Provider) Set(val string) error {
	for _, provider := range allProviders {
		if val == string(provider) {
			*p = provider
			return nil
		}
	}
	return fmt.Errorf("invalid provider: %s", val)
}

func (p Provider) String() string {
	return string(p)
}

func (p *Provider) Type() string {
	return "provider"
}

const (
	ProviderFreeDictionary Provider = config.ProviderFreeDictionary
	ProviderWordsAPI       Provider = config.ProviderWordsAPI
)

var (
	_            pflag.Value = (*Provider)(nil)
	allProviders             = []Provider{ProviderFreeDictionary, ProviderWordsAPI}
)
