// Package di provides dependency injection factories for application
// components.
package di

import (
	"stock_dashboard/internal/platform/config"
	"stock_dashboard/internal/platform/externalapi/opendart"
	"stock_dashboard/internal/platform/externalapi/yahoo"
	infrahttp "stock_dashboard/internal/platform/http"
)

// NewDisclosureClient creates a fully configured DART API client.
func NewDisclosureClient(cfg config.DARTConfig) *opendart.Client {
	clientCfg := opendart.Config{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
	}
	return opendart.NewClient(clientCfg, infrahttp.NewHTTPClient(clientCfg.Timeout))
}

// NewMarketClient creates a fully configured Yahoo chart API client.
func NewMarketClient(cfg config.YahooConfig) *yahoo.Client {
	clientCfg := yahoo.Config{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
	}
	return yahoo.NewClient(clientCfg, infrahttp.NewHTTPClient(clientCfg.Timeout))
}
