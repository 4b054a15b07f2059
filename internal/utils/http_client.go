package utils

import (
	"github.com/go-resty/resty/v2"
)

const userAgent = "go-spellbook"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient with its own resty.Client, connection
// pool and state. Every request identifies itself with the application
// User-Agent.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().
//	    SetHeader("Accept", "application/json").
//	    Get("https://www.dnd5eapi.co/api/spells/light")
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New().SetHeader("User-Agent", userAgent)}
}
