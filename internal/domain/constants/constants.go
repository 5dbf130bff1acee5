// Package constants defines shared domain-level constants.
package constants

const (
	// LeadProviderLocal publishes lead events to a local HTTP endpoint.
	LeadProviderLocal = "local"
	// LeadProviderGoogle publishes lead events to Google Pub/Sub.
	LeadProviderGoogle = "google"
)
