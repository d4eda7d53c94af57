package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Event publisher providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)

// Event attribute keys shared by publishers and the worker.
const (
	AttrRequestID = "request_id"
	AttrEventType = "event_type"
	AttrMatchID   = "match_id"
)
