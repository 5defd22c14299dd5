// Package constants holds identifiers shared across layers.
package constants

// Event publisher providers selectable through pubsub.provider.
const (
	PubSubProviderLocal    = "local"
	PubSubProviderGoogle   = "google"
	PubSubProviderRabbitMQ = "rabbitmq"
)

// Event types carried on like events.
const (
	EventTypeLikeAdded   = "article.like.added"
	EventTypeLikeRemoved = "article.like.removed"
)

// EnvLocal is the env.env value for a developer machine.
const EnvLocal = "local"
