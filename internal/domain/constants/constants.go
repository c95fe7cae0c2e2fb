// Package constants contains string identifiers shared between configuration and wiring.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Database drivers selectable through database.driver.
const (
	DatabaseDriverPostgres = "postgres"
	DatabaseDriverSQLite   = "sqlite"
)

// Pub/Sub providers selectable through pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Event types carried in the "event_type" message attribute.
const (
	EventTypeRestaurantCreated = "restaurant.created"
)

// Folder prefix for photos in the image bucket, followed by the restaurant id.
const PhotoFolderPrefix = "restaurants"
