// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app. The client
// and database are constructed once in ConnectDB and handed to stores
// via constructor injection; nothing reaches for a global connection.
type DBDeps struct {
	RosterHubMongoClient   *mongo.Client
	RosterHubMongoDatabase *mongo.Database
}
