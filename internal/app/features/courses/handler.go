// internal/app/features/courses/handler.go
package courses

import (
	coursesvc "github.com/dalemusser/rosterhub/internal/app/service/courses"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the courses feature.
type Handler struct {
	Svc *coursesvc.Service
	Log *zap.Logger
}

// NewHandler constructs a courses Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Svc: coursesvc.New(db, logger),
		Log: logger,
	}
}
