// internal/app/features/students/handler.go
package students

import (
	studentsvc "github.com/dalemusser/rosterhub/internal/app/service/students"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the students feature.
// The individual handlers (CRUD, search, enrollment, report) all go
// through the same student service.
type Handler struct {
	Svc *studentsvc.Service
	Log *zap.Logger
}

// NewHandler constructs a students Handler. It is called from the
// bootstrap BuildHandler function, where the application's DB and
// logger are already initialized.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Svc: studentsvc.New(db, logger),
		Log: logger,
	}
}
