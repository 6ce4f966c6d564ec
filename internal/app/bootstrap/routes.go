// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	coursesfeature "github.com/dalemusser/rosterhub/internal/app/features/courses"
	healthfeature "github.com/dalemusser/rosterhub/internal/app/features/health"
	reportsfeature "github.com/dalemusser/rosterhub/internal/app/features/reports"
	studentsfeature "github.com/dalemusser/rosterhub/internal/app/features/students"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this
// WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and any Startup hooks have completed. RosterHub mounts the JSON
// feature routers: health, students (including enrollment), courses,
// and the aggregate reports.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.RosterHubMongoDatabase

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.RosterHubMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	studentsHandler := studentsfeature.NewHandler(db, logger)
	r.Mount("/students", studentsfeature.Routes(studentsHandler))

	coursesHandler := coursesfeature.NewHandler(db, logger)
	r.Mount("/courses", coursesfeature.Routes(coursesHandler))

	reportsHandler := reportsfeature.NewHandler(db, logger)
	r.Mount("/reports", reportsfeature.Routes(reportsHandler))

	return r, nil
}
