package initializers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"

	"talentflow-backend/config"
	apiv1 "talentflow-backend/controllers/v1"
	"talentflow-backend/fiberlog"
	assessmenthandler "talentflow-backend/lib/assessment"
	assessmentstore "talentflow-backend/lib/assessment/store"
	authhandler "talentflow-backend/lib/auth"
	candidatehandler "talentflow-backend/lib/candidate"
	candidatestore "talentflow-backend/lib/candidate/store"
	"talentflow-backend/lib/faults"
	jobhandler "talentflow-backend/lib/job"
	jobstore "talentflow-backend/lib/job/store"
	"talentflow-backend/lib/recordstore"
	userstore "talentflow-backend/lib/user/store"
	"talentflow-backend/middleware"
)

// BuildApp wires the whole simulated backend: record store over the given
// database, domain handlers, and the fiber app with the /api routes. Every
// dependency is passed explicitly so tests can swap the fault policy or run
// against an in-memory database.
func BuildApp(cfg *config.Configuration, gormDB *gorm.DB, policy faults.Policy, logCfg *fiberlog.Config) (*fiber.App, *recordstore.Store, error) {
	store := recordstore.NewInstance(gormDB)
	if err := store.AutoMigrate(); err != nil {
		return nil, nil, err
	}

	jobs := jobhandler.NewHandler(jobstore.NewInstance(store))
	candidates := candidatehandler.NewHandler(candidatestore.NewInstance(store))
	assessments := assessmenthandler.NewHandler(assessmentstore.NewInstance(store))
	auth := authhandler.NewHandler(userstore.NewInstance(store), cfg.Auth.JWTSecret, cfg.JWTExpire())

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})
	app.Use(fiberRecover.New())

	api := fiber.New()
	app.Mount("/api", api)
	if logCfg != nil {
		api.Use(fiberlog.New(*logCfg))
	}
	api.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))
	api.Use(middleware.Simulate(policy))

	apiv1.InitJobApiRouters(api, jobs)
	apiv1.InitCandidateApiRouters(api, candidates, jobs)
	apiv1.InitAssessmentApiRouters(api, assessments)
	apiv1.InitAuthApiRouters(api, auth, cfg.Auth.JWTSecret)

	return app, store, nil
}
