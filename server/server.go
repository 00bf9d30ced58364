// Package server assembles the fiber applications served by the binaries in app/.
package server

import (
	"clinic/config"
	"clinic/domain"
	"clinic/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Deps holds what the records service needs to serve requests.
type Deps struct {
	Patients    domain.RecordUseCase[domain.Patient]
	Doctors     domain.RecordUseCase[domain.Doctor]
	Logger      *logrus.Logger
	AuthEnabled bool
}

// New returns the records service with its middleware chain and routes.
func New(d Deps) *fiber.App {
	app := newApp(d.Logger)
	registerRoutes(app, d)
	return app
}

// NewDemo returns the demo service.
func NewDemo(log *logrus.Logger) *fiber.App {
	app := newApp(log)
	registerDemoRoutes(app)
	return app
}

func newApp(log *logrus.Logger) *fiber.App {
	if log == nil {
		log = config.GetLogrusInstance()
	}

	app := fiber.New(config.GetFiberConfig())

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(middleware.RequestLogger(log))
	app.Use(recover.New())

	// CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetCORSAllowOrigins(),
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	return app
}
