package server

import (
	clinicDelivery "clinic/services/clinic/delivery"
	demoDelivery "clinic/services/demo/delivery"

	"github.com/gofiber/fiber/v2"
)

func registerRoutes(app *fiber.App, d Deps) {
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
	})

	if d.AuthEnabled {
		clinicDelivery.NewPatientDeliveryDeploy(app, d.Patients)
		clinicDelivery.NewDoctorDeliveryDeploy(app, d.Doctors)
		return
	}

	clinicDelivery.NewPatientDelivery(app, d.Patients)
	clinicDelivery.NewDoctorDelivery(app, d.Doctors)
}

func registerDemoRoutes(app *fiber.App) {
	demoDelivery.NewItemDelivery(app)
}
