package delivery

import (
	"clinic/domain"
	"clinic/middleware"
	"clinic/services/clinic/serializer"

	"github.com/gofiber/fiber/v2"
)

func NewPatientDelivery(app *fiber.App, uc domain.RecordUseCase[domain.Patient]) {
	newRecordDelivery(app, "/patients", "Patient", uc, serializer.FromWire[domain.Patient, domain.PatientPayload])
}

func NewPatientDeliveryDeploy(app *fiber.App, uc domain.RecordUseCase[domain.Patient]) {
	newRecordDelivery(app, "/patients", "Patient", uc, serializer.FromWire[domain.Patient, domain.PatientPayload], middleware.AuthRequired(), middleware.RoleRequired("admin", "staff"))
}
