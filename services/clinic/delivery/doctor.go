package delivery

import (
	"clinic/domain"
	"clinic/middleware"
	"clinic/services/clinic/serializer"

	"github.com/gofiber/fiber/v2"
)

func NewDoctorDelivery(app *fiber.App, uc domain.RecordUseCase[domain.Doctor]) {
	newRecordDelivery(app, "/doctors", "Doctor", uc, serializer.FromWire[domain.Doctor, domain.DoctorPayload])
}

func NewDoctorDeliveryDeploy(app *fiber.App, uc domain.RecordUseCase[domain.Doctor]) {
	newRecordDelivery(app, "/doctors", "Doctor", uc, serializer.FromWire[domain.Doctor, domain.DoctorPayload], middleware.AuthRequired(), middleware.RoleRequired("admin", "staff"))
}
