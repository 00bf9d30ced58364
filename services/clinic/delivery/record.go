package delivery

import (
	"errors"

	"clinic/config"
	"clinic/domain"

	"github.com/gofiber/fiber/v2"
)

// recordHandler serves the five CRUD operations of one resource type.
type recordHandler[T any] struct {
	uc       domain.RecordUseCase[T]
	fromWire func(body []byte) (*T, error)
	name     string
}

func newRecordDelivery[T any](app *fiber.App, path, name string, uc domain.RecordUseCase[T], fromWire func([]byte) (*T, error), guards ...fiber.Handler) {
	handler := &recordHandler[T]{
		uc:       uc,
		fromWire: fromWire,
		name:     name,
	}

	route := app.Group(path, guards...)
	route.Get("/", handler.List)
	route.Post("/", handler.Create)
	route.Get("/:id", handler.Retrieve)
	route.Put("/:id", handler.Update)
	route.Delete("/:id", handler.Delete)
}

func (rh *recordHandler[T]) List(c *fiber.Ctx) error {
	records, err := rh.uc.GetAllRecords(c.UserContext())
	if err != nil {
		return rh.fail(c, err, "List", "Failed to retrieve records")
	}

	config.PrintLogInfo(username(c), fiber.StatusOK, "List"+rh.name)
	return c.Status(fiber.StatusOK).JSON(records)
}

func (rh *recordHandler[T]) Create(c *fiber.Ctx) error {
	rec, err := rh.fromWire(c.Body())
	if err != nil {
		return rh.fail(c, err, "Create", "Invalid request body")
	}

	if err := rh.uc.CreateRecord(c.UserContext(), rec); err != nil {
		return rh.fail(c, err, "Create", "Failed to create record")
	}

	config.PrintLogInfo(username(c), fiber.StatusCreated, "Create"+rh.name)
	return c.Status(fiber.StatusCreated).JSON(rec)
}

func (rh *recordHandler[T]) Retrieve(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return rh.fail(c, domain.ErrNotFound, "Retrieve", "")
	}

	rec, err := rh.uc.GetRecordByID(c.UserContext(), id)
	if err != nil {
		return rh.fail(c, err, "Retrieve", "Failed to retrieve record")
	}

	config.PrintLogInfo(username(c), fiber.StatusOK, "Retrieve"+rh.name)
	return c.Status(fiber.StatusOK).JSON(rec)
}

// Update replaces the whole record. Existence is checked before the body is
// validated, so an unknown id is reported as 404 whatever the payload.
func (rh *recordHandler[T]) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return rh.fail(c, domain.ErrNotFound, "Update", "")
	}

	if _, err := rh.uc.GetRecordByID(c.UserContext(), id); err != nil {
		return rh.fail(c, err, "Update", "Failed to retrieve record")
	}

	rec, err := rh.fromWire(c.Body())
	if err != nil {
		return rh.fail(c, err, "Update", "Invalid request body")
	}

	if err := rh.uc.UpdateRecord(c.UserContext(), id, rec); err != nil {
		return rh.fail(c, err, "Update", "Failed to update record")
	}

	config.PrintLogInfo(username(c), fiber.StatusOK, "Update"+rh.name)
	return c.Status(fiber.StatusOK).JSON(rec)
}

func (rh *recordHandler[T]) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return rh.fail(c, domain.ErrNotFound, "Delete", "")
	}

	if err := rh.uc.DeleteRecord(c.UserContext(), id); err != nil {
		return rh.fail(c, err, "Delete", "Failed to delete record")
	}

	config.PrintLogInfo(username(c), fiber.StatusNoContent, "Delete"+rh.name)
	return c.Status(fiber.StatusNoContent).Send(nil)
}

// fail maps err onto the response: 400 with field errors, 404 with an empty
// body, anything else 500.
func (rh *recordHandler[T]) fail(c *fiber.Ctx, err error, op, message string) error {
	fn := op + rh.name

	if verr, ok := domain.AsValidationError(err); ok {
		config.PrintLogInfo(username(c), fiber.StatusBadRequest, fn)
		return c.Status(fiber.StatusBadRequest).JSON(verr)
	}

	if errors.Is(err, domain.ErrNotFound) {
		config.PrintLogInfo(username(c), fiber.StatusNotFound, fn)
		return c.Status(fiber.StatusNotFound).Send(nil)
	}

	config.PrintLogInfo(username(c), fiber.StatusInternalServerError, fn)
	config.GetLogrusInstance().WithError(err).WithField("function", fn).Error(message)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": message,
		"error":   err.Error(),
	})
}

func username(c *fiber.Ctx) *string {
	if claims, ok := c.Locals("user").(*domain.Claims); ok && claims != nil {
		return &claims.Username
	}
	return nil
}
