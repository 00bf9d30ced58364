package delivery

import (
	"clinic/config"
	"clinic/domain"
	"clinic/services/clinic/serializer"

	"github.com/gofiber/fiber/v2"
)

type itemHandler struct{}

func NewItemDelivery(app *fiber.App) {
	handler := &itemHandler{}

	app.Get("/", handler.ReadRoot)

	route := app.Group("/items")
	route.Get("/:item_id", handler.ReadItem)
	route.Post("/", handler.CreateItem)
}

func (ih *itemHandler) ReadRoot(c *fiber.Ctx) error {
	config.PrintLogInfo(nil, fiber.StatusOK, "ReadRoot")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Hello World",
	})
}

func (ih *itemHandler) ReadItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("item_id")
	if err != nil {
		verr := domain.ValidationError{}
		verr.Add("item_id", "Input should be a valid integer.")
		config.PrintLogInfo(nil, fiber.StatusUnprocessableEntity, "ReadItem")
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"detail": verr,
		})
	}

	result := domain.ItemQuery{ItemID: id}
	if c.Context().QueryArgs().Has("q") {
		q := c.Query("q")
		result.Q = &q
	}

	config.PrintLogInfo(nil, fiber.StatusOK, "ReadItem")
	return c.Status(fiber.StatusOK).JSON(result)
}

// CreateItem echoes a valid item back to the caller.
func (ih *itemHandler) CreateItem(c *fiber.Ctx) error {
	var item domain.Item
	if verr := serializer.Decode(c.Body(), &item); verr != nil {
		config.PrintLogInfo(nil, fiber.StatusUnprocessableEntity, "CreateItem")
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"detail": verr,
		})
	}

	config.PrintLogInfo(nil, fiber.StatusOK, "CreateItem")
	return c.Status(fiber.StatusOK).JSON(item)
}
