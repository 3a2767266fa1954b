package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stockmaster-api/internal/application/dto"
	"github.com/tu-usuario/stockmaster-api/internal/application/notifications"
)

// NotificationHandler expone el feed de alertas de stock bajo (protegido).
type NotificationHandler struct {
	feed *notifications.Feed
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(feed *notifications.Feed) *NotificationHandler {
	return &NotificationHandler{feed: feed}
}

// List godoc
// @Summary      Feed de alertas de stock bajo
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.NotificationFeedResponse
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.feed.Snapshot())
}

// MarkRead godoc
// @Summary      Marcar una alerta como leída
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la alerta (product id)"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	h.feed.MarkRead(id)
	return c.JSON(dto.MessageResponse{Message: "alerta marcada como leída"})
}

// MarkAllRead godoc
// @Summary      Marcar todas las alertas como leídas
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	h.feed.MarkAllRead()
	return c.JSON(dto.MessageResponse{Message: "todas las alertas marcadas como leídas"})
}
