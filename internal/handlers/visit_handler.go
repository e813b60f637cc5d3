package handlers

import (
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// VisitHandler records storefront visits. The endpoint is
// fire-and-forget: the insert happens after the response is sent and
// the caller consumes no payload.
type VisitHandler struct {
	service *services.AnalyticsService
}

// NewVisitHandler creates a new VisitHandler.
func NewVisitHandler(service *services.AnalyticsService) *VisitHandler {
	return &VisitHandler{
		service: service,
	}
}

// RegisterRoutes registers the public visit route.
func (h *VisitHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/visits", h.HandleRecord)
}

// HandleRecord accepts a visit beacon. Device, browser and OS come from
// the request's own User-Agent header, never from the body.
func (h *VisitHandler) HandleRecord(c *fiber.Ctx) error {
	var req struct {
		Path string `json:"path"`
	}
	// A malformed or empty body still counts as a visit.
	_ = c.BodyParser(&req)

	// Header and IP strings alias fasthttp's request buffer, which is
	// reused once the handler returns; copy before handing them to the
	// goroutine. req.Path is already an owned copy from the JSON decode.
	userAgent := utils.CopyString(c.Get("User-Agent"))
	ip := utils.CopyString(c.IP())
	path := req.Path

	go func() {
		// Errors are logged inside the service; the visitor never
		// waits on or hears about them.
		_ = h.service.RecordVisit(userAgent, ip, path)
	}()

	return c.SendStatus(fiber.StatusAccepted)
}
