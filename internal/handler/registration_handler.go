package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/domain"
	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/dto"
	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/i18n"
	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/service"
)

// RegistrationHandler serves the public side of registration: the grade
// table for the form's step-1 selector and the submission endpoint itself.
type RegistrationHandler struct {
	regService *service.RegistrationService
}

func NewRegistrationHandler(regService *service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{regService: regService}
}

// Register handles POST /api/v1/register. Unlike the rest of the API this
// endpoint answers failures with a flat {"error": string} body: that is the
// contract the registration form consumes and shows to the parent verbatim.
func (h *RegistrationHandler) Register(c *fiber.Ctx) error {
	loc := i18n.ParseLocale(c.Query("lang"))

	var req dto.RegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": i18n.T(loc, "register.incomplete"),
		})
	}

	app, err := h.regService.Submit(c.Context(), &req)
	if err != nil {
		status, key := registrationFailure(err)
		return c.Status(status).JSON(fiber.Map{"error": i18n.T(loc, key)})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.RegistrationAccepted{
		OK:      true,
		ID:      app.ID,
		Message: i18n.T(loc, "register.received"),
	})
}

// Grades handles GET /api/v1/grades: the fixed grade-label table, in
// teaching order, for the registration form and the public site.
func (h *RegistrationHandler) Grades(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse(domain.GradeLevels, ""))
}

func registrationFailure(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrIncomplete):
		return fiber.StatusBadRequest, "register.incomplete"
	case errors.Is(err, service.ErrInvalidGrade):
		return fiber.StatusBadRequest, "register.invalid_grade"
	case errors.Is(err, service.ErrTooFast):
		return fiber.StatusTooManyRequests, "register.too_fast"
	case errors.Is(err, service.ErrDuplicate):
		return fiber.StatusConflict, "register.duplicate"
	default:
		return fiber.StatusInternalServerError, "register.submit_failed"
	}
}
