package controller

import (
	"ai-studymate-be/internal/dto"
	"ai-studymate-be/internal/pkg/serverutils"
	"ai-studymate-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IProfileController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	CompleteOnboarding(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
}

type profileController struct {
	profileService service.IProfileService
}

func NewProfileController(profileService service.IProfileService) IProfileController {
	return &profileController{
		profileService: profileService,
	}
}

func (c *profileController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/profile/v1")
	h.Get("", c.Show)
	h.Post("", c.CompleteOnboarding)
	h.Delete("", c.Reset)
}

func (c *profileController) Show(ctx *fiber.Ctx) error {
	res, err := c.profileService.Get(ctx.Context())
	if err != nil {
		if err == service.ErrProfileNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Profile not set")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get profile", res))
}

func (c *profileController) CompleteOnboarding(ctx *fiber.Ctx) error {
	var req dto.CompleteOnboardingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.profileService.CompleteOnboarding(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success complete onboarding", res))
}

func (c *profileController) Reset(ctx *fiber.Ctx) error {
	err := c.profileService.Reset(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success reset profile", nil))
}
