package controller

import (
	"github.com/graduation-team-project-4nd/KiMate-AI/internal/agent"
	"github.com/graduation-team-project-4nd/KiMate-AI/internal/dto"
	"github.com/graduation-team-project-4nd/KiMate-AI/internal/pkg/logger"
	"github.com/graduation-team-project-4nd/KiMate-AI/internal/pkg/serverutils"
	"github.com/graduation-team-project-4nd/KiMate-AI/internal/screen"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type IKioskController interface {
	RegisterRoutes(r fiber.Router)
	Analyze(ctx *fiber.Ctx) error
	ScreenDetect(ctx *fiber.Ctx) error
}

type kioskController struct {
	recommender *agent.Recommender
	detector    *screen.Detector
	validate    *validator.Validate
	log         logger.ILogger
}

func NewKioskController(recommender *agent.Recommender, detector *screen.Detector, log logger.ILogger) IKioskController {
	return &kioskController{
		recommender: recommender,
		detector:    detector,
		validate:    validator.New(),
		log:         log,
	}
}

func (c *kioskController) RegisterRoutes(r fiber.Router) {
	r.Post("/analyze", c.Analyze)

	h := r.Group("/screen")
	h.Post("/detect", c.ScreenDetect)
}

// Analyze recommends one concrete kiosk action for the user's request.
func (c *kioskController) Analyze(ctx *fiber.Ctx) error {
	var req dto.AnalyzeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if err := c.validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	c.log.Info("controller", "analyze request", map[string]interface{}{
		"session_id": req.SessionID,
		"ocr_count":  len(req.OcrTexts),
	})

	result := c.recommender.Recommend(ctx.Context(), req.ToDecisionContext())
	return ctx.JSON(dto.FromActionResult(result))
}

// ScreenDetect reports whether the screen changed between two OCR snapshots
// and, on change, includes a fresh analysis of the new screen.
func (c *kioskController) ScreenDetect(ctx *fiber.Ctx) error {
	var req dto.ScreenDetectRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if err := c.validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	result := c.detector.Detect(ctx.Context(), req.PreviousTexts, req.CurrentTexts, req.ToDecisionContext())

	c.log.Info("controller", "screen detect", map[string]interface{}{
		"session_id": req.SessionID,
		"similarity": result.Similarity,
		"is_changed": result.IsChanged,
	})

	return ctx.JSON(dto.FromScreenDetectResult(result))
}
