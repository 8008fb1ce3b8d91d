package handler

import (
	"codequiz/internal/dto"
	"codequiz/internal/middleware"
	"codequiz/internal/service"
	"codequiz/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuestionHandler handles question-related HTTP requests
type QuestionHandler struct {
	service   service.QuestionService
	validator *validation.Validator
}

// NewQuestionHandler creates a new QuestionHandler instance
func NewQuestionHandler(service service.QuestionService, validator *validation.Validator) *QuestionHandler {
	return &QuestionHandler{
		service:   service,
		validator: validator,
	}
}

// GetRandomQuestion godoc
// @Summary Get a random question
// @Description Returns one random question matching the filters. When nothing matches, a question from the whole bank is returned and fallback is set.
// @Tags questions
// @Produce json
// @Param difficulty query string false "Difficulty label or 'all'" default(all)
// @Param type query string false "Type label or 'all'" default(all)
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /api/question [get]
// @Router /next [get]
func (h *QuestionHandler) GetRandomQuestion(c *fiber.Ctx) error {
	pick, err := h.service.PickRandom(c.UserContext(), middleware.FilterCriteria(c))
	if err != nil {
		return err
	}

	q := pick.Question
	return c.JSON(dto.QuestionResponse{
		ID:         q.ID,
		Code:       q.Code,
		Output:     q.ExpectedOutput,
		Difficulty: q.Difficulty,
		Type:       q.Type,
		Fallback:   pick.Fallback,
	})
}

// ListQuestions godoc
// @Summary List questions
// @Description Lists every question matching the filters. No fallback is applied; force=true refreshes the bank first.
// @Tags questions
// @Produce json
// @Param difficulty query string false "Difficulty label or 'all'" default(all)
// @Param type query string false "Type label or 'all'" default(all)
// @Param force query bool false "Refresh the bank before listing"
// @Success 200 {array} dto.QuestionListItem
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /api/questions [get]
func (h *QuestionHandler) ListQuestions(c *fiber.Ctx) error {
	questions, err := h.service.ListMatching(c.UserContext(), middleware.FilterCriteria(c), middleware.Force(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.ToQuestionListItems(questions))
}

// GetFilters godoc
// @Summary List filter values
// @Description Returns the distinct difficulty and type labels present in the bank.
// @Tags questions
// @Produce json
// @Success 200 {object} dto.FiltersResponse
// @Router /api/filters [get]
func (h *QuestionHandler) GetFilters(c *fiber.Ctx) error {
	values, err := h.service.FilterValues(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.FiltersResponse{
		Difficulties: values.Difficulties,
		Types:        values.Types,
	})
}

// GetFilterValues godoc
// @Summary List values of one filter
// @Description Returns the distinct labels of a single field (difficulty or type).
// @Tags questions
// @Produce json
// @Param field path string true "difficulty or type"
// @Success 200 {object} dto.DistinctValuesResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /api/filters/{field} [get]
func (h *QuestionHandler) GetFilterValues(c *fiber.Ctx) error {
	field, errs := h.validator.ParseField(c.Params("field"))
	if len(errs) > 0 {
		return errs
	}

	values, err := h.service.ListDistinctValues(c.UserContext(), field)
	if err != nil {
		return err
	}
	return c.JSON(dto.DistinctValuesResponse{Field: string(field), Values: values})
}

// CheckAnswer godoc
// @Summary Check an answer
// @Description Compares the learner's answer with the expected output after decoding escape sequences.
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.CheckAnswerRequest true "Answer details"
// @Success 200 {object} dto.CheckAnswerResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /api/check [post]
func (h *QuestionHandler) CheckAnswer(c *fiber.Ctx) error {
	var req dto.CheckAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if errs := h.validator.ValidateCheckAnswerRequest(&req); len(errs) > 0 {
		return errs
	}

	result, err := h.service.CheckAnswer(c.UserContext(), req.QuestionID, req.Answer)
	if err != nil {
		return err
	}
	return c.JSON(dto.CheckAnswerResponse{
		QuestionID: result.QuestionID,
		Correct:    result.Correct,
		Expected:   result.Expected,
	})
}

// GetBankStatus godoc
// @Summary Question bank status
// @Description Reports the cached snapshot and refresh history.
// @Tags system
// @Produce json
// @Success 200 {object} dto.BankStatusResponse
// @Router /api/bank/status [get]
func (h *QuestionHandler) GetBankStatus(c *fiber.Ctx) error {
	st := h.service.BankStatus()
	return c.JSON(dto.BankStatusResponse{
		SnapshotID:    st.SnapshotID,
		QuestionCount: st.QuestionCount,
		FetchedAt:     st.FetchedAt,
		FetchCount:    st.FetchCount,
		FailureCount:  st.FailureCount,
		LastError:     st.LastError,
	})
}

// Health godoc
// @Summary Liveness probe
// @Tags system
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{Status: "ok"})
}

// RegisterRoutes wires the question routes onto app.
func RegisterRoutes(app *fiber.App, h *QuestionHandler, vm *middleware.ValidationMiddleware) {
	app.Get("/health", Health)
	// Legacy route polled by the quiz page for the next question.
	app.Get("/next", vm.ValidateFilterParams(), h.GetRandomQuestion)

	api := app.Group("/api")
	api.Get("/question", vm.ValidateFilterParams(), h.GetRandomQuestion)
	api.Get("/questions", vm.ValidateFilterParams(), vm.ValidateForceParam(), h.ListQuestions)
	api.Get("/filters", h.GetFilters)
	api.Get("/filters/:field", h.GetFilterValues)
	api.Post("/check", h.CheckAnswer)
	api.Get("/bank/status", h.GetBankStatus)
}
