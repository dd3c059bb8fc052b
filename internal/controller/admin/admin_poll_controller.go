package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminPollController struct {
	adminService service.AdminPollService
}

func NewAdminPollController(adminService service.AdminPollService) *AdminPollController {
	return &AdminPollController{adminService: adminService}
}

// CreateQuestion godoc
// @Summary (Admin) Create a new question
// @Description Creates a question, optionally with its initial choices. PubDate defaults to now when omitted.
// @Tags Admin - Polls
// @Accept json
// @Produce json
// @Param question body dto.CreateQuestionRequest true "Question data with optional choices"
// @Success 201 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/polls [post]
func (c *AdminPollController) CreateQuestion(ctx *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateQuestion: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	question, err := c.adminService.CreateQuestion(req)
	if err != nil {
		log.Error().Err(err).Msg("Admin CreateQuestion: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create question: " + err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// ListQuestions godoc
// @Summary (Admin) List all questions
// @Description Lists every question with its choice count, including unpublished and future-dated ones.
// @Tags Admin - Polls
// @Produce json
// @Success 200 {array} dto.QuestionSummaryResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/polls [get]
func (c *AdminPollController) ListQuestions(ctx *gin.Context) {
	questions, err := c.adminService.ListQuestions()
	if err != nil {
		log.Error().Err(err).Msg("Admin ListQuestions: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve questions"})
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// GetQuestion godoc
// @Summary (Admin) Get a question regardless of publish date
// @Tags Admin - Polls
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid question ID format"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/polls/{id} [get]
func (c *AdminPollController) GetQuestion(ctx *gin.Context) {
	questionID, ok := parseQuestionID(ctx)
	if !ok {
		return
	}

	question, err := c.adminService.GetQuestion(questionID)
	if err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Question not found"})
			return
		}
		log.Error().Err(err).Uint("questionID", questionID).Msg("Admin GetQuestion: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve question"})
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// UpdateQuestion godoc
// @Summary (Admin) Update a question's text or publish date
// @Tags Admin - Polls
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param question body dto.UpdateQuestionRequest true "Updated question data"
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or ID"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/polls/{id} [put]
func (c *AdminPollController) UpdateQuestion(ctx *gin.Context) {
	questionID, ok := parseQuestionID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	question, err := c.adminService.UpdateQuestion(questionID, req)
	if err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Question not found"})
			return
		}
		log.Error().Err(err).Uint("questionID", questionID).Msg("Admin UpdateQuestion: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to update question: " + err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// DeleteQuestion godoc
// @Summary (Admin) Delete a question and its choices
// @Tags Admin - Polls
// @Param id path int true "Question ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid question ID format"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/polls/{id} [delete]
func (c *AdminPollController) DeleteQuestion(ctx *gin.Context) {
	questionID, ok := parseQuestionID(ctx)
	if !ok {
		return
	}

	if err := c.adminService.DeleteQuestion(questionID); err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Question not found"})
			return
		}
		log.Error().Err(err).Uint("questionID", questionID).Msg("Admin DeleteQuestion: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to delete question: " + err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// AddChoice godoc
// @Summary (Admin) Add a choice to an existing question
// @Tags Admin - Polls
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param choice body dto.CreateChoiceRequest true "Choice data"
// @Success 201 {object} dto.ChoiceResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or ID"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/polls/{id}/choices [post]
func (c *AdminPollController) AddChoice(ctx *gin.Context) {
	questionID, ok := parseQuestionID(ctx)
	if !ok {
		return
	}

	var req dto.CreateChoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin AddChoice: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	choice, err := c.adminService.AddChoice(questionID, req)
	if err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Question not found"})
			return
		}
		log.Error().Err(err).Uint("questionID", questionID).Msg("Admin AddChoice: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to add choice: " + err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, choice)
}

func parseQuestionID(ctx *gin.Context) (uint, bool) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid question ID format"})
		return 0, false
	}
	return uint(id), true
}
