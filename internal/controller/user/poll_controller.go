package user

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/service"
	"github.com/rs/zerolog/log"
)

type PollController struct {
	pollService service.PollService
}

func NewPollController(pollService service.PollService) *PollController {
	return &PollController{pollService: pollService}
}

// GetLatestQuestions godoc
// @Summary List the latest published questions
// @Description Returns at most five questions published in the past that have at least one choice, most recent first.
// @Tags polls
// @Produce json
// @Success 200 {array} dto.QuestionSummaryResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /polls [get]
func (c *PollController) GetLatestQuestions(ctx *gin.Context) {
	questions, err := c.pollService.GetLatestQuestions()
	if err != nil {
		log.Error().Err(err).Msg("GetLatestQuestions: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve questions"})
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// GetQuestionDetail godoc
// @Summary Get a question and its choices
// @Description Returns the question text and its choices ordered by choice text. Future-dated questions are not found.
// @Tags polls
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid question ID format"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /polls/{id} [get]
func (c *PollController) GetQuestionDetail(ctx *gin.Context) {
	questionID, ok := parseQuestionID(ctx)
	if !ok {
		return
	}

	detail, err := c.pollService.GetQuestionDetail(questionID)
	if err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Question not found"})
			return
		}
		log.Error().Err(err).Uint("questionID", questionID).Msg("GetQuestionDetail: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve question"})
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// GetQuestionResults godoc
// @Summary Get vote tallies for a question
// @Description Returns each choice with its vote count, ordered by votes descending and choice text ascending on ties.
// @Tags polls
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.ResultsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid question ID format"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /polls/{id}/results [get]
func (c *PollController) GetQuestionResults(ctx *gin.Context) {
	questionID, ok := parseQuestionID(ctx)
	if !ok {
		return
	}

	results, err := c.pollService.GetQuestionResults(questionID)
	if err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Question not found"})
			return
		}
		log.Error().Err(err).Uint("questionID", questionID).Msg("GetQuestionResults: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve results"})
		return
	}
	ctx.JSON(http.StatusOK, results)
}

// Vote godoc
// @Summary Vote for one of a question's choices
// @Description Adds one vote to the selected choice and redirects to the question's results. A choice that does not belong to the question redisplays the question detail with an error.
// @Tags polls
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param vote body dto.VoteRequest true "Choice to vote for"
// @Success 303 "Redirect to the question's results"
// @Failure 400 {object} dto.ErrorResponse "Invalid question ID or request body"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 422 {object} dto.VoteErrorResponse "Choice does not belong to the question"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /polls/{id}/vote [post]
func (c *PollController) Vote(ctx *gin.Context) {
	questionID, ok := parseQuestionID(ctx)
	if !ok {
		return
	}

	var req dto.VoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Vote: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := c.pollService.Vote(questionID, req.ChoiceID); err != nil {
		switch {
		case errors.Is(err, service.ErrQuestionNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Question not found"})
		case errors.Is(err, service.ErrChoiceNotFound):
			c.rejectVote(ctx, questionID)
		default:
			log.Error().Err(err).Uint("questionID", questionID).Uint("choiceID", req.ChoiceID).Msg("Vote: Service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to record vote"})
		}
		return
	}

	ctx.Redirect(http.StatusSeeOther, fmt.Sprintf("/polls/%d/results", questionID))
}

// rejectVote redisplays the question detail alongside the rejection reason.
func (c *PollController) rejectVote(ctx *gin.Context, questionID uint) {
	detail, err := c.pollService.GetQuestionDetail(questionID)
	if err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("Vote: Failed to reload question for rejection response")
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: "You didn't select a valid choice"})
		return
	}
	ctx.JSON(http.StatusUnprocessableEntity, dto.VoteErrorResponse{
		Error:    "You didn't select a valid choice",
		Question: *detail,
	})
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
