package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/wimtiaz/user_registration_service/internal/core/domain"
	"github.com/wimtiaz/user_registration_service/internal/core/ports"
	"github.com/wimtiaz/user_registration_service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService     ports.UserService
	validator       *services.SubmissionValidator
	mapper          *services.Mapper
	logger          ports.LoggerPort
	metrics         ports.MetricsPort
	timestampLayout string
}

func NewUserHandler(
	userService ports.UserService,
	validator *services.SubmissionValidator,
	mapper *services.Mapper,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
	timestampLayout string,
) *UserHandler {
	return &UserHandler{
		userService:     userService,
		validator:       validator,
		mapper:          mapper,
		logger:          logger,
		metrics:         metrics,
		timestampLayout: timestampLayout,
	}
}

// @Summary Register a user
// @Description Registers a user and returns the registered user.
// @Tags users
// @Accept json
// @Produce json
// @Param request body domain.Submission true "Candidate submission"
// @Param version query string false "API version" default(v1)
// @Success 201 {object} successResponse "User created"
// @Failure 400 {object} errorResponse "Validation or business rule rejection"
// @Failure 500 {object} errorResponse "Registration failed"
// @Router /v1/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	version := c.DefaultQuery("version", "v1")

	var submission domain.Submission
	if err := c.ShouldBindJSON(&submission); err != nil {
		h.logger.Error("Failed JSON parse in registration", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, domain.CodeUnknownBadRequest,
			h.timestampLayout, []string{"Invalid request body"}, err.Error())
		return
	}

	h.logger.Info("Input received", map[string]interface{}{
		"email":   submission.Email,
		"version": version,
	})

	if err := h.validator.Validate(submission); err != nil {
		writeDomainError(c, h.timestampLayout, err)
		return
	}

	user, err := h.mapper.ToUser(submission)
	if err != nil {
		writeDomainError(c, h.timestampLayout, err)
		return
	}

	registered, err := h.userService.Register(c.Request.Context(), user)
	if err != nil {
		writeDomainError(c, h.timestampLayout, err)
		return
	}

	resourceURI := fmt.Sprintf("/v1/users/%d", registered.ID)
	h.logger.Info("User created successfully", map[string]interface{}{
		"email":       registered.Email,
		"user_id":     registered.ID,
		"resourceUri": resourceURI,
	})

	newSuccessResponse(c, http.StatusCreated, h.timestampLayout, resourceURI, h.mapper.ToView(registered))
}

// @Summary Return user by id
// @Description Returns a user found by the input {id}
// @Tags users
// @Produce json
// @Param id path int true "User id" minimum(0)
// @Success 200 {object} successResponse "User found"
// @Failure 400 {object} errorResponse "Unknown or malformed id"
// @Router /v1/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	rawID := c.Param("id")
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		h.logger.Info("Rejected malformed user id", map[string]interface{}{
			"id": rawID,
		})
		newErrorResponse(c, http.StatusBadRequest, domain.CodeConstraintViolation,
			h.timestampLayout, []string{"Invalid id. Only numbers are acceptable"}, err.Error())
		return
	}
	if id < 0 {
		h.logger.Info("Rejected negative user id", map[string]interface{}{
			"id": id,
		})
		newErrorResponse(c, http.StatusBadRequest, domain.CodeConstraintViolation,
			h.timestampLayout, []string{"id cannot be negative"}, "")
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, h.timestampLayout, err)
		return
	}

	resourceURI := fmt.Sprintf("/v1/users/%d", user.ID)
	newSuccessResponse(c, http.StatusOK, h.timestampLayout, resourceURI, h.mapper.ToView(user))
}
