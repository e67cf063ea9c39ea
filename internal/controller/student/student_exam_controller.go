package student

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Pangolins/internal/controller"
	"github.com/lshigami/Pangolins/internal/dto"
	"github.com/lshigami/Pangolins/internal/service"
	"github.com/rs/zerolog/log"
)

type StudentExamController struct {
	authService    service.AuthService
	sessionService service.ExamSessionService
}

func NewStudentExamController(authService service.AuthService, sessionService service.ExamSessionService) *StudentExamController {
	return &StudentExamController{authService: authService, sessionService: sessionService}
}

func examIDParam(ctx *gin.Context) (uint, bool) {
	raw := ctx.Param("exam_id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid exam ID format"})
		return 0, false
	}
	return uint(id), true
}

// Login godoc
// @Summary Authenticate a student or teacher
// @Description Matches credentials against the role's own table. Teachers receive a bearer token for the admin routes.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequestDTO true "Credentials"
// @Success 200 {object} dto.LoginResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *StudentExamController) Login(ctx *gin.Context) {
	var req dto.LoginRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.authService.Authenticate(req)
	if err != nil {
		log.Error().Err(err).Str("username", req.Username).Msg("Login: service error")
		ctx.JSON(controller.StatusFor(err), dto.ErrorResponse{Message: "Authentication failed"})
		return
	}
	if !resp.Authenticated {
		ctx.JSON(http.StatusUnauthorized, resp)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ListAvailableExams godoc
// @Summary List exams open to students
// @Description Active exams only, without questions or answer keys.
// @Tags Student - Exams
// @Produce json
// @Param student_id query string true "Student ID"
// @Success 200 {array} dto.ExamSummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /exams [get]
func (c *StudentExamController) ListAvailableExams(ctx *gin.Context) {
	studentID := ctx.Query("student_id")
	if studentID == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "student_id query parameter is required"})
		return
	}

	exams, err := c.sessionService.ListAvailableExams(studentID)
	if err != nil {
		ctx.JSON(controller.StatusFor(err), dto.ErrorResponse{Message: "Failed to retrieve exams"})
		return
	}
	ctx.JSON(http.StatusOK, exams)
}

// StartAttempt godoc
// @Summary Start an exam attempt
// @Description Opens the timed session and returns questions and options. The answer key is never included. Retakes and duplicate starts are rejected.
// @Tags Student - Exams
// @Accept json
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Param attempt body dto.StartAttemptDTO true "Student starting the attempt"
// @Success 200 {object} dto.ExamPayloadDTO
// @Failure 404 {object} dto.ErrorResponse "Exam not found or inactive"
// @Failure 409 {object} dto.ErrorResponse "Already taken, or attempt already open"
// @Router /exams/{exam_id}/attempts [post]
func (c *StudentExamController) StartAttempt(ctx *gin.Context) {
	examID, ok := examIDParam(ctx)
	if !ok {
		return
	}
	var req dto.StartAttemptDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	payload, err := c.sessionService.StartAttempt(examID, req.StudentID)
	if err != nil {
		log.Warn().Err(err).Uint("examID", examID).Str("studentID", req.StudentID).Msg("StartAttempt: rejected")
		ctx.JSON(controller.StatusFor(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, payload)
}

// SubmitAttempt godoc
// @Summary Submit answers for the open attempt
// @Description Grades and persists the submission atomically and closes the session. Late submissions inside the grace window are still scored.
// @Tags Student - Exams
// @Accept json
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Param submission body dto.SubmitAttemptDTO true "Student's answers"
// @Success 200 {object} dto.SubmissionReceiptDTO
// @Failure 409 {object} dto.ErrorResponse "No active session"
// @Failure 500 {object} dto.ErrorResponse
// @Router /exams/{exam_id}/submissions [post]
func (c *StudentExamController) SubmitAttempt(ctx *gin.Context) {
	examID, ok := examIDParam(ctx)
	if !ok {
		return
	}
	var req dto.SubmitAttemptDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	receipt, err := c.sessionService.SubmitAttempt(examID, req.StudentID, req.Answers)
	if err != nil {
		log.Warn().Err(err).Uint("examID", examID).Str("studentID", req.StudentID).Msg("SubmitAttempt: rejected")
		ctx.JSON(controller.StatusFor(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, receipt)
}

// FetchResult godoc
// @Summary Fetch a student's own result
// @Description Fails while the teacher keeps results hidden.
// @Tags Student - Exams
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Param student_id path string true "Student ID"
// @Success 200 {object} dto.ExamResultDTO
// @Failure 403 {object} dto.ErrorResponse "Results hidden"
// @Failure 404 {object} dto.ErrorResponse "No result"
// @Router /exams/{exam_id}/results/{student_id} [get]
func (c *StudentExamController) FetchResult(ctx *gin.Context) {
	examID, ok := examIDParam(ctx)
	if !ok {
		return
	}
	studentID := ctx.Param("student_id")

	result, err := c.sessionService.FetchResult(examID, studentID)
	if err != nil {
		ctx.JSON(controller.StatusFor(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, result)
}
