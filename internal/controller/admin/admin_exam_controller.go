package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Pangolins/internal/controller"
	"github.com/lshigami/Pangolins/internal/dto"
	"github.com/lshigami/Pangolins/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminExamController struct {
	adminService service.ExamAdminService
}

func NewAdminExamController(adminService service.ExamAdminService) *AdminExamController {
	return &AdminExamController{adminService: adminService}
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

// CreateExam godoc
// @Summary (Teacher) Create an exam with its questions and options
// @Description Persists the full draft atomically; a failure anywhere rolls back the whole exam.
// @Tags Teacher - Exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exam body dto.ExamDraftDTO true "Exam draft"
// @Success 201 {object} dto.ExamDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Malformed draft"
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/exams [post]
func (c *AdminExamController) CreateExam(ctx *gin.Context) {
	var draft dto.ExamDraftDTO
	if err := ctx.ShouldBindJSON(&draft); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	detail, err := c.adminService.CreateExam(draft)
	if err != nil {
		log.Warn().Err(err).Str("title", draft.Title).Msg("CreateExam: rejected")
		ctx.JSON(controller.StatusFor(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, detail)
}

// UpdateExam godoc
// @Summary (Teacher) Replace an exam's content
// @Description Full replace of exam fields and question set in one transaction. Existing results are preserved.
// @Tags Teacher - Exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exam_id path int true "Exam ID"
// @Param exam body dto.ExamDraftDTO true "Exam draft"
// @Success 200 {object} dto.ExamDetailDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/exams/{exam_id} [put]
func (c *AdminExamController) UpdateExam(ctx *gin.Context) {
	examID, ok := examIDParam(ctx)
	if !ok {
		return
	}
	var draft dto.ExamDraftDTO
	if err := ctx.ShouldBindJSON(&draft); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	detail, err := c.adminService.UpdateExam(examID, draft)
	if err != nil {
		log.Warn().Err(err).Uint("examID", examID).Msg("UpdateExam: rejected")
		ctx.JSON(controller.StatusFor(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// DeleteExam godoc
// @Summary (Teacher) Soft-delete an exam
// @Description Marks the exam inactive. It disappears from student listings; results remain.
// @Tags Teacher - Exams
// @Produce json
// @Security BearerAuth
// @Param exam_id path int true "Exam ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/exams/{exam_id} [delete]
func (c *AdminExamController) DeleteExam(ctx *gin.Context) {
	examID, ok := examIDParam(ctx)
	if !ok {
		return
	}
	if err := c.adminService.DeleteExam(examID); err != nil {
		ctx.JSON(controller.StatusFor(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// SetResultVisibility godoc
// @Summary (Teacher) Toggle whether students may view their results
// @Tags Teacher - Exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exam_id path int true "Exam ID"
// @Param visibility body dto.VisibilityDTO true "Visibility flag"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/exams/{exam_id}/visibility [patch]
func (c *AdminExamController) SetResultVisibility(ctx *gin.Context) {
	examID, ok := examIDParam(ctx)
	if !ok {
		return
	}
	var req dto.VisibilityDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	if err := c.adminService.SetResultVisibility(examID, *req.Visible); err != nil {
		ctx.JSON(controller.StatusFor(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ListResults godoc
// @Summary (Teacher) List every result for an exam
// @Description Results ordered by score descending.
// @Tags Teacher - Exams
// @Produce json
// @Security BearerAuth
// @Param exam_id path int true "Exam ID"
// @Success 200 {array} dto.ExamResultDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/exams/{exam_id}/results [get]
func (c *AdminExamController) ListResults(ctx *gin.Context) {
	examID, ok := examIDParam(ctx)
	if !ok {
		return
	}
	results, err := c.adminService.ListResults(examID)
	if err != nil {
		ctx.JSON(controller.StatusFor(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, results)
}
