package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Spok95/online-catalogue/internal/export"
	"github.com/Spok95/online-catalogue/internal/logging"
	"github.com/Spok95/online-catalogue/internal/observability"
)

func (h *Handler) listStudents(c *gin.Context) {
	out, err := h.cat.ListStudents(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) getStudent(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}
	s, err := h.cat.GetStudent(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *Handler) createStudent(c *gin.Context) {
	var req studentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	s, err := h.cat.CreateStudent(c.Request.Context(), req.fields())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *Handler) updateStudent(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}
	var req studentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.cat.UpdateStudent(c.Request.Context(), id, req.fields()); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *Handler) deleteStudent(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}
	deleteAddress, err := queryBool(c, "deleteAddress")
	if err != nil {
		badRequest(c, err)
		return
	}
	if err := h.cat.DeleteStudent(c.Request.Context(), id, deleteAddress); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *Handler) upsertStudentAddress(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}
	var req addressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.cat.UpsertStudentAddress(c.Request.Context(), id, req.fields()); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *Handler) addMark(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}
	var req markRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.cat.AddMark(c.Request.Context(), id, req.SubjectID, req.Value); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *Handler) listMarks(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}
	var subjectID *int64
	if v := c.Query("subjectId"); v != "" {
		sid, err := parseID(v, "subjectId")
		if err != nil {
			badRequest(c, err)
			return
		}
		subjectID = &sid
	}
	out, err := h.cat.ListMarks(c.Request.Context(), id, subjectID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) averages(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}
	out, err := h.cat.AveragesPerSubject(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) orderedStudents(c *gin.Context) {
	desc, err := queryBool(c, "descending")
	if err != nil {
		badRequest(c, err)
		return
	}
	out, err := h.cat.StudentsOrderedByAverage(c.Request.Context(), desc)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// exportRanking streams the descending ranking as an xlsx attachment.
func (h *Handler) exportRanking(c *gin.Context) {
	rows, err := h.cat.StudentsOrderedByAverage(c.Request.Context(), true)
	if err != nil {
		h.writeError(c, err)
		return
	}
	wb, err := export.NewRankingWorkbook(rows)
	if err != nil {
		h.writeError(c, err)
		return
	}
	defer wb.Close()

	c.Header("Content-Disposition", `attachment; filename="`+export.RankingFilename(time.Now())+`"`)
	c.Header("Content-Type", export.ContentType)
	c.Status(http.StatusOK)
	if err := wb.Write(c.Writer); err != nil {
		// headers are already out, nothing left to answer
		ctx := c.Request.Context()
		logging.FromContext(ctx, h.log).Error("write workbook", zap.Error(err))
		observability.CaptureErrCtx(ctx, err)
	}
}
