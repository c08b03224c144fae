// Package httpapi exposes the catalogue over HTTP/JSON with gin.
package httpapi

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Spok95/online-catalogue/internal/catalogue"
	"github.com/Spok95/online-catalogue/internal/models"
)

// Catalogue is what the handlers need from the repository.
type Catalogue interface {
	ListStudents(ctx context.Context) ([]models.Student, error)
	GetStudent(ctx context.Context, id int64) (*models.Student, error)
	CreateStudent(ctx context.Context, in catalogue.StudentFields) (*models.Student, error)
	DeleteStudent(ctx context.Context, id int64, deleteAddress bool) error
	UpdateStudent(ctx context.Context, id int64, in catalogue.StudentFields) error
	UpsertStudentAddress(ctx context.Context, id int64, in catalogue.AddressFields) error
	AddMark(ctx context.Context, studentID, subjectID int64, value int) error
	ListMarks(ctx context.Context, studentID int64, subjectID *int64) ([]models.Mark, error)
	AveragesPerSubject(ctx context.Context, studentID int64) ([]models.AverageForSubject, error)
	StudentsOrderedByAverage(ctx context.Context, descending bool) ([]models.StudentWithAverage, error)

	ListSubjects(ctx context.Context) ([]models.Subject, error)
	AddSubject(ctx context.Context, name string, teacherID int64) (*models.Subject, error)
	DeleteSubject(ctx context.Context, id int64) error

	CreateTeacher(ctx context.Context, name string, rank models.Rank) (*models.Teacher, error)
	GetTeacher(ctx context.Context, id int64) (*models.Teacher, error)
	DeleteTeacher(ctx context.Context, id int64) error
	UpsertTeacherAddress(ctx context.Context, id int64, in catalogue.AddressFields) error
	AssignTeacherToSubject(ctx context.Context, teacherID, subjectID int64) error
	PromoteTeacher(ctx context.Context, id int64) error
	ListMarksByTeacher(ctx context.Context, teacherID int64) ([]models.Mark, error)
}

var _ Catalogue = (*catalogue.Repository)(nil)

type Handler struct {
	cat Catalogue
	log *zap.Logger
}

func New(cat Catalogue, log *zap.Logger) *Handler {
	return &Handler{cat: cat, log: log.Named("http")}
}

// Router builds the gin engine with every /api route registered.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), AccessLog(h.log))

	api := r.Group("/api")

	students := api.Group("/students")
	students.GET("", h.listStudents)
	students.POST("", h.createStudent)
	students.GET("/ordered", h.orderedStudents)
	students.GET("/ordered/export", h.exportRanking)
	students.GET("/:id", h.getStudent)
	students.PUT("/:id", h.updateStudent)
	students.DELETE("/:id", h.deleteStudent)
	students.PUT("/:id/address", h.upsertStudentAddress)
	students.POST("/:id/marks", h.addMark)
	students.GET("/:id/marks", h.listMarks)
	students.GET("/:id/averages", h.averages)

	subjects := api.Group("/subjects")
	subjects.GET("", h.listSubjects)
	subjects.POST("", h.addSubject)
	subjects.DELETE("/:id", h.deleteSubject)

	teachers := api.Group("/teachers")
	teachers.POST("", h.createTeacher)
	teachers.GET("/:id", h.getTeacher)
	teachers.DELETE("/:id", h.deleteTeacher)
	teachers.PUT("/:id/address", h.upsertTeacherAddress)
	teachers.POST("/:id/subjects/:subjectId", h.assignSubject)
	teachers.POST("/:id/promote", h.promoteTeacher)
	teachers.GET("/:id/marks", h.teacherMarks)

	return r
}
