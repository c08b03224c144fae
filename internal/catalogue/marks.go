package catalogue

import (
	"context"

	"gorm.io/gorm"

	"github.com/Spok95/online-catalogue/internal/models"
)

// AddMark records a mark for the student, stamped with the current UTC time.
// The subject is not looked up; an unknown subject id fails on the foreign key.
func (r *Repository) AddMark(ctx context.Context, studentID, subjectID int64, value int) error {
	return r.unit(ctx, "AddMark", func(tx *gorm.DB) error {
		if err := exists(tx, &models.Student{}, "student", studentID); err != nil {
			return err
		}
		m := models.Mark{Value: value, SubjectID: subjectID, StudentID: studentID, CreatedAt: r.now()}
		if err := r.validate.Struct(&m); err != nil {
			return err
		}
		return tx.Create(&m).Error
	})
}

// ListMarks returns the student's marks, only those for subjectID when it is set.
func (r *Repository) ListMarks(ctx context.Context, studentID int64, subjectID *int64) ([]models.Mark, error) {
	var out []models.Mark
	err := r.unit(ctx, "ListMarks", func(tx *gorm.DB) error {
		if err := exists(tx, &models.Student{}, "student", studentID); err != nil {
			return err
		}
		q := tx.Where("student_id = ?", studentID)
		if subjectID != nil {
			q = q.Where("subject_id = ?", *subjectID)
		}
		return q.Order("id").Find(&out).Error
	})
	return out, err
}

// AveragesPerSubject returns one mean per subject the student has marks in.
func (r *Repository) AveragesPerSubject(ctx context.Context, studentID int64) ([]models.AverageForSubject, error) {
	var out []models.AverageForSubject
	err := r.unit(ctx, "AveragesPerSubject", func(tx *gorm.DB) error {
		if err := exists(tx, &models.Student{}, "student", studentID); err != nil {
			return err
		}
		return tx.Model(&models.Mark{}).
			Select("subject_id, AVG(value)::float8 AS average").
			Where("student_id = ?", studentID).
			Group("subject_id").
			Order("subject_id").
			Scan(&out).Error
	})
	return out, err
}

// ListMarksByTeacher returns the marks given in the subjects the teacher teaches.
func (r *Repository) ListMarksByTeacher(ctx context.Context, teacherID int64) ([]models.Mark, error) {
	var out []models.Mark
	err := r.unit(ctx, "ListMarksByTeacher", func(tx *gorm.DB) error {
		if err := exists(tx, &models.Teacher{}, "teacher", teacherID); err != nil {
			return err
		}
		taught := tx.Model(&models.Subject{}).Select("id").Where("teacher_id = ?", teacherID)
		return tx.Where("subject_id IN (?)", taught).Order("id").Find(&out).Error
	})
	return out, err
}
