package catalogue

import (
	"context"

	"gorm.io/gorm"

	"github.com/Spok95/online-catalogue/internal/models"
)

func (r *Repository) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	var out []models.Subject
	err := r.unit(ctx, "ListSubjects", func(tx *gorm.DB) error {
		return tx.Order("id").Find(&out).Error
	})
	return out, err
}

func (r *Repository) AddSubject(ctx context.Context, name string, teacherID int64) (*models.Subject, error) {
	s := models.Subject{Name: name, TeacherID: &teacherID}
	err := r.unit(ctx, "AddSubject", func(tx *gorm.DB) error {
		if err := r.validate.Struct(&s); err != nil {
			return err
		}
		return tx.Create(&s).Error
	})
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// DeleteSubject removes the subject; a missing one is not an error. Marks
// still referencing the subject make the delete fail.
func (r *Repository) DeleteSubject(ctx context.Context, id int64) error {
	return r.unit(ctx, "DeleteSubject", func(tx *gorm.DB) error {
		return tx.Delete(&models.Subject{}, id).Error
	})
}
