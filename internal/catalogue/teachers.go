package catalogue

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Spok95/online-catalogue/internal/models"
)

func (r *Repository) CreateTeacher(ctx context.Context, name string, rank models.Rank) (*models.Teacher, error) {
	t := models.Teacher{Name: name, Rank: rank}
	err := r.unit(ctx, "CreateTeacher", func(tx *gorm.DB) error {
		if err := r.validate.Struct(&t); err != nil {
			return err
		}
		return tx.Create(&t).Error
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetTeacher loads the teacher with its address and the subject it teaches.
// If several subjects point at the teacher the lowest id wins.
func (r *Repository) GetTeacher(ctx context.Context, id int64) (*models.Teacher, error) {
	var t models.Teacher
	err := r.unit(ctx, "GetTeacher", func(tx *gorm.DB) error {
		if err := first(tx.Preload("Address"), &t, "teacher", id); err != nil {
			return err
		}
		var subjects []models.Subject
		if err := tx.Where("teacher_id = ?", id).Order("id").Limit(1).Find(&subjects).Error; err != nil {
			return err
		}
		if len(subjects) > 0 {
			t.Subject = &subjects[0]
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteTeacher clears the teacher from the subjects it teaches and from its
// address, then removes it. Subjects and address stay. A missing teacher is
// not an error.
func (r *Repository) DeleteTeacher(ctx context.Context, id int64) error {
	return r.unit(ctx, "DeleteTeacher", func(tx *gorm.DB) error {
		err := exists(tx, &models.Teacher{}, "teacher", id)
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := tx.Model(&models.Subject{}).Where("teacher_id = ?", id).Update("teacher_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Address{}).Where("teacher_id = ?", id).Update("teacher_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Teacher{}, id).Error
	})
}

// UpsertTeacherAddress creates the teacher's address or updates it in place.
func (r *Repository) UpsertTeacherAddress(ctx context.Context, id int64, in AddressFields) error {
	return r.unit(ctx, "UpsertTeacherAddress", func(tx *gorm.DB) error {
		var t models.Teacher
		if err := first(tx.Preload("Address"), &t, "teacher", id); err != nil {
			return err
		}
		return r.upsertAddress(tx, t.Address, in, func(a *models.Address) { a.TeacherID = &t.ID })
	})
}

// AssignTeacherToSubject points the subject at teacherID. Only the subject
// has to exist.
func (r *Repository) AssignTeacherToSubject(ctx context.Context, teacherID, subjectID int64) error {
	return r.unit(ctx, "AssignTeacherToSubject", func(tx *gorm.DB) error {
		var s models.Subject
		if err := first(tx, &s, "subject", subjectID); err != nil {
			return err
		}
		return tx.Model(&s).Update("teacher_id", teacherID).Error
	})
}

// PromoteTeacher moves the teacher one rank up. Professors stay where they are.
func (r *Repository) PromoteTeacher(ctx context.Context, id int64) error {
	return r.unit(ctx, "PromoteTeacher", func(tx *gorm.DB) error {
		var t models.Teacher
		if err := first(tx, &t, "teacher", id); err != nil {
			return err
		}
		next := t.Rank.Next()
		if next == t.Rank {
			return nil
		}
		return tx.Model(&t).Update("rank", next).Error
	})
}
