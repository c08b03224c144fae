package catalogue

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Spok95/online-catalogue/internal/models"
)

func (r *Repository) ListStudents(ctx context.Context) ([]models.Student, error) {
	var out []models.Student
	err := r.unit(ctx, "ListStudents", func(tx *gorm.DB) error {
		return tx.Preload("Address").Order("id").Find(&out).Error
	})
	return out, err
}

func (r *Repository) GetStudent(ctx context.Context, id int64) (*models.Student, error) {
	var s models.Student
	err := r.unit(ctx, "GetStudent", func(tx *gorm.DB) error {
		return first(tx.Preload("Address"), &s, "student", id)
	})
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateStudent inserts a student with no address and no marks.
func (r *Repository) CreateStudent(ctx context.Context, in StudentFields) (*models.Student, error) {
	s := models.Student{FirstName: in.FirstName, LastName: in.LastName, Age: in.Age}
	err := r.unit(ctx, "CreateStudent", func(tx *gorm.DB) error {
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

// DeleteStudent removes the student and, through the schema, its marks.
// A missing student is not an error.
//
// With deleteAddress=false the address is kept and detached. With
// deleteAddress=true it is removed, unless a teacher also points at it; then
// it is only detached.
func (r *Repository) DeleteStudent(ctx context.Context, id int64, deleteAddress bool) error {
	return r.unit(ctx, "DeleteStudent", func(tx *gorm.DB) error {
		var s models.Student
		err := first(tx.Preload("Address"), &s, "student", id)
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		if a := s.Address; a != nil {
			if deleteAddress && a.TeacherID == nil {
				err = tx.Delete(&models.Address{}, a.ID).Error
			} else {
				err = tx.Model(&models.Address{}).Where("id = ?", a.ID).Update("student_id", nil).Error
			}
			if err != nil {
				return err
			}
		}
		return tx.Delete(&models.Student{}, id).Error
	})
}

func (r *Repository) UpdateStudent(ctx context.Context, id int64, in StudentFields) error {
	return r.unit(ctx, "UpdateStudent", func(tx *gorm.DB) error {
		var s models.Student
		if err := first(tx, &s, "student", id); err != nil {
			return err
		}
		s.FirstName, s.LastName, s.Age = in.FirstName, in.LastName, in.Age
		if err := r.validate.Struct(&s); err != nil {
			return err
		}
		return tx.Model(&s).Updates(map[string]any{
			"first_name": s.FirstName,
			"last_name":  s.LastName,
			"age":        s.Age,
		}).Error
	})
}

// UpsertStudentAddress creates the student's address or updates it in place.
func (r *Repository) UpsertStudentAddress(ctx context.Context, id int64, in AddressFields) error {
	return r.unit(ctx, "UpsertStudentAddress", func(tx *gorm.DB) error {
		var s models.Student
		if err := first(tx.Preload("Address"), &s, "student", id); err != nil {
			return err
		}
		return r.upsertAddress(tx, s.Address, in, func(a *models.Address) { a.StudentID = &s.ID })
	})
}

// StudentsOrderedByAverage ranks students by the mean of their marks.
// Students without marks have no mean and are left out. Equal means are
// ordered by id.
func (r *Repository) StudentsOrderedByAverage(ctx context.Context, descending bool) ([]models.StudentWithAverage, error) {
	dir := "ASC"
	if descending {
		dir = "DESC"
	}
	var out []models.StudentWithAverage
	err := r.unit(ctx, "StudentsOrderedByAverage", func(tx *gorm.DB) error {
		return tx.Table("students AS s").
			Select("s.id, s.first_name || s.last_name AS name, s.age, AVG(m.value)::float8 AS average").
			Joins("JOIN marks m ON m.student_id = s.id").
			Group("s.id").
			Order("average " + dir).
			Order("s.id").
			Scan(&out).Error
	})
	return out, err
}
