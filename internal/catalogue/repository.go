// Package catalogue is the data-access layer of the online catalogue.
//
// Every exported method is one unit of work: it runs inside its own
// transaction bound to the caller's context (with the DB timeout applied),
// commits on success and rolls back on any error.
package catalogue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Spok95/online-catalogue/internal/ctxutil"
	"github.com/Spok95/online-catalogue/internal/logging"
	"github.com/Spok95/online-catalogue/internal/metrics"
	"github.com/Spok95/online-catalogue/internal/models"
)

type Repository struct {
	db       *gorm.DB
	log      *zap.Logger
	validate *validator.Validate
	now      func() time.Time
}

func New(db *gorm.DB, log *zap.Logger) *Repository {
	return &Repository{
		db:       db,
		log:      log.Named("catalogue"),
		validate: NewValidator(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// NewValidator returns a validator that knows the catalogue's custom tags.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("rank", func(fl validator.FieldLevel) bool {
		r, ok := fl.Field().Interface().(models.Rank)
		return ok && r.Valid()
	})
	return v
}

// StudentFields are the caller-editable columns of a student.
type StudentFields struct {
	FirstName string
	LastName  string
	Age       int
}

// AddressFields are the caller-editable columns of an address.
type AddressFields struct {
	City   string
	Street string
	Number int
}

func (r *Repository) unit(ctx context.Context, op string, fn func(tx *gorm.DB) error) (err error) {
	ctx = ctxutil.WithOp(ctx, op)
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	start := time.Now()
	defer func() {
		elapsed := time.Since(start)
		l := logging.FromContext(ctx, r.log)
		switch {
		case err == nil:
			metrics.ObserveRepoOp(op, "ok", elapsed)
			l.Debug("done", zap.Duration("elapsed", elapsed))
		case errors.Is(err, ErrNotFound):
			metrics.ObserveRepoOp(op, "not_found", elapsed)
			l.Debug("not found", zap.Duration("elapsed", elapsed), zap.Error(err))
		default:
			metrics.ObserveRepoOp(op, "error", elapsed)
			l.Warn("failed", zap.Duration("elapsed", elapsed), zap.Error(err))
			err = fmt.Errorf("%s: %w", op, err)
		}
	}()

	return r.db.WithContext(ctx).Transaction(fn)
}

// first loads the row with the given id into dest, turning a missing row
// into a NotFoundError for entity.
func first(tx *gorm.DB, dest any, entity string, id int64) error {
	err := tx.First(dest, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(entity, id)
	}
	return err
}

// exists is first without loading anything but the id.
func exists(tx *gorm.DB, model any, entity string, id int64) error {
	var n int64
	if err := tx.Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return notFound(entity, id)
	}
	return nil
}

// upsertAddress updates current in place, or creates a new address owned
// through setOwner when there is none yet.
func (r *Repository) upsertAddress(tx *gorm.DB, current *models.Address, in AddressFields, setOwner func(*models.Address)) error {
	next := models.Address{City: in.City, Street: in.Street, Number: in.Number}
	if err := r.validate.Struct(&next); err != nil {
		return err
	}
	if current == nil {
		setOwner(&next)
		return tx.Create(&next).Error
	}
	return tx.Model(current).Updates(map[string]any{
		"city":   next.City,
		"street": next.Street,
		"number": next.Number,
	}).Error
}

// Stats counts rows per table.
func (r *Repository) Stats(ctx context.Context) (models.Stats, error) {
	var s models.Stats
	err := r.unit(ctx, "Stats", func(tx *gorm.DB) error {
		counts := []struct {
			model any
			dst   *int64
		}{
			{&models.Student{}, &s.Students},
			{&models.Teacher{}, &s.Teachers},
			{&models.Subject{}, &s.Subjects},
			{&models.Mark{}, &s.Marks},
		}
		for _, c := range counts {
			if err := tx.Model(c.model).Count(c.dst).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return s, err
}
