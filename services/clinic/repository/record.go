package repository

import (
	"context"
	"errors"
	"fmt"

	"clinic/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type recordRepository[T any, PT domain.RecordPtr[T]] struct {
	db *gorm.DB
}

func NewRecordRepository[T any, PT domain.RecordPtr[T]](database *gorm.DB) domain.RecordRepo[T] {
	return &recordRepository[T, PT]{
		db: database,
	}
}

func NewPatientRepository(database *gorm.DB) domain.RecordRepo[domain.Patient] {
	return NewRecordRepository[domain.Patient](database)
}

func NewDoctorRepository(database *gorm.DB) domain.RecordRepo[domain.Doctor] {
	return NewRecordRepository[domain.Doctor](database)
}

func (rr *recordRepository[T, PT]) Create(ctx context.Context, rec *T) error {
	PT(rec).SetID(0)

	if err := rr.db.WithContext(ctx).Create(rec).Error; err != nil {
		return translateError(kindOf[T, PT](), "create", err)
	}
	return nil
}

func (rr *recordRepository[T, PT]) GetAll(ctx context.Context) (*[]T, error) {
	records := []T{}

	err := rr.db.WithContext(ctx).Order("id").Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("could not get all %ss: %w", kindOf[T, PT](), err)
	}
	return &records, nil
}

func (rr *recordRepository[T, PT]) GetByID(ctx context.Context, id int) (*T, error) {
	var rec T

	err := rr.db.WithContext(ctx).First(&rec, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("could not get %s %d: %w", kindOf[T, PT](), id, err)
	}
	return &rec, nil
}

// Update replaces every writable column of record id with the values in rec.
func (rr *recordRepository[T, PT]) Update(ctx context.Context, id int, rec *T) error {
	PT(rec).SetID(0)

	return rr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing T
		if err := tx.Select("id").First(&existing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("could not get %s %d: %w", kindOf[T, PT](), id, err)
		}

		err := tx.Model(&existing).Select("*").Omit("id", "created_at").Updates(rec).Error
		if err != nil {
			return translateError(kindOf[T, PT](), "update", err)
		}

		if err := tx.First(rec, id).Error; err != nil {
			return fmt.Errorf("could not reload %s %d: %w", kindOf[T, PT](), id, err)
		}
		return nil
	})
}

func (rr *recordRepository[T, PT]) Delete(ctx context.Context, id int) error {
	result := rr.db.WithContext(ctx).Delete(PT(new(T)), id)
	if result.Error != nil {
		return fmt.Errorf("could not delete %s %d: %w", kindOf[T, PT](), id, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func kindOf[T any, PT domain.RecordPtr[T]]() string {
	return PT(new(T)).Kind()
}

// translateError keeps the SQLSTATE of postgres failures in the message so
// constraint errors can be told apart in the logs.
func translateError(kind, op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("could not %s %s: sqlstate %s: %w", op, kind, pgErr.Code, err)
	}
	return fmt.Errorf("could not %s %s: %w", op, kind, err)
}
