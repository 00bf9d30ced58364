package usecase

import (
	"context"
	"time"

	"clinic/domain"
)

type recordUC[T any] struct {
	recordRepo domain.RecordRepo[T]
	TimeOut    time.Duration
}

func NewRecordUseCase[T any](repo domain.RecordRepo[T], timeOut time.Duration) domain.RecordUseCase[T] {
	return &recordUC[T]{
		recordRepo: repo,
		TimeOut:    timeOut,
	}
}

func (rUC *recordUC[T]) CreateRecord(ctx context.Context, rec *T) error {
	ctx, cancel := context.WithTimeout(ctx, rUC.TimeOut)
	defer cancel()

	return rUC.recordRepo.Create(ctx, rec)
}

func (rUC *recordUC[T]) GetAllRecords(ctx context.Context) (*[]T, error) {
	ctx, cancel := context.WithTimeout(ctx, rUC.TimeOut)
	defer cancel()

	records, err := rUC.recordRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (rUC *recordUC[T]) GetRecordByID(ctx context.Context, id int) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, rUC.TimeOut)
	defer cancel()

	rec, err := rUC.recordRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (rUC *recordUC[T]) UpdateRecord(ctx context.Context, id int, rec *T) error {
	ctx, cancel := context.WithTimeout(ctx, rUC.TimeOut)
	defer cancel()

	return rUC.recordRepo.Update(ctx, id, rec)
}

func (rUC *recordUC[T]) DeleteRecord(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, rUC.TimeOut)
	defer cancel()

	return rUC.recordRepo.Delete(ctx, id)
}
