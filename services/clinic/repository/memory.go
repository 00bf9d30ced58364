package repository

import (
	"context"
	"sort"
	"sync"

	"clinic/domain"
)

// memoryRepository keeps records in process memory. Records are copied on the
// way in and out so callers never share state with the store.
type memoryRepository[T any, PT domain.RecordPtr[T]] struct {
	mu     sync.RWMutex
	data   map[int]T
	nextID int
}

func NewMemoryRepository[T any, PT domain.RecordPtr[T]]() domain.RecordRepo[T] {
	return &memoryRepository[T, PT]{
		data:   make(map[int]T),
		nextID: 1,
	}
}

func NewPatientMemoryRepository() domain.RecordRepo[domain.Patient] {
	return NewMemoryRepository[domain.Patient]()
}

func NewDoctorMemoryRepository() domain.RecordRepo[domain.Doctor] {
	return NewMemoryRepository[domain.Doctor]()
}

func (mr *memoryRepository[T, PT]) Create(ctx context.Context, rec *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	mr.mu.Lock()
	defer mr.mu.Unlock()

	PT(rec).SetID(mr.nextID)
	mr.nextID++
	mr.data[PT(rec).GetID()] = *rec
	return nil
}

func (mr *memoryRepository[T, PT]) GetAll(ctx context.Context) (*[]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mr.mu.RLock()
	defer mr.mu.RUnlock()

	ids := make([]int, 0, len(mr.data))
	for id := range mr.data {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	records := make([]T, 0, len(ids))
	for _, id := range ids {
		records = append(records, mr.data[id])
	}
	return &records, nil
}

func (mr *memoryRepository[T, PT]) GetByID(ctx context.Context, id int) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mr.mu.RLock()
	defer mr.mu.RUnlock()

	rec, ok := mr.data[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &rec, nil
}

func (mr *memoryRepository[T, PT]) Update(ctx context.Context, id int, rec *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	mr.mu.Lock()
	defer mr.mu.Unlock()

	if _, ok := mr.data[id]; !ok {
		return domain.ErrNotFound
	}

	PT(rec).SetID(id)
	mr.data[id] = *rec
	return nil
}

func (mr *memoryRepository[T, PT]) Delete(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	mr.mu.Lock()
	defer mr.mu.Unlock()

	if _, ok := mr.data[id]; !ok {
		return domain.ErrNotFound
	}
	delete(mr.data, id)
	return nil
}
