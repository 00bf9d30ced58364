package domain

import "context"

// Record is a persisted resource with a store-assigned identifier.
type Record interface {
	GetID() int
	SetID(id int)
	// Kind is the lower-case resource name used in messages, e.g. "patient".
	Kind() string
}

// RecordPtr constrains a type parameter to a pointer of T that implements Record.
type RecordPtr[T any] interface {
	*T
	Record
}

// Payload is the wire form of a record before the store assigns it an identifier.
type Payload[T any] interface {
	ToRecord() T
}

type RecordRepo[T any] interface {
	Create(ctx context.Context, rec *T) error
	GetAll(ctx context.Context) (*[]T, error)
	GetByID(ctx context.Context, id int) (*T, error)
	Update(ctx context.Context, id int, rec *T) error
	Delete(ctx context.Context, id int) error
}

type RecordUseCase[T any] interface {
	CreateRecord(ctx context.Context, rec *T) error
	GetAllRecords(ctx context.Context) (*[]T, error)
	GetRecordByID(ctx context.Context, id int) (*T, error)
	UpdateRecord(ctx context.Context, id int, rec *T) error
	DeleteRecord(ctx context.Context, id int) error
}
