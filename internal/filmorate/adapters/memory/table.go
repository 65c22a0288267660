// Package memory реализует хранилища в памяти процесса.
// Каждое хранилище защищено собственным RWMutex; записи хранятся копиями,
// чтобы вызывающая сторона не могла изменить их в обход Update.
package memory

import (
	"context"
	"slices"
	"sync"

	"go.uber.org/zap"

	"filmorate/internal/filmorate/domain/entities"
	"filmorate/pkg/logger"
)

const (
	msgRecordCreated = "record created"
	msgRecordUpdated = "record updated"
)

// table - таблица записей с автоинкрементным идентификатором.
type table[T any] struct {
	mu     sync.RWMutex
	rows   map[int64]*T
	nextID int64
	kind   entities.Kind

	getID func(*T) int64
	setID func(*T, int64)
	clone func(*T) *T
}

func newTable[T any](kind entities.Kind, getID func(*T) int64, setID func(*T, int64), clone func(*T) *T) *table[T] {
	return &table[T]{
		rows:  make(map[int64]*T),
		kind:  kind,
		getID: getID,
		setID: setID,
		clone: clone,
	}
}

func (t *table[T]) Create(ctx context.Context, entity *T) (*T, error) {
	t.mu.Lock()
	t.nextID++
	id := t.nextID
	row := t.clone(entity)
	t.setID(row, id)
	t.rows[id] = row
	t.mu.Unlock()

	logger.Log(ctx).Debug(ctx, msgRecordCreated, zap.String("kind", string(t.kind)), zap.Int64("id", id))
	return t.clone(row), nil
}

func (t *table[T]) Update(ctx context.Context, entity *T) (*T, error) {
	id := t.getID(entity)

	t.mu.Lock()
	if _, ok := t.rows[id]; !ok {
		t.mu.Unlock()
		return nil, entities.NewNotFoundError(t.kind, id)
	}
	row := t.clone(entity)
	t.rows[id] = row
	t.mu.Unlock()

	logger.Log(ctx).Debug(ctx, msgRecordUpdated, zap.String("kind", string(t.kind)), zap.Int64("id", id))
	return t.clone(row), nil
}

func (t *table[T]) FindByID(_ context.Context, id int64) (*T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	if !ok {
		return nil, entities.NewNotFoundError(t.kind, id)
	}
	return t.clone(row), nil
}

// FindAll возвращает записи по возрастанию идентификатора.
func (t *table[T]) FindAll(_ context.Context) ([]*T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ids := make([]int64, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	result := make([]*T, 0, len(ids))
	for _, id := range ids {
		result = append(result, t.clone(t.rows[id]))
	}
	return result, nil
}

// seed вставляет записи с заранее заданными идентификаторами.
func (t *table[T]) seed(rows ...T) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range rows {
		row := t.clone(&rows[i])
		id := t.getID(row)
		t.rows[id] = row
		t.nextID = max(t.nextID, id)
	}
}
