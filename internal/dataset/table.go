package dataset

import (
	"errors"
	"sync/atomic"
)

type TableName string

const (
	TableDistributionCenters TableName = "distribution_centers"
	TableUsers               TableName = "users"
	TableProducts            TableName = "products"
	TableOrders              TableName = "orders"
	TableInventoryItems      TableName = "inventory_items"
	TableOrderItems          TableName = "order_items"
)

// LoadOrder respects the foreign keys between tables.
var LoadOrder = []TableName{
	TableDistributionCenters,
	TableUsers,
	TableProducts,
	TableOrders,
	TableInventoryItems,
	TableOrderItems,
}

var ErrTableAlreadyLoaded = errors.New("table already loaded")

type snapshot[T any] struct {
	rows  []T
	index map[string]int
}

// Table is a set-once collection of records. Until Publish is called it reads
// as empty; afterwards it never changes.
type Table[T any] struct {
	name TableName
	key  func(T) string
	snap atomic.Pointer[snapshot[T]]
}

func NewTable[T any](name TableName, key func(T) string) *Table[T] {
	return &Table[T]{name: name, key: key}
}

func (t *Table[T]) Name() TableName {
	return t.name
}

// Publish freezes rows as the table content. The slice must not be modified
// by the caller afterwards.
func (t *Table[T]) Publish(rows []T) error {
	index := make(map[string]int, len(rows))
	for i, row := range rows {
		k := t.key(row)
		if _, exists := index[k]; !exists {
			index[k] = i
		}
	}

	if !t.snap.CompareAndSwap(nil, &snapshot[T]{rows: rows, index: index}) {
		return ErrTableAlreadyLoaded
	}
	return nil
}

func (t *Table[T]) Loaded() bool {
	return t.snap.Load() != nil
}

func (t *Table[T]) Rows() []T {
	s := t.snap.Load()
	if s == nil {
		return nil
	}
	return s.rows
}

func (t *Table[T]) Len() int {
	return len(t.Rows())
}

// Get returns the first row whose natural key equals key.
func (t *Table[T]) Get(key string) (T, bool) {
	var zero T
	s := t.snap.Load()
	if s == nil {
		return zero, false
	}
	i, ok := s.index[key]
	if !ok {
		return zero, false
	}
	return s.rows[i], true
}
