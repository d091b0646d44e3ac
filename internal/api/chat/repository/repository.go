package chatRepository

import (
	"EcommerceChatbot/internal/dataset"
	"EcommerceChatbot/internal/entity"
	"github.com/sirupsen/logrus"
)

type Repository interface {
	// MissingTable reports the first of tables that has no rows yet.
	MissingTable(tables ...dataset.TableName) (dataset.TableName, bool)
	Stats() map[dataset.TableName]int
	Generation() string

	FindOrderByID(id string) (entity.Order, bool)
	CountOrdersByStatus(status string) int

	FindProductByID(id string) (entity.Product, bool)
	FindProductByName(query string) (entity.Product, bool)
	CountInStock(productID string) int
	SalesRanking() []entity.ProductSales
}

type repository struct {
	store *dataset.Store
	log   *logrus.Logger
}

func New(store *dataset.Store, log *logrus.Logger) Repository {
	return &repository{
		store: store,
		log:   log,
	}
}

func (r *repository) MissingTable(tables ...dataset.TableName) (dataset.TableName, bool) {
	for _, t := range tables {
		if r.store.Len(t) == 0 {
			return t, true
		}
	}
	return "", false
}

func (r *repository) Stats() map[dataset.TableName]int {
	return r.store.Stats()
}

func (r *repository) Generation() string {
	return r.store.Generation()
}
