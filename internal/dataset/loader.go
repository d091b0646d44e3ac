package dataset

import (
	"EcommerceChatbot/pkg/metrics"
	"EcommerceChatbot/pkg/utils"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Loader fills a Store from a Source, one table at a time.
type Loader struct {
	source Source
	store  *Store
	log    *logrus.Logger
	utils  utils.IUtils
}

func NewLoader(source Source, store *Store, log *logrus.Logger) *Loader {
	return &Loader{
		source: source,
		store:  store,
		log:    log,
		utils:  utils.New(),
	}
}

// Load attempts every table in LoadOrder. A table that fails stays empty and
// the remaining tables are still loaded. The joined per-table errors are
// returned once every table was attempted.
func (l *Loader) Load(ctx context.Context) error {
	start := time.Now()
	l.log.WithFields(logrus.Fields{
		"source": l.source.Name(),
	}).Info("Starting dataset load")

	var errs []error
	for _, table := range LoadOrder {
		if err := ctx.Err(); err != nil {
			errs = append(errs, fmt.Errorf("load %s: %w", table, err))
			break
		}

		rows, skipped, err := l.loadTable(ctx, table)
		if err != nil {
			metrics.DatasetLoadFailures.WithLabelValues(string(table)).Inc()
			l.log.WithFields(logrus.Fields{
				"table":  table,
				"source": l.source.Name(),
				"error":  err.Error(),
			}).Error("Failed to load dataset table")
			errs = append(errs, fmt.Errorf("load %s: %w", table, err))
			continue
		}

		metrics.DatasetTableRows.WithLabelValues(string(table)).Set(float64(rows))
		fields := logrus.Fields{
			"table": table,
			"rows":  rows,
		}
		if skipped > 0 {
			fields["skipped"] = skipped
			l.log.WithFields(fields).Warn("Dataset table loaded with malformed rows skipped")
		} else {
			l.log.WithFields(fields).Info("Dataset table loaded")
		}
	}

	generation, err := l.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		generation = fmt.Sprintf("%d", time.Now().UnixNano())
	}
	l.store.MarkLoaded(generation)

	l.log.WithFields(logrus.Fields{
		"generation": generation,
		"failed":     len(errs),
		"elapsed_ms": time.Since(start).Milliseconds(),
	}).Info("Dataset load finished")

	return errors.Join(errs...)
}

func (l *Loader) loadTable(ctx context.Context, table TableName) (int, int, error) {
	frame, err := l.source.Fetch(ctx, table)
	if err != nil {
		return 0, 0, err
	}

	rows, err := Publish(l.store, table, frame)
	if err != nil {
		return 0, frame.Skipped, err
	}
	return rows, frame.Skipped, nil
}

// Publish decodes frame into the named table of store and freezes it.
func Publish(store *Store, table TableName, frame *Frame) (int, error) {
	switch table {
	case TableDistributionCenters:
		return publishDecoded(store.DistributionCenters, frame, DecodeDistributionCenters)
	case TableUsers:
		return publishDecoded(store.Users, frame, DecodeUsers)
	case TableProducts:
		return publishDecoded(store.Products, frame, DecodeProducts)
	case TableOrders:
		return publishDecoded(store.Orders, frame, DecodeOrders)
	case TableInventoryItems:
		return publishDecoded(store.InventoryItems, frame, DecodeInventoryItems)
	case TableOrderItems:
		return publishDecoded(store.OrderItems, frame, DecodeOrderItems)
	default:
		return 0, fmt.Errorf("unknown table %q", table)
	}
}

func publishDecoded[T any](t *Table[T], frame *Frame, decode func(*Frame) ([]T, error)) (int, error) {
	rows, err := decode(frame)
	if err != nil {
		return 0, err
	}
	if err := t.Publish(rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}
