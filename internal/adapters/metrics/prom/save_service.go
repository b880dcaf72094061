package prom

import (
	"context"
	"time"

	"github.com/bnema/gamekit/internal/ports"
)

type instrumentedSaveService struct {
	next      ports.SaveService
	collector *Collector
}

var _ ports.SaveService = (*instrumentedSaveService)(nil)

// InstrumentSaveService wraps next so every call is counted and timed.
func (c *Collector) InstrumentSaveService(next ports.SaveService) ports.SaveService {
	if next == nil {
		return nil
	}
	return &instrumentedSaveService{next: next, collector: c}
}

func (s *instrumentedSaveService) observe(op string, started time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	s.collector.saveOps.WithLabelValues(op, result).Inc()
	s.collector.saveDuration.WithLabelValues(op).Observe(time.Since(started).Seconds())
}

func (s *instrumentedSaveService) SaveOne(ctx context.Context, object any, fileName string, pretty bool) (err error) {
	defer func(started time.Time) { s.observe("save_one", started, err) }(time.Now())
	return s.next.SaveOne(ctx, object, fileName, pretty)
}

func (s *instrumentedSaveService) LoadOne(ctx context.Context, object any, fileName string) (err error) {
	defer func(started time.Time) { s.observe("load_one", started, err) }(time.Now())
	return s.next.LoadOne(ctx, object, fileName)
}

func (s *instrumentedSaveService) SaveMany(ctx context.Context, objects []any, fileName string, pretty bool) (err error) {
	defer func(started time.Time) { s.observe("save_many", started, err) }(time.Now())
	return s.next.SaveMany(ctx, objects, fileName, pretty)
}

func (s *instrumentedSaveService) LoadMany(ctx context.Context, objects []any, fileName string) (err error) {
	defer func(started time.Time) { s.observe("load_many", started, err) }(time.Now())
	return s.next.LoadMany(ctx, objects, fileName)
}

func (s *instrumentedSaveService) SaveValue(ctx context.Context, value any, fileName string, pretty bool) (err error) {
	defer func(started time.Time) { s.observe("save_value", started, err) }(time.Now())
	return s.next.SaveValue(ctx, value, fileName, pretty)
}

func (s *instrumentedSaveService) LoadValue(ctx context.Context, fileName string, out any) (found bool, err error) {
	defer func(started time.Time) { s.observe("load_value", started, err) }(time.Now())
	return s.next.LoadValue(ctx, fileName, out)
}
