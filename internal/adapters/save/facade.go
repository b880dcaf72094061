package save

import (
	"context"

	"github.com/bnema/gamekit/internal/ports"
)

// Facade forwards every call to a swappable default SaveService. It is built
// once in the composition root and passed to whoever needs persistence.
type Facade struct {
	current ports.SaveService
}

var _ ports.SaveService = (*Facade)(nil)

func NewFacade(svc ports.SaveService) *Facade {
	return &Facade{current: svc}
}

// SetDefault swaps the default service. A nil service is ignored.
func (f *Facade) SetDefault(svc ports.SaveService) {
	if svc == nil {
		return
	}
	f.current = svc
}

func (f *Facade) Default() ports.SaveService {
	return f.current
}

func (f *Facade) SaveOne(ctx context.Context, object any, fileName string, pretty bool) error {
	return f.current.SaveOne(ctx, object, fileName, pretty)
}

func (f *Facade) LoadOne(ctx context.Context, object any, fileName string) error {
	return f.current.LoadOne(ctx, object, fileName)
}

func (f *Facade) SaveMany(ctx context.Context, objects []any, fileName string, pretty bool) error {
	return f.current.SaveMany(ctx, objects, fileName, pretty)
}

func (f *Facade) LoadMany(ctx context.Context, objects []any, fileName string) error {
	return f.current.LoadMany(ctx, objects, fileName)
}

func (f *Facade) SaveValue(ctx context.Context, value any, fileName string, pretty bool) error {
	return f.current.SaveValue(ctx, value, fileName, pretty)
}

func (f *Facade) LoadValue(ctx context.Context, fileName string, out any) (bool, error) {
	return f.current.LoadValue(ctx, fileName, out)
}
