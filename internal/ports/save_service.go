package ports

import "context"

// SaveService persists caller-owned objects. Load operations overwrite the
// fields of the given objects in place.
type SaveService interface {
	SaveOne(ctx context.Context, object any, fileName string, pretty bool) error
	LoadOne(ctx context.Context, object any, fileName string) error
	SaveMany(ctx context.Context, objects []any, fileName string, pretty bool) error
	LoadMany(ctx context.Context, objects []any, fileName string) error
	SaveValue(ctx context.Context, value any, fileName string, pretty bool) error
	LoadValue(ctx context.Context, fileName string, out any) (bool, error)
}
