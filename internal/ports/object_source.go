package ports

// ObjectSource supplies the fixed set of persistable objects handled by the
// data lifecycle service. Slot order defines the payload layout.
type ObjectSource interface {
	BuildObjects() []any
}

type ObjectSourceFunc func() []any

func (f ObjectSourceFunc) BuildObjects() []any {
	return f()
}
