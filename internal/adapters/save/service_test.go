package save

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/gamekit/internal/adapters/codec"
	"github.com/bnema/gamekit/internal/adapters/save/file"
	"github.com/bnema/gamekit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scoreCard struct {
	Name  string `json:"name" toml:"name" yaml:"name"`
	Score int    `json:"score" toml:"score" yaml:"score"`
}

type levelState struct {
	ID    string `json:"id" toml:"id" yaml:"id"`
	Level int    `json:"level" toml:"level" yaml:"level"`
}

type memoryStore struct {
	blobs    map[string][]byte
	writes   int
	writeErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{blobs: map[string][]byte{}}
}

func (m *memoryStore) Read(_ context.Context, name string) ([]byte, error) {
	data, ok := m.blobs[name]
	if !ok {
		return nil, domain.ErrSaveNotFound
	}
	return data, nil
}

func (m *memoryStore) Write(_ context.Context, name string, data []byte) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.writes++
	m.blobs[name] = append([]byte(nil), data...)
	return nil
}

func newFileService(t *testing.T, c codec.Codec) (*Service, string) {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "data")
	store, err := file.NewStore(dir)
	require.NoError(t, err)
	return NewService(store, c, nil), dir
}

func TestSingleObjectRoundTrip(t *testing.T) {
	t.Parallel()

	for _, c := range []codec.Codec{codec.JSON{}, codec.TOML{}, codec.YAML{}} {
		c := c
		t.Run(c.Name(), func(t *testing.T) {
			t.Parallel()

			svc, _ := newFileService(t, c)
			ctx := context.Background()

			require.NoError(t, svc.SaveOne(ctx, &scoreCard{Name: "Player", Score: 99}, "score.sav", true))

			loaded := &scoreCard{}
			require.NoError(t, svc.LoadOne(ctx, loaded, "score.sav"))
			assert.Equal(t, scoreCard{Name: "Player", Score: 99}, *loaded)
		})
	}
}

func TestMultiObjectRoundTripRestoresAfterMutation(t *testing.T) {
	t.Parallel()

	for _, c := range []codec.Codec{codec.JSON{}, codec.TOML{}, codec.YAML{}} {
		c := c
		t.Run(c.Name(), func(t *testing.T) {
			t.Parallel()

			svc, _ := newFileService(t, c)
			ctx := context.Background()

			a := &levelState{ID: "One", Level: 1}
			b := &levelState{ID: "Two", Level: 2}
			require.NoError(t, svc.SaveMany(ctx, []any{a, b}, "multi.sav", true))

			a.ID = "X"
			b.ID = "Y"
			require.NoError(t, svc.LoadMany(ctx, []any{a, b}, "multi.sav"))

			assert.Equal(t, "One", a.ID)
			assert.Equal(t, "Two", b.ID)
			assert.Equal(t, 1, a.Level)
			assert.Equal(t, 2, b.Level)
		})
	}
}

func TestLoadOneCreatesDefaultFile(t *testing.T) {
	t.Parallel()

	svc, dir := newFileService(t, codec.JSON{})
	ctx := context.Background()

	card := &scoreCard{Name: "Default", Score: 3}
	require.NoError(t, svc.LoadOne(ctx, card, "fresh.sav"))

	assert.Equal(t, scoreCard{Name: "Default", Score: 3}, *card)
	require.FileExists(t, filepath.Join(dir, "fresh.sav"))

	stored := &scoreCard{}
	found, err := svc.LoadValue(ctx, "fresh.sav", stored)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, *card, *stored)
}

func TestLoadManyMissingFileIsNoop(t *testing.T) {
	t.Parallel()

	svc, dir := newFileService(t, codec.JSON{})

	a := &levelState{ID: "keep", Level: 7}
	require.NoError(t, svc.LoadMany(context.Background(), []any{a}, "missing.sav"))

	assert.Equal(t, levelState{ID: "keep", Level: 7}, *a)
	_, err := os.Stat(filepath.Join(dir, "missing.sav"))
	assert.True(t, os.IsNotExist(err))
}

func TestAbsentInputsAreNoops(t *testing.T) {
	t.Parallel()

	store := newMemoryStore()
	svc := NewService(store, codec.JSON{}, nil)
	ctx := context.Background()

	var missing *scoreCard
	require.NoError(t, svc.SaveOne(ctx, nil, "", true))
	require.NoError(t, svc.SaveOne(ctx, missing, "a.sav", true))
	require.NoError(t, svc.LoadOne(ctx, missing, "a.sav"))
	require.NoError(t, svc.SaveMany(ctx, nil, "", true))
	require.NoError(t, svc.LoadMany(ctx, []any{}, "a.sav"))

	assert.Zero(t, store.writes)
}

func TestEmptyFileNameIsRejected(t *testing.T) {
	t.Parallel()

	svc := NewService(newMemoryStore(), codec.JSON{}, nil)
	ctx := context.Background()
	card := &scoreCard{}

	tests := []struct {
		name string
		call func() error
	}{
		{name: "save one", call: func() error { return svc.SaveOne(ctx, card, "", true) }},
		{name: "load one", call: func() error { return svc.LoadOne(ctx, card, "  ") }},
		{name: "save many", call: func() error { return svc.SaveMany(ctx, []any{card}, "", true) }},
		{name: "load many", call: func() error { return svc.LoadMany(ctx, []any{card}, "") }},
		{name: "load value", call: func() error { _, err := svc.LoadValue(ctx, "", card); return err }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.call(), domain.ErrEmptyFileName)
		})
	}
}

func TestSaveManyWritesEmptyFragmentForAbsentSlot(t *testing.T) {
	t.Parallel()

	store := newMemoryStore()
	svc := NewService(store, codec.JSON{}, nil)
	ctx := context.Background()

	var gap *levelState
	require.NoError(t, svc.SaveMany(ctx, []any{&levelState{ID: "One"}, gap, &levelState{ID: "Three"}}, "gap.sav", false))

	envelope, found, err := svc.Inspect(ctx, "gap.sav")
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, envelope.Fragments, 3)
	assert.Equal(t, EnvelopeVersion, envelope.Version)
	assert.NotEmpty(t, envelope.Fragments[0])
	assert.Empty(t, envelope.Fragments[1])
	assert.NotEmpty(t, envelope.Fragments[2])

	first := &levelState{ID: "X"}
	second := &levelState{ID: "Y"}
	third := &levelState{ID: "Z"}
	require.NoError(t, svc.LoadMany(ctx, []any{first, second, third}, "gap.sav"))
	assert.Equal(t, "One", first.ID)
	assert.Equal(t, "Y", second.ID)
	assert.Equal(t, "Three", third.ID)
}

func TestLoadManyToleratesLengthMismatch(t *testing.T) {
	t.Parallel()

	svc := NewService(newMemoryStore(), codec.JSON{}, nil)
	ctx := context.Background()

	require.NoError(t, svc.SaveMany(ctx, []any{&levelState{ID: "One"}, &levelState{ID: "Two"}}, "grow.sav", true))

	t.Run("extra objects keep their values", func(t *testing.T) {
		a, b, c := &levelState{}, &levelState{}, &levelState{ID: "new"}
		require.NoError(t, svc.LoadMany(ctx, []any{a, b, c}, "grow.sav"))
		assert.Equal(t, "One", a.ID)
		assert.Equal(t, "Two", b.ID)
		assert.Equal(t, "new", c.ID)
	})

	t.Run("extra fragments are ignored", func(t *testing.T) {
		a := &levelState{}
		require.NoError(t, svc.LoadMany(ctx, []any{a}, "grow.sav"))
		assert.Equal(t, "One", a.ID)
	})
}

func TestLoadManyRejectsNewerEnvelope(t *testing.T) {
	t.Parallel()

	store := newMemoryStore()
	store.blobs["future.sav"] = []byte(`{"version": 99, "fragments": []}`)
	svc := NewService(store, codec.JSON{}, nil)

	err := svc.LoadMany(context.Background(), []any{&levelState{}}, "future.sav")
	require.ErrorIs(t, err, domain.ErrUnsupportedSaveVersion)
}

func TestWriteFailurePropagates(t *testing.T) {
	t.Parallel()

	store := newMemoryStore()
	store.writeErr = errors.New("disk full")
	svc := NewService(store, codec.JSON{}, nil)

	err := svc.SaveMany(context.Background(), []any{&levelState{}}, "a.sav", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestTryLoadValue(t *testing.T) {
	t.Parallel()

	svc := NewService(newMemoryStore(), codec.JSON{}, nil)
	ctx := context.Background()

	_, found, err := TryLoadValue[scoreCard](ctx, svc, "nothing.sav")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, svc.SaveValue(ctx, scoreCard{Name: "Value", Score: 5}, "value.sav", false))

	got, found, err := TryLoadValue[scoreCard](ctx, svc, "value.sav")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, scoreCard{Name: "Value", Score: 5}, got)
}

func TestSaveValueRoundTripAcrossCodecs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		load  func(context.Context, *Service, string) (any, bool, error)
	}{
		{
			name:  "struct",
			value: scoreCard{Name: "Value", Score: 5},
			load: func(ctx context.Context, svc *Service, fileName string) (any, bool, error) {
				return TryLoadValue[scoreCard](ctx, svc, fileName)
			},
		},
		{
			name:  "slice",
			value: []int{1, 2, 3},
			load: func(ctx context.Context, svc *Service, fileName string) (any, bool, error) {
				return TryLoadValue[[]int](ctx, svc, fileName)
			},
		},
		{
			name:  "struct slice",
			value: []levelState{{ID: "a", Level: 1}, {ID: "b", Level: 2}},
			load: func(ctx context.Context, svc *Service, fileName string) (any, bool, error) {
				return TryLoadValue[[]levelState](ctx, svc, fileName)
			},
		},
		{
			name:  "int",
			value: 42,
			load: func(ctx context.Context, svc *Service, fileName string) (any, bool, error) {
				return TryLoadValue[int](ctx, svc, fileName)
			},
		},
		{
			name:  "string",
			value: "hi",
			load: func(ctx context.Context, svc *Service, fileName string) (any, bool, error) {
				return TryLoadValue[string](ctx, svc, fileName)
			},
		},
	}

	for _, c := range []codec.Codec{codec.JSON{}, codec.TOML{}, codec.YAML{}} {
		c := c
		for _, tt := range tests {
			tt := tt
			t.Run(c.Name()+"/"+tt.name, func(t *testing.T) {
				t.Parallel()

				svc, _ := newFileService(t, c)
				ctx := context.Background()

				for _, pretty := range []bool{true, false} {
					require.NoError(t, svc.SaveValue(ctx, tt.value, "value.sav", pretty))

					got, found, err := tt.load(ctx, svc, "value.sav")
					require.NoError(t, err, "pretty=%t", pretty)
					require.True(t, found)
					assert.Equal(t, tt.value, got, "pretty=%t", pretty)
				}
			})
		}
	}
}
