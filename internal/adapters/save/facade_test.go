package save

import (
	"context"
	"testing"

	"github.com/bnema/gamekit/internal/adapters/codec"
	"github.com/bnema/gamekit/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFacadeForwardsToDefault(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := mocks.NewMockSaveService(t)
	facade := NewFacade(svc)

	objects := []any{&levelState{ID: "One"}}
	svc.EXPECT().SaveMany(ctx, objects, "multi.sav", true).Return(nil).Once()
	svc.EXPECT().LoadMany(ctx, objects, "multi.sav").Return(nil).Once()
	svc.EXPECT().LoadValue(ctx, "v.sav", mock.Anything).Return(true, nil).Once()

	require.NoError(t, facade.SaveMany(ctx, objects, "multi.sav", true))
	require.NoError(t, facade.LoadMany(ctx, objects, "multi.sav"))

	found, err := facade.LoadValue(ctx, "v.sav", &scoreCard{})
	require.NoError(t, err)
	assert.True(t, found)
}

func TestFacadeSetDefaultSwapsAndIgnoresNil(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	first := NewService(newMemoryStore(), codec.JSON{}, nil)
	secondStore := newMemoryStore()
	second := NewService(secondStore, codec.JSON{}, nil)

	facade := NewFacade(first)
	facade.SetDefault(nil)
	assert.Same(t, first, facade.Default())

	facade.SetDefault(second)
	assert.Same(t, second, facade.Default())

	require.NoError(t, facade.SaveOne(ctx, &scoreCard{Name: "Player", Score: 99}, "p.sav", false))
	assert.Equal(t, 1, secondStore.writes)
}
