package workflow

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/gestorverde/gestorverde/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func page(n int, names ...string) *models.Page[models.Terrain] {
	terrains := make([]models.Terrain, len(names))
	for i, name := range names {
		terrains[i] = models.Terrain{ID: int64(i + 1), Name: name}
	}
	return &models.Page[models.Terrain]{Content: terrains, PageNumber: n, TotalPages: 3}
}

func TestPager_Load(t *testing.T) {
	var gotPage, gotSize int
	p := NewPager(func(ctx context.Context, pageNum, size int) (*models.Page[models.Terrain], error) {
		gotPage, gotSize = pageNum, size
		return page(pageNum, "Lote 1"), nil
	}, 6)

	result, applied, err := p.Load(context.Background(), 2)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, 2, gotPage)
	assert.Equal(t, 6, gotSize)
	assert.Equal(t, result, p.Current())
}

func TestPager_DropsStaleResponse(t *testing.T) {
	release := make(chan struct{})
	var calls atomic.Int32

	p := NewPager(func(ctx context.Context, pageNum, size int) (*models.Page[models.Terrain], error) {
		if calls.Add(1) == 1 {
			<-release // first request is slow
		}
		return page(pageNum, "Lote"), nil
	}, 6)

	type res struct {
		applied bool
		err     error
	}
	first := make(chan res, 1)
	go func() {
		_, applied, err := p.Load(context.Background(), 0)
		first <- res{applied, err}
	}()

	// Second request overtakes the first one.
	require.Eventually(t, func() bool { return calls.Load() == 1 }, 1e9, 1e6)
	fresh, applied, err := p.Load(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, applied)

	close(release)
	got := <-first
	require.NoError(t, got.err)
	assert.False(t, got.applied, "slow first response must be dropped")
	assert.Equal(t, fresh, p.Current(), "current page stays at the newest response")
	assert.Equal(t, 1, p.Current().PageNumber)
}

func TestPager_Error(t *testing.T) {
	p := NewPager(func(ctx context.Context, pageNum, size int) (*models.Page[models.Terrain], error) {
		return nil, errors.New("boom")
	}, 6)

	_, applied, err := p.Load(context.Background(), 0)
	require.Error(t, err)
	assert.False(t, applied)
	assert.Nil(t, p.Current())
}

func TestPager_Reload(t *testing.T) {
	var gotPage int
	p := NewPager(func(ctx context.Context, pageNum, size int) (*models.Page[models.Terrain], error) {
		gotPage = pageNum
		return page(pageNum, "Lote"), nil
	}, 6)

	_, _, err := p.Load(context.Background(), 2)
	require.NoError(t, err)

	_, applied, err := p.Reload(context.Background())
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, 2, gotPage, "reload refetches the page being viewed")
}
