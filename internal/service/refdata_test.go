package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thaihung204/GENTRY-BE/internal/repo"
)

func TestRefDataListsAndLookups(t *testing.T) {
	db := newTestDB(t)
	// cache 为 nil → 直查库
	svc := NewRefDataService(repo.NewRefDataRepo(db), nil, time.Minute)
	ctx := context.Background()

	occ, err := svc.Occasions(ctx)
	require.NoError(t, err)
	require.Len(t, occ, 6)
	assert.Equal(t, 1, occ[0].ID) // id ASC

	weathers, err := svc.Weathers(ctx)
	require.NoError(t, err)
	assert.Len(t, weathers, 5)

	styles, err := svc.Styles(ctx)
	require.NoError(t, err)
	assert.Len(t, styles, 5)

	got, err := svc.OccasionByID(2)
	require.NoError(t, err)
	assert.Equal(t, "Work", got.Name)

	_, err = svc.OccasionByID(999)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.WeatherByID(999)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.StyleByID(999)
	assert.ErrorIs(t, err, ErrNotFound)
}
