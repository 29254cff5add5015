package categories_test

import (
	"context"
	"testing"

	"github.com/killallgit/podcast-api/internal/services/categories"
	"github.com/killallgit/podcast-api/internal/store/storetest"
	apperrors "github.com/killallgit/podcast-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories(t *testing.T) {
	_, s := storetest.Open(t)
	svc := categories.NewService(s)
	ctx := context.Background()

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = svc.Create(ctx, "Technology")
	require.NoError(t, err)
	_, err = svc.Create(ctx, " Comedy ")
	require.NoError(t, err)

	_, err = svc.Create(ctx, "Technology")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeConflict))

	_, err = svc.Create(ctx, "")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))

	list, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Comedy", list[0].Name)
	assert.Equal(t, "Technology", list[1].Name)
}
