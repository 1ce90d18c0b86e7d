package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/storefront/internal/apierror"
	"github.com/dtroode/storefront/internal/model"
	"github.com/dtroode/storefront/internal/repository/memory"
	"github.com/dtroode/storefront/internal/testutil"
)

func newCatalogServices(t *testing.T) (*Brand, *DeviceModel, *Product) {
	t.Helper()

	store := memory.New()
	log := testutil.MakeNoopLogger()
	return NewBrand(store.Brands(), store.DeviceModels(), log),
		NewDeviceModel(store.DeviceModels(), store.Brands(), store.Products(), log),
		NewProduct(store.Products(), store.Brands(), store.DeviceModels(), log)
}

func TestDeviceModel_Lifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	brands, models, products := newCatalogServices(t)

	asus, err := brands.Create(ctx, model.BrandInput{Name: "Asus"})
	require.NoError(t, err)

	rog, err := models.Create(ctx, model.DeviceModelInput{Name: "ROG", BrandID: asus.ID})
	require.NoError(t, err)
	assert.Equal(t, "rog", rog.Slug)
	assert.Equal(t, "Asus", rog.BrandName)

	_, err = models.Create(ctx, model.DeviceModelInput{Name: "ROG", BrandID: asus.ID})
	requireKind(t, err, apierror.KindConflict)

	listed, err := models.ListForBrand(ctx, asus.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	p, err := products.Create(ctx, model.ProductInput{
		Name: "ROG Strix G16", BrandID: asus.ID, ModelID: rog.ID, Price: ptr(1999.0), Stock: ptr(3),
	})
	require.NoError(t, err)

	apiErr := requireKind(t, models.Delete(ctx, rog.ID), apierror.KindConflict)
	assert.Equal(t, 1, apiErr.Fields["relatedProductsCount"])

	apiErr = requireKind(t, brands.Delete(ctx, asus.ID), apierror.KindConflict)
	assert.GreaterOrEqual(t, apiErr.Fields["relatedModelsCount"], 1)

	require.NoError(t, products.Delete(ctx, p.ID))
	require.NoError(t, models.Delete(ctx, rog.ID))
	require.NoError(t, brands.Delete(ctx, asus.ID))
}

func TestDeviceModel_Validation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	brands, models, _ := newCatalogServices(t)
	asus, err := brands.Create(ctx, model.BrandInput{Name: "Asus"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		in       model.DeviceModelInput
		wantKind apierror.Kind
	}{
		{"missing name", model.DeviceModelInput{BrandID: asus.ID}, apierror.KindValidation},
		{"missing brand", model.DeviceModelInput{Name: "ROG"}, apierror.KindValidation},
		{"unknown brand", model.DeviceModelInput{Name: "ROG", BrandID: uuid.New()}, apierror.KindNotFound},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := models.Create(ctx, tt.in)
			requireKind(t, err, tt.wantKind)
		})
	}

	t.Run("list for unknown brand", func(t *testing.T) {
		t.Parallel()

		_, err := models.ListForBrand(ctx, uuid.New())
		requireKind(t, err, apierror.KindNotFound)
	})
}

func TestDeviceModel_UpdateUniqueExcludingSelf(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	brands, models, _ := newCatalogServices(t)
	asus, err := brands.Create(ctx, model.BrandInput{Name: "Asus"})
	require.NoError(t, err)
	rog, err := models.Create(ctx, model.DeviceModelInput{Name: "ROG", BrandID: asus.ID})
	require.NoError(t, err)
	tuf, err := models.Create(ctx, model.DeviceModelInput{Name: "TUF", BrandID: asus.ID})
	require.NoError(t, err)

	updated, err := models.Update(ctx, rog.ID, model.DeviceModelInput{Name: "ROG", BrandID: asus.ID, Description: "gaming"})
	require.NoError(t, err)
	assert.Equal(t, "gaming", updated.Description)

	_, err = models.Update(ctx, tuf.ID, model.DeviceModelInput{Name: "ROG", BrandID: asus.ID})
	requireKind(t, err, apierror.KindConflict)

	_, err = models.Update(ctx, uuid.New(), model.DeviceModelInput{Name: "X", BrandID: asus.ID})
	requireKind(t, err, apierror.KindNotFound)
}
