package repositoryImp

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/qawatake/fixify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmapi/database/dbtest"
	"farmapi/entities"
	"farmapi/pkg/apperr"
)

func TestCreateAndList(t *testing.T) {
	ctx := context.Background()
	db := dbtest.SQLite(t)
	repo := New(db)

	var farmer *fixify.Model[entities.Farmer]
	dbtest.Seed(t, db, dbtest.Farmer("A").Bind(&farmer))

	c := &entities.Crop{
		FarmerID:          farmer.Value().ID,
		CropName:          "rice",
		ImagePath:         "img/rice.jpg",
		TotalAcreage:      10,
		DroneUsageAcreage: 4,
		ProductsUsed:      "urea",
		QuantityUsed:      2.5,
	}
	require.NoError(t, repo.Create(ctx, c))
	assert.NotZero(t, c.ID)

	got, err := repo.ListByFarmer(ctx, farmer.Value().ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, *c, got[0])
}

func TestListIsScopedAndOrdered(t *testing.T) {
	ctx := context.Background()
	db := dbtest.SQLite(t)

	var a, b *fixify.Model[entities.Farmer]
	dbtest.Seed(t, db,
		dbtest.Farmer("A").With(dbtest.Crop("rice", 5, 2), dbtest.Crop("maize", 5, 3)).Bind(&a),
		dbtest.Farmer("B").With(dbtest.Crop("cassava", 8, 8)).Bind(&b),
	)

	got, err := New(db).ListByFarmer(ctx, a.Value().ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Less(t, got[0].ID, got[1].ID)
	for _, c := range got {
		assert.Equal(t, a.Value().ID, c.FarmerID)
	}
}

func TestListUnknownFarmerIsEmpty(t *testing.T) {
	got, err := New(dbtest.SQLite(t)).ListByFarmer(context.Background(), 404)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCreateUnknownFarmer(t *testing.T) {
	err := New(dbtest.SQLite(t)).Create(context.Background(), &entities.Crop{
		FarmerID: 77, CropName: "rice", ImagePath: "a.jpg", ProductsUsed: "urea",
	})
	assert.ErrorIs(t, err, apperr.ErrUnknownFarmer)
}

func TestFindAndDelete(t *testing.T) {
	ctx := context.Background()
	db := dbtest.SQLite(t)
	repo := New(db)

	var crop *fixify.Model[entities.Crop]
	dbtest.Seed(t, db, dbtest.Farmer("A").With(dbtest.Crop("rice", 3, 1).Bind(&crop)))
	id := crop.Value().ID

	got, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "rice", got.CropName)

	require.NoError(t, repo.Delete(ctx, id))

	_, err = repo.FindByID(ctx, id)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, id), apperr.ErrNotFound)
}

func TestNeverCreatedCrop(t *testing.T) {
	ctx := context.Background()
	repo := New(dbtest.SQLite(t))

	_, err := repo.FindByID(ctx, 12345)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, 12345), apperr.ErrNotFound)
}

func TestStorageFailures(t *testing.T) {
	ctx := context.Background()
	db, mock := dbtest.Mock(t)
	repo := New(db)

	mock.ExpectQuery(`SELECT \* FROM "crop" WHERE farmer_id = \$1`).WillReturnError(errors.New("connection reset"))
	_, err := repo.ListByFarmer(ctx, 1)
	assert.ErrorIs(t, err, apperr.ErrStorage)

	mock.ExpectExec(`DELETE FROM "crop"`).WillReturnError(errors.New("connection reset"))
	assert.ErrorIs(t, repo.Delete(ctx, 1), apperr.ErrStorage)

	mock.ExpectExec(`DELETE FROM "crop"`).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(ctx, 2), apperr.ErrNotFound)
}
