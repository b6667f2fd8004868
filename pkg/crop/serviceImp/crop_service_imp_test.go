package serviceImp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmapi/database/dbtest"
	"farmapi/pkg/apperr"
	cropRepoImp "farmapi/pkg/crop/repositoryImp"
	"farmapi/pkg/crop/service"
	"farmapi/pkg/metrics"
	"farmapi/pkg/validation"
)

func f64(v float64) *float64 { return &v }
func u(v uint) *uint        { return &v }

func validInput(farmerID uint) service.AddInput {
	return service.AddInput{
		FarmerID:          u(farmerID),
		CropName:          "rice",
		ImagePath:         "img/rice.jpg",
		TotalAcreage:      f64(10),
		DroneUsageAcreage: f64(4),
		ProductsUsed:      "urea",
		QuantityUsed:      f64(0),
	}
}

func TestAddRejectsBeforeAnySQL(t *testing.T) {
	db, _ := dbtest.Mock(t) // no expectations: any statement fails the test
	svc := NewCropService(cropRepoImp.New(db), validation.New(), nil)

	in := validInput(1)
	in.QuantityUsed = nil
	in.ImagePath = ""
	_, err := svc.Add(context.Background(), in)
	assert.ErrorIs(t, err, apperr.ErrMissingField)
	assert.Equal(t, "missing required field: image_path, quantity_used", apperr.PublicMessage(err))

	in = validInput(1)
	in.TotalAcreage = f64(-1)
	_, err = svc.Add(context.Background(), in)
	assert.ErrorIs(t, err, apperr.ErrInvalidField)

	in = validInput(1)
	in.DroneUsageAcreage = f64(11)
	_, err = svc.Add(context.Background(), in)
	assert.ErrorIs(t, err, apperr.ErrInvalidField)
}

func TestAddAcceptsExplicitZeros(t *testing.T) {
	db := dbtest.SQLite(t)
	f := dbtest.Farmer("A")
	dbtest.Seed(t, db, f)
	svc := NewCropService(cropRepoImp.New(db), validation.New(), metrics.New("test"))

	in := validInput(f.Value().ID)
	in.TotalAcreage, in.DroneUsageAcreage = f64(0), f64(0)
	c, err := svc.Add(context.Background(), in)
	require.NoError(t, err)
	assert.Zero(t, c.DroneUsageAcreage)
}

func TestAddUnknownFarmer(t *testing.T) {
	svc := NewCropService(cropRepoImp.New(dbtest.SQLite(t)), validation.New(), nil)
	_, err := svc.Add(context.Background(), validInput(999))
	assert.ErrorIs(t, err, apperr.ErrUnknownFarmer)
}

func TestAddListGetRemove(t *testing.T) {
	ctx := context.Background()
	db := dbtest.SQLite(t)
	f := dbtest.Farmer("A")
	dbtest.Seed(t, db, f)
	svc := NewCropService(cropRepoImp.New(db), validation.New(), metrics.New("test"))

	c, err := svc.Add(ctx, validInput(f.Value().ID))
	require.NoError(t, err)

	list, err := svc.ListByFarmer(ctx, f.Value().ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, *c, list[0])

	got, err := svc.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "rice", got.CropName)

	require.NoError(t, svc.Remove(ctx, c.ID))
	_, err = svc.GetByID(ctx, c.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.ErrorIs(t, svc.Remove(ctx, c.ID), apperr.ErrNotFound)
}
