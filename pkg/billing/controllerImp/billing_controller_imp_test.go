package controllerImp

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"farmapi/database/dbtest"
	"farmapi/pkg/billing/export"
	"farmapi/pkg/billing/service"
	billingSvc "farmapi/pkg/billing/serviceImp"
	cropRepoImp "farmapi/pkg/crop/repositoryImp"
	farmerRepoImp "farmapi/pkg/farmer/repositoryImp"
)

func call(t *testing.T, handler echo.HandlerFunc, farmerID string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.SetParamNames("farmer_id")
	c.SetParamValues(farmerID)
	require.NoError(t, handler(c))
	return rec
}

func TestDroneUsage(t *testing.T) {
	db := dbtest.SQLite(t)
	a, b := dbtest.Farmer("A"), dbtest.Farmer("B")
	dbtest.Seed(t, db, a.With(dbtest.Crop("rice", 5, 2.0), dbtest.Crop("maize", 5, 3.0)), b)
	h := New(billingSvc.NewBillingService(cropRepoImp.New(db), farmerRepoImp.New(db), service.DefaultRatePerAcre, nil))

	rec := call(t, h.DroneUsage, fmt.Sprint(a.Value().ID))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total_drone_usage_acreage":5,"total_amount":1000}`, rec.Body.String())

	rec = call(t, h.DroneUsage, fmt.Sprint(b.Value().ID))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total_drone_usage_acreage":0,"total_amount":0}`, rec.Body.String())

	rec = call(t, h.DroneUsage, "x")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExportStatement(t *testing.T) {
	db := dbtest.SQLite(t)
	a := dbtest.Farmer("A")
	dbtest.Seed(t, db, a.With(dbtest.Crop("rice", 5, 2.0), dbtest.Crop("maize", 5, 3.0)))
	h := New(billingSvc.NewBillingService(cropRepoImp.New(db), farmerRepoImp.New(db), service.DefaultRatePerAcre, nil))

	rec := call(t, h.ExportStatement, fmt.Sprint(a.Value().ID))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, export.ContentType, rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "drone_usage_")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	amount, err := f.GetCellValue(export.SheetName, "D11")
	require.NoError(t, err)
	assert.Equal(t, "1000", amount)

	rec = call(t, h.ExportStatement, "987654")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Farmer not found"}`, rec.Body.String())
}
