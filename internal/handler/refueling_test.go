package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapler/fleet-records/internal/domain"
	"github.com/mapler/fleet-records/testutil"
)

func TestListTractorRefuelings_OK(t *testing.T) {
	refuelings := &mockRefuelingService{
		listTractor: func(context.Context) ([]domain.TractorRefuelingRecord, error) {
			rec := testutil.TractorRefuelingFixture()
			rec.ID = "r1"
			return []domain.TractorRefuelingRecord{rec}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/refuelings", nil)
	rec := serve(t, nil, refuelings, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []domain.TractorRefuelingRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "r1", got[0].ID)
}

func TestAddTractorRefueling_Created(t *testing.T) {
	refuelings := &mockRefuelingService{
		addTractor: func(_ context.Context, in domain.TractorRefuelingRecord) (domain.TractorRefuelingRecord, error) {
			in.ID = "generated"
			return in, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/refuelings", jsonBody(t, testutil.TractorRefuelingFixture()))
	rec := serve(t, nil, refuelings, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got domain.TractorRefuelingRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "generated", got.ID)
	assert.Equal(t, "5AU 1234", got.TractorLicensePlate)
}

func TestAddTractorRefueling_ValidationError(t *testing.T) {
	refuelings := &mockRefuelingService{
		addTractor: func(context.Context, domain.TractorRefuelingRecord) (domain.TractorRefuelingRecord, error) {
			return domain.TractorRefuelingRecord{}, fmt.Errorf("%w: dieselLiters must be a positive number", domain.ErrValidation)
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/refuelings", jsonBody(t, domain.TractorRefuelingRecord{}))
	rec := serve(t, nil, refuelings, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "dieselLiters must be a positive number")
}
