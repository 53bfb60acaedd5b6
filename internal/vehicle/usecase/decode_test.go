package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"dealer-report-srv/internal/model"
	"dealer-report-srv/internal/vehicle"
	"dealer-report-srv/internal/vehicle/repository"
	"dealer-report-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDecoder struct {
	calls int
	vars  map[string]string
	err   error
}

func (f *fakeDecoder) Decode(context.Context, string) (map[string]string, error) {
	f.calls++
	return f.vars, f.err
}

type fakeCache struct {
	store map[string]vehicle.DecodedVehicle
	ttl   time.Duration
}

func (f *fakeCache) GetDecoded(_ context.Context, vin string) (vehicle.DecodedVehicle, error) {
	v, ok := f.store[vin]
	if !ok {
		return vehicle.DecodedVehicle{}, repository.ErrCacheMiss
	}
	return v, nil
}

func (f *fakeCache) SaveDecoded(_ context.Context, vin string, v vehicle.DecodedVehicle, ttl time.Duration) error {
	f.store[vin] = v
	f.ttl = ttl
	return nil
}

const vin = "1HGCM82633A004352"

var actor = model.Scope{UserID: "u-1"}

func newUC(dec *fakeDecoder, cache *fakeCache) *implUseCase {
	uc := &implUseCase{
		decoder:  dec,
		l:        log.NewNop(),
		cacheTTL: DefaultCacheTTL,
		now:      func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) },
	}
	if cache != nil {
		uc.cache = cache
	}
	return uc
}

func TestDecodeVIN_MapsFields(t *testing.T) {
	dec := &fakeDecoder{vars: map[string]string{
		"Make":                 "HONDA",
		"Model":                "Accord",
		"Model Year":           "2003",
		"Trim":                 "Not Applicable",
		"Series":               "EX",
		"Body Class":           "Coupe",
		"Engine Model":         "",
		"Engine Configuration": "V-Shaped",
		"Transmission Style":   "Automatic",
		"Drive Type":           "Not Applicable",
		"Fuel Type - Primary":  "Gasoline",
	}}

	v, err := newUC(dec, nil).DecodeVIN(context.Background(), actor, vehicle.DecodeInput{VIN: vin})

	require.NoError(t, err)
	assert.Equal(t, vehicle.DecodedVehicle{
		Make:         "HONDA",
		Model:        "Accord",
		Year:         2003,
		Trim:         "EX",
		BodyStyle:    "Coupe",
		Engine:       "V-Shaped",
		Transmission: "Automatic",
		FuelType:     "Gasoline",
	}, v)
}

func TestDecodeVIN_YearDefaultsToCurrent(t *testing.T) {
	dec := &fakeDecoder{vars: map[string]string{"Make": "FORD", "Model Year": ""}}
	v, err := newUC(dec, nil).DecodeVIN(context.Background(), actor, vehicle.DecodeInput{VIN: vin})
	require.NoError(t, err)
	assert.Equal(t, 2025, v.Year)
}

func TestDecodeVIN_UsesCache(t *testing.T) {
	dec := &fakeDecoder{vars: map[string]string{"Make": "HONDA", "Model Year": "2003"}}
	cache := &fakeCache{store: map[string]vehicle.DecodedVehicle{}}
	uc := newUC(dec, cache)

	first, err := uc.DecodeVIN(context.Background(), actor, vehicle.DecodeInput{VIN: vin})
	require.NoError(t, err)
	second, err := uc.DecodeVIN(context.Background(), actor, vehicle.DecodeInput{VIN: vin})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, dec.calls)
	assert.Equal(t, 24*time.Hour, cache.ttl)
}

func TestDecodeVIN_Rejections(t *testing.T) {
	tcs := map[string]struct {
		sc   model.Scope
		vin  string
		dec  *fakeDecoder
		want error
	}{
		"anonymous":      {sc: model.Scope{}, vin: vin, want: vehicle.ErrUnauthorized},
		"short":          {sc: actor, vin: "1HGCM826", want: vehicle.ErrInvalidVINLength},
		"bad characters": {sc: actor, vin: "1HGCM82633A00435-", want: vehicle.ErrInvalidVINFormat},
		"upstream down":  {sc: actor, vin: vin, dec: &fakeDecoder{err: repository.ErrUpstream}, want: vehicle.ErrDecodeFailed},
		"no results":     {sc: actor, vin: vin, dec: &fakeDecoder{err: repository.ErrNoResults}, want: vehicle.ErrNoData},
		"transport":      {sc: actor, vin: vin, dec: &fakeDecoder{err: errors.New("dial tcp")}, want: vehicle.ErrDecodeFailed},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			dec := tc.dec
			if dec == nil {
				dec = &fakeDecoder{}
			}
			_, err := newUC(dec, nil).DecodeVIN(context.Background(), tc.sc, vehicle.DecodeInput{VIN: tc.vin})
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
