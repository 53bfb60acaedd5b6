package usecase

import (
	"context"
	"errors"
	"strconv"

	"dealer-report-srv/internal/model"
	"dealer-report-srv/internal/vehicle"
	"dealer-report-srv/internal/vehicle/repository"
	"dealer-report-srv/pkg/util"
)

const notApplicable = "Not Applicable"

func (uc *implUseCase) DecodeVIN(ctx context.Context, sc model.Scope, ip vehicle.DecodeInput) (vehicle.DecodedVehicle, error) {
	if !sc.IsAuthenticated() {
		return vehicle.DecodedVehicle{}, vehicle.ErrUnauthorized
	}
	if len(ip.VIN) != util.VINLength {
		return vehicle.DecodedVehicle{}, vehicle.ErrInvalidVINLength
	}
	vin := util.NormalizeVIN(ip.VIN)
	if len(vin) != util.VINLength {
		return vehicle.DecodedVehicle{}, vehicle.ErrInvalidVINFormat
	}

	if uc.cache != nil {
		v, err := uc.cache.GetDecoded(ctx, vin)
		if err == nil {
			return v, nil
		}
		if !errors.Is(err, repository.ErrCacheMiss) {
			uc.l.Warnf(ctx, "vehicle.usecase.DecodeVIN: cache read failed: %v", err)
		}
	}

	uc.l.Infof(ctx, "vehicle.usecase.DecodeVIN: Decoding VIN %s", vin)
	vars, err := uc.decoder.Decode(ctx, vin)
	if err != nil {
		if errors.Is(err, repository.ErrNoResults) {
			return vehicle.DecodedVehicle{}, vehicle.ErrNoData
		}
		uc.l.Errorf(ctx, "vehicle.usecase.DecodeVIN: decoder failed: %v", err)
		return vehicle.DecodedVehicle{}, vehicle.ErrDecodeFailed
	}

	v := uc.toDecodedVehicle(vars)
	if uc.cache != nil {
		if err := uc.cache.SaveDecoded(ctx, vin, v, uc.cacheTTL); err != nil {
			uc.l.Warnf(ctx, "vehicle.usecase.DecodeVIN: cache write failed: %v", err)
		}
	}
	return v, nil
}

func (uc *implUseCase) toDecodedVehicle(vars map[string]string) vehicle.DecodedVehicle {
	get := func(names ...string) string {
		for _, name := range names {
			if v := vars[name]; v != "" && v != notApplicable {
				return v
			}
		}
		return ""
	}

	year, err := strconv.Atoi(get("Model Year"))
	if err != nil || year == 0 {
		year = uc.now().Year()
	}

	return vehicle.DecodedVehicle{
		Make:         get("Make"),
		Model:        get("Model"),
		Year:         year,
		Trim:         get("Trim", "Series"),
		BodyStyle:    get("Body Class"),
		Engine:       get("Engine Model", "Engine Configuration"),
		Transmission: get("Transmission Style"),
		Drivetrain:   get("Drive Type"),
		FuelType:     get("Fuel Type - Primary"),
	}
}
