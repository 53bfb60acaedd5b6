package nhtsa

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"dealer-report-srv/internal/vehicle/repository"
)

type decodeVinResponse struct {
	Count   int `json:"Count"`
	Results []struct {
		Variable string  `json:"Variable"`
		Value    *string `json:"Value"`
	} `json:"Results"`
}

func (r *implDecoderRepository) Decode(ctx context.Context, vin string) (map[string]string, error) {
	endpoint := fmt.Sprintf("%s/DecodeVin/%s?format=json", r.baseURL, url.PathEscape(vin))

	body, status, err := r.client.Get(ctx, endpoint, map[string]string{"Accept": "application/json"})
	if err != nil {
		r.l.Errorf(ctx, "vehicle.repository.nhtsa.Decode: request failed: %v", err)
		return nil, fmt.Errorf("%w: %v", repository.ErrUpstream, err)
	}
	if status < 200 || status >= 300 {
		r.l.Warnf(ctx, "vehicle.repository.nhtsa.Decode: unexpected status %d", status)
		return nil, repository.ErrUpstream
	}

	var resp decodeVinResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		r.l.Errorf(ctx, "vehicle.repository.nhtsa.Decode: unmarshal error: %v", err)
		return nil, repository.ErrInvalidReply
	}
	if len(resp.Results) == 0 {
		return nil, repository.ErrNoResults
	}

	vars := make(map[string]string, len(resp.Results))
	for _, res := range resp.Results {
		if res.Value == nil {
			continue
		}
		if _, seen := vars[res.Variable]; !seen {
			vars[res.Variable] = *res.Value
		}
	}
	return vars, nil
}
