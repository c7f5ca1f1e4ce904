package qps

import (
	"context"
	"fmt"
	"net/url"
)

const (
	searchPath    = "/qps/rest/2.0/search/am/hostasset"
	uninstallPath = "/qps/rest/2.0/uninstall/am/asset/"

	// searchFields limits the response to the fields the run consumes.
	searchFields = "name,id,address,modified,created"
)

// SearchHostAssets fetches one page of host assets matching the given
// tracking method.
func (c *Client) SearchHostAssets(ctx context.Context, opts SearchOptions) (*SearchResponse, error) {
	doc := ServiceRequest{
		Filters: &Filters{
			Criteria: []Criteria{{
				Field:    "trackingMethod",
				Operator: "EQUALS",
				Value:    opts.TrackingMethod,
			}},
		},
		Preferences: &Preferences{
			LimitResults:    opts.Limit,
			StartFromOffset: opts.Offset,
		},
	}

	query := url.Values{}
	query.Set("fields", searchFields)

	var resp SearchResponse
	if err := c.post(ctx, searchPath, query, doc, &resp); err != nil {
		return nil, fmt.Errorf("search host assets: %w", err)
	}

	return &resp, nil
}

// UninstallAgent removes the cloud agent backing the given asset id.
// The endpoint takes the id in the path and an empty ServiceRequest body.
func (c *Client) UninstallAgent(ctx context.Context, id string) (*UninstallResponse, error) {
	var resp UninstallResponse
	if err := c.post(ctx, uninstallPath+url.PathEscape(id), nil, ServiceRequest{}, &resp); err != nil {
		return nil, fmt.Errorf("uninstall agent %s: %w", id, err)
	}

	return &resp, nil
}
