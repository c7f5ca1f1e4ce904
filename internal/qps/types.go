package qps

import "encoding/xml"

// responseCodeSuccess is the sentinel the service uses to signal an
// accepted request.
const responseCodeSuccess = "SUCCESS"

// ServiceRequest is the XML request envelope for QPS calls. Uninstall
// requests send it empty; search requests carry filters and pagination
// preferences.
type ServiceRequest struct {
	XMLName     xml.Name     `xml:"ServiceRequest"`
	Filters     *Filters     `xml:"filters,omitempty"`
	Preferences *Preferences `xml:"preferences,omitempty"`
}

// Filters holds the search criteria of a ServiceRequest.
type Filters struct {
	Criteria []Criteria `xml:"Criteria"`
}

// Criteria is a single field comparison, e.g. trackingMethod EQUALS QAGENT.
type Criteria struct {
	Field    string `xml:"field,attr"`
	Operator string `xml:"operator,attr"`
	Value    string `xml:",chardata"`
}

// Preferences holds the pagination settings of a search request.
// startFromOffset is 1-based and advances by limitResults per page.
type Preferences struct {
	LimitResults    int `xml:"limitResults"`
	StartFromOffset int `xml:"startFromOffset"`
}

// SearchResponse is the ServiceResponse envelope returned by the host
// asset search endpoint. count mirrors the wire value verbatim and
// stays a string.
type SearchResponse struct {
	XMLName        xml.Name    `xml:"ServiceResponse"`
	ResponseCode   string      `xml:"responseCode"`
	Count          string      `xml:"count"`
	HasMoreRecords bool        `xml:"hasMoreRecords"`
	Assets         []HostAsset `xml:"data>HostAsset"`
}

// HostAsset is one asset entry in a search response. Absent elements
// decode to the empty string; defaults are decided here at the parse
// boundary, not in business logic.
type HostAsset struct {
	ID       string `xml:"id"`
	Name     string `xml:"name"`
	Address  string `xml:"address"`
	Created  string `xml:"created"`
	Modified string `xml:"modified"`
}

// UninstallResponse is the ServiceResponse envelope returned by the
// agent uninstall endpoint.
type UninstallResponse struct {
	XMLName      xml.Name `xml:"ServiceResponse"`
	ResponseCode string   `xml:"responseCode"`
	Count        string   `xml:"count"`
}

// Succeeded reports whether the uninstall was accepted. The service
// signals success with responseCode SUCCESS and a non-zero count; a
// SUCCESS code with count "0" means no agent was actually removed and
// counts as failure. The count comparison is on the literal wire string.
func (r *UninstallResponse) Succeeded() bool {
	return r.ResponseCode == responseCodeSuccess && r.Count != "0"
}

// SearchOptions configures a host asset search request.
type SearchOptions struct {
	TrackingMethod string
	Limit          int
	Offset         int
}
