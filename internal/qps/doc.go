// Package qps provides the client for the QPS asset management REST API.
//
// Endpoints used:
//   - POST /qps/rest/2.0/search/am/hostasset — paginated host asset search
//   - POST /qps/rest/2.0/uninstall/am/asset/{id} — cloud agent uninstall
//
// Both carry XML ServiceRequest/ServiceResponse envelopes and share the
// same basic-auth credential pair and extra header set. Wire values are
// converted to model types at this boundary and nowhere else.
package qps
