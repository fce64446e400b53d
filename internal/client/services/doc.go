// Package services contains the application services of the geofeed client.
//
// The services validate user input before any network call, keep paginated
// and single-value query results in a bounded QueryStore, and after every
// successful mutation invalidate the query identities it affects.
package services
