package constants

// Redis key formats
const (
	// Ride search result pages, keyed by a canonical query fingerprint.
	// Entries expire on a short TTL; search reads tolerate stale seat counts.
	KeyRideSearch = "rides:search:%s" // Format: rides:search:{query_hash}
)
