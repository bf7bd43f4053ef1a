package constants

// NATS subjects
const (
	// Ride events
	SubjectRideCreated = "ride.created"

	// Request lifecycle events
	SubjectRequestCreated  = "request.created"
	SubjectRequestAccepted = "request.accepted"
	SubjectRequestRevoked  = "request.revoked"
)
