package verify

import "time"

// Status is the tri-state verification outcome.
type Status string

const (
	Approved   Status = "APPROVED"
	Restricted Status = "RESTRICTED"
	Rejected   Status = "REJECTED"
)

// Decision is the tagged result of verify_integrity. ErrorCode is present
// only when Status is Rejected; a Restricted decision never carries one.
type Decision struct {
	Status    Status    `json:"status"`
	Message   string    `json:"message"`
	Timestamp int64     `json:"timestamp"` // milliseconds since Unix epoch
	ErrorCode string    `json:"errorCode,omitempty"`
}

func approved(now time.Time) Decision {
	return Decision{
		Status:    Approved,
		Message:   "merkle root and signer fingerprint match the canonical record",
		Timestamp: now.UnixMilli(),
	}
}

func restricted(now time.Time) Decision {
	return Decision{
		Status:    Restricted,
		Message:   "merkle root matches but signer fingerprint does not; access restricted",
		Timestamp: now.UnixMilli(),
	}
}

func rejected(now time.Time, code, message string) Decision {
	return Decision{
		Status:    Rejected,
		Message:   message,
		Timestamp: now.UnixMilli(),
		ErrorCode: code,
	}
}
