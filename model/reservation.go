package model

// Reserved group states as reported by the API. Only active groups take part
// in reconciliation.
const (
	ReservedGroupStateActive         = "active"
	ReservedGroupStateRetired        = "retired"
	ReservedGroupStatePaymentPending = "payment-pending"
	ReservedGroupStatePaymentFailed  = "payment-failed"
)

// ZoneStateAvailable is the only zone state under which a reconciliation run
// may proceed.
const ZoneStateAvailable = "available"

// ModificationStatusProcessing marks a modification the API is still working
// on. While any exist, new modifications are forced into dry-run mode.
const ModificationStatusProcessing = "processing"

// ReservedGroup is one purchased reservation lot: capacity of a single
// instance type in a single availability zone, trackable and modifiable as a
// unit. Count is decremented on a working copy while a plan is executed; the
// source of truth is only changed through the modification API.
type ReservedGroup struct {
	ID               string
	InstanceType     string
	AvailabilityZone string
	Count            int
	State            string
}

// ModificationStatus describes one reserved-capacity modification request
// tracked by the API.
type ModificationStatus struct {
	ID     string
	Status string
}
