package domain

// EventType classifies disciplines a category or event applies to.
type EventType string

const (
	EventTypeRifle  EventType = "RIFLE"
	EventTypePistol EventType = "PISTOL"
	EventTypeBoth   EventType = "BOTH"
)

// Gender of a shooter as recorded for classification and results.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// ClassificationStatus tracks where a shooter is in the classification cycle.
type ClassificationStatus string

const (
	ClassificationNew             ClassificationStatus = "NEW"
	ClassificationReview          ClassificationStatus = "REVIEW"
	ClassificationConfirmed       ClassificationStatus = "CONFIRMED"
	ClassificationFixedReviewDate ClassificationStatus = "FIXED_REVIEW_DATE"
)

// MediaType is the kind of asset a MediaItem points at.
type MediaType string

const (
	MediaImage    MediaType = "IMAGE"
	MediaVideo    MediaType = "VIDEO"
	MediaDocument MediaType = "DOCUMENT"
)

// AuditAction names the mutation an audit entry records.
type AuditAction string

const (
	AuditCreate     AuditAction = "CREATE"
	AuditUpdate     AuditAction = "UPDATE"
	AuditDeactivate AuditAction = "DEACTIVATE"
)

// Built-in role names seeded by the initial migration.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

// Entity type labels used in audit entries.
const (
	EntityStateAssociation   = "state_association"
	EntityVenue              = "venue"
	EntityDisabilityCategory = "disability_category"
)
