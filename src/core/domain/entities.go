package domain

import (
	"encoding/json"
	"time"
)

// User is a platform account. PasswordHash never leaves the process.
type User struct {
	ID              int64      `db:"id" json:"-"`
	PublicID        string     `db:"public_id" json:"id"`
	Email           string     `db:"email" json:"email"`
	PasswordHash    string     `db:"password_hash" json:"-"`
	FirstName       string     `db:"first_name" json:"first_name"`
	LastName        string     `db:"last_name" json:"last_name"`
	Phone           *string    `db:"phone" json:"phone,omitempty"`
	AvatarURL       *string    `db:"avatar_url" json:"avatar_url,omitempty"`
	IsActive        bool       `db:"is_active" json:"is_active"`
	EmailVerifiedAt *time.Time `db:"email_verified_at" json:"email_verified_at,omitempty"`
	LastLoginAt     *time.Time `db:"last_login_at" json:"last_login_at,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`

	// Roles is loaded separately from user_roles.
	Roles []string `db:"-" json:"roles,omitempty"`
}

// Role is a named permission grouping.
type Role struct {
	ID          int64     `db:"id" json:"-"`
	PublicID    string    `db:"public_id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// UserRole assigns a role to a user.
type UserRole struct {
	ID         int64     `db:"id"`
	UserID     int64     `db:"user_id"`
	RoleID     int64     `db:"role_id"`
	AssignedBy *string   `db:"assigned_by"`
	AssignedAt time.Time `db:"assigned_at"`
}

// StateAssociation is a state-level member body of the federation.
type StateAssociation struct {
	ID              int64      `db:"id" json:"-"`
	PublicID        string     `db:"public_id" json:"id"`
	Code            string     `db:"code" json:"code"`
	Name            string     `db:"name" json:"name"`
	Region          string     `db:"region" json:"region"`
	SecretaryName   *string    `db:"secretary_name" json:"secretary_name,omitempty"`
	SecretaryEmail  *string    `db:"secretary_email" json:"secretary_email,omitempty"`
	SecretaryPhone  *string    `db:"secretary_phone" json:"secretary_phone,omitempty"`
	Address         *string    `db:"address" json:"address,omitempty"`
	AffiliationDate *time.Time `db:"affiliation_date" json:"affiliation_date,omitempty"`
	IsActive        bool       `db:"is_active" json:"is_active"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}

// DisabilityCategory is a sport class shooters are grouped into.
type DisabilityCategory struct {
	ID                 int64           `db:"id" json:"-"`
	PublicID           string          `db:"public_id" json:"id"`
	Code               string          `db:"code" json:"code"`
	Name               string          `db:"name" json:"name"`
	Description        *string         `db:"description" json:"description,omitempty"`
	EventType          EventType       `db:"event_type" json:"event_type"`
	MinImpairment      *string         `db:"min_impairment" json:"min_impairment,omitempty"`
	EquipmentAllowance json.RawMessage `db:"equipment_allowance" json:"equipment_allowance,omitempty"`
	IsActive           bool            `db:"is_active" json:"is_active"`
	CreatedAt          time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time       `db:"updated_at" json:"updated_at"`
}

// Venue is a shooting range.
type Venue struct {
	ID           int64           `db:"id" json:"-"`
	PublicID     string          `db:"public_id" json:"id"`
	Name         string          `db:"name" json:"name"`
	Code         *string         `db:"code" json:"code,omitempty"`
	Address      string          `db:"address" json:"address"`
	City         string          `db:"city" json:"city"`
	State        string          `db:"state" json:"state"`
	Country      string          `db:"country" json:"country"`
	PostalCode   *string         `db:"postal_code" json:"postal_code,omitempty"`
	Latitude     *float64        `db:"latitude" json:"latitude,omitempty"`
	Longitude    *float64        `db:"longitude" json:"longitude,omitempty"`
	Facilities   json.RawMessage `db:"facilities" json:"facilities,omitempty"`
	Capacity     *int            `db:"capacity" json:"capacity,omitempty"`
	ContactName  *string         `db:"contact_name" json:"contact_name,omitempty"`
	ContactEmail *string         `db:"contact_email" json:"contact_email,omitempty"`
	ContactPhone *string         `db:"contact_phone" json:"contact_phone,omitempty"`
	IsActive     bool            `db:"is_active" json:"is_active"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at" json:"updated_at"`
}

// Event is a competition or camp held at a venue.
type Event struct {
	ID          int64     `db:"id" json:"-"`
	PublicID    string    `db:"public_id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Slug        string    `db:"slug" json:"slug"`
	Description *string   `db:"description" json:"description,omitempty"`
	EventType   EventType `db:"event_type" json:"event_type"`
	VenueID     *string   `db:"venue_id" json:"venue_id,omitempty"`
	StartDate   time.Time `db:"start_date" json:"start_date"`
	EndDate     time.Time `db:"end_date" json:"end_date"`
	Category    *string   `db:"category" json:"category,omitempty"`
	IsFeatured  bool      `db:"is_featured" json:"is_featured"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// NewsArticle is a published news post.
type NewsArticle struct {
	ID          int64      `db:"id" json:"-"`
	PublicID    string     `db:"public_id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Slug        string     `db:"slug" json:"slug"`
	Summary     *string    `db:"summary" json:"summary,omitempty"`
	Content     string     `db:"content" json:"content"`
	Category    *string    `db:"category" json:"category,omitempty"`
	ImageURL    *string    `db:"image_url" json:"image_url,omitempty"`
	Author      *string    `db:"author" json:"author,omitempty"`
	PublishedAt *time.Time `db:"published_at" json:"published_at,omitempty"`
	IsFeatured  bool       `db:"is_featured" json:"is_featured"`
	IsPublished bool       `db:"is_published" json:"is_published"`
	IsActive    bool       `db:"is_active" json:"is_active"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// MediaItem is a gallery entry (photo, video, or document).
type MediaItem struct {
	ID           int64     `db:"id" json:"-"`
	PublicID     string    `db:"public_id" json:"id"`
	Title        string    `db:"title" json:"title"`
	MediaType    MediaType `db:"media_type" json:"media_type"`
	URL          string    `db:"url" json:"url"`
	ThumbnailURL *string   `db:"thumbnail_url" json:"thumbnail_url,omitempty"`
	Description  *string   `db:"description" json:"description,omitempty"`
	Category     *string   `db:"category" json:"category,omitempty"`
	ContentType  *string   `db:"content_type" json:"content_type,omitempty"`
	SizeBytes    *int64    `db:"size_bytes" json:"size_bytes,omitempty"`
	IsFeatured   bool      `db:"is_featured" json:"is_featured"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Classification records a shooter's sport class and its review status.
type Classification struct {
	ID                   int64                `db:"id" json:"-"`
	PublicID             string               `db:"public_id" json:"id"`
	ShooterName          string               `db:"shooter_name" json:"shooter_name"`
	Gender               Gender               `db:"gender" json:"gender"`
	DateOfBirth          *time.Time           `db:"date_of_birth" json:"date_of_birth,omitempty"`
	DisabilityCategoryID string               `db:"disability_category_id" json:"disability_category_id"`
	StateAssociationID   *string              `db:"state_association_id" json:"state_association_id,omitempty"`
	Status               ClassificationStatus `db:"status" json:"status"`
	ClassifiedOn         time.Time            `db:"classified_on" json:"classified_on"`
	ReviewDate           *time.Time           `db:"review_date" json:"review_date,omitempty"`
	Notes                *string              `db:"notes" json:"notes,omitempty"`
	IsActive             bool                 `db:"is_active" json:"is_active"`
	CreatedAt            time.Time            `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time            `db:"updated_at" json:"updated_at"`
}

// Result is a shooter's final score in an event.
type Result struct {
	ID                   int64     `db:"id" json:"-"`
	PublicID             string    `db:"public_id" json:"id"`
	EventID              string    `db:"event_id" json:"event_id"`
	ShooterName          string    `db:"shooter_name" json:"shooter_name"`
	Gender               Gender    `db:"gender" json:"gender"`
	StateCode            *string   `db:"state_code" json:"state_code,omitempty"`
	DisabilityCategoryID *string   `db:"disability_category_id" json:"disability_category_id,omitempty"`
	Score                float64   `db:"score" json:"score"`
	Rank                 *int      `db:"rank" json:"rank,omitempty"`
	CreatedAt            time.Time `db:"created_at" json:"created_at"`
}

// AuditLog is an append-only record of a governed mutation.
type AuditLog struct {
	ID          int64           `db:"id" json:"-"`
	PublicID    string          `db:"public_id" json:"id"`
	ActorUserID *string         `db:"actor_user_id" json:"actor_user_id,omitempty"`
	Action      AuditAction     `db:"action" json:"action"`
	EntityType  string          `db:"entity_type" json:"entity_type"`
	EntityID    string          `db:"entity_id" json:"entity_id"`
	Changes     json.RawMessage `db:"changes" json:"changes,omitempty"`
	IPAddress   *string         `db:"ip_address" json:"ip_address,omitempty"`
	UserAgent   *string         `db:"user_agent" json:"user_agent,omitempty"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}
