package dto

import "encoding/json"

// CreateUserRequest is the payload for POST /users.
type CreateUserRequest struct {
	Email     string  `json:"email" binding:"required,email,max=255"`
	Password  string  `json:"password" binding:"required,min=8,maxbytes=72"`
	FirstName string  `json:"first_name" binding:"required,min=1,max=100"`
	LastName  string  `json:"last_name" binding:"required,min=1,max=100"`
	Phone     *string `json:"phone" binding:"omitempty,min=7,max=20"`
	AvatarURL *string `json:"avatar_url" binding:"omitempty,url"`
}

// UserUpdateExtras are fields only an update may set.
type UserUpdateExtras struct {
	IsActive *bool `json:"is_active" binding:"omitempty"`
}

// CreateStateAssociationRequest is the payload for POST /states.
type CreateStateAssociationRequest struct {
	Code            string  `json:"code" binding:"required,min=2,max=10"`
	Name            string  `json:"name" binding:"required,min=2,max=200"`
	Region          string  `json:"region" binding:"required,min=2,max=50"`
	SecretaryName   *string `json:"secretary_name" binding:"omitempty,max=100"`
	SecretaryEmail  *string `json:"secretary_email" binding:"omitempty,email,max=255"`
	SecretaryPhone  *string `json:"secretary_phone" binding:"omitempty,max=20"`
	Address         *string `json:"address" binding:"omitempty,max=500"`
	AffiliationDate *Date   `json:"affiliation_date" binding:"omitempty,datetime=2006-01-02"`
	IsActive        *bool   `json:"is_active"`
}

// CreateDisabilityCategoryRequest is the payload for POST /disability-categories.
// EquipmentAllowance is free-form and stored as given.
type CreateDisabilityCategoryRequest struct {
	Code               string          `json:"code" binding:"required,min=2,max=20"`
	Name               string          `json:"name" binding:"required,min=2,max=100"`
	Description        *string         `json:"description" binding:"omitempty,max=1000"`
	EventType          string          `json:"event_type" binding:"required,oneof=RIFLE PISTOL BOTH"`
	MinImpairment      *string         `json:"min_impairment" binding:"omitempty,max=500"`
	EquipmentAllowance json.RawMessage `json:"equipment_allowance"`
	IsActive           *bool           `json:"is_active"`
}

// CreateVenueRequest is the payload for POST /venues.
type CreateVenueRequest struct {
	Name         string          `json:"name" binding:"required,min=2,max=200"`
	Code         *string         `json:"code" binding:"omitempty,min=2,max=20"`
	Address      string          `json:"address" binding:"required,min=5,max=500"`
	City         string          `json:"city" binding:"required,min=2,max=100"`
	State        string          `json:"state" binding:"required,min=2,max=100"`
	Country      string          `json:"country" binding:"required,min=2,max=100"`
	PostalCode   *string         `json:"postal_code" binding:"omitempty,max=20"`
	Latitude     *float64        `json:"latitude" binding:"omitempty,latitude"`
	Longitude    *float64        `json:"longitude" binding:"omitempty,longitude"`
	Facilities   json.RawMessage `json:"facilities"`
	Capacity     *int            `json:"capacity" binding:"omitempty,min=1,max=100000"`
	ContactName  *string         `json:"contact_name" binding:"omitempty,max=100"`
	ContactEmail *string         `json:"contact_email" binding:"omitempty,email,max=255"`
	ContactPhone *string         `json:"contact_phone" binding:"omitempty,max=20"`
	IsActive     *bool           `json:"is_active"`
}

// CreateEventRequest is the payload for POST /events.
type CreateEventRequest struct {
	Title       string  `json:"title" binding:"required,min=3,max=200"`
	Slug        string  `json:"slug" binding:"required,min=3,max=220"`
	Description *string `json:"description" binding:"omitempty,max=5000"`
	EventType   string  `json:"event_type" binding:"required,oneof=RIFLE PISTOL BOTH"`
	VenueID     *string `json:"venue_id" binding:"omitempty,uuid"`
	StartDate   Date    `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     Date    `json:"end_date" binding:"required,datetime=2006-01-02"`
	Category    *string `json:"category" binding:"omitempty,max=50"`
	IsFeatured  *bool   `json:"is_featured"`
	IsActive    *bool   `json:"is_active"`
}

// CreateNewsRequest is the payload for POST /news.
type CreateNewsRequest struct {
	Title       string     `json:"title" binding:"required,min=3,max=200"`
	Slug        string     `json:"slug" binding:"required,min=3,max=220"`
	Summary     *string    `json:"summary" binding:"omitempty,max=500"`
	Content     string     `json:"content" binding:"required,min=1"`
	Category    *string    `json:"category" binding:"omitempty,max=50"`
	ImageURL    *string    `json:"image_url" binding:"omitempty,url"`
	Author      *string    `json:"author" binding:"omitempty,max=100"`
	PublishedAt *Timestamp `json:"published_at" binding:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	IsFeatured  *bool      `json:"is_featured"`
	IsPublished *bool      `json:"is_published"`
	IsActive    *bool      `json:"is_active"`
}

// CreateMediaRequest is the payload for POST /media, for assets already hosted elsewhere.
type CreateMediaRequest struct {
	Title        string  `json:"title" binding:"required,min=2,max=200"`
	MediaType    string  `json:"media_type" binding:"required,oneof=IMAGE VIDEO DOCUMENT"`
	URL          string  `json:"url" binding:"required,url"`
	ThumbnailURL *string `json:"thumbnail_url" binding:"omitempty,url"`
	Description  *string `json:"description" binding:"omitempty,max=1000"`
	Category     *string `json:"category" binding:"omitempty,max=50"`
	IsFeatured   *bool   `json:"is_featured"`
	IsActive     *bool   `json:"is_active"`
}

// UploadMediaForm is the metadata sent with POST /media/upload.
type UploadMediaForm struct {
	Title       string  `form:"title" binding:"required,min=2,max=200"`
	MediaType   *string `form:"media_type" binding:"omitempty,oneof=IMAGE VIDEO DOCUMENT"`
	Description *string `form:"description" binding:"omitempty,max=1000"`
	Category    *string `form:"category" binding:"omitempty,max=50"`
	IsFeatured  *bool   `form:"is_featured"`
}

// CreateClassificationRequest is the payload for POST /classifications.
type CreateClassificationRequest struct {
	ShooterName          string  `json:"shooter_name" binding:"required,min=2,max=200"`
	Gender               string  `json:"gender" binding:"required,oneof=MALE FEMALE"`
	DateOfBirth          *Date   `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02"`
	DisabilityCategoryID string  `json:"disability_category_id" binding:"required,uuid"`
	StateAssociationID   *string `json:"state_association_id" binding:"omitempty,uuid"`
	Status               string  `json:"status" binding:"required,oneof=NEW REVIEW CONFIRMED FIXED_REVIEW_DATE"`
	ClassifiedOn         Date    `json:"classified_on" binding:"required,datetime=2006-01-02"`
	ReviewDate           *Date   `json:"review_date" binding:"omitempty,datetime=2006-01-02"`
	Notes                *string `json:"notes" binding:"omitempty,max=2000"`
	IsActive             *bool   `json:"is_active"`
}

// CreateResultRequest is the payload for POST /results.
type CreateResultRequest struct {
	EventID              string   `json:"event_id" binding:"required,uuid"`
	ShooterName          string   `json:"shooter_name" binding:"required,min=2,max=200"`
	Gender               string   `json:"gender" binding:"required,oneof=MALE FEMALE"`
	StateCode            *string  `json:"state_code" binding:"omitempty,min=2,max=10"`
	DisabilityCategoryID *string  `json:"disability_category_id" binding:"omitempty,uuid"`
	Score                *float64 `json:"score" binding:"required,min=0,max=1000"`
	Rank                 *int     `json:"rank" binding:"omitempty,min=1"`
}

// Update shapes. Each is derived from its create request so the two can
// never disagree about a field's rule.
var (
	UpdateUser               = DeriveUpdate[CreateUserRequest, UserUpdateExtras]("password")
	UpdateStateAssociation   = DeriveUpdate[CreateStateAssociationRequest, NoExtras]()
	UpdateDisabilityCategory = DeriveUpdate[CreateDisabilityCategoryRequest, NoExtras]()
	UpdateVenue              = DeriveUpdate[CreateVenueRequest, NoExtras]()
	UpdateEvent              = DeriveUpdate[CreateEventRequest, NoExtras]()
	UpdateNews               = DeriveUpdate[CreateNewsRequest, NoExtras]()
	UpdateMedia              = DeriveUpdate[CreateMediaRequest, NoExtras]()
	UpdateClassification     = DeriveUpdate[CreateClassificationRequest, NoExtras]()
)
