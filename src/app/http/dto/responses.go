package dto

import (
	"encoding/json"
	"strings"
	"time"

	"shootfed/src/core/domain"
)

func formatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatDate(*t)
	return &s
}

// UserResponse is the only wire shape of a user.
type UserResponse struct {
	ID              string     `json:"id"`
	Email           string     `json:"email"`
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	FullName        string     `json:"full_name"`
	Phone           *string    `json:"phone,omitempty"`
	AvatarURL       *string    `json:"avatar_url,omitempty"`
	IsActive        bool       `json:"is_active"`
	IsEmailVerified bool       `json:"is_email_verified"`
	LastLoginAt     *time.Time `json:"last_login_at,omitempty"`
	Roles           []string   `json:"roles"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func NewUserResponse(u *domain.User) UserResponse {
	roles := u.Roles
	if roles == nil {
		roles = []string{}
	}
	return UserResponse{
		ID:              u.PublicID,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		FullName:        strings.TrimSpace(u.FirstName + " " + u.LastName),
		Phone:           u.Phone,
		AvatarURL:       u.AvatarURL,
		IsActive:        u.IsActive,
		IsEmailVerified: u.EmailVerifiedAt != nil,
		LastLoginAt:     u.LastLoginAt,
		Roles:           roles,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

type RoleResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

func NewRoleResponse(r *domain.Role) RoleResponse {
	return RoleResponse{ID: r.PublicID, Name: r.Name, Description: r.Description}
}

type StateAssociationResponse struct {
	ID              string    `json:"id"`
	Code            string    `json:"code"`
	Name            string    `json:"name"`
	Region          string    `json:"region"`
	SecretaryName   *string   `json:"secretary_name,omitempty"`
	SecretaryEmail  *string   `json:"secretary_email,omitempty"`
	SecretaryPhone  *string   `json:"secretary_phone,omitempty"`
	Address         *string   `json:"address,omitempty"`
	AffiliationDate *string   `json:"affiliation_date,omitempty"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func NewStateAssociationResponse(s *domain.StateAssociation) StateAssociationResponse {
	return StateAssociationResponse{
		ID:              s.PublicID,
		Code:            s.Code,
		Name:            s.Name,
		Region:          s.Region,
		SecretaryName:   s.SecretaryName,
		SecretaryEmail:  s.SecretaryEmail,
		SecretaryPhone:  s.SecretaryPhone,
		Address:         s.Address,
		AffiliationDate: formatDatePtr(s.AffiliationDate),
		IsActive:        s.IsActive,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

type DisabilityCategoryResponse struct {
	ID                 string          `json:"id"`
	Code               string          `json:"code"`
	Name               string          `json:"name"`
	Description        *string         `json:"description,omitempty"`
	EventType          string          `json:"event_type"`
	MinImpairment      *string         `json:"min_impairment,omitempty"`
	EquipmentAllowance json.RawMessage `json:"equipment_allowance,omitempty"`
	IsActive           bool            `json:"is_active"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

func NewDisabilityCategoryResponse(d *domain.DisabilityCategory) DisabilityCategoryResponse {
	return DisabilityCategoryResponse{
		ID:                 d.PublicID,
		Code:               d.Code,
		Name:               d.Name,
		Description:        d.Description,
		EventType:          string(d.EventType),
		MinImpairment:      d.MinImpairment,
		EquipmentAllowance: d.EquipmentAllowance,
		IsActive:           d.IsActive,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

type VenueResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Code         *string         `json:"code,omitempty"`
	Address      string          `json:"address"`
	City         string          `json:"city"`
	State        string          `json:"state"`
	Country      string          `json:"country"`
	PostalCode   *string         `json:"postal_code,omitempty"`
	Latitude     *float64        `json:"latitude,omitempty"`
	Longitude    *float64        `json:"longitude,omitempty"`
	Facilities   json.RawMessage `json:"facilities,omitempty"`
	Capacity     *int            `json:"capacity,omitempty"`
	ContactName  *string         `json:"contact_name,omitempty"`
	ContactEmail *string         `json:"contact_email,omitempty"`
	ContactPhone *string         `json:"contact_phone,omitempty"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func NewVenueResponse(v *domain.Venue) VenueResponse {
	return VenueResponse{
		ID:           v.PublicID,
		Name:         v.Name,
		Code:         v.Code,
		Address:      v.Address,
		City:         v.City,
		State:        v.State,
		Country:      v.Country,
		PostalCode:   v.PostalCode,
		Latitude:     v.Latitude,
		Longitude:    v.Longitude,
		Facilities:   v.Facilities,
		Capacity:     v.Capacity,
		ContactName:  v.ContactName,
		ContactEmail: v.ContactEmail,
		ContactPhone: v.ContactPhone,
		IsActive:     v.IsActive,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

type EventResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description,omitempty"`
	EventType   string    `json:"event_type"`
	VenueID     *string   `json:"venue_id,omitempty"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Category    *string   `json:"category,omitempty"`
	IsFeatured  bool      `json:"is_featured"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:          e.PublicID,
		Title:       e.Title,
		Slug:        e.Slug,
		Description: e.Description,
		EventType:   string(e.EventType),
		VenueID:     e.VenueID,
		StartDate:   formatDate(e.StartDate),
		EndDate:     formatDate(e.EndDate),
		Category:    e.Category,
		IsFeatured:  e.IsFeatured,
		IsActive:    e.IsActive,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

type NewsResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Summary     *string    `json:"summary,omitempty"`
	Content     string     `json:"content"`
	Category    *string    `json:"category,omitempty"`
	ImageURL    *string    `json:"image_url,omitempty"`
	Author      *string    `json:"author,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	IsFeatured  bool       `json:"is_featured"`
	IsPublished bool       `json:"is_published"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func NewNewsResponse(n *domain.NewsArticle) NewsResponse {
	return NewsResponse{
		ID:          n.PublicID,
		Title:       n.Title,
		Slug:        n.Slug,
		Summary:     n.Summary,
		Content:     n.Content,
		Category:    n.Category,
		ImageURL:    n.ImageURL,
		Author:      n.Author,
		PublishedAt: n.PublishedAt,
		IsFeatured:  n.IsFeatured,
		IsPublished: n.IsPublished,
		IsActive:    n.IsActive,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}

type MediaResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	MediaType    string    `json:"media_type"`
	URL          string    `json:"url"`
	ThumbnailURL *string   `json:"thumbnail_url,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Category     *string   `json:"category,omitempty"`
	ContentType  *string   `json:"content_type,omitempty"`
	SizeBytes    *int64    `json:"size_bytes,omitempty"`
	IsFeatured   bool      `json:"is_featured"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewMediaResponse(m *domain.MediaItem) MediaResponse {
	return MediaResponse{
		ID:           m.PublicID,
		Title:        m.Title,
		MediaType:    string(m.MediaType),
		URL:          m.URL,
		ThumbnailURL: m.ThumbnailURL,
		Description:  m.Description,
		Category:     m.Category,
		ContentType:  m.ContentType,
		SizeBytes:    m.SizeBytes,
		IsFeatured:   m.IsFeatured,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

type ClassificationResponse struct {
	ID                   string    `json:"id"`
	ShooterName          string    `json:"shooter_name"`
	Gender               string    `json:"gender"`
	DateOfBirth          *string   `json:"date_of_birth,omitempty"`
	DisabilityCategoryID string    `json:"disability_category_id"`
	StateAssociationID   *string   `json:"state_association_id,omitempty"`
	Status               string    `json:"status"`
	ClassifiedOn         string    `json:"classified_on"`
	ReviewDate           *string   `json:"review_date,omitempty"`
	Notes                *string   `json:"notes,omitempty"`
	IsActive             bool      `json:"is_active"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func NewClassificationResponse(c *domain.Classification) ClassificationResponse {
	return ClassificationResponse{
		ID:                   c.PublicID,
		ShooterName:          c.ShooterName,
		Gender:               string(c.Gender),
		DateOfBirth:          formatDatePtr(c.DateOfBirth),
		DisabilityCategoryID: c.DisabilityCategoryID,
		StateAssociationID:   c.StateAssociationID,
		Status:               string(c.Status),
		ClassifiedOn:         formatDate(c.ClassifiedOn),
		ReviewDate:           formatDatePtr(c.ReviewDate),
		Notes:                c.Notes,
		IsActive:             c.IsActive,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}
}

type ResultResponse struct {
	ID                   string    `json:"id"`
	EventID              string    `json:"event_id"`
	ShooterName          string    `json:"shooter_name"`
	Gender               string    `json:"gender"`
	StateCode            *string   `json:"state_code,omitempty"`
	DisabilityCategoryID *string   `json:"disability_category_id,omitempty"`
	Score                float64   `json:"score"`
	Rank                 *int      `json:"rank,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}

func NewResultResponse(r *domain.Result) ResultResponse {
	return ResultResponse{
		ID:                   r.PublicID,
		EventID:              r.EventID,
		ShooterName:          r.ShooterName,
		Gender:               string(r.Gender),
		StateCode:            r.StateCode,
		DisabilityCategoryID: r.DisabilityCategoryID,
		Score:                r.Score,
		Rank:                 r.Rank,
		CreatedAt:            r.CreatedAt,
	}
}

type AuditLogResponse struct {
	ID          string          `json:"id"`
	ActorUserID *string         `json:"actor_user_id,omitempty"`
	Action      string          `json:"action"`
	EntityType  string          `json:"entity_type"`
	EntityID    string          `json:"entity_id"`
	Changes     json.RawMessage `json:"changes,omitempty"`
	IPAddress   *string         `json:"ip_address,omitempty"`
	UserAgent   *string         `json:"user_agent,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

func NewAuditLogResponse(a *domain.AuditLog) AuditLogResponse {
	return AuditLogResponse{
		ID:          a.PublicID,
		ActorUserID: a.ActorUserID,
		Action:      string(a.Action),
		EntityType:  a.EntityType,
		EntityID:    a.EntityID,
		Changes:     a.Changes,
		IPAddress:   a.IPAddress,
		UserAgent:   a.UserAgent,
		CreatedAt:   a.CreatedAt,
	}
}
