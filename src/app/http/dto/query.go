package dto

import (
	"reflect"

	"github.com/gin-gonic/gin"

	"shootfed/src/core/domain"
)

// PageQuery holds the pagination parameters shared by every list endpoint.
// Out-of-range values are rejected, not clamped; pagesize enforces
// domain.MaxLimit.
type PageQuery struct {
	Page      int    `form:"page,default=1" binding:"min=1"`
	Limit     int    `form:"limit,default=10" binding:"pagesize"`
	SortOrder string `form:"sortOrder,default=DESC" binding:"oneof=ASC DESC"`
}

// listParams builds domain.ListParams from a bound query. Filters are the
// query's non-nil pointer fields, keyed by their form name.
func listParams(q any, page PageQuery, sortBy string) domain.ListParams {
	params := domain.ListParams{
		Page:      page.Page,
		Limit:     page.Limit,
		SortBy:    sortBy,
		SortOrder: domain.SortOrder(page.SortOrder),
		Filters:   map[string]any{},
	}

	rv := reflect.Indirect(reflect.ValueOf(q))
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		fv := rv.Field(i)
		if f.Anonymous || fv.Kind() != reflect.Pointer || fv.IsNil() {
			continue
		}
		params.Filters[fieldName(f)] = fv.Elem().Interface()
	}
	return params
}

type UserQuery struct {
	PageQuery
	SortBy   string  `form:"sortBy,default=created_at" binding:"oneof=created_at updated_at email first_name last_name"`
	Email    *string `form:"email" binding:"omitempty,email"`
	IsActive *bool   `form:"is_active"`
}

func (q *UserQuery) Params() domain.ListParams { return listParams(q, q.PageQuery, q.SortBy) }

type StateAssociationQuery struct {
	PageQuery
	SortBy   string  `form:"sortBy,default=created_at" binding:"oneof=created_at updated_at code name region"`
	Region   *string `form:"region" binding:"omitempty,max=50"`
	IsActive *bool   `form:"is_active"`
}

func (q *StateAssociationQuery) Params() domain.ListParams {
	return listParams(q, q.PageQuery, q.SortBy)
}

type DisabilityCategoryQuery struct {
	PageQuery
	SortBy    string  `form:"sortBy,default=created_at" binding:"oneof=created_at updated_at code name"`
	EventType *string `form:"event_type" binding:"omitempty,oneof=RIFLE PISTOL BOTH"`
	IsActive  *bool   `form:"is_active"`
}

func (q *DisabilityCategoryQuery) Params() domain.ListParams {
	return listParams(q, q.PageQuery, q.SortBy)
}

type VenueQuery struct {
	PageQuery
	SortBy   string  `form:"sortBy,default=created_at" binding:"oneof=created_at updated_at name city state"`
	City     *string `form:"city" binding:"omitempty,max=100"`
	State    *string `form:"state" binding:"omitempty,max=100"`
	IsActive *bool   `form:"is_active"`
}

func (q *VenueQuery) Params() domain.ListParams { return listParams(q, q.PageQuery, q.SortBy) }

type EventQuery struct {
	PageQuery
	SortBy     string  `form:"sortBy,default=created_at" binding:"oneof=created_at updated_at start_date end_date title"`
	EventType  *string `form:"event_type" binding:"omitempty,oneof=RIFLE PISTOL BOTH"`
	IsFeatured *bool   `form:"is_featured"`
	IsActive   *bool   `form:"is_active"`
}

func (q *EventQuery) Params() domain.ListParams { return listParams(q, q.PageQuery, q.SortBy) }

type NewsQuery struct {
	PageQuery
	SortBy      string  `form:"sortBy,default=created_at" binding:"oneof=created_at updated_at published_at title"`
	Category    *string `form:"category" binding:"omitempty,max=50"`
	IsFeatured  *bool   `form:"is_featured"`
	IsPublished *bool   `form:"is_published"`
}

func (q *NewsQuery) Params() domain.ListParams { return listParams(q, q.PageQuery, q.SortBy) }

type MediaQuery struct {
	PageQuery
	SortBy     string  `form:"sortBy,default=created_at" binding:"oneof=created_at updated_at title"`
	MediaType  *string `form:"media_type" binding:"omitempty,oneof=IMAGE VIDEO DOCUMENT"`
	Category   *string `form:"category" binding:"omitempty,max=50"`
	IsFeatured *bool   `form:"is_featured"`
}

func (q *MediaQuery) Params() domain.ListParams { return listParams(q, q.PageQuery, q.SortBy) }

type ClassificationQuery struct {
	PageQuery
	SortBy   string  `form:"sortBy,default=created_at" binding:"oneof=created_at updated_at shooter_name classified_on review_date"`
	Gender   *string `form:"gender" binding:"omitempty,oneof=MALE FEMALE"`
	Status   *string `form:"status" binding:"omitempty,oneof=NEW REVIEW CONFIRMED FIXED_REVIEW_DATE"`
	IsActive *bool   `form:"is_active"`
}

func (q *ClassificationQuery) Params() domain.ListParams {
	return listParams(q, q.PageQuery, q.SortBy)
}

type ResultQuery struct {
	PageQuery
	SortBy  string  `form:"sortBy,default=created_at" binding:"oneof=created_at score rank shooter_name"`
	EventID *string `form:"event_id" binding:"omitempty,uuid"`
	Gender  *string `form:"gender" binding:"omitempty,oneof=MALE FEMALE"`
}

func (q *ResultQuery) Params() domain.ListParams { return listParams(q, q.PageQuery, q.SortBy) }

type AuditLogQuery struct {
	PageQuery
	SortBy     string  `form:"sortBy,default=created_at" binding:"oneof=created_at"`
	EntityType *string `form:"entity_type" binding:"omitempty,oneof=state_association venue disability_category"`
	EntityID   *string `form:"entity_id" binding:"omitempty,uuid"`
	Action     *string `form:"action" binding:"omitempty,oneof=CREATE UPDATE DEACTIVATE"`
}

func (q *AuditLogQuery) Params() domain.ListParams { return listParams(q, q.PageQuery, q.SortBy) }

// IDParam is the :id path parameter of single-resource routes.
type IDParam struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// RoleParam addresses one role of one user.
type RoleParam struct {
	ID   string `uri:"id" binding:"required,uuid"`
	Role string `uri:"role" binding:"required,min=2,max=50"`
}

// SlugParam is the :slug path parameter.
type SlugParam struct {
	Slug string `uri:"slug" binding:"required,min=3,max=220"`
}

// ListQuery is implemented by the pointer of every list query type.
type ListQuery[Q any] interface {
	*Q
	Params() domain.ListParams
}

// BindList binds query parameters into a Q and returns its list params.
func BindList[Q any, PQ ListQuery[Q]](c *gin.Context) (domain.ListParams, error) {
	q := PQ(new(Q))
	if err := BindQuery(c, q); err != nil {
		return domain.ListParams{}, err
	}
	return q.Params(), nil
}
