package dto

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shootfed/src/core/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func jsonFields[T any]() []string {
	var names []string
	for name := range structFields(reflect.TypeFor[T]()) {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func violationsOf(t *testing.T, err error) *domain.ValidationErrors {
	t.Helper()
	require.Error(t, err)
	verr, ok := err.(*domain.ValidationErrors)
	require.True(t, ok, "expected *domain.ValidationErrors, got %T", err)
	return verr
}

func violationOf(t *testing.T, err error, field string) domain.FieldViolation {
	t.Helper()
	for _, v := range violationsOf(t, err).Violations {
		if v.Field == field {
			return v
		}
	}
	require.Failf(t, "missing violation", "no violation for %q in %v", field, err)
	return domain.FieldViolation{}
}

func TestDeriveUpdate_FieldSets(t *testing.T) {
	assert.Equal(t,
		[]string{"avatar_url", "email", "first_name", "is_active", "last_name", "phone"},
		UpdateUser.Fields())

	assert.Equal(t, jsonFields[CreateStateAssociationRequest](), UpdateStateAssociation.Fields())
	assert.Equal(t, jsonFields[CreateDisabilityCategoryRequest](), UpdateDisabilityCategory.Fields())
	assert.Equal(t, jsonFields[CreateVenueRequest](), UpdateVenue.Fields())
	assert.Equal(t, jsonFields[CreateEventRequest](), UpdateEvent.Fields())
	assert.Equal(t, jsonFields[CreateNewsRequest](), UpdateNews.Fields())
	assert.Equal(t, jsonFields[CreateMediaRequest](), UpdateMedia.Fields())
	assert.Equal(t, jsonFields[CreateClassificationRequest](), UpdateClassification.Fields())
}

func TestDeriveUpdate_PanicsOnBadDeclaration(t *testing.T) {
	assert.Panics(t, func() { DeriveUpdate[CreateUserRequest, NoExtras]("nickname") })

	type clash struct {
		Email *string `json:"email"`
	}
	assert.Panics(t, func() { DeriveUpdate[CreateUserRequest, clash]() })
}

func TestDecode_RejectsOmittedAndUnknownKeys(t *testing.T) {
	_, err := UpdateUser.Decode([]byte(`{"password":"hunter22hunter","nickname":"x"}`))

	verr := violationsOf(t, err)
	assert.True(t, verr.Has("password"))
	assert.True(t, verr.Has("nickname"))
	assert.Equal(t, "unknown", verr.Violations[0].Rule)
}

func TestDecode_NullIsAbsent(t *testing.T) {
	u, err := UpdateUser.Decode([]byte(`{"phone":null,"first_name":"Grace"}`))
	require.NoError(t, err)

	assert.False(t, u.Has("phone"))
	assert.True(t, u.Has("first_name"))
	assert.Equal(t, map[string]any{"first_name": "Grace"}, map[string]any(u.Changes()))
}

func TestDecode_TypeMismatch(t *testing.T) {
	_, err := UpdateVenue.Decode([]byte(`{"capacity":"lots"}`))

	verr := violationsOf(t, err)
	require.Len(t, verr.Violations, 1)
	assert.Equal(t, "capacity", verr.Violations[0].Field)
	assert.Equal(t, "type", verr.Violations[0].Rule)
	assert.Contains(t, verr.Violations[0].Message, "integer")
}

func TestDecode_ValidatesPresentFieldsOnly(t *testing.T) {
	// first_name is required on create, but absent here, so only email is checked
	_, err := UpdateUser.Decode([]byte(`{"email":"not-an-email"}`))

	verr := violationsOf(t, err)
	require.Len(t, verr.Violations, 1)
	assert.Equal(t, "email", verr.Violations[0].Field)
	assert.Equal(t, "email", verr.Violations[0].Rule)
}

func TestDecode_ExtrasAndEnumRules(t *testing.T) {
	u, err := UpdateUser.Decode([]byte(`{"is_active":false}`))
	require.NoError(t, err)
	assert.Equal(t, false, u.Changes()["is_active"])

	_, err = UpdateDisabilityCategory.Decode([]byte(`{"event_type":"HYBRID"}`))
	verr := violationsOf(t, err)
	assert.True(t, verr.Has("event_type"))
}

func TestDecode_DateBecomesTime(t *testing.T) {
	u, err := UpdateEvent.Decode([]byte(`{"start_date":"2025-03-01"}`))
	require.NoError(t, err)

	got, ok := u.Changes()["start_date"].(time.Time)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), got)

	_, err = UpdateEvent.Decode([]byte(`{"start_date":"01/03/2025"}`))
	assert.True(t, violationsOf(t, err).Has("start_date"))
}

func TestDecode_NotAnObject(t *testing.T) {
	for _, body := range []string{``, `[]`, `null`, `{"a":`} {
		_, err := UpdateNews.Decode([]byte(body))
		assert.True(t, violationsOf(t, err).Has("body"), body)
	}
}

func jsonContext(body string) *gin.Context {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func TestBindJSON_NamesMissingFields(t *testing.T) {
	var req CreateUserRequest
	err := BindJSON(jsonContext(`{"email":"ada@example.com"}`), &req)

	verr := violationsOf(t, err)
	assert.True(t, verr.Has("password"))
	assert.True(t, verr.Has("first_name"))
	assert.True(t, verr.Has("last_name"))
	assert.False(t, verr.Has("email"))
}

func TestBindJSON_PasswordFitsBcrypt(t *testing.T) {
	body := func(password string) string {
		return `{"email":"ada@example.com","password":"` + password + `","first_name":"Ada","last_name":"Lovelace"}`
	}

	var ok CreateUserRequest
	require.NoError(t, BindJSON(jsonContext(body(strings.Repeat("a", 72))), &ok))

	var long CreateUserRequest
	v := violationOf(t, BindJSON(jsonContext(body(strings.Repeat("a", 100))), &long), "password")
	assert.Equal(t, "maxbytes", v.Rule)

	// Multi-byte runes count by encoded length.
	var wide CreateUserRequest
	v = violationOf(t, BindJSON(jsonContext(body(strings.Repeat("é", 40))), &wide), "password")
	assert.Equal(t, "maxbytes", v.Rule)
}

func TestBindJSON_EventTypeEnum(t *testing.T) {
	var rejected CreateDisabilityCategoryRequest
	err := BindJSON(jsonContext(`{"code":"SH1","name":"Rifle standing","event_type":"HYBRID"}`), &rejected)
	assert.True(t, violationsOf(t, err).Has("event_type"))

	var accepted CreateDisabilityCategoryRequest
	err = BindJSON(jsonContext(`{"code":"SH1","name":"Rifle standing","event_type":"BOTH"}`), &accepted)
	require.NoError(t, err)

	values := ToValues(&accepted)
	assert.Equal(t, "BOTH", values["event_type"])
	assert.NotContains(t, values, "is_active")
	assert.NotContains(t, values, "equipment_allowance")
}

func TestBindJSON_BodyErrors(t *testing.T) {
	var req CreateResultRequest

	err := BindJSON(jsonContext(`{"score":"high"}`), &req)
	assert.True(t, violationsOf(t, err).Has("score"))

	err = BindJSON(jsonContext(`{`), &req)
	assert.True(t, violationsOf(t, err).Has("body"))
}

func TestBindJSON_ScoreRequiredButZeroAllowed(t *testing.T) {
	base := `"event_id":"3f1c1e9a-8a43-4d3e-9a63-0b5f3b1e2f10","shooter_name":"Avani","gender":"FEMALE"`

	var missing CreateResultRequest
	err := BindJSON(jsonContext(`{`+base+`}`), &missing)
	assert.True(t, violationsOf(t, err).Has("score"))

	var zero CreateResultRequest
	require.NoError(t, BindJSON(jsonContext(`{`+base+`,"score":0}`), &zero))
	assert.Equal(t, 0.0, ToValues(&zero)["score"])
}

func queryContext(rawQuery string) *gin.Context {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	return c
}

func TestBindQuery_Defaults(t *testing.T) {
	var q UserQuery
	require.NoError(t, BindQuery(queryContext(""), &q))

	p := q.Params()
	assert.Equal(t, domain.DefaultPage, p.Page)
	assert.Equal(t, domain.DefaultLimit, p.Limit)
	assert.Equal(t, domain.SortDesc, p.SortOrder)
	assert.Equal(t, domain.DefaultSortBy, p.SortBy)
	assert.Empty(t, p.Filters)
}

func TestBindQuery_RejectsOutOfRange(t *testing.T) {
	tests := []struct {
		query string
		field string
	}{
		{"page=0", "page"},
		{"limit=101", "limit"},
		{"limit=0", "limit"},
		{"sortOrder=sideways", "sortOrder"},
		{"sortBy=password_hash", "sortBy"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var q UserQuery
			err := BindQuery(queryContext(tt.query), &q)
			assert.True(t, violationsOf(t, err).Has(tt.field))
		})
	}
}

func TestBindQuery_Filters(t *testing.T) {
	var q VenueQuery
	require.NoError(t, BindQuery(queryContext("city=Pune&is_active=true&page=2&limit=5&sortBy=name&sortOrder=ASC"), &q))

	p := q.Params()
	assert.Equal(t, map[string]any{"city": "Pune", "is_active": true}, p.Filters)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 5, p.Limit)
	assert.Equal(t, "name", p.SortBy)
	assert.Equal(t, domain.SortAsc, p.SortOrder)
	assert.Equal(t, 5, p.Offset())
}

func TestBindQuery_LimitCappedAtMax(t *testing.T) {
	var q UserQuery
	require.NoError(t, BindQuery(queryContext("limit="+strconv.Itoa(domain.MaxLimit)), &q))
	assert.Equal(t, domain.MaxLimit, q.Params().Limit)

	err := BindQuery(queryContext("limit="+strconv.Itoa(domain.MaxLimit+1)), &q)
	v := violationOf(t, err, "limit")
	assert.Equal(t, "pagesize", v.Rule)
	assert.Equal(t, "limit must be between 1 and 100", v.Message)
}

func TestBindQuery_TypeErrorNamesParameter(t *testing.T) {
	tests := []struct {
		query   string
		field   string
		message string
	}{
		{"page=first", "page", "must be an integer"},
		{"city=Pune&is_active=maybe", "is_active", "must be a boolean"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var q VenueQuery
			v := violationOf(t, BindQuery(queryContext(tt.query), &q), tt.field)
			assert.Equal(t, "type", v.Rule)
			assert.Equal(t, tt.message, v.Message)
		})
	}
}

func TestNewUserResponse(t *testing.T) {
	verified := time.Now()
	u := &domain.User{
		ID:              42,
		PublicID:        "0c8f6a2e-4b1d-4c55-9d0e-6a1f5f2b7c31",
		Email:           "ada@example.com",
		PasswordHash:    "$2a$12$secret",
		FirstName:       "Ada",
		LastName:        "",
		EmailVerifiedAt: &verified,
	}

	resp := NewUserResponse(u)
	assert.Equal(t, "Ada", resp.FullName)
	assert.True(t, resp.IsEmailVerified)
	assert.Equal(t, []string{}, resp.Roles)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "secret")
	assert.NotContains(t, string(raw), "42")
	assert.Contains(t, string(raw), `"id":"0c8f6a2e-4b1d-4c55-9d0e-6a1f5f2b7c31"`)
}

func TestResponses_FormatDates(t *testing.T) {
	start := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	e := &domain.Event{StartDate: start, EndDate: start.AddDate(0, 0, 4)}

	resp := NewEventResponse(e)
	assert.Equal(t, "2025-11-03", resp.StartDate)
	assert.Equal(t, "2025-11-07", resp.EndDate)

	c := NewClassificationResponse(&domain.Classification{ClassifiedOn: start})
	assert.Equal(t, "2025-11-03", c.ClassifiedOn)
	assert.Nil(t, c.ReviewDate)
}

func TestToValues_SkipsNilAndNullJSON(t *testing.T) {
	capacity := 40
	req := &CreateVenueRequest{
		Name:       "Dr Karni Singh Range",
		Address:    "Tughlakabad",
		City:       "New Delhi",
		State:      "Delhi",
		Country:    "India",
		Capacity:   &capacity,
		Facilities: json.RawMessage(`null`),
	}

	values := ToValues(req)
	assert.Equal(t, 40, values["capacity"])
	assert.NotContains(t, values, "facilities")
	assert.NotContains(t, values, "latitude")
	assert.Len(t, values, 6)
}
