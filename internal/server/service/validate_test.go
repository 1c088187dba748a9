package service_test

import (
	"strings"
	"testing"
	"time"

	"github.com/mdouchement/pinpost/internal/server/service"
	"github.com/stretchr/testify/assert"
)

func TestValidateItem(t *testing.T) {
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)

	item, ferr := service.ValidateItem(service.M{
		"name":       "Alice",
		"postcode":   "10001",
		"title":      "Gathering",
		"users":      []any{"Alice", "Bob"},
		"start_date": "2026-09-07T12:00:00Z",
	}, now)

	assert.Empty(t, ferr)
	assert.Equal(t, "Alice", item.Name)
	assert.Equal(t, "10001", item.Postcode)
	assert.Equal(t, "Gathering", item.Title)
	assert.Equal(t, []string{"Alice", "Bob"}, item.Users)
	assert.Equal(t, time.Date(2026, time.September, 7, 12, 0, 0, 0, time.UTC), item.StartDate.UTC())
}

func TestValidateItemAccumulatesErrors(t *testing.T) {
	now := time.Now().UTC()

	item, ferr := service.ValidateItem(service.M{}, now)

	assert.Nil(t, item)
	assert.Equal(t, "Name is required", ferr["name"])
	assert.Equal(t, "Postcode is required", ferr["postcode"])
	assert.Equal(t, "Users list is required", ferr["users"])
	assert.Equal(t, "Start date is required", ferr["start_date"])
}

func TestValidateItemFieldConstraints(t *testing.T) {
	now := time.Now().UTC()
	longName := strings.Repeat("a", 51)

	item, ferr := service.ValidateItem(service.M{
		"name":       longName,
		"postcode":   "1001-12",
		"users":      []any{"Alice", longName},
		"start_date": now.Format(time.RFC3339),
	}, now)

	assert.Nil(t, item)
	assert.Equal(t, "Name must be less than 50 characters", ferr["name"])
	assert.Equal(t, "Invalid US postcode format", ferr["postcode"])
	assert.Contains(t, ferr["users[1]"], "exceeds 50 characters")
	assert.Equal(t, "Start date must be at least 1 week after the item creation date", ferr["start_date"])
}

func TestValidateItemNameMustBeInUsers(t *testing.T) {
	now := time.Now().UTC()

	item, ferr := service.ValidateItem(service.M{
		"name":       "Alice",
		"postcode":   "10001",
		"users":      []any{"Bob"},
		"start_date": now.Add(8 * 24 * time.Hour).Format(time.RFC3339),
	}, now)

	assert.Nil(t, item)
	assert.Equal(t, "Name must be included in the users list", ferr["name"])
}

func TestValidateItemPartial(t *testing.T) {
	now := time.Now().UTC()

	ferr := service.ValidateItemPartial(service.M{}, now)
	assert.Empty(t, ferr)

	ferr = service.ValidateItemPartial(service.M{
		"users": "not-a-list",
	}, now)
	assert.Equal(t, "Users must be a list", ferr["users"])

	ferr = service.ValidateItemPartial(service.M{
		"name":  "Alice",
		"users": []any{"Bob"},
	}, now)
	assert.Equal(t, "Name must be included in the users list", ferr["name"])

	ferr = service.ValidateItemPartial(service.M{
		"start_date": "not a date at all %%",
	}, now)
	assert.Equal(t, "Invalid start date format", ferr["start_date"])
}

func TestValidPostcode(t *testing.T) {
	assert.True(t, service.ValidPostcode("10001"))
	assert.True(t, service.ValidPostcode("10001-1234"))
	assert.False(t, service.ValidPostcode("1001"))
	assert.False(t, service.ValidPostcode("100011"))
	assert.False(t, service.ValidPostcode("10001-12"))
	assert.False(t, service.ValidPostcode("ABCDE"))
	assert.False(t, service.ValidPostcode(""))
}

func TestValidStartDate(t *testing.T) {
	now := time.Now().UTC()

	assert.True(t, service.ValidStartDate(now.Add(7*24*time.Hour), now))
	assert.True(t, service.ValidStartDate(now.Add(8*24*time.Hour), now))
	assert.False(t, service.ValidStartDate(now.Add(6*24*time.Hour), now))
	assert.False(t, service.ValidStartDate(now, now))
}
