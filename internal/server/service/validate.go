package service

import (
	"fmt"
	"regexp"
	"time"

	"github.com/mdouchement/pinpost/internal/model"
	"github.com/mdouchement/pinpost/internal/pperror"
)

// US postcodes: 5 digits, or 5 digits + dash + 4 digits.
var postcodef = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

// MutableFields are the only item fields an update can touch.
var MutableFields = []string{"name", "title", "users", "start_date"}

// ValidPostcode returns true if postcode is a well-formed US postal code.
func ValidPostcode(postcode string) bool {
	return postcodef.MatchString(postcode)
}

// ValidStartDate returns true if t is at least one week after now.
func ValidStartDate(t, now time.Time) bool {
	return !t.Before(now.Add(7 * 24 * time.Hour))
}

// ValidateItem checks a full creation payload with snake_case keys.
// All violations are reported together. On success it returns the item
// populated with the client-settable fields.
func ValidateItem(data M, now time.Time) (*model.Item, pperror.Fields) {
	ferr := ValidateItemPartial(data, now)

	if _, ok := data["name"]; !ok {
		ferr["name"] = "Name is required"
	}

	if _, ok := data["postcode"]; !ok {
		ferr["postcode"] = "Postcode is required"
	} else if postcode, ok := str(data, "postcode"); !ok || !ValidPostcode(postcode) {
		ferr["postcode"] = "Invalid US postcode format"
	}

	if _, ok := data["users"]; !ok {
		ferr["users"] = "Users list is required"
	}

	if _, ok := data["start_date"]; !ok {
		ferr["start_date"] = "Start date is required"
	}

	if len(ferr) > 0 {
		return nil, ferr
	}

	item := &model.Item{}
	item.Name, _ = str(data, "name")
	item.Postcode, _ = str(data, "postcode")
	item.Title, _ = str(data, "title")
	item.Users, _ = list(data, "users")
	item.StartDate, _ = date(data["start_date"])
	return item, ferr
}

// ValidateItemPartial checks the fields present in a payload with snake_case
// keys, ignoring the missing ones. It is used for update payloads and as the
// per-field half of the full creation validation.
func ValidateItemPartial(data M, now time.Time) pperror.Fields {
	ferr := pperror.Fields{}

	if _, ok := data["name"]; ok {
		name, ok := str(data, "name")
		switch {
		case !ok:
			ferr["name"] = "Name must be a string"
		case len(name) > 50:
			ferr["name"] = "Name must be less than 50 characters"
		}
	}

	if v, ok := data["title"]; ok && v != nil {
		title, ok := str(data, "title")
		switch {
		case !ok:
			ferr["title"] = "Title must be a string"
		case len(title) > 100:
			ferr["title"] = "Title must be less than 100 characters"
		}
	}

	if v, ok := data["users"]; ok {
		if elements, ok := v.([]any); ok {
			for i, e := range elements {
				user, ok := e.(string)
				if !ok {
					ferr[fmt.Sprintf("users[%d]", i)] = "User name must be a string"
					continue
				}
				if len(user) > 50 {
					ferr[fmt.Sprintf("users[%d]", i)] = fmt.Sprintf("User name '%s' exceeds 50 characters", user)
				}
			}
		} else {
			ferr["users"] = "Users must be a list"
		}
	}

	if v, ok := data["start_date"]; ok {
		t, err := date(v)
		switch {
		case err != nil:
			ferr["start_date"] = "Invalid start date format"
		case !ValidStartDate(t, now):
			ferr["start_date"] = "Start date must be at least 1 week after the item creation date"
		}
	}

	// Cross-field invariant, only checkable when both ends are present and sane.
	name, nok := str(data, "name")
	users, uok := list(data, "users")
	if nok && uok && !contains(users, name) {
		ferr["name"] = "Name must be included in the users list"
	}

	return ferr
}
