package service

import (
	"fmt"
	"time"

	"github.com/mdouchement/pinpost/internal/casing"
	"github.com/mdouchement/pinpost/internal/database"
	"github.com/mdouchement/pinpost/internal/geo"
	"github.com/mdouchement/pinpost/internal/model"
	"github.com/mdouchement/pinpost/internal/pperror"
	"github.com/mdouchement/pinpost/internal/pubsub"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// An Item service runs the item pipelines: validation, geo enrichment,
// persistence and event emission.
type Item struct {
	db        database.Client
	geocoder  geo.Client
	events    *pubsub.Broker
	reference geo.Point
	logger    logrus.FieldLogger
}

// NewItem instantiates a new Item service.
func NewItem(db database.Client, geocoder geo.Client, events *pubsub.Broker, reference geo.Point) *Item {
	return &Item{
		db:        db,
		geocoder:  geocoder,
		events:    events,
		reference: reference,
		logger:    logrus.WithField("service", "item"),
	}
}

// Create validates and enriches the given camelCase payload, persists the item
// and returns its identifier. Validation and geo-resolution failures are
// returned as pperror.PPError.
func (s *Item) Create(data M) (string, error) {
	snake := M(casing.Snake(data))

	item, ferr := ValidateItem(snake, time.Now().UTC())
	if len(ferr) > 0 {
		s.logger.WithField("fields", ferr).Warn("item validation failed")
		return "", pperror.Validation(ferr)
	}

	place, err := s.geocoder.Resolve(item.Postcode)
	if err != nil {
		// A lookup failure is a data problem for the caller, whatever the cause.
		s.logger.WithError(err).Warnf("could not resolve postcode %s", item.Postcode)
		return "", pperror.Validation(pperror.Fields{"postcode": "Invalid or unrecognized postcode"})
	}

	item.Latitude = place.Latitude
	item.Longitude = place.Longitude
	item.Direction = geo.Quadrant(geo.Point{Latitude: place.Latitude, Longitude: place.Longitude}, s.reference)

	if err := s.db.Save(item); err != nil {
		return "", errors.Wrap(err, "could not create item")
	}

	s.emit(pubsub.TopicItemCreated, item.ID)
	s.logger.Infof("item created with ID: %s", item.ID)
	return item.ID, nil
}

// List returns all the items rendered with camelCase keys, in storage order.
func (s *Item) List() ([]M, error) {
	items, err := s.db.FindItems()
	if err != nil {
		return nil, errors.Wrap(err, "could not list items")
	}

	renders := make([]M, 0, len(items))
	for _, item := range items {
		renders = append(renders, render(item))
	}
	return renders, nil
}

// Find returns the item for the given id rendered with camelCase keys.
// A malformed id folds into not-found.
func (s *Item) Find(id string) (M, error) {
	item, err := s.find(id)
	if err != nil {
		return nil, err
	}
	return render(item), nil
}

// Update applies the mutable fields of the given camelCase payload to the item.
// The caller must re-fetch to observe the updated representation.
func (s *Item) Update(id string, data M) error {
	snake := M(casing.Snake(data))

	update := M{}
	for _, field := range MutableFields {
		if v, ok := snake[field]; ok && v != nil {
			update[field] = v
		}
	}
	if len(update) == 0 {
		return pperror.Validation(pperror.Fields{"_": "No valid fields to update"})
	}

	item, err := s.find(id)
	if err != nil {
		return err
	}

	ferr := ValidateItemPartial(update, time.Now().UTC())

	// Cross-field invariant against the persisted entity, for the halves the
	// payload does not carry.
	name, hasName := str(update, "name")
	users, hasUsers := list(update, "users")
	switch {
	case hasName && !hasUsers:
		if !contains(item.Users, name) {
			ferr["name"] = "Name must be included in the users list"
		}
	case hasUsers && !hasName:
		if !contains(users, item.Name) {
			ferr["users"] = "Users list must include the item name"
		}
	}

	if len(ferr) > 0 {
		s.logger.WithField("fields", ferr).Warnf("item update validation failed for ID: %s", id)
		return pperror.Validation(ferr)
	}

	if hasName {
		item.Name = name
	}
	if hasUsers {
		item.Users = users
	}
	if title, ok := str(update, "title"); ok {
		item.Title = title
	}
	if v, ok := update["start_date"]; ok {
		item.StartDate, _ = date(v)
	}

	if err := s.db.Save(item); err != nil {
		return errors.Wrap(err, "could not update item")
	}

	s.emit(pubsub.TopicItemUpdated, item.ID)
	s.logger.Infof("item updated: %s", id)
	return nil
}

// Delete removes the item for the given id.
func (s *Item) Delete(id string) error {
	item, err := s.find(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(item); err != nil {
		return errors.Wrap(err, "could not delete item")
	}

	s.emit(pubsub.TopicItemDeleted, id)
	s.logger.Infof("item deleted: %s", id)
	return nil
}

// find fetches an item, folding a malformed id and an absent record into the
// same not-found outcome.
func (s *Item) find(id string) (*model.Item, error) {
	if !model.ValidID(id) {
		s.logger.Warnf("invalid item ID format: %s", id)
		return nil, pperror.NotFound(fmt.Sprintf("Item not found with ID: %s", id))
	}

	item, err := s.db.FindItem(id)
	if err != nil {
		if s.db.IsNotFound(err) {
			return nil, pperror.NotFound(fmt.Sprintf("Item not found with ID: %s", id))
		}
		return nil, errors.Wrap(err, "could not fetch item")
	}
	return item, nil
}

// emit publishes a lifecycle event, best-effort.
func (s *Item) emit(topic, itemID string) {
	if err := s.events.Publish(topic, itemID); err != nil {
		s.logger.WithError(err).Warnf("could not publish %s", topic)
	}
}

// render serializes an item with the external camelCase key convention.
func render(item *model.Item) M {
	return M(casing.Camel(map[string]any{
		"id":                       item.ID,
		"name":                     item.Name,
		"postcode":                 item.Postcode,
		"latitude":                 item.Latitude,
		"longitude":                item.Longitude,
		"direction_from_reference": item.Direction,
		"title":                    item.Title,
		"users":                    item.Users,
		"start_date":               item.StartDate,
		"created_at":               item.CreatedAt,
		"updated_at":               item.UpdatedAt,
	}))
}
