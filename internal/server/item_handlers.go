package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mdouchement/pinpost/internal/pperror"
	"github.com/mdouchement/pinpost/internal/server/service"
)

// item contains all item handlers.
type item struct {
	svc *service.Item
}

///// Create
////
//

// Create runs the creation pipeline and renders the new item's identifier.
func (h *item) Create(c echo.Context) error {
	// Filter params
	var params service.M
	if err := c.Bind(&params); err != nil {
		return c.JSON(http.StatusBadRequest, pperror.New(http.StatusBadRequest, "Could not get item params."))
	}

	id, err := h.svc.Create(params)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"id": id,
	})
}

///// List
////
//

// List renders all the items, in storage order.
func (h *item) List(c echo.Context) error {
	items, err := h.svc.List()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, items)
}

///// Find
////
//

// Find renders the item matching the id parameter.
func (h *item) Find(c echo.Context) error {
	render, err := h.svc.Find(c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, render)
}

///// Update
////
//

// Update applies the mutable fields of the payload to the item.
// No representation is returned; the caller must re-fetch.
func (h *item) Update(c echo.Context) error {
	// Filter params
	var params service.M
	if err := c.Bind(&params); err != nil {
		return c.JSON(http.StatusBadRequest, pperror.New(http.StatusBadRequest, "Could not get item params."))
	}

	if err := h.svc.Update(c.Param("id"), params); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Item updated successfully",
	})
}

///// Delete
////
//

// Delete removes the item matching the id parameter.
func (h *item) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Item deleted successfully",
	})
}
