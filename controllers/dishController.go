package controller

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/02priyeshraj/HomePlate_Backend/helper"
	middleware "github.com/02priyeshraj/HomePlate_Backend/middlewares"
	"github.com/02priyeshraj/HomePlate_Backend/services"
)

type DishController struct {
	Catalog services.CatalogServiceInterface
}

// GetDishes lists available dishes. Supports type, category and search
// filters and optional page/recordPerPage pagination.
func (c *DishController) GetDishes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := services.CatalogFilter{
		Type:     query.Get("type"),
		Category: query.Get("category"),
		Search:   query.Get("search"),
	}
	page := helper.ParsePagination(r)
	if page != nil {
		filter.Skip = page.Skip()
		filter.Limit = int64(page.RecordsPerPage)
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	dishes, err := c.Catalog.ListDishes(ctx, filter)
	if err != nil {
		writeServiceError(w, r, err, "Error retrieving dishes")
		return
	}
	helper.WritePage(w, "Dishes retrieved successfully", dishes, page)
}

func (c *DishController) GetDish(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	dish, err := c.Catalog.GetDish(ctx, mux.Vars(r)["dishId"])
	if err != nil {
		writeServiceError(w, r, err, "Error retrieving dish")
		return
	}
	helper.WriteJSON(w, http.StatusOK, "Dish retrieved successfully", dish)
}

// CreateDish accepts either a JSON body or a multipart form carrying the
// same fields plus an optional imageFile.
func (c *DishController) CreateDish(w http.ResponseWriter, r *http.Request) {
	var (
		req   services.DishRequest
		image *services.Upload
	)

	if isMultipart(r) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			helper.WriteError(w, http.StatusBadRequest, "Invalid multipart form")
			return
		}
		var ok bool
		if req, ok = dishRequestFromForm(w, r); !ok {
			return
		}
		if file, header, err := r.FormFile("imageFile"); err == nil {
			defer file.Close()
			image = &services.Upload{File: file, Filename: header.Filename}
		}
	} else if !decodeJSON(w, r, &req) {
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	dish, err := c.Catalog.AddDish(ctx, middleware.PrincipalFromContext(r.Context()), req, image)
	if err != nil {
		writeServiceError(w, r, err, "Error creating dish")
		return
	}
	helper.WriteJSON(w, http.StatusCreated, "Dish added successfully", dish)
}

func dishRequestFromForm(w http.ResponseWriter, r *http.Request) (services.DishRequest, bool) {
	req := services.DishRequest{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
		Type:        r.FormValue("type"),
		Image:       r.FormValue("image"),
	}

	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil {
		helper.WriteError(w, http.StatusBadRequest, "Invalid price")
		return req, false
	}
	req.Price = price

	if raw := r.FormValue("prep_time"); raw != "" {
		prepTime, err := strconv.Atoi(raw)
		if err != nil {
			helper.WriteError(w, http.StatusBadRequest, "Invalid prep_time")
			return req, false
		}
		req.PrepTime = prepTime
	}
	return req, true
}

func (c *DishController) GetSellerDishes(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	dishes, err := c.Catalog.SellerDishes(ctx, middleware.PrincipalFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err, "Error retrieving dishes")
		return
	}
	helper.WriteJSON(w, http.StatusOK, "Dishes retrieved successfully", dishes)
}

type availabilityRequest struct {
	IsAvailable *bool `json:"is_available"`
}

func (c *DishController) UpdateAvailability(w http.ResponseWriter, r *http.Request) {
	var req availabilityRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.IsAvailable == nil {
		helper.WriteError(w, http.StatusBadRequest, "is_available is required")
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	dish, err := c.Catalog.SetAvailability(ctx, middleware.PrincipalFromContext(r.Context()), mux.Vars(r)["dishId"], *req.IsAvailable)
	if err != nil {
		writeServiceError(w, r, err, "Error updating dish")
		return
	}
	helper.WriteJSON(w, http.StatusOK, "Dish availability updated", dish)
}
