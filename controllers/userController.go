package controller

import (
	"net/http"

	"github.com/02priyeshraj/HomePlate_Backend/helper"
	middleware "github.com/02priyeshraj/HomePlate_Backend/middlewares"
	"github.com/02priyeshraj/HomePlate_Backend/services"
)

type UserController struct {
	Identity services.IdentityServiceInterface
}

func (c *UserController) RegisterCustomer(w http.ResponseWriter, r *http.Request) {
	var req services.CustomerRegistration
	if !decodeJSON(w, r, &req) {
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	res, err := c.Identity.RegisterCustomer(ctx, req)
	if err != nil {
		writeServiceError(w, r, err, "Error creating customer")
		return
	}
	helper.WriteJSON(w, http.StatusCreated, "Customer registered successfully", res)
}

func (c *UserController) LoginCustomer(w http.ResponseWriter, r *http.Request) {
	var req services.CustomerLogin
	if !decodeJSON(w, r, &req) {
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	res, err := c.Identity.LoginCustomer(ctx, req)
	if err != nil {
		writeServiceError(w, r, err, "Error logging in")
		return
	}
	helper.WriteJSON(w, http.StatusOK, "Login successful", res)
}

func (c *UserController) RegisterSeller(w http.ResponseWriter, r *http.Request) {
	var req services.SellerRegistration
	if !decodeJSON(w, r, &req) {
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	seller, err := c.Identity.RegisterSeller(ctx, req)
	if err != nil {
		writeServiceError(w, r, err, "Error creating seller")
		return
	}
	helper.WriteJSON(w, http.StatusCreated, "Seller registered successfully. Please login.", seller)
}

func (c *UserController) LoginSeller(w http.ResponseWriter, r *http.Request) {
	var req services.SellerLogin
	if !decodeJSON(w, r, &req) {
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	res, err := c.Identity.LoginSeller(ctx, req)
	if err != nil {
		writeServiceError(w, r, err, "Error logging in")
		return
	}
	helper.WriteJSON(w, http.StatusOK, "Login successful", res)
}

// UpdateLogo expects a multipart form with the image in logoFile.
func (c *UserController) UpdateLogo(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		helper.WriteError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	file, header, err := r.FormFile("logoFile")
	if err != nil {
		helper.WriteError(w, http.StatusBadRequest, "No logo file uploaded")
		return
	}
	defer file.Close()

	ctx, cancel := requestContext(r)
	defer cancel()

	seller, err := c.Identity.UpdateSellerLogo(ctx, middleware.PrincipalFromContext(r.Context()),
		&services.Upload{File: file, Filename: header.Filename})
	if err != nil {
		writeServiceError(w, r, err, "Error updating logo")
		return
	}
	helper.WriteJSON(w, http.StatusOK, "Logo updated successfully", seller)
}

func (c *UserController) Me(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	profile, err := c.Identity.Profile(ctx, middleware.PrincipalFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err, "Error retrieving profile")
		return
	}
	helper.WriteJSON(w, http.StatusOK, "Profile retrieved successfully", profile)
}
