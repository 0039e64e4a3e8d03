package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/02priyeshraj/HomePlate_Backend/helper"
	"github.com/02priyeshraj/HomePlate_Backend/models"
	"github.com/02priyeshraj/HomePlate_Backend/store"
)

type CustomerRegistration struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,maxbytes=72"`
	Phone    string `json:"phone" validate:"max=20"`
	Address  string `json:"address" validate:"max=300"`
}

type CustomerLogin struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SellerRegistration struct {
	BusinessName string `json:"business_name" validate:"required,min=2,max=100"`
	OwnerName    string `json:"owner_name" validate:"required,max=100"`
	Username     string `json:"username" validate:"required,min=3,max=50"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6,maxbytes=72"`
	Phone        string `json:"phone" validate:"required,max=20"`
	Address      string `json:"address" validate:"required,max=300"`
	FssaiNumber  string `json:"fssai_number" validate:"max=20"`
}

type SellerLogin struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResult struct {
	Token    string           `json:"token"`
	Customer *models.Customer `json:"user,omitempty"`
	Seller   *models.Seller   `json:"seller,omitempty"`
}

type Profile struct {
	Type     string           `json:"type"`
	Customer *models.Customer `json:"customer,omitempty"`
	Seller   *models.Seller   `json:"seller,omitempty"`
}

// IdentityService registers and authenticates the two principal types.
// Customers and sellers live in separate collections, so an email is only
// unique within its own principal type.
type IdentityService struct {
	customers CustomerRepository
	sellers   SellerRepository
	tokens    TokenIssuer
	passwords PasswordHasher
	images    ImageSaver
}

func NewIdentityService(customers CustomerRepository, sellers SellerRepository, tokens TokenIssuer, passwords PasswordHasher, images ImageSaver) *IdentityService {
	return &IdentityService{
		customers: customers,
		sellers:   sellers,
		tokens:    tokens,
		passwords: passwords,
		images:    images,
	}
}

func (s *IdentityService) RegisterCustomer(ctx context.Context, req CustomerRegistration) (*AuthResult, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = normalizeEmail(req.Email)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	hash, err := s.passwords.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	customer := &models.Customer{
		Name:       req.Name,
		Email:      req.Email,
		Password:   hash,
		Phone:      strings.TrimSpace(req.Phone),
		Address:    strings.TrimSpace(req.Address),
		Created_at: time.Now().UTC(),
	}
	if err := s.customers.InsertCustomer(ctx, customer); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: email already registered", ErrConflict)
		}
		return nil, fmt.Errorf("insert customer: %w", err)
	}

	return s.issue(customer, nil)
}

func (s *IdentityService) LoginCustomer(ctx context.Context, req CustomerLogin) (*AuthResult, error) {
	req.Email = normalizeEmail(req.Email)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	customer, err := s.customers.FindCustomerByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUnauthenticated
	} else if err != nil {
		return nil, fmt.Errorf("find customer: %w", err)
	}

	if !s.passwords.VerifyPassword(req.Password, customer.Password) {
		return nil, ErrUnauthenticated
	}

	return s.issue(customer, nil)
}

func (s *IdentityService) RegisterSeller(ctx context.Context, req SellerRegistration) (*models.Seller, error) {
	req.BusinessName = strings.TrimSpace(req.BusinessName)
	req.Username = strings.TrimSpace(req.Username)
	req.Email = normalizeEmail(req.Email)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	hash, err := s.passwords.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	seller := &models.Seller{
		BusinessName: req.BusinessName,
		OwnerName:    strings.TrimSpace(req.OwnerName),
		Username:     req.Username,
		Email:        req.Email,
		Password:     hash,
		Phone:        strings.TrimSpace(req.Phone),
		Address:      strings.TrimSpace(req.Address),
		FssaiNumber:  strings.TrimSpace(req.FssaiNumber),
		Created_at:   time.Now().UTC(),
	}
	if err := s.sellers.InsertSeller(ctx, seller); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: email or username already registered", ErrConflict)
		}
		return nil, fmt.Errorf("insert seller: %w", err)
	}

	return seller, nil
}

func (s *IdentityService) LoginSeller(ctx context.Context, req SellerLogin) (*AuthResult, error) {
	req.Username = strings.TrimSpace(req.Username)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	seller, err := s.sellers.FindSellerByUsername(ctx, req.Username)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUnauthenticated
	} else if err != nil {
		return nil, fmt.Errorf("find seller: %w", err)
	}

	if !s.passwords.VerifyPassword(req.Password, seller.Password) {
		return nil, ErrUnauthenticated
	}

	return s.issue(nil, seller)
}

func (s *IdentityService) UpdateSellerLogo(ctx context.Context, p models.Principal, logo *Upload) (*models.Seller, error) {
	if !p.IsSeller() {
		return nil, fmt.Errorf("%w: only sellers can update their logo", ErrForbidden)
	}
	if logo == nil || logo.File == nil {
		return nil, fmt.Errorf("%w: logo file is required", ErrValidation)
	}

	logoURL, err := s.images.Save(logo.File, logo.Filename)
	if errors.Is(err, helper.ErrUnsupportedImage) {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	} else if err != nil {
		return nil, fmt.Errorf("save logo: %w", err)
	}

	seller, err := s.sellers.UpdateSellerLogo(ctx, p.ID, logoURL)
	if err != nil {
		discardUpload(s.images, logoURL)
	}
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: seller not found", ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("update logo: %w", err)
	}
	return seller, nil
}

func (s *IdentityService) Profile(ctx context.Context, p models.Principal) (*Profile, error) {
	switch {
	case p.IsCustomer():
		customer, err := s.customers.FindCustomerByID(ctx, p.ID)
		if err != nil {
			return nil, profileError(err)
		}
		return &Profile{Type: p.Type, Customer: customer}, nil
	case p.IsSeller():
		seller, err := s.sellers.FindSellerByID(ctx, p.ID)
		if err != nil {
			return nil, profileError(err)
		}
		return &Profile{Type: p.Type, Seller: seller}, nil
	}
	return nil, ErrForbidden
}

func (s *IdentityService) issue(customer *models.Customer, seller *models.Seller) (*AuthResult, error) {
	var principal models.Principal
	if customer != nil {
		principal = models.Principal{ID: customer.ID.Hex(), Type: models.PrincipalCustomer, Name: customer.Name}
	} else {
		principal = models.Principal{ID: seller.ID.Hex(), Type: models.PrincipalSeller, Name: seller.BusinessName}
	}

	token, err := s.tokens.GenerateToken(principal)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &AuthResult{Token: token, Customer: customer, Seller: seller}, nil
}

func profileError(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: account not found", ErrNotFound)
	}
	return fmt.Errorf("find profile: %w", err)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
