package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/02priyeshraj/HomePlate_Backend/helper"
	"github.com/02priyeshraj/HomePlate_Backend/mocks"
	"github.com/02priyeshraj/HomePlate_Backend/models"
	"github.com/02priyeshraj/HomePlate_Backend/store"
)

type identityFixture struct {
	customers *mocks.CustomerRepository
	sellers   *mocks.SellerRepository
	images    *mocks.ImageSaver
	tokens    *helper.TokenMaker
	passwords helper.PasswordHasher
	svc       *IdentityService
}

func newIdentityFixture(t *testing.T) *identityFixture {
	f := &identityFixture{
		customers: mocks.NewCustomerRepository(t),
		sellers:   mocks.NewSellerRepository(t),
		images:    mocks.NewImageSaver(t),
		tokens:    helper.NewTokenMaker("test-secret", time.Hour),
		passwords: helper.PasswordHasher{Cost: 4},
	}
	f.svc = NewIdentityService(f.customers, f.sellers, f.tokens, f.passwords, f.images)
	return f
}

func assignCustomerID(args mock.Arguments) {
	args.Get(1).(*models.Customer).ID = primitive.NewObjectID()
}

func TestIdentityService_RegisterCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := newIdentityFixture(t)
		f.customers.On("InsertCustomer", mock.Anything, mock.MatchedBy(func(c *models.Customer) bool {
			return c.Email == "asha@example.com" && c.Password != "secret123"
		})).Run(assignCustomerID).Return(nil).Once()

		res, err := f.svc.RegisterCustomer(ctx, CustomerRegistration{
			Name: "Asha", Email: "  Asha@Example.com ", Password: "secret123", Phone: "98450", Address: "12 MG Road",
		})
		require.NoError(t, err)
		require.NotNil(t, res.Customer)
		assert.True(t, f.passwords.VerifyPassword("secret123", res.Customer.Password))

		p, err := f.tokens.ValidateToken(res.Token)
		require.NoError(t, err)
		assert.Equal(t, models.PrincipalCustomer, p.Type)
		assert.Equal(t, res.Customer.ID.Hex(), p.ID)
	})

	t.Run("duplicate_email", func(t *testing.T) {
		f := newIdentityFixture(t)
		f.customers.On("InsertCustomer", mock.Anything, mock.Anything).
			Return(fmt.Errorf("%w: E11000", store.ErrDuplicateKey)).Once()

		_, err := f.svc.RegisterCustomer(ctx, CustomerRegistration{Name: "Asha", Email: "asha@example.com", Password: "secret123"})
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("invalid_email", func(t *testing.T) {
		f := newIdentityFixture(t)
		_, err := f.svc.RegisterCustomer(ctx, CustomerRegistration{Name: "Asha", Email: "not-an-email", Password: "secret123"})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("short_password", func(t *testing.T) {
		f := newIdentityFixture(t)
		_, err := f.svc.RegisterCustomer(ctx, CustomerRegistration{Name: "Asha", Email: "asha@example.com", Password: "abc"})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("password_over_72_bytes", func(t *testing.T) {
		f := newIdentityFixture(t)
		// 40 runes, 80 bytes.
		_, err := f.svc.RegisterCustomer(ctx, CustomerRegistration{Name: "Asha", Email: "asha@example.com", Password: strings.Repeat("é", 40)})
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestIdentityService_SameEmailAcrossPrincipalTypes(t *testing.T) {
	ctx := context.Background()
	f := newIdentityFixture(t)

	f.customers.On("InsertCustomer", mock.Anything, mock.Anything).Run(assignCustomerID).Return(nil).Once()
	f.sellers.On("InsertSeller", mock.Anything, mock.MatchedBy(func(s *models.Seller) bool {
		return s.Email == "shared@example.com" && !s.IsVerified
	})).Return(nil).Once()

	_, err := f.svc.RegisterCustomer(ctx, CustomerRegistration{Name: "Asha", Email: "shared@example.com", Password: "secret123"})
	require.NoError(t, err)

	seller, err := f.svc.RegisterSeller(ctx, SellerRegistration{
		BusinessName: "Spice Route", OwnerName: "Asha", Username: "spiceroute", Email: "shared@example.com",
		Password: "secret123", Phone: "98450", Address: "Indiranagar",
	})
	require.NoError(t, err)
	assert.Equal(t, "spiceroute", seller.Username)
	assert.False(t, seller.IsVerified)
}

func TestIdentityService_RegisterSellerDuplicate(t *testing.T) {
	f := newIdentityFixture(t)
	f.sellers.On("InsertSeller", mock.Anything, mock.Anything).
		Return(fmt.Errorf("%w: E11000", store.ErrDuplicateKey)).Once()

	_, err := f.svc.RegisterSeller(context.Background(), SellerRegistration{
		BusinessName: "Spice Route", OwnerName: "Asha", Username: "spiceroute", Email: "spice@example.com",
		Password: "secret123", Phone: "98450", Address: "Indiranagar",
	})
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "email or username already registered")
}

func TestIdentityService_Login(t *testing.T) {
	ctx := context.Background()
	f := newIdentityFixture(t)

	hash, err := f.passwords.HashPassword("secret123")
	require.NoError(t, err)
	customer := &models.Customer{ID: primitive.NewObjectID(), Name: "Asha", Email: "asha@example.com", Password: hash}
	seller := &models.Seller{ID: primitive.NewObjectID(), BusinessName: "Spice Route", Username: "spiceroute", Password: hash}

	f.customers.On("FindCustomerByEmail", mock.Anything, "asha@example.com").Return(customer, nil)
	f.customers.On("FindCustomerByEmail", mock.Anything, "nobody@example.com").Return(nil, store.ErrNotFound)
	f.sellers.On("FindSellerByUsername", mock.Anything, "spiceroute").Return(seller, nil)

	res, err := f.svc.LoginCustomer(ctx, CustomerLogin{Email: "ASHA@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Nil(t, res.Seller)

	_, err = f.svc.LoginCustomer(ctx, CustomerLogin{Email: "asha@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = f.svc.LoginCustomer(ctx, CustomerLogin{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrUnauthenticated)

	res, err = f.svc.LoginSeller(ctx, SellerLogin{Username: "spiceroute", Password: "secret123"})
	require.NoError(t, err)
	p, err := f.tokens.ValidateToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, models.Principal{ID: seller.ID.Hex(), Type: models.PrincipalSeller, Name: "Spice Route"}, p)
}

func TestIdentityService_UpdateSellerLogo(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := newIdentityFixture(t)
		updated := &models.Seller{Username: "spiceroute", LogoURL: "http://localhost:8080/uploads/x.jpg"}
		f.images.On("Save", mock.Anything, "logo.png").Return(updated.LogoURL, nil).Once()
		f.sellers.On("UpdateSellerLogo", mock.Anything, "s1", updated.LogoURL).Return(updated, nil).Once()

		seller, err := f.svc.UpdateSellerLogo(ctx, sellerSpice, &Upload{File: strings.NewReader("img"), Filename: "logo.png"})
		require.NoError(t, err)
		assert.Equal(t, updated.LogoURL, seller.LogoURL)
	})

	t.Run("unsupported_image", func(t *testing.T) {
		f := newIdentityFixture(t)
		f.images.On("Save", mock.Anything, "logo.gif").Return("", helper.ErrUnsupportedImage).Once()

		_, err := f.svc.UpdateSellerLogo(ctx, sellerSpice, &Upload{File: strings.NewReader("gif"), Filename: "logo.gif"})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("failed_update_removes_upload", func(t *testing.T) {
		f := newIdentityFixture(t)
		url := "http://localhost:8080/uploads/y.jpg"
		f.images.On("Save", mock.Anything, "logo.png").Return(url, nil).Once()
		f.sellers.On("UpdateSellerLogo", mock.Anything, "s1", url).Return(nil, store.ErrNotFound).Once()
		f.images.On("Remove", url).Return(nil).Once()

		_, err := f.svc.UpdateSellerLogo(ctx, sellerSpice, &Upload{File: strings.NewReader("img"), Filename: "logo.png"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing_file", func(t *testing.T) {
		f := newIdentityFixture(t)
		_, err := f.svc.UpdateSellerLogo(ctx, sellerSpice, nil)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("customer_forbidden", func(t *testing.T) {
		f := newIdentityFixture(t)
		_, err := f.svc.UpdateSellerLogo(ctx, customerAsha, &Upload{File: strings.NewReader("img"), Filename: "logo.png"})
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestIdentityService_Profile(t *testing.T) {
	ctx := context.Background()
	f := newIdentityFixture(t)

	f.customers.On("FindCustomerByID", mock.Anything, "c1").Return(&models.Customer{Name: "Asha"}, nil).Once()
	f.sellers.On("FindSellerByID", mock.Anything, "s1").Return(nil, store.ErrNotFound).Once()

	profile, err := f.svc.Profile(ctx, customerAsha)
	require.NoError(t, err)
	assert.Equal(t, models.PrincipalCustomer, profile.Type)
	assert.Equal(t, "Asha", profile.Customer.Name)

	_, err = f.svc.Profile(ctx, sellerSpice)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.svc.Profile(ctx, models.Principal{})
	assert.True(t, errors.Is(err, ErrForbidden))
}
