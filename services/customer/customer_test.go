package customer

import (
	"context"
	"testing"

	"kino/database/repository/memory"
	"kino/models"
	"kino/services"
	"kino/utils"

	"github.com/stretchr/testify/require"
)

const goodPassword = "Popcorn#2024"

func newService() (*DefaultCustomerService, *memory.Store) {
	store := memory.NewStore()
	return &DefaultCustomerService{Repo: store.Customers(), Tokens: store.TokenStore()}, store
}

func TestRegister(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	c, err := svc.Register(ctx, models.RegistrationRequest{Username: " ann ", Password: goodPassword, Password2: goodPassword})
	require.NoError(t, err)
	require.Equal(t, "ann", c.Username)
	require.False(t, c.IsAdmin)
	require.NotEqual(t, goodPassword, c.PasswordHash)

	_, err = svc.Register(ctx, models.RegistrationRequest{Username: "ann", Password: goodPassword, Password2: goodPassword})
	require.ErrorIs(t, err, services.ErrConflict)

	_, err = svc.Register(ctx, models.RegistrationRequest{Username: "bob", Password: goodPassword, Password2: "other"})
	require.ErrorIs(t, err, services.ErrInvalidInput)

	_, err = svc.Register(ctx, models.RegistrationRequest{Username: "bob", Password: "short", Password2: "short"})
	require.ErrorIs(t, err, services.ErrInvalidInput)
}

func TestVerifyPasswordComplexity(t *testing.T) {
	for _, pw := range []string{"Ab1!", "abcdefg1!", "ABCDEFG1!", "Abcdefgh!", "Abcdefgh1"} {
		require.ErrorIs(t, VerifyPasswordComplexity(pw), services.ErrInvalidInput, pw)
	}
	require.NoError(t, VerifyPasswordComplexity(goodPassword))
}

func TestAuthenticateAndLogout(t *testing.T) {
	svc, store := newService()
	ctx := context.Background()

	c, err := svc.Register(ctx, models.RegistrationRequest{Username: "ann", Password: goodPassword, Password2: goodPassword})
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, models.LoginRequest{Username: "ann", Password: "wrong"})
	require.ErrorIs(t, err, services.ErrUnauthorized)
	_, err = svc.Authenticate(ctx, models.LoginRequest{Username: "nobody", Password: goodPassword})
	require.ErrorIs(t, err, services.ErrUnauthorized)

	resp, err := svc.Authenticate(ctx, models.LoginRequest{Username: "ann", Password: goodPassword})
	require.NoError(t, err)
	require.Equal(t, c.ID, resp.UserID)
	require.Equal(t, 600, resp.TimeToLiveSeconds)

	claims, err := utils.ParseClaims(resp.Token)
	require.NoError(t, err)
	require.Equal(t, c.ID, claims.Subject)
	require.Equal(t, utils.RoleCustomer, claims.Role)

	live, err := store.TokenStore().Exists(ctx, c.ID, utils.HashToken(resp.Token))
	require.NoError(t, err)
	require.True(t, live)

	require.NoError(t, svc.Logout(ctx, c.ID, resp.Token))
	live, err = store.TokenStore().Exists(ctx, c.ID, utils.HashToken(resp.Token))
	require.NoError(t, err)
	require.False(t, live)
}

func TestEnsureAdmin(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdmin(ctx, "root", goodPassword))
	require.NoError(t, svc.EnsureAdmin(ctx, "root", goodPassword))

	all, err := svc.GetAllCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.True(t, all[0].IsAdmin)
	require.Empty(t, all[0].PasswordHash)

	resp, err := svc.Authenticate(ctx, models.LoginRequest{Username: "root", Password: goodPassword})
	require.NoError(t, err)
	claims, err := utils.ParseClaims(resp.Token)
	require.NoError(t, err)
	require.Equal(t, utils.RoleAdmin, claims.Role)
}
