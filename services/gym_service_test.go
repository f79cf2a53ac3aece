package services

import (
	"context"
	"testing"

	"ringside/models"
	"ringside/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testTokens = TokenConfig{
	Secret:               "test-secret",
	AccessExpiryMinutes:  15,
	RefreshExpiryMinutes: 60,
}

func newTestGymService() (*GymService, *memGymStore) {
	store := newMemGymStore()
	return NewGymService(store, testTokens), store
}

func registerGym(t *testing.T, svc *GymService) *models.Gym {
	t.Helper()
	gym, err := svc.Create(context.Background(), CreateGymInput{
		Name:     "Golden Gloves",
		Place:    "Barcelona",
		Price:    45,
		Email:    "gloves@example.com",
		Phone:    "600123123",
		Password: "s3cret-pw",
	})
	require.NoError(t, err)
	return gym
}

func TestCreateGymHashesPassword(t *testing.T) {
	svc, store := newTestGymService()
	gym := registerGym(t, svc)

	stored := store.gyms[gym.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cret-pw", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret-pw")))
}

func TestCreateGymDuplicateEmail(t *testing.T) {
	svc, _ := newTestGymService()
	registerGym(t, svc)

	_, err := svc.Create(context.Background(), CreateGymInput{
		Name:     "Other",
		Email:    "gloves@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLoginIssuesTokenPair(t *testing.T) {
	svc, _ := newTestGymService()
	gym := registerGym(t, svc)

	loggedIn, tokens, err := svc.Login(context.Background(), "gloves@example.com", "s3cret-pw")
	require.NoError(t, err)
	assert.Equal(t, gym.ID, loggedIn.ID)

	subject, tokenType, err := utils.ParseToken(tokens.AccessToken, testTokens.Secret)
	require.NoError(t, err)
	assert.Equal(t, gym.ID.Hex(), subject)
	assert.Equal(t, utils.TokenTypeAccess, tokenType)

	_, tokenType, err = utils.ParseToken(tokens.RefreshToken, testTokens.Secret)
	require.NoError(t, err)
	assert.Equal(t, utils.TokenTypeRefresh, tokenType)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, _ := newTestGymService()
	registerGym(t, svc)

	_, _, err := svc.Login(context.Background(), "gloves@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "nobody@example.com", "s3cret-pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshRotatesAccessToken(t *testing.T) {
	svc, _ := newTestGymService()
	gym := registerGym(t, svc)

	_, tokens, err := svc.Login(context.Background(), "gloves@example.com", "s3cret-pw")
	require.NoError(t, err)

	rotated, err := svc.Refresh(context.Background(), tokens.RefreshToken)
	require.NoError(t, err)

	subject, tokenType, err := utils.ParseToken(rotated.AccessToken, testTokens.Secret)
	require.NoError(t, err)
	assert.Equal(t, gym.ID.Hex(), subject)
	assert.Equal(t, utils.TokenTypeAccess, tokenType)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _ := newTestGymService()
	registerGym(t, svc)

	_, tokens, err := svc.Login(context.Background(), "gloves@example.com", "s3cret-pw")
	require.NoError(t, err)

	// An access token is not usable as a refresh token
	_, err = svc.Refresh(context.Background(), tokens.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGymListExcludesHidden(t *testing.T) {
	svc, _ := newTestGymService()
	gym := registerGym(t, svc)

	_, err := svc.Hide(context.Background(), gym.ID.Hex(), true)
	require.NoError(t, err)

	page, err := svc.List(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Gyms)
	assert.Equal(t, int64(0), page.TotalGyms)
}

func TestGymUpdateAndDeleteMissing(t *testing.T) {
	svc, _ := newTestGymService()

	name := "Renamed"
	_, err := svc.Update(context.Background(), "000000000000000000000000", UpdateGymInput{Name: &name})
	assert.ErrorIs(t, err, ErrGymNotFound)

	_, err = svc.Delete(context.Background(), "000000000000000000000000")
	assert.ErrorIs(t, err, ErrGymNotFound)
}
