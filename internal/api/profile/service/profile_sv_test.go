package profileService

import (
	"context"
	"testing"

	"ProjectRoameo/internal/api/profile"
	"ProjectRoameo/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileFixture(users ...entity.User) (ProfileDomain, *fakeUserStore) {
	store := &fakeUserStore{users: map[string]entity.User{}}
	for _, u := range users {
		store.users[u.ID] = u
	}
	domain := &profileDomainImpl{
		log:  testLogger(),
		repo: &fakeRepository{store: store},
	}
	return domain, store
}

func TestGetProfileOmitsPassword(t *testing.T) {
	domain, _ := newProfileFixture(entity.User{
		ID: "u-1", Email: "traveler@example.com", Name: "Traveler", Password: "hash",
	})

	resp, err := domain.GetProfile(context.Background(), "u-1")
	require.NoError(t, err)

	assert.Equal(t, "u-1", resp.ID)
	assert.Equal(t, "traveler@example.com", resp.Email)
}

func TestGetProfileUnknownUser(t *testing.T) {
	domain, _ := newProfileFixture()

	_, err := domain.GetProfile(context.Background(), "missing")
	assert.ErrorIs(t, err, profile.ErrUserNotFound)
}

func TestUpdateProfilePersistsFields(t *testing.T) {
	domain, store := newProfileFixture(entity.User{
		ID: "u-1", Email: "traveler@example.com", Name: "Traveler",
	})

	resp, err := domain.UpdateProfile(context.Background(), "u-1", profile.UpdateProfileRequest{
		Name:        "New Name",
		Email:       "traveler@example.com",
		PhoneNumber: "081234567890",
		Address:     "Jl. Merdeka 1",
		Bio:         "Always packing",
	})
	require.NoError(t, err)

	assert.Equal(t, "New Name", resp.Name)
	assert.Equal(t, "Jl. Merdeka 1", resp.Address)

	stored, _ := store.GetByID(context.Background(), "u-1")
	assert.Equal(t, "New Name", stored.Name)
	assert.Equal(t, "Always packing", stored.Bio)
}

func TestUpdateProfileRejectsTakenEmail(t *testing.T) {
	domain, _ := newProfileFixture(
		entity.User{ID: "u-1", Email: "traveler@example.com", Name: "Traveler"},
		entity.User{ID: "u-2", Email: "other@example.com", Name: "Other"},
	)

	_, err := domain.UpdateProfile(context.Background(), "u-1", profile.UpdateProfileRequest{
		Name:  "Traveler",
		Email: "other@example.com",
	})

	assert.ErrorIs(t, err, profile.ErrEmailAlreadyInUse)
}
