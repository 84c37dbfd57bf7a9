package profileService

import (
	"context"
	"sync"
	"testing"
	"time"

	"ProjectRoameo/internal/api/profile"
	profileRepository "ProjectRoameo/internal/api/profile/repository"
	"ProjectRoameo/internal/entity"
	"ProjectRoameo/pkg/bcrypt"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]entity.User
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return entity.User{}, profile.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return entity.User{}, profile.ErrUserNotFound
}

func (f *fakeUserStore) UpdateProfile(_ context.Context, user entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.users[user.ID]
	if !ok {
		return profile.ErrUserNotFound
	}
	stored.Name = user.Name
	stored.Email = user.Email
	stored.PhoneNumber = user.PhoneNumber
	stored.Address = user.Address
	stored.Bio = user.Bio
	stored.UpdatedAt = time.Now()
	f.users[user.ID] = stored
	return nil
}

func (f *fakeUserStore) UpdatePassword(_ context.Context, id string, password string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return profile.ErrUserNotFound
	}
	u.Password = password
	f.users[id] = u
	return nil
}

func (f *fakeUserStore) UpdateAvatar(_ context.Context, id string, avatarURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return profile.ErrUserNotFound
	}
	u.AvatarURL = avatarURL
	f.users[id] = u
	return nil
}

type fakeRepository struct {
	store *fakeUserStore
}

func (f *fakeRepository) NewClient(_ bool) (profileRepository.Client, error) {
	return profileRepository.Client{
		Users:    f.store,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []string
}

func (f *fakeMailer) SendSecurityNotice(userEmail, subject, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, userEmail+":"+subject)
	return nil
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func newPasswordFixture(t *testing.T, currentPassword string) (PasswordDomain, *fakeUserStore, *fakeMailer) {
	t.Helper()
	b := bcrypt.NewWithCost(4)
	hashed, err := b.HashPassword(currentPassword)
	require.NoError(t, err)

	store := &fakeUserStore{users: map[string]entity.User{
		"u-1": {ID: "u-1", Email: "traveler@example.com", Name: "Traveler", Password: hashed},
	}}
	mailer := &fakeMailer{}
	domain := &passwordDomainImpl{
		log:         testLogger(),
		repo:        &fakeRepository{store: store},
		bcryptUtils: b,
		smtpMailer:  mailer,
	}
	return domain, store, mailer
}

func TestChangePasswordRejectsWrongOldPassword(t *testing.T) {
	domain, store, _ := newPasswordFixture(t, "old-secret-123")

	err := domain.ChangePassword(context.Background(), "u-1", profile.ChangePasswordRequest{
		OldPassword: "not-the-password",
		NewPassword: "new-secret-456",
	})

	assert.ErrorIs(t, err, profile.ErrWrongOldPassword)

	user, _ := store.GetByID(context.Background(), "u-1")
	b := bcrypt.NewWithCost(4)
	assert.NoError(t, b.ComparePassword(user.Password, "old-secret-123"), "stored password untouched")
}

func TestChangePasswordRejectsUnchangedPassword(t *testing.T) {
	domain, _, _ := newPasswordFixture(t, "old-secret-123")

	err := domain.ChangePassword(context.Background(), "u-1", profile.ChangePasswordRequest{
		OldPassword: "old-secret-123",
		NewPassword: "old-secret-123",
	})

	assert.ErrorIs(t, err, profile.ErrPasswordUnchanged)
}

func TestChangePasswordHashesAndStores(t *testing.T) {
	domain, store, _ := newPasswordFixture(t, "old-secret-123")

	err := domain.ChangePassword(context.Background(), "u-1", profile.ChangePasswordRequest{
		OldPassword: "old-secret-123",
		NewPassword: "new-secret-456",
	})
	require.NoError(t, err)

	user, _ := store.GetByID(context.Background(), "u-1")
	assert.NotEqual(t, "new-secret-456", user.Password, "password is stored hashed")

	b := bcrypt.NewWithCost(4)
	assert.NoError(t, b.ComparePassword(user.Password, "new-secret-456"))
}

func TestChangePasswordUnknownUser(t *testing.T) {
	domain, _, _ := newPasswordFixture(t, "old-secret-123")

	err := domain.ChangePassword(context.Background(), "missing", profile.ChangePasswordRequest{
		OldPassword: "old-secret-123",
		NewPassword: "new-secret-456",
	})

	assert.ErrorIs(t, err, profile.ErrUserNotFound)
}
