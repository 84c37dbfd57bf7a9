package profileService

import (
	"ProjectRoameo/internal/api/profile"
	"ProjectRoameo/internal/entity"
	contextPkg "ProjectRoameo/pkg/context"
	"context"
	"errors"
	"github.com/sirupsen/logrus"
)

func (p *profileDomainImpl) GetProfile(c context.Context, userID string) (profile.ProfileResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := p.repo.NewClient(false)
	if err != nil {
		p.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return profile.ProfileResponse{}, err
	}

	user, err := repo.Users.GetByID(c, userID)
	if err != nil {
		return profile.ProfileResponse{}, err
	}

	return makeProfileResponse(user), nil
}

func (p *profileDomainImpl) UpdateProfile(c context.Context, userID string, req profile.UpdateProfileRequest) (profile.ProfileResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := p.repo.NewClient(false)
	if err != nil {
		p.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return profile.ProfileResponse{}, err
	}

	user, err := repo.Users.GetByID(c, userID)
	if err != nil {
		return profile.ProfileResponse{}, err
	}

	if req.Email != user.Email {
		existing, err := repo.Users.GetByEmail(c, req.Email)
		if err != nil && !errors.Is(err, profile.ErrUserNotFound) {
			return profile.ProfileResponse{}, err
		}
		if err == nil && existing.ID != userID {
			p.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"user_id":    userID,
			}).Warn("Profile update rejected, email already in use")
			return profile.ProfileResponse{}, profile.ErrEmailAlreadyInUse
		}
	}

	user.Name = req.Name
	user.Email = req.Email
	user.PhoneNumber = req.PhoneNumber
	user.Address = req.Address
	user.Bio = req.Bio

	if err := repo.Users.UpdateProfile(c, user); err != nil {
		return profile.ProfileResponse{}, err
	}

	p.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    userID,
	}).Info("Profile updated")

	updated, err := repo.Users.GetByID(c, userID)
	if err != nil {
		return profile.ProfileResponse{}, err
	}

	return makeProfileResponse(updated), nil
}

func makeProfileResponse(user entity.User) profile.ProfileResponse {
	return profile.ProfileResponse{
		ID:          user.ID,
		Email:       user.Email,
		Name:        user.Name,
		PhoneNumber: user.PhoneNumber,
		Address:     user.Address,
		Bio:         user.Bio,
		AvatarURL:   user.AvatarURL,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}
