package profileService

import (
	"ProjectRoameo/internal/api/profile"
	contextPkg "ProjectRoameo/pkg/context"
	"ProjectRoameo/pkg/utils"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

func (a *avatarDomainImpl) UpdateAvatar(c context.Context, userID string, req profile.UpdateAvatarRequest) (profile.AvatarResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	if err := a.utils.ValidateImageFile(req.AvatarFile); err != nil {
		a.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Avatar upload rejected")
		return profile.AvatarResponse{}, profile.ErrInvalidAvatarFile
	}

	file, err := req.AvatarFile.Open()
	if err != nil {
		return profile.AvatarResponse{}, profile.ErrInvalidAvatarFile
	}
	defer file.Close()

	imageData, err := io.ReadAll(file)
	if err != nil {
		return profile.AvatarResponse{}, profile.ErrInvalidAvatarFile
	}

	transformed, err := a.utils.TransformAvatar(imageData, utils.AvatarTransform{
		X:      req.X,
		Y:      req.Y,
		Width:  req.Width,
		Height: req.Height,
		Rotate: req.Rotate,
		Zoom:   req.Zoom,
	})
	if err != nil {
		a.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Avatar transform failed")
		return profile.AvatarResponse{}, profile.ErrAvatarProcessing
	}

	contentType := req.AvatarFile.Header.Get("Content-Type")
	fileName := fmt.Sprintf("avatars/%s-%d", userID, time.Now().Unix())

	storedName, err := a.s3Client.UploadBytes(transformed, fileName, contentType)
	if err != nil {
		a.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to upload avatar")
		return profile.AvatarResponse{}, err
	}

	repo, err := a.repo.NewClient(false)
	if err != nil {
		a.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return profile.AvatarResponse{}, err
	}

	if err := repo.Users.UpdateAvatar(c, userID, storedName); err != nil {
		return profile.AvatarResponse{}, err
	}

	presigned, err := a.s3Client.PresignUrl(storedName)
	if err != nil {
		a.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to presign avatar url, returning stored name")
		presigned = storedName
	}

	a.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    userID,
	}).Info("Avatar updated")

	return profile.AvatarResponse{AvatarURL: presigned}, nil
}
