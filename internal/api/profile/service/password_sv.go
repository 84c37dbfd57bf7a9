package profileService

import (
	"ProjectRoameo/internal/api/profile"
	contextPkg "ProjectRoameo/pkg/context"
	"context"
	"github.com/sirupsen/logrus"
)

func (p *passwordDomainImpl) ChangePassword(c context.Context, userID string, req profile.ChangePasswordRequest) error {
	requestID := contextPkg.GetRequestID(c)

	repo, err := p.repo.NewClient(false)
	if err != nil {
		p.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	user, err := repo.Users.GetByID(c, userID)
	if err != nil {
		return err
	}

	if err := p.bcryptUtils.ComparePassword(user.Password, req.OldPassword); err != nil {
		p.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
		}).Warn("Password change rejected, old password mismatch")
		return profile.ErrWrongOldPassword
	}

	if req.OldPassword == req.NewPassword {
		return profile.ErrPasswordUnchanged
	}

	hashed, err := p.bcryptUtils.HashPassword(req.NewPassword)
	if err != nil {
		p.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash new password")
		return err
	}

	if err := repo.Users.UpdatePassword(c, userID, hashed); err != nil {
		return err
	}

	p.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    userID,
	}).Info("Password changed")

	// Best effort: the change already succeeded, a failed mail only gets a log.
	go func(email string) {
		if err := p.smtpMailer.SendSecurityNotice(email,
			"Your Roameo password was changed",
			"Your account password was just changed. If this wasn't you, reset your password immediately.",
		); err != nil {
			p.log.WithFields(logrus.Fields{
				"error": err.Error(),
			}).Warn("Failed to send password change notice")
		}
	}(user.Email)

	return nil
}
