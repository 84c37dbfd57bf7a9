package profileService

import (
	"ProjectRoameo/internal/api/profile"
	profileRepository "ProjectRoameo/internal/api/profile/repository"
	"ProjectRoameo/pkg/bcrypt"
	"ProjectRoameo/pkg/s3"
	"ProjectRoameo/pkg/smtp"
	"ProjectRoameo/pkg/utils"
	"context"
	"github.com/sirupsen/logrus"
)

type ProfileService interface {
	Profile() ProfileDomain
	Password() PasswordDomain
	Avatar() AvatarDomain
}

type ProfileDomain interface {
	GetProfile(c context.Context, userID string) (profile.ProfileResponse, error)
	UpdateProfile(c context.Context, userID string, req profile.UpdateProfileRequest) (profile.ProfileResponse, error)
}

type PasswordDomain interface {
	ChangePassword(c context.Context, userID string, req profile.ChangePasswordRequest) error
}

type AvatarDomain interface {
	UpdateAvatar(c context.Context, userID string, req profile.UpdateAvatarRequest) (profile.AvatarResponse, error)
}

type profileService struct {
	log               *logrus.Logger
	profileRepository profileRepository.Repository

	profileDomain  ProfileDomain
	passwordDomain PasswordDomain
	avatarDomain   AvatarDomain
}

func (p *profileService) Profile() ProfileDomain {
	return p.profileDomain
}

func (p *profileService) Password() PasswordDomain {
	return p.passwordDomain
}

func (p *profileService) Avatar() AvatarDomain {
	return p.avatarDomain
}

type profileDomainImpl struct {
	log  *logrus.Logger
	repo profileRepository.Repository
}

type passwordDomainImpl struct {
	log         *logrus.Logger
	repo        profileRepository.Repository
	bcryptUtils bcrypt.IBcrypt
	smtpMailer  smtp.ItfSmtp
}

type avatarDomainImpl struct {
	log      *logrus.Logger
	repo     profileRepository.Repository
	s3Client s3.ItfS3
	utils    utils.IUtils
}

func New(log *logrus.Logger,
	profileRepo profileRepository.Repository,
	bcryptUtils bcrypt.IBcrypt,
	smtpMailer smtp.ItfSmtp,
	s3Client s3.ItfS3,
	utils utils.IUtils,
) ProfileService {
	return &profileService{
		log:               log,
		profileRepository: profileRepo,

		profileDomain:  &profileDomainImpl{log: log, repo: profileRepo},
		passwordDomain: &passwordDomainImpl{log: log, repo: profileRepo, bcryptUtils: bcryptUtils, smtpMailer: smtpMailer},
		avatarDomain:   &avatarDomainImpl{log: log, repo: profileRepo, s3Client: s3Client, utils: utils},
	}
}
