package paymentService

import (
	"ProjectRoameo/internal/api/payment"
	paymentRepository "ProjectRoameo/internal/api/payment/repository"
	profileRepository "ProjectRoameo/internal/api/profile/repository"
	"ProjectRoameo/internal/entity"
	"ProjectRoameo/pkg/doku"
	"ProjectRoameo/pkg/utils"
	"context"
	"github.com/sirupsen/logrus"
)

type PaymentService interface {
	Methods() MethodDomain
	TopUp() TopUpDomain
}

type MethodDomain interface {
	List(c context.Context, userID string) ([]entity.PaymentMethod, error)
	Add(c context.Context, userID string, req payment.PaymentMethodRequest) (entity.PaymentMethod, error)
	SetDefault(c context.Context, userID string, methodID string) error
	Delete(c context.Context, userID string, methodID string) error
}

type TopUpDomain interface {
	CreateTopUp(c context.Context, userID string, req payment.TopUpRequest) (payment.TopUpResponse, error)
	List(c context.Context, userID string) ([]entity.TopUpTransaction, error)
	ProcessCallback(c context.Context, req payment.PaymentCallbackRequest) error
}

type paymentService struct {
	log               *logrus.Logger
	paymentRepository paymentRepository.Repository

	methodDomain MethodDomain
	topUpDomain  TopUpDomain
}

func (p *paymentService) Methods() MethodDomain {
	return p.methodDomain
}

func (p *paymentService) TopUp() TopUpDomain {
	return p.topUpDomain
}

type methodDomainImpl struct {
	log   *logrus.Logger
	repo  paymentRepository.Repository
	utils utils.IUtils
}

type topUpDomainImpl struct {
	log         *logrus.Logger
	repo        paymentRepository.Repository
	profileRepo profileRepository.Repository
	dokuService doku.IDokuService
	utils       utils.IUtils
}

func New(log *logrus.Logger,
	paymentRepo paymentRepository.Repository,
	profileRepo profileRepository.Repository,
	dokuService doku.IDokuService,
	utils utils.IUtils,
) PaymentService {
	return &paymentService{
		log:               log,
		paymentRepository: paymentRepo,

		methodDomain: &methodDomainImpl{log: log, repo: paymentRepo, utils: utils},
		topUpDomain:  &topUpDomainImpl{log: log, repo: paymentRepo, profileRepo: profileRepo, dokuService: dokuService, utils: utils},
	}
}
