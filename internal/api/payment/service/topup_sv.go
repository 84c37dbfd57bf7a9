package paymentService

import (
	"ProjectRoameo/internal/api/payment"
	"ProjectRoameo/internal/entity"
	contextPkg "ProjectRoameo/pkg/context"
	"ProjectRoameo/pkg/doku"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

var supportedBanks = map[string]struct{}{
	doku.BankBCA:     {},
	doku.BankMANDIRI: {},
	doku.BankBRI:     {},
	doku.BankBNI:     {},
	doku.BankPERMATA: {},
	doku.BankCIMB:    {},
	doku.BankBSI:     {},
	doku.BankDOKU:    {},
}

func (t *topUpDomainImpl) CreateTopUp(c context.Context, userID string, req payment.TopUpRequest) (payment.TopUpResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	if _, ok := supportedBanks[req.Bank]; !ok {
		t.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"bank":       req.Bank,
		}).Warn("Unsupported bank selection")
		return payment.TopUpResponse{}, payment.ErrInvalidBank
	}

	if req.Amount <= 0 {
		return payment.TopUpResponse{}, payment.ErrInvalidAmount
	}

	userRepo, err := t.profileRepo.NewClient(false)
	if err != nil {
		t.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create profile repository client")
		return payment.TopUpResponse{}, err
	}

	user, err := userRepo.Users.GetByID(c, userID)
	if err != nil {
		return payment.TopUpResponse{}, err
	}

	transactionID, err := t.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		t.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return payment.TopUpResponse{}, err
	}

	dokuRes, err := t.dokuService.CreateVirtualAccount(doku.CreateVaRequest{
		UserID:          userID,
		Name:            user.Name,
		Email:           user.Email,
		Phone:           user.PhoneNumber,
		Amount:          req.Amount,
		TrxId:           transactionID,
		Bank:            req.Bank,
		ExpiredDuration: 24 * time.Hour,
		ReusableStatus:  false,
	})
	if err != nil {
		t.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create virtual account")
		return payment.TopUpResponse{}, payment.ErrCreateVirtualAccount
	}

	repo, err := t.repo.NewClient(false)
	if err != nil {
		t.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return payment.TopUpResponse{}, err
	}

	trx := entity.TopUpTransaction{
		ID:        transactionID,
		UserID:    userID,
		Amount:    req.Amount,
		VANumber:  dokuRes.VirtualAccountNo,
		Bank:      req.Bank,
		Status:    entity.TopUpStatusPending,
		VAURL:     dokuRes.VirtualAccountURL,
		ExpiredAt: dokuRes.ExpiryDate,
	}

	if err := repo.TopUps.Create(c, trx); err != nil {
		return payment.TopUpResponse{}, err
	}

	t.log.WithFields(logrus.Fields{
		"request_id":     requestID,
		"user_id":        userID,
		"transaction_id": transactionID,
		"bank":           req.Bank,
	}).Info("Top-up transaction created")

	return payment.TopUpResponse{
		TransactionID: transactionID,
		VANumber:      dokuRes.VirtualAccountNo,
		Bank:          req.Bank,
		Amount:        req.Amount,
		ExpiredAt:     dokuRes.ExpiryDate,
		VAURL:         dokuRes.VirtualAccountURL,
		Status:        entity.TopUpStatusPending,
	}, nil
}

func (t *topUpDomainImpl) List(c context.Context, userID string) ([]entity.TopUpTransaction, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := t.repo.NewClient(false)
	if err != nil {
		t.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	return repo.TopUps.ListByUser(c, userID)
}

func (t *topUpDomainImpl) ProcessCallback(c context.Context, req payment.PaymentCallbackRequest) error {
	requestID := contextPkg.GetRequestID(c)

	repo, err := t.repo.NewClient(false)
	if err != nil {
		t.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	trx, err := repo.TopUps.GetByID(c, req.TrxId)
	if err != nil {
		return err
	}

	if trx.Status == entity.TopUpStatusPaid {
		t.log.WithFields(logrus.Fields{
			"request_id":     requestID,
			"transaction_id": trx.ID,
		}).Info("Callback for already settled transaction, ignoring")
		return nil
	}

	settled, err := t.dokuService.CheckVAStatus(req.VirtualAccountNo, req.CustomerNo, req.PartnerServiceId, req.TrxId)
	if err != nil {
		t.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to check virtual account status")
		return err
	}
	if !settled {
		return payment.ErrPaymentNotSettled
	}

	if err := repo.TopUps.MarkPaid(c, trx.ID); err != nil {
		return err
	}

	t.log.WithFields(logrus.Fields{
		"request_id":     requestID,
		"transaction_id": trx.ID,
	}).Info("Top-up marked paid")

	return nil
}
