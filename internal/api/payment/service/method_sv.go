package paymentService

import (
	"ProjectRoameo/internal/api/payment"
	"ProjectRoameo/internal/entity"
	contextPkg "ProjectRoameo/pkg/context"
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

func (m *methodDomainImpl) List(c context.Context, userID string) ([]entity.PaymentMethod, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := m.repo.NewClient(false)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	return repo.Methods.ListByUser(c, userID)
}

func (m *methodDomainImpl) Add(c context.Context, userID string, req payment.PaymentMethodRequest) (entity.PaymentMethod, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := m.repo.NewClient(true)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.PaymentMethod{}, err
	}
	defer repo.Rollback()

	methodID, err := m.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.PaymentMethod{}, err
	}

	method := entity.PaymentMethod{
		ID:            methodID,
		UserID:        userID,
		Type:          req.Type,
		Label:         req.Label,
		Bank:          req.Bank,
		AccountNumber: maskAccountNumber(req.AccountNumber),
		IsDefault:     req.IsDefault,
	}

	if req.IsDefault {
		if err := repo.Methods.ClearDefault(c, userID); err != nil {
			return entity.PaymentMethod{}, err
		}
	}

	if err := repo.Methods.Create(c, method); err != nil {
		return entity.PaymentMethod{}, err
	}

	if err := repo.Commit(); err != nil {
		return entity.PaymentMethod{}, err
	}

	m.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    userID,
		"method_id":  methodID,
	}).Info("Payment method added")

	return method, nil
}

func (m *methodDomainImpl) SetDefault(c context.Context, userID string, methodID string) error {
	requestID := contextPkg.GetRequestID(c)

	repo, err := m.repo.NewClient(true)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	if err := repo.Methods.ClearDefault(c, userID); err != nil {
		return err
	}

	if err := repo.Methods.SetDefault(c, userID, methodID); err != nil {
		return err
	}

	return repo.Commit()
}

func (m *methodDomainImpl) Delete(c context.Context, userID string, methodID string) error {
	requestID := contextPkg.GetRequestID(c)

	repo, err := m.repo.NewClient(false)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	return repo.Methods.Delete(c, userID, methodID)
}

// maskAccountNumber keeps only the last four digits; the full number is never
// stored.
func maskAccountNumber(number string) string {
	trimmed := strings.TrimSpace(number)
	if len(trimmed) <= 4 {
		return trimmed
	}
	return strings.Repeat("*", len(trimmed)-4) + trimmed[len(trimmed)-4:]
}
