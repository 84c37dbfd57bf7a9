package paymentRepository

import (
	"ProjectRoameo/internal/api/payment"
	"ProjectRoameo/internal/entity"
	contextPkg "ProjectRoameo/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type PaymentMethodDB struct {
	ID            sql.NullString `db:"id"`
	UserID        sql.NullString `db:"user_id"`
	Type          sql.NullString `db:"type"`
	Label         sql.NullString `db:"label"`
	Bank          sql.NullString `db:"bank"`
	AccountNumber sql.NullString `db:"account_number"`
	IsDefault     bool           `db:"is_default"`
	CreatedAt     sql.NullTime   `db:"created_at"`
	UpdatedAt     sql.NullTime   `db:"updated_at"`
}

type TopUpDB struct {
	ID        sql.NullString  `db:"id"`
	UserID    sql.NullString  `db:"user_id"`
	Amount    sql.NullFloat64 `db:"amount"`
	VANumber  sql.NullString  `db:"va_number"`
	Bank      sql.NullString  `db:"bank"`
	Status    sql.NullString  `db:"status"`
	VAURL     sql.NullString  `db:"va_url"`
	ExpiredAt sql.NullString  `db:"expired_at"`
	PaidAt    sql.NullTime    `db:"paid_at"`
	CreatedAt sql.NullTime    `db:"created_at"`
	UpdatedAt sql.NullTime    `db:"updated_at"`
}

func (r *methodRepository) ListByUser(c context.Context, userID string) ([]entity.PaymentMethod, error) {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryListMethodsByUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListByUser named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	rows, err := r.q.QueryxContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListByUser execution err")
		return nil, err
	}
	defer rows.Close()

	var methods []entity.PaymentMethod
	for rows.Next() {
		var row PaymentMethodDB
		if err := rows.StructScan(&row); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("ListByUser scan err")
			return nil, err
		}
		methods = append(methods, makeMethod(row))
	}

	return methods, rows.Err()
}

func (r *methodRepository) Create(c context.Context, method entity.PaymentMethod) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":             method.ID,
		"user_id":        method.UserID,
		"type":           method.Type,
		"label":          method.Label,
		"bank":           method.Bank,
		"account_number": method.AccountNumber,
		"is_default":     method.IsDefault,
		"created_at":     time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateMethod, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Create method named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Create method execution err")
		return err
	}

	return nil
}

func (r *methodRepository) ClearDefault(c context.Context, userID string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"user_id":    userID,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryClearDefaultMethod, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ClearDefault named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ClearDefault execution err")
		return err
	}

	return nil
}

func (r *methodRepository) SetDefault(c context.Context, userID string, methodID string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"user_id":    userID,
		"id":         methodID,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(querySetDefaultMethod, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SetDefault named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SetDefault execution err")
		return err
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"method_id":  methodID,
		}).Warn("SetDefault no rows affected")
		return payment.ErrMethodNotFound
	}

	return nil
}

func (r *methodRepository) Delete(c context.Context, userID string, methodID string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"user_id": userID,
		"id":      methodID,
	}

	query, args, err := sqlx.Named(queryDeleteMethod, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Delete method named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Delete method execution err")
		return err
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return payment.ErrMethodNotFound
	}

	return nil
}

func (r *topUpRepository) Create(c context.Context, trx entity.TopUpTransaction) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         trx.ID,
		"user_id":    trx.UserID,
		"amount":     trx.Amount,
		"va_number":  trx.VANumber,
		"bank":       trx.Bank,
		"status":     trx.Status,
		"va_url":     trx.VAURL,
		"expired_at": trx.ExpiredAt,
		"created_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateTopUp, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Create top-up named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Create top-up execution err")
		return err
	}

	return nil
}

func (r *topUpRepository) GetByID(c context.Context, id string) (entity.TopUpTransaction, error) {
	requestID := contextPkg.GetRequestID(c)
	var row TopUpDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetTopUpByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID top-up named query preparation err")
		return entity.TopUpTransaction{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetByID top-up no rows found")
			return entity.TopUpTransaction{}, payment.ErrTransactionNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID top-up execution err")
		return entity.TopUpTransaction{}, err
	}

	return makeTopUp(row), nil
}

func (r *topUpRepository) ListByUser(c context.Context, userID string) ([]entity.TopUpTransaction, error) {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryListTopUpsByUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListByUser top-up named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	rows, err := r.q.QueryxContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListByUser top-up execution err")
		return nil, err
	}
	defer rows.Close()

	var transactions []entity.TopUpTransaction
	for rows.Next() {
		var row TopUpDB
		if err := rows.StructScan(&row); err != nil {
			return nil, err
		}
		transactions = append(transactions, makeTopUp(row))
	}

	return transactions, rows.Err()
}

func (r *topUpRepository) MarkPaid(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	now := time.Now()
	argsKV := map[string]interface{}{
		"id":         id,
		"status":     entity.TopUpStatusPaid,
		"paid_at":    now,
		"updated_at": now,
	}

	query, args, err := sqlx.Named(queryMarkTopUpPaid, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("MarkPaid named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("MarkPaid execution err")
		return err
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return payment.ErrTransactionNotFound
	}

	return nil
}

func makeMethod(row PaymentMethodDB) entity.PaymentMethod {
	var createdAt, updatedAt time.Time
	if row.CreatedAt.Valid {
		createdAt = row.CreatedAt.Time
	}
	if row.UpdatedAt.Valid {
		updatedAt = row.UpdatedAt.Time
	}

	return entity.PaymentMethod{
		ID:            row.ID.String,
		UserID:        row.UserID.String,
		Type:          row.Type.String,
		Label:         row.Label.String,
		Bank:          row.Bank.String,
		AccountNumber: row.AccountNumber.String,
		IsDefault:     row.IsDefault,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}

func makeTopUp(row TopUpDB) entity.TopUpTransaction {
	var createdAt, updatedAt time.Time
	if row.CreatedAt.Valid {
		createdAt = row.CreatedAt.Time
	}
	if row.UpdatedAt.Valid {
		updatedAt = row.UpdatedAt.Time
	}

	var paidAt *time.Time
	if row.PaidAt.Valid {
		t := row.PaidAt.Time
		paidAt = &t
	}

	return entity.TopUpTransaction{
		ID:        row.ID.String,
		UserID:    row.UserID.String,
		Amount:    row.Amount.Float64,
		VANumber:  row.VANumber.String,
		Bank:      row.Bank.String,
		Status:    row.Status.String,
		VAURL:     row.VAURL.String,
		ExpiredAt: row.ExpiredAt.String,
		PaidAt:    paidAt,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
