package paymentRepository

const (
	queryListMethodsByUser = `
SELECT id, user_id, type, label, bank, account_number, is_default, created_at, updated_at
FROM Payment_Methods
    WHERE user_id = :user_id
ORDER BY is_default DESC, created_at ASC`

	queryCreateMethod = `
INSERT INTO Payment_Methods (id, user_id, type, label, bank, account_number, is_default, created_at)
VALUES (:id, :user_id, :type, :label, :bank, :account_number, :is_default, :created_at)`

	queryClearDefaultMethod = `
UPDATE Payment_Methods
SET is_default = FALSE, updated_at = :updated_at
WHERE user_id = :user_id`

	querySetDefaultMethod = `
UPDATE Payment_Methods
SET is_default = TRUE, updated_at = :updated_at
WHERE user_id = :user_id AND id = :id`

	queryDeleteMethod = `
DELETE FROM Payment_Methods
WHERE user_id = :user_id AND id = :id`

	queryCreateTopUp = `
INSERT INTO TopUp_Transactions (id, user_id, amount, va_number, bank, status, va_url, expired_at, created_at)
VALUES (:id, :user_id, :amount, :va_number, :bank, :status, :va_url, :expired_at, :created_at)`

	queryGetTopUpByID = `
SELECT id, user_id, amount, va_number, bank, status, va_url, expired_at, paid_at, created_at, updated_at
FROM TopUp_Transactions
    WHERE id = :id`

	queryListTopUpsByUser = `
SELECT id, user_id, amount, va_number, bank, status, va_url, expired_at, paid_at, created_at, updated_at
FROM TopUp_Transactions
    WHERE user_id = :user_id
ORDER BY created_at DESC`

	queryMarkTopUpPaid = `
UPDATE TopUp_Transactions
SET status = :status, paid_at = :paid_at, updated_at = :updated_at
WHERE id = :id`
)
