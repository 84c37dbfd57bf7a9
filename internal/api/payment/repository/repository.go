package paymentRepository

import (
	"ProjectRoameo/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var db sqlx.ExtContext
	var commitFunc, rollbackFunc func() error

	db = r.DB

	if tx {
		var err error
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		db = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Methods:  &methodRepository{q: db, log: r.log},
		TopUps:   &topUpRepository{q: db, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Methods interface {
		ListByUser(ctx context.Context, userID string) ([]entity.PaymentMethod, error)
		Create(ctx context.Context, method entity.PaymentMethod) error
		ClearDefault(ctx context.Context, userID string) error
		SetDefault(ctx context.Context, userID string, methodID string) error
		Delete(ctx context.Context, userID string, methodID string) error
	}

	TopUps interface {
		Create(ctx context.Context, trx entity.TopUpTransaction) error
		GetByID(ctx context.Context, id string) (entity.TopUpTransaction, error)
		ListByUser(ctx context.Context, userID string) ([]entity.TopUpTransaction, error)
		MarkPaid(ctx context.Context, id string) error
	}

	Commit   func() error
	Rollback func() error
}

type methodRepository struct {
	q   sqlx.ExtContext
	log *logrus.Logger
}

type topUpRepository struct {
	q   sqlx.ExtContext
	log *logrus.Logger
}
