package repositories

import (
	"context"

	"ledgerwriter/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionRepository persists accepted transactions into the relational
// mirror used for query and reporting.
type TransactionRepository interface {
	Save(ctx context.Context, tx *models.Transaction, sequence string) error
}

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a gorm-backed mirror repository.
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Save(ctx context.Context, tx *models.Transaction, sequence string) error {
	record := models.TransactionRecord{
		ID:             uuid.NewString(),
		FromAccountNum: tx.FromAccountNum,
		FromRoutingNum: tx.FromRoutingNum,
		ToAccountNum:   tx.ToAccountNum,
		ToRoutingNum:   tx.ToRoutingNum,
		Amount:         tx.Amount,
		Timestamp:      tx.Timestamp,
		Sequence:       sequence,
	}
	return r.db.WithContext(ctx).Create(&record).Error
}
