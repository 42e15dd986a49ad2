package models

import "time"

// Transaction is a transfer request as submitted by a client. Once accepted
// by the ledger it is immutable; the ledger stream owns it from then on.
type Transaction struct {
	FromAccountNum string  `json:"fromAccountNum"`
	FromRoutingNum string  `json:"fromRoutingNum"`
	ToAccountNum   string  `json:"toAccountNum"`
	ToRoutingNum   string  `json:"toRoutingNum"`
	Amount         int64   `json:"amount"`
	Timestamp      float64 `json:"timestamp"`
}

// TransactionRecord mirrors an accepted transaction into the relational
// reporting table. The ledger stream stays the source of truth; rows here
// are written best-effort after a successful append.
type TransactionRecord struct {
	ID             string `gorm:"primaryKey;size:36"`
	FromAccountNum string `gorm:"size:10;not null;index"`
	FromRoutingNum string `gorm:"size:9;not null"`
	ToAccountNum   string `gorm:"size:10;not null;index"`
	ToRoutingNum   string `gorm:"size:9;not null"`
	Amount         int64  `gorm:"not null"`
	Timestamp      float64
	Sequence       string `gorm:"size:64;uniqueIndex"`
	CreatedAt      time.Time
}

func (TransactionRecord) TableName() string {
	return "transactions"
}
