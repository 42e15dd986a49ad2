// Package transaction accepts transfer requests for the bank ledger: it
// validates each request against the caller's verified identity and appends
// accepted transactions to the ordered log.
package transaction

import (
	"context"
	"log"

	"ledgerwriter/internal/balances"
	"ledgerwriter/internal/ledger"
	"ledgerwriter/internal/models"
	"ledgerwriter/internal/repositories"
)

// Service is the intake entry point. Submit drives a request through
// validation and append; exactly one terminal outcome is reached per call
// and nothing is retried internally.
type Service interface {
	Submit(ctx context.Context, claims *models.TokenClaims, bearerToken string, tx *models.Transaction) (string, error)
}

type service struct {
	localRoutingNum string
	balances        balances.Fetcher
	appender        ledger.Appender
	mirror          repositories.TransactionRepository
}

// NewService creates a transaction intake service. mirror may be nil, in
// which case accepted transactions are only written to the ledger stream.
func NewService(localRoutingNum string, fetcher balances.Fetcher, appender ledger.Appender, mirror repositories.TransactionRepository) Service {
	if localRoutingNum == "" {
		panic("localRoutingNum is required")
	}
	if fetcher == nil {
		panic("fetcher is required")
	}
	if appender == nil {
		panic("appender is required")
	}

	return &service{
		localRoutingNum: localRoutingNum,
		balances:        fetcher,
		appender:        appender,
		mirror:          mirror,
	}
}

// Submit validates the transaction and appends it to the ledger, returning
// the sequence position the log assigned. Once the append is issued it runs
// to completion; an ambiguous append failure is reported, never retried.
func (s *service) Submit(ctx context.Context, claims *models.TokenClaims, bearerToken string, tx *models.Transaction) (string, error) {
	if err := validateShape(tx); err != nil {
		return "", err
	}
	if err := s.validate(ctx, claims, bearerToken, tx); err != nil {
		return "", err
	}

	seq, err := s.appender.Append(ctx, tx)
	if err != nil {
		return "", err
	}

	// The stream is the source of truth; a failed mirror write must not fail
	// a transaction that is already durably appended.
	if s.mirror != nil {
		if err := s.mirror.Save(ctx, tx, seq); err != nil {
			log.Printf("failed to mirror transaction %s: %v", seq, err)
		}
	}

	return seq, nil
}
