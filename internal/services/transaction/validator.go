package transaction

import (
	"context"
	"fmt"

	"ledgerwriter/internal/models"
	"ledgerwriter/internal/validation"
)

// validateShape checks the structural invariants of a submitted payload:
// fixed-width digit identifiers on all four account/routing fields.
func validateShape(tx *models.Transaction) error {
	v := validation.New()
	v.AccountNum("fromAccountNum", tx.FromAccountNum)
	v.AccountNum("toAccountNum", tx.ToAccountNum)
	v.RoutingNum("fromRoutingNum", tx.FromRoutingNum)
	v.RoutingNum("toRoutingNum", tx.ToRoutingNum)
	if !v.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidTransaction, v.Errors)
	}
	return nil
}

// validate applies the business rules in order, short-circuiting on the
// first failure:
//  1. ownership: a local-source transfer must be initiated by the account it
//     draws from; foreign-source transfers are outside our trust boundary
//     and skip this check
//  2. amount must be strictly positive
//  3. sufficiency: for local-source transfers only, the sender's queried
//     balance must cover the amount (exactly one balance query, no retry)
func (s *service) validate(ctx context.Context, claims *models.TokenClaims, bearerToken string, tx *models.Transaction) error {
	local := tx.FromRoutingNum == s.localRoutingNum

	if local && tx.FromAccountNum != claims.AccountNum {
		return ErrNotAuthorized
	}

	if tx.Amount <= 0 {
		return ErrInvalidAmount
	}

	if local {
		balance, err := s.balances.Balance(ctx, claims.AccountNum, bearerToken)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBalanceUnavailable, err)
		}
		if balance < tx.Amount {
			return ErrInsufficientFunds
		}
	}
	return nil
}
