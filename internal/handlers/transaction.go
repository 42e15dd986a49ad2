// Package handlers contains the HTTP handlers for the service.
package handlers

import (
	"errors"
	"log"

	"ledgerwriter/internal/models"
	"ledgerwriter/internal/services/transaction"
	"ledgerwriter/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// TransactionHandler accepts new transactions for the bank ledger.
type TransactionHandler struct {
	svc transaction.Service
}

func NewTransactionHandler(svc transaction.Service) *TransactionHandler {
	return &TransactionHandler{svc: svc}
}

// Submit handles POST /transactions. Each rejection maps to exactly one
// status and reason string; a committed transaction answers 201 "ok".
func (h *TransactionHandler) Submit(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.TokenClaims)
	if !ok {
		return response.Unauthorized(c)
	}
	token, _ := c.Locals("token").(string)

	var tx models.Transaction
	if err := c.BodyParser(&tx); err != nil {
		return response.BadRequest(c, "invalid transaction")
	}

	seq, err := h.svc.Submit(c.UserContext(), claims, token, &tx)
	if err != nil {
		switch {
		case errors.Is(err, transaction.ErrNotAuthorized):
			return response.Unauthorized(c)
		case errors.Is(err, transaction.ErrInvalidAmount):
			return response.BadRequest(c, "invalid amount")
		case errors.Is(err, transaction.ErrInsufficientFunds):
			return response.BadRequest(c, "insufficient balance")
		case errors.Is(err, transaction.ErrInvalidTransaction):
			return response.BadRequest(c, "invalid transaction")
		default:
			log.Printf("transaction submit failed: %v", err)
			return response.ServerError(c)
		}
	}

	log.Printf("transaction committed at %s", seq)
	return c.Status(fiber.StatusCreated).SendString("ok")
}
