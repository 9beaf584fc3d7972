package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/aryaprdni/cash-ease-be/internal/pkg/database"
	"github.com/aryaprdni/cash-ease-be/internal/wallet/domain"
)

type PartyLocker struct{}

func NewPartyLocker() *PartyLocker {
	return &PartyLocker{}
}

// LockTransferParties locks the sender and recipient rows inside the caller's
// transaction. Both rows are taken in a single statement ordered by id, so two
// opposite-direction transfers between the same pair always acquire locks in
// the same order and cannot deadlock.
func (pl *PartyLocker) LockTransferParties(ctx context.Context, querier database.Querier, senderID, recipientName string) (domain.TransferParty, domain.TransferParty, error) {
	partiesSelectSQL := `SELECT id, name, balance
FROM users
WHERE id = $1 OR LOWER(name) = LOWER($2)
ORDER BY id
FOR UPDATE`
	rows, err := querier.Query(ctx, partiesSelectSQL, senderID, recipientName)
	if err != nil {
		return domain.TransferParty{}, domain.TransferParty{}, fmt.Errorf("failed to select transfer parties for update: %w", err)
	}

	parties := make([]domain.TransferParty, 0, 2)
	for rows.Next() {
		var party domain.TransferParty
		err = rows.Scan(&party.ID, &party.Name, &party.Balance)
		if err != nil {
			rows.Close()
			return domain.TransferParty{}, domain.TransferParty{}, fmt.Errorf("failed to scan transfer party row: %w", err)
		}
		parties = append(parties, party)
	}
	rows.Close()

	if err := rows.Err(); err != nil {
		return domain.TransferParty{}, domain.TransferParty{}, fmt.Errorf("failed to read transfer party rows: %w", err)
	}

	// Postgres matches the uuid parameter case-insensitively but scans ids
	// back in canonical lowercase, so the comparison here must fold case too.
	var sender, recipient *domain.TransferParty
	for i := range parties {
		if strings.EqualFold(parties[i].ID, senderID) {
			sender = &parties[i]
		}
		if strings.EqualFold(parties[i].Name, recipientName) {
			recipient = &parties[i]
		}
	}

	if sender == nil {
		return domain.TransferParty{}, domain.TransferParty{}, &domain.UserNotFoundError{Msg: fmt.Sprintf("sender with id %s not found", senderID)}
	}
	if recipient == nil {
		return domain.TransferParty{}, domain.TransferParty{}, &domain.UserNotFoundError{Msg: fmt.Sprintf("recipient with name %q not found", recipientName)}
	}
	if sender == recipient {
		return domain.TransferParty{}, domain.TransferParty{}, &domain.InvalidArgumentsError{Msg: "sender and recipient must be different users"}
	}

	return *sender, *recipient, nil
}
