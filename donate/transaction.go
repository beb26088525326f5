package donate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AlexZinkM/donate-action/internal/client"
	"github.com/AlexZinkM/donate-action/internal/common"
	"github.com/AlexZinkM/donate-action/internal/model"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
)

// BlockhashSource supplies a recent blockhash; *client.SolanaClient implements it.
type BlockhashSource interface {
	LatestBlockhash(ctx context.Context) (*client.Blockhash, error)
}

// Builder turns validated donations into unsigned transfer transactions.
type Builder struct {
	blockhashes BlockhashSource
	recipient   solana.PublicKey
	beneficiary string
	logger      *slog.Logger
}

// NewBuilder creates a Builder paying recipient on behalf of beneficiary.
func NewBuilder(blockhashes BlockhashSource, recipient solana.PublicKey, beneficiary string, logger *slog.Logger) *Builder {
	return &Builder{
		blockhashes: blockhashes,
		recipient:   recipient,
		beneficiary: beneficiary,
		logger:      logger,
	}
}

// Recipient returns the address every donation is sent to.
func (b *Builder) Recipient() solana.PublicKey {
	return b.recipient
}

// BuiltDonation is an unsigned transaction ready to hand to a wallet.
type BuiltDonation struct {
	Donation             *Donation
	Recipient            solana.PublicKey
	Transaction          *solana.Transaction
	Blockhash            solana.Hash
	LastValidBlockHeight uint64
	Message              string
}

// Build creates the transfer instruction, attaches a fresh blockhash and sets
// the sender as fee payer. The transaction is left unsigned.
func (b *Builder) Build(ctx context.Context, d *Donation) (*BuiltDonation, error) {
	transferInstruction := system.NewTransferInstruction(
		d.Lamports,
		d.Sender,
		b.recipient,
	).Build()

	recent, err := b.blockhashes.LatestBlockhash(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := solana.NewTransaction(
		[]solana.Instruction{transferInstruction},
		recent.Hash,
		solana.TransactionPayer(d.Sender),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	b.logger.InfoContext(ctx, "donation transaction built",
		"sender", d.Sender.String(),
		"recipient", b.recipient.String(),
		"lamports", d.Lamports,
		"amount_sol", common.LamportsToSOL(d.Lamports),
		"blockhash", recent.Hash.String(),
		"last_valid_block_height", recent.LastValidBlockHeight,
	)

	return &BuiltDonation{
		Donation:             d,
		Recipient:            b.recipient,
		Transaction:          tx,
		Blockhash:            recent.Hash,
		LastValidBlockHeight: recent.LastValidBlockHeight,
		Message:              fmt.Sprintf("Thank you for donating %s SOL to %s!", common.FormatSOL(d.AmountSOL), b.beneficiary),
	}, nil
}

// PostResponse serializes the transaction for the wallet. The signature slot
// of the fee payer is zero-filled; the wallet signs it.
func (bd *BuiltDonation) PostResponse() (model.ActionPostResponse, error) {
	encoded, err := bd.Transaction.ToBase64()
	if err != nil {
		return model.ActionPostResponse{}, fmt.Errorf("failed to serialize transaction: %w", err)
	}

	return model.ActionPostResponse{
		Type:        model.LinkedActionTypeTransaction,
		Transaction: encoded,
		Message:     bd.Message,
	}, nil
}
