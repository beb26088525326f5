package donate

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/AlexZinkM/donate-action/internal/client"
	"github.com/AlexZinkM/donate-action/internal/model"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRecipient = solana.MustPublicKeyFromBase58("CBDv85peLsVvUzzc64zQjhr5doVCEa3jMxqrqNkPUocg")

type fakeBlockhashes struct {
	hash  solana.Hash
	err   error
	calls int
}

func (f *fakeBlockhashes) LatestBlockhash(ctx context.Context) (*client.Blockhash, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &client.Blockhash{Hash: f.hash, LastValidBlockHeight: 987}, nil
}

func newTestBuilder(src BlockhashSource) *Builder {
	return NewBuilder(src, testRecipient, "Abyscuit", slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// decodeTransfer unpacks a serialized transaction and returns its only system transfer.
func decodeTransfer(t *testing.T, encoded string) (*solana.Transaction, *system.Transfer) {
	t.Helper()

	tx, err := solana.TransactionFromBase64(encoded)
	require.NoError(t, err)
	require.Len(t, tx.Message.Instructions, 1)

	ix := tx.Message.Instructions[0]
	programID, err := tx.ResolveProgramIDIndex(ix.ProgramIDIndex)
	require.NoError(t, err)
	require.Equal(t, solana.SystemProgramID, programID)

	accounts, err := ix.ResolveInstructionAccounts(&tx.Message)
	require.NoError(t, err)

	decoded, err := system.DecodeInstruction(accounts, ix.Data)
	require.NoError(t, err)

	transfer, ok := decoded.Impl.(*system.Transfer)
	require.True(t, ok, "expected a system transfer, got %T", decoded.Impl)
	return tx, transfer
}

func TestBuild(t *testing.T) {
	sender := solana.NewWallet().PublicKey()
	hash := solana.Hash(solana.NewWallet().PublicKey())
	src := &fakeBlockhashes{hash: hash}
	b := newTestBuilder(src)

	d, err := NewDonation(sender.String(), "2.5")
	require.NoError(t, err)

	built, err := b.Build(context.Background(), d)
	require.NoError(t, err)

	assert.Equal(t, 1, src.calls, "blockhash is fetched once")
	assert.Equal(t, hash, built.Blockhash)
	assert.Equal(t, uint64(987), built.LastValidBlockHeight)
	assert.Equal(t, testRecipient, built.Recipient)
	assert.Equal(t, "Thank you for donating 2.5 SOL to Abyscuit!", built.Message)

	resp, err := built.PostResponse()
	require.NoError(t, err)
	assert.Equal(t, model.LinkedActionTypeTransaction, resp.Type)
	assert.Equal(t, built.Message, resp.Message)

	tx, transfer := decodeTransfer(t, resp.Transaction)

	require.NotNil(t, transfer.Lamports)
	assert.Equal(t, uint64(2_500_000_000), *transfer.Lamports)
	assert.Equal(t, sender, transfer.GetFundingAccount().PublicKey)
	assert.Equal(t, testRecipient, transfer.GetRecipientAccount().PublicKey)

	// Fee payer is the first account key and the only required signer
	assert.Equal(t, sender, tx.Message.AccountKeys[0])
	assert.Equal(t, uint8(1), tx.Message.Header.NumRequiredSignatures)
	assert.Equal(t, hash, tx.Message.RecentBlockhash)

	// Unsigned: the signature slot is present but zero-filled
	require.Len(t, tx.Signatures, 1)
	assert.True(t, tx.Signatures[0].IsZero())
}

func TestBuild_DefaultAmount(t *testing.T) {
	sender := solana.NewWallet().PublicKey()
	b := newTestBuilder(&fakeBlockhashes{hash: solana.Hash(sender)})

	d, err := NewDonation(sender.String(), "")
	require.NoError(t, err)

	built, err := b.Build(context.Background(), d)
	require.NoError(t, err)
	assert.Equal(t, "Thank you for donating 0.1 SOL to Abyscuit!", built.Message)

	resp, err := built.PostResponse()
	require.NoError(t, err)

	_, transfer := decodeTransfer(t, resp.Transaction)
	assert.Equal(t, uint64(100_000_000), *transfer.Lamports)
}

func TestBuild_BlockhashError(t *testing.T) {
	rpcErr := errors.New("rpc unavailable")
	b := newTestBuilder(&fakeBlockhashes{err: rpcErr})

	d, err := NewDonation(solana.NewWallet().PublicKey().String(), "1")
	require.NoError(t, err)

	built, err := b.Build(context.Background(), d)
	assert.Nil(t, built)
	assert.ErrorIs(t, err, rpcErr)
	assert.False(t, IsValidationError(err))
}
