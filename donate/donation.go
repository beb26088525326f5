package donate

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/AlexZinkM/donate-action/internal/common"

	"github.com/gagliardetto/solana-go"
)

// DefaultAmountSOL is used when the amount query parameter is absent or not a number.
const DefaultAmountSOL = 0.1

// Messages returned to wallets for rejected requests.
const (
	MsgInvalidAccount = "Invalid account"
	MsgAmountTooSmall = "Amount is too small"
	MsgAmountTooLarge = "Amount is too large"
)

// Reasons used as metric labels.
const (
	ReasonInvalidAccount = "invalid_account"
	ReasonAmountTooSmall = "amount_too_small"
	ReasonAmountTooLarge = "amount_too_large"
)

// ValidationError is a request error the caller can fix; it maps to HTTP 400.
type ValidationError struct {
	Reason  string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError checks if err is (or wraps) a ValidationError
func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// Donation is a validated transfer request.
type Donation struct {
	Sender    solana.PublicKey
	AmountSOL float64
	Lamports  uint64
}

// NewDonation validates the sender account first, then the amount.
func NewDonation(account, rawAmount string) (*Donation, error) {
	sender, err := solana.PublicKeyFromBase58(strings.TrimSpace(account))
	if err != nil {
		return nil, &ValidationError{Reason: ReasonInvalidAccount, Message: MsgInvalidAccount, Err: err}
	}

	amount, err := ParseAmount(rawAmount)
	if err != nil {
		return nil, err
	}

	lamports, err := ToLamports(amount)
	if err != nil {
		return nil, err
	}

	return &Donation{
		Sender:    sender,
		AmountSOL: amount,
		Lamports:  lamports,
	}, nil
}

// ParseAmount parses the amount query parameter in SOL.
// Empty or non-numeric input falls back to DefaultAmountSOL; zero and negatives are rejected.
func ParseAmount(raw string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		var numErr *strconv.NumError
		// Out-of-range input still carries a sign (±Inf), keep it so it gets rejected below
		if !errors.As(err, &numErr) || !errors.Is(numErr.Err, strconv.ErrRange) {
			amount = DefaultAmountSOL
		}
	}
	if math.IsNaN(amount) {
		amount = DefaultAmountSOL
	}

	if amount <= 0 {
		return 0, &ValidationError{Reason: ReasonAmountTooSmall, Message: MsgAmountTooSmall}
	}
	return amount, nil
}

// ToLamports converts a positive SOL amount into lamports.
// Conversion goes through the decimal string, so 0.1 is exactly 100000000.
func ToLamports(amount float64) (uint64, error) {
	if math.IsInf(amount, 1) {
		return 0, &ValidationError{Reason: ReasonAmountTooLarge, Message: MsgAmountTooLarge}
	}

	lamports, err := common.SOLToLamports(common.FormatSOL(amount))
	if err != nil {
		return 0, &ValidationError{Reason: ReasonAmountTooLarge, Message: MsgAmountTooLarge, Err: err}
	}
	if lamports == 0 {
		return 0, &ValidationError{Reason: ReasonAmountTooSmall, Message: MsgAmountTooSmall}
	}
	return lamports, nil
}
