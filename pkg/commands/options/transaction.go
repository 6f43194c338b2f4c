package options

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/ledger/pkg/runner/edit"
	"tableflip.dev/ledger/pkg/transaction"
)

// TransactionOptions are the record fields given as flags. Local entries use
// description, amount and type; server-backed payments use id, type, amount,
// currency and result.
type TransactionOptions struct {
	ID          string
	Description string
	Amount      string
	Type        string
	Currency    string
	Result      string
}

func AddTransactionArgs(cmd *cobra.Command, o *TransactionOptions, create bool) {
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Description of a local entry, at least 3 characters.")
	cmd.Flags().StringVarP(&o.Amount, "amount", "a", "",
		"Positive amount, example: --amount=12.50.")
	cmd.Flags().StringVarP(&o.Type, "type", "t", "",
		`Entry type "deposit" or "withdrawal" (local), or "PAYMENT" or "REFUND" (remote).`)
	cmd.Flags().StringVar(&o.Currency, "currency", "",
		"Currency code of a payment, example: --currency=EUR.")
	cmd.Flags().StringVar(&o.Result, "result", "",
		`Payment result "SUCCESS", "FAILURE" or "DECLINED".`)
	if create {
		cmd.Flags().StringVar(&o.ID, "id", "",
			"Transaction id of a payment. A UUID is generated when empty.")
	}
}

// EntryDraft builds a local entry. The type defaults to deposit.
func (o *TransactionOptions) EntryDraft() (transaction.EntryDraft, error) {
	amount, err := transaction.ParseAmount(o.Amount)
	if err != nil {
		return transaction.EntryDraft{}, err
	}
	kind := transaction.Deposit
	if o.Type != "" {
		if kind, err = transaction.ParseKind(o.Type); err != nil {
			return transaction.EntryDraft{}, err
		}
	}
	return transaction.EntryDraft{Description: o.Description, Amount: amount, Type: kind}, nil
}

// EntryPatch holds only the flags present on cmd.
func (o *TransactionOptions) EntryPatch(cmd *cobra.Command) (edit.EntryPatch, error) {
	var p edit.EntryPatch
	flags := cmd.Flags()
	if flags.Changed("description") {
		d := o.Description
		p.Description = &d
	}
	if flags.Changed("amount") {
		amount, err := transaction.ParseAmount(o.Amount)
		if err != nil {
			return p, err
		}
		p.Amount = &amount
	}
	if flags.Changed("type") {
		kind, err := transaction.ParseKind(o.Type)
		if err != nil {
			return p, err
		}
		p.Type = &kind
	}
	if p.Description == nil && p.Amount == nil && p.Type == nil {
		return p, errors.New("nothing to change, set --description, --amount or --type")
	}
	return p, nil
}

// PaymentDraft builds a payment. Type defaults to PAYMENT, result to SUCCESS.
func (o *TransactionOptions) PaymentDraft() (transaction.PaymentDraft, error) {
	amount, err := transaction.ParseAmount(o.Amount)
	if err != nil {
		return transaction.PaymentDraft{}, err
	}
	typ := transaction.TypePayment
	if o.Type != "" {
		if typ, err = transaction.ParsePaymentType(o.Type); err != nil {
			return transaction.PaymentDraft{}, err
		}
	}
	result := transaction.Success
	if o.Result != "" {
		if result, err = transaction.ParseResult(o.Result); err != nil {
			return transaction.PaymentDraft{}, err
		}
	}
	return transaction.PaymentDraft{
		TransactionID:   o.ID,
		TransactionType: typ,
		Amount:          amount,
		Currency:        transaction.ParseCurrency(o.Currency),
		Result:          result,
	}, nil
}

// PaymentUpdate requires amount, currency and result.
func (o *TransactionOptions) PaymentUpdate() (transaction.PaymentUpdate, error) {
	amount, err := transaction.ParseAmount(o.Amount)
	if err != nil {
		return transaction.PaymentUpdate{}, err
	}
	result, err := transaction.ParseResult(o.Result)
	if err != nil {
		return transaction.PaymentUpdate{}, err
	}
	return transaction.PaymentUpdate{
		Amount:   amount,
		Currency: transaction.ParseCurrency(o.Currency),
		Result:   result,
	}, nil
}
