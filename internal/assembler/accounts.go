package assembler

import (
	"github.com/gagliardetto/solana-go"
)

// accountList accumulates the ordered account references of one request.
// Segments are appended in declared order: fixed prefix, memory pages,
// discount pair, referral. Position in the final slice is load-bearing —
// the engine indexes accounts positionally.
type accountList struct {
	metas solana.AccountMetaSlice
}

func newAccountList(capacity int) *accountList {
	return &accountList{metas: make(solana.AccountMetaSlice, 0, capacity)}
}

func (l *accountList) readonly(key solana.PublicKey) {
	l.metas = append(l.metas, solana.NewAccountMeta(key, false, false))
}

func (l *accountList) readonlySigner(key solana.PublicKey) {
	l.metas = append(l.metas, solana.NewAccountMeta(key, false, true))
}

func (l *accountList) writable(key solana.PublicKey) {
	l.metas = append(l.metas, solana.NewAccountMeta(key, true, false))
}

func (l *accountList) writableSigner(key solana.PublicKey) {
	l.metas = append(l.metas, solana.NewAccountMeta(key, true, true))
}

// pages appends one writable reference per memory page, preserving the
// page order of the instance.
func (l *accountList) pages(instance *InstanceContext) {
	for _, p := range instance.MemoryPages {
		l.writable(p)
	}
}

// optionals appends the trailing optional segments. The discount pair, when
// present, always precedes the referral reference; the wire order within
// the pair is address first, then the signing owner.
func (l *accountList) optionals(discount *DiscountAccount, referrer *solana.PublicKey) error {
	if discount != nil {
		if discount.Owner.IsZero() || discount.Address.IsZero() {
			return ErrMissingOptionalAccount
		}
		l.readonly(discount.Address)
		l.readonlySigner(discount.Owner)
	}
	if referrer != nil {
		l.writable(*referrer)
	}
	return nil
}
