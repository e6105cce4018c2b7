package schema

// AddBudget deposits quote tokens into the user budget. The tokens land in
// the market vault; the running balance lives in the user account state.
type AddBudget struct {
	Amount uint64
}

func (a AddBudget) Kind() Kind { return KindAddBudget }

// WithdrawBudget withdraws quote tokens from the user budget back to a
// target token account.
type WithdrawBudget struct {
	Amount uint64
}

func (w WithdrawBudget) Kind() Kind { return KindWithdrawBudget }

// CloseAccount closes a user account and reclaims its rent lamports.
type CloseAccount struct{}

func (c CloseAccount) Kind() Kind { return KindCloseAccount }

// TransferUserAccount hands a user account over to a new owner.
type TransferUserAccount struct{}

func (t TransferUserAccount) Kind() Kind { return KindTransferUserAccount }

// TransferPosition moves one position between two user accounts.
type TransferPosition struct {
	PositionIndex uint16
}

func (t TransferPosition) Kind() Kind { return KindTransferPosition }
