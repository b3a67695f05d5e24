package bot

const (
	msgWalletCreated  = "Wallet created with ID: %s"
	msgDeposited      = "Deposited %d units to your wallet. Transaction ID: %s"
	msgWithdrew       = "Withdrew %d units from your wallet. Transaction ID: %s"
	msgTransferred    = "Transferred %d units to wallet %s. Transaction ID: %s"
	msgPaymentAdded   = "Payment method added successfully."
	msgCreateFailed   = "Error creating wallet. Please try again."
	msgDepositFailed  = "Error processing deposit. Please try again."
	msgWithdrawFailed = "Error processing withdrawal. Please try again."
	msgTransferFailed = "Error processing transfer. Please try again."
	msgPaymentFailed  = "Error adding payment method. Please try again."

	usageDeposit    = "Usage: /deposit [amount]"
	usageWithdraw   = "Usage: /withdraw [amount]"
	usageTransfer   = "Usage: /transfer <destination_wallet_id> <amount>"
	usageAddPayment = "Usage: /add_payment <card_number> <exp_month> <exp_year> <cvv> <cardholder name>"
)
