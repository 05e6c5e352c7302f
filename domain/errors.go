package domain

import "errors"

var (
	// ErrInternalServerError will throw if any Internal Server Error happens
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item does not exist
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// request error
	ErrInvalidAddress   = errors.New("Invalid address")
	ErrInvalidSignature = errors.New("Invalid signature")

	// authorization failures always fail the whole operation
	ErrNotArtist         = errors.New("only artist")
	ErrNotAdminACL       = errors.New("only core admin ACL allowed")
	ErrNotArtistNorAdmin = errors.New("only artist or core admin ACL allowed")
	ErrNotAssignedMinter = errors.New("only assigned minter")
	ErrMinterNotApproved = errors.New("only approved minters are allowed")
	ErrRenounceDisabled  = errors.New("ownership cannot be renounced")

	// configuration-state failures, recoverable by the privileged actor
	// performing the missing configuration step
	ErrCoreContractNotRegistered = errors.New("only registered core contracts")
	ErrProjectIdOutOfRange       = errors.New("only valid project id")
	ErrNoMinterAssigned          = errors.New("no minter assigned")
	ErrPriceNotConfigured        = errors.New("price not configured")
	ErrCurrencyNotConfigured     = errors.New("currency not configured")
	ErrInvalidCurrency           = errors.New("invalid currency")
	ErrAuctionNotConfigured      = errors.New("auction not configured")
	ErrAuctionNotStarted         = errors.New("auction not started")
	ErrAuctionInProgress         = errors.New("auction already in progress")
	ErrAuctionTooShort           = errors.New("auction length below minimum")
	ErrHalfLifeOutOfRange        = errors.New("price decay half life out of allowed range")
	ErrInvalidAuctionPrices      = errors.New("auction start price must exceed base price")

	// capacity failures
	ErrMaxInvocationsReached      = errors.New("max invocations reached")
	ErrMaxInvocationsExceedsCore  = errors.New("cannot increase max invocations above core value")
	ErrMaxInvocationsBelowMinted  = errors.New("cannot decrease max invocations below current invocations")
	ErrInvocationsNotSynced       = errors.New("project invocations never synced from core")

	// funds-transfer failures
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrTransferFailed    = errors.New("funds transfer failed")

	// data-integrity failures: fail defensively rather than trust
	// malformed collaborator data
	ErrUnexpectedSplitShape      = errors.New("unexpected revenue split return shape")
	ErrSplitsDoNotSumToPrice     = errors.New("revenue splits do not sum to price")
	ErrUnexpectedTokenId         = errors.New("minted token id does not match expected invocation")

	// holder gating
	ErrArrayLengthMismatch = errors.New("array lengths must match")
	ErrNotAllowlistedNFT   = errors.New("only allowlisted NFTs")
	ErrNotTokenOwner       = errors.New("only token owner")
	ErrNotDelegate         = errors.New("only registered delegate of vault")

	// polyptych panels
	ErrPanelHashSeedMinted = errors.New("panel already minted with this hash seed")
	ErrNilHashSeed         = errors.New("token has no hash seed")
)
