package programlogs

import (
	"fmt"
	"strconv"
	"strings"
)

// Token2022STRID is the SPL Token-2022 program id.
const Token2022STRID = "TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb"

type Token2022Kind uint8

const (
	Token2022ErrorNotRentExempt Token2022Kind = iota
	Token2022ErrorInsufficientFunds
	Token2022ErrorInvalidMint
	Token2022ErrorMintMismatch
	Token2022ErrorOwnerMismatch
	Token2022ErrorFixedSupply
	Token2022ErrorAlreadyInUse
	Token2022ErrorInvalidNumberOfProvidedSigners
	Token2022ErrorInvalidNumberOfRequiredSigners
	Token2022ErrorUninitializedState
	Token2022ErrorNativeNotSupported
	Token2022ErrorNonNativeHasBalance
	Token2022ErrorInvalidInstruction
	Token2022ErrorInvalidState
	Token2022ErrorOverflow
	Token2022ErrorAuthorityTypeNotSupported
	Token2022ErrorMintCannotFreeze
	Token2022ErrorAccountFrozen
	Token2022ErrorMintDecimalsMismatch
	Token2022ErrorNonNativeNotSupported
	Token2022ErrorExtensionTypeMismatch
	Token2022ErrorExtensionBaseMismatch
	Token2022ErrorExtensionAlreadyInitialized
	Token2022ErrorConfidentialTransferAccountHasBalance
	Token2022ErrorConfidentialTransferAccountNotApproved
	Token2022ErrorConfidentialTransferDepositsAndTransfersDisabled
	Token2022ErrorConfidentialTransferElGamalPubkeyMismatch
	Token2022ErrorConfidentialTransferBalanceMismatch
	Token2022ErrorMintHasSupply
	Token2022ErrorNoAuthorityExists
	Token2022ErrorTransferFeeExceedsMaximum
	Token2022ErrorMintRequiredForTransfer
	Token2022ErrorFeeMismatch
	Token2022ErrorFeeParametersMismatch
	Token2022ErrorImmutableOwner
	Token2022ErrorAccountHasWithheldTransferFees
	Token2022ErrorNoMemo
	Token2022ErrorNonTransferable
	Token2022ErrorNonTransferableNeedsImmutableOwnership
	Token2022ErrorMaximumPendingBalanceCreditCounterExceeded
	Token2022ErrorMaximumDepositAmountExceeded
	Token2022ErrorCpiGuardSettingsLocked
	Token2022ErrorCpiGuardTransferBlocked
	Token2022ErrorCpiGuardBurnBlocked
	Token2022ErrorCpiGuardCloseAccountBlocked
	Token2022ErrorCpiGuardApproveBlocked
	Token2022ErrorCpiGuardSetAuthorityBlocked
	Token2022ErrorCpiGuardOwnerChangeBlocked
	Token2022ErrorExtensionNotFound
	Token2022ErrorNonConfidentialTransfersDisabled
	Token2022ErrorConfidentialTransferFeeAccountHasWithheldFee
	Token2022ErrorInvalidExtensionCombination
	Token2022ErrorInvalidLengthForAlloc
	Token2022ErrorAccountDecryption
	Token2022ErrorProofGeneration
	Token2022ErrorInvalidProofInstructionOffset
	Token2022ErrorHarvestToMintDisabled
	Token2022ErrorSplitProofContextStateAccountsNotSupported
	Token2022ErrorNotEnoughProofContextStateAccounts
	Token2022ErrorMalformedCiphertext
	Token2022ErrorCiphertextArithmeticFailed
	Token2022ErrorPedersenCommitmentMismatch
	Token2022ErrorRangeProofLengthMismatch
	Token2022ErrorIllegalBitLength
	Token2022ErrorFeeCalculation
	Token2022ErrorIllegalMintBurnConversion
	Token2022ErrorInvalidScale
	Token2022ErrorMintPaused
	Token2022ErrorPendingBalanceNonZero

	// AccountNeedsResizePlusBytesDebug and Debug2 come from two distinct call
	// sites in the original source (confidential_transfer/processor.rs:188
	// and reallocate.rs:69) but render to byte-identical text; the
	// classifier has no way to tell them apart from the log line alone, so
	// it always produces the Debug kind. Debug2 stays in the vocabulary for
	// structural fidelity but the parser never emits it.
	Token2022AccountNeedsResizePlusBytesDebug
	Token2022AccountNeedsResizePlusBytesDebug2

	Token2022ErrorHarvestingFrom
	Token2022ErrorHarvestingFrom2
	Token2022ErrorHarvestingFrom3
	Token2022ErrorHarvestingFrom4
)

var token2022ErrorText = map[Token2022Kind]string{
	Token2022ErrorNotRentExempt:                  "Error: Lamport balance below rent-exempt threshold",
	Token2022ErrorInsufficientFunds:               "Error: insufficient funds",
	Token2022ErrorInvalidMint:                     "Error: Invalid Mint",
	Token2022ErrorMintMismatch:                    "Error: Account not associated with this Mint",
	Token2022ErrorOwnerMismatch:                   "Error: owner does not match",
	Token2022ErrorFixedSupply:                     "Error: the total supply of this token is fixed",
	Token2022ErrorAlreadyInUse:                    "Error: account or token already in use",
	Token2022ErrorInvalidNumberOfProvidedSigners:  "Error: Invalid number of provided signers",
	Token2022ErrorInvalidNumberOfRequiredSigners:  "Error: Invalid number of required signers",
	Token2022ErrorUninitializedState:              "Error: State is uninitialized",
	Token2022ErrorNativeNotSupported:              "Error: Instruction does not support native tokens",
	Token2022ErrorNonNativeHasBalance:             "Error: Non-native account can only be closed if its balance is zero",
	Token2022ErrorInvalidInstruction:              "Error: Invalid instruction",
	Token2022ErrorInvalidState:                    "Error: Invalid account state for operation",
	Token2022ErrorOverflow:                        "Error: Operation overflowed",
	Token2022ErrorAuthorityTypeNotSupported:       "Error: Account does not support specified authority type",
	Token2022ErrorMintCannotFreeze:                "Error: This token mint cannot freeze accounts",
	Token2022ErrorAccountFrozen:                   "Error: Account is frozen",
	Token2022ErrorMintDecimalsMismatch:            "Error: decimals different from the Mint decimals",
	Token2022ErrorNonNativeNotSupported:           "Error: Instruction does not support non-native tokens",
	Token2022ErrorExtensionTypeMismatch:           "Error: New extension type does not match already existing extensions",
	Token2022ErrorExtensionBaseMismatch:           "Error: Extension does not match the base type provided",
	Token2022ErrorExtensionAlreadyInitialized:     "Error: Extension already initialized on this account",
	Token2022ErrorConfidentialTransferAccountHasBalance:             "Error: An account can only be closed if its confidential balance is zero",
	Token2022ErrorConfidentialTransferAccountNotApproved:            "Error: Account not approved for confidential transfers",
	Token2022ErrorConfidentialTransferDepositsAndTransfersDisabled:  "Error: Account not accepting deposits or transfers",
	Token2022ErrorConfidentialTransferElGamalPubkeyMismatch:         "Error: ElGamal public key mismatch",
	Token2022ErrorConfidentialTransferBalanceMismatch:               "Error: Balance mismatch",
	Token2022ErrorMintHasSupply:                   "Error: Mint has non-zero supply. Burn all tokens before closing the mint",
	Token2022ErrorNoAuthorityExists:               "Error: No authority exists to perform the desired operation",
	Token2022ErrorTransferFeeExceedsMaximum:       "Error: Transfer fee exceeds maximum of 10,000 basis points",
	Token2022ErrorMintRequiredForTransfer:         "Mint required for this account to transfer tokens, use `transfer_checked` or `transfer_checked_with_fee`",
	Token2022ErrorFeeMismatch:                     "Calculated fee does not match expected fee",
	Token2022ErrorFeeParametersMismatch:           "Fee parameters associated with zero-knowledge proofs do not match fee parameters in mint",
	Token2022ErrorImmutableOwner:                  "The owner authority cannot be changed",
	Token2022ErrorAccountHasWithheldTransferFees:  "Error: An account can only be closed if its withheld fee balance is zero, harvest fees to the mint and try again",
	Token2022ErrorNoMemo:                          "Error: No memo in previous instruction required for recipient to receive a transfer",
	Token2022ErrorNonTransferable:                 "Transfer is disabled for this mint",
	Token2022ErrorNonTransferableNeedsImmutableOwnership: "Non-transferable tokens can't be minted to an account without immutable ownership",
	Token2022ErrorMaximumPendingBalanceCreditCounterExceeded: "The total number of `Deposit` and `Transfer` instructions to an account cannot exceed the associated `maximum_pending_balance_credit_counter`",
	Token2022ErrorMaximumDepositAmountExceeded:    "Deposit amount exceeds maximum limit",
	Token2022ErrorCpiGuardSettingsLocked:          "CPI Guard status cannot be changed in CPI",
	Token2022ErrorCpiGuardTransferBlocked:         "CPI Guard is enabled, and a program attempted to transfer user funds without using a delegate",
	Token2022ErrorCpiGuardBurnBlocked:             "CPI Guard is enabled, and a program attempted to burn user funds without using a delegate",
	Token2022ErrorCpiGuardCloseAccountBlocked:     "CPI Guard is enabled, and a program attempted to close an account without returning lamports to owner",
	Token2022ErrorCpiGuardApproveBlocked:          "CPI Guard is enabled, and a program attempted to approve a delegate",
	Token2022ErrorCpiGuardSetAuthorityBlocked:     "CPI Guard is enabled, and a program attempted to add or change an authority",
	Token2022ErrorCpiGuardOwnerChangeBlocked:       "Account ownership cannot be changed while CPI Guard is enabled",
	Token2022ErrorExtensionNotFound:               "Extension not found in account data",
	Token2022ErrorNonConfidentialTransfersDisabled: "Non-confidential transfers disabled",
	Token2022ErrorConfidentialTransferFeeAccountHasWithheldFee: "Account has non-zero confidential withheld fee",
	Token2022ErrorInvalidExtensionCombination:     "Mint or account is initialized to an invalid combination of extensions",
	Token2022ErrorInvalidLengthForAlloc:           "Extension allocation with overwrite must use the same length",
	Token2022ErrorAccountDecryption:               "Failed to decrypt a confidential transfer account",
	Token2022ErrorProofGeneration:                 "Failed to generate proof",
	Token2022ErrorInvalidProofInstructionOffset:   "An invalid proof instruction offset was provided",
	Token2022ErrorHarvestToMintDisabled:           "Harvest of withheld tokens to mint is disabled",
	Token2022ErrorSplitProofContextStateAccountsNotSupported: "Split proof context state accounts not supported for instruction",
	Token2022ErrorNotEnoughProofContextStateAccounts: "Not enough proof context state accounts provided",
	Token2022ErrorMalformedCiphertext:             "Ciphertext is malformed",
	Token2022ErrorCiphertextArithmeticFailed:      "Ciphertext arithmetic failed",
	Token2022ErrorPedersenCommitmentMismatch:      "Pedersen commitments did not match",
	Token2022ErrorRangeProofLengthMismatch:        "Range proof lengths did not match",
	Token2022ErrorIllegalBitLength:                "Illegal transfer amount bit length",
	Token2022ErrorFeeCalculation:                  "Transfer fee calculation failed",
	Token2022ErrorIllegalMintBurnConversion:       "Conversions from normal to confidential token balance and vice versa are illegal if the confidential-mint-burn extension is enabled",
	Token2022ErrorInvalidScale:                    "Invalid scale for scaled ui amount",
	Token2022ErrorMintPaused:                      "Transferring, minting, and burning is paused on this mint",
	Token2022ErrorPendingBalanceNonZero:           "Key rotation attempted while pending balance is not zero",
}

var token2022TextToKind map[string]Token2022Kind

func init() {
	token2022TextToKind = make(map[string]Token2022Kind, len(token2022ErrorText))
	for k, v := range token2022ErrorText {
		token2022TextToKind[v] = k
	}
}

// Token2022Log is a parsed SPL Token-2022 program log line.
type Token2022Log struct {
	Kind       Token2022Kind
	Bytes      uint64
	AccountKey uint32
	Error      string
}

// ParseToken2022Log recognizes a canonical SPL Token-2022 log payload.
// index resolves the account key embedded in "Error harvesting from" lines.
func ParseToken2022Log(payload string, index TokenIndex) (Token2022Log, bool) {
	if k, ok := token2022TextToKind[payload]; ok {
		return Token2022Log{Kind: k}, true
	}

	if inner, ok := parseBraced(payload, "account needs resize, +", " bytes"); ok {
		if bytes, err := strconv.ParseUint(inner, 10, 64); err == nil {
			return Token2022Log{Kind: Token2022AccountNeedsResizePlusBytesDebug, Bytes: bytes}, true
		}
	}

	if rest, ok := strings.CutPrefix(payload, "Error harvesting from "); ok {
		if a, b, found := strings.Cut(rest, ": "); found {
			if accountKey, ok := index.LookupBase58(strings.TrimSpace(a)); ok {
				return Token2022Log{Kind: Token2022ErrorHarvestingFrom, AccountKey: accountKey, Error: strings.TrimSpace(b)}, true
			}
		}
	}

	return Token2022Log{}, false
}

// TokenIndex resolves a base58-encoded pubkey to its registry id.
type TokenIndex interface {
	LookupBase58(text string) (uint32, bool)
}

// Render returns the exact canonical text for l, resolving the account key
// through store when the variant carries one.
func (l Token2022Log) Render(store KeyStore) string {
	if s, ok := token2022ErrorText[l.Kind]; ok {
		return s
	}
	switch l.Kind {
	case Token2022AccountNeedsResizePlusBytesDebug, Token2022AccountNeedsResizePlusBytesDebug2:
		return fmt.Sprintf("account needs resize, +%d bytes", l.Bytes)
	case Token2022ErrorHarvestingFrom, Token2022ErrorHarvestingFrom2, Token2022ErrorHarvestingFrom3, Token2022ErrorHarvestingFrom4:
		return fmt.Sprintf("Error harvesting from %s: %s", pubkeyText(store, l.AccountKey), l.Error)
	default:
		return ""
	}
}

func parseBraced(text, prefix, suffix string) (string, bool) {
	rest, ok := strings.CutPrefix(text, prefix)
	if !ok {
		return "", false
	}
	inner, ok := strings.CutSuffix(rest, suffix)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(inner), true
}
