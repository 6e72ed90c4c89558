// Package programlogs holds one file per on-chain program whose log lines
// the classifier recognizes: a closed vocabulary of instruction names and
// error strings, each parsed to a small Kind-tagged struct and rendered back
// to its exact canonical text.
package programlogs

import "strings"

// TokenSTRID is the SPL Token program id.
const TokenSTRID = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"

type TokenKind uint8

const (
	TokenErrorNotRentExempt TokenKind = iota
	TokenErrorInsufficientFunds
	TokenErrorInvalidMint
	TokenErrorMintMismatch
	TokenErrorOwnerMismatch
	TokenErrorFixedSupply
	TokenErrorAlreadyInUse
	TokenErrorInvalidNumberOfProvidedSigners
	TokenErrorInvalidNumberOfRequiredSigners
	TokenErrorUninitializedState
	TokenErrorNativeNotSupported
	TokenErrorNonNativeHasBalance
	TokenErrorInvalidInstruction
	TokenErrorInvalidState
	TokenErrorOverflow
	TokenErrorAuthorityTypeNotSupported
	TokenErrorMintCannotFreeze
	TokenErrorAccountFrozen
	TokenErrorMintDecimalsMismatch
	TokenErrorNonNativeNotSupported
	TokenPleaseUpgrade
	TokenGetAccountDataSize
	TokenInstructionBatch
	TokenInstructionInitializeMint
	TokenInstructionInitializeMint2
	TokenInstructionInitializeAccount
	TokenInstructionInitializeAccount2
	TokenInstructionInitializeAccount3
	TokenInstructionInitializeMultisig
	TokenInstructionInitializeMultisig2
	TokenInstructionInitializeImmutableOwner
	TokenInstructionTransfer
	TokenInstructionTransferChecked
	TokenInstructionApprove
	TokenInstructionRevoke
	TokenInstructionSetAuthority
	TokenInstructionMintTo
	TokenInstructionMintToChecked
	TokenInstructionBurn
	TokenInstructionBurnChecked
	TokenInstructionCloseAccount
	TokenInstructionFreezeAccount
	TokenInstructionThawAccount
	TokenInstructionSyncNative
	TokenInstructionAmountToUiAmount
	TokenInstructionUiAmountToAmount
	TokenInstructionWithdrawExcessLamports
	TokenInstructionUnwrapLamports
)

// TokenLog is a parsed SPL Token program log line.
type TokenLog struct {
	Kind TokenKind
}

var tokenErrorText = map[TokenKind]string{
	TokenErrorNotRentExempt:                  "Error: Lamport balance below rent-exempt threshold",
	TokenErrorInsufficientFunds:               "Error: insufficient funds",
	TokenErrorInvalidMint:                     "Error: Invalid Mint",
	TokenErrorMintMismatch:                    "Error: Account not associated with this Mint",
	TokenErrorOwnerMismatch:                   "Error: owner does not match",
	TokenErrorFixedSupply:                     "Error: the total supply of this token is fixed",
	TokenErrorAlreadyInUse:                    "Error: account or token already in use",
	TokenErrorInvalidNumberOfProvidedSigners:  "Error: Invalid number of provided signers",
	TokenErrorInvalidNumberOfRequiredSigners:  "Error: Invalid number of required signers",
	TokenErrorUninitializedState:              "Error: State is uninitialized",
	TokenErrorNativeNotSupported:              "Error: Instruction does not support native tokens",
	TokenErrorNonNativeHasBalance:              "Error: Non-native account can only be closed if its balance is zero",
	TokenErrorInvalidInstruction:              "Error: Invalid instruction",
	TokenErrorInvalidState:                    "Error: Invalid account state for operation",
	TokenErrorOverflow:                        "Error: Operation overflowed",
	TokenErrorAuthorityTypeNotSupported:       "Error: Account does not support specified authority type",
	TokenErrorMintCannotFreeze:                "Error: This token mint cannot freeze accounts",
	TokenErrorAccountFrozen:                   "Error: Account is frozen",
	TokenErrorMintDecimalsMismatch:            "Error: decimals different from the Mint decimals",
	TokenErrorNonNativeNotSupported:           "Error: Instruction does not support non-native tokens",
}

var tokenInstructionName = map[TokenKind]string{
	TokenGetAccountDataSize:                   "GetAccountDataSize",
	TokenInstructionBatch:                     "Batch",
	TokenInstructionInitializeMint:            "InitializeMint",
	TokenInstructionInitializeMint2:           "InitializeMint2",
	TokenInstructionInitializeAccount:         "InitializeAccount",
	TokenInstructionInitializeAccount2:        "InitializeAccount2",
	TokenInstructionInitializeAccount3:        "InitializeAccount3",
	TokenInstructionInitializeMultisig:        "InitializeMultisig",
	TokenInstructionInitializeMultisig2:       "InitializeMultisig2",
	TokenInstructionInitializeImmutableOwner:  "InitializeImmutableOwner",
	TokenInstructionAmountToUiAmount:          "AmountToUiAmount",
	TokenInstructionUiAmountToAmount:          "UiAmountToAmount",
	TokenInstructionTransfer:                  "Transfer",
	TokenInstructionTransferChecked:           "TransferChecked",
	TokenInstructionApprove:                   "Approve",
	TokenInstructionRevoke:                    "Revoke",
	TokenInstructionSetAuthority:              "SetAuthority",
	TokenInstructionMintTo:                    "MintTo",
	TokenInstructionMintToChecked:             "MintToChecked",
	TokenInstructionBurn:                      "Burn",
	TokenInstructionBurnChecked:               "BurnChecked",
	TokenInstructionCloseAccount:              "CloseAccount",
	TokenInstructionFreezeAccount:             "FreezeAccount",
	TokenInstructionThawAccount:               "ThawAccount",
	TokenInstructionSyncNative:                "SyncNative",
	TokenInstructionWithdrawExcessLamports:    "WithdrawExcessLamports",
	TokenInstructionUnwrapLamports:            "UnwrapLamports",
}

var tokenTextToKind map[string]TokenKind
var tokenNameToKind map[string]TokenKind

func init() {
	tokenTextToKind = make(map[string]TokenKind, len(tokenErrorText))
	for k, v := range tokenErrorText {
		tokenTextToKind[v] = k
	}
	tokenNameToKind = make(map[string]TokenKind, len(tokenInstructionName))
	for k, v := range tokenInstructionName {
		tokenNameToKind[v] = k
	}
}

const tokenPleaseUpgradeText = "Please upgrade to SPL Token 2022 for immutable owner support"

// ParseTokenLog recognizes a canonical SPL Token log payload (the text
// after "Program log: "). ok is false for anything outside the closed
// vocabulary.
func ParseTokenLog(text string) (TokenLog, bool) {
	if k, ok := tokenTextToKind[text]; ok {
		return TokenLog{Kind: k}, true
	}
	if text == tokenPleaseUpgradeText {
		return TokenLog{Kind: TokenPleaseUpgrade}, true
	}
	name, ok := strings.CutPrefix(text, "Instruction: ")
	if !ok {
		return TokenLog{}, false
	}
	name = strings.TrimSpace(name)
	if k, ok := tokenNameToKind[name]; ok {
		return TokenLog{Kind: k}, true
	}
	return TokenLog{}, false
}

// Render returns the exact canonical text for l.
func (l TokenLog) Render() string {
	if s, ok := tokenErrorText[l.Kind]; ok {
		return s
	}
	if l.Kind == TokenPleaseUpgrade {
		return tokenPleaseUpgradeText
	}
	return "Instruction: " + tokenInstructionName[l.Kind]
}
