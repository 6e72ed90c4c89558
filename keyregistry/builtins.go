package keyregistry

import "github.com/gagliardetto/solana-go"

// Builtins returns the fixed set of keys guaranteed to be present in every
// epoch's registry, regardless of whether the counting pass observed them.
// Position 0 (after Finalize's sort) is reserved for the first of these
// that is actually absent from the counted set.
func Builtins() []Key {
	ids := []solana.PublicKey{
		solana.MustPublicKeyFromBase58("ComputeBudget111111111111111111111111111111"),
		solana.SystemProgramID,
		solana.TokenProgramID,
		solana.SPLAssociatedTokenAccountProgramID,
		solana.MemoProgramID,
	}
	out := make([]Key, len(ids))
	for i, id := range ids {
		out[i] = Key(id)
	}
	return out
}
