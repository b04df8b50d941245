package sample

import (
	"github.com/cometbft/cometbft/crypto/secp256k1"
	"github.com/cosmos/cosmos-sdk/crypto/keys/ed25519"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AccAddress returns a sample account address
func AccAddress() string {
	pk := ed25519.GenPrivKey().PubKey()
	addr := pk.Address()
	return sdk.AccAddress(addr).String()
}

// ValAddress returns a sample validator operator address
func ValAddress() sdk.ValAddress {
	return sdk.ValAddress(secp256k1.GenPrivKey().PubKey().Address())
}

// ValAddresses returns n sample validator operator addresses
func ValAddresses(n int) []sdk.ValAddress {
	vals := make([]sdk.ValAddress, n)
	for i := range vals {
		vals[i] = ValAddress()
	}
	return vals
}
