package btc

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
)

// defaultNets are the networks tried, in order, when the caller does not
// name any.
var defaultNets = []*chaincfg.Params{
	&chaincfg.MainNetParams,
	&chaincfg.TestNet3Params,
	&chaincfg.RegressionNetParams,
}

// DecodeAddr decodes a human-readable address and tells which network it
// belongs to.  Only P2PKH, P2SH and P2WPKH addresses can carry a signed
// message, so anything else (P2WSH, taproot, raw public keys) is rejected
// with an ErrAddress error, as is a failed checksum.
func DecodeAddr(hs string, nets ...*chaincfg.Params) (btcutil.Address, *chaincfg.Params, error) {
	if len(nets) == 0 {
		nets = defaultNets
	}
	for _, net := range nets {
		ad, er := btcutil.DecodeAddress(hs, net)
		if er != nil || !ad.IsForNet(net) {
			continue
		}
		switch ad.(type) {
		case *btcutil.AddressPubKeyHash, *btcutil.AddressScriptHash,
			*btcutil.AddressWitnessPubKeyHash:
			return ad, net, nil
		}
		return nil, nil, messageError(ErrAddress, "unsupported address type: "+hs)
	}
	return nil, nil, messageError(ErrAddress, "cannot decode address: "+hs)
}

// DeriveAddr rebuilds the address the given public key would produce in the
// same encoding as the claimed address.  The key is serialized in the form
// the signature header declared; witness and P2SH-wrapped witness addresses
// only exist for compressed keys, so an uncompressed signature claiming one
// yields an ErrCompression error.
func DeriveAddr(pub *btcec.PublicKey, compressed bool, like btcutil.Address,
	net *chaincfg.Params) (btcutil.Address, error) {

	switch like.(type) {
	case *btcutil.AddressPubKeyHash:
		var pk []byte
		if compressed {
			pk = pub.SerializeCompressed()
		} else {
			pk = pub.SerializeUncompressed()
		}
		return btcutil.NewAddressPubKeyHash(btcutil.Hash160(pk), net)

	case *btcutil.AddressWitnessPubKeyHash:
		if !compressed {
			return nil, messageError(ErrCompression,
				"witness address requires a compressed key")
		}
		keyHash := btcutil.Hash160(pub.SerializeCompressed())
		return btcutil.NewAddressWitnessPubKeyHash(keyHash, net)

	case *btcutil.AddressScriptHash:
		if !compressed {
			return nil, messageError(ErrCompression,
				"P2SH-wrapped witness address requires a compressed key")
		}
		keyHash := btcutil.Hash160(pub.SerializeCompressed())
		redeem, er := txscript.NewScriptBuilder().AddOp(txscript.OP_0).
			AddData(keyHash).Script()
		if er != nil {
			return nil, er
		}
		return btcutil.NewAddressScriptHash(redeem, net)
	}

	return nil, messageError(ErrAddress, "unsupported address type")
}
