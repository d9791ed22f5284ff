package ltc

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/piotrnar/btcversig/lib/btc"
)

func TestHashFromMessage(t *testing.T) {
	var hash [32]byte
	HashFromMessage([]byte("test"), hash[:])
	exp, _ := hex.DecodeString("ed0b8383ca82bbb7d796c454aa62163d47cef48e19b9e12e0e3743f23808342e")
	if !bytes.Equal(hash[:], exp) {
		t.Error("wrong digest:", hex.EncodeToString(hash[:]))
	}
}

func TestVerifyLitecoinMessage(t *testing.T) {
	const addr = "LfP4VEtQEcmsS76Gg41H7Re5uQbivruqGR"
	const sig = "IBf1MonqyWHlrchY08pQ2rBW3cp6GpBsCBWgNpMS0apJASiWB5G9xeMjPkMl6UIgLv5Fm9/7fLDwiqXDTZn6EUA="

	// Litecoin addresses are not valid on the default bitcoin networks.
	if _, _, er := btc.DecodeAddr(addr); er == nil {
		t.Error("litecoin address decoded as bitcoin")
	}

	ad, net, er := btc.DecodeAddr(addr, &MainNetParams)
	if er != nil {
		t.Fatal(er.Error())
	}
	if net != &MainNetParams {
		t.Fatal("wrong network:", net.Name)
	}

	var hash [32]byte
	HashFromMessage([]byte("test"), hash[:])
	ok, er := btc.VerifyMessageHash(ad, net, hash[:], sig)
	if er != nil {
		t.Fatal(er.Error())
	}
	if !ok {
		t.Error("valid litecoin signature did not verify")
	}

	// The same signature over the bitcoin digest of the message must not
	// match: the magic prefix is part of what was signed.
	btc.HashFromMessage([]byte("test"), hash[:])
	ok, er = btc.VerifyMessageHash(ad, net, hash[:], sig)
	if er != nil {
		t.Fatal(er.Error())
	}
	if ok {
		t.Error("signature verified against the wrong message magic")
	}
}
