package btc

import (
	"bytes"
	"encoding/hex"
	"testing"
)

// testMessage is the message the well-known mainnet signature fixtures were
// made over.
const testMessage = `Craig Steven Wright is a liar and a fraud. He doesn't have the keys used to sign this message.

The Lightning Network is a significant achievement. However, we need to continue work on improving on-chain capacity.

Unfortunately, the solution is not to just change a constant in the code or to allow powerful participants to force out others.

We are all Satoshi`

func TestHashFromMessage(t *testing.T) {
	var testvcs = []struct {
		message string
		digest  string
	}{
		{
			"rel net msg",
			"9cff3da1a4f86caf3683f865232c64992b5ed002af42b321b8d8a48420680487",
		},
		{
			"test",
			"9ce428d58e8e4caf619dc6fc7b2c2c28f0561654d1f80f322c038ad5e67ff8a6",
		},
		{
			// long enough for the two-byte compact length prefix
			testMessage,
			"c4259881ceecf395c853020810dd6d5a6334ace42703f86464d3df58bac6c34e",
		},
	}

	var hash [32]byte
	for i := range testvcs {
		HashFromMessage([]byte(testvcs[i].message), hash[:])
		exp, _ := hex.DecodeString(testvcs[i].digest)
		if !bytes.Equal(hash[:], exp) {
			t.Error("wrong digest at index", i, hex.EncodeToString(hash[:]))
		}
	}
}

func TestHashFromMessageStability(t *testing.T) {
	var first, again [32]byte
	HashFromMessage([]byte(testMessage), first[:])
	for i := 0; i < 10; i++ {
		HashFromMessage([]byte(testMessage), again[:])
		if again != first {
			t.Fatal("digest changed between invocations")
		}
	}
}
