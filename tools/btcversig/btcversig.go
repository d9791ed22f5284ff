// This tool is able to verify whether a message was signed with the given
// bitcoin or litecoin address.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/btcsuite/btcd/chaincfg"

	"github.com/piotrnar/btcversig/lib/btc"
	"github.com/piotrnar/btcversig/lib/ltc"
)

var (
	addr = flag.String("a", "", "the address that supposedly signed the message (required)")
	sign = flag.String("s", "", "base64 encoded signature of the message (required)")
	mess = flag.String("m", "", "the message (optional)")
	mfil = flag.String("f", "", "the filename containing a signed message (optional)")
	unix = flag.Bool("u", false, "remove all \\r characters from the message (optional)")
	help = flag.Bool("h", false, "print this help")
	verb = flag.Bool("v", false, "verbose mode")

	litecoin = flag.Bool("ltc", false, "litecoin mode")
)

func main() {
	var msg []byte

	flag.Parse()

	if *help || *addr == "" || *sign == "" {
		flag.PrintDefaults()
		return
	}

	ad, net, er := btc.DecodeAddr(*addr,
		&chaincfg.MainNetParams, &chaincfg.TestNet3Params,
		&chaincfg.RegressionNetParams, &ltc.MainNetParams)
	if er != nil {
		println("Address:", er.Error())
		flag.PrintDefaults()
		return
	}
	if !*litecoin && net == &ltc.MainNetParams {
		*litecoin = true
	}
	if *verb && *litecoin {
		fmt.Println("Litecoin mode")
	}

	if *mess != "" {
		msg = []byte(*mess)
	} else if *mfil != "" {
		msg, er = os.ReadFile(*mfil)
		if er != nil {
			println(er.Error())
			return
		}
	} else {
		if *verb {
			fmt.Println("Enter the message:")
		}
		msg, _ = io.ReadAll(os.Stdin)
	}

	if *unix {
		if *verb {
			fmt.Println("Enforcing Unix text format")
		}
		msg = bytes.ReplaceAll(msg, []byte{'\r'}, nil)
	}

	hash := make([]byte, 32)
	if *litecoin {
		ltc.HashFromMessage(msg, hash)
	} else {
		btc.HashFromMessage(msg, hash)
	}

	ok, er := btc.VerifyMessageHash(ad, net, hash, *sign)
	if er != nil {
		println("Verify:", er.Error())
		os.Exit(1)
	}

	if !ok {
		fmt.Println("BAD signature for", ad.EncodeAddress())
		if bytes.IndexByte(msg, '\r') != -1 {
			fmt.Println("You have CR chars in the message. Try to verify with -u switch.")
		}
		os.Exit(1)
	}
	fmt.Println("Signature OK")
}
