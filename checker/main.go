// Checker verifies a batch of bitcoin signed message signatures.  It reads
// lines of "<address> <base64 signature>" from stdin and reports for each
// pair whether the signature was made over the message by the owner of the
// address.  One bad line does not stop the batch.
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	logging "github.com/ipfs/go-log/v2"

	"github.com/piotrnar/btcversig/lib/btc"
	"github.com/piotrnar/btcversig/lib/ltc"
)

const defaultMessage = `Craig Steven Wright is a liar and a fraud. He doesn't have the keys used to sign this message.

The Lightning Network is a significant achievement. However, we need to continue work on improving on-chain capacity.

Unfortunately, the solution is not to just change a constant in the code or to allow powerful participants to force out others.

We are all Satoshi`

var (
	mess     = flag.String("m", defaultMessage, "the message text which is checked against the signatures")
	mfil     = flag.String("f", "", "read the message from the given file instead")
	unix     = flag.Bool("u", false, "remove all \\r characters from the message")
	verb     = flag.Bool("v", false, "print per-pair diagnostics")
	litecoin = flag.Bool("ltc", false, "only accept litecoin addresses")
)

var log = logging.Logger("checker")

func main() {
	flag.Parse()

	if *verb {
		logging.SetLogLevel("checker", "debug")
	}

	msg := []byte(*mess)
	if *mfil != "" {
		var er error
		msg, er = os.ReadFile(*mfil)
		if er != nil {
			log.Errorf("cannot read the message file: %s", er)
			os.Exit(1)
		}
	}
	if *unix {
		msg = bytes.ReplaceAll(msg, []byte{'\r'}, nil)
	}

	// The digest is computed once per run and shared, read-only, by every
	// verification.
	var btcHash, ltcHash [32]byte
	btc.HashFromMessage(msg, btcHash[:])
	ltc.HashFromMessage(msg, ltcHash[:])

	nets := []*chaincfg.Params{
		&chaincfg.MainNetParams,
		&chaincfg.TestNet3Params,
		&chaincfg.RegressionNetParams,
		&ltc.MainNetParams,
	}
	if *litecoin {
		nets = []*chaincfg.Params{&ltc.MainNetParams}
	}

	sc := bufio.NewScanner(os.Stdin)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()

		chunks := strings.Fields(line)
		if len(chunks) != 2 {
			log.Warnf("skipping line with unknown format: %s", line)
			continue
		}
		addr, sig := chunks[0], chunks[1]

		ad, net, er := btc.DecodeAddr(addr, nets...)
		if er != nil {
			log.Errorf("cannot parse %q as an address: %s", addr, er)
			continue
		}

		hash := btcHash[:]
		if net == &ltc.MainNetParams {
			log.Debugf("%s is a litecoin address", addr)
			hash = ltcHash[:]
		}

		ok, er := btc.VerifyMessageHash(ad, net, hash, sig)
		if er != nil {
			log.Errorf("cannot verify the signature for %s: %s", addr, er)
			continue
		}

		if ok {
			fmt.Println("OK -", addr)
		} else {
			fmt.Println("BAD -", addr)
		}
	}

	// Verification results never affect the exit status.  Only a broken
	// input stream does.
	if er := sc.Err(); er != nil {
		log.Errorf("reading standard input: %s", er)
		os.Exit(1)
	}
}
