package tiac

import (
	"bufio"
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

func hexDecode(s string) ([]byte, error) {
	return hex.DecodeString(strings.TrimSpace(s))
}

// parseTypeAOrder extracts the "r <decimal>" line that pbc's Type-A
// parameter string always carries: r is the prime order of the embedded
// subgroup, a prime whose bit length is the subgroup size passed to
// GenerateA.
func parseTypeAOrder(paramStr string) (*big.Int, error) {
	scanner := bufio.NewScanner(strings.NewReader(paramStr))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 2 && fields[0] == "r" {
			n, ok := new(big.Int).SetString(fields[1], 10)
			if !ok {
				return nil, errors.Errorf("tiac: malformed r field %q", fields[1])
			}
			return n, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return nil, errors.New("tiac: pairing parameters have no r field")
}

// parseDecimalASCII formats x the way createDID's did derivation needs: a
// plain base-10 ASCII string, matching decimal_ascii(x) in §4.2.
func parseDecimalASCII(x *big.Int) string {
	return x.String()
}
