package security

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

// OTP codes are drawn uniformly from [10000, 99999]. The lower bound keeps
// every code exactly five digits with no leading zero, so codes can be
// matched later by plain string equality.
const (
	otpMin  = 10000
	otpSpan = 90000
)

func OTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpSpan))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(otpMin+n.Int64(), 10), nil
}
