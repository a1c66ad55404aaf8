package service

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/pkg/errors"
)

const orderNumberAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// newOrderNumber builds a customer-facing reference: brand prefix, UTC
// date, five random base36 characters. A same-day collision is rejected
// by the unique index on order_number and fails the placement.
func newOrderNumber(now time.Time) (string, error) {
	buf := make([]byte, 5)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "reading order number entropy")
	}
	for i, b := range buf {
		buf[i] = orderNumberAlphabet[int(b)%len(orderNumberAlphabet)]
	}
	return fmt.Sprintf("AYZ-%s-%s", now.UTC().Format("060102"), string(buf)), nil
}
