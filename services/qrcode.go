package services

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(orderID string) ([]byte, error)
}

// ReviewLinkQR encodes a link to the client's review page for an order.
type ReviewLinkQR struct {
	BaseURL string
}

func (g ReviewLinkQR) Link(orderID string) string {
	return fmt.Sprintf("%s/review?order_id=%s", strings.TrimRight(g.BaseURL, "/"), url.QueryEscape(orderID))
}

func (g ReviewLinkQR) Generate(orderID string) ([]byte, error) {
	return qrcode.Encode(g.Link(orderID), qrcode.Medium, 256)
}
