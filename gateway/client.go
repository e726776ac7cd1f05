// Package gateway defines the contract between the payment lifecycle and
// the DPS gateway client. The wire protocol itself (HTTP, request signing,
// the hosted-page handshake) is the client implementation's concern and
// lives with the host application.
package gateway

import (
	"context"

	"github.com/mtaylor482/dps-payments/request"
)

// Client performs gateway calls. Both calls block until the gateway answers
// and honor context cancellation.
type Client interface {
	// DoPayment submits a server-to-server transaction and returns the
	// gateway's interpreted result.
	DoPayment(ctx context.Context, fields request.Fields) (*ResultFields, error)

	// DoHostedPayment initiates a hosted (redirect) transaction. The result
	// arrives later through the response endpoint; only the redirect handle
	// is returned here.
	DoHostedPayment(ctx context.Context, fields request.Fields) (*HostedRedirect, error)
}

// HostedRedirect is the handle returned by the hosted flow: where to send
// the payer to complete the payment.
type HostedRedirect struct {
	URL string
}
