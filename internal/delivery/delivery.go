// Package delivery defines the contract every transport entrypoint fulfils.
package delivery

import "context"

// Delivery is a serving surface of the application, started by main after
// the fx graph is built and stopped through an fx lifecycle hook.
type Delivery interface {
	Serve(ctx context.Context) error
}
