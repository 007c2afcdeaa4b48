// Package apps implements the runnable GURT applications.
package apps

import "context"

// App runs an application command.
type App interface {
	Run(ctx context.Context, args []string) error
}
