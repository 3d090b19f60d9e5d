package engine

import (
	"context"
	"time"

	Logger "github.com/Luismorlan/choirmux/utils/log"
)

// GracefulRetryDelay is how long a failed module waits before restarting.
var GracefulRetryDelay = 3 * time.Second

// RunModuleWithGracefulRestart reruns module after a short delay whenever it
// exits with an error, until ctx is done.
func RunModuleWithGracefulRestart(ctx context.Context, module Module) {
	for {
		err := module.RunModule(ctx)
		if err == nil {
			return
		}
		Logger.Log.WithError(err).Errorf("module %s exited with error, retry in %s", module.Name(), GracefulRetryDelay)

		select {
		case <-ctx.Done():
			return
		case <-time.After(GracefulRetryDelay):
		}
	}
}

type Module interface {
	// RunModule contains the customized logic of the module. It takes in a
	// context object by which its lifecycle is managed. Return error if
	// encountered any error during execution.
	RunModule(ctx context.Context) error

	// Return name of the Module. Uniquely identifies the module instance.
	Name() string

	// Shutdown releases whatever RunModule holds. Called once after the root
	// context is cancelled.
	Shutdown()
}
