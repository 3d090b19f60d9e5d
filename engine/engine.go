package engine

import (
	"context"
	"sync"

	"github.com/Luismorlan/choirmux/stream"
	Logger "github.com/Luismorlan/choirmux/utils/log"
)

// Engine manages shared resources and execution lifecycle of each module. It
// owns the change bus every module publishes to or listens on.
type Engine struct {
	// A list of modules that will be run in this Engine. Module's lifetime is
	// bound to Engine's lifetime. Each Module will be ran in a separate routine.
	Modules []Module

	// Root this engine is running on
	ctx context.Context

	// Cancel function for root context, used for graceful shutdown
	cancel context.CancelFunc

	Bus *stream.Bus
}

func NewEngine(ms []Module, ctx context.Context, cancel context.CancelFunc, bus *stream.Bus) *Engine {
	return &Engine{
		Modules: ms,
		ctx:     ctx,
		cancel:  cancel,
		Bus:     bus,
	}
}

// Run executes all modules and blocks until every one of them returned.
func (e *Engine) Run() {
	var wg sync.WaitGroup

	for idx := range e.Modules {
		wg.Add(1)
		go func(m Module) {
			defer wg.Done()
			Logger.Log.Infof("start engine module %s", m.Name())
			RunModuleWithGracefulRestart(e.ctx, m)
			Logger.Log.Infof("module %s finished execution", m.Name())
		}(e.Modules[idx])
	}

	wg.Wait()
}

// Shutdown cancels the root context, then shuts every module down in
// parallel and finally closes the bus, which ends all open streams.
func (e *Engine) Shutdown() {
	Logger.Log.Infoln("starting graceful shutdown process")
	e.cancel()

	var wg sync.WaitGroup
	for idx := range e.Modules {
		wg.Add(1)
		go func(m Module) {
			defer wg.Done()
			m.Shutdown()
			Logger.Log.Infof("module %s shut down", m.Name())
		}(e.Modules[idx])
	}
	wg.Wait()

	if err := e.Bus.Close(); err != nil {
		Logger.Log.WithError(err).Errorln("fail to close change bus")
	}
}
