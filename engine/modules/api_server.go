package modules

import (
	"context"
	"net/http"
	"time"

	"github.com/Luismorlan/choirmux/engine"
	Logger "github.com/Luismorlan/choirmux/utils/log"
	"github.com/pkg/errors"
)

const apiShutdownTimeout = 5 * time.Second

type ApiServerConfig struct {
	Name string
	Addr string
}

// ApiServer serves the local HTTP API for the lifetime of the engine.
type ApiServer struct {
	engine.Module

	Config ApiServerConfig

	server *http.Server
}

func NewApiServer(config ApiServerConfig, handler http.Handler) *ApiServer {
	return &ApiServer{
		Config: config,
		server: &http.Server{Addr: config.Addr, Handler: handler},
	}
}

func (a *ApiServer) RunModule(ctx context.Context) error {
	Logger.Log.Infof("api server listening on %s", a.Config.Addr)
	err := a.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *ApiServer) Name() string {
	return a.Config.Name
}

// Shutdown stops accepting connections and waits for in flight requests.
// Open websocket streams are ended by the bus closing.
func (a *ApiServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), apiShutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(ctx); err != nil {
		Logger.Log.WithError(err).Errorln("fail to shut down api server")
	}
}
