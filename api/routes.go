package api

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humamux"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/atm-server/internal/handlers/v1/account"
	"github.com/carson-networks/atm-server/internal/handlers/v1/session"
	"github.com/carson-networks/atm-server/internal/handlers/v1/status"
	"github.com/carson-networks/atm-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/atm-server/internal/logging"
	"github.com/carson-networks/atm-server/internal/service"
)

// Rest is the read-only HTTP view of the terminal.
type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Operator service.IProcessor
	Service  *service.Service
	Gatherer prometheus.Gatherer

	mu     sync.Mutex
	server *http.Server
}

// Router builds the mux router with every route registered.
func (r *Rest) Router() *mux.Router {
	router := mux.NewRouter()

	statusHandler := status.NewHandler(r.Operator)
	router.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))
	router.Handle("/metrics", logging.Middleware(r.Logger)(promhttp.HandlerFor(r.Gatherer, promhttp.HandlerOpts{})))

	api := humamux.New(router, huma.DefaultConfig("ATM Server", "1.0.0"))
	api.UseMiddleware(logDataMiddleware(r.Logger))

	account.NewListAccountsHandler(r.Service.Account).Register(api)
	account.NewGetAccountHandler(r.Service.Account).Register(api)
	session.NewGetSessionHandler(r.Service.Account).Register(api)
	transaction.NewListPendingHandler(r.Service.Transaction).Register(api)

	return router
}

// logDataMiddleware gives each huma operation its own LogData and logs it on completion.
func logDataMiddleware(log *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		logData := logging.NewLogData(log)
		name := ctx.Operation().OperationID
		logData.AddData("operation", name)

		endTimer := logData.AddTiming("durationMs")
		next(huma.WithContext(ctx, logging.WithLogData(ctx.Context(), logData)))
		endTimer()

		logData.AddData("status", ctx.Status())
		logData.Log().Infof("Handler.%v.Complete", name)
	}
}

// Serve blocks until the server stops. It returns nil after Shutdown.
func (r *Rest) Serve() error {
	server := &http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Router(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.mu.Lock()
	r.server = server
	r.mu.Unlock()

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
	return nil
}

func (r *Rest) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	server := r.server
	r.mu.Unlock()
	if server == nil {
		return nil
	}
	return server.Shutdown(ctx)
}
