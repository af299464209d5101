package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/handlers/v1/budget"
	"github.com/carson-networks/finance-server/internal/handlers/v1/goal"
	"github.com/carson-networks/finance-server/internal/handlers/v1/report"
	"github.com/carson-networks/finance-server/internal/handlers/v1/status"
	"github.com/carson-networks/finance-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/finance-server/internal/handlers/v1/user"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage"
)

// publicPaths are served without a bearer token.
var publicPaths = map[string]bool{
	"/api/auth/login": true,
	"/status":         true,
}

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
	Storage *storage.Storage
	Issuer  *auth.Issuer
}

// NewAPI builds the Huma API on a fresh mux, wires the middleware chain and
// registers every endpoint. Split from Serve so tests can exercise the full
// route table without a listener.
func (r *Rest) NewAPI() (huma.API, *http.ServeMux) {
	mux := http.NewServeMux()
	humaAPI := humago.New(mux, huma.DefaultConfig("finance-server", "1.0.0"))

	humaAPI.UseMiddleware(logging.Middleware(r.Logger))
	humaAPI.UseMiddleware(auth.Middleware(humaAPI, r.Issuer, r.Storage.Users, publicPaths))

	status.NewHandler().Register(humaAPI)

	user.NewRegisterHandler(r.Service.User, r.Issuer).Register(humaAPI)
	user.NewLoginHandler(r.Service.User, r.Issuer).Register(humaAPI)

	transaction.NewCreateTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewGetTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewUpdateTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewDeleteTransactionHandler(r.Service.Transaction).Register(humaAPI)

	budget.NewCreateBudgetHandler(r.Service.Budget).Register(humaAPI)
	budget.NewListBudgetsHandler(r.Service.Budget).Register(humaAPI)
	budget.NewUpdateBudgetHandler(r.Service.Budget).Register(humaAPI)
	budget.NewDeleteBudgetHandler(r.Service.Budget).Register(humaAPI)
	budget.NewRecommendationsHandler(r.Service.Budget).Register(humaAPI)

	goal.NewCreateGoalHandler(r.Service.Goal).Register(humaAPI)
	goal.NewContributeGoalHandler(r.Service.Goal).Register(humaAPI)
	goal.NewListGoalsHandler(r.Service.Goal).Register(humaAPI)

	report.NewGetReportHandler(r.Service.Report).Register(humaAPI)

	return humaAPI, mux
}

func (r *Rest) Serve() {
	_, mux := r.NewAPI()

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
