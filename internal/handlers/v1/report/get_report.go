package report

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/finance"
	"github.com/carson-networks/finance-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

// MonthlyTotal is one point of the spending trend series.
type MonthlyTotal struct {
	Year       int    `json:"year" doc:"Calendar year"`
	Month      int    `json:"month" doc:"Calendar month, 1-12"`
	TotalSpent string `json:"totalSpent" doc:"Summed amount for the month"`
}

// CategoryTotal is one row of the expense breakdown.
type CategoryTotal struct {
	Category   string `json:"category" doc:"Category label"`
	TotalSpent string `json:"totalSpent" doc:"Summed expenses for the category"`
}

// ReportResponseBody is the response body for the report endpoint.
type ReportResponseBody struct {
	TotalIncome       string          `json:"totalIncome" doc:"Sum of matching income"`
	TotalExpenses     string          `json:"totalExpenses" doc:"Sum of matching expenses"`
	NetSavings        string          `json:"netSavings" doc:"totalIncome minus totalExpenses"`
	SpendingTrends    []MonthlyTotal  `json:"spendingTrends" doc:"Per-month totals over all matching transactions, ascending"`
	CategoryBreakdown []CategoryTotal `json:"categoryBreakdown" doc:"Expense totals per category, descending"`
}

// GetReportInput is the Huma input for the report endpoint.
type GetReportInput struct {
	StartDate string `query:"startDate" doc:"RFC3339 lower bound on the occurrence date"`
	EndDate   string `query:"endDate" doc:"RFC3339 upper bound on the occurrence date"`
	Category  string `query:"category" doc:"Restrict to one category"`
	Tags      string `query:"tags" doc:"Comma-separated tags, any-of semantics"`
}

// GetReportOutput is the Huma output for the report endpoint.
type GetReportOutput struct {
	Body ReportResponseBody
}

// reportGetter is the interface for assembling reports.
type reportGetter interface {
	Get(ctx context.Context, callerID uuid.UUID, filter service.ReportFilter) (*finance.Report, error)
}

// GetReportHandler handles GET /api/reports.
type GetReportHandler struct {
	ReportService reportGetter
}

// NewGetReportHandler creates a new GetReportHandler.
func NewGetReportHandler(svc reportGetter) *GetReportHandler {
	return &GetReportHandler{ReportService: svc}
}

// Register registers the report endpoint with the Huma API.
func (h *GetReportHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-report",
		Method:      http.MethodGet,
		Path:        "/api/reports",
		Summary:     "Get report",
		Description: "Aggregates the caller's matching transactions into totals, a monthly trend series and an expense breakdown.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

// parseReportInput parses the optional query filters.
func parseReportInput(input *GetReportInput) (service.ReportFilter, error) {
	var filter service.ReportFilter

	if input.StartDate != "" {
		from, err := time.Parse(time.RFC3339, input.StartDate)
		if err != nil {
			return filter, huma.NewError(http.StatusBadRequest, "invalid startDate", err)
		}
		filter.From = &from
	}
	if input.EndDate != "" {
		to, err := time.Parse(time.RFC3339, input.EndDate)
		if err != nil {
			return filter, huma.NewError(http.StatusBadRequest, "invalid endDate", err)
		}
		filter.To = &to
	}
	if input.Category != "" {
		category := input.Category
		filter.Category = &category
	}
	if input.Tags != "" {
		for _, tag := range strings.Split(input.Tags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				filter.Tags = append(filter.Tags, tag)
			}
		}
	}

	return filter, nil
}

func (h *GetReportHandler) handle(ctx context.Context, input *GetReportInput) (*GetReportOutput, error) {
	caller := auth.IdentityFromContext(ctx)
	if caller == nil {
		return nil, huma.NewError(http.StatusUnauthorized, "Not authorized, no token")
	}

	filter, err := parseReportInput(input)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("reportMs")
	}
	report, err := h.ReportService.Get(ctx, caller.ID, filter)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.FromService(err, "failed to build report")
	}

	resp := ReportResponseBody{
		TotalIncome:       report.TotalIncome.String(),
		TotalExpenses:     report.TotalExpenses.String(),
		NetSavings:        report.NetSavings.String(),
		SpendingTrends:    make([]MonthlyTotal, len(report.SpendingTrends)),
		CategoryBreakdown: make([]CategoryTotal, len(report.CategoryBreakdown)),
	}
	for i, trend := range report.SpendingTrends {
		resp.SpendingTrends[i] = MonthlyTotal{
			Year:       trend.Year,
			Month:      trend.Month,
			TotalSpent: trend.TotalSpent.String(),
		}
	}
	for i, row := range report.CategoryBreakdown {
		resp.CategoryBreakdown[i] = CategoryTotal{
			Category:   row.Category,
			TotalSpent: row.TotalSpent.String(),
		}
	}

	return &GetReportOutput{Body: resp}, nil
}
