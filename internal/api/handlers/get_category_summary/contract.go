package get_category_summary

import (
	"context"

	getCategorySummary "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_category_summary"
)

type GetCategorySummaryUseCase interface {
	Execute(ctx context.Context, req *getCategorySummary.Request) (*getCategorySummary.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
