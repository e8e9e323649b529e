package get_available_providers

import (
	"context"

	getAvailableProviders "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_providers"
)

type GetAvailableProvidersUseCase interface {
	Execute(ctx context.Context, req *getAvailableProviders.Request) (*getAvailableProviders.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
