package server

import (
	"context"
	"errors"

	"github.com/bufbuild/connect-go"
	"go.uber.org/zap"

	"droscher.com/DrinkCatalog/pkg/auth"
	"droscher.com/DrinkCatalog/pkg/featured"
	"droscher.com/DrinkCatalog/pkg/model"
	"droscher.com/DrinkCatalog/pkg/repository"
)

var (
	ErrInvalidInput = errors.New("bad request")
	ErrAdminOnly    = errors.New("only administrators can change the catalog")
)

// toConnectError gives err the connect code matching its failure class.
func toConnectError(logger *zap.Logger, operation string, err error) error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return err
	}

	switch {
	case errors.Is(err, repository.ErrDrinkNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, model.ErrValidation), errors.Is(err, ErrInvalidInput):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, repository.ErrIntegrity), errors.Is(err, featured.ErrEmptyCatalog):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	}

	logger.Error("request failed", zap.String("operation", operation), zap.Error(err))

	return connect.NewError(connect.CodeInternal, errors.New(operation+" failed"))
}

func requireAdmin(ctx context.Context) (*model.User, error) {
	user, err := auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	if !user.IsAdmin {
		return nil, connect.NewError(connect.CodePermissionDenied, ErrAdminOnly)
	}

	return user, nil
}
