package integrations

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"droscher.com/DrinkCatalog/configs"
	"droscher.com/DrinkCatalog/pkg/integrations/untappd-web"
	"droscher.com/DrinkCatalog/pkg/model"
)

var ErrUnknownIntegration = errors.New("unknown integration")

// Integration searches an external catalog for drinks.
type Integration interface {
	FindDrinks(query string) ([]model.ImportedDrink, error)
}

func GetIntegration(name string, conf configs.Integrations, logger *zap.Logger) (Integration, error) {
	if name == untappdweb.IntegrationName {
		return untappdweb.NewUntappedWebIntegration(logger.With(zap.String("integration", name)), conf.UntappdURL)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownIntegration, name)
}
