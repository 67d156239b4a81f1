package cmd

import (
	"context"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/DrinkCatalog/configs"
	"droscher.com/DrinkCatalog/pkg/integrations"
	"droscher.com/DrinkCatalog/pkg/repository"
)

type ImportCmd struct {
	ConfigFile string `default:".DrinkCatalog.toml" help:"Path to config file" short:"c"`
	Query      string `arg:""                         help:"Search text passed to each integration"`
}

func (i *ImportCmd) Run(_ *Context) error {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(i.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	importer := integrations.NewImporter(repo, logger)

	var errs error

	for _, name := range conf.Integrations.Drinks {
		integration, err := integrations.GetIntegration(name, conf.Integrations, logger)
		if multierr.AppendInto(&errs, err) {
			continue
		}

		created, err := importer.Import(context.Background(), integration, i.Query)
		multierr.AppendInto(&errs, err)
		logger.Info("import finished", zap.String("integration", name), zap.Int("created", len(created)))
	}

	return errs
}
