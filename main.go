package main

import (
	"github.com/alecthomas/kong"
	_ "github.com/joho/godotenv/autoload"

	"droscher.com/DrinkCatalog/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("Drink Catalog"), kong.Description("Drink Catalog serves a searchable drink catalog with a daily featured drink."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
