package untappdweb

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/gocolly/colly/v2"
	"go.openly.dev/pointy"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/DrinkCatalog/pkg/model"
)

type DrinkJSON struct {
	Description string `json:"description"`
	Brand       struct {
		Name string `json:"name"`
	} `json:"brand"`
	Image struct {
		ContentURL string `json:"contentUrl"`
	} `json:"image"`
	Sku             uint64 `json:"sku"`
	AggregateRating struct {
		RatingValue float64 `json:"ratingValue"`
	} `json:"aggregateRating"`
}

type DrinkScraped struct {
	IDLink    string `attr:"href"          selector:"a.label"`
	Name      string `selector:".name > a"`
	BrandName string `selector:".brewery > a"`
	Style     string `selector:".style"`
	ABV       string `selector:".abv"`
}

type DrinkContent struct {
	Description string `selector:".beer-descrption-read-more"`
	ImageURL    string `attr:"src"                            selector:"a.label > img"`
	Rating      string `selector:".details .num"`
}

type scrapeResult struct {
	index int
	drink model.ImportedDrink
	err   error
}

// FindDrinks searches untappd for query and scrapes the detail page of every match.
func (u *UntappedWebIntegration) FindDrinks(query string) ([]model.ImportedDrink, error) {
	collector := colly.NewCollector(
		colly.AllowedDomains(u.baseURL.Hostname()),
		colly.UserAgent("Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:15.0) Gecko/20100101 Firefox/15.0.1"),
	)

	var (
		errs    error
		scraped []DrinkScraped
	)

	collector.OnHTML(".beer-item", func(element *colly.HTMLElement) {
		item := DrinkScraped{}

		err := element.Unmarshal(&item)
		if multierr.AppendInto(&errs, err) {
			u.logger.Error("failed to unmarshal scraped drink", zap.Error(err))

			return
		}

		u.logger.Info("successfully scraped item from results", zap.String("id", externalID(item.IDLink)), zap.String("name", item.Name))

		scraped = append(scraped, item)
	})

	collector.OnError(func(response *colly.Response, err error) {
		u.logger.Error("error while scraping search results", zap.String("url", response.Request.URL.String()), zap.Error(err))
	})

	u.logger.Info("scraping query results", zap.String("query", query))
	multierr.AppendInto(&errs, collector.Visit(u.pageURL("/search?q="+url.QueryEscape(query))))

	var wg sync.WaitGroup

	resultChan := make(chan scrapeResult, len(scraped))

	for index, item := range scraped {
		index, item := index, item

		wg.Add(1)

		go func() {
			defer wg.Done()

			resultChan <- u.getDrinkData(collector.Clone(), index, item)
		}()
	}

	wg.Wait()
	close(resultChan)

	results := make([]model.ImportedDrink, len(scraped))
	for result := range resultChan {
		results[result.index] = result.drink
		multierr.AppendInto(&errs, result.err)
	}

	u.logger.Info("finished scraping query results", zap.Int("results", len(results)), zap.Error(errs))

	return results, errs
}

func (u *UntappedWebIntegration) getDrinkData(detailCollector *colly.Collector, index int, scraped DrinkScraped) scrapeResult {
	drink := model.ImportedDrink{
		Name:           strings.TrimSpace(scraped.Name),
		BrandName:      strings.TrimSpace(scraped.BrandName),
		Style:          strings.TrimSpace(scraped.Style),
		AlcoholContent: extractABV(scraped.ABV),
		ExternalSource: pointy.String(IntegrationName),
	}

	detailCollector.OnHTML("head script[type='application/ld+json']", func(element *colly.HTMLElement) {
		var drinkJSON DrinkJSON
		if err := json.Unmarshal([]byte(element.Text), &drinkJSON); err != nil {
			u.logger.Warn("unreadable drink JSON data", zap.Error(err))

			return
		}

		drink.Description = drinkJSON.Description
		drink.ImageURL = drinkJSON.Image.ContentURL
		drink.ExternalID = pointy.Uint64(drinkJSON.Sku)
		drink.ExternalRating = pointy.Float64(drinkJSON.AggregateRating.RatingValue)

		if drink.BrandName == "" {
			drink.BrandName = drinkJSON.Brand.Name
		}
	})

	detailCollector.OnHTML(".content", func(element *colly.HTMLElement) {
		content := DrinkContent{}

		if err := element.Unmarshal(&content); err != nil {
			return
		}

		if len(drink.Description) == 0 {
			drink.Description = strings.TrimSpace(content.Description)
		}

		if len(drink.ImageURL) == 0 {
			drink.ImageURL = content.ImageURL
		}

		if drink.ExternalRating == nil {
			rating, err := strconv.ParseFloat(strings.Trim(content.Rating, "()"), 64)
			if err == nil {
				drink.ExternalRating = pointy.Float64(rating)
			}
		}
	})

	idString := externalID(scraped.IDLink)
	u.logger.Info("scraping drink page", zap.String("id", idString))

	err := detailCollector.Visit(u.pageURL("/beer/" + idString))
	if err == nil && drink.ExternalID == nil {
		if id, parseErr := strconv.ParseUint(idString, 10, 64); parseErr == nil {
			drink.ExternalID = pointy.Uint64(id)
		}
	}

	return scrapeResult{index: index, drink: drink, err: err}
}

func externalID(link string) string {
	return link[strings.LastIndex(link, "/")+1:]
}

func extractABV(abv string) *float64 {
	percent := strings.Index(abv, "%")
	if percent < 0 {
		return nil
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(abv[:percent]), 64)
	if err != nil {
		return nil
	}

	return &value
}
