// Package dashboard composes the multi-fetch screens: independent upstream
// calls are issued in parallel and joined before the combined view renders.
package dashboard

import (
	"context"
	"sync"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/angelmondragon/storegate/internal/catalog"
	"github.com/angelmondragon/storegate/internal/stats"
	"github.com/angelmondragon/storegate/pkg/logger"
	"github.com/angelmondragon/storegate/pkg/pagination"
)

// Overview is the storefront landing data: a product page joined with the
// category strip.
type Overview struct {
	Products   pagination.Page[catalog.Product]  `json:"products"`
	Categories pagination.Page[catalog.Category] `json:"categories"`
}

// Report is the admin reporting screen: both aggregate sets side by side.
type Report struct {
	Sales    []stats.SalesStat   `json:"sales"`
	Products []stats.ProductStat `json:"products"`
}

// Service joins the typed clients the combined screens draw from.
type Service struct {
	catalog *catalog.Client
	stats   *stats.Client
	logg    *logger.Logger
}

func NewService(catalogClient *catalog.Client, statsClient *stats.Client, logg *logger.Logger) *Service {
	return &Service{catalog: catalogClient, stats: statsClient, logg: logg}
}

// Overview fetches products and categories in parallel. The first failure
// cancels the sibling fetch; a landing page with half its data is not worth
// rendering.
func (s *Service) Overview(ctx context.Context, token string, filter catalog.ProductFilter, params pagination.Params) (Overview, error) {
	var out Overview

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		page, err := s.catalog.ListProducts(ctx, token, filter, params)
		if err != nil {
			return err
		}
		out.Products = page
		return nil
	})
	g.Go(func() error {
		page, err := s.catalog.ListCategories(ctx, token, pagination.Params{Page: 1, Limit: pagination.MaxLimit})
		if err != nil {
			return err
		}
		out.Categories = page
		return nil
	})

	if err := g.Wait(); err != nil {
		return Overview{}, err
	}
	return out, nil
}

// Report fetches both aggregate sets in parallel. Unlike Overview, both
// fetches run to completion so the caller sees every failure, not just the
// first.
func (s *Service) Report(ctx context.Context, token string) (Report, error) {
	var (
		out      Report
		salesErr error
		prodErr  error
		wg       sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		out.Sales, salesErr = s.stats.Sales(ctx, token)
	}()
	go func() {
		defer wg.Done()
		out.Products, prodErr = s.stats.Products(ctx, token)
	}()
	wg.Wait()

	if err := multierr.Combine(salesErr, prodErr); err != nil {
		return Report{}, err
	}
	return out, nil
}
