package service

import (
	"context"

	"github.com/h0pler/whs2nd-secureshoppingmall/internal/events"
	"github.com/h0pler/whs2nd-secureshoppingmall/internal/logging"
	"github.com/h0pler/whs2nd-secureshoppingmall/internal/models"
	"github.com/h0pler/whs2nd-secureshoppingmall/internal/repo"
	"github.com/h0pler/whs2nd-secureshoppingmall/internal/transport"
)

type CatalogService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
}

func (s *CatalogService) AddProduct(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "catalog.add_product")

	if err := validateStruct(req); err != nil {
		l.Warn("add_product_rejected", "status", 400, "reason", "missing required fields")
		return nil, err
	}

	prod := models.Product{
		Name:         req.Name,
		Category:     req.Category,
		Price:        req.Price,
		ThumbnailURL: req.ThumbnailURL,
	}

	created, err := s.Repo.CreateProduct(ctx, &prod)
	if err != nil {
		return nil, err
	}

	if err := s.Producer.PublishEvent(ctx, events.TopicProductEvents, created.Name, map[string]any{
		"type":      "product_created",
		"productID": created.ID,
		"name":      created.Name,
	}); err != nil {
		l.Error("event_publish_failed", "topic", events.TopicProductEvents, "error", err)
	}

	l.Info("add_product_success", "productID", created.ID)
	return created, nil
}

// ListProducts returns the whole catalog in store-native order. An
// empty catalog is an empty slice, not an error.
func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.GetProducts(ctx)
}
