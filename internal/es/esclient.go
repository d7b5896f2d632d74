package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/mkravets/ecommerce_api/internal/config"
	"github.com/mkravets/ecommerce_api/internal/models"
)

const ProductIndex = "products"

func NewClient(cfg *config.Config) (*elasticsearch.Client, error) {
	esCfg := elasticsearch.Config{
		Addresses: []string{cfg.ES_URL},
		Username:  cfg.ES_USER,
		Password:  cfg.ES_PASSWORD,
	}

	client, err := elasticsearch.NewClient(esCfg)
	if err != nil {
		return nil, fmt.Errorf("elasticsearch client: %w", err)
	}

	res, err := client.Info()
	if err != nil {
		return nil, fmt.Errorf("elasticsearch info: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("elasticsearch error response: %s: %s", res.Status(), body)
	}

	return client, nil
}

// IndexProduct upserts the product document. A nil client disables indexing.
func IndexProduct(ctx context.Context, client *elasticsearch.Client, p *models.Product) error {
	if client == nil {
		return nil
	}

	doc := map[string]any{
		"id":           p.ID,
		"product_name": p.Name,
		"price":        p.Price,
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(doc); err != nil {
		return err
	}

	res, err := client.Index(
		ProductIndex,
		&buf,
		client.Index.WithDocumentID(strconv.FormatUint(uint64(p.ID), 10)),
		client.Index.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("index product %d: %s", p.ID, res.Status())
	}
	return nil
}

func DeleteProduct(ctx context.Context, client *elasticsearch.Client, id uint) error {
	if client == nil {
		return nil
	}

	res, err := client.Delete(
		ProductIndex,
		strconv.FormatUint(uint64(id), 10),
		client.Delete.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	// 404 just means the document was never indexed.
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("delete product %d: %s", id, res.Status())
	}
	return nil
}
