// Package seed loads catalog files into the product store at startup.
package seed

import (
	"bufio"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"larek/internal/model"

	"github.com/rs/zerolog"
)

// Loader reads one catalog file.
type Loader interface {
	// Load reads a JSON Lines catalog file, gunzipping it when the name ends in .gz.
	Load(ctx context.Context, path string) ([]model.Product, error)
}

// LoadAll loads every path concurrently and merges the results by product id.
// Products keep the position of their first appearance; a later file
// replaces the fields of an earlier one.
func LoadAll(ctx context.Context, loader Loader, paths []string, logger zerolog.Logger) ([]model.Product, error) {
	logger = logger.With().Str("component", "catalog-seed").Logger()

	type loadResult struct {
		index    int
		products []model.Product
		err      error
	}

	resultChan := make(chan loadResult, len(paths))
	var wg sync.WaitGroup

	for i, path := range paths {
		wg.Add(1)
		go func(index int, path string) {
			defer wg.Done()

			products, err := loader.Load(ctx, path)
			resultChan <- loadResult{index: index, products: products, err: err}
		}(i, path)
	}

	wg.Wait()
	close(resultChan)

	results := make([]loadResult, len(paths))
	for result := range resultChan {
		results[result.index] = result
	}

	var merged []model.Product
	position := make(map[string]int)

	for i, result := range results {
		if result.err != nil {
			logger.Error().Err(result.err).Str("file", paths[i]).Msg("failed to load catalog file")
			return nil, fmt.Errorf("failed to load catalog file %s: %w", paths[i], result.err)
		}

		for _, p := range result.products {
			if at, ok := position[p.ID]; ok {
				merged[at] = p
				continue
			}
			position[p.ID] = len(merged)
			merged = append(merged, p)
		}

		logger.Info().
			Str("file", paths[i]).
			Int("size", len(result.products)).
			Msg("catalog file loaded")
	}

	logger.Info().Int("total_products", len(merged)).Msg("catalog seed complete")

	return merged, nil
}

// decode reads products from r, one JSON object per line.
func decode(ctx context.Context, r io.Reader, name string) ([]model.Product, error) {
	if strings.HasSuffix(name, ".gz") {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader for %s: %w", name, err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var products []model.Product
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo%10_000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var p model.Product
		if err := json.Unmarshal([]byte(line), &p); err != nil {
			return nil, fmt.Errorf("%s:%d: invalid product: %w", name, lineNo, err)
		}
		if p.ID == "" {
			return nil, fmt.Errorf("%s:%d: product id is required", name, lineNo)
		}
		products = append(products, p)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading catalog file %s: %w", name, err)
	}

	return products, nil
}
