//go:build ignore

package main

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"larek/internal/model"
)

// Writes two seed files:
//   data/catalog/base.jsonl.gz  the main catalog, gzipped
//   data/catalog/extra.jsonl    an override that reprices one item and adds one
//
// Run with: go run scripts/generate_sample_catalog.go
// Then start the API with SEED_FILES=data/catalog/base.jsonl.gz,data/catalog/extra.jsonl
func main() {
	dataDir := "data/catalog"

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	files := map[string][]model.Product{
		"base.jsonl.gz": {
			{ID: "854cef69-976d-4c2a-a18c-2aa45046c390", Title: "+1 час в сутках", Category: "софт-скил", Image: "/5_Dots.svg", Price: model.Price(750),
				Description: "Если планируете решать задачи в тренажёре, берите два."},
			{ID: "c101ab44-ed99-4a54-990d-47aa2bb4e7d9", Title: "HEX-леденец", Category: "другое", Image: "/Shell.svg", Price: model.Price(1450),
				Description: "Лизните этот леденец, чтобы мгновенно запоминать и узнавать любой цветовой код CSS."},
			{ID: "b06cde61-912f-4663-9751-09956c0eed67", Title: "Мамка-таймер", Category: "софт-скил", Image: "/Asterisk_2.svg",
				Description: "Будет стоять над душой и не давать прокрастинировать."},
			{ID: "412bcf81-7e75-4e70-bdb9-d3c73c9803b7", Title: "Фреймворк куки судьбы", Category: "дополнительное", Image: "/Soft_Flower.svg", Price: model.Price(2500),
				Description: "Откройте эти куки, чтобы узнать, какой фреймворк вы должны изучить дальше."},
			{ID: "1c521d84-c48d-48fa-8cfb-9d911fa515fd", Title: "Кнопка «Замьютить кота»", Category: "кнопка", Image: "/mute-cat.svg", Price: model.Price(2000),
				Description: "Если орёт кот, нажмите кнопку."},
			{ID: "f3867296-45c7-4603-bd34-29cea3a061d5", Title: "БЭМ-пилюлька", Category: "другое", Image: "/Pill.svg", Price: model.Price(1500),
				Description: "Чтобы научиться правильно называть модификаторы, без этого не обойтись."},
			{ID: "54df7dcb-1213-4b3c-ab61-92ed5f845535", Title: "Портативный телепорт", Category: "другое", Image: "/Polygon.svg", Price: model.Price(100000),
				Description: "Измените локацию для поиска работы."},
			{ID: "90973ae5-285c-4b6f-a6d0-65d1d760b102", Title: "Микровселенная в кармане", Category: "другое", Image: "/Butterfly.svg", Price: model.Price(36000),
				Description: "Даст время для изучения React, ООП и бэкенда"},
			{ID: "d6b5c65d-a5e3-4c70-a4c2-b6b0e46c8826", Title: "Бэкенд-антистресс", Category: "другое", Image: "/Asterisk.svg", Price: model.Price(1000),
				Description: "Сжимайте мячик, чтобы снизить стресс от тем по бэкенду."},
		},
		"extra.jsonl": {
			{ID: "c101ab44-ed99-4a54-990d-47aa2bb4e7d9", Title: "HEX-леденец", Category: "другое", Image: "/Shell.svg", Price: model.Price(1200),
				Description: "Лизните этот леденец, чтобы мгновенно запоминать и узнавать любой цветовой код CSS."},
			{ID: "6a834fb8-350a-440c-ab55-d0e9b959b6e3", Title: "Шапка-ушанка «Как в Одессе»", Category: "хард-скил", Image: "/Hat.svg", Price: model.Price(2900),
				Description: "Защищает от холода, троллинга и плохих код-ревью."},
		},
	}

	for filename, products := range files {
		path := filepath.Join(dataDir, filename)
		if err := writeFile(path, products); err != nil {
			log.Fatalf("Failed to write %s: %v", path, err)
		}
		fmt.Printf("Created %s with %d products\n", path, len(products))
	}
}

func writeFile(path string, products []model.Product) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var w io.Writer = file
	if strings.HasSuffix(path, ".gz") {
		gzipWriter := gzip.NewWriter(file)
		defer gzipWriter.Close()
		w = gzipWriter
	}

	enc := json.NewEncoder(w)
	for _, p := range products {
		if err := enc.Encode(p); err != nil {
			return err
		}
	}
	return nil
}
