// Script para gerar arquivos de atividade de exemplo para desenvolvimento local.
// Uma fração das linhas sai propositalmente inválida para exercitar a validação.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	idLength   = 12
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

var (
	products   = []string{"KYC", "PAYMENTS", "LENDING", "SAVINGS", "POS"}
	statuses   = []string{"SUCCESS", "SUCCESS", "SUCCESS", "FAILED", "PENDING"}
	channels   = []string{"WEB", "MOBILE", "API", "AGENT"}
	eventTypes = []string{"DOCUMENT_SUBMITTED", "VERIFICATION_COMPLETED", "TIER_UPGRADE", "TRANSACTION"}
	tiers      = []string{"STARTER", "GROWTH", "SCALE", "ENTERPRISE"}

	header = []string{
		"event_id", "merchant_id", "event_timestamp", "product", "event_type",
		"amount", "status", "channel", "region", "merchant_tier",
	}
)

func generateID() string {
	id, _ := gonanoid.Generate(characters, idLength)
	return id
}

func main() {
	var (
		outDir       = flag.String("out", "data", "diretório de saída")
		rows         = flag.Int("rows", 5000, "linhas por arquivo")
		files        = flag.Int("files", 1, "quantidade de arquivos")
		merchants    = flag.Int("merchants", 200, "quantidade de merchants distintos")
		invalidShare = flag.Int("invalid-percent", 5, "percentual de linhas inválidas")
		seed         = flag.Int64("seed", 0, "seed do gerador (0 = aleatório)")
	)
	flag.Parse()

	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if *seed != 0 {
		gofakeit.Seed(*seed)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("ERRO ao criar diretório de saída: %v", err)
	}

	merchantIDs := make([]string, *merchants)
	for i := range merchantIDs {
		merchantIDs[i] = fmt.Sprintf("MERCH_%s", generateID())
	}

	startTime := time.Now()
	for i := 0; i < *files; i++ {
		day := time.Now().AddDate(0, 0, -i)
		name := fmt.Sprintf("activities_%s.csv", day.Format("20060102"))
		path := filepath.Join(*outDir, name)

		if err := writeFile(path, *rows, merchantIDs, *invalidShare); err != nil {
			log.Fatalf("ERRO ao gerar %s: %v", name, err)
		}
		log.Printf("Arquivo gerado: %s (%d linhas)", path, *rows)
	}

	log.Printf("Geração concluída em %v", time.Since(startTime))
}

func writeFile(path string, rows int, merchantIDs []string, invalidShare int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(header); err != nil {
		return err
	}

	for i := 0; i < rows; i++ {
		row := randomRow(merchantIDs)

		// Linhas inválidas exercitam a validação: ora sem campo crítico,
		// ora com enum fora do conjunto fechado
		if gofakeit.Number(1, 100) <= invalidShare {
			switch gofakeit.Number(0, 3) {
			case 0:
				row[0] = "" // event_id
			case 1:
				row[2] = "not-a-timestamp"
			case 2:
				row[3] = "CRYPTO" // produto desconhecido
			default:
				row[6] = "MAYBE" // status desconhecido
			}
		}

		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func randomRow(merchantIDs []string) []string {
	timestamp := gofakeit.DateRange(
		time.Now().AddDate(0, -6, 0),
		time.Now(),
	).UTC().Format(time.RFC3339)

	return []string{
		fmt.Sprintf("EVT_%s", generateID()),
		merchantIDs[gofakeit.Number(0, len(merchantIDs)-1)],
		timestamp,
		products[gofakeit.Number(0, len(products)-1)],
		eventTypes[gofakeit.Number(0, len(eventTypes)-1)],
		strconv.FormatFloat(gofakeit.Price(1, 5000), 'f', 2, 64),
		statuses[gofakeit.Number(0, len(statuses)-1)],
		channels[gofakeit.Number(0, len(channels)-1)],
		gofakeit.Country(),
		tiers[gofakeit.Number(0, len(tiers)-1)],
	}
}
