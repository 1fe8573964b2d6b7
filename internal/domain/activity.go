// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"strings"
	"time"
)

// EpochSentinel é o timestamp vazio usado por sistemas legados em registros sem data real
var EpochSentinel = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

type Product string

const (
	ProductKYC      Product = "KYC"
	ProductPayments Product = "PAYMENTS"
	ProductLending  Product = "LENDING"
	ProductSavings  Product = "SAVINGS"
	ProductPOS      Product = "POS"
)

var products = map[Product]struct{}{
	ProductKYC:      {},
	ProductPayments: {},
	ProductLending:  {},
	ProductSavings:  {},
	ProductPOS:      {},
}

type Status string

const (
	StatusSuccess Status = "SUCCESS"
	StatusFailed  Status = "FAILED"
	StatusPending Status = "PENDING"
)

var statuses = map[Status]struct{}{
	StatusSuccess: {},
	StatusFailed:  {},
	StatusPending: {},
}

type Channel string

const (
	ChannelWeb     Channel = "WEB"
	ChannelMobile  Channel = "MOBILE"
	ChannelAPI     Channel = "API"
	ChannelAgent   Channel = "AGENT"
	ChannelUnknown Channel = "UNKNOWN"
)

var channels = map[Channel]struct{}{
	ChannelWeb:     {},
	ChannelMobile:  {},
	ChannelAPI:     {},
	ChannelAgent:   {},
	ChannelUnknown: {},
}

type EventType string

const (
	EventTypeDocumentSubmitted     EventType = "DOCUMENT_SUBMITTED"
	EventTypeVerificationCompleted EventType = "VERIFICATION_COMPLETED"
	EventTypeTierUpgrade           EventType = "TIER_UPGRADE"
	EventTypeTransaction           EventType = "TRANSACTION"
	EventTypeUnknown               EventType = "UNKNOWN"
)

var eventTypes = map[EventType]struct{}{
	EventTypeDocumentSubmitted:     {},
	EventTypeVerificationCompleted: {},
	EventTypeTierUpgrade:           {},
	EventTypeTransaction:           {},
	EventTypeUnknown:               {},
}

type MerchantTier string

const (
	TierStarter    MerchantTier = "STARTER"
	TierGrowth     MerchantTier = "GROWTH"
	TierScale      MerchantTier = "SCALE"
	TierEnterprise MerchantTier = "ENTERPRISE"
)

var merchantTiers = map[MerchantTier]struct{}{
	TierStarter:    {},
	TierGrowth:     {},
	TierScale:      {},
	TierEnterprise: {},
}

// ParseProduct normaliza o texto bruto (trim + upper-case) e verifica se pertence ao conjunto fechado.
// Retorna false para valores não reconhecidos ou vazios; quem chama decide entre descartar e aplicar default.
func ParseProduct(raw string) (Product, bool) {
	p := Product(normalize(raw))
	_, ok := products[p]
	return p, ok
}

func ParseStatus(raw string) (Status, bool) {
	s := Status(normalize(raw))
	_, ok := statuses[s]
	return s, ok
}

func ParseChannel(raw string) (Channel, bool) {
	c := Channel(normalize(raw))
	_, ok := channels[c]
	return c, ok
}

func ParseEventType(raw string) (EventType, bool) {
	e := EventType(normalize(raw))
	_, ok := eventTypes[e]
	return e, ok
}

func ParseMerchantTier(raw string) (MerchantTier, bool) {
	t := MerchantTier(normalize(raw))
	_, ok := merchantTiers[t]
	return t, ok
}

func normalize(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// RawActivity é uma linha do CSV antes de qualquer validação, todos os campos como texto
type RawActivity struct {
	EventID        string
	MerchantID     string
	EventTimestamp string
	Product        string
	EventType      string
	Amount         string
	Status         string
	Channel        string
	Region         string
	MerchantTier   string
}

// ActivityRecord é um evento de merchant validado, a unidade de armazenamento.
// Registros nunca são atualizados nem removidos depois de criados; o event_id é a chave natural.
type ActivityRecord struct {
	EventID        string       `json:"event_id"`
	MerchantID     string       `json:"merchant_id"`
	EventTimestamp time.Time    `json:"event_timestamp"`
	Product        Product      `json:"product"`
	EventType      EventType    `json:"event_type"`
	Amount         float64      `json:"amount"`
	Status         Status       `json:"status"`
	Channel        Channel      `json:"channel"`
	Region         string       `json:"region"`
	MerchantTier   MerchantTier `json:"merchant_tier"`
}

// IngestionSummary é o resultado agregado de uma rodada de ingestão
type IngestionSummary struct {
	FilesProcessed  int `json:"files_processed"`
	RecordsIngested int `json:"records_ingested"`
	RecordsSkipped  int `json:"records_skipped"`
}
