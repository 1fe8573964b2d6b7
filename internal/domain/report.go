package domain

import (
	"bytes"
	"strconv"
)

type TopMerchant struct {
	MerchantID  string  `json:"merchant_id"`
	TotalVolume float64 `json:"total_volume"`
}

type KycFunnel struct {
	DocumentsSubmitted     int `json:"documents_submitted"`
	VerificationsCompleted int `json:"verifications_completed"`
	TierUpgrades           int `json:"tier_upgrades"`
}

type ProductFailureRate struct {
	Product     Product `json:"product"`
	FailureRate float64 `json:"failure_rate"`
}

type CountEntry struct {
	Key   string
	Count int
}

// OrderedCounts é uma lista de associação que serializa como objeto JSON
// preservando a ordem de inserção. Mapas comuns não garantem a ordem das
// chaves na serialização, e a ordem aqui faz parte do contrato da resposta.
type OrderedCounts []CountEntry

func (oc OrderedCounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range oc {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Quote(entry.Key))
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(entry.Count))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MonthCount é uma linha da agregação de merchants ativos por mês (YYYY-MM)
type MonthCount struct {
	Month string
	Count int
}

// ProductCount é uma linha da agregação de adoção por produto
type ProductCount struct {
	Product Product
	Count   int
}

// EventTypeCount é uma linha da agregação do funil de KYC
type EventTypeCount struct {
	EventType EventType
	Count     int
}

// ProductOutcome agrega sucessos e falhas por produto
type ProductOutcome struct {
	Product Product
	Success int
	Failed  int
}
