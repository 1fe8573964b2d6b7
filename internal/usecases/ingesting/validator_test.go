package ingesting

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/merchant-analytics-api/internal/domain"
)

func validRow() domain.RawActivity {
	return domain.RawActivity{
		EventID:        "EVT001",
		MerchantID:     "MERCH001",
		EventTimestamp: "2024-03-15T10:30:00Z",
		Product:        "PAYMENTS",
		EventType:      "TRANSACTION",
		Amount:         "150.50",
		Status:         "SUCCESS",
		Channel:        "WEB",
		Region:         "BR-SP",
		MerchantTier:   "GROWTH",
	}
}

func TestNormalizeActivity(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*domain.RawActivity)
		wantErr  error
		validate func(t *testing.T, record *domain.ActivityRecord)
	}{
		{
			name:   "Linha completa e válida é normalizada",
			mutate: func(r *domain.RawActivity) {},
			validate: func(t *testing.T, record *domain.ActivityRecord) {
				assert.Equal(t, "EVT001", record.EventID)
				assert.Equal(t, "MERCH001", record.MerchantID)
				assert.Equal(t, domain.ProductPayments, record.Product)
				assert.Equal(t, domain.StatusSuccess, record.Status)
				assert.Equal(t, domain.ChannelWeb, record.Channel)
				assert.Equal(t, domain.EventTypeTransaction, record.EventType)
				assert.Equal(t, domain.TierGrowth, record.MerchantTier)
				assert.Equal(t, 150.50, record.Amount)
				assert.Equal(t, "BR-SP", record.Region)
				assert.Equal(t, time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC), record.EventTimestamp)
			},
		},
		{
			name:    "event_id ausente rejeita a linha",
			mutate:  func(r *domain.RawActivity) { r.EventID = "   " },
			wantErr: ErrBlankRequiredField,
		},
		{
			name:    "merchant_id ausente rejeita a linha",
			mutate:  func(r *domain.RawActivity) { r.MerchantID = "" },
			wantErr: ErrBlankRequiredField,
		},
		{
			name:    "product em branco rejeita a linha",
			mutate:  func(r *domain.RawActivity) { r.Product = "  " },
			wantErr: ErrBlankRequiredField,
		},
		{
			name:    "status em branco rejeita a linha",
			mutate:  func(r *domain.RawActivity) { r.Status = "" },
			wantErr: ErrBlankRequiredField,
		},
		{
			name:    "channel em branco rejeita a linha",
			mutate:  func(r *domain.RawActivity) { r.Channel = "" },
			wantErr: ErrBlankRequiredField,
		},
		{
			name:    "timestamp ausente rejeita a linha",
			mutate:  func(r *domain.RawActivity) { r.EventTimestamp = "" },
			wantErr: ErrInvalidTimestamp,
		},
		{
			name:    "timestamp inválido rejeita a linha",
			mutate:  func(r *domain.RawActivity) { r.EventTimestamp = "ontem de manhã" },
			wantErr: ErrInvalidTimestamp,
		},
		{
			name:    "product fora do conjunto fechado rejeita a linha",
			mutate:  func(r *domain.RawActivity) { r.Product = "CRYPTO" },
			wantErr: ErrUnknownProduct,
		},
		{
			name:    "status fora do conjunto fechado rejeita a linha",
			mutate:  func(r *domain.RawActivity) { r.Status = "MAYBE" },
			wantErr: ErrUnknownStatus,
		},
		{
			name:   "product e status são normalizados com trim e upper-case",
			mutate: func(r *domain.RawActivity) { r.Product = "  payments "; r.Status = " success " },
			validate: func(t *testing.T, record *domain.ActivityRecord) {
				assert.Equal(t, domain.ProductPayments, record.Product)
				assert.Equal(t, domain.StatusSuccess, record.Status)
			},
		},
		{
			name:   "amount ausente vira 0",
			mutate: func(r *domain.RawActivity) { r.Amount = "" },
			validate: func(t *testing.T, record *domain.ActivityRecord) {
				assert.Zero(t, record.Amount)
			},
		},
		{
			name:   "amount não numérico vira 0",
			mutate: func(r *domain.RawActivity) { r.Amount = "cem reais" },
			validate: func(t *testing.T, record *domain.ActivityRecord) {
				assert.Zero(t, record.Amount)
			},
		},
		{
			name:   "event_type desconhecido vira UNKNOWN",
			mutate: func(r *domain.RawActivity) { r.EventType = "SOMETHING_ELSE" },
			validate: func(t *testing.T, record *domain.ActivityRecord) {
				assert.Equal(t, domain.EventTypeUnknown, record.EventType)
			},
		},
		{
			name:   "channel desconhecido vira UNKNOWN",
			mutate: func(r *domain.RawActivity) { r.Channel = "CARRIER_PIGEON" },
			validate: func(t *testing.T, record *domain.ActivityRecord) {
				assert.Equal(t, domain.ChannelUnknown, record.Channel)
			},
		},
		{
			name:   "region ausente vira UNKNOWN",
			mutate: func(r *domain.RawActivity) { r.Region = "  " },
			validate: func(t *testing.T, record *domain.ActivityRecord) {
				assert.Equal(t, "UNKNOWN", record.Region)
			},
		},
		{
			name:   "merchant_tier desconhecido vira STARTER",
			mutate: func(r *domain.RawActivity) { r.MerchantTier = "PLATINUM" },
			validate: func(t *testing.T, record *domain.ActivityRecord) {
				assert.Equal(t, domain.TierStarter, record.MerchantTier)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRow()
			tt.mutate(&raw)

			record, err := NormalizeActivity(raw)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, record)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, record)
			if tt.validate != nil {
				tt.validate(t, record)
			}
		})
	}
}

func TestProperty_RequiredFieldsAlwaysRejected(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	blankGen := gen.OneConstOf("", " ", "  ", "\t")

	properties.Property("linha sem qualquer campo crítico é sempre rejeitada", prop.ForAll(
		func(fieldIdx int, blank string) bool {
			raw := validRow()
			switch fieldIdx {
			case 0:
				raw.EventID = blank
			case 1:
				raw.MerchantID = blank
			case 2:
				raw.Product = blank
			case 3:
				raw.Status = blank
			case 4:
				raw.Channel = blank
			}

			_, err := NormalizeActivity(raw)
			return err != nil
		},
		gen.IntRange(0, 4),
		blankGen,
	))

	properties.Property("product fora do conjunto fechado é sempre rejeitado", prop.ForAll(
		func(product string) bool {
			raw := validRow()
			raw.Product = product

			if _, ok := domain.ParseProduct(product); ok {
				return true // membro legítimo, fora do escopo da propriedade
			}

			_, err := NormalizeActivity(raw)
			return err != nil
		},
		gen.AlphaString(),
	))

	properties.Property("amount arbitrário nunca rejeita uma linha válida", prop.ForAll(
		func(amount string) bool {
			raw := validRow()
			raw.Amount = amount

			_, err := NormalizeActivity(raw)
			return err == nil
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
