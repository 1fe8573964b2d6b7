package ingesting

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vfg2006/merchant-analytics-api/internal/domain"
	"github.com/vfg2006/merchant-analytics-api/pkg/utils"
)

// NormalizeActivity valida uma linha bruta do CSV e a converte em um registro
// tipado, sem efeitos colaterais. Campos críticos (event_id, merchant_id,
// timestamp, product, status, channel) rejeitam a linha inteira quando
// ausentes ou inválidos, pois não podem ser defaultados; os demais recebem
// defaults em vez de rejeitar.
func NormalizeActivity(raw domain.RawActivity) (*domain.ActivityRecord, error) {
	eventID := strings.TrimSpace(raw.EventID)
	if eventID == "" {
		return nil, fmt.Errorf("%w: event_id", ErrBlankRequiredField)
	}

	merchantID := strings.TrimSpace(raw.MerchantID)
	if merchantID == "" {
		return nil, fmt.Errorf("%w: merchant_id", ErrBlankRequiredField)
	}

	if strings.TrimSpace(raw.Product) == "" {
		return nil, fmt.Errorf("%w: product", ErrBlankRequiredField)
	}

	if strings.TrimSpace(raw.Status) == "" {
		return nil, fmt.Errorf("%w: status", ErrBlankRequiredField)
	}

	if strings.TrimSpace(raw.Channel) == "" {
		return nil, fmt.Errorf("%w: channel", ErrBlankRequiredField)
	}

	timestamp, err := utils.ParseTimestamp(raw.EventTimestamp)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimestamp, raw.EventTimestamp)
	}

	// Todos os relatórios dependem de product e status válidos, então
	// valores fora do conjunto fechado descartam a linha
	product, ok := domain.ParseProduct(raw.Product)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProduct, raw.Product)
	}

	status, ok := domain.ParseStatus(raw.Status)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, raw.Status)
	}

	eventType, ok := domain.ParseEventType(raw.EventType)
	if !ok {
		eventType = domain.EventTypeUnknown
	}

	channel, ok := domain.ParseChannel(raw.Channel)
	if !ok {
		channel = domain.ChannelUnknown
	}

	tier, ok := domain.ParseMerchantTier(raw.MerchantTier)
	if !ok {
		tier = domain.TierStarter
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(raw.Amount), 64)
	if err != nil {
		amount = 0
	}

	region := strings.TrimSpace(raw.Region)
	if region == "" {
		region = "UNKNOWN"
	}

	return &domain.ActivityRecord{
		EventID:        eventID,
		MerchantID:     merchantID,
		EventTimestamp: timestamp,
		Product:        product,
		EventType:      eventType,
		Amount:         amount,
		Status:         status,
		Channel:        channel,
		Region:         region,
		MerchantTier:   tier,
	}, nil
}
