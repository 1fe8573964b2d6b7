// Package reporting implementa os relatórios agregados sobre os eventos de atividade
package reporting

import (
	"sort"

	"github.com/vfg2006/merchant-analytics-api/infrastructure/repository"
	"github.com/vfg2006/merchant-analytics-api/internal/domain"
	"github.com/vfg2006/merchant-analytics-api/pkg/utils"
)

type Reporter interface {
	TopMerchant() (*domain.TopMerchant, error)
	MonthlyActiveMerchants() (domain.OrderedCounts, error)
	ProductAdoption() (domain.OrderedCounts, error)
	KycFunnel() (*domain.KycFunnel, error)
	FailureRates() ([]domain.ProductFailureRate, error)
}

type Service struct {
	activityRepo repository.ActivityRepository
}

func NewService(activityRepo repository.ActivityRepository) Reporter {
	return &Service{
		activityRepo: activityRepo,
	}
}

// TopMerchant retorna o merchant com maior volume somado entre eventos SUCCESS.
// Sem nenhum evento SUCCESS armazenado, retorna ErrNoData.
func (s *Service) TopMerchant() (*domain.TopMerchant, error) {
	top, err := s.activityRepo.TopMerchantByVolume()
	if err != nil {
		return nil, err
	}

	if top == nil {
		return nil, ErrNoData
	}

	return top, nil
}

// MonthlyActiveMerchants retorna merchants ativos por mês em ordem crescente de mês
func (s *Service) MonthlyActiveMerchants() (domain.OrderedCounts, error) {
	counts, err := s.activityRepo.MonthlyActiveMerchants()
	if err != nil {
		return nil, err
	}

	result := make(domain.OrderedCounts, 0, len(counts))
	for _, mc := range counts {
		result = append(result, domain.CountEntry{Key: mc.Month, Count: mc.Count})
	}

	return result, nil
}

// ProductAdoption retorna merchants distintos por produto em ordem decrescente de contagem
func (s *Service) ProductAdoption() (domain.OrderedCounts, error) {
	counts, err := s.activityRepo.ProductAdoption()
	if err != nil {
		return nil, err
	}

	result := make(domain.OrderedCounts, 0, len(counts))
	for _, pc := range counts {
		result = append(result, domain.CountEntry{Key: string(pc.Product), Count: pc.Count})
	}

	return result, nil
}

// KycFunnel retorna as três etapas do funil de KYC. Etapas sem eventos
// aparecem com zero; a resposta sempre carrega os três campos.
func (s *Service) KycFunnel() (*domain.KycFunnel, error) {
	counts, err := s.activityRepo.KycFunnelCounts()
	if err != nil {
		return nil, err
	}

	funnel := &domain.KycFunnel{}
	for _, ec := range counts {
		switch ec.EventType {
		case domain.EventTypeDocumentSubmitted:
			funnel.DocumentsSubmitted = ec.Count
		case domain.EventTypeVerificationCompleted:
			funnel.VerificationsCompleted = ec.Count
		case domain.EventTypeTierUpgrade:
			funnel.TierUpgrades = ec.Count
		}
	}

	return funnel, nil
}

// FailureRates calcula o percentual de falha por produto com uma casa decimal,
// em ordem decrescente de taxa. Produtos sem eventos SUCCESS/FAILED não aparecem.
func (s *Service) FailureRates() ([]domain.ProductFailureRate, error) {
	outcomes, err := s.activityRepo.ProductOutcomes()
	if err != nil {
		return nil, err
	}

	rates := make([]domain.ProductFailureRate, 0, len(outcomes))
	for _, outcome := range outcomes {
		total := outcome.Success + outcome.Failed

		var rate float64
		if total > 0 {
			rate = utils.RoundRate(float64(outcome.Failed) / float64(total))
		}

		rates = append(rates, domain.ProductFailureRate{
			Product:     outcome.Product,
			FailureRate: rate,
		})
	}

	sort.SliceStable(rates, func(i, j int) bool {
		return rates[i].FailureRate > rates[j].FailureRate
	})

	return rates, nil
}
