package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/merchant-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/merchant-analytics-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetTopMerchant retorna o merchant com maior volume de eventos SUCCESS
func GetTopMerchant(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		top, err := service.TopMerchant()
		if err != nil {
			apiErrors.WriteError(w, r, err)
			return
		}

		writeJSON(w, top)
	})
}

// GetMonthlyActiveMerchants retorna merchants ativos por mês (YYYY-MM), em ordem crescente
func GetMonthlyActiveMerchants(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		counts, err := service.MonthlyActiveMerchants()
		if err != nil {
			apiErrors.WriteError(w, r, err)
			return
		}

		writeJSON(w, counts)
	})
}

// GetProductAdoption retorna merchants distintos por produto, em ordem decrescente de adoção
func GetProductAdoption(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		counts, err := service.ProductAdoption()
		if err != nil {
			apiErrors.WriteError(w, r, err)
			return
		}

		writeJSON(w, counts)
	})
}

// GetKycFunnel retorna as três etapas do funil de KYC
func GetKycFunnel(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		funnel, err := service.KycFunnel()
		if err != nil {
			apiErrors.WriteError(w, r, err)
			return
		}

		writeJSON(w, funnel)
	})
}

// GetFailureRates retorna o percentual de falha por produto, em ordem decrescente
func GetFailureRates(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rates, err := service.FailureRates()
		if err != nil {
			apiErrors.WriteError(w, r, err)
			return
		}

		writeJSON(w, rates)
	})
}

func writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}
