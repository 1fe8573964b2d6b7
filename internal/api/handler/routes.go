package handler

import (
	"net/http"

	"github.com/vfg2006/merchant-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/merchant-analytics-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Analytics(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/analytics/top-merchant",
			Method:  http.MethodGet,
			Handler: GetTopMerchant(service),
		},
		{
			Path:    "/analytics/monthly-active-merchants",
			Method:  http.MethodGet,
			Handler: GetMonthlyActiveMerchants(service),
		},
		{
			Path:    "/analytics/product-adoption",
			Method:  http.MethodGet,
			Handler: GetProductAdoption(service),
		},
		{
			Path:    "/analytics/kyc-funnel",
			Method:  http.MethodGet,
			Handler: GetKycFunnel(service),
		},
		{
			Path:    "/analytics/failure-rates",
			Method:  http.MethodGet,
			Handler: GetFailureRates(service),
		},
	}
}
