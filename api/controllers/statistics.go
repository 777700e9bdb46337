package controllers

import (
	"net/http"

	"github.com/rotalog/rotalog-backend/api/responses"
	"github.com/rotalog/rotalog-backend/internal/statistics"
	"github.com/rotalog/rotalog-backend/pkg/enums"
	pkgerrors "github.com/rotalog/rotalog-backend/pkg/errors"
	"github.com/rotalog/rotalog-backend/pkg/logger"
)

// StatisticsDashboard returns the aggregated management dashboard.
func StatisticsDashboard(svc statistics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "statistics service unavailable"))
			return
		}

		dashboard, err := svc.Dashboard(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, dashboard)
	}
}

// CountryCodeList exposes the country vocabulary for route stop forms.
func CountryCodeList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{"country_codes": enums.CountryCodes()})
	}
}
