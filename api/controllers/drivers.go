package controllers

import (
	"net/http"
	"strings"

	"github.com/rotalog/rotalog-backend/api/responses"
	"github.com/rotalog/rotalog-backend/api/validators"
	"github.com/rotalog/rotalog-backend/internal/drivers"
	pkgerrors "github.com/rotalog/rotalog-backend/pkg/errors"
	"github.com/rotalog/rotalog-backend/pkg/logger"
)

func DriverCreate(svc drivers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "drivers service unavailable"))
			return
		}

		var body drivers.CreateDriverInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		driver, err := svc.Create(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, driver)
	}
}

func DriverList(svc drivers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "drivers service unavailable"))
			return
		}

		params, err := paginationParams(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filters := drivers.Filters{
			ActiveOnly: queryFlag(r, "active"),
			Query:      strings.TrimSpace(r.URL.Query().Get("q")),
		}

		list, err := svc.List(r.Context(), params, filters)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, list)
	}
}

// DriverSearch resolves a driver through the unique license number.
func DriverSearch(svc drivers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "drivers service unavailable"))
			return
		}

		licenseNo := strings.TrimSpace(r.URL.Query().Get("license_no"))
		if licenseNo == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "license_no is required"))
			return
		}

		driver, err := svc.GetByLicenseNo(r.Context(), licenseNo)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, driver)
	}
}

func DriverDetail(svc drivers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "drivers service unavailable"))
			return
		}

		id, err := pathUUID(r, "driverId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		driver, err := svc.GetByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, driver)
	}
}

func DriverUpdate(svc drivers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "drivers service unavailable"))
			return
		}

		id, err := pathUUID(r, "driverId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body drivers.UpdateDriverInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		driver, err := svc.Update(r.Context(), id, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, driver)
	}
}

func DriverDelete(svc drivers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "drivers service unavailable"))
			return
		}

		id, err := pathUUID(r, "driverId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
