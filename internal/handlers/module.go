package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/keuzekompas/internal/catalog"
	"github.com/sbilibin2017/keuzekompas/internal/models"
	"github.com/sbilibin2017/keuzekompas/internal/services"
)

//go:generate mockgen -source=module.go -destination=mock_module.go -package=handlers

const msgModuleNotFound = "Module not found"

// ModuleLister lists modules matching a filter.
type ModuleLister interface {
	List(ctx context.Context, filter catalog.Filter, userID uuid.UUID) ([]models.ModuleDB, error)
}

// ModuleSearcher searches modules by free text.
type ModuleSearcher interface {
	Search(ctx context.Context, term string, userID uuid.UUID) ([]models.ModuleDB, error)
}

// ModuleFacetser returns the distinct filter values.
type ModuleFacetser interface {
	Facets(ctx context.Context) (*models.ModuleFacets, error)
}

// ModuleGetter returns a module by id.
type ModuleGetter interface {
	Get(ctx context.Context, id int64) (*models.ModuleDB, error)
}

// ModuleCreator stores new modules.
type ModuleCreator interface {
	Create(ctx context.Context, userID uuid.UUID, req *models.ModuleCreateRequest) (*models.ModuleDB, error)
}

// ModuleUpdater applies partial updates.
type ModuleUpdater interface {
	Update(ctx context.Context, userID uuid.UUID, id int64, req *models.ModuleUpdateRequest) (*models.ModuleDB, error)
}

// ModuleDeleter removes modules.
type ModuleDeleter interface {
	Delete(ctx context.Context, userID uuid.UUID, id int64) error
}

// parseInt64Param reads a positive integer URL parameter. It writes a 400 on failure.
func parseInt64Param(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid %s: %q", name, raw))
		return 0, false
	}
	return id, true
}

// NewListModulesHandler returns the catalog, optionally filtered.
// @Summary List modules
// @Description Filters combine with AND across dimensions and OR within one. Repeated or comma-separated values are accepted.
// @Tags modules
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search in name and descriptions"
// @Param studycredit query []int false "Study credits" collectionFormat(multi)
// @Param level query []string false "Levels" collectionFormat(multi)
// @Param location query []string false "Locations" collectionFormat(multi)
// @Param favorites query bool false "Only the caller's favorites"
// @Success 200 {array} models.ModuleDB
// @Failure 400 {object} models.ErrorResponse "Invalid filter"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /modules [get]
func NewListModulesHandler(svc ModuleLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identityFromRequest(w, r)
		if !ok {
			return
		}

		filter, err := catalog.ParseQuery(r.URL.Query())
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		modules, err := svc.List(r.Context(), filter, id.UserID)
		if err != nil {
			writeInternalError(w, err)
			return
		}
		if modules == nil {
			modules = []models.ModuleDB{}
		}

		writeJSON(w, http.StatusOK, modules)
	}
}

// NewSearchModulesHandler returns the modules whose name or descriptions contain q.
// @Summary Search modules
// @Tags modules
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search term"
// @Success 200 {array} models.ModuleDB
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /modules/search [get]
func NewSearchModulesHandler(svc ModuleSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identityFromRequest(w, r)
		if !ok {
			return
		}

		modules, err := svc.Search(r.Context(), r.URL.Query().Get(catalog.ParamSearch), id.UserID)
		if err != nil {
			writeInternalError(w, err)
			return
		}
		if modules == nil {
			modules = []models.ModuleDB{}
		}

		writeJSON(w, http.StatusOK, modules)
	}
}

// NewModuleFacetsHandler returns the distinct credits, levels and locations.
// @Summary Module filter options
// @Tags modules
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ModuleFacets
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /modules/facets [get]
func NewModuleFacetsHandler(svc ModuleFacetser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		facets, err := svc.Facets(r.Context())
		if err != nil {
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, facets)
	}
}

// NewGetModuleHandler returns one module.
// @Summary Get module
// @Tags modules
// @Produce json
// @Security BearerAuth
// @Param id path int true "Module id"
// @Success 200 {object} models.ModuleDB
// @Failure 400 {object} models.ErrorResponse "Invalid id"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Module not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /modules/{id} [get]
func NewGetModuleHandler(svc ModuleGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseInt64Param(w, r, "id")
		if !ok {
			return
		}

		module, err := svc.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrModuleNotFound):
				writeError(w, http.StatusNotFound, msgModuleNotFound)
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, module)
	}
}

// NewCreateModuleHandler stores a new module under the id given in the body.
// @Summary Create module
// @Tags modules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param module body models.ModuleCreateRequest true "Module"
// @Success 201 {object} models.ModuleDB
// @Failure 400 {object} models.ErrorResponse "Validation failed"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 409 {object} models.ErrorResponse "Module already exists"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /modules [post]
func NewCreateModuleHandler(svc ModuleCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identityFromRequest(w, r)
		if !ok {
			return
		}

		var req models.ModuleCreateRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		module, err := svc.Create(r.Context(), id.UserID, &req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrModuleAlreadyExists):
				writeError(w, http.StatusConflict, fmt.Sprintf("Module with id %d already exists", req.ID))
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, module)
	}
}

// NewUpdateModuleHandler applies the fields present in the body.
// @Summary Update module
// @Tags modules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Module id"
// @Param module body models.ModuleUpdateRequest true "Fields to change"
// @Success 200 {object} models.ModuleDB
// @Failure 400 {object} models.ErrorResponse "Validation failed"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Module not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /modules/{id} [put]
func NewUpdateModuleHandler(svc ModuleUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFromRequest(w, r)
		if !ok {
			return
		}
		id, ok := parseInt64Param(w, r, "id")
		if !ok {
			return
		}

		var req models.ModuleUpdateRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}
		if req.IsEmpty() {
			writeError(w, http.StatusBadRequest, "No fields to update")
			return
		}

		module, err := svc.Update(r.Context(), identity.UserID, id, &req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrModuleNotFound):
				writeError(w, http.StatusNotFound, msgModuleNotFound)
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, module)
	}
}

// NewDeleteModuleHandler removes a module and the favorites pointing at it.
// @Summary Delete module
// @Tags modules
// @Produce json
// @Security BearerAuth
// @Param id path int true "Module id"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse "Invalid id"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Module not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /modules/{id} [delete]
func NewDeleteModuleHandler(svc ModuleDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFromRequest(w, r)
		if !ok {
			return
		}
		id, ok := parseInt64Param(w, r, "id")
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), identity.UserID, id); err != nil {
			switch {
			case errors.Is(err, services.ErrModuleNotFound):
				writeError(w, http.StatusNotFound, msgModuleNotFound)
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Module successfully deleted"})
	}
}
