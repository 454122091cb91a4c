package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/product-catalog/pkg/errhttp"
	"github.com/ghuser/product-catalog/pkg/httpx"
	pkgvalidator "github.com/ghuser/product-catalog/pkg/validator"
	appsvcs "github.com/ghuser/product-catalog/services/catalog/application/services"
)

// CategoryRequest is the request body for category create and update.
type CategoryRequest struct {
	Name        string `json:"name" validate:"required" example:"Peripherals"`
	Description string `json:"description,omitempty"`
} // @name CategoryRequest

// CategoryHandlers bundles the category CRUD endpoints.
type CategoryHandlers struct {
	svc *appsvcs.Services
}

// NewCategoryHandlers returns the category handler set backed by the given services.
func NewCategoryHandlers(svc *appsvcs.Services) *CategoryHandlers {
	return &CategoryHandlers{svc: svc}
}

// Create handles POST /categories.
//
//	@Summary		Create category
//	@Tags			categories
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CategoryRequest	true	"Category to create"
//	@Success		201		{object}	CategoryView
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/categories [post]
func (h *CategoryHandlers) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CategoryRequest](w, r)
	if !ok {
		return
	}

	category, err := h.svc.Categories.Create(r.Context(), req.Name, req.Description)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSONSuccess(w, http.StatusCreated, toCategoryView(category))
}

// List handles GET /categories.
//
//	@Summary		List categories
//	@Tags			categories
//	@Produce		json
//	@Success		200	{array}		CategoryView
//	@Failure		401	{object}	ErrorResponse
//	@Router			/categories [get]
func (h *CategoryHandlers) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Categories.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]CategoryView, len(categories))
	for i, c := range categories {
		out[i] = toCategoryView(c)
	}
	httpx.JSONSuccess(w, http.StatusOK, out)
}

// Get handles GET /categories/{id}.
//
//	@Summary		Get category
//	@Tags			categories
//	@Produce		json
//	@Param			id	path		string	true	"Category ID"
//	@Success		200	{object}	CategoryView
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/categories/{id} [get]
func (h *CategoryHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "id must be a valid UUID")
		return
	}

	category, err := h.svc.Categories.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSONSuccess(w, http.StatusOK, toCategoryView(category))
}

// Update handles PUT /categories/{id}.
//
//	@Summary		Update category
//	@Tags			categories
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Category ID"
//	@Param			request	body		CategoryRequest	true	"Updated category fields"
//	@Success		200		{object}	CategoryView
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/categories/{id} [put]
func (h *CategoryHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "id must be a valid UUID")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CategoryRequest](w, r)
	if !ok {
		return
	}

	category, err := h.svc.Categories.Update(r.Context(), id, req.Name, req.Description)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSONSuccess(w, http.StatusOK, toCategoryView(category))
}

// Delete handles DELETE /categories/{id}. Products referencing the category
// keep their dangling reference and display as "Unknown".
//
//	@Summary		Delete category
//	@Tags			categories
//	@Produce		json
//	@Param			id	path		string	true	"Category ID"
//	@Success		200	{object}	map[string]string
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/categories/{id} [delete]
func (h *CategoryHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "id must be a valid UUID")
		return
	}

	if err := h.svc.Categories.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSONSuccess(w, http.StatusOK, map[string]string{"message": "category deleted"})
}
