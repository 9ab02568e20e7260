package interfaces

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/umcode/SpendTrack/internal/finance/domain"
	financeErrors "github.com/umcode/SpendTrack/internal/finance/errors"
)

type CategoryServiceInterface interface {
	GetAllCategories() ([]domain.Category, error)
	GetCategory(categoryID int64) (*domain.Category, error)
	CreateCategory(category *domain.Category) error
	UpdateCategory(category *domain.Category) error
	DeleteCategory(categoryID int64) error
}

type CategoryHandler struct {
	service      CategoryServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewCategoryHandler(
	service CategoryServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *CategoryHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &CategoryHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

// categoryIDFromPath reads the {id} segment. A non-numeric segment is treated
// the same as a missing row.
func categoryIDFromPath(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

// writeDomainError maps the finance error taxonomy onto HTTP statuses through
// the handler's injected responders: validation -> 422 with field-keyed
// messages, not-found -> 404, anything else -> 500 without internal detail.
func writeDomainError(
	w http.ResponseWriter,
	err error,
	fallback string,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) {
	if validationErr := financeErrors.AsValidationError(err); validationErr != nil {
		respondJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"message": validationErr.Msg,
			"errors":  validationErr.Fields,
		})
		return
	}
	if financeErrors.IsNotFoundError(err) {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	respondError(w, http.StatusInternalServerError, fallback)
}

func (h *CategoryHandler) respondDomainError(w http.ResponseWriter, err error, fallback string) {
	writeDomainError(w, err, fallback, h.respondJSON, h.respondError)
}

func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetAllCategories()
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve categories")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Categories retrieved successfully",
		"data":    categories,
	})
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var category domain.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.CreateCategory(&category); err != nil {
		h.respondDomainError(w, err, "Failed to create category")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Category created successfully",
		"data":    category,
	})
}

func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := categoryIDFromPath(r)
	if err != nil {
		h.respondError(w, http.StatusNotFound, financeErrors.ErrCategoryNotFound.Error())
		return
	}

	category, err := h.service.GetCategory(categoryID)
	if err != nil {
		h.respondDomainError(w, err, "Failed to retrieve category")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Category retrieved successfully",
		"data":    category,
	})
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := categoryIDFromPath(r)
	if err != nil {
		h.respondError(w, http.StatusNotFound, financeErrors.ErrCategoryNotFound.Error())
		return
	}

	var category domain.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	category.ID = categoryID

	if err := h.service.UpdateCategory(&category); err != nil {
		h.respondDomainError(w, err, "Failed to update category")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Category updated successfully",
		"data":    category,
	})
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := categoryIDFromPath(r)
	if err != nil {
		h.respondError(w, http.StatusNotFound, financeErrors.ErrCategoryNotFound.Error())
		return
	}

	if err := h.service.DeleteCategory(categoryID); err != nil {
		h.respondDomainError(w, err, "Failed to delete category")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Category deleted successfully",
	})
}
