package interfaces

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/umcode/SpendTrack/internal/finance/domain"
)

func TestListCategories_Success(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	w := httptest.NewRecorder()

	mockService := &MockCategoryService{
		categories: []domain.Category{
			{ID: 1, Name: "Groceries", Type: "expense"},
			{ID: 2, Name: "Salary", Type: "income"},
		},
	}
	handler := NewCategoryHandler(mockService, respondJSON, respondError)
	handler.ListCategories(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response struct {
		Message string            `json:"message"`
		Data    []domain.Category `json:"data"`
	}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "Categories retrieved successfully", response.Message)
	assert.Len(t, response.Data, 2)
}

func TestListCategories_ErrorFromService(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	w := httptest.NewRecorder()

	mockService := &MockCategoryService{shouldFail: true}
	handler := NewCategoryHandler(mockService, respondJSON, respondError)
	handler.ListCategories(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
}

func TestCreateCategory_Success(t *testing.T) {
	body := `{"name":"Groceries","type":"expense"}`
	req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(body))
	w := httptest.NewRecorder()

	mockService := &MockCategoryService{}
	handler := NewCategoryHandler(mockService, respondJSON, respondError)
	handler.CreateCategory(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var response struct {
		Message string          `json:"message"`
		Data    domain.Category `json:"data"`
	}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "Category created successfully", response.Message)
	assert.Equal(t, int64(1), response.Data.ID)
	assert.Equal(t, "Groceries", response.Data.Name)
}

func TestCreateCategory_MissingNameReturnsFieldError(t *testing.T) {
	body := `{"type":"expense"}`
	req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(body))
	w := httptest.NewRecorder()

	mockService := &MockCategoryService{}
	handler := NewCategoryHandler(mockService, respondJSON, respondError)
	handler.CreateCategory(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)

	var response struct {
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "The given data was invalid.", response.Message)
	assert.Contains(t, response.Errors, "name")
}

func TestCreateCategory_ValidationErrorUsesInjectedResponder(t *testing.T) {
	var injectedStatus int
	spyJSON := func(w http.ResponseWriter, status int, payload interface{}) {
		injectedStatus = status
		respondJSON(w, status, payload)
	}

	req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(`{"type":"expense"}`))
	w := httptest.NewRecorder()

	handler := NewCategoryHandler(&MockCategoryService{}, spyJSON, respondError)
	handler.CreateCategory(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
	assert.Equal(t, http.StatusUnprocessableEntity, injectedStatus)
}

func TestCreateCategory_MalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	handler := NewCategoryHandler(&MockCategoryService{}, respondJSON, respondError)
	handler.CreateCategory(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestGetCategory_NotFound(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/categories/42", nil)
	req.SetPathValue("id", "42")
	w := httptest.NewRecorder()

	handler := NewCategoryHandler(&MockCategoryService{}, respondJSON, respondError)
	handler.GetCategory(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "Category not found", response["message"])
}

func TestGetCategory_NonNumericIDTreatedAsMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/categories/abc", nil)
	req.SetPathValue("id", "abc")
	w := httptest.NewRecorder()

	handler := NewCategoryHandler(&MockCategoryService{}, respondJSON, respondError)
	handler.GetCategory(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestUpdateCategory_Success(t *testing.T) {
	mockService := &MockCategoryService{
		categories: []domain.Category{{ID: 1, Name: "Groceries", Type: "expense"}},
		nextID:     1,
	}
	handler := NewCategoryHandler(mockService, respondJSON, respondError)

	body := `{"name":"Food","type":"expense"}`
	req := httptest.NewRequest(http.MethodPut, "/categories/1", strings.NewReader(body))
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()
	handler.UpdateCategory(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response struct {
		Message string          `json:"message"`
		Data    domain.Category `json:"data"`
	}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "Category updated successfully", response.Message)
	assert.Equal(t, "Food", response.Data.Name)
	assert.Equal(t, "Food", mockService.categories[0].Name)
}

func TestDeleteCategory_Success(t *testing.T) {
	mockService := &MockCategoryService{
		categories: []domain.Category{{ID: 1, Name: "Groceries", Type: "expense"}},
		nextID:     1,
	}
	handler := NewCategoryHandler(mockService, respondJSON, respondError)

	req := httptest.NewRequest(http.MethodDelete, "/categories/1", nil)
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()
	handler.DeleteCategory(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "Category deleted successfully", response["message"])
	assert.NotContains(t, response, "data")
	assert.Empty(t, mockService.categories)
}

func TestDeleteCategory_NotFound(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/categories/7", nil)
	req.SetPathValue("id", "7")
	w := httptest.NewRecorder()

	handler := NewCategoryHandler(&MockCategoryService{}, respondJSON, respondError)
	handler.DeleteCategory(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
