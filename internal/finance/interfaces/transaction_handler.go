package interfaces

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/umcode/SpendTrack/internal/finance/domain"
	financeErrors "github.com/umcode/SpendTrack/internal/finance/errors"
)

type TransactionServiceInterface interface {
	CreateTransaction(userID string, transaction *domain.Transaction) error
	GetUserTransactions(userID string, filters domain.TransactionFilters) ([]domain.Transaction, error)
	GetTransaction(userID string, transactionID int64) (*domain.Transaction, error)
	UpdateTransaction(userID string, transactionID int64, transaction *domain.Transaction) (*domain.Transaction, error)
	DeleteTransaction(userID string, transactionID int64) error
	FilterTransactions(criteria domain.FilterCriteria) ([]domain.Transaction, error)
}

type SummaryServiceInterface interface {
	GetMonthlySummary(userID string, year, month int) (domain.MonthlySummary, error)
}

type TransactionHandler struct {
	service        TransactionServiceInterface
	summaryService SummaryServiceInterface
	respondJSON    func(w http.ResponseWriter, status int, payload interface{})
	respondError   func(w http.ResponseWriter, status int, message string)
}

func NewTransactionHandler(
	service TransactionServiceInterface,
	summaryService SummaryServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *TransactionHandler {
	if service == nil || summaryService == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &TransactionHandler{
		service:        service,
		summaryService: summaryService,
		respondJSON:    respondJSON,
		respondError:   respondError,
	}
}

// transactionRequest is the wire shape of create/update bodies. The date
// comes in as a plain calendar day, not RFC 3339.
type transactionRequest struct {
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	CategoryID  *int64  `json:"category_id"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
}

func (req *transactionRequest) toDomain() (*domain.Transaction, error) {
	transaction := &domain.Transaction{
		Amount:      req.Amount,
		Type:        req.Type,
		CategoryID:  req.CategoryID,
		Description: req.Description,
	}
	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, financeErrors.NewFieldValidationError("date", "The date is not a valid date.")
		}
		transaction.Date = date
	}
	return transaction, nil
}

func transactionIDFromPath(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func (h *TransactionHandler) respondDomainError(w http.ResponseWriter, err error, fallback string) {
	writeDomainError(w, err, fallback, h.respondJSON, h.respondError)
}

func userIDFromContext(r *http.Request) (string, bool) {
	userID, ok := r.Context().Value("userID").(string)
	return userID, ok
}

func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthenticated.")
		return
	}

	var filters domain.TransactionFilters

	transactionType := r.URL.Query().Get("type")
	if transactionType != "" && !domain.IsValidTransactionType(transactionType) {
		h.respondDomainError(w, financeErrors.ErrInvalidTransactionType, "")
		return
	}
	filters.Type = transactionType

	if categoryIDStr := r.URL.Query().Get("category_id"); categoryIDStr != "" {
		categoryID, err := strconv.ParseInt(categoryIDStr, 10, 64)
		if err != nil {
			h.respondDomainError(w, financeErrors.NewFieldValidationError("category_id", "The category id must be an integer."), "")
			return
		}
		filters.CategoryID = &categoryID
	}

	if startDateStr := r.URL.Query().Get("start_date"); startDateStr != "" {
		startDate, err := time.Parse("2006-01-02", startDateStr)
		if err != nil {
			h.respondDomainError(w, financeErrors.NewFieldValidationError("start_date", "The start date is not a valid date."), "")
			return
		}
		filters.StartDate = &startDate
	}

	if endDateStr := r.URL.Query().Get("end_date"); endDateStr != "" {
		endDate, err := time.Parse("2006-01-02", endDateStr)
		if err != nil {
			h.respondDomainError(w, financeErrors.NewFieldValidationError("end_date", "The end date is not a valid date."), "")
			return
		}
		filters.EndDate = &endDate
	}

	transactions, err := h.service.GetUserTransactions(userID, filters)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve transactions")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Transaction list retrieved successfully",
		"data":    transactions,
	})
}

func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthenticated.")
		return
	}

	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	transaction, err := req.toDomain()
	if err != nil {
		h.respondDomainError(w, err, "")
		return
	}

	if err := h.service.CreateTransaction(userID, transaction); err != nil {
		h.respondDomainError(w, err, "Failed to create transaction")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Transaction created successfully",
		"data":    transaction,
	})
}

func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthenticated.")
		return
	}

	transactionID, err := transactionIDFromPath(r)
	if err != nil {
		h.respondError(w, http.StatusNotFound, financeErrors.ErrTransactionNotFound.Error())
		return
	}

	transaction, err := h.service.GetTransaction(userID, transactionID)
	if err != nil {
		h.respondDomainError(w, err, "Failed to retrieve transaction")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Transaction retrieved successfully",
		"data":    transaction,
	})
}

func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthenticated.")
		return
	}

	transactionID, err := transactionIDFromPath(r)
	if err != nil {
		h.respondError(w, http.StatusNotFound, financeErrors.ErrTransactionNotFound.Error())
		return
	}

	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	transaction, err := req.toDomain()
	if err != nil {
		h.respondDomainError(w, err, "")
		return
	}

	updated, err := h.service.UpdateTransaction(userID, transactionID, transaction)
	if err != nil {
		h.respondDomainError(w, err, "Failed to update transaction")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Transaction updated successfully",
		"data":    updated,
	})
}

func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthenticated.")
		return
	}

	transactionID, err := transactionIDFromPath(r)
	if err != nil {
		h.respondError(w, http.StatusNotFound, financeErrors.ErrTransactionNotFound.Error())
		return
	}

	if err := h.service.DeleteTransaction(userID, transactionID); err != nil {
		h.respondDomainError(w, err, "Failed to delete transaction")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Transaction deleted successfully",
	})
}

// FilterTransactions serves the system-wide filter endpoint. It is
// authenticated but deliberately not scoped to the caller.
func (h *TransactionHandler) FilterTransactions(w http.ResponseWriter, r *http.Request) {
	if _, ok := userIDFromContext(r); !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthenticated.")
		return
	}

	var criteria domain.FilterCriteria

	transactionType := r.URL.Query().Get("type")
	if transactionType != "" && !domain.IsValidTransactionType(transactionType) {
		h.respondDomainError(w, financeErrors.ErrInvalidTransactionType, "")
		return
	}
	criteria.Type = transactionType

	if categoryIDStr := r.URL.Query().Get("category_id"); categoryIDStr != "" {
		categoryID, err := strconv.ParseInt(categoryIDStr, 10, 64)
		if err != nil {
			h.respondDomainError(w, financeErrors.NewFieldValidationError("category_id", "The category id must be an integer."), "")
			return
		}
		criteria.CategoryID = &categoryID
	}

	transactions, err := h.service.FilterTransactions(criteria)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to filter transactions")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    transactions,
	})
}

func (h *TransactionHandler) GetMonthlySummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthenticated.")
		return
	}

	now := time.Now()
	year := now.Year()
	month := int(now.Month())

	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil || parsed < 1 {
			h.respondDomainError(w, financeErrors.NewFieldValidationError("year", "The year must be a positive integer."), "")
			return
		}
		year = parsed
	}

	if monthStr := r.URL.Query().Get("month"); monthStr != "" {
		parsed, err := strconv.Atoi(monthStr)
		if err != nil || parsed < 1 || parsed > 12 {
			h.respondDomainError(w, financeErrors.NewFieldValidationError("month", "The month must be between 1 and 12."), "")
			return
		}
		month = parsed
	}

	summary, err := h.summaryService.GetMonthlySummary(userID, year, month)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve monthly summary")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    summary,
	})
}
