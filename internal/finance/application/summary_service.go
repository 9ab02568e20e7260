package application

import (
	"fmt"
	"time"

	"github.com/umcode/SpendTrack/internal/cache"
	"github.com/umcode/SpendTrack/internal/finance/domain"
	"golang.org/x/sync/singleflight"
)

// SummaryCacheTTL bounds how long a cached monthly summary may be served.
// Correctness does not depend on it: every write eagerly invalidates the
// affected month.
const SummaryCacheTTL = 10 * time.Minute

// SummaryService answers monthly aggregate queries through an injected TTL
// cache. Entries are keyed per (user, year, month) and recomputed lazily on
// miss; concurrent misses for the same key collapse into one scan.
type SummaryService struct {
	repo  domain.TransactionRepository
	cache cache.Cache[domain.MonthlySummary]
	group singleflight.Group
}

func NewSummaryService(repo domain.TransactionRepository, summaryCache cache.Cache[domain.MonthlySummary]) *SummaryService {
	return &SummaryService{repo: repo, cache: summaryCache}
}

func summaryCacheKey(userID string, year, month int) string {
	return fmt.Sprintf("summary:user:%s:%d-%02d", userID, year, month)
}

func (s *SummaryService) GetMonthlySummary(userID string, year, month int) (domain.MonthlySummary, error) {
	key := summaryCacheKey(userID, year, month)

	if summary, ok := s.cache.Get(key); ok {
		return summary, nil
	}

	result, err, _ := s.group.Do(key, func() (interface{}, error) {
		// A concurrent flight may have filled the cache already.
		if summary, ok := s.cache.Get(key); ok {
			return summary, nil
		}

		transactions, err := s.repo.FindByUserAndMonth(userID, year, month)
		if err != nil {
			return domain.MonthlySummary{}, err
		}

		summary := computeMonthlySummary(transactions)
		s.cache.Set(key, summary)
		return summary, nil
	})
	if err != nil {
		return domain.MonthlySummary{}, err
	}
	return result.(domain.MonthlySummary), nil
}

// Invalidate drops the cached summary for the month containing date. Calling
// it for a month with no cached entry is a no-op.
func (s *SummaryService) Invalidate(userID string, date time.Time) {
	s.cache.Delete(summaryCacheKey(userID, date.Year(), int(date.Month())))
}

func computeMonthlySummary(transactions []domain.Transaction) domain.MonthlySummary {
	summary := domain.MonthlySummary{
		TransactionsPerCategory: []domain.CategoryCount{},
	}

	// Group indices keyed by category id, with the no-category group kept
	// apart. Groups appear in first-seen order.
	groupIndex := make(map[int64]int)
	noCategoryIndex := -1

	for _, transaction := range transactions {
		switch transaction.Type {
		case domain.TypeIncome:
			summary.TotalIncome += transaction.Amount
		case domain.TypeExpense:
			summary.TotalExpense += transaction.Amount
		}

		if transaction.CategoryID == nil {
			if noCategoryIndex == -1 {
				summary.TransactionsPerCategory = append(summary.TransactionsPerCategory, domain.CategoryCount{})
				noCategoryIndex = len(summary.TransactionsPerCategory) - 1
			}
			summary.TransactionsPerCategory[noCategoryIndex].TransactionCount++
			continue
		}

		categoryID := *transaction.CategoryID
		index, exists := groupIndex[categoryID]
		if !exists {
			count := domain.CategoryCount{CategoryID: transaction.CategoryID}
			if transaction.Category != nil {
				name := transaction.Category.Name
				count.CategoryName = &name
			}
			summary.TransactionsPerCategory = append(summary.TransactionsPerCategory, count)
			index = len(summary.TransactionsPerCategory) - 1
			groupIndex[categoryID] = index
		}
		summary.TransactionsPerCategory[index].TransactionCount++
	}

	summary.EndingBalance = summary.TotalIncome - summary.TotalExpense
	return summary
}
