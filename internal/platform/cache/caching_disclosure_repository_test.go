package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"

	"stock_dashboard/internal/feature/dividends/domain/entity"
)

// mockDisclosureRepository is a test double for the DisclosureRepository
// interface.
type mockDisclosureRepository struct {
	findFn func(ctx context.Context, corpCode string, year int) ([]entity.DividendAllotment, error)
}

func (m *mockDisclosureRepository) FindAllotments(ctx context.Context, corpCode string, year int) ([]entity.DividendAllotment, error) {
	if m.findFn != nil {
		return m.findFn(ctx, corpCode, year)
	}
	return nil, nil
}

func TestNewCachingDisclosureRepository_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		ttl               time.Duration
		namespace         string
		expectedTTL       time.Duration
		expectedNamespace string
	}{
		{
			name:              "default values when zero/empty",
			ttl:               0,
			namespace:         "",
			expectedTTL:       5 * time.Minute,
			expectedNamespace: "dividends",
		},
		{
			name:              "custom values preserved",
			ttl:               12 * time.Hour,
			namespace:         "custom",
			expectedTTL:       12 * time.Hour,
			expectedNamespace: "custom",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := NewCachingDisclosureRepository(nil, tt.ttl, &mockDisclosureRepository{}, tt.namespace)

			if repo.ttl != tt.expectedTTL {
				t.Errorf("expected TTL %v, got %v", tt.expectedTTL, repo.ttl)
			}
			if repo.namespace != tt.expectedNamespace {
				t.Errorf("expected namespace %q, got %q", tt.expectedNamespace, repo.namespace)
			}
		})
	}
}

func TestCachingDisclosureRepository_NilRedis(t *testing.T) {
	t.Parallel()

	expected := []entity.DividendAllotment{{CorpCode: "00126380", Item: "주당 현금배당금(원)"}}
	inner := &mockDisclosureRepository{
		findFn: func(ctx context.Context, corpCode string, year int) ([]entity.DividendAllotment, error) {
			return expected, nil
		},
	}

	// Redis is nil - should bypass cache and call inner directly
	repo := NewCachingDisclosureRepository(nil, time.Hour, inner, "dividends")

	rows, err := repo.FindAllotments(context.Background(), "00126380", 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected 1 row, got %d", len(rows))
	}
}

func TestCachingDisclosureRepository_CacheHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	cached := []entity.DividendAllotment{{CorpCode: "00126380", CurrentTerm: "1,444"}}
	cachedJSON, _ := json.Marshal(cached)

	mock.ExpectGet("dividends:00126380:2024").SetVal(string(cachedJSON))

	innerCalled := false
	inner := &mockDisclosureRepository{
		findFn: func(ctx context.Context, corpCode string, year int) ([]entity.DividendAllotment, error) {
			innerCalled = true
			return nil, nil
		},
	}

	repo := NewCachingDisclosureRepository(rdb, time.Hour, inner, "dividends")
	rows, err := repo.FindAllotments(context.Background(), "00126380", 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if innerCalled {
		t.Error("inner repository should not be called on cache hit")
	}
	if len(rows) != 1 || rows[0].CurrentTerm != "1,444" {
		t.Errorf("unexpected cached rows: %+v", rows)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

func TestCachingDisclosureRepository_CacheMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expected := []entity.DividendAllotment{{CorpCode: "00126380"}}
	expectedJSON, _ := json.Marshal(expected)

	// Cache miss, then store the API result
	mock.ExpectGet("dividends:00126380:2024").RedisNil()
	mock.ExpectSet("dividends:00126380:2024", expectedJSON, time.Hour).SetVal("OK")

	inner := &mockDisclosureRepository{
		findFn: func(ctx context.Context, corpCode string, year int) ([]entity.DividendAllotment, error) {
			return expected, nil
		},
	}

	repo := NewCachingDisclosureRepository(rdb, time.Hour, inner, "dividends")
	rows, err := repo.FindAllotments(context.Background(), "00126380", 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected 1 row, got %d", len(rows))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

func TestCachingDisclosureRepository_CorruptedCache(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expected := []entity.DividendAllotment{{CorpCode: "00126380"}}
	expectedJSON, _ := json.Marshal(expected)

	// Corrupted entry is deleted and replaced with a fresh fetch
	mock.ExpectGet("dividends:00126380:2024").SetVal("invalid json")
	mock.ExpectDel("dividends:00126380:2024").SetVal(1)
	mock.ExpectSet("dividends:00126380:2024", expectedJSON, time.Hour).SetVal("OK")

	inner := &mockDisclosureRepository{
		findFn: func(ctx context.Context, corpCode string, year int) ([]entity.DividendAllotment, error) {
			return expected, nil
		},
	}

	repo := NewCachingDisclosureRepository(rdb, time.Hour, inner, "dividends")
	rows, err := repo.FindAllotments(context.Background(), "00126380", 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected 1 row, got %d", len(rows))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

func TestCachingDisclosureRepository_InnerError(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedErr := errors.New("upstream down")

	mock.ExpectGet("dividends:00126380:2024").RedisNil()

	inner := &mockDisclosureRepository{
		findFn: func(ctx context.Context, corpCode string, year int) ([]entity.DividendAllotment, error) {
			return nil, expectedErr
		},
	}

	repo := NewCachingDisclosureRepository(rdb, time.Hour, inner, "dividends")
	_, err := repo.FindAllotments(context.Background(), "00126380", 2024)

	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
}

func TestSafe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"AAPL", "AAPL"},
		{"BRK B", "BRK_B"},
		{"key:value", "key_value"},
		{"", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if result := safe(tt.input); result != tt.expected {
				t.Errorf("safe(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}
