package codes

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/membercore/membercore/internal/domain"
)

// setupTestDB creates an in-memory SQLite database with the subscriber table.
// The connection pool is capped at one so every goroutine sees the same
// in-memory database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&domain.Subscriber{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// frozenAllocator returns an Allocator whose clock is pinned to the given day.
func frozenAllocator(year int, month time.Month, day int) *Allocator {
	a := New()
	a.now = func() time.Time {
		return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	}
	return a
}

func seedSubscriber(t *testing.T, db *gorm.DB, code string) {
	t.Helper()
	sub := &domain.Subscriber{Code: code, Name: "Seeded", Email: code + "@example.com"}
	if err := db.Create(sub).Error; err != nil {
		t.Fatalf("seed subscriber %s: %v", code, err)
	}
}

func TestNext_EmptyTable(t *testing.T) {
	db := setupTestDB(t)
	a := frozenAllocator(2024, time.June, 15)

	code, err := a.Next(db, "INS", &domain.Subscriber{})
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if code != "INS2406150001" {
		t.Errorf("code=%q; want INS2406150001", code)
	}
}

func TestNext_ContinuesSequenceAcrossDays(t *testing.T) {
	db := setupTestDB(t)
	a := frozenAllocator(2024, time.June, 15)

	// A code allocated months earlier: the date part moves to today but the
	// sequence keeps counting.
	seedSubscriber(t, db, "INS2401010001")

	code, err := a.Next(db, "INS", &domain.Subscriber{})
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if code != "INS2406150002" {
		t.Errorf("code=%q; want INS2406150002", code)
	}
}

func TestNext_PicksNumericallyGreatestSuffix(t *testing.T) {
	db := setupTestDB(t)
	a := frozenAllocator(2024, time.June, 15)

	// 2406140010 > 2401019999 numerically; lexicographic comparison would
	// agree here, but a widened suffix would not, so seed one of those too.
	seedSubscriber(t, db, "INS2401019999")
	seedSubscriber(t, db, "INS2406140010")

	code, err := a.Next(db, "INS", &domain.Subscriber{})
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if code != "INS2406150011" {
		t.Errorf("code=%q; want INS2406150011", code)
	}
}

func TestNext_SequenceWidensPastFourDigits(t *testing.T) {
	db := setupTestDB(t)
	a := frozenAllocator(2024, time.June, 15)

	seedSubscriber(t, db, "INS2406149999")

	code, err := a.Next(db, "INS", &domain.Subscriber{})
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if code != "INS24061510000" {
		t.Errorf("code=%q; want INS24061510000", code)
	}
}

func TestAllocate_InvalidPrefix(t *testing.T) {
	db := setupTestDB(t)
	a := New()

	for _, prefix := range []string{"", "IN", "INSX", "ins", "1NS"} {
		err := a.Allocate(context.Background(), db, prefix, &domain.Subscriber{}, func(tx *gorm.DB, code string) error {
			t.Fatalf("fn must not run for prefix %q", prefix)
			return nil
		})
		if !domain.IsValidation(err) {
			t.Errorf("prefix %q: expected validation error, got %v", prefix, err)
		}
	}
}

func TestAllocate_InsertsWithComputedCode(t *testing.T) {
	db := setupTestDB(t)
	a := frozenAllocator(2024, time.June, 15)

	for i := 1; i <= 3; i++ {
		err := a.Allocate(context.Background(), db, "INS", &domain.Subscriber{}, func(tx *gorm.DB, code string) error {
			return tx.Create(&domain.Subscriber{
				Code:  code,
				Name:  fmt.Sprintf("Member %d", i),
				Email: fmt.Sprintf("member%d@example.com", i),
			}).Error
		})
		if err != nil {
			t.Fatalf("Allocate %d: %v", i, err)
		}
	}

	var codes []string
	if err := db.Model(&domain.Subscriber{}).Order("id").Pluck("code", &codes).Error; err != nil {
		t.Fatalf("load codes: %v", err)
	}
	want := []string{"INS2406150001", "INS2406150002", "INS2406150003"}
	for i := range want {
		if codes[i] != want[i] {
			t.Errorf("codes[%d]=%q; want %q", i, codes[i], want[i])
		}
	}
}

func TestAllocate_RetriesOnDuplicate(t *testing.T) {
	db := setupTestDB(t)
	a := frozenAllocator(2024, time.June, 15)

	calls := 0
	err := a.Allocate(context.Background(), db, "INS", &domain.Subscriber{}, func(tx *gorm.DB, code string) error {
		calls++
		if calls < 3 {
			return domain.ErrAlreadyExists
		}
		return tx.Create(&domain.Subscriber{Code: code, Name: "Retry", Email: "retry@example.com"}).Error
	})
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if calls != 3 {
		t.Errorf("fn ran %d times; want 3", calls)
	}
}

func TestAllocate_DuplicateRetryIsBounded(t *testing.T) {
	db := setupTestDB(t)
	a := frozenAllocator(2024, time.June, 15)

	calls := 0
	err := a.Allocate(context.Background(), db, "INS", &domain.Subscriber{}, func(tx *gorm.DB, code string) error {
		calls++
		return domain.ErrAlreadyExists
	})
	if !domain.IsAlreadyExists(err) {
		t.Errorf("expected ErrAlreadyExists after exhausted retries, got %v", err)
	}
	if calls != maxTries {
		t.Errorf("fn ran %d times; want %d", calls, maxTries)
	}
}

func TestAllocate_OtherErrorsDoNotRetry(t *testing.T) {
	db := setupTestDB(t)
	a := frozenAllocator(2024, time.June, 15)

	calls := 0
	err := a.Allocate(context.Background(), db, "INS", &domain.Subscriber{}, func(tx *gorm.DB, code string) error {
		calls++
		return domain.NewAppError(domain.CodeValidation, "bad input", nil)
	})
	if !domain.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
	if calls != 1 {
		t.Errorf("fn ran %d times; want 1", calls)
	}
}

func TestAllocate_ConcurrentAllocationsAreDistinct(t *testing.T) {
	db := setupTestDB(t)
	a := frozenAllocator(2024, time.June, 15)

	const workers = 10
	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = a.Allocate(context.Background(), db, "INS", &domain.Subscriber{}, func(tx *gorm.DB, code string) error {
				return tx.Create(&domain.Subscriber{
					Code:  code,
					Name:  fmt.Sprintf("Concurrent %d", i),
					Email: fmt.Sprintf("concurrent%d@example.com", i),
				}).Error
			})
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("worker %d: %v", i, err)
		}
	}

	var codes []string
	if err := db.Model(&domain.Subscriber{}).Pluck("code", &codes).Error; err != nil {
		t.Fatalf("load codes: %v", err)
	}
	seen := make(map[string]bool, len(codes))
	for _, code := range codes {
		if seen[code] {
			t.Errorf("duplicate code allocated: %q", code)
		}
		seen[code] = true
	}
	if len(codes) != workers {
		t.Errorf("stored %d codes; want %d", len(codes), workers)
	}
}
