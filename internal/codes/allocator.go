// Package codes allocates sequential human-readable entity codes of the form
// <3-letter prefix><YYMMDD><4-digit sequence>, e.g. INS2406150002.
//
// The sequence continues across calendar days: the date part of a new code
// reflects "now", but the counter never resets. Allocation derives the next
// sequence from the numerically greatest code suffix currently stored, so the
// read-then-insert pair must run serialized; Allocate wraps it in a
// transaction behind a per-model lock and retries a bounded number of times
// when a concurrent insert wins the race.
package codes

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
	"gorm.io/gorm"

	"github.com/membercore/membercore/internal/domain"
	"github.com/membercore/membercore/internal/pkg"
)

const (
	// prefixLen is the fixed length of the alphabetic code prefix.
	prefixLen = 3
	// dateDigits is the number of date digits (YYMMDD) embedded in a code.
	dateDigits = 6
	// sequenceDigits is the minimum zero-padded width of the sequence part.
	sequenceDigits = 4
	// maxTries bounds how often a colliding create is re-run before the
	// duplicate surfaces as a conflict.
	maxTries = 3
)

var (
	prefixPattern = regexp.MustCompile(`^[A-Z]{3}$`)
	// digitSuffix extracts the trailing numeric run of a stored code value.
	digitSuffix = regexp.MustCompile(`\d+$`)
)

// Allocator computes next codes and serializes allocation per model.
// The zero value is not usable; construct with New.
type Allocator struct {
	locks sync.Map // model type name -> *sync.Mutex
	now   func() time.Time
}

// New creates an Allocator using the wall clock.
func New() *Allocator {
	return &Allocator{now: time.Now}
}

// Allocate runs fn inside a transaction while holding the allocation lock
// for model's table. fn receives the transaction and the freshly computed
// code and must insert the row carrying it. When the insert collides on the
// code column's uniqueness constraint, the whole operation is re-run,
// allocation included, at most maxTries times.
func (a *Allocator) Allocate(ctx context.Context, db *gorm.DB, prefix string, model any, fn func(tx *gorm.DB, code string) error) error {
	if !prefixPattern.MatchString(prefix) {
		return domain.NewAppError(domain.CodeValidation,
			fmt.Sprintf("invalid code prefix %q: must be 3 upper-case letters", prefix), nil)
	}

	attempt := func() (struct{}, error) {
		mu := a.lockFor(model)
		mu.Lock()
		defer mu.Unlock()

		err := pkg.WithTx(db.WithContext(ctx), func(tx *gorm.DB) error {
			code, err := a.Next(tx, prefix, model)
			if err != nil {
				return err
			}
			return fn(tx, code)
		})
		if err != nil && !domain.IsAlreadyExists(err) {
			return struct{}{}, backoff.Permanent(err)
		}
		return struct{}{}, err
	}

	_, err := backoff.Retry(ctx, attempt,
		backoff.WithBackOff(&backoff.ZeroBackOff{}),
		backoff.WithMaxTries(maxTries),
	)
	return err
}

// Next computes the next code for model's code column within tx. It finds
// the row whose code suffix is numerically greatest (not lexicographically,
// so a sequence widened past 4 digits still sorts correctly), extracts the
// trailing numeric run, drops the embedded date digits, and increments the
// remainder. An empty table starts the sequence at 1.
func (a *Allocator) Next(tx *gorm.DB, prefix string, model any) (string, error) {
	var latest struct{ Code string }
	err := tx.Model(model).
		Select("code").
		Order(fmt.Sprintf("CAST(SUBSTR(code, %d) AS BIGINT) DESC", prefixLen+1)).
		Limit(1).
		Scan(&latest).Error
	if err != nil {
		return "", domain.NewAppError(domain.CodeInternal, "query latest code", err)
	}

	today := prefix + a.now().Format("060102")
	return today + nextSequence(digitSuffix.FindString(latest.Code)), nil
}

// nextSequence increments the sequence embedded in a code's trailing numeric
// run. The run's first six characters are the date digits and are dropped;
// the remainder is the sequence. Padding is to four digits minimum, wider
// sequences are kept as-is.
func nextSequence(run string) string {
	seq := 0
	if len(run) > dateDigits {
		n, err := strconv.Atoi(run[dateDigits:])
		if err == nil {
			seq = n
		}
	}
	return fmt.Sprintf("%0*d", sequenceDigits, seq+1)
}

// lockFor returns the allocation mutex for model's type, creating it on
// first use.
func (a *Allocator) lockFor(model any) *sync.Mutex {
	key := fmt.Sprintf("%T", model)
	v, _ := a.locks.LoadOrStore(key, &sync.Mutex{})
	return v.(*sync.Mutex)
}
