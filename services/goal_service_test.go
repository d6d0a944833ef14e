package services

import (
	"errors"
	"testing"
)

// Range validation happens before any database access, so a nil-db service
// is enough here.
func TestGoalUpsertRange(t *testing.T) {
	svc := NewGoalService(nil)

	for _, calories := range []int{-1, 0, 499, 10001} {
		if _, err := svc.Upsert(1, calories); !errors.Is(err, ErrGoalOutOfRange) {
			t.Errorf("Upsert(%d) err = %v, want ErrGoalOutOfRange", calories, err)
		}
	}
}
