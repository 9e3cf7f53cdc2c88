package services

import (
	"context"
	"testing"
)

func TestAdminServiceImpl_Overview(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	_, item := seedUserWithItem(t, store)
	if _, err := NewWithdrawalService(store).Request(ctx, "111", item.ID.String(), testTradeAddress); err != nil {
		t.Fatalf("Request() error = %v", err)
	}

	overview := NewAdminService(store).Overview(ctx)
	if len(overview.Users) != 1 {
		t.Errorf("Users len = %d, want 1", len(overview.Users))
	}
	if len(overview.Cases) != 1 {
		t.Errorf("Cases len = %d, want 1", len(overview.Cases))
	}
	if len(overview.Withdrawals) != 1 {
		t.Errorf("Withdrawals len = %d, want 1", len(overview.Withdrawals))
	}
}
