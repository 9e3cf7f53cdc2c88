package storage

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"skindrop/internal/models"
)

func newMemoryStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(MemoryPath)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s
}

func TestGetOrCreateUser(t *testing.T) {
	ctx := context.Background()
	s := newMemoryStore(t)

	created, err := s.GetOrCreateUser(ctx, "111", "collector")
	if err != nil {
		t.Fatalf("GetOrCreateUser() error = %v", err)
	}
	if created.TelegramID != "111" {
		t.Errorf("TelegramID = %q, want %q", created.TelegramID, "111")
	}
	if created.BalanceCoins != 0 {
		t.Errorf("BalanceCoins = %d, want 0", created.BalanceCoins)
	}
	if created.ID == uuid.Nil {
		t.Error("ID is not assigned")
	}

	// Повторный вход возвращает того же пользователя
	same, err := s.GetOrCreateUser(ctx, "111", "")
	if err != nil {
		t.Fatalf("GetOrCreateUser() error = %v", err)
	}
	if same.ID != created.ID {
		t.Errorf("repeated login created new user: %v != %v", same.ID, created.ID)
	}
	if same.Username != "collector" {
		t.Errorf("empty username overwrote stored one: %q", same.Username)
	}

	// Непустое имя обновляет сохранённое
	renamed, err := s.GetOrCreateUser(ctx, "111", "trader")
	if err != nil {
		t.Fatalf("GetOrCreateUser() error = %v", err)
	}
	if renamed.Username != "trader" {
		t.Errorf("Username = %q, want %q", renamed.Username, "trader")
	}
}

func TestAdjustBalance(t *testing.T) {
	ctx := context.Background()
	s := newMemoryStore(t)

	if _, err := s.AdjustBalance(ctx, "missing", 100); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("AdjustBalance() error = %v, want ErrUserNotFound", err)
	}

	if _, err := s.GetOrCreateUser(ctx, "111", ""); err != nil {
		t.Fatalf("GetOrCreateUser() error = %v", err)
	}

	user, err := s.AdjustBalance(ctx, "111", 1000)
	if err != nil {
		t.Fatalf("AdjustBalance() error = %v", err)
	}
	if user.BalanceCoins != 1000 {
		t.Errorf("BalanceCoins = %d, want 1000", user.BalanceCoins)
	}

	user, err = s.AdjustBalance(ctx, "111", -250)
	if err != nil {
		t.Fatalf("AdjustBalance() error = %v", err)
	}
	if user.BalanceCoins != 750 {
		t.Errorf("BalanceCoins = %d, want 750", user.BalanceCoins)
	}
}

func TestAddCase(t *testing.T) {
	ctx := context.Background()
	s := newMemoryStore(t)

	first, err := s.AddCase(ctx, models.Case{Name: "First", PriceCoins: 100})
	if err != nil {
		t.Fatalf("AddCase() error = %v", err)
	}
	second, err := s.AddCase(ctx, models.Case{Name: "Second", PriceCoins: 200})
	if err != nil {
		t.Fatalf("AddCase() error = %v", err)
	}
	if first != 1 || second != 2 {
		t.Errorf("case ids = %d, %d, want 1, 2", first, second)
	}

	// Свежие кейсы идут первыми
	cases := s.ActiveCases(ctx)
	if len(cases) != 2 {
		t.Fatalf("ActiveCases() len = %d, want 2", len(cases))
	}
	if cases[0].Name != "Second" || cases[1].Name != "First" {
		t.Errorf("ActiveCases() order = %q, %q, want newest first", cases[0].Name, cases[1].Name)
	}
	if !cases[0].Active {
		t.Error("created case is not active")
	}
}

func TestActiveCaseByID(t *testing.T) {
	ctx := context.Background()
	s := newMemoryStore(t)

	id, err := s.AddCase(ctx, models.Case{Name: "Visible", PriceCoins: 100})
	if err != nil {
		t.Fatalf("AddCase() error = %v", err)
	}
	s.state.Cases = append(s.state.Cases, models.Case{ID: 99, Name: "Hidden", Active: false})

	if _, err := s.ActiveCaseByID(ctx, id); err != nil {
		t.Errorf("ActiveCaseByID() error = %v", err)
	}
	if _, err := s.ActiveCaseByID(ctx, 99); !errors.Is(err, ErrCaseNotFound) {
		t.Errorf("ActiveCaseByID(inactive) error = %v, want ErrCaseNotFound", err)
	}
	if _, err := s.ActiveCaseByID(ctx, 12345); !errors.Is(err, ErrCaseNotFound) {
		t.Errorf("ActiveCaseByID(unknown) error = %v, want ErrCaseNotFound", err)
	}
}

func TestRecordOpening(t *testing.T) {
	ctx := context.Background()
	s := newMemoryStore(t)

	user, err := s.GetOrCreateUser(ctx, "111", "")
	if err != nil {
		t.Fatalf("GetOrCreateUser() error = %v", err)
	}
	if _, err := s.AdjustBalance(ctx, "111", 300); err != nil {
		t.Fatalf("AdjustBalance() error = %v", err)
	}

	opening := models.Opening{
		ID:       uuid.New(),
		UserID:   user.ID,
		CaseID:   1,
		CaseName: "Dust II Starter",
		Spent:    250,
		SkinName: "AK-47 | Slate",
	}
	item := models.InventoryItem{
		ID:       uuid.New(),
		UserID:   user.ID,
		SkinName: "AK-47 | Slate",
		Status:   models.InventoryStatusAvailable,
	}

	updated, err := s.RecordOpening(ctx, opening, item)
	if err != nil {
		t.Fatalf("RecordOpening() error = %v", err)
	}
	if updated.BalanceCoins != 50 {
		t.Errorf("BalanceCoins = %d, want 50", updated.BalanceCoins)
	}
	if got := len(s.UserOpenings(ctx, user.ID, 0)); got != 1 {
		t.Errorf("openings count = %d, want 1", got)
	}
	if got := len(s.UserInventory(ctx, user.ID, "")); got != 1 {
		t.Errorf("inventory count = %d, want 1", got)
	}

	// При нехватке средств состояние не меняется
	opening.ID = uuid.New()
	item.ID = uuid.New()
	if _, err := s.RecordOpening(ctx, opening, item); !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("RecordOpening() error = %v, want ErrInsufficientBalance", err)
	}
	after, err := s.UserByTelegramID(ctx, "111")
	if err != nil {
		t.Fatalf("UserByTelegramID() error = %v", err)
	}
	if after.BalanceCoins != 50 {
		t.Errorf("BalanceCoins after rejected opening = %d, want 50", after.BalanceCoins)
	}
	if got := len(s.UserOpenings(ctx, user.ID, 0)); got != 1 {
		t.Errorf("openings count after rejected opening = %d, want 1", got)
	}

	opening.UserID = uuid.New()
	if _, err := s.RecordOpening(ctx, opening, item); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("RecordOpening(unknown user) error = %v, want ErrUserNotFound", err)
	}
}

func TestCreateWithdrawal(t *testing.T) {
	ctx := context.Background()
	s := newMemoryStore(t)

	user, err := s.GetOrCreateUser(ctx, "111", "")
	if err != nil {
		t.Fatalf("GetOrCreateUser() error = %v", err)
	}
	item := models.InventoryItem{
		ID:       uuid.New(),
		UserID:   user.ID,
		SkinName: "AK-47 | Slate",
		Status:   models.InventoryStatusAvailable,
	}
	if _, err := s.RecordOpening(ctx, models.Opening{ID: uuid.New(), UserID: user.ID}, item); err != nil {
		t.Fatalf("RecordOpening() error = %v", err)
	}

	w := models.Withdrawal{
		ID:              uuid.New(),
		UserID:          user.ID,
		InventoryItemID: item.ID,
		TradeAddress:    "https://steamcommunity.com/tradeoffer/new/?partner=1",
		Status:          models.WithdrawalStatusPending,
	}
	if err := s.CreateWithdrawal(ctx, w); err != nil {
		t.Fatalf("CreateWithdrawal() error = %v", err)
	}

	stored, err := s.InventoryItemByOwner(ctx, user.ID, item.ID)
	if err != nil {
		t.Fatalf("InventoryItemByOwner() error = %v", err)
	}
	if stored.Status != models.InventoryStatusPendingWithdrawal {
		t.Errorf("item status = %q, want %q", stored.Status, models.InventoryStatusPendingWithdrawal)
	}
	after, err := s.UserByTelegramID(ctx, "111")
	if err != nil {
		t.Fatalf("UserByTelegramID() error = %v", err)
	}
	if after.TradeAddress != w.TradeAddress {
		t.Errorf("TradeAddress = %q, want %q", after.TradeAddress, w.TradeAddress)
	}

	// Повторная заявка на тот же предмет отклоняется
	w.ID = uuid.New()
	if err := s.CreateWithdrawal(ctx, w); !errors.Is(err, ErrItemNotAvailable) {
		t.Errorf("CreateWithdrawal(pending item) error = %v, want ErrItemNotAvailable", err)
	}

	// Чужой предмет не выводится
	w.ID = uuid.New()
	w.UserID = uuid.New()
	if err := s.CreateWithdrawal(ctx, w); !errors.Is(err, ErrInventoryItemNotFound) {
		t.Errorf("CreateWithdrawal(foreign item) error = %v, want ErrInventoryItemNotFound", err)
	}
}

func TestSetWithdrawalStatus(t *testing.T) {
	ctx := context.Background()
	s := newMemoryStore(t)

	user, err := s.GetOrCreateUser(ctx, "111", "")
	if err != nil {
		t.Fatalf("GetOrCreateUser() error = %v", err)
	}
	item := models.InventoryItem{ID: uuid.New(), UserID: user.ID, Status: models.InventoryStatusAvailable}
	if _, err := s.RecordOpening(ctx, models.Opening{ID: uuid.New(), UserID: user.ID}, item); err != nil {
		t.Fatalf("RecordOpening() error = %v", err)
	}
	w := models.Withdrawal{
		ID:              uuid.New(),
		UserID:          user.ID,
		InventoryItemID: item.ID,
		TradeAddress:    "addr",
		Status:          models.WithdrawalStatusPending,
	}
	if err := s.CreateWithdrawal(ctx, w); err != nil {
		t.Fatalf("CreateWithdrawal() error = %v", err)
	}

	if err := s.SetWithdrawalStatus(ctx, uuid.New(), models.WithdrawalStatusApproved, ""); !errors.Is(err, ErrWithdrawalNotFound) {
		t.Errorf("SetWithdrawalStatus(unknown) error = %v, want ErrWithdrawalNotFound", err)
	}

	// Статус без itemStatus не трогает предмет
	if err := s.SetWithdrawalStatus(ctx, w.ID, models.WithdrawalStatusApproved, ""); err != nil {
		t.Fatalf("SetWithdrawalStatus() error = %v", err)
	}
	stored, err := s.InventoryItemByOwner(ctx, user.ID, item.ID)
	if err != nil {
		t.Fatalf("InventoryItemByOwner() error = %v", err)
	}
	if stored.Status != models.InventoryStatusPendingWithdrawal {
		t.Errorf("item status = %q, want %q", stored.Status, models.InventoryStatusPendingWithdrawal)
	}

	// itemStatus переводит связанный предмет
	if err := s.SetWithdrawalStatus(ctx, w.ID, models.WithdrawalStatusSent, models.InventoryStatusWithdrawn); err != nil {
		t.Fatalf("SetWithdrawalStatus() error = %v", err)
	}
	stored, err = s.InventoryItemByOwner(ctx, user.ID, item.ID)
	if err != nil {
		t.Fatalf("InventoryItemByOwner() error = %v", err)
	}
	if stored.Status != models.InventoryStatusWithdrawn {
		t.Errorf("item status = %q, want %q", stored.Status, models.InventoryStatusWithdrawn)
	}

	ws := s.UserWithdrawals(ctx, user.ID, 0)
	if len(ws) != 1 {
		t.Fatalf("UserWithdrawals() len = %d, want 1", len(ws))
	}
	if ws[0].Status != models.WithdrawalStatusSent {
		t.Errorf("withdrawal status = %q, want %q", ws[0].Status, models.WithdrawalStatusSent)
	}
}

func TestSeedDefaultCases(t *testing.T) {
	ctx := context.Background()
	s := newMemoryStore(t)

	if err := s.SeedDefaultCases(ctx); err != nil {
		t.Fatalf("SeedDefaultCases() error = %v", err)
	}
	cases := s.ActiveCases(ctx)
	if len(cases) != 3 {
		t.Fatalf("ActiveCases() len = %d, want 3", len(cases))
	}
	if cases[0].Name != "Night Market" {
		t.Errorf("newest case = %q, want %q", cases[0].Name, "Night Market")
	}
	for _, c := range cases {
		if len(c.Items) == 0 {
			t.Errorf("case %q has no items", c.Name)
		}
	}

	// Повторный вызов не дублирует каталог
	if err := s.SeedDefaultCases(ctx); err != nil {
		t.Fatalf("SeedDefaultCases() error = %v", err)
	}
	if got := len(s.ActiveCases(ctx)); got != 3 {
		t.Errorf("ActiveCases() len after reseed = %d, want 3", got)
	}

	// Каталог с данными не перезаписывается
	other := newMemoryStore(t)
	if _, err := other.AddCase(ctx, models.Case{Name: "Custom", PriceCoins: 10}); err != nil {
		t.Fatalf("AddCase() error = %v", err)
	}
	if err := other.SeedDefaultCases(ctx); err != nil {
		t.Fatalf("SeedDefaultCases() error = %v", err)
	}
	if got := len(other.ActiveCases(ctx)); got != 1 {
		t.Errorf("ActiveCases() len = %d, want 1", got)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "app.db.json")

	first, err := New(path)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := first.SeedDefaultCases(ctx); err != nil {
		t.Fatalf("SeedDefaultCases() error = %v", err)
	}
	user, err := first.GetOrCreateUser(ctx, "111", "collector")
	if err != nil {
		t.Fatalf("GetOrCreateUser() error = %v", err)
	}
	if _, err := first.AdjustBalance(ctx, "111", 1000); err != nil {
		t.Fatalf("AdjustBalance() error = %v", err)
	}
	item := models.InventoryItem{
		ID:         uuid.New(),
		UserID:     user.ID,
		SkinName:   "AK-47 | Slate",
		SteamValue: decimal.NewFromFloat(6.5),
		Status:     models.InventoryStatusAvailable,
	}
	opening := models.Opening{
		ID:         uuid.New(),
		UserID:     user.ID,
		CaseID:     1,
		CaseName:   "Dust II Starter",
		Spent:      250,
		SkinName:   item.SkinName,
		SteamValue: item.SteamValue,
	}
	if _, err := first.RecordOpening(ctx, opening, item); err != nil {
		t.Fatalf("RecordOpening() error = %v", err)
	}

	// Перезагрузка восстанавливает состояние, повторная нормализация
	// ничего не меняет
	second, err := New(path)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	third, err := New(path)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if !reflect.DeepEqual(second.state, third.state) {
		t.Error("normalization is not idempotent across reloads")
	}

	reloaded, err := second.UserByTelegramID(ctx, "111")
	if err != nil {
		t.Fatalf("UserByTelegramID() error = %v", err)
	}
	if reloaded.BalanceCoins != 750 {
		t.Errorf("BalanceCoins = %d, want 750", reloaded.BalanceCoins)
	}
	if reloaded.ID != user.ID {
		t.Errorf("user id changed across reload: %v != %v", reloaded.ID, user.ID)
	}
	if got := len(second.ActiveCases(ctx)); got != 3 {
		t.Errorf("ActiveCases() len = %d, want 3", got)
	}
	inv := second.UserInventory(ctx, user.ID, "")
	if len(inv) != 1 {
		t.Fatalf("UserInventory() len = %d, want 1", len(inv))
	}
	if !inv[0].SteamValue.Equal(decimal.NewFromFloat(6.5)) {
		t.Errorf("SteamValue = %s, want 6.5", inv[0].SteamValue)
	}
}
