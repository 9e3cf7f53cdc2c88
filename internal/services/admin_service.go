package services

import (
	"context"

	"skindrop/internal/models"
)

// adminWithdrawalsLimit - сколько последних заявок попадает в сводку.
const adminWithdrawalsLimit = 50

// AdminService описывает сводные операции админ-панели.
type AdminService interface {
	Overview(ctx context.Context) *models.AdminOverview
}

type AdminServiceImpl struct {
	storage AdminStorage
}

// NewAdminService создаёт сервис админской сводки.
func NewAdminService(storage AdminStorage) *AdminServiceImpl {
	return &AdminServiceImpl{storage: storage}
}

// Overview собирает сводку: все пользователи, весь каталог и последние заявки
// на вывод.
func (s *AdminServiceImpl) Overview(ctx context.Context) *models.AdminOverview {
	return &models.AdminOverview{
		Users:       s.storage.Users(ctx),
		Cases:       s.storage.Cases(ctx),
		Withdrawals: s.storage.RecentWithdrawals(ctx, adminWithdrawalsLimit),
	}
}
