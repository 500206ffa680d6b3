package services

import (
	"careercenter_backend/pkg/apperrors"
	"gorm.io/gorm"
)

// requireDB - сервисы работают и без базы (деградированный режим),
// но любая операция над данными отвечает 503
func requireDB(db *gorm.DB) error {
	if db == nil {
		return apperrors.ErrDatabaseNotConfigured
	}
	return nil
}
