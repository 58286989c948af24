package usecase

import (
	"context"

	"go-hospital-management/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AdminUsecase interface {
	ResetDemo(ctx context.Context) error
}

type adminUsecase struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewAdminUsecase(db *gorm.DB, log *logrus.Logger) AdminUsecase {
	return &adminUsecase{
		db:  db,
		log: log,
	}
}

// ResetDemo empties every table in one transaction so the demo dataset can be
// reseeded from scratch.
func (u *adminUsecase) ResetDemo(ctx context.Context) error {
	models := []interface{}{
		&entity.Bill{},
		&entity.CanteenOrder{},
		&entity.CanteenItem{},
		&entity.Bed{},
		&entity.Medicine{},
		&entity.Nurse{},
		&entity.Doctor{},
		&entity.Patient{},
	}

	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range models {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		u.log.Errorf("Failed to reset demo data: %+v", err)
		return err
	}

	u.log.Info("Demo data reset: all tables emptied")
	return nil
}
