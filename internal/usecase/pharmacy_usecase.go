package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"go-hospital-management/internal/converter"
	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"
	"go-hospital-management/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrMedicineNotFound  = errors.New("medicine not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
)

type PharmacyUsecase interface {
	CreateMedicine(ctx context.Context, req *dto.CreateMedicineRequest) (*dto.MedicineResponse, error)
	GetAllMedicines(ctx context.Context) (*dto.MedicineListResponse, error)
	Purchase(ctx context.Context, medicineID int, req *dto.PurchaseMedicineRequest) (*dto.PurchaseResponse, error)
}

type pharmacyUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	medicineRepo repository.MedicineRepository
	billRepo     repository.BillRepository
}

func NewPharmacyUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	medicineRepo repository.MedicineRepository,
	billRepo repository.BillRepository,
) PharmacyUsecase {
	return &pharmacyUsecase{
		db:           db,
		log:          log,
		medicineRepo: medicineRepo,
		billRepo:     billRepo,
	}
}

func (u *pharmacyUsecase) CreateMedicine(ctx context.Context, req *dto.CreateMedicineRequest) (*dto.MedicineResponse, error) {
	if req.Quantity < 0 || req.Price.IsNegative() {
		return nil, ErrInvalidQuantity
	}

	medicine := &entity.Medicine{
		Name:     req.Name,
		Quantity: req.Quantity,
		Price:    req.Price,
	}

	if err := u.medicineRepo.Create(u.db.WithContext(ctx), medicine); err != nil {
		u.log.Warnf("Failed to create medicine: %+v", err)
		return nil, err
	}

	u.log.Infof("Medicine created: id=%d, name=%s, qty=%d", medicine.ID, medicine.Name, medicine.Quantity)
	return converter.MedicineToResponse(medicine), nil
}

func (u *pharmacyUsecase) GetAllMedicines(ctx context.Context) (*dto.MedicineListResponse, error) {
	medicines, err := u.medicineRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list medicines: %+v", err)
		return nil, err
	}

	return &dto.MedicineListResponse{
		Medicines: converter.MedicinesToResponses(medicines),
		Total:     len(medicines),
	}, nil
}

// Purchase decrements medicine stock and writes the matching bill.
//
// Flow:
// 1. Validate quantity is positive
// 2. Load the medicine for its name and price
// 3. Transaction { guarded stock decrement; bill insert }
//
// The decrement only matches rows with enough stock, so quantity can never go
// negative and a rejected purchase writes no bill. Both writes commit or roll
// back together.
func (u *pharmacyUsecase) Purchase(ctx context.Context, medicineID int, req *dto.PurchaseMedicineRequest) (*dto.PurchaseResponse, error) {
	if req.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	medicine, err := u.medicineRepo.FindByID(u.db.WithContext(ctx), medicineID)
	if err != nil {
		u.log.Warnf("Failed to find medicine %d: %+v", medicineID, err)
		return nil, err
	}
	if medicine == nil {
		return nil, ErrMedicineNotFound
	}
	// Fast-path rejection; the guarded decrement below stays authoritative
	// under concurrency.
	if !medicine.InStock(req.Quantity) {
		return nil, ErrInsufficientStock
	}

	amount := medicine.Price.Mul(decimal.NewFromInt(int64(req.Quantity)))
	bill := &entity.Bill{
		InvoiceCode: generateInvoiceCode(time.Now()),
		PatientID:   req.PatientID,
		Items: entity.BillLines{
			{
				Description: fmt.Sprintf("%s x%d", medicine.Name, req.Quantity),
				Amount:      amount,
			},
		},
		Total: amount,
	}

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows, err := u.medicineRepo.DecrementStock(tx, medicineID, req.Quantity)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrInsufficientStock
		}

		return u.billRepo.Create(tx, bill)
	})
	if err != nil {
		if errors.Is(err, ErrInsufficientStock) {
			return nil, ErrInsufficientStock
		}
		u.log.Warnf("Failed purchase of medicine %d: %+v", medicineID, err)
		return nil, err
	}

	medicine, err = u.medicineRepo.FindByID(u.db.WithContext(ctx), medicineID)
	if err != nil || medicine == nil {
		u.log.Warnf("Failed to reload medicine %d after purchase: %+v", medicineID, err)
		return nil, err
	}

	u.log.Infof("Medicine purchased: id=%d, qty=%d, invoice=%s", medicineID, req.Quantity, bill.InvoiceCode)
	return &dto.PurchaseResponse{
		Medicine: *converter.MedicineToResponse(medicine),
		Bill:     *converter.BillToResponse(bill),
	}, nil
}

// generateInvoiceCode generates a unique invoice code: INV-YYYYMMDD-XXXXXX
func generateInvoiceCode(at time.Time) string {
	randomBytes := make([]byte, 3)
	rand.Read(randomBytes)
	return fmt.Sprintf("INV-%s-%06X", at.Format("20060102"), randomBytes)
}
