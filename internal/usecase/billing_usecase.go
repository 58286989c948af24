package usecase

import (
	"context"
	"errors"
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
	ErrEmptyBill      = errors.New("bill has no line items")
	ErrNegativeAmount = errors.New("line amount must not be negative")
)

type BillingUsecase interface {
	CreateBill(ctx context.Context, req *dto.CreateBillRequest) (*dto.BillResponse, error)
	GetAllBills(ctx context.Context) (*dto.BillListResponse, error)
}

type billingUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	billRepo repository.BillRepository
}

func NewBillingUsecase(db *gorm.DB, log *logrus.Logger, billRepo repository.BillRepository) BillingUsecase {
	return &billingUsecase{
		db:       db,
		log:      log,
		billRepo: billRepo,
	}
}

// CreateBill assembles a bill from explicit description/amount line pairs.
// Lines with an empty description are dropped; a negative amount rejects the
// whole bill. Total is always the sum of the persisted line amounts.
func (u *billingUsecase) CreateBill(ctx context.Context, req *dto.CreateBillRequest) (*dto.BillResponse, error) {
	var lines entity.BillLines
	total := decimal.Zero

	for _, reqLine := range req.Lines {
		if reqLine.Description == "" {
			continue
		}
		if reqLine.Amount.IsNegative() {
			return nil, ErrNegativeAmount
		}

		lines = append(lines, entity.BillLine{
			Description: reqLine.Description,
			Amount:      reqLine.Amount,
		})
		total = total.Add(reqLine.Amount)
	}

	if len(lines) == 0 {
		return nil, ErrEmptyBill
	}

	bill := &entity.Bill{
		InvoiceCode: generateInvoiceCode(time.Now()),
		PatientID:   req.PatientID,
		Items:       lines,
		Total:       total,
	}

	if err := u.billRepo.Create(u.db.WithContext(ctx), bill); err != nil {
		u.log.Warnf("Failed to create bill for patient %d: %+v", req.PatientID, err)
		return nil, err
	}

	u.log.Infof("Bill created: invoice=%s, patient=%d, total=%s", bill.InvoiceCode, req.PatientID, total)
	return converter.BillToResponse(bill), nil
}

func (u *billingUsecase) GetAllBills(ctx context.Context) (*dto.BillListResponse, error) {
	bills, err := u.billRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list bills: %+v", err)
		return nil, err
	}

	return &dto.BillListResponse{
		Bills: converter.BillsToResponses(bills),
		Total: len(bills),
	}, nil
}
