package web

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"go-hospital-management/internal/domain/entity"
	"go-hospital-management/internal/repository"
	"go-hospital-management/internal/usecase"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fakeFlash records notices in memory instead of redis.
type fakeFlash struct {
	notices map[string]string
}

func (f *fakeFlash) Set(_ context.Context, token string, message string) error {
	if f.notices == nil {
		f.notices = map[string]string{}
	}
	f.notices[token] = message
	return nil
}

func (f *fakeFlash) Pop(_ context.Context, token string) (string, error) {
	message := f.notices[token]
	delete(f.notices, token)
	return message, nil
}

func (f *fakeFlash) last() string {
	for _, message := range f.notices {
		return message
	}
	return ""
}

func newTestHandler(t *testing.T) (*Handler, *fakeFlash, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	err = db.AutoMigrate(
		&entity.Patient{},
		&entity.Doctor{},
		&entity.Nurse{},
		&entity.Medicine{},
		&entity.Bed{},
		&entity.CanteenItem{},
		&entity.CanteenOrder{},
		&entity.Bill{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	flash := &fakeFlash{}
	handler, err := NewHandler(
		log,
		flash,
		usecase.NewPatientUsecase(log, repository.NewPatientRepository(db)),
		usecase.NewDoctorUsecase(log, repository.NewDoctorRepository(db)),
		usecase.NewNurseUsecase(log, repository.NewNurseRepository(db)),
		usecase.NewFacilityUsecase(db, log, repository.NewBedRepository()),
		usecase.NewPharmacyUsecase(db, log, repository.NewMedicineRepository(), repository.NewBillRepository()),
		usecase.NewCanteenUsecase(db, log, repository.NewCanteenItemRepository(db), repository.NewCanteenOrderRepository()),
		usecase.NewBillingUsecase(db, log, repository.NewBillRepository()),
		usecase.NewDashboardUsecase(db, log, repository.NewStatsRepository(), repository.NewBillRepository(), 10),
		usecase.NewAdminUsecase(db, log),
	)
	if err != nil {
		t.Fatalf("failed to build handler: %v", err)
	}

	return handler, flash, db
}

func postForm(handlerFunc http.HandlerFunc, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handlerFunc(rec, req)
	return rec
}

func TestOrderFoodZipsParallelLists(t *testing.T) {
	handler, _, db := newTestHandler(t)

	soup := entity.CanteenItem{Name: "Soup", Price: decimal.NewFromFloat(3.25)}
	rice := entity.CanteenItem{Name: "Rice bowl", Price: decimal.NewFromFloat(5.50)}
	for _, item := range []*entity.CanteenItem{&soup, &rice} {
		if err := db.Create(item).Error; err != nil {
			t.Fatalf("failed to seed item: %v", err)
		}
	}

	form := url.Values{}
	form.Set("patient_id", "1")
	form.Add("item_id", strconv.Itoa(soup.ID))
	form.Add("qty", "2")
	form.Add("item_id", strconv.Itoa(rice.ID))
	form.Add("qty", "") // untouched row

	rec := postForm(handler.OrderFood, "/order_food", form)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/orders" {
		t.Fatalf("expected redirect to /orders, got %q", got)
	}

	var orders []entity.CanteenOrder
	if err := db.Find(&orders).Error; err != nil {
		t.Fatalf("failed to load orders: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
	if len(orders[0].Items) != 1 || orders[0].Items[0].Qty != 2 {
		t.Errorf("expected one line of qty 2, got %+v", orders[0].Items)
	}
	if !orders[0].Total.Equal(decimal.NewFromFloat(6.50)) {
		t.Errorf("expected total 6.50, got %s", orders[0].Total)
	}
}

func TestOrderFoodEmptyOrderFlashesNotice(t *testing.T) {
	handler, flash, db := newTestHandler(t)

	item := entity.CanteenItem{Name: "Soup", Price: decimal.NewFromFloat(3.25)}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("failed to seed item: %v", err)
	}

	form := url.Values{}
	form.Set("patient_id", "1")
	form.Add("item_id", strconv.Itoa(item.ID))
	form.Add("qty", "0")

	rec := postForm(handler.OrderFood, "/order_food", form)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/order_food" {
		t.Fatalf("expected redirect back to /order_food, got %q", got)
	}
	if got := flash.last(); got != "Select at least one item" {
		t.Errorf("unexpected notice: %q", got)
	}
}

func TestCreateBillSkipsBlankRows(t *testing.T) {
	handler, _, db := newTestHandler(t)

	form := url.Values{}
	form.Set("patient_id", "3")
	form.Add("description", "X-ray")
	form.Add("amount", "20")
	form.Add("description", "")
	form.Add("amount", "")

	rec := postForm(handler.CreateBill, "/billing", form)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/bills" {
		t.Fatalf("expected redirect to /bills, got %q", got)
	}

	var bills []entity.Bill
	if err := db.Find(&bills).Error; err != nil {
		t.Fatalf("failed to load bills: %v", err)
	}
	if len(bills) != 1 {
		t.Fatalf("expected 1 bill, got %d", len(bills))
	}
	if len(bills[0].Items) != 1 || !bills[0].Total.Equal(decimal.NewFromInt(20)) {
		t.Errorf("expected one line totalling 20, got %+v", bills[0])
	}
}

func TestBuyMedicineInsufficientStockFlashesNotice(t *testing.T) {
	handler, flash, db := newTestHandler(t)

	medicine := entity.Medicine{Name: "Aspirin", Quantity: 7, Price: decimal.NewFromInt(2)}
	if err := db.Create(&medicine).Error; err != nil {
		t.Fatalf("failed to seed medicine: %v", err)
	}

	form := url.Values{}
	form.Set("med_id", strconv.Itoa(medicine.ID))
	form.Set("patient_id", "1")
	form.Set("quantity", "8")

	rec := postForm(handler.BuyMedicine, "/buy_medicine", form)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if got := flash.last(); got != "Insufficient stock" {
		t.Errorf("unexpected notice: %q", got)
	}

	var reloaded entity.Medicine
	if err := db.First(&reloaded, medicine.ID).Error; err != nil {
		t.Fatalf("failed to reload medicine: %v", err)
	}
	if reloaded.Quantity != 7 {
		t.Errorf("expected stock unchanged at 7, got %d", reloaded.Quantity)
	}
}
