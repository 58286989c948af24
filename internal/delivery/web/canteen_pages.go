package web

import (
	"errors"
	"net/http"
	"strconv"

	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/usecase"

	"github.com/shopspring/decimal"
)

// CanteenPage lists the canteen menu
func (h *Handler) CanteenPage(w http.ResponseWriter, r *http.Request) {
	items, err := h.canteenUsecase.GetAllItems(r.Context())
	if err != nil {
		h.redirectWithNotice(w, r, "/", "Could not load the canteen menu")
		return
	}

	h.render(w, r, "canteen.html", items)
}

// AddCanteenItem adds a menu item from the posted form
func (h *Handler) AddCanteenItem(w http.ResponseWriter, r *http.Request) {
	name := r.PostFormValue("name")
	if name == "" {
		h.redirectWithNotice(w, r, "/canteen", "Name is required")
		return
	}

	price, err := decimal.NewFromString(r.PostFormValue("price"))
	if err != nil || price.IsNegative() {
		h.redirectWithNotice(w, r, "/canteen", "Price must be a non-negative number")
		return
	}

	req := &dto.CreateCanteenItemRequest{
		Name:  name,
		Price: price,
	}

	if _, err := h.canteenUsecase.CreateItem(r.Context(), req); err != nil {
		h.redirectWithNotice(w, r, "/canteen", "Could not add canteen item")
		return
	}

	http.Redirect(w, r, "/canteen", http.StatusSeeOther)
}

// OrderFoodPage serves the order form with the current menu
func (h *Handler) OrderFoodPage(w http.ResponseWriter, r *http.Request) {
	items, err := h.canteenUsecase.GetAllItems(r.Context())
	if err != nil {
		h.redirectWithNotice(w, r, "/canteen", "Could not load the canteen menu")
		return
	}

	h.render(w, r, "order_form.html", items)
}

// OrderFood places an order from the posted form. The form posts parallel
// item_id/qty value lists which are zipped into structured lines; prices come
// from the store, never the form.
func (h *Handler) OrderFood(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.redirectWithNotice(w, r, "/order_food", "Invalid order form")
		return
	}

	patientID, err := formInt(r, "patient_id")
	if err != nil {
		h.redirectWithNotice(w, r, "/order_food", "Patient id must be a number")
		return
	}

	itemIDs := r.PostForm["item_id"]
	qtys := r.PostForm["qty"]
	if len(itemIDs) != len(qtys) {
		h.redirectWithNotice(w, r, "/order_food", "Invalid order form")
		return
	}

	lines := make([]dto.OrderLineRequest, 0, len(itemIDs))
	for i := range itemIDs {
		itemID, err := strconv.Atoi(itemIDs[i])
		if err != nil {
			h.redirectWithNotice(w, r, "/order_food", "Invalid order form")
			return
		}

		// An untouched row posts an empty quantity; treat it as zero.
		qty := 0
		if qtys[i] != "" {
			qty, err = strconv.Atoi(qtys[i])
			if err != nil {
				h.redirectWithNotice(w, r, "/order_food", "Quantities must be numbers")
				return
			}
		}

		lines = append(lines, dto.OrderLineRequest{ItemID: itemID, Quantity: qty})
	}

	req := &dto.CreateOrderRequest{
		PatientID: patientID,
		Lines:     lines,
	}

	if _, err := h.canteenUsecase.PlaceOrder(r.Context(), req); err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmptyOrder):
			h.redirectWithNotice(w, r, "/order_food", "Select at least one item")
		case errors.Is(err, usecase.ErrCanteenItemNotFound):
			h.redirectWithNotice(w, r, "/order_food", "Unknown canteen item")
		default:
			h.redirectWithNotice(w, r, "/order_food", "Could not place order")
		}
		return
	}

	http.Redirect(w, r, "/orders", http.StatusSeeOther)
}

// OrdersPage lists placed orders
func (h *Handler) OrdersPage(w http.ResponseWriter, r *http.Request) {
	orders, err := h.canteenUsecase.GetAllOrders(r.Context())
	if err != nil {
		h.redirectWithNotice(w, r, "/", "Could not load orders")
		return
	}

	h.render(w, r, "orders.html", orders)
}
