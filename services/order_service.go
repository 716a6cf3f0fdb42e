package services

import (
	"SiriaExpress/config/database"
	"SiriaExpress/models"
	"SiriaExpress/utils"
	"context"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/shopspring/decimal"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DeliveryFee is the flat fee added to every order at checkout.
const DeliveryFee = 5.00

// defaultEstimatedMinutes is the initial estimate shown on the tracking page.
const defaultEstimatedMinutes = 45

type OrderService struct {
	FirestoreClient *firestore.Client
	CartService     *CartService
	Hub             *Hub
}

// NewOrderService initializes OrderService with Firestore, the cart it
// drains at checkout and the realtime hub it announces orders on
func NewOrderService() *OrderService {
	return &OrderService{
		FirestoreClient: database.GetFirestoreClient(),
		CartService:     NewCartService(),
		Hub:             GetHub(),
	}
}

type CheckoutRequest struct {
	PaymentMethod models.PaymentMethod `json:"payment_method" binding:"required"`
	Address       *models.OrderAddress `json:"address"`
}

// Checkout snapshots the cart into an order. Payment is simulated and
// always settles, so the order is born paid; the cart is cleared on
// success.
func (s *OrderService) Checkout(ctx context.Context, userID string, req CheckoutRequest) (*models.Order, error) {
	if req.PaymentMethod != models.PaymentCreditCard && req.PaymentMethod != models.PaymentPix {
		return nil, utils.NewCustomError(http.StatusBadRequest, "Unknown payment method")
	}

	cart, err := s.CartService.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, utils.NewCustomError(http.StatusUnprocessableEntity, "Cart is empty")
	}

	subtotal := decimal.NewFromFloat(cart.Total)
	total := subtotal.Add(decimal.NewFromFloat(DeliveryFee)).RoundBank(2)

	docRef := s.FirestoreClient.Collection("orders").NewDoc()
	now := time.Now()
	order := models.Order{
		ID:            docRef.ID,
		UserID:        userID,
		Items:         cart.Items,
		Subtotal:      cart.Total,
		DeliveryFee:   DeliveryFee,
		Total:         total.InexactFloat64(),
		Status:        models.StatusPaid,
		PaymentMethod: req.PaymentMethod,
		Address:       req.Address,
		EstimatedTime: defaultEstimatedMinutes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := docRef.Set(ctx, order); err != nil {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to create order")
	}

	if err := s.CartService.Clear(ctx, userID); err != nil {
		return nil, err
	}

	s.Hub.Broadcast(models.ChangeEvent{
		Table: "orders",
		Event: models.ChangeInsert,
		New:   order,
	})

	return &order, nil
}

// GetOrders returns all orders for a user, newest first
func (s *OrderService) GetOrders(ctx context.Context, userID string) ([]models.Order, error) {
	iter := s.FirestoreClient.Collection("orders").
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)

	var orders []models.Order
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch orders")
		}

		var order models.Order
		if err := doc.DataTo(&order); err != nil {
			return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to parse order data")
		}
		order.ID = doc.Ref.ID
		orders = append(orders, order)
	}

	return orders, nil
}

// GetOrderByID returns a single order. Non-admin callers only see their
// own orders.
func (s *OrderService) GetOrderByID(ctx context.Context, userID, orderID string, isAdmin bool) (*models.Order, error) {
	doc, err := s.FirestoreClient.Collection("orders").Doc(orderID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, utils.NewCustomError(http.StatusNotFound, "Order not found")
		}
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch order")
	}

	var order models.Order
	if err := doc.DataTo(&order); err != nil {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to parse order data")
	}
	order.ID = doc.Ref.ID

	if !isAdmin && order.UserID != userID {
		return nil, utils.NewCustomError(http.StatusNotFound, "Order not found")
	}
	return &order, nil
}

// GetAllOrders returns every order for the admin panel, newest first
func (s *OrderService) GetAllOrders(ctx context.Context) ([]models.Order, error) {
	iter := s.FirestoreClient.Collection("orders").
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)

	var orders []models.Order
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch orders")
		}

		var order models.Order
		if err := doc.DataTo(&order); err != nil {
			return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to parse order data")
		}
		order.ID = doc.Ref.ID
		orders = append(orders, order)
	}

	return orders, nil
}

// AdvanceStatus moves an order one step up the ladder. Delivered is
// terminal; the ladder never walks backwards.
func (s *OrderService) AdvanceStatus(ctx context.Context, orderID string) (*models.Order, error) {
	docRef := s.FirestoreClient.Collection("orders").Doc(orderID)
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, utils.NewCustomError(http.StatusNotFound, "Order not found")
		}
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch order")
	}

	var order models.Order
	if err := doc.DataTo(&order); err != nil {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to parse order data")
	}
	order.ID = doc.Ref.ID

	next := models.NextStatus(order.Status)
	if next == order.Status {
		return nil, utils.NewCustomError(http.StatusConflict, "Order is already delivered")
	}

	order.Status = next
	order.UpdatedAt = time.Now()
	_, err = docRef.Update(ctx, []firestore.Update{
		{Path: "status", Value: order.Status},
		{Path: "updatedAt", Value: order.UpdatedAt},
	})
	if err != nil {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to update order status")
	}

	s.Hub.Broadcast(models.ChangeEvent{
		Table: "orders",
		Event: models.ChangeUpdate,
		New:   order,
	})

	return &order, nil
}
