package services

import (
	"SiriaExpress/config/database"
	"SiriaExpress/models"
	"SiriaExpress/pricing"
	"SiriaExpress/utils"
	"context"
	"net/http"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type CartService struct {
	FirestoreClient *firestore.Client
	MenuService     *MenuService
}

// NewCartService initializes CartService with the Firestore client and the
// menu service it prices against
func NewCartService() *CartService {
	return &CartService{
		FirestoreClient: database.GetFirestoreClient(),
		MenuService:     NewMenuService(),
	}
}

// CustomizationRequest is what the storefront sends when adding an item.
// Ingredients come in as ids; prices are always resolved server-side from
// the catalog so the client cannot set them.
type CustomizationRequest struct {
	RemovedIngredients    []string                `json:"removed_ingredients"`
	AdditionalIngredients []string                `json:"additional_ingredients"`
	SelectedOption        string                  `json:"selected_option"`
	ComboSelections       *models.ComboSelections `json:"combo_selections"`
}

// Cart is the assembled response shape: all lines plus the running total
type Cart struct {
	Items []models.CartItem `json:"items"`
	Total float64           `json:"total"`
}

func (s *CartService) cartRef(userID string) *firestore.CollectionRef {
	return s.FirestoreClient.Collection("users").Doc(userID).Collection("cart")
}

// GetCart returns all cart lines for a user with the running total
func (s *CartService) GetCart(ctx context.Context, userID string) (*Cart, error) {
	iter := s.cartRef(userID).OrderBy("createdAt", firestore.Asc).Documents(ctx)

	cart := &Cart{Items: []models.CartItem{}}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch cart")
		}

		var item models.CartItem
		if err := doc.DataTo(&item); err != nil {
			return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to parse cart data")
		}
		item.ID = doc.Ref.ID
		cart.Items = append(cart.Items, item)
	}

	cart.Total = models.CartTotal(cart.Items)
	return cart, nil
}

// AddItem customizes a catalog item and stores the priced line. The
// customization is re-validated and re-priced here; a selection with
// missing required choices comes back as a 422 carrying the user-facing
// prompt, never as a server fault.
func (s *CartService) AddItem(ctx context.Context, userID, itemID string, quantity int, req CustomizationRequest) (*models.CartItem, error) {
	item, err := s.MenuService.GetMenuItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !item.Available {
		return nil, utils.NewCustomError(http.StatusConflict, "Menu item is not available")
	}

	session := pricing.NewSession(item)
	if err := applyCustomization(session, item, req); err != nil {
		return nil, err
	}

	line, result, err := session.Confirm(quantity)
	if err != nil {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to confirm customization")
	}
	if !result.OK {
		return nil, utils.NewCustomError(http.StatusUnprocessableEntity, result.Message)
	}

	docRef := s.cartRef(userID).Doc(line.ID)
	if _, err := docRef.Set(ctx, line); err != nil {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to add item to cart")
	}
	return line, nil
}

// applyCustomization replays the request onto a fresh session. Resolving
// ingredients through the catalog item keeps the removable/additional
// guards in force.
func applyCustomization(session *pricing.Session, item *models.MenuItem, req CustomizationRequest) error {
	for _, id := range req.RemovedIngredients {
		ingredient := item.FindIngredient(id)
		if ingredient == nil {
			continue // stale snapshot; ignore rather than fail
		}
		if err := session.ToggleRemoved(*ingredient); err != nil {
			return err
		}
	}

	for _, id := range req.AdditionalIngredients {
		ingredient := item.FindIngredient(id)
		if ingredient == nil {
			continue
		}
		if err := session.ToggleAdditional(*ingredient); err != nil {
			return err
		}
	}

	if req.SelectedOption != "" {
		if err := session.SelectPortion(req.SelectedOption); err != nil {
			return err
		}
	}

	if req.ComboSelections != nil {
		picks := pricing.ComboPicks{
			Lanche1: req.ComboSelections.Lanche1,
			Lanche2: req.ComboSelections.Lanche2,
			Bebida:  req.ComboSelections.Bebida,
		}
		if err := session.SelectCombo(picks); err != nil {
			return err
		}
	}

	return nil
}

// UpdateQuantity sets the quantity on an existing line; zero or less
// removes the line
func (s *CartService) UpdateQuantity(ctx context.Context, userID, lineID string, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(ctx, userID, lineID)
	}

	docRef := s.cartRef(userID).Doc(lineID)
	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return utils.NewCustomError(http.StatusNotFound, "Cart item not found")
		}
		return utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch cart item")
	}

	_, err := docRef.Update(ctx, []firestore.Update{
		{Path: "quantity", Value: quantity},
	})
	if err != nil {
		return utils.NewCustomError(http.StatusInternalServerError, "Failed to update quantity")
	}
	return nil
}

// RemoveItem deletes one line from the cart
func (s *CartService) RemoveItem(ctx context.Context, userID, lineID string) error {
	docRef := s.cartRef(userID).Doc(lineID)
	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return utils.NewCustomError(http.StatusNotFound, "Cart item not found")
		}
		return utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch cart item")
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return utils.NewCustomError(http.StatusInternalServerError, "Failed to remove cart item")
	}
	return nil
}

// Clear removes every line from the user's cart in one batch
func (s *CartService) Clear(ctx context.Context, userID string) error {
	docs, err := s.cartRef(userID).Documents(ctx).GetAll()
	if err != nil {
		return utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch cart")
	}
	if len(docs) == 0 {
		return nil
	}

	batch := s.FirestoreClient.Batch()
	for _, doc := range docs {
		batch.Delete(doc.Ref)
	}
	if _, err := batch.Commit(ctx); err != nil {
		return utils.NewCustomError(http.StatusInternalServerError, "Failed to clear cart")
	}
	return nil
}
