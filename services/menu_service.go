package services

import (
	"SiriaExpress/config/database"
	"SiriaExpress/models"
	"SiriaExpress/utils"
	"context"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type MenuService struct {
	FirestoreClient *firestore.Client
}

// NewMenuService initializes MenuService with the Firestore client
func NewMenuService() *MenuService {
	return &MenuService{
		FirestoreClient: database.GetFirestoreClient(),
	}
}

// GetCategories returns all catalog categories ordered by name
func (s *MenuService) GetCategories(ctx context.Context) ([]models.Category, error) {
	iter := s.FirestoreClient.Collection("categories").OrderBy("name", firestore.Asc).Documents(ctx)

	var categories []models.Category
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch categories")
		}

		var category models.Category
		if err := doc.DataTo(&category); err != nil {
			return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to parse category data")
		}
		category.ID = doc.Ref.ID
		categories = append(categories, category)
	}

	return categories, nil
}

// CreateCategory stores a new category and returns it with its generated id
func (s *MenuService) CreateCategory(ctx context.Context, category models.Category) (*models.Category, error) {
	docRef := s.FirestoreClient.Collection("categories").NewDoc()
	category.ID = docRef.ID
	category.CreatedAt = time.Now().Format(time.RFC3339)

	if _, err := docRef.Set(ctx, category); err != nil {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to create category")
	}
	return &category, nil
}

// UpdateCategory overwrites an existing category
func (s *MenuService) UpdateCategory(ctx context.Context, category models.Category) (*models.Category, error) {
	docRef := s.FirestoreClient.Collection("categories").Doc(category.ID)
	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, utils.NewCustomError(http.StatusNotFound, "Category not found")
		}
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch category")
	}

	if _, err := docRef.Set(ctx, category); err != nil {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to update category")
	}
	return &category, nil
}

// DeleteCategory removes a category document
func (s *MenuService) DeleteCategory(ctx context.Context, categoryID string) error {
	docRef := s.FirestoreClient.Collection("categories").Doc(categoryID)
	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return utils.NewCustomError(http.StatusNotFound, "Category not found")
		}
		return utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch category")
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return utils.NewCustomError(http.StatusInternalServerError, "Failed to delete category")
	}
	return nil
}

// GetMenuItems returns the whole catalog ordered by category then name.
// Unavailable items are returned with their flag set, not hidden, so the
// admin panel and storefront share one endpoint.
func (s *MenuService) GetMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	iter := s.FirestoreClient.Collection("menu_items").
		OrderBy("categoryId", firestore.Asc).
		OrderBy("name", firestore.Asc).
		Documents(ctx)

	var items []models.MenuItem
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch menu items")
		}

		var item models.MenuItem
		if err := doc.DataTo(&item); err != nil {
			return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to parse menu item data")
		}
		item.ID = doc.Ref.ID
		item.Normalize()
		items = append(items, item)
	}

	return items, nil
}

// GetMenuItemByID returns a single normalized catalog item
func (s *MenuService) GetMenuItemByID(ctx context.Context, itemID string) (*models.MenuItem, error) {
	doc, err := s.FirestoreClient.Collection("menu_items").Doc(itemID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, utils.NewCustomError(http.StatusNotFound, "Menu item not found")
		}
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch menu item")
	}

	var item models.MenuItem
	if err := doc.DataTo(&item); err != nil {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to parse menu item data")
	}
	item.ID = doc.Ref.ID
	item.Normalize()
	return &item, nil
}

// CreateMenuItem stores a new item. The kind is decided here, once, so
// customization never re-derives it.
func (s *MenuService) CreateMenuItem(ctx context.Context, item models.MenuItem) (*models.MenuItem, error) {
	docRef := s.FirestoreClient.Collection("menu_items").NewDoc()
	if item.ID == "" {
		item.ID = docRef.ID
	} else {
		docRef = s.FirestoreClient.Collection("menu_items").Doc(item.ID)
	}
	item.Normalize()

	now := time.Now().Format(time.RFC3339)
	item.CreatedAt = now
	item.UpdatedAt = now

	if _, err := docRef.Set(ctx, item); err != nil {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to create menu item")
	}
	return &item, nil
}

// UpdateMenuItem overwrites an existing item, re-normalizing its kind
func (s *MenuService) UpdateMenuItem(ctx context.Context, item models.MenuItem) (*models.MenuItem, error) {
	docRef := s.FirestoreClient.Collection("menu_items").Doc(item.ID)
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, utils.NewCustomError(http.StatusNotFound, "Menu item not found")
		}
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch menu item")
	}

	var existing models.MenuItem
	if err := doc.DataTo(&existing); err != nil {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to parse menu item")
	}
	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = time.Now().Format(time.RFC3339)
	item.Normalize()

	if _, err := docRef.Set(ctx, item); err != nil {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to update menu item")
	}
	return &item, nil
}

// DeleteMenuItem removes an item from the catalog
func (s *MenuService) DeleteMenuItem(ctx context.Context, itemID string) error {
	docRef := s.FirestoreClient.Collection("menu_items").Doc(itemID)
	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return utils.NewCustomError(http.StatusNotFound, "Menu item not found")
		}
		return utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch menu item")
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return utils.NewCustomError(http.StatusInternalServerError, "Failed to delete menu item")
	}
	return nil
}

// SeedMenu batch-writes the default catalog when the collection is empty
func (s *MenuService) SeedMenu(ctx context.Context) error {
	iter := s.FirestoreClient.Collection("menu_items").Limit(1).Documents(ctx)
	_, err := iter.Next()
	if err == nil {
		return nil // already seeded
	}
	if err != iterator.Done {
		return err
	}

	batch := s.FirestoreClient.Batch()

	for _, category := range DefaultCategories() {
		docRef := s.FirestoreClient.Collection("categories").Doc(category.ID)
		batch.Set(docRef, category)
	}

	for _, item := range DefaultMenu() {
		item.Normalize()
		docRef := s.FirestoreClient.Collection("menu_items").Doc(item.ID)
		batch.Set(docRef, item)
	}

	_, err = batch.Commit(ctx)
	return err
}
