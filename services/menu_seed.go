package services

import "SiriaExpress/models"

// DefaultCategories returns the categories seeded on first boot
func DefaultCategories() []models.Category {
	return []models.Category{
		{ID: "combos", Name: "Combos", Slug: "combos"},
		{ID: "lanches", Name: "Lanches", Slug: "lanches"},
		{ID: "doces-sirios", Name: "Doces Sírios", Slug: "doces-sirios"},
		{ID: "mercado-sirio", Name: "Mercado Sírio", Slug: "mercado-sirio"},
	}
}

// DefaultMenu returns the default catalog seeded on first boot
func DefaultMenu() []models.MenuItem {
	lanches := []models.ComboChoice{
		{ID: "kibe-carne", Name: "Kibe de Carne"},
		{ID: "kibe-queijo", Name: "Kibe de Queijo"},
		{ID: "falafel", Name: "Falafel"},
	}
	bebidas := []models.ComboChoice{
		{ID: "refrigerante", Name: "Refrigerante"},
		{ID: "suco-laranja", Name: "Suco de Laranja"},
		{ID: "agua", Name: "Água"},
	}

	return []models.MenuItem{
		{
			ID:              "combo-individual",
			Name:            "Combo Individual",
			Description:     "Combo perfeito para uma pessoa",
			Price:           45.90,
			CategoryID:      "combos",
			Available:       true,
			PreparationTime: "15-20 min",
			ServePeople:     1,
			Rating:          4.8,
			Options: &models.MenuOptions{
				Lanches: lanches,
				Bebidas: bebidas,
			},
		},
		{
			ID:              "combo-duplo",
			Name:            "Combo Duplo",
			Description:     "Combo ideal para duas pessoas",
			Price:           79.90,
			CategoryID:      "combos",
			Available:       true,
			PreparationTime: "20-25 min",
			ServePeople:     2,
			Rating:          4.9,
			Options: &models.MenuOptions{
				Lanches: lanches,
				Bebidas: bebidas,
				Double:  true,
			},
		},
		{
			ID:              "kibe-carne",
			Name:            "Kibe de Carne",
			Description:     "Kibe tradicional sírio recheado com carne",
			Price:           12.90,
			CategoryID:      "lanches",
			Available:       true,
			PreparationTime: "10-15 min",
			Rating:          4.7,
			Ingredients: []models.Ingredient{
				{ID: "cebola", Name: "Cebola", Removable: true},
				{ID: "hortela", Name: "Hortelã", Removable: true},
				{ID: "queijo-extra", Name: "Queijo Extra", Additional: true, Price: 3.00},
				{ID: "carne-extra", Name: "Carne Extra", Additional: true, Price: 5.50},
			},
		},
		{
			ID:              "kibe-queijo",
			Name:            "Kibe de Queijo",
			Description:     "Kibe recheado com queijo derretido",
			Price:           12.90,
			CategoryID:      "lanches",
			Available:       true,
			PreparationTime: "10-15 min",
			Rating:          4.6,
			Ingredients: []models.Ingredient{
				{ID: "cebola", Name: "Cebola", Removable: true},
				{ID: "queijo-extra", Name: "Queijo Extra", Additional: true, Price: 3.00},
			},
		},
		{
			ID:              "falafel",
			Name:            "Falafel",
			Description:     "Bolinhos de grão de bico tradicional",
			Price:           10.90,
			CategoryID:      "lanches",
			Available:       true,
			PreparationTime: "15-20 min",
			Rating:          4.8,
			Ingredients: []models.Ingredient{
				{ID: "tahine", Name: "Tahine", Removable: true},
				{ID: "picles", Name: "Picles", Removable: true, Additional: true, Price: 2.00},
			},
		},
		{
			ID:              "batata-frita",
			Name:            "Batata Frita",
			Description:     "Porção de batata frita crocante",
			Price:           15.90,
			CategoryID:      "lanches",
			Available:       true,
			PreparationTime: "10-15 min",
			Rating:          4.5,
			Options: &models.MenuOptions{
				Porcoes: []models.PortionOption{
					{ID: "pequena", Name: "Pequena", Price: 15.90},
					{ID: "media", Name: "Média", Price: 22.90},
					{ID: "grande", Name: "Grande", Price: 29.90},
				},
			},
		},
		{
			ID:          "biscoito-erva-doce",
			Name:        "Biscoito de Erva Doce",
			Description: "Biscoito tradicional com erva doce",
			Price:       18.90,
			CategoryID:  "doces-sirios",
			Available:   true,
			Rating:      4.6,
		},
		{
			ID:          "herise",
			Name:        "Herise",
			Description: "Doce típico sírio",
			Price:       22.90,
			CategoryID:  "doces-sirios",
			Available:   true,
			Rating:      4.7,
		},
		{
			ID:          "bolacha-tamara",
			Name:        "Bolacha de Tâmara",
			Description: "Bolacha recheada com tâmara",
			Price:       20.90,
			CategoryID:  "doces-sirios",
			Available:   true,
			Rating:      4.8,
		},
		{
			ID:          "zatar",
			Name:        "Zatar",
			Description: "Tempero tradicional sírio",
			Price:       15.90,
			CategoryID:  "mercado-sirio",
			Available:   true,
			Rating:      4.7,
		},
		{
			ID:          "homus",
			Name:        "Homus",
			Description: "Pasta de grão de bico tradicional",
			Price:       18.90,
			CategoryID:  "mercado-sirio",
			Available:   true,
			Rating:      4.8,
			Options: &models.MenuOptions{
				Porcoes: []models.PortionOption{
					{ID: "pote-250", Name: "Pote 250g", Price: 20.00},
					{ID: "pote-500", Name: "Pote 500g", Price: 35.00},
					{ID: "pote-1kg", Name: "Pote 1kg", Price: 50.00},
				},
			},
		},
		{
			ID:          "pao-sirio",
			Name:        "Pão Sírio",
			Description: "Pão sírio tradicional",
			Price:       8.90,
			CategoryID:  "mercado-sirio",
			Available:   true,
			Rating:      4.9,
		},
	}
}
