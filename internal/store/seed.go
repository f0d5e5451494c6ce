package store

import "github.com/rasheduzzaman2024/polashtoli/internal/model"

// SeedDemo loads the demo catalog and the built-in admin account. The demo
// credentials are advertised on the sign-in page of the storefront.
func SeedDemo(catalog *Catalog, accounts *Accounts) {
	accounts.seed(model.Account{
		Email:    "admin@polashtoli.com",
		Password: "admin123",
		Role:     model.RoleAdmin,
		Name:     "Admin",
	})

	for _, p := range []model.Product{
		{ID: 1, Name: "Traditional Saree", Price: 2500, Category: "Clothing", Image: "👗", Stock: 15, Description: "Beautiful traditional Bengali saree"},
		{ID: 2, Name: "Leather Bag", Price: 1200, Category: "Accessories", Image: "👜", Stock: 8, Description: "Handcrafted leather bag"},
		{ID: 3, Name: "Pottery Set", Price: 850, Category: "Home", Image: "🏺", Stock: 12, Description: "Traditional clay pottery set"},
		{ID: 4, Name: "Handicraft Wall Art", Price: 3200, Category: "Decor", Image: "🖼️", Stock: 5, Description: "Handmade wall decoration"},
		{ID: 5, Name: "Cotton Kurta", Price: 900, Category: "Clothing", Image: "👔", Stock: 20, Description: "Comfortable cotton kurta"},
		{ID: 6, Name: "Jute Basket", Price: 450, Category: "Home", Image: "🧺", Stock: 25, Description: "Eco-friendly jute basket"},
	} {
		catalog.seed(p)
	}
}
