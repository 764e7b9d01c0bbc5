package catalog

// Seed data for the mock catalog. ProductCount on categories is left zero
// here; the service computes it from the product list.

var seedCategories = []Category{
	{ID: "1", Name: "Vegetables", Icon: "🥦", Image: "/images/categories/vegetables.png", Color: "#E8F5E9"},
	{ID: "2", Name: "Fruits", Icon: "🍌", Image: "/images/categories/fruits.png", Color: "#FFF9C4"},
	{ID: "3", Name: "Chicken", Icon: "🍗", Image: "/images/categories/chicken.png", Color: "#FFEBEE"},
	{ID: "4", Name: "Beef", Icon: "🥩", Image: "/images/categories/beef.png", Color: "#FFE0B2"},
	{ID: "5", Name: "Protein", Icon: "🥚", Image: "/images/categories/protein.png", Color: "#F5F5F5"},
	{ID: "6", Name: "Seafood", Icon: "🦞", Image: "/images/categories/seafood.png", Color: "#FFE0B2"},
}

var seedProducts = []Product{
	{
		ID:            "1",
		Name:          "Chicken breast frozen",
		Description:   "Fresh chicken breast, perfect for grilling or baking. High in protein and low in fat.",
		Price:         22.4,
		OriginalPrice: 23.0,
		Discount:      30,
		Image:         "/images/products/chicken-breast.png",
		CategoryID:    "3",
		Unit:          "pack",
		Weight:        "450-500g",
		InStock:       true,
		Rating:        4.5,
		Reviews:       128,
	},
	{
		ID:            "2",
		Name:          "Chicken breast frozen",
		Description:   "Premium frozen chicken breast, individually packed for convenience.",
		Price:         13.0,
		OriginalPrice: 20.0,
		Discount:      35,
		Image:         "/images/products/chicken-frozen.png",
		CategoryID:    "3",
		Unit:          "pack",
		Weight:        "473-1kg",
		InStock:       true,
		Rating:        4.7,
		Reviews:       256,
	},
	{
		ID:            "3",
		Name:          "Beef meat soup",
		Description:   "Premium beef cuts ideal for making rich, flavorful soups and stews.",
		Price:         30.0,
		OriginalPrice: 38.0,
		Discount:      21,
		Image:         "/images/products/beef-soup.png",
		CategoryID:    "4",
		Unit:          "pack",
		Weight:        "500-700g",
		InStock:       true,
		Rating:        4.8,
		Reviews:       89,
	},
	{
		ID:            "4",
		Name:          "Australia beef tenderloin",
		Description:   "Well-marbled tenderloin with fat interspersed within the muscle. The marbling enhances flavor and juiciness; cooked properly it is tender and melts in your mouth.",
		Price:         40.0,
		OriginalPrice: 50.0,
		Discount:      20,
		Image:         "/images/products/beef-tenderloin.png",
		CategoryID:    "4",
		Unit:          "pack",
		Weight:        "450-500g",
		Origin:        "Import",
		Condition:     "Fresh",
		FatContent:    "Non Fatty",
		InStock:       true,
		Rating:        4.9,
		Reviews:       342,
	},
	{
		ID:          "5",
		Name:        "Omega chicken eggs",
		Description: "Farm-fresh omega-3 enriched eggs, packed with nutrients.",
		Price:       15.0,
		Image:       "/images/products/eggs.png",
		CategoryID:  "5",
		Unit:        "pack",
		Weight:      "100-1kg",
		InStock:     true,
		Rating:      4.6,
		Reviews:     178,
	},
	{
		ID:          "6",
		Name:        "Cavendish baby banana",
		Description: "Sweet and creamy baby bananas, perfect for snacking.",
		Price:       9.0,
		Image:       "/images/products/banana.png",
		CategoryID:  "2",
		Unit:        "pack",
		Weight:      "340-500g",
		InStock:     true,
		Rating:      4.4,
		Reviews:     95,
	},
}

var seedRecipes = []Recipe{
	{ID: "1", Name: "Classic spaghetti bolognese", Image: "/images/recipes/spaghetti.png", PrepTime: 18, Category: "Italian"},
	{ID: "2", Name: "Quick beef rice bowl", Image: "/images/recipes/rice-bowl.png", PrepTime: 15, Category: "Asian"},
	{ID: "3", Name: "Morning healthy salad", Image: "/images/recipes/salad.png", PrepTime: 5, Category: "Healthy"},
}
