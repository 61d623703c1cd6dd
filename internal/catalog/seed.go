package catalog

// Seed returns the static product list. Minimal projection aligned with
// the storefront mock data: id, title, image, description, price,
// category.
func Seed() []Product {
	return []Product{
		{
			ID:          "ww-001",
			Title:       "Printed Pure Cotton Top",
			Price:       679,
			Description: "Pure cotton top with contemporary printed motifs and relaxed fit.",
			Image:       "https://images.pexels.com/photos/28213774/pexels-photo-28213774.jpeg?cs=srgb&dl=pexels-tavsi-apparel-1772629605-28213774.jpg&fm=jpg",
			Category:    "Women",
		},
		{
			ID:          "ww-002",
			Title:       "Ethnic Motifs Printed Kurta",
			Price:       713,
			Description: "Straight fit kurta with ethnic motifs and breathable fabric.",
			Image:       "https://www.libas.in/cdn/shop/files/1_33a25d6e-c493-49fd-9ae7-3e415440e6ee.jpg?v=1739181170",
			Category:    "Women",
		},
		{
			ID:          "ww-003",
			Title:       "Women Printed Top",
			Price:       499,
			Description: "Rustic printed top with flared hem and vibrant palette.",
			Image:       "https://thejaipurloom.com/wp-content/uploads/2024/02/Picture3.jpg",
			Category:    "Women",
		},
		{
			ID:          "ww-004",
			Title:       "Ethnic Motifs Cotton Kurti",
			Price:       987,
			Description: "Breathable cotton kurti with delicate ethnic prints.",
			Image:       "https://cdn.sareeka.com/image/cache/data2024/blue-georgette-casual-kurti-in-plain-for-women-278882-1000x1375.jpg",
			Category:    "Women",
		},
		{
			ID:          "ww-005",
			Title:       "Bandhani Printed Kurti",
			Price:       1299,
			Description: "Classic bandhani printed kurti with contrast yoke.",
			Image:       "https://i.pinimg.com/videos/thumbnails/originals/e6/2c/ee/e62cee9d090c85476d551432e7c647ce.0000000.jpg",
			Category:    "Women",
		},
	}
}
