package domain

// Category is a static storefront grouping. The list is fixed in-process;
// categories have no persistence or lifecycle.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// Categories returns the fixed category list served by the storefront.
func Categories() []Category {
	return []Category{
		{
			ID:          1,
			Name:        "Electrónica",
			Slug:        "electronica",
			Image:       "https://images.unsplash.com/photo-1717996563514-e3519f9ef9f7",
			Description: "Tecnología moderna y gadgets innovadores",
		},
		{
			ID:          2,
			Name:        "Hogar y Cocina",
			Slug:        "hogar-cocina",
			Image:       "https://images.unsplash.com/photo-1616046229478-9901c5536a45",
			Description: "Productos elegantes para tu hogar",
		},
		{
			ID:          3,
			Name:        "Moda y Accesorios",
			Slug:        "moda-accesorios",
			Image:       "https://images.unsplash.com/photo-1569388330292-79cc1ec67270",
			Description: "Estilo y sofisticación en cada pieza",
		},
		{
			ID:          4,
			Name:        "Salud y Belleza",
			Slug:        "salud-belleza",
			Image:       "https://images.unsplash.com/photo-1598528738936-c50861cc75a9",
			Description: "Bienestar y cuidado personal premium",
		},
		{
			ID:          5,
			Name:        "Deportes y Fitness",
			Slug:        "deportes-fitness",
			Image:       "https://images.unsplash.com/photo-1627257058769-0a99529e4312",
			Description: "Equipamiento para tu vida activa",
		},
	}
}
