package readstore

type ProductSeed struct {
	ID          string
	Name        string
	Brand       string
	Price       string
	Description string
	Category    string
	Image       string
}

var catalogSeed = []ProductSeed{
	{
		ID:          "sony-wh1000xm5",
		Name:        "WH-1000XM5",
		Brand:       "Sony",
		Price:       "399.99",
		Description: "Industry-leading noise cancelling over-ear headphones with 30-hour battery life",
		Category:    "Headphones",
		Image:       "🎧",
	},
	{
		ID:          "apple-airpods-pro-2",
		Name:        "AirPods Pro (2nd Generation)",
		Brand:       "Apple",
		Price:       "249.00",
		Description: "Wireless earbuds with active noise cancellation, adaptive audio and USB-C charging case",
		Category:    "Earbuds",
		Image:       "🎧",
	},
	{
		ID:          "samsung-galaxy-buds2-pro",
		Name:        "Galaxy Buds2 Pro",
		Brand:       "Samsung",
		Price:       "229.99",
		Description: "True wireless earbuds with intelligent ANC and 24-bit Hi-Fi sound",
		Category:    "Earbuds",
		Image:       "🎧",
	},
	{
		ID:          "sony-wf1000xm5",
		Name:        "WF-1000XM5",
		Brand:       "Sony",
		Price:       "299.99",
		Description: "Premium noise cancelling earbuds with dual processors and compact design",
		Category:    "Earbuds",
		Image:       "🎧",
	},
	{
		ID:          "apple-iphone-15-pro",
		Name:        "iPhone 15 Pro",
		Brand:       "Apple",
		Price:       "999.00",
		Description: "Titanium smartphone with A17 Pro chip and 48MP main camera",
		Category:    "Smartphones",
		Image:       "📱",
	},
	{
		ID:          "samsung-galaxy-s24-ultra",
		Name:        "Galaxy S24 Ultra",
		Brand:       "Samsung",
		Price:       "1299.99",
		Description: "Flagship Android smartphone with built-in S Pen and 200MP camera",
		Category:    "Smartphones",
		Image:       "📱",
	},
	{
		ID:          "google-pixel-8",
		Name:        "Pixel 8",
		Brand:       "Google",
		Price:       "699.00",
		Description: "Android smartphone with Tensor G3 chip and seven years of OS updates",
		Category:    "Smartphones",
		Image:       "📱",
	},
	{
		ID:          "apple-macbook-air-m3",
		Name:        "MacBook Air 13-inch (M3)",
		Brand:       "Apple",
		Price:       "1099.00",
		Description: "Thin and light laptop with M3 chip and up to 18 hours of battery life",
		Category:    "Laptops",
		Image:       "💻",
	},
	{
		ID:          "dell-xps-13",
		Name:        "XPS 13",
		Brand:       "Dell",
		Price:       "999.99",
		Description: "Compact ultrabook with InfinityEdge display and Intel Core Ultra processor",
		Category:    "Laptops",
		Image:       "💻",
	},
	{
		ID:          "apple-ipad-air-m2",
		Name:        "iPad Air (M2)",
		Brand:       "Apple",
		Price:       "599.00",
		Description: "Liquid Retina tablet with M2 chip and Apple Pencil Pro support",
		Category:    "Tablets",
		Image:       "📲",
	},
	{
		ID:          "apple-watch-series-9",
		Name:        "Watch Series 9",
		Brand:       "Apple",
		Price:       "399.00",
		Description: "Smartwatch with double tap gesture, always-on display and health tracking",
		Category:    "Wearables",
		Image:       "⌚",
	},
	{
		ID:          "bose-soundlink-flex",
		Name:        "SoundLink Flex",
		Brand:       "Bose",
		Price:       "149.00",
		Description: "Portable waterproof Bluetooth speaker with deep, clear sound",
		Category:    "Speakers",
		Image:       "🔊",
	},
	{
		ID:          "nintendo-switch-oled",
		Name:        "Switch OLED Model",
		Brand:       "Nintendo",
		Price:       "349.99",
		Description: "Hybrid gaming console with 7-inch OLED screen and enhanced audio",
		Category:    "Gaming",
		Image:       "🎮",
	},
	{
		ID:          "canon-eos-r50",
		Name:        "EOS R50",
		Brand:       "Canon",
		Price:       "679.99",
		Description: "Compact mirrorless camera with 24.2MP sensor and 4K video",
		Category:    "Cameras",
		Image:       "📷",
	},
}
