package vehicles

// Vehicle is a single showroom listing. JSON tags keep the Turkish field
// names the storefront and the stored catalog file use.
type Vehicle struct {
	Brand    string   `json:"marka"`
	Model    string   `json:"model"`
	Year     int      `json:"yil"`
	Price    int      `json:"fiyat"`
	Features []string `json:"ozellikler"`
}

// Inventory groups listings by appointment category.
type Inventory map[string][]Vehicle

// Categories lists the known categories in display order. Map iteration
// order is random, so prompt building and the storefront walk this instead.
var Categories = []string{"otomobil", "suv", "karavan"}

// SampleInventory is the catalog seeded on first run.
func SampleInventory() Inventory {
	return Inventory{
		"otomobil": {
			{Brand: "Toyota", Model: "Corolla", Year: 2023, Price: 850000, Features: []string{"Otomatik", "Benzin", "Sedan"}},
			{Brand: "Honda", Model: "Civic", Year: 2023, Price: 950000, Features: []string{"Otomatik", "Benzin", "Sedan"}},
			{Brand: "Volkswagen", Model: "Golf", Year: 2023, Price: 1050000, Features: []string{"Otomatik", "Benzin", "Hatchback"}},
		},
		"suv": {
			{Brand: "Toyota", Model: "RAV4", Year: 2023, Price: 1250000, Features: []string{"Otomatik", "Hibrit", "SUV"}},
			{Brand: "Honda", Model: "CR-V", Year: 2023, Price: 1350000, Features: []string{"Otomatik", "Benzin", "SUV"}},
		},
		"karavan": {
			{Brand: "Volkswagen", Model: "California", Year: 2023, Price: 2500000, Features: []string{"Otomatik", "Dizel", "Karavan"}},
			{Brand: "Mercedes", Model: "Marco Polo", Year: 2023, Price: 2800000, Features: []string{"Otomatik", "Dizel", "Karavan"}},
		},
	}
}
