package models

// Destination describes one of the five offered destinations. The catalog is
// static reference data, not a persisted entity.
type Destination struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Distance    string   `json:"distance"`
	TravelTime  string   `json:"travelTime"`
	Temperature string   `json:"temperature"`
	Color       string   `json:"color"`
	Activities  []string `json:"activities"`
}

// Package describes a bookable trip package tier.
type Package struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	Accommodation  string  `json:"accommodation"`
	Meals          string  `json:"meals"`
	Spacewalk      any     `json:"spacewalk"` // false or a session count string
	SurfaceTours   string  `json:"surfaceTours"`
	Training       string  `json:"training"`
	MedicalSupport string  `json:"medicalSupport"`
	Souvenirs      string  `json:"souvenirs"`
}

// DestinationDetails is the static destination catalog.
var DestinationDetails = []Destination{
	{
		ID:          "mercury",
		Name:        "Mercury",
		Description: "The closest planet to the sun, offering extreme temperature variations and challenging but rewarding exploration opportunities.",
		Distance:    "57.9 million km",
		TravelTime:  "2-3 months",
		Temperature: "430°C (day) to -180°C (night)",
		Color:       "#A9A9A9",
		Activities:  []string{"Crater exploration", "Solar observation", "Extreme terrain hiking"},
	},
	{
		ID:          "venus",
		Name:        "Venus",
		Description: "Known for its thick atmosphere and extreme surface pressure, Venus offers spectacular cloud-top viewing platforms.",
		Distance:    "108.2 million km",
		TravelTime:  "3-4 months",
		Temperature: "462°C (constant)",
		Color:       "#E6A727",
		Activities:  []string{"Cloud-top observatories", "Atmospheric diving", "Sulfuric sunrise viewing"},
	},
	{
		ID:          "earth",
		Name:        "Earth",
		Description: "Our home planet, offering a return journey with breathtaking views of the Blue Marble from space.",
		Distance:    "149.6 million km",
		TravelTime:  "N/A (Home)",
		Temperature: "15°C (average)",
		Color:       "#2E86C1",
		Activities:  []string{"Orbital photography", "Zero-G recreation", "Space station tours"},
	},
	{
		ID:          "mars",
		Name:        "Mars",
		Description: "The Red Planet, featuring massive canyons, extinct volcanoes, and emerging human colonies.",
		Distance:    "227.9 million km",
		TravelTime:  "6-8 months",
		Temperature: "-65°C (average)",
		Color:       "#C0392B",
		Activities:  []string{"Colony tours", "Olympus Mons expedition", "Desert rover adventures"},
	},
	{
		ID:          "saturn",
		Name:        "Saturn Rings Tour",
		Description: "Experience the magnificent rings up close with our exclusive tour around this gas giant's unique features.",
		Distance:    "1.4 billion km",
		TravelTime:  "3-4 years",
		Temperature: "-178°C (average)",
		Color:       "#F5CBA7",
		Activities:  []string{"Ring surfing", "Moonlet hopping", "Cassini division cruise"},
	},
}

// PackageDetails is the static package catalog.
var PackageDetails = []Package{
	{
		ID:             "basic",
		Name:           "Basic",
		Description:    "Essential Experience",
		Price:          250000,
		Accommodation:  "Shared Cabin",
		Meals:          "Standard Menu",
		Spacewalk:      false,
		SurfaceTours:   "Group Tour",
		Training:       "3 Days",
		MedicalSupport: "Standard",
		Souvenirs:      "Digital Photos",
	},
	{
		ID:             "premium",
		Name:           "Premium",
		Description:    "Enhanced Journey",
		Price:          450000,
		Accommodation:  "Private Suite",
		Meals:          "Premium Menu",
		Spacewalk:      "1 Session",
		SurfaceTours:   "Small Group",
		Training:       "7 Days",
		MedicalSupport: "Enhanced",
		Souvenirs:      "Photo Book + Video",
	},
	{
		ID:             "ultimate",
		Name:           "Ultimate",
		Description:    "Luxury Expedition",
		Price:          750000,
		Accommodation:  "Luxury Module",
		Meals:          "Gourmet Dining",
		Spacewalk:      "Unlimited",
		SurfaceTours:   "Private Guide",
		Training:       "14 Days",
		MedicalSupport: "Dedicated Doctor",
		Souvenirs:      "Lunar/Martian Rock",
	},
}
