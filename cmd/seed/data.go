package main

import "krushi/internal/domain/entities"

func price(v float64) *float64 { return &v }

var sampleProducts = []entities.Product{
	{
		Name:        "Organic Wheat Seeds",
		Description: "Premium quality organic wheat seeds suitable for all soil types. High germination rate and disease-resistant variety.",
		Category:    entities.CategorySeeds,
		Price:       450,
		Unit:        "kg",
		Stock:       500,
		Image:       "https://images.unsplash.com/photo-1574323347407-f5e1ad6d020b?w=500",
		Features:    []string{"High germination rate (95%+)", "Disease resistant variety", "Suitable for all soil types", "Organic certified"},
		Tags:        []string{"wheat", "organic", "seeds", "high-yield"},
		IsOrganic:   true,
		IsFeatured:  true,
	},
	{
		Name:        "NPK Fertilizer",
		Description: "Balanced NPK 19:19:19 fertilizer for optimal plant growth. Suitable for all crops.",
		Category:    entities.CategoryFertilizers,
		Price:       800,
		Unit:        "kg",
		Stock:       300,
		Image:       "https://images.unsplash.com/photo-1625246333195-78d9c38ad449?w=500",
		Features:    []string{"Balanced NPK ratio", "Water soluble", "Quick absorption", "Increases yield by 30%"},
		Tags:        []string{"fertilizer", "npk", "crop-nutrition"},
		IsFeatured:  true,
	},
	{
		Name:        "Organic Pesticide",
		Description: "Natural neem-based pesticide for eco-friendly pest control.",
		Category:    entities.CategoryPesticides,
		Price:       350,
		Unit:        "liter",
		Stock:       200,
		Image:       "https://images.unsplash.com/photo-1416879595882-3373a0480b5b?w=500",
		Features:    []string{"100% natural ingredients", "Safe for beneficial insects", "No harmful residues", "Effective against 200+ pests"},
		Tags:        []string{"pesticide", "organic", "neem", "eco-friendly"},
		IsOrganic:   true,
	},
	{
		Name:        "Drip Irrigation Kit",
		Description: "Complete drip irrigation system for 1-acre land. Save water and increase efficiency.",
		Category:    entities.CategoryEquipment,
		Price:       15000,
		Unit:        "set",
		Stock:       25,
		Image:       "https://images.unsplash.com/photo-1530836369250-ef72a3f5cda8?w=500",
		Features:    []string{"Covers 1-acre area", "Saves 70% water", "Easy installation", "5-year warranty"},
		Tags:        []string{"irrigation", "drip", "water-saving", "equipment"},
		IsFeatured:  true,
	},
	{
		Name:        "Vermicompost",
		Description: "Premium quality vermicompost enriched with beneficial microorganisms.",
		Category:    entities.CategoryOrganicProducts,
		Price:       200,
		Unit:        "kg",
		Stock:       1000,
		Image:       "https://images.unsplash.com/photo-1597843786411-e9c7b5a82217?w=500",
		Features:    []string{"Rich in nutrients", "Improves soil structure", "Increases water retention", "100% organic"},
		Tags:        []string{"vermicompost", "organic", "soil-improvement"},
		IsOrganic:   true,
	},
	{
		Name:        "Garden Tools Set",
		Description: "Complete set of essential gardening tools with ergonomic handles.",
		Category:    entities.CategoryTools,
		Price:       1200,
		Unit:        "set",
		Stock:       50,
		Image:       "https://images.unsplash.com/photo-1416879595882-3373a0480b5b?w=500",
		Features:    []string{"10 essential tools", "Rust-resistant steel", "Ergonomic design", "Carrying bag included"},
		Tags:        []string{"tools", "gardening", "equipment"},
	},
}

var sampleOfferings = []entities.Offering{
	{
		Title:       "Soil Testing",
		Description: "Laboratory analysis of soil nutrients and pH with a written fertilizer plan.",
		Icon:        "🧪",
		Features:    []string{"NPK and micronutrient report", "pH and EC measurement", "Fertilizer recommendation"},
		Price:       price(500),
		Duration:    "7 days",
		Category:    entities.OfferingSoilTesting,
	},
	{
		Title:       "Crop Planning",
		Description: "Season-wise crop selection and sowing schedule for your land and water availability.",
		Icon:        "📅",
		Features:    []string{"Crop rotation plan", "Sowing calendar", "Input cost estimate"},
		Category:    entities.OfferingCropPlanning,
	},
	{
		Title:       "Pest Control Advisory",
		Description: "Field visit to identify pests and diseases with an integrated treatment plan.",
		Icon:        "🐛",
		Features:    []string{"On-field inspection", "Organic options first", "Follow-up visit"},
		Category:    entities.OfferingPestControl,
	},
	{
		Title:       "Expert Consultation",
		Description: "One-to-one guidance from our agronomist on yields, inputs and irrigation.",
		Features:    []string{"Phone or in-store", "Marathi and English"},
		Price:       price(0),
		Duration:    "1 hour",
		Category:    entities.OfferingConsultation,
	},
	{
		Title:       "Farmer Training",
		Description: "Hands-on workshops on drip irrigation, vermicomposting and organic farming.",
		Icon:        "👨‍🌾",
		Features:    []string{"Group sessions", "Demonstration plot", "Certificate of participation"},
		Category:    entities.OfferingTraining,
	},
}
