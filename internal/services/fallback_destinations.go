package services

import "travelexplorer/internal/models/response_models"

// fallbackDestinations is served when the destination store is empty or
// unreachable. Its ids are not uuids, so they never collide with stored rows
// and cannot be booked.
var fallbackDestinations = []response_models.Destination{
	{
		ID:           "fallback-1",
		Name:         "Swiss Alps Adventure",
		Description:  "Experience the majestic beauty of the Swiss Alps with our curated mountain retreat. Perfect for those seeking both adventure and luxury in one of the world's most stunning landscapes.",
		Location:     "Zermatt",
		Country:      "Switzerland",
		Continent:    "Europe",
		Images:       []string{"https://images.unsplash.com/photo-1531310197839-ccf54634509e?auto=format&fit=crop&q=80&w=1200"},
		Price:        2499,
		Currency:     "USD",
		Rating:       4.9,
		Duration:     7,
		Highlights:   []string{"Matterhorn Views", "Luxury Chalets", "World-class Skiing", "Alpine Dining"},
		Difficulty:   "Moderate",
		MaxGroupSize: 12,
		IsActive:     true,
		Itinerary: []response_models.ItineraryDay{
			{Title: "Arrival in Zermatt", Description: "Transfer to your luxury chalet, followed by a welcome dinner with Matterhorn views."},
			{Title: "Gornergrat Panorama", Description: "Ride the world's highest open-air cog railway for breathtaking 360-degree views."},
			{Title: "Glacier Paradise", Description: "Explore the highest cable car station in Europe and the stunning Glacier Palace."},
			{Title: "Alpine Trekking", Description: "Guided moderate hiking through untouched alpine meadows and crystal-clear lakes."},
		},
		Included:  []string{"Luxury Accommodation", "Daily Breakfast & Dinner", "Professional Mountain Guide"},
		Excluded:  []string{"International Flights", "Personal Expenses", "Travel Insurance"},
		Languages: []string{"German", "English", "French"},
	},
	{
		ID:           "fallback-2",
		Name:         "Kyoto Heritage Tour",
		Description:  "Immerse yourself in the ancient traditions and serene beauty of Kyoto. From historic temples to bamboo forests, discover the soul of Japan in its most cultural city.",
		Location:     "Kyoto",
		Country:      "Japan",
		Continent:    "Asia",
		Images:       []string{"https://images.unsplash.com/photo-1493976040374-85c8e12f0c0e?auto=format&fit=crop&q=80&w=1200"},
		Price:        1850,
		Currency:     "USD",
		Rating:       4.8,
		Duration:     5,
		Highlights:   []string{"Kinkaku-ji Temple", "Arashiyama Bamboo Grove", "Gion District", "Tea Ceremony"},
		Difficulty:   "Easy",
		MaxGroupSize: 10,
		IsActive:     true,
		Itinerary: []response_models.ItineraryDay{
			{Title: "Gion Discovery", Description: "Evening walk through the historic Gion district to spot elusive geiko and maiko."},
			{Title: "Temple Trail", Description: "Visit the iconic Golden Pavilion (Kinkaku-ji) and the thousand red gates of Fushimi Inari."},
			{Title: "Arashiyama Bamboo Grove", Description: "Meditative walk through the soaring bamboo stalks and a visit to the Tenryu-ji Temple."},
			{Title: "Traditional Tea Ceremony", Description: "A private session with a tea master to learn the art of 'The Way of Tea'."},
		},
		Included:  []string{"Traditional Ryokan Stay", "Local Transport Pass", "Tea Ceremony Experience"},
		Excluded:  []string{"Lunches", "Extra Drinks", "Flight to Osaka/Tokyo"},
		Languages: []string{"Japanese", "English"},
	},
	{
		ID:           "fallback-3",
		Name:         "Santorini Sunset Bliss",
		Description:  "Escape to the iconic white-washed buildings and blue-domed churches of Santorini. Enjoy breathtaking caldera views and the world's most famous sunsets.",
		Location:     "Oia",
		Country:      "Greece",
		Continent:    "Europe",
		Images:       []string{"https://images.unsplash.com/photo-1570077188670-e3a8d69ac5ff?auto=format&fit=crop&q=80&w=1200"},
		Price:        3200,
		Currency:     "USD",
		Rating:       5.0,
		Duration:     6,
		Highlights:   []string{"Sunset Cruises", "Volcanic Beaches", "Wine Tasting", "Cliffs of Fira"},
		Difficulty:   "Easy",
		MaxGroupSize: 8,
		IsActive:     true,
		Itinerary: []response_models.ItineraryDay{
			{Title: "Oia Exploration", Description: "Wander through the narrow streets of Oia and capture the iconic blue-domed churches."},
			{Title: "Volcanic Beach Day", Description: "Visit the unique Red Beach and enjoy the crystal-clear Aegean waters."},
			{Title: "Caldera Sunset Cruise", Description: "A private catamaran tour during sunset with dinner and drinks on board."},
			{Title: "Wine Tasting Tour", Description: "Visit traditional volcanic vineyards and sample world-renowned Assyrtiko wines."},
		},
		Included:  []string{"Boutique Hotel Stay", "Private Catamaran Sunset Tour", "Local Wine Tasting"},
		Excluded:  []string{"Personal Travel", "Extra Meals", "International Flights"},
		Languages: []string{"Greek", "English"},
	},
	{
		ID:           "fallback-4",
		Name:         "Bali Tropical Escape",
		Description:  "Find your balance in the spiritual heart of Bali. Explore lush rice terraces, sacred temples, and pristine beaches in this tropical paradise.",
		Location:     "Ubud",
		Country:      "Indonesia",
		Continent:    "Asia",
		Images:       []string{"https://images.unsplash.com/photo-1537996194471-e657df975ab4?auto=format&fit=crop&q=80&w=1200"},
		Price:        1200,
		Currency:     "USD",
		Rating:       4.7,
		Duration:     10,
		Highlights:   []string{"Tegalalang Rice Terrace", "Sacred Monkey Forest", "Uluwatu Temple", "Surf Schools"},
		Difficulty:   "Moderate",
		MaxGroupSize: 15,
		IsActive:     true,
		Itinerary: []response_models.ItineraryDay{
			{Title: "Ubud Markets", Description: "Visit the local art markets and the Sacred Monkey Forest."},
			{Title: "Beach Hopping", Description: "Relax at Sanur and Nusa Dua beaches."},
			{Title: "Spiritual Temples", Description: "Visit Tirta Empul and witness a traditional purification ritual."},
		},
		Included:  []string{"Eco-Luxury Villa", "Surf Lessons", "Cultural Workshop"},
		Excluded:  []string{"Lunches", "Beachfront Massages", "Flights"},
		Languages: []string{"Indonesian", "English"},
	},
	{
		ID:           "fallback-5",
		Name:         "Machu Picchu Expedition",
		Description:  "Embark on the journey of a lifetime to the lost city of the Incas. Trek through the Andes and witness the mystery of Machu Picchu.",
		Location:     "Cusco",
		Country:      "Peru",
		Continent:    "Americas",
		Images:       []string{"https://images.unsplash.com/photo-1587595431973-160d0d94add1?auto=format&fit=crop&q=80&w=1200"},
		Price:        2100,
		Currency:     "USD",
		Rating:       4.9,
		Duration:     8,
		Highlights:   []string{"Inca Trail", "Sun Gate Arrival", "Cusco City Tour", "Sacred Valley"},
		Difficulty:   "Challenging",
		MaxGroupSize: 10,
		IsActive:     true,
		Itinerary: []response_models.ItineraryDay{
			{Title: "Cusco Arrival", Description: "Acclimatize in Cusco with a light city walking tour."},
			{Title: "Inca Trail Launch", Description: "Begin the trek from KM 82 and set up the first camp."},
			{Title: "The High Pass", Description: "Conquer Dead Woman's Pass, the highest point of the trek."},
			{Title: "Sun Gate", Description: "Arrive at the Sun Gate for the first glimpse of Machu Picchu at sunrise."},
		},
		Included:  []string{"Camping Gear", "Professional Porters", "Machu Picchu Entry & Guided Tour"},
		Excluded:  []string{"Sleeping Bags", "Tips for Porters", "Flights to Lima"},
		Languages: []string{"Spanish", "Quechua", "English"},
	},
	{
		ID:           "fallback-6",
		Name:         "Amalfi Coast Charm",
		Description:  "Drive along one of the world's most scenic coastlines. Experience the charm of Positano, Ravello, and Amalfi while enjoying legendary Italian hospitality.",
		Location:     "Positano",
		Country:      "Italy",
		Continent:    "Europe",
		Images:       []string{"https://images.unsplash.com/photo-1633321088390-8e12d1b5a59a?auto=format&fit=crop&q=80&w=1200"},
		Price:        2800,
		Currency:     "USD",
		Rating:       4.8,
		Duration:     7,
		Highlights:   []string{"Path of the Gods", "Capri Day Trip", "Limoncello Tasting", "Boutique Hotels"},
		Difficulty:   "Easy",
		MaxGroupSize: 8,
		IsActive:     true,
		Itinerary: []response_models.ItineraryDay{
			{Title: "Positano Vibes", Description: "Relax by the beach and explore the vertical village's boutique shops."},
			{Title: "Island of Capri", Description: "Full day private boat tour around the stunning island of Capri."},
			{Title: "Ravello Heights", Description: "Visit the cliffside gardens of Villa Rufolo for the best views on the coast."},
			{Title: "Cooking Class", Description: "Learn to make authentic pasta and limoncello in a family-run trattoria."},
		},
		Included:  []string{"Boutique Hotel Stay", "Private Boat Tour to Capri", "Limoncello Workshop"},
		Excluded:  []string{"Local Tourist Taxes", "Parking Fees", "Flights to Naples"},
		Languages: []string{"Italian", "English"},
	},
}
