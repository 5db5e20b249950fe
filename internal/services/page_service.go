package services

import (
	"context"

	"travelexplorer/internal/models/response_models"
)

const featuredCount = 3

type PageServiceInterface interface {
	About() response_models.AboutPage
	Home(ctx context.Context) response_models.HomePage
	Contact() response_models.ContactPage
}

type PageService struct {
	destinations DestinationServiceInterface
}

func NewPageService(destinations DestinationServiceInterface) PageServiceInterface {
	return &PageService{destinations: destinations}
}

func (p *PageService) About() response_models.AboutPage {
	return response_models.AboutPage{
		Stats: []response_models.Stat{
			{Label: "Happy Travelers", Value: "50k+"},
			{Label: "Destinations", Value: "200+"},
			{Label: "Travel Experts", Value: "100+"},
			{Label: "Positive Reviews", Value: "15k+"},
		},
		Values: []response_models.Feature{
			{Title: "Safety First", Description: "Your safety is our top priority. We vet all our partners and destinations rigorously."},
			{Title: "Eco-Conscious", Description: "We believe in sustainable travel that preserves the beauty of our planet."},
			{Title: "Authentic Experience", Description: "We take you off the beaten path to discover true local cultures and secrets."},
		},
	}
}

// Home lists the site features and the best rated destinations. The
// featured list never fails: the destination service falls back on its own.
func (p *PageService) Home(ctx context.Context) response_models.HomePage {
	featured, err := p.destinations.GetFeatured(ctx, featuredCount)
	if err != nil {
		featured = FallbackDestinations()[:featuredCount]
	}

	return response_models.HomePage{
		Features: []response_models.Feature{
			{Title: "Curated Destinations", Description: "Handpicked locations offering unique experiences and authentic adventures."},
			{Title: "Expert Guides", Description: "Professional local guides ensuring safe and enriching travel experiences."},
			{Title: "Flexible Booking", Description: "Easy booking with flexible dates and instant confirmations."},
			{Title: "Secure Payments", Description: "5-star security with 24/7 support throughout your journey."},
		},
		Featured: featured,
	}
}

func (p *PageService) Contact() response_models.ContactPage {
	return response_models.ContactPage{
		Channels: []response_models.ContactChannel{
			{Label: "Call Us", Value: "+1 (555) 000-0000", SubValue: "Mon-Fri from 8am to 6pm"},
			{Label: "Email Us", Value: "hello@travelexplorer.com", SubValue: "We usually respond within 24h"},
			{Label: "Visit Us", Value: "123 Explorer Way", SubValue: "San Francisco, CA 94103"},
		},
	}
}
