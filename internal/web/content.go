package web

import (
	"time"

	"beam/internal/domain"
)

type link struct {
	Name string
	Href string
}

type feature struct {
	Icon        string
	Title       string
	Description string
}

type transformation struct {
	Title       string
	Description string
	Location    string
	Before      string
	After       string
}

type option struct {
	Value string
	Label string
}

type stat struct {
	Label string
	Value string
}

type footerColumn struct {
	Title string
	Links []link
}

var cities = []string{
	"New York, NY",
	"Los Angeles, CA",
	"Chicago, IL",
	"Houston, TX",
	"Phoenix, AZ",
	"Philadelphia, PA",
	"San Antonio, TX",
	"San Diego, CA",
	"Dallas, TX",
	"San Jose, CA",
}

const popularCityCount = 5

var navigation = []link{
	{Name: "Home", Href: "#top"},
	{Name: "Projects", Href: "#projects"},
	{Name: "Volunteer", Href: "#volunteer"},
	{Name: "Donate", Href: "#donate"},
	{Name: "Gallery", Href: "#gallery"},
	{Name: "Contact", Href: "#contact"},
}

var features = []feature{
	{Icon: "leaf", Title: "Sustainable Landscaping", Description: "Eco-friendly designs that conserve water and support local ecosystems."},
	{Icon: "users", Title: "Community Building", Description: "Bringing neighbors together through shared outdoor spaces and projects."},
	{Icon: "heart", Title: "Volunteer Programs", Description: "Opportunities for everyone to contribute to their community."},
	{Icon: "camera", Title: "Before & After", Description: "See the incredible transformations we've achieved together."},
	{Icon: "calendar", Title: "Project Management", Description: "Professional planning and execution of landscaping initiatives."},
	{Icon: "dollar", Title: "Transparent Funding", Description: "Clear tracking of donations and project costs."},
}

var gallery = []transformation{
	{Title: "Community Garden Transformation", Description: "Converted an abandoned lot into a thriving community garden with native plants and walking paths.", Location: "Brooklyn, NY", Before: "#8B5A3F", After: "#22C55E"},
	{Title: "Urban Park Renewal", Description: "Revitalized a neglected urban park with sustainable landscaping and community gathering spaces.", Location: "Los Angeles, CA", Before: "#78716C", After: "#16A34A"},
	{Title: "School Grounds Enhancement", Description: "Transformed school grounds with educational gardens and outdoor learning environments.", Location: "Chicago, IL", Before: "#57534E", After: "#15803D"},
	{Title: "Neighborhood Beautification", Description: "Created a welcoming entrance to the neighborhood with native plants and sustainable design.", Location: "Houston, TX", Before: "#44403C", After: "#14532D"},
}

// showcase fills the highlights section until the store has projects of its own.
var showcase = []domain.Project{
	{
		ID:                "showcase-1",
		Title:             "Central Park Community Garden",
		Description:       "Creating a sustainable community garden with native plants, walking paths, and educational signage.",
		Location:          "New York, NY",
		Status:            domain.ProjectActive,
		Progress:          75,
		TargetDate:        domain.Date{Time: time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)},
		VolunteersNeeded:  30,
		CurrentVolunteers: 24,
	},
	{
		ID:                "showcase-2",
		Title:             "Riverside Park Restoration",
		Description:       "Restoring native vegetation and creating wildlife habitats along the riverfront.",
		Location:          "Los Angeles, CA",
		Status:            domain.ProjectPlanning,
		Progress:          25,
		TargetDate:        domain.Date{Time: time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)},
		VolunteersNeeded:  40,
		CurrentVolunteers: 18,
	},
	{
		ID:                "showcase-3",
		Title:             "Downtown Plaza Greening",
		Description:       "Transforming concrete spaces into green oases with seating areas and shade trees.",
		Location:          "Chicago, IL",
		Status:            domain.ProjectCompleted,
		Progress:          100,
		TargetDate:        domain.Date{Time: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)},
		VolunteersNeeded:  32,
		CurrentVolunteers: 32,
	},
}

var volunteerPerks = []feature{
	{Icon: "users", Title: "Community Impact", Description: "Work alongside neighbors to create beautiful, sustainable spaces."},
	{Icon: "clock", Title: "Flexible Commitment", Description: "Volunteer when it works for you. There is no minimum time requirement."},
	{Icon: "pin", Title: "Local Projects", Description: "Focus on projects in your own neighborhood and city."},
	{Icon: "award", Title: "Skill Building", Description: "Learn landscaping techniques and environmental stewardship."},
}

var interestOptions = []string{
	"Planting & Gardening",
	"Landscape Design",
	"Community Outreach",
	"Project Management",
	"Tool & Equipment",
	"Education & Training",
}

var availabilityOptions = []string{
	"Weekdays",
	"Weekends",
	"Mornings",
	"Afternoons",
	"Evenings",
}

var experienceOptions = []string{
	"Beginner - No experience needed",
	"Some experience",
	"Experienced",
	"Professional",
}

var donationAmounts = []int{25, 50, 100, 250, 500, 1000}

var frequencyOptions = []option{
	{Value: string(domain.FrequencyOneTime), Label: "One-time"},
	{Value: string(domain.FrequencyMonthly), Label: "Monthly"},
}

var designations = []option{
	{Value: domain.DefaultProjectDesignation, Label: "General Fund - Support all projects"},
	{Value: "Community Gardens Initiative", Label: "Community Gardens Initiative"},
	{Value: "Urban Tree Planting Program", Label: "Urban Tree Planting Program"},
	{Value: "School Grounds Enhancement", Label: "School Grounds Enhancement"},
	{Value: "Neighborhood Beautification", Label: "Neighborhood Beautification"},
	{Value: "Volunteer Training Program", Label: "Volunteer Training Program"},
}

var donationUses = []feature{
	{Icon: "leaf", Title: "Plant Native Species", Description: "Purchase and plant native trees, shrubs, and flowers that support local ecosystems."},
	{Icon: "users", Title: "Train Volunteers", Description: "Provide tools, safety equipment, and training for community volunteers."},
	{Icon: "target", Title: "Project Materials", Description: "Buy soil, mulch, irrigation systems, and other landscaping materials."},
	{Icon: "heart", Title: "Community Programs", Description: "Fund educational workshops and community engagement initiatives."},
}

var impactStats = []stat{
	{Label: "Projects Completed", Value: "47+"},
	{Label: "Volunteers", Value: "1,200+"},
	{Label: "Trees Planted", Value: "3,500+"},
	{Label: "Communities Served", Value: "23+"},
}

var footerColumns = []footerColumn{
	{Title: "Organization", Links: []link{{Name: "About Us", Href: "#about"}, {Name: "Our Team", Href: "#about"}, {Name: "Careers", Href: "#contact"}, {Name: "Press", Href: "#contact"}}},
	{Title: "Services", Links: []link{{Name: "Community Gardens", Href: "#projects"}, {Name: "Urban Landscaping", Href: "#projects"}, {Name: "School Projects", Href: "#projects"}, {Name: "Volunteer Programs", Href: "#volunteer"}}},
	{Title: "Resources", Links: []link{{Name: "Project Gallery", Href: "#gallery"}, {Name: "Before & After", Href: "#gallery"}, {Name: "Educational Content", Href: "#about"}, {Name: "Sustainability Tips", Href: "#about"}}},
	{Title: "Support", Links: []link{{Name: "Contact Us", Href: "#contact"}, {Name: "FAQ", Href: "#contact"}, {Name: "Donate", Href: "#donate"}, {Name: "Volunteer", Href: "#volunteer"}}},
}

const (
	contactAddress = "123 Green Street, New York, NY 10001"
	contactPhone   = "(555) 123-4567"
	contactEmail   = "hello@beamlandscaping.org"
)
