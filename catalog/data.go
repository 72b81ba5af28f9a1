package catalog

var starthub = Provider{
	Name: "StartHub Academy",
	URL:  "https://starthub.academy",
}

// builtinCourses is the compiled-in course table, in presentation order.
var builtinCourses = []Course{
	{
		ID:           "1",
		Slug:         "startup-fundamentals-2024",
		Name:         "Startup Fundamentals: From Idea to Launch",
		Description:  "Learn the essential skills to turn your startup idea into reality. This comprehensive course covers market validation, MVP development, fundraising strategies, and scaling your business. Taught by successful founders who have raised over $50M in venture capital.",
		Provider:     starthub,
		Instructor:   "Mikhail Sokolov",
		Duration:     "8 weeks",
		Level:        "Beginner to Intermediate",
		Price:        299,
		Currency:     "USD",
		Rating:       4.8,
		TotalReviews: 247,
		Image:        "https://images.unsplash.com/photo-1559136555-9303baea8ebd?w=1200&h=630&fit=crop&q=80",
		StartDate:    "2024-03-01",
		EndDate:      "2024-04-26",
		Syllabus: []string{
			"Week 1: Ideation & Market Research",
			"Week 2: Customer Discovery & Validation",
			"Week 3: Building Your MVP",
			"Week 4: Go-to-Market Strategy",
			"Week 5: Fundraising Fundamentals",
			"Week 6: Pitch Deck Mastery",
			"Week 7: Growth & Scaling",
			"Week 8: Legal & Operations",
		},
		LearningOutcomes: []string{
			"Validate your startup idea with real customer feedback",
			"Build a minimum viable product (MVP) efficiently",
			"Create a compelling pitch deck for investors",
			"Understand different fundraising options",
			"Develop a go-to-market strategy",
			"Learn from real startup case studies",
		},
		Category: "Entrepreneurship",
	},
	{
		ID:           "2",
		Slug:         "technical-founder-bootcamp",
		Name:         "Technical Founder Bootcamp",
		Description:  "Designed for non-technical founders who want to understand technology. Learn to communicate with developers, make technical decisions, and oversee product development without writing code.",
		Provider:     starthub,
		Instructor:   "Alex Chen",
		Duration:     "6 weeks",
		Level:        "Beginner",
		Price:        249,
		Currency:     "USD",
		Rating:       4.9,
		TotalReviews: 183,
		Image:        "https://images.unsplash.com/photo-1531482615713-2afd69097998?w=1200&h=630&fit=crop&q=80",
		StartDate:    "2024-03-15",
		EndDate:      "2024-04-26",
		Syllabus: []string{
			"Week 1: Tech Stack Fundamentals",
			"Week 2: Product Development Process",
			"Week 3: Working with Developers",
			"Week 4: Making Technical Decisions",
			"Week 5: Security & Infrastructure",
			"Week 6: Scaling Your Product",
		},
		LearningOutcomes: []string{
			"Understand common tech stacks and architectures",
			"Communicate effectively with technical teams",
			"Make informed technical decisions",
			"Hire and manage developers",
			"Understand product development lifecycle",
		},
		Category: "Technology",
	},
	{
		ID:           "3",
		Slug:         "venture-capital-masterclass",
		Name:         "Venture Capital Masterclass",
		Description:  "Master the art of raising venture capital. Learn from VCs and successful founders about what investors look for, how to network effectively, and negotiate term sheets.",
		Provider:     starthub,
		Instructor:   "Sarah Williams",
		Duration:     "4 weeks",
		Level:        "Intermediate",
		Price:        349,
		Currency:     "USD",
		Rating:       4.7,
		TotalReviews: 156,
		Image:        "https://images.unsplash.com/photo-1542744173-8e7e53415bb0?w=1200&h=630&fit=crop&q=80",
		StartDate:    "2024-04-01",
		EndDate:      "2024-04-29",
		Syllabus: []string{
			"Week 1: VC Landscape & Types of Funding",
			"Week 2: Preparing for Fundraising",
			"Week 3: Pitching to Investors",
			"Week 4: Term Sheets & Negotiation",
		},
		LearningOutcomes: []string{
			"Understand the venture capital ecosystem",
			"Prepare your startup for fundraising",
			"Create a compelling investor pitch",
			"Navigate term sheets and negotiations",
			"Build relationships with investors",
		},
		Category: "Fundraising",
	},
}
