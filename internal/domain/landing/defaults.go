package landing

import "github.com/google/uuid"

// DefaultContent returns the starter content a new landing page is seeded
// with so the editor never opens on an empty state. It is read exactly once
// at page creation; later edits never consult it again.
func DefaultContent() Content {
	return Content{
		Hero: &HeroSection{
			Title:       "Master New Skills Today",
			Subtitle:    "Join thousands of students in our comprehensive course",
			Description: "<p>Transform your career with hands-on lessons, real projects, and personal guidance from an experienced instructor.</p>",
			ButtonText:  "Enroll Now",
		},
		Features: &FeaturesSection{
			Title:    "What You'll Learn",
			Subtitle: "Everything you need to go from beginner to confident practitioner",
			Layout:   LayoutGrid,
			Items: []FeatureItem{
				{
					ID:          uuid.NewString(),
					Title:       "Hands-On Projects",
					Description: "Build real-world projects you can show off in your portfolio.",
					Order:       0,
				},
				{
					ID:          uuid.NewString(),
					Title:       "Lifetime Access",
					Description: "Learn at your own pace with unlimited access to all materials.",
					Order:       1,
				},
				{
					ID:          uuid.NewString(),
					Title:       "Expert Support",
					Description: "Get your questions answered directly by the instructor.",
					Order:       2,
				},
				{
					ID:          uuid.NewString(),
					Title:       "Certificate of Completion",
					Description: "Earn a certificate to share with employers and clients.",
					Order:       3,
				},
			},
		},
		Instructor: &InstructorSection{
			Title:       "Meet Your Instructor",
			Name:        "Alex Morgan",
			Credentials: "10+ years of industry experience",
			Bio:         "<p>Alex has taught over 5,000 students and worked with leading companies in the field. Their teaching style focuses on practical skills you can apply immediately.</p>",
		},
		Testimonials: &TestimonialsSection{
			Title:    "What Students Say",
			Subtitle: "Real feedback from real students",
			Layout:   LayoutCards,
			Items: []Testimonial{
				{
					ID:      uuid.NewString(),
					Name:    "Jamie Lee",
					Role:    "Marketing Manager",
					Content: "This course completely changed how I work. Worth every penny.",
					Rating:  5,
					Order:   0,
				},
				{
					ID:      uuid.NewString(),
					Name:    "Sam Rivera",
					Role:    "Freelancer",
					Company: "Self-employed",
					Content: "Clear, practical, and straight to the point. Highly recommended.",
					Rating:  5,
					Order:   1,
				},
			},
		},
		Pricing: &PricingSection{
			Title:      "Enroll Today",
			Subtitle:   "One-time payment, lifetime access",
			Price:      "199",
			Currency:   "USD",
			ButtonText: "Get Started",
			Features: []string{
				"Full course access",
				"Downloadable resources",
				"Private community",
				"Certificate of completion",
			},
		},
		Contact: &ContactSection{
			Title:    "Questions?",
			Subtitle: "We're happy to help before you enroll",
			Email:    "hello@example.com",
		},
	}
}

// DefaultFormConfig returns the lead-capture form a new page starts with:
// first name, last name and email required, phone optional.
func DefaultFormConfig() FormConfig {
	return FormConfig{
		Fields: []FormField{
			{ID: uuid.NewString(), Name: "firstName", Label: "First Name", Type: FieldText, Required: true, Placeholder: "Jane", Order: 0, Enabled: true},
			{ID: uuid.NewString(), Name: "lastName", Label: "Last Name", Type: FieldText, Required: true, Placeholder: "Doe", Order: 1, Enabled: true},
			{ID: uuid.NewString(), Name: "email", Label: "Email", Type: FieldEmail, Required: true, Placeholder: "jane@example.com", Order: 2, Enabled: true},
			{ID: uuid.NewString(), Name: "phone", Label: "Phone", Type: FieldTel, Required: false, Placeholder: "+1 555 000 0000", Order: 3, Enabled: true},
		},
		SubmitButtonText: "Reserve My Spot",
		SuccessMessage:   "Thanks! We'll be in touch shortly.",
		ErrorMessage:     "Something went wrong. Please try again.",
		NotifyByEmail:    true,
	}
}
