package catalog

// Static returns the catalog shipped with the binary. It backs the API when
// CATALOG_SOURCE=static and is what cmd/seed writes into MongoDB.
func Static() *Catalog {
	return New(staticServices, staticSpecializedServices, staticProjects)
}

var staticServices = []Service{
	{
		ID:          "custom-software",
		Title:       "Custom Software Development",
		Description: "Tailored web and backend systems built around the way your business actually works.",
		Icon:        "Code",
		Benefits: []string{
			"Software that fits your processes instead of the other way around",
			"Full ownership of source code and infrastructure",
			"Predictable delivery in short, reviewable iterations",
		},
		Offerings: []string{
			"Web applications",
			"Internal tools and back-office systems",
			"API design and integration",
		},
	},
	{
		ID:          "mobile-apps",
		Title:       "Mobile App Development",
		Description: "Native-feeling iOS and Android apps from a single, maintainable codebase.",
		Icon:        "Smartphone",
		Benefits: []string{
			"One codebase for both platforms",
			"Offline-first data handling",
			"Store submission and release management included",
		},
		Offerings: []string{
			"Cross-platform apps",
			"App store launch support",
			"Push notifications and analytics",
		},
	},
	{
		ID:          "cloud-devops",
		Title:       "Cloud & DevOps",
		Description: "Infrastructure, pipelines and monitoring that keep releases boring and systems up.",
		Icon:        "Cloud",
		Benefits: []string{
			"Automated, repeatable deployments",
			"Lower hosting costs through right-sizing",
			"Alerting before your customers notice",
		},
		Offerings: []string{
			"CI/CD pipelines",
			"Infrastructure as code",
			"Observability setup",
		},
	},
	{
		ID:          "consulting",
		Title:       "Technical Consulting",
		Description: "Architecture reviews, technology choices and hands-on guidance for in-house teams.",
		Icon:        "Lightbulb",
		Benefits: []string{
			"Independent second opinion on critical decisions",
			"Roadmaps grounded in your team's capacity",
			"Knowledge transfer instead of dependency",
		},
		Offerings: []string{
			"Architecture review",
			"Code and security audits",
			"Team mentoring",
		},
	},
}

var staticSpecializedServices = []SpecializedService{
	{
		Title:       "Legacy System Modernization",
		Icon:        "RefreshCw",
		Description: "Incrementally move ageing systems to modern stacks without a risky big-bang rewrite.",
	},
	{
		Title:       "Performance Optimization",
		Icon:        "Gauge",
		Description: "Profile, measure and fix the slow paths in your applications and databases.",
	},
	{
		Title:       "E-commerce Solutions",
		Icon:        "ShoppingCart",
		Description: "Storefronts, checkout flows and inventory integrations that convert.",
	},
	{
		Title:       "Data Integration",
		Icon:        "Database",
		Description: "Connect CRMs, ERPs and spreadsheets into one reliable source of truth.",
	},
	{
		Title:       "MVP Development",
		Icon:        "Rocket",
		Description: "Validate a product idea with a focused first version in weeks, not months.",
	},
}

var staticProjects = []Project{
	{
		ID:            "fleet-tracker",
		Title:         "Fleet Tracker",
		Category:      "Web Application",
		Description:   "Real-time vehicle tracking and dispatch dashboard for a regional logistics company.",
		ClientType:    "Logistics",
		Technologies:  []string{"React", "Go", "PostgreSQL", "WebSockets"},
		ImageURL:      "/images/projects/fleet-tracker.webp",
		Year:          "2024",
		DetailPageURL: "/projects/fleet-tracker",
	},
	{
		ID:           "clinic-booking",
		Title:        "Clinic Booking App",
		Category:     "Mobile App",
		Description:  "Appointment booking and reminders for a network of physiotherapy clinics.",
		ClientType:   "Healthcare",
		Technologies: []string{"React Native", "Node.js", "MongoDB"},
		ImageURL:     "/images/projects/clinic-booking.webp",
		Year:         "2024",
		Link:         "https://apps.apple.com/app/clinic-booking",
		LinkType:     LinkTypeAppStore,
	},
	{
		ID:           "artisan-market",
		Title:        "Artisan Market",
		Category:     "E-commerce",
		Description:  "Multi-vendor marketplace for handmade goods with integrated payments and shipping labels.",
		ClientType:   "Retail",
		Technologies: []string{"Next.js", "Stripe", "PostgreSQL"},
		ImageURL:     "/images/projects/artisan-market.webp",
		Year:         "2023",
		Link:         "https://artisan-market.example.com",
		LinkType:     LinkTypeWebsite,
	},
	{
		ID:            "ledger-migration",
		Title:         "Ledger Migration",
		Category:      "Modernization",
		Description:   "Migrated a 15-year-old accounting system to a cloud-hosted service with zero data loss.",
		ClientType:    "Finance",
		Technologies:  []string{"Java", "Kotlin", "AWS", "Terraform"},
		ImageURL:      "/images/projects/ledger-migration.webp",
		Year:          "2023",
		DetailPageURL: "/projects/ledger-migration",
	},
	{
		ID:           "open-metrics-kit",
		Title:        "Open Metrics Kit",
		Category:     "Open Source",
		Description:  "Lightweight metrics collection library used across our client deployments.",
		ClientType:   "Internal",
		Technologies: []string{"Go", "Prometheus"},
		ImageURL:     "/images/projects/open-metrics-kit.webp",
		Year:         "2022",
		Link:         "https://github.com/example/open-metrics-kit",
		LinkType:     LinkTypeGitHub,
	},
}
