package llm

import "github.com/joseph-ayodele/resume-site/internal/entity"

// ExampleResume is the literal example embedded in the system instruction. It fixes the
// field list and the tone the model should follow; it is never stored.
var ExampleResume = entity.Resume{
	Personal: entity.Personal{
		Name:     "Alex Johnson",
		Role:     "Full Stack Developer",
		Tagline:  "Crafting digital experiences with code and creativity",
		Email:    "alex.johnson@email.com",
		Phone:    "+1 (555) 123-4567",
		Location: "San Francisco, CA",
		Bio:      "Passionate full-stack developer with 5+ years of experience building scalable web applications. I love turning complex problems into simple, beautiful solutions that make a difference.",
		Avatar:   "/placeholder.svg?height=400&width=400",
	},
	Experience: []entity.Experience{
		{
			ID:           1,
			Company:      "TechCorp Inc.",
			Position:     "Senior Full Stack Developer",
			Duration:     "2022 - Present",
			Description:  "Led development of microservices architecture serving 1M+ users. Mentored junior developers and implemented CI/CD pipelines.",
			Technologies: []string{"React", "Node.js", "AWS", "Docker", "PostgreSQL"},
		},
		{
			ID:           2,
			Company:      "StartupXYZ",
			Position:     "Frontend Developer",
			Duration:     "2020 - 2022",
			Description:  "Built responsive web applications using React and TypeScript. Collaborated with design team to implement pixel-perfect UIs.",
			Technologies: []string{"React", "TypeScript", "Tailwind CSS", "GraphQL"},
		},
		{
			ID:           3,
			Company:      "Digital Agency",
			Position:     "Junior Developer",
			Duration:     "2019 - 2020",
			Description:  "Developed client websites and learned modern web development practices. Gained experience in both frontend and backend technologies.",
			Technologies: []string{"JavaScript", "PHP", "MySQL", "WordPress"},
		},
	},
	Skills: []entity.Skill{
		{Name: "JavaScript", Level: 95, Category: "Frontend"},
		{Name: "TypeScript", Level: 90, Category: "Frontend"},
		{Name: "React", Level: 95, Category: "Frontend"},
		{Name: "Next.js", Level: 85, Category: "Frontend"},
		{Name: "Vue.js", Level: 75, Category: "Frontend"},
		{Name: "Node.js", Level: 90, Category: "Backend"},
		{Name: "Python", Level: 80, Category: "Backend"},
		{Name: "PostgreSQL", Level: 85, Category: "Backend"},
		{Name: "MongoDB", Level: 80, Category: "Backend"},
		{Name: "AWS", Level: 75, Category: "DevOps"},
		{Name: "Docker", Level: 80, Category: "DevOps"},
		{Name: "Kubernetes", Level: 65, Category: "DevOps"},
	},
	Projects: []entity.Project{
		{
			ID:              1,
			Title:           "E-Commerce Platform",
			Description:     "A full-stack e-commerce solution with real-time inventory management and payment processing.",
			LongDescription: "Built a comprehensive e-commerce platform from scratch using React, Node.js, and PostgreSQL. Features include user authentication, product catalog, shopping cart, payment integration with Stripe, order management, and admin dashboard. Implemented real-time inventory updates and email notifications.",
			Image:           "/placeholder.svg?height=300&width=500",
			Technologies:    []string{"React", "Node.js", "PostgreSQL", "Stripe", "Redis"},
			Github:          "https://github.com/alexjohnson/ecommerce-platform",
			Demo:            "https://ecommerce-demo.com",
			Featured:        true,
		},
		{
			ID:              2,
			Title:           "Task Management App",
			Description:     "A collaborative task management application with real-time updates and team features.",
			LongDescription: "Developed a modern task management application similar to Trello with drag-and-drop functionality, real-time collaboration, file attachments, and team management. Used React with TypeScript for the frontend and Node.js with Socket.io for real-time features.",
			Image:           "/placeholder.svg?height=300&width=500",
			Technologies:    []string{"React", "TypeScript", "Socket.io", "MongoDB", "Express"},
			Github:          "https://github.com/alexjohnson/task-manager",
			Demo:            "https://taskmanager-demo.com",
			Featured:        true,
		},
		{
			ID:              3,
			Title:           "Weather Dashboard",
			Description:     "A responsive weather dashboard with location-based forecasts and interactive maps.",
			LongDescription: "Created a comprehensive weather dashboard that provides current weather conditions, 7-day forecasts, and interactive weather maps. Features location-based weather detection, favorite locations, weather alerts, and beautiful data visualizations using Chart.js.",
			Image:           "/placeholder.svg?height=300&width=500",
			Technologies:    []string{"Vue.js", "Chart.js", "OpenWeather API", "Mapbox"},
			Github:          "https://github.com/alexjohnson/weather-dashboard",
			Demo:            "https://weather-demo.com",
			Featured:        false,
		},
		{
			ID:              4,
			Title:           "Social Media Analytics",
			Description:     "Analytics dashboard for social media performance tracking and insights.",
			LongDescription: "Built an analytics dashboard that aggregates data from multiple social media platforms to provide comprehensive insights into engagement, reach, and performance metrics. Features custom date ranges, exportable reports, and automated scheduling for social media posts.",
			Image:           "/placeholder.svg?height=300&width=500",
			Technologies:    []string{"React", "D3.js", "Python", "FastAPI", "PostgreSQL"},
			Github:          "https://github.com/alexjohnson/social-analytics",
			Demo:            "https://analytics-demo.com",
			Featured:        false,
		},
	},
	Education: []entity.Education{
		{
			ID:          1,
			Institution: "University of California, Berkeley",
			Degree:      "Bachelor of Science in Computer Science",
			Duration:    "2015 - 2019",
			Description: "Graduated Magna Cum Laude. Relevant coursework: Data Structures, Algorithms, Database Systems, Software Engineering.",
			Logo:        "/placeholder.svg?height=60&width=60",
		},
		{
			ID:          2,
			Institution: "FreeCodeCamp",
			Degree:      "Full Stack Web Development Certification",
			Duration:    "2019",
			Description: "Completed comprehensive curriculum covering HTML, CSS, JavaScript, React, Node.js, and database management.",
			Logo:        "/placeholder.svg?height=60&width=60",
		},
	},
}
