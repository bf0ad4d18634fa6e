package portfolio

// DefaultProjects returns a fresh copy of the projects shown on the site.
func DefaultProjects() []Project {
	return []Project{
		{
			ID:           1,
			Title:        "E-Commerce Platform",
			Description:  "A full-stack e-commerce application built with React, Node.js, and MongoDB. Features include user authentication, product catalog, shopping cart, and payment integration.",
			Technologies: []string{"React", "Node.js", "MongoDB", "Express", "Stripe"},
			Image:        "🛒",
			LiveURL:      "#",
			GitHubURL:    "#",
			Featured:     true,
			Category:     "Full Stack",
		},
		{
			ID:           2,
			Title:        "Task Management App",
			Description:  "A collaborative task management application with real-time updates, drag-and-drop functionality, and team collaboration features.",
			Technologies: []string{"React", "Socket.io", "Node.js", "PostgreSQL", "Redux"},
			Image:        "📋",
			LiveURL:      "#",
			GitHubURL:    "#",
			Featured:     true,
			Category:     "Full Stack",
		},
		{
			ID:           3,
			Title:        "Weather Dashboard",
			Description:  "A responsive weather dashboard that displays current weather conditions and forecasts for multiple cities with interactive charts and maps.",
			Technologies: []string{"JavaScript", "API Integration", "Chart.js", "CSS3", "HTML5"},
			Image:        "🌤️",
			LiveURL:      "#",
			GitHubURL:    "#",
			Featured:     true,
			Category:     "Frontend",
		},
		{
			ID:           4,
			Title:        "Blog Platform",
			Description:  "A modern blog platform with markdown support, comment system, and admin dashboard for content management.",
			Technologies: []string{"Next.js", "TypeScript", "Prisma", "PostgreSQL", "Tailwind CSS"},
			Image:        "📝",
			LiveURL:      "#",
			GitHubURL:    "#",
			Featured:     true,
			Category:     "Full Stack",
		},
		{
			ID:           5,
			Title:        "Social Media Analytics",
			Description:  "A data visualization tool for social media analytics with interactive dashboards and real-time data processing.",
			Technologies: []string{"Python", "Django", "D3.js", "Redis", "Celery"},
			Image:        "📊",
			LiveURL:      "#",
			GitHubURL:    "#",
			Featured:     true,
			Category:     "Data Science",
		},
		{
			ID:           6,
			Title:        "Mobile Banking App",
			Description:  "A secure mobile banking application with biometric authentication, transaction history, and money transfer capabilities.",
			Technologies: []string{"React Native", "Node.js", "MongoDB", "JWT", "Stripe"},
			Image:        "🏦",
			LiveURL:      "#",
			GitHubURL:    "#",
			Featured:     true,
			Category:     "Mobile",
		},
	}
}

// DefaultSkills returns a fresh copy of the skills shown on the site.
func DefaultSkills() map[SkillCategory][]Skill {
	return map[SkillCategory][]Skill{
		SkillsFrontend: {
			{Name: "HTML5", Level: 90, Icon: "fab fa-html5"},
			{Name: "CSS3", Level: 85, Icon: "fab fa-css3-alt"},
			{Name: "JavaScript", Level: 80, Icon: "fab fa-js-square"},
			{Name: "React", Level: 75, Icon: "fab fa-react"},
			{Name: "Vue.js", Level: 70, Icon: "fab fa-vuejs"},
			{Name: "TypeScript", Level: 65, Icon: "fab fa-js-square"},
		},
		SkillsBackend: {
			{Name: "Node.js", Level: 80, Icon: "fab fa-node-js"},
			{Name: "Python", Level: 75, Icon: "fab fa-python"},
			{Name: "Express.js", Level: 70, Icon: "fas fa-server"},
			{Name: "Django", Level: 65, Icon: "fab fa-python"},
			{Name: "MongoDB", Level: 70, Icon: "fas fa-database"},
			{Name: "PostgreSQL", Level: 65, Icon: "fas fa-database"},
		},
		SkillsTools: {
			{Name: "Git", Level: 85, Icon: "fab fa-git-alt"},
			{Name: "GitHub", Level: 80, Icon: "fab fa-github"},
			{Name: "Docker", Level: 60, Icon: "fab fa-docker"},
			{Name: "AWS", Level: 55, Icon: "fab fa-aws"},
			{Name: "VS Code", Level: 90, Icon: "fas fa-code"},
			{Name: "Figma", Level: 70, Icon: "fab fa-figma"},
		},
	}
}
