// Package content holds the copy shown on the landing page.
package content

// Brand is the product name used in page titles and notifications.
const Brand = "RageCodeMaster Pro"

// Instructor is the course author featured on the page.
const Instructor = "Bogdan Stashchuk"

type Course struct {
	ID            string
	Title         string
	Subtitle      string
	Description   string
	FullPrice     int
	OriginalPrice int
	Features      []string
	Duration      string
	Projects      string
	Level         string
}

type Benefit struct {
	Title       string
	Description string
}

type Step struct {
	Number      string
	Title       string
	Description string
	Action      string
}

type Stat struct {
	Number string
	Label  string
}

type Testimonial struct {
	Name     string
	Role     string
	Initials string
	Text     string
}

type FAQ struct {
	Question string
	Answer   string
}

var Courses = []Course{
	{
		ID:            "java",
		Title:         "Java - Complete Java Course",
		Subtitle:      "Master Java Programming from Basics to Advanced",
		Description:   "Learn all key Java features: fundamentals, data types, classes, methods, OOP, collections, exceptions, and generics",
		FullPrice:     249,
		OriginalPrice: 349,
		Features: []string{
			"Java Fundamentals & Syntax",
			"Object-Oriented Programming",
			"Collections & Data Structures",
			"Exception Handling",
			"Generics & Advanced Topics",
			"Real-world Projects",
		},
		Duration: "40+ hours",
		Projects: "8 Projects",
		Level:    "Beginner to Advanced",
	},
	{
		ID:            "javascript",
		Title:         "JavaScript - Web Development Masterclass",
		Subtitle:      "React and Node.js Complete Guide",
		Description:   "Become a Web Developer with ONE course. HTML, CSS, JavaScript, React, NPM, Node.js, DOM with many Projects and Examples",
		FullPrice:     299,
		OriginalPrice: 399,
		Features: []string{
			"HTML5 & CSS3 Mastery",
			"Modern JavaScript (ES6+)",
			"React Development",
			"Node.js & NPM",
			"DOM Manipulation",
			"Full-Stack Projects",
		},
		Duration: "50+ hours",
		Projects: "12 Projects",
		Level:    "Beginner to Advanced",
	},
	{
		ID:            "python",
		Title:         "Python - Complete Python Course",
		Subtitle:      "Modern Python Programming Mastery",
		Description:   "Learn and understand all modern Python features that are used most often in practice in this comprehensive Python course",
		FullPrice:     229,
		OriginalPrice: 299,
		Features: []string{
			"Python Fundamentals",
			"Data Structures & Algorithms",
			"Object-Oriented Programming",
			"File Handling & APIs",
			"Libraries & Frameworks",
			"Data Science Basics",
		},
		Duration: "45+ hours",
		Projects: "10 Projects",
		Level:    "Beginner to Advanced",
	},
}

// CourseByID returns the course with id, if any.
func CourseByID(id string) (Course, bool) {
	for _, c := range Courses {
		if c.ID == id {
			return c, true
		}
	}
	return Course{}, false
}

var Benefits = []Benefit{
	{"Lightning Fast Results", "Get job-ready in 3-6 months with our intensive, focused curriculum designed for rapid skill acquisition."},
	{"Learn from " + Instructor, "Get mentored by a former Google Senior Engineer with 15+ years of experience, bringing real-world industry knowledge to every lesson."},
	{"Modern Tech Stack", "Master JavaScript, React, and Python - the most in-demand technologies in today's job market."},
	{"Portfolio Projects", "Build 5+ real-world projects that showcase your skills to potential employers and clients."},
	{"Personalized Mentoring", "Get 1-on-1 code reviews and career guidance to accelerate your learning journey."},
	{"Job Placement Support", "Resume optimization, interview prep, and direct connections to our hiring partner network."},
}

var Steps = []Step{
	{"01", "Link Your Card", "Securely link your card and get instant access to your first lesson completely FREE.", "Start FREE"},
	{"02", "Master the Fundamentals", "Build solid foundations in JavaScript, React, and Python through hands-on projects.", "Learn More"},
	{"03", "Land Your Dream Job", "Complete your portfolio, ace interviews, and get hired with our job placement support.", "Get Started"},
}

var InstructorStats = []Stat{
	{"15+", "Years Experience"},
	{"500+", "Students Placed"},
	{"100k+", "Course Students"},
	{"4.9/5", "Average Rating"},
}

var InstructorAchievements = []string{
	"15+ years of software development experience",
	"Former Senior Engineer at Google",
	"500+ successful students placed in top companies",
	"Expert in JavaScript, React, Python, and modern web technologies",
	"Published author of programming courses with 100k+ students",
	"Mentored developers now working at FAANG companies",
}

const InstructorQuote = "My mission is to bridge the gap between academic learning and real-world industry requirements. " +
	"I've seen what it takes to succeed at top tech companies, and I'm here to guide you on that journey."

var Testimonials = []Testimonial{
	{"Sarah Johnson", "Frontend Developer", "SJ", "Very clear and to the point. I recommend the author's courses to all my friends. My son bought a Python course. I really like it."},
	{"Mike Chen", "Full Stack Developer", "MC", "Excellent course. Very consistent and detailed material delivery. Thanks to this course, I was able to implement my first Python projects."},
	{"Emily Rodriguez", "Python Developer", "ER", "This is what I wanted. Very balanced and detailed course. Divided into convenient steps for mastering. Enough practice. Effective logic of presentation. The instructor beautifully presents and demonstrates the material, engages with his involvement in the process. Very satisfied with the course."},
	{"David Kim", "React Developer", "DK", "Amazing course structure and teaching methodology. The projects are real-world applicable and helped me land my current job."},
	{"Jessica Taylor", "JavaScript Developer", "JT", "Best investment in my career. The instructor's Google background really shows in the quality of content."},
	{"Alex Thompson", "Software Engineer", "AT", "Comprehensive course with excellent practical examples. The step-by-step approach made complex concepts easy to understand. Highly recommend for anyone serious about programming."},
}

var FAQs = []FAQ{
	{"How does the FREE first lesson work?", "Simply link your card to get instant access to your first lesson completely FREE. No upfront payment required. If you decide to continue after the first lesson, you'll be charged the full course price (Java: $249, JavaScript: $299, Python: $229). If you don't want to continue, just cancel - no charges at all."},
	{"Why do you need my card information?", "We securely store your card information to make it seamless for you to continue with the full course if you love the first lesson. This eliminates the need to re-enter payment details later. Your card is never charged until you explicitly decide to continue."},
	{"What if I have no programming experience?", "Perfect! Our courses are designed for complete beginners. We start with the absolute basics and gradually build up your skills. Many of our most successful graduates started with zero coding experience."},
	{"How long does it take to complete the program?", "Most students complete our intensive program in 3-6 months, depending on their pace and time commitment. We recommend dedicating 10-15 hours per week for optimal results."},
	{"What's included in the full course price?", "The full course includes lifetime access to all video lessons, downloadable resources, project files, 1-on-1 mentoring sessions, career guidance, job placement assistance, and access to our private community of developers."},
	{"Do you provide job placement assistance?", "Yes! We offer comprehensive career support including resume optimization, portfolio review, interview preparation, and direct connections to our network of hiring partners."},
	{"Is my card information secure?", "We use bank-level encryption to protect your card information. We're PCI DSS compliant and never store your full card details. Your information is processed through secure payment gateways."},
	{"Can I cancel anytime?", "Yes! You can cancel anytime before deciding to continue with the full course. If you cancel after the first lesson, there are no charges. Even after purchasing the full course, we offer a 30-day money-back guarantee."},
}
