package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/ragecodemaster/landing/pkg/content"
	"github.com/ragecodemaster/landing/pkg/models"
	"github.com/ragecodemaster/landing/pkg/validation"
)

// ConsultationView is the state of the consultation section. Submitted
// swaps the form for the thank-you panel.
type ConsultationView struct {
	Form      models.ConsultationForm
	Errors    validation.FieldErrors
	Submitted bool
}

// Landing renders the full marketing page.
func (r *Renderer) Landing(v ConsultationView) g.Node {
	return r.page(content.Brand+" | Become a Developer",
		hero(),
		benefits(),
		courses(),
		instructor(),
		steps(),
		consultation(v),
		testimonials(),
		faq(),
	)
}

func hero() g.Node {
	return Section(Class("py-24 px-4 text-center"),
		H1(Class("text-5xl font-bold"), g.Text("Become an In-Demand Developer")),
		P(Class("mt-6 text-xl text-gray-300 max-w-3xl mx-auto"),
			g.Text("Learn to code from a former Google engineer. Master JavaScript, React, Python and Java with real-world projects and land your dream job in tech."),
		),
		Div(Class("mt-8 flex flex-wrap justify-center gap-4"),
			A(Href("/card-link"), Class("btn btn-primary"), g.Text("Start First Lesson FREE")),
			A(Href("#consultation"), Class("btn btn-secondary"), g.Text("Get Free Consultation")),
		),
	)
}

func benefits() g.Node {
	return Section(ID("benefits"), Class("py-20 px-4 bg-gray-800"),
		H2(Class("text-4xl font-bold text-center"), g.Text("Why Choose "+content.Brand+"?")),
		Div(Class("max-w-7xl mx-auto mt-12 grid md:grid-cols-3 gap-8"),
			g.Group(g.Map(content.Benefits, func(b content.Benefit) g.Node {
				return Div(Class("card p-6"),
					H3(Class("text-xl font-semibold"), g.Text(b.Title)),
					P(Class("mt-2 text-gray-400"), g.Text(b.Description)),
				)
			})),
		),
	)
}

func courses() g.Node {
	return Section(ID("courses"), Class("py-20 px-4"),
		H2(Class("text-4xl font-bold text-center"), g.Text("Choose Your Path")),
		Div(Class("max-w-7xl mx-auto mt-12 grid md:grid-cols-3 gap-8"),
			g.Group(g.Map(content.Courses, courseCard)),
		),
	)
}

func courseCard(c content.Course) g.Node {
	return Div(Class("card p-6 flex flex-col"), ID("course-"+c.ID),
		H3(Class("text-2xl font-bold"), g.Text(c.Title)),
		P(Class("text-cyan-400"), g.Text(c.Subtitle)),
		P(Class("mt-3 text-gray-400"), g.Text(c.Description)),
		Ul(Class("mt-4 space-y-1"),
			g.Group(g.Map(c.Features, func(f string) g.Node { return Li(g.Text("✓ " + f)) })),
		),
		P(Class("mt-4 text-sm text-gray-400"), g.Textf("%s · %s · %s", c.Duration, c.Projects, c.Level)),
		Div(Class("mt-4"),
			Span(Class("text-3xl font-bold"), g.Text(price(c.FullPrice))),
			Span(Class("ml-2 line-through text-gray-500"), g.Text(price(c.OriginalPrice))),
		),
		P(Class("text-green-400 text-sm"), g.Text("First lesson FREE")),
		A(Href("/card-link?course="+c.ID), Class("btn btn-primary mt-6 text-center"), g.Text("Start First Lesson FREE")),
	)
}

func price(dollars int) string {
	return "$" + strconv.Itoa(dollars)
}

func instructor() g.Node {
	return Section(ID("instructor"), Class("py-20 px-4 bg-gray-800"),
		Div(Class("max-w-5xl mx-auto"),
			H2(Class("text-4xl font-bold"), g.Text("Meet "+content.Instructor)),
			P(Class("text-cyan-400"), g.Text("Former Senior Engineer at Google")),
			Div(Class("mt-8 grid grid-cols-2 md:grid-cols-4 gap-4"),
				g.Group(g.Map(content.InstructorStats, func(s content.Stat) g.Node {
					return Div(Class("card p-4 text-center"),
						P(Class("text-3xl font-bold"), g.Text(s.Number)),
						P(Class("text-gray-400 text-sm"), g.Text(s.Label)),
					)
				})),
			),
			Ul(Class("mt-8 space-y-2"),
				g.Group(g.Map(content.InstructorAchievements, func(a string) g.Node { return Li(g.Text("✓ " + a)) })),
			),
			g.El("blockquote", Class("mt-8 italic text-gray-300"), g.Text("\""+content.InstructorQuote+"\"")),
		),
	)
}

func steps() g.Node {
	return Section(ID("how-it-works"), Class("py-20 px-4"),
		H2(Class("text-4xl font-bold text-center"), g.Text("Your Path to Success")),
		Div(Class("max-w-7xl mx-auto mt-12 grid md:grid-cols-3 gap-8"),
			g.Group(g.Map(content.Steps, func(s content.Step) g.Node {
				href := "#consultation"
				if s.Number == "01" {
					href = "/card-link"
				}
				return Div(Class("card p-6"),
					P(Class("text-5xl font-bold text-cyan-400"), g.Text(s.Number)),
					H3(Class("mt-2 text-xl font-semibold"), g.Text(s.Title)),
					P(Class("mt-2 text-gray-400"), g.Text(s.Description)),
					A(Href(href), Class("btn btn-secondary mt-4 inline-block"), g.Text(s.Action)),
				)
			})),
		),
	)
}

func consultation(v ConsultationView) g.Node {
	var body g.Node
	if v.Submitted {
		body = consultationThanks()
	} else {
		body = consultationForm(v)
	}

	return Section(ID("consultation"), Class("py-20 px-4 bg-gray-800"),
		Div(Class("max-w-2xl mx-auto"),
			H2(Class("text-4xl font-bold text-center"), g.Text("Get Your Free Consultation")),
			P(Class("mt-4 text-center text-gray-400"),
				g.Text("Tell us about your goals and we'll build a personalized learning plan for you."),
			),
			Div(Class("mt-8 card p-8"), body),
		),
	)
}

func consultationThanks() g.Node {
	return Div(ID("consultation-success"), Class("text-center"),
		H3(Class("text-2xl font-bold text-green-400"), g.Text("Thank You!")),
		P(Class("mt-4 text-gray-300"),
			g.Text("Your consultation request has been submitted successfully. Our team will contact you within 24 hours."),
		),
		A(Href("/#consultation"), Class("btn btn-secondary mt-6 inline-block"), g.Text("Submit Another Request")),
	)
}

func consultationForm(v ConsultationView) g.Node {
	return g.El("form", Method("post"), Action("/consultation#consultation"), ID("consultation-form"), g.Attr("novalidate"),
		formID(v.Form.FormID),
		textField("Full Name *", "name", "text", v.Form.Name, "Enter your full name", v.Errors),
		textField("Email Address *", "email", "email", v.Form.Email, "Enter your email", v.Errors),
		Div(Class("mb-4"),
			label("goal", "What's your main goal?"),
			Select(ID("goal"), Name("goal"), Class(inputClass),
				Option(Value(""), g.Text("Select your goal")),
				g.Group(g.Map(models.Goals, func(goal models.Goal) g.Node {
					return Option(Value(string(goal)), g.If(v.Form.Goal == goal, Selected()), g.Text(goal.Label()))
				})),
			),
			fieldError(v.Errors, "goal"),
		),
		Div(Class("mb-4"),
			label("message", "Tell us about yourself"),
			Textarea(ID("message"), Name("message"), g.Attr("rows", "4"), Class(inputClass),
				Placeholder("Your experience, questions, or anything else we should know"),
				g.Text(v.Form.Message),
			),
			fieldError(v.Errors, "message"),
		),
		Button(Type("submit"), Class("btn btn-primary w-full"), g.Text("Get My Free Consultation")),
	)
}

func testimonials() g.Node {
	return Section(ID("testimonials"), Class("py-20 px-4"),
		H2(Class("text-4xl font-bold text-center"), g.Text("Success Stories")),
		Div(Class("max-w-7xl mx-auto mt-12 grid md:grid-cols-3 gap-8"),
			g.Group(g.Map(content.Testimonials, func(t content.Testimonial) g.Node {
				return Div(Class("card p-6"),
					P(Class("text-yellow-400"), g.Text("★★★★★")),
					P(Class("mt-2 text-gray-300"), g.Text("\""+t.Text+"\"")),
					Div(Class("mt-4 flex items-center gap-3"),
						Span(Class("rounded-full bg-cyan-600 w-10 h-10 flex items-center justify-center"), g.Text(t.Initials)),
						Div(
							P(Class("font-semibold"), g.Text(t.Name)),
							P(Class("text-sm text-gray-400"), g.Text(t.Role)),
						),
					),
				)
			})),
		),
	)
}

func faq() g.Node {
	return Section(ID("faq"), Class("py-20 px-4 bg-gray-800"),
		H2(Class("text-4xl font-bold text-center"), g.Text("Frequently Asked Questions")),
		Div(Class("max-w-3xl mx-auto mt-12 space-y-4"),
			g.Group(g.Map(content.FAQs, func(f content.FAQ) g.Node {
				return Details(Class("card p-4"),
					Summary(Class("font-semibold cursor-pointer"), g.Text(f.Question)),
					P(Class("mt-2 text-gray-400"), g.Text(f.Answer)),
				)
			})),
		),
	)
}
