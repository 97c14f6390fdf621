package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/ragecodemaster/landing/pkg/analytics"
	"github.com/ragecodemaster/landing/pkg/content"
)

// Renderer builds full pages. The analytics tracker is injected so tests
// can render without any third-party script.
type Renderer struct {
	tracker analytics.Tracker
}

func New(tracker analytics.Tracker) *Renderer {
	if tracker == nil {
		tracker = analytics.Noop{}
	}
	return &Renderer{tracker: tracker}
}

func (r *Renderer) page(title string, body ...g.Node) g.Node {
	return Doctype(
		HTML(Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				g.El("title", g.Text(title)),
				Script(Src("https://cdn.tailwindcss.com")),
				r.tracker.Head(),
			),
			Body(Class("min-h-screen bg-gray-900 text-white"),
				navigation(),
				Main(body...),
				footer(),
			),
		),
	)
}

func navigation() g.Node {
	links := []struct{ href, label string }{
		{"/#courses", "Courses"},
		{"/#instructor", "Instructor"},
		{"/#testimonials", "Success Stories"},
		{"/#faq", "FAQ"},
	}

	return Nav(Class("sticky top-0 z-50 bg-gray-900/90 border-b border-gray-800"),
		Div(Class("max-w-7xl mx-auto px-4 flex items-center justify-between h-16"),
			A(Href("/"), Class("font-bold text-xl"), g.Text(content.Brand)),
			Div(Class("hidden md:flex gap-6"),
				g.Group(g.Map(links, func(l struct{ href, label string }) g.Node {
					return A(Href(l.href), Class("text-gray-300 hover:text-cyan-400"), g.Text(l.label))
				})),
			),
			A(Href("/#consultation"), Class("btn btn-primary"), g.Text("Free Consultation")),
		),
	)
}

func footer() g.Node {
	return Footer(Class("border-t border-gray-800 py-12 px-4 text-gray-400"),
		Div(Class("max-w-7xl mx-auto grid md:grid-cols-3 gap-8"),
			Div(
				P(Class("font-bold text-white text-lg"), g.Text(content.Brand)),
				P(Class("mt-2"), g.Text("Transform your career with intensive programming courses taught by a Google engineer. Join 500+ successful developers.")),
			),
			Ul(
				Li(A(Href("/#courses"), g.Text("Courses"))),
				Li(A(Href("/#instructor"), g.Text("About Instructor"))),
				Li(A(Href("/#testimonials"), g.Text("Success Stories"))),
				Li(A(Href("/#faq"), g.Text("FAQ"))),
				Li(A(Href("/#consultation"), g.Text("Contact"))),
			),
			Div(
				P(g.Text("San Francisco, CA")),
				P(g.Text("United States")),
			),
		),
		P(Class("text-center text-sm mt-8"), g.Text("Privacy Policy · Terms of Service · Refund Policy")),
	)
}
