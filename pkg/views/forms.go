package views

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/ragecodemaster/landing/pkg/cardinput"
	"github.com/ragecodemaster/landing/pkg/content"
	"github.com/ragecodemaster/landing/pkg/models"
	"github.com/ragecodemaster/landing/pkg/validation"
)

const inputClass = "w-full rounded-lg bg-gray-700 border border-gray-600 px-4 py-3 focus:border-cyan-400 outline-none"

// CardLinkView is the state of the card-linking page.
type CardLinkView struct {
	Form   models.CardLinkForm
	Errors validation.FieldErrors
	Course *content.Course
}

// CardLink renders the card-linking form, optionally headed by the chosen course.
func (r *Renderer) CardLink(v CardLinkView) g.Node {
	return r.page("Start Your First Lesson FREE | "+content.Brand,
		Section(Class("py-16 px-4"),
			Div(Class("max-w-2xl mx-auto"),
				H1(Class("text-4xl font-bold text-center"), g.Text("Start Your First Lesson FREE")),
				P(Class("mt-4 text-center text-gray-400"),
					g.Text("Link your card to unlock your first lesson. You won't be charged unless you decide to continue."),
				),
				g.If(v.Course != nil, selectedCourse(v.Course)),
				Div(Class("mt-8 card p-8"), cardLinkForm(v)),
			),
		),
		Script(g.Raw(formatScript)),
	)
}

func selectedCourse(c *content.Course) g.Node {
	if c == nil {
		return nil
	}
	return Div(ID("selected-course"), Class("mt-8 card p-6"),
		H2(Class("text-2xl font-bold"), g.Text(c.Title)),
		P(Class("text-gray-400"), g.Text(c.Subtitle)),
		P(Class("mt-2"),
			g.Text("First lesson FREE, then "+price(c.FullPrice)+" "),
			Span(Class("line-through text-gray-500"), g.Text(price(c.OriginalPrice))),
		),
	)
}

func cardLinkForm(v CardLinkView) g.Node {
	f := v.Form
	return g.El("form", Method("post"), Action("/card-link"), ID("card-link-form"), g.Attr("novalidate"),
		formID(f.FormID),
		Input(Type("hidden"), Name("course"), Value(f.Course)),
		H3(Class("text-lg font-semibold mb-4"), g.Text("Card Details")),
		textField("Card Number", cardinput.FieldCardNumber, "text", f.CardNumber, "1234 5678 9012 3456", v.Errors,
			g.Attr("inputmode", "numeric"), g.Attr("autocomplete", "cc-number"), g.Attr("maxlength", "19"), g.Attr("data-format", "")),
		Div(Class("grid grid-cols-2 gap-4"),
			textField("Expiry Date", cardinput.FieldExpiry, "text", f.Expiry, "MM/YY", v.Errors,
				g.Attr("inputmode", "numeric"), g.Attr("autocomplete", "cc-exp"), g.Attr("maxlength", "5"), g.Attr("data-format", "")),
			textField("CVV", cardinput.FieldCVV, "text", f.CVV, "123", v.Errors,
				g.Attr("inputmode", "numeric"), g.Attr("autocomplete", "cc-csc"), g.Attr("maxlength", "4"), g.Attr("data-format", "")),
		),
		H3(Class("text-lg font-semibold my-4"), g.Text("Billing Information")),
		Div(Class("grid grid-cols-2 gap-4"),
			textField("First Name", "first_name", "text", f.FirstName, "John", v.Errors, g.Attr("autocomplete", "given-name")),
			textField("Last Name", "last_name", "text", f.LastName, "Doe", v.Errors, g.Attr("autocomplete", "family-name")),
		),
		textField("Email Address", "email", "email", f.Email, "john@example.com", v.Errors, g.Attr("autocomplete", "email")),
		textField("Street Address", "address", "text", f.Address, "123 Main St", v.Errors, g.Attr("autocomplete", "street-address")),
		Div(Class("grid grid-cols-3 gap-4"),
			textField("City", "city", "text", f.City, "San Francisco", v.Errors, g.Attr("autocomplete", "address-level2")),
			Div(Class("mb-4"),
				label("state", "State"),
				Select(ID("state"), Name("state"), Class(inputClass),
					Option(Value(""), g.Text("Select")),
					g.Group(g.Map(cardinput.States, func(s string) g.Node {
						return Option(Value(s), g.If(strings.EqualFold(f.State, s), Selected()), g.Text(s))
					})),
				),
				fieldError(v.Errors, "state"),
			),
			textField("ZIP Code", cardinput.FieldZip, "text", f.Zip, "12345 or 12345-6789", v.Errors,
				g.Attr("autocomplete", "postal-code"), g.Attr("maxlength", "10"), g.Attr("data-format", "")),
		),
		P(Class("text-sm text-gray-400 mb-4"),
			g.Text("Your card will not be charged for the first lesson. Cancel anytime."),
		),
		Button(Type("submit"), Class("btn btn-primary w-full"), g.Text("Link Card & Start FREE")),
	)
}

// CardLinkSuccess is shown once the card-linking request went through.
func (r *Renderer) CardLinkSuccess(course *content.Course) g.Node {
	lesson := "your first lesson"
	if course != nil {
		lesson = "your first " + course.Title + " lesson"
	}
	return r.page("Card Linked | "+content.Brand,
		Section(ID("card-link-success"), Class("py-24 px-4 text-center"),
			H1(Class("text-4xl font-bold text-green-400"), g.Text("Card Linked Successfully!")),
			P(Class("mt-4 text-gray-300"), g.Text("You now have access to "+lesson+". Check your email for login details.")),
			A(Href("/"), Class("btn btn-primary mt-8 inline-block"), g.Text("Back to Home")),
		),
		r.tracker.Conversion(),
	)
}

// InFlight tells the visitor an earlier submission of the same form is
// still being delivered.
func (r *Renderer) InFlight() g.Node {
	return r.page("Please wait | "+content.Brand,
		Section(ID("in-flight"), Class("py-24 px-4 text-center"),
			H1(Class("text-3xl font-bold"), g.Text("Your request is already being processed")),
			P(Class("mt-4 text-gray-300"), g.Text("Please wait a moment. There is no need to submit the form again.")),
			A(Href("/"), Class("btn btn-secondary mt-8 inline-block"), g.Text("Back to Home")),
		),
	)
}

func formID(id string) g.Node {
	return Input(Type("hidden"), Name("form_id"), Value(id))
}

func label(forID, text string) g.Node {
	return g.El("label", g.Attr("for", forID), Class("block text-sm font-medium mb-2"), g.Text(text))
}

func textField(text, name, typ, value, placeholder string, errs validation.FieldErrors, extra ...g.Node) g.Node {
	attrs := []g.Node{ID(name), Name(name), Type(typ), Value(value), Placeholder(placeholder), Class(inputClass)}
	if errs.Has(name) {
		attrs = append(attrs, g.Attr("aria-invalid", "true"))
	}
	attrs = append(attrs, extra...)

	return Div(Class("mb-4"),
		label(name, text),
		Input(attrs...),
		fieldError(errs, name),
	)
}

func fieldError(errs validation.FieldErrors, name string) g.Node {
	msg, ok := errs[name]
	if !ok {
		return nil
	}
	return P(ID(name+"-error"), Class("mt-1 text-sm text-red-400"), g.Text(msg))
}

// formatScript reformats card inputs through /api/format as the user types.
const formatScript = `document.querySelectorAll('[data-format]').forEach(function (el) {
  el.addEventListener('input', function () {
    fetch('/api/format', {
      method: 'POST',
      headers: {'Content-Type': 'application/json'},
      body: JSON.stringify({field: el.name, value: el.value})
    }).then(function (r) { return r.json(); }).then(function (d) {
      if (typeof d.value === 'string' && d.value !== el.value) { el.value = d.value; }
    }).catch(function () {});
  });
});`
