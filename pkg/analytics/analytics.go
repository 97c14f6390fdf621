// Package analytics renders the tracking snippets the pages need, so
// pages never reach for a global tracker themselves.
package analytics

import (
	"encoding/json"
	"fmt"
	"net/url"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Tracker provides the page-level analytics markup.
type Tracker interface {
	// Head is placed in <head> on every page.
	Head() g.Node
	// Conversion is placed on the card-linking success page.
	Conversion() g.Node
}

// New returns a Google tag tracker, or Noop when id is empty.
func New(id, conversionSendTo string) Tracker {
	if id == "" {
		return Noop{}
	}
	return Gtag{ID: id, SendTo: conversionSendTo}
}

// Noop renders nothing.
type Noop struct{}

func (Noop) Head() g.Node       { return g.Group(nil) }
func (Noop) Conversion() g.Node { return g.Group(nil) }

// Gtag is Google's gtag.js.
type Gtag struct {
	ID     string
	SendTo string
}

func (t Gtag) Head() g.Node {
	return g.Group([]g.Node{
		Script(Async(), Src("https://www.googletagmanager.com/gtag/js?id="+url.QueryEscape(t.ID))),
		Script(g.Raw(fmt.Sprintf(
			"window.dataLayer=window.dataLayer||[];function gtag(){dataLayer.push(arguments);}gtag('js',new Date());gtag('config',%s);",
			jsString(t.ID),
		))),
	})
}

func (t Gtag) Conversion() g.Node {
	if t.SendTo == "" {
		return g.Group(nil)
	}
	return Script(g.Raw(fmt.Sprintf(
		"if(typeof gtag==='function'){gtag('event','conversion',{send_to:%s,value:0.0,currency:'USD'});}",
		jsString(t.SendTo),
	)))
}

// jsString quotes s for use inside a <script> element. json.Marshal
// escapes <, > and & so the value cannot close the element.
func jsString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
