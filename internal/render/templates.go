package render

import "html/template"

type pageView struct {
	Title  string
	PageID string
	Editor bool
	// Stylesheet and the per-section inline styles are prebuilt as
	// template.CSS so theme values (quoted font stacks, gradients) survive
	// the html/template CSS value filter.
	Stylesheet template.CSS
	HeroStyle  template.CSS
	SectStyle  template.CSS
	Sections   []sectionView
}

// sectionView is a tagged union: exactly one of the section pointers is set.
type sectionView struct {
	Key string

	Hero         *heroView
	Features     *featuresView
	Instructor   *instructorView
	Testimonials *testimonialsView
	Pricing      *pricingView
	Contact      *contactView
}

type heroView struct {
	Title      string
	Subtitle   string
	Desc       template.HTML
	ButtonText string
	Form       *leadFormView
}

type leadFormView struct {
	Fields         []formFieldView
	SubmitText     string
	SuccessMessage string
}

type formFieldView struct {
	Name        string
	Label       string
	Type        string
	Required    bool
	Placeholder string
	Options     []string
}

type featuresView struct {
	Title    string
	Subtitle template.HTML
	Layout   string
	Items    []featureItemView
}

type featureItemView struct {
	Title       string
	Description string
}

type instructorView struct {
	Title       string
	Name        string
	Credentials string
	Bio         template.HTML
}

type testimonialsView struct {
	Title    string
	Subtitle string
	Items    []testimonialView
}

type testimonialView struct {
	Name    string
	Role    string
	Company string
	Content string
	Stars   string
}

type pricingView struct {
	Title         string
	Subtitle      string
	Price         string
	OriginalPrice string
	Currency      string
	Features      []string
	ButtonText    string
}

type contactView struct {
	Title    string
	Subtitle string
	Phone    string
	Email    string
	Address  string
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>{{.Stylesheet}}</style>
</head>
<body>
{{- range .Sections}}
{{- if .Hero}}
<section id="hero" class="section hero" style="{{$.HeroStyle}}">
  <div class="container">
    <h1>{{.Hero.Title}}</h1>
    <p class="hero-subtitle">{{.Hero.Subtitle}}</p>
    <div class="hero-description">{{.Hero.Desc}}</div>
    <button class="btn" type="button">{{.Hero.ButtonText}}</button>
    {{- with .Hero.Form}}
    <form class="lead-form" method="post" action="leads">
      {{- range .Fields}}
      <label>{{.Label}}{{if .Required}} *{{end}}
        {{- if eq .Type "textarea"}}
        <textarea name="{{.Name}}" placeholder="{{.Placeholder}}"{{if .Required}} required{{end}}></textarea>
        {{- else if eq .Type "select"}}
        <select name="{{.Name}}"{{if .Required}} required{{end}}>
          {{- range .Options}}<option value="{{.}}">{{.}}</option>{{end}}
        </select>
        {{- else}}
        <input type="{{.Type}}" name="{{.Name}}" placeholder="{{.Placeholder}}"{{if .Required}} required{{end}}>
        {{- end}}
      </label>
      {{- end}}
      <button class="btn lead-submit" type="submit">{{.SubmitText}}</button>
      <p class="lead-success" hidden>{{.SuccessMessage}}</p>
    </form>
    {{- end}}
  </div>
</section>
{{- end}}
{{- if .Features}}
<section id="features" class="section features layout-{{.Features.Layout}}" style="{{$.SectStyle}}">
  <div class="container">
    <h2>{{.Features.Title}}</h2>
    <div class="muted">{{.Features.Subtitle}}</div>
    {{- range .Features.Items}}
    <div class="card feature">
      <h3>{{.Title}}</h3>
      <p>{{.Description}}</p>
    </div>
    {{- end}}
  </div>
</section>
{{- end}}
{{- if .Instructor}}
<section id="instructor" class="section instructor">
  <div class="container">
    <h2>{{.Instructor.Title}}</h2>
    <h3>{{.Instructor.Name}}</h3>
    <p class="muted">{{.Instructor.Credentials}}</p>
    <div class="bio">{{.Instructor.Bio}}</div>
  </div>
</section>
{{- end}}
{{- if .Testimonials}}
<section id="testimonials" class="section testimonials">
  <div class="container">
    <h2>{{.Testimonials.Title}}</h2>
    <p class="muted">{{.Testimonials.Subtitle}}</p>
    {{- range .Testimonials.Items}}
    <div class="card testimonial">
      <span class="stars">{{.Stars}}</span>
      <p>{{.Content}}</p>
      <p class="muted">{{.Name}}{{if .Role}}, {{.Role}}{{end}}{{if .Company}} ({{.Company}}){{end}}</p>
    </div>
    {{- end}}
  </div>
</section>
{{- end}}
{{- if .Pricing}}
<section id="pricing" class="section pricing">
  <div class="container">
    <h2>{{.Pricing.Title}}</h2>
    <p class="muted">{{.Pricing.Subtitle}}</p>
    <div class="card price-card">
      {{- if .Pricing.OriginalPrice}}
      <s class="original-price">{{.Pricing.OriginalPrice}}</s>
      <span class="limited-offer">Limited time offer</span>
      {{- end}}
      <span class="price">{{.Pricing.Price}} {{.Pricing.Currency}}</span>
      <ul>
        {{- range .Pricing.Features}}<li>{{.}}</li>{{end}}
      </ul>
      <button class="btn" type="button">{{.Pricing.ButtonText}}</button>
    </div>
  </div>
</section>
{{- end}}
{{- if .Contact}}
<section id="contact" class="section contact">
  <div class="container">
    <h2>{{.Contact.Title}}</h2>
    <p class="muted">{{.Contact.Subtitle}}</p>
    {{- if .Contact.Phone}}<p class="contact-phone">{{.Contact.Phone}}</p>{{end}}
    {{- if .Contact.Email}}<p class="contact-email">{{.Contact.Email}}</p>{{end}}
    {{- if .Contact.Address}}<p class="contact-address">{{.Contact.Address}}</p>{{end}}
  </div>
</section>
{{- end}}
{{- end}}
{{- if .Editor}}
<a class="edit-button btn" href="/pages/{{.PageID}}">Edit</a>
{{- end}}
</body>
</html>
`
