package landing

import (
	"strings"

	"github.com/google/uuid"
)

// UpdateSectionField returns a copy of c where only c.<section>.<field> has
// been replaced with value. The untouched sections keep their pointers, so
// callers can detect what changed by comparing section references.
//
// List-valued fields (features "items", testimonials "items", pricing
// "features") are replaced wholesale; use AddFeature / DeleteFeature /
// ReorderFeatures to compute the new list first.
func UpdateSectionField(c Content, section, field string, value any) (Content, error) {
	switch section {
	case SectionHero:
		h := *c.Hero
		switch field {
		case "title":
			if err := setString(&h.Title, value); err != nil {
				return c, err
			}
		case "subtitle":
			if err := setString(&h.Subtitle, value); err != nil {
				return c, err
			}
		case "description":
			if err := setString(&h.Description, value); err != nil {
				return c, err
			}
		case "button_text":
			if err := setString(&h.ButtonText, value); err != nil {
				return c, err
			}
		default:
			return c, ErrUnknownField
		}
		c.Hero = &h

	case SectionFeatures:
		f := *c.Features
		switch field {
		case "title":
			if err := setString(&f.Title, value); err != nil {
				return c, err
			}
		case "subtitle":
			if err := setString(&f.Subtitle, value); err != nil {
				return c, err
			}
		case "layout":
			if err := setString(&f.Layout, value); err != nil {
				return c, err
			}
		case "items":
			items, ok := value.([]FeatureItem)
			if !ok {
				return c, ErrInvalidValue
			}
			f.Items = items
		default:
			return c, ErrUnknownField
		}
		c.Features = &f

	case SectionInstructor:
		i := *c.Instructor
		switch field {
		case "title":
			if err := setString(&i.Title, value); err != nil {
				return c, err
			}
		case "name":
			if err := setString(&i.Name, value); err != nil {
				return c, err
			}
		case "credentials":
			if err := setString(&i.Credentials, value); err != nil {
				return c, err
			}
		case "bio":
			if err := setString(&i.Bio, value); err != nil {
				return c, err
			}
		default:
			return c, ErrUnknownField
		}
		c.Instructor = &i

	case SectionTestimonials:
		t := *c.Testimonials
		switch field {
		case "title":
			if err := setString(&t.Title, value); err != nil {
				return c, err
			}
		case "subtitle":
			if err := setString(&t.Subtitle, value); err != nil {
				return c, err
			}
		case "layout":
			if err := setString(&t.Layout, value); err != nil {
				return c, err
			}
		case "items":
			items, ok := value.([]Testimonial)
			if !ok {
				return c, ErrInvalidValue
			}
			t.Items = items
		default:
			return c, ErrUnknownField
		}
		c.Testimonials = &t

	case SectionPricing:
		p := *c.Pricing
		switch field {
		case "title":
			if err := setString(&p.Title, value); err != nil {
				return c, err
			}
		case "subtitle":
			if err := setString(&p.Subtitle, value); err != nil {
				return c, err
			}
		case "price":
			if err := setString(&p.Price, value); err != nil {
				return c, err
			}
		case "original_price":
			if err := setString(&p.OriginalPrice, value); err != nil {
				return c, err
			}
		case "currency":
			if err := setString(&p.Currency, value); err != nil {
				return c, err
			}
		case "button_text":
			if err := setString(&p.ButtonText, value); err != nil {
				return c, err
			}
		case "features":
			items, ok := value.([]string)
			if !ok {
				return c, ErrInvalidValue
			}
			p.Features = items
		default:
			return c, ErrUnknownField
		}
		c.Pricing = &p

	case SectionContact:
		ct := *c.Contact
		switch field {
		case "title":
			if err := setString(&ct.Title, value); err != nil {
				return c, err
			}
		case "subtitle":
			if err := setString(&ct.Subtitle, value); err != nil {
				return c, err
			}
		case "phone":
			if err := setString(&ct.Phone, value); err != nil {
				return c, err
			}
		case "email":
			if err := setString(&ct.Email, value); err != nil {
				return c, err
			}
		case "address":
			if err := setString(&ct.Address, value); err != nil {
				return c, err
			}
		default:
			return c, ErrUnknownField
		}
		c.Contact = &ct

	default:
		return c, ErrUnknownSection
	}

	return c, nil
}

func setString(dst *string, value any) error {
	s, ok := value.(string)
	if !ok {
		return ErrInvalidValue
	}
	*dst = s
	return nil
}

// AddFeature appends a new feature item. Title and description must be
// non-empty after trimming. The new item gets a fresh uuid and an order
// value past every existing one, so order stays monotonic even when earlier
// deletes left holes.
func AddFeature(c Content, title, description string) (Content, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" || description == "" {
		return c, ErrEmptyFeatureField
	}

	next := 0
	for _, it := range c.Features.Items {
		if it.Order >= next {
			next = it.Order + 1
		}
	}

	items := make([]FeatureItem, 0, len(c.Features.Items)+1)
	items = append(items, c.Features.Items...)
	items = append(items, FeatureItem{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Order:       next,
	})
	return UpdateSectionField(c, SectionFeatures, "items", items)
}

// DeleteFeature removes the item with the given id. Remaining order values
// are not renumbered. An unknown id is a no-op, not an error.
func DeleteFeature(c Content, id string) Content {
	idx := -1
	for i, it := range c.Features.Items {
		if it.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return c
	}

	items := make([]FeatureItem, 0, len(c.Features.Items)-1)
	items = append(items, c.Features.Items[:idx]...)
	items = append(items, c.Features.Items[idx+1:]...)
	out, _ := UpdateSectionField(c, SectionFeatures, "items", items)
	return out
}

// ReorderFeatures rewrites the item sequence to match ids, which must be a
// permutation of the existing item ids. Order values are renumbered 0..n-1
// so no two items ever share an order in the active set.
func ReorderFeatures(c Content, ids []string) (Content, error) {
	if len(ids) != len(c.Features.Items) {
		return c, ErrBadReorder
	}

	byID := make(map[string]FeatureItem, len(c.Features.Items))
	for _, it := range c.Features.Items {
		byID[it.ID] = it
	}

	items := make([]FeatureItem, 0, len(ids))
	for i, id := range ids {
		it, ok := byID[id]
		if !ok {
			return c, ErrBadReorder
		}
		delete(byID, id)
		it.Order = i
		items = append(items, it)
	}

	return UpdateSectionField(c, SectionFeatures, "items", items)
}

// AddTestimonial appends a testimonial following the same policy as
// AddFeature: trimmed name and content required, rating clamped to 1..5.
func AddTestimonial(c Content, name, role, company, content string, rating int) (Content, error) {
	name = strings.TrimSpace(name)
	content = strings.TrimSpace(content)
	if name == "" || content == "" {
		return c, ErrEmptyFeatureField
	}
	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}

	next := 0
	for _, it := range c.Testimonials.Items {
		if it.Order >= next {
			next = it.Order + 1
		}
	}

	items := make([]Testimonial, 0, len(c.Testimonials.Items)+1)
	items = append(items, c.Testimonials.Items...)
	items = append(items, Testimonial{
		ID:      uuid.NewString(),
		Name:    name,
		Role:    strings.TrimSpace(role),
		Company: strings.TrimSpace(company),
		Content: content,
		Rating:  rating,
		Order:   next,
	})
	return UpdateSectionField(c, SectionTestimonials, "items", items)
}

// DeleteTestimonial removes the testimonial with the given id; unknown ids
// are a no-op.
func DeleteTestimonial(c Content, id string) Content {
	idx := -1
	for i, it := range c.Testimonials.Items {
		if it.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return c
	}

	items := make([]Testimonial, 0, len(c.Testimonials.Items)-1)
	items = append(items, c.Testimonials.Items[:idx]...)
	items = append(items, c.Testimonials.Items[idx+1:]...)
	out, _ := UpdateSectionField(c, SectionTestimonials, "items", items)
	return out
}
