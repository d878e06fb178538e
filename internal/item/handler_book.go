package item

import (
	"fmt"

	"github.com/TavstalDev/MineCoreLib/internal/domain"
	"github.com/TavstalDev/MineCoreLib/internal/richtext"
)

func serializeBook(c *codec, it *domain.Item, data IR) error {
	v := it.Variant
	if v == nil || v.Kind != domain.KindBook || v.Book == nil {
		return nil
	}

	book := v.Book
	if book.Title != nil {
		data[keyTitle] = *book.Title
	}
	if book.Author != nil {
		data[keyAuthor] = *book.Author
	}
	if len(book.Pages) > 0 {
		pages := make([]any, 0, len(book.Pages))
		for _, page := range book.Pages {
			s, err := richtext.ToJSON(page)
			if err != nil {
				continue
			}
			pages = append(pages, s)
		}
		data[keyPages] = pages
	}
	return nil
}

// Pages are decoded independently: a malformed page falls back to legacy
// text instead of discarding its siblings. Missing title and author are
// left unset.
func deserializeBook(c *codec, it *domain.Item, data IR) error {
	if it.Variant == nil || it.Variant.Kind != domain.KindBook {
		return nil
	}

	book := &domain.BookMeta{}
	populated := false

	if title, ok := asString(data[keyTitle]); ok {
		book.Title = &title
		populated = true
	}
	if author, ok := asString(data[keyAuthor]); ok {
		book.Author = &author
		populated = true
	}
	if rawPages, present := data[keyPages]; present {
		lines, ok := asList(rawPages, c.log)
		if !ok {
			return fmt.Errorf("%w: pages", domain.ErrInvalidShape)
		}
		pages := make([]richtext.Component, 0, len(lines))
		for _, line := range lines {
			s, ok := asString(line)
			if !ok {
				continue
			}
			pages = append(pages, c.decodeText(s))
		}
		book.Pages = pages
		populated = true
	}

	if populated {
		it.Variant.Book = book
	}
	return nil
}
