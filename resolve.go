package seometa

import "strings"

const (
	productPathPrefix  = "/product/"
	productTitle       = "Battery Details - Cart Battery Depot"
	productDescription = "View detailed specifications and pricing for this battery. Expert support available at 1-844-888-7732"
)

// Resolve returns the metadata for path. Exact table keys win; paths under
// /product/ get a synthesized article record whose URL is baseURL+path;
// everything else gets the "/" entry. Resolve never fails.
//
// /product/ (a single battery) is deliberately distinct from the /products
// listing pages in the table.
func Resolve(t Table, baseURL, path string) PageMetadata {
	if m, ok := t[path]; ok {
		return m
	}
	if strings.HasPrefix(path, productPathPrefix) {
		return PageMetadata{
			Title:       productTitle,
			Description: productDescription,
			URL:         baseURL + path,
			Type:        TypeArticle,
		}
	}
	return t["/"]
}

// Resolve returns the page metadata for path using the Head's table and base URL.
func (h *Head) Resolve(path string) PageMetadata {
	_, exact := h.Table[path]
	switch {
	case exact:
		h.logger.Debug("resolved page metadata", "path", path, "source", "table")
	case strings.HasPrefix(path, productPathPrefix):
		h.logger.Debug("resolved page metadata", "path", path, "source", "product")
	default:
		h.logger.Debug("resolved page metadata", "path", path, "source", "fallback")
	}
	return Resolve(h.Table, h.Config.URL, path)
}
