package exts

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
)

type Pagination struct {
	Page  int
	Limit int
}

func (v Pagination) Offset() int {
	return (v.Page - 1) * v.Limit
}

// GetPagination reads ?page= and ?limit=, falling back to the configured page
// size. A limit above the configured maximum is clamped.
func GetPagination(c *fiber.Ctx) (Pagination, error) {
	page := c.QueryInt("page", 1)
	if page < 1 {
		return Pagination{}, fiber.NewError(fiber.StatusNotFound, "invalid page")
	}

	limit := c.QueryInt("limit", viper.GetInt("pagination.page_size"))
	if limit < 1 {
		limit = viper.GetInt("pagination.page_size")
	}
	if ceiling := viper.GetInt("pagination.max_page_size"); ceiling > 0 && limit > ceiling {
		limit = ceiling
	}

	return Pagination{Page: page, Limit: limit}, nil
}

// PaginatedResponse renders the {count, next, previous, results} envelope.
// Pages past the end are reported as not found.
func PaginatedResponse(c *fiber.Ctx, p Pagination, count int64, results any) error {
	if p.Page > 1 && int64(p.Offset()) >= count {
		return fiber.NewError(fiber.StatusNotFound, "invalid page")
	}

	var next, previous *string
	if int64(p.Offset()+p.Limit) < count {
		link := pageLink(c, p.Page+1)
		next = &link
	}
	if p.Page > 1 {
		link := pageLink(c, p.Page-1)
		previous = &link
	}

	return c.JSON(fiber.Map{
		"count":    count,
		"next":     next,
		"previous": previous,
		"results":  results,
	})
}

func pageLink(c *fiber.Ctx, page int) string {
	query, _ := url.ParseQuery(string(c.Request().URI().QueryString()))
	query.Set("page", strconv.Itoa(page))
	return c.BaseURL() + c.Path() + "?" + query.Encode()
}
